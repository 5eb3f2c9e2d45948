package presale

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CallDashboard/internal/domain"
	"github.com/m04kA/SMC-CallDashboard/pkg/dbmetrics"
	"github.com/m04kA/SMC-CallDashboard/pkg/sqlbuilder"
)

const (
	tablePresaleSlots = "tbl_consultant_presaleslots"
	colUserID         = "user_id"
)

// Repository репозиторий выбранных пресейл-слотов
type Repository struct {
	db      DBExecutor
	builder sqlbuilder.Builder
}

// NewRepository создает новый экземпляр репозитория пресейл-слотов
func NewRepository(db DBExecutor, builder sqlbuilder.Builder) *Repository {
	return &Repository{db: db, builder: builder}
}

func (r *Repository) columns() []string {
	columns := []string{"id", colUserID}
	for _, day := range domain.Weekdays {
		columns = append(columns, day.PresaleColumn())
	}
	return columns
}

// GetLatest возвращает последнюю запись пресейл-слотов.
// userID nil или не больше нуля - последняя запись без фильтра.
func (r *Repository) GetLatest(ctx context.Context, userID *int64) (*domain.PresaleSlotSetting, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	sb := r.builder.Select(r.columns()...).From(tablePresaleSlots)
	if userID != nil && *userID > 0 {
		sb = sb.Where(squirrel.Eq{colUserID: *userID})
	}

	query, args, err := sb.OrderBy("id DESC").Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetLatest - build select query: %v", ErrBuildQuery, err)
	}

	var setting domain.PresaleSlotSetting
	dest := []interface{}{&setting.ID, &setting.UserID}
	for i := range setting.Slots {
		dest = append(dest, &setting.Slots[i])
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(dest...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPresaleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetLatest - scan presale slots: %v", ErrScanRow, err)
	}

	return &setting, nil
}

// DeleteByUser удаляет все записи пользователя, возвращает число удаленных строк
func (r *Repository) DeleteByUser(ctx context.Context, userID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.builder.Delete(tablePresaleSlots).
		Where(squirrel.Eq{colUserID: userID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByUser - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByUser - execute delete: %v", ErrExecQuery, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByUser - get rows affected: %v", ErrExecQuery, err)
	}

	return deleted, nil
}

// Create добавляет запись пресейл-слотов
func (r *Repository) Create(ctx context.Context, setting *domain.PresaleSlotSetting) (*domain.PresaleSlotSetting, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	values := []interface{}{setting.UserID}
	for _, day := range domain.Weekdays {
		values = append(values, setting.Slots.Get(day))
	}

	id, err := r.builder.InsertReturningID(ctx, executor,
		r.builder.Insert(tablePresaleSlots).Columns(r.columns()[1:]...).Values(values...))
	if err != nil {
		return nil, fmt.Errorf("%w: Create - %v", ErrExecQuery, err)
	}

	setting.ID = id
	return setting, nil
}
