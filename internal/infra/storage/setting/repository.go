package setting

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
	tableSettings   = "tbl_consultant_setting"
	colConsultantID = "fld_consultantid"
)

// Repository репозиторий рабочих часов консультантов
type Repository struct {
	db      DBExecutor
	builder sqlbuilder.Builder
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor, builder sqlbuilder.Builder) *Repository {
	return &Repository{db: db, builder: builder}
}

// GetLatest возвращает последнюю запись настроек.
// Если consultantID задан и больше нуля - последнюю запись этого консультанта.
func (r *Repository) GetLatest(ctx context.Context, consultantID *int64) (*domain.ConsultantSetting, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	columns := []string{"id", colConsultantID}
	for _, day := range domain.Weekdays {
		columns = append(columns, day.SettingColumn())
	}

	sb := r.builder.Select(columns...).From(tableSettings)
	if consultantID != nil && *consultantID > 0 {
		sb = sb.Where(squirrel.Eq{colConsultantID: *consultantID})
	}

	query, args, err := sb.OrderBy("id DESC").Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetLatest - build select query: %v", ErrBuildQuery, err)
	}

	var setting domain.ConsultantSetting
	dest := []interface{}{&setting.ID, &setting.ConsultantID}
	for i := range setting.TimeData {
		dest = append(dest, &setting.TimeData[i])
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(dest...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetLatest - scan setting: %v", ErrScanRow, err)
	}

	return &setting, nil
}

// Update частично обновляет рабочие часы консультанта: меняются только заданные дни.
// Возвращает количество затронутых строк, 0 - не ошибка.
func (r *Repository) Update(ctx context.Context, consultantID int64, timeData domain.DayValues) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	values := make(map[string]interface{})
	for _, day := range domain.Weekdays {
		if value := timeData.Get(day); value != nil {
			values[day.SettingColumn()] = *value
		}
	}
	if len(values) == 0 {
		return 0, ErrNothingToUpdate
	}

	query, args, err := r.builder.Update(tableSettings).
		SetMap(values).
		Where(squirrel.Eq{colConsultantID: consultantID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// Create добавляет запись настроек, незаданные дни сохраняются как NULL
func (r *Repository) Create(ctx context.Context, setting *domain.ConsultantSetting) (*domain.ConsultantSetting, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	columns := []string{colConsultantID}
	values := []interface{}{setting.ConsultantID}
	for _, day := range domain.Weekdays {
		columns = append(columns, day.SettingColumn())
		values = append(values, setting.TimeData.Get(day))
	}

	id, err := r.builder.InsertReturningID(ctx, executor,
		r.builder.Insert(tableSettings).Columns(columns...).Values(values...))
	if err != nil {
		return nil, fmt.Errorf("%w: Create - %v", ErrExecQuery, err)
	}

	setting.ID = id
	return setting, nil
}
