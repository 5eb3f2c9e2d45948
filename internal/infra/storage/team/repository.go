package team

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CallDashboard/internal/domain"
	"github.com/m04kA/SMC-CallDashboard/pkg/dbmetrics"
	"github.com/m04kA/SMC-CallDashboard/pkg/sqlbuilder"
)

const tableTeams = "tbl_team"

// Repository репозиторий команд
type Repository struct {
	db      DBExecutor
	builder sqlbuilder.Builder
}

// NewRepository создает новый экземпляр репозитория команд
func NewRepository(db DBExecutor, builder sqlbuilder.Builder) *Repository {
	return &Repository{db: db, builder: builder}
}

// GetAllActive возвращает активные команды, новые первыми
func (r *Repository) GetAllActive(ctx context.Context) ([]*domain.Team, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.builder.Select("id", "fld_title", "status", "fld_addedon").
		From(tableTeams).
		Where(squirrel.Eq{"status": domain.TeamStatusActive}).
		OrderBy("fld_addedon DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAllActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAllActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	teams := make([]*domain.Team, 0)
	for rows.Next() {
		var team domain.Team
		if err := rows.Scan(&team.ID, &team.Title, &team.Status, &team.AddedOn); err != nil {
			return nil, fmt.Errorf("%w: GetAllActive - scan team: %v", ErrScanRow, err)
		}
		teams = append(teams, &team)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAllActive - iterate rows: %v", ErrScanRow, err)
	}

	return teams, nil
}
