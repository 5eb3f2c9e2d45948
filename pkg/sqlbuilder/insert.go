package sqlbuilder

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
)

// Executor минимальный интерфейс исполнителя запросов
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// InsertReturningID выполняет INSERT и возвращает id новой строки.
// Postgres не поддерживает LastInsertId, поэтому для него добавляется RETURNING id.
func (b Builder) InsertReturningID(ctx context.Context, exec Executor, insert squirrel.InsertBuilder) (int64, error) {
	if b.dialect == DialectPostgres {
		query, args, err := insert.Suffix("RETURNING id").ToSql()
		if err != nil {
			return 0, fmt.Errorf("build insert: %w", err)
		}
		var id int64
		if err := exec.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
			return 0, fmt.Errorf("insert returning id: %w", err)
		}
		return id, nil
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert: %w", err)
	}
	res, err := exec.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}
