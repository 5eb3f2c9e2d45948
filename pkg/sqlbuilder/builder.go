package sqlbuilder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
)

// Dialect диалект SQL, под который строятся запросы
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectMySQL    Dialect = "mysql"
	DialectSQLite   Dialect = "sqlite3"
)

// ErrUnknownDialect возвращается для неподдерживаемого драйвера
var ErrUnknownDialect = errors.New("sqlbuilder: unknown dialect")

// ParseDialect сопоставляет имя database/sql драйвера с диалектом
func ParseDialect(driver string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "postgres", "postgresql", "pq":
		return DialectPostgres, nil
	case "mysql", "mariadb":
		return DialectMySQL, nil
	case "sqlite3", "sqlite":
		return DialectSQLite, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDialect, driver)
	}
}

// Builder squirrel-билдер с плейсхолдерами выбранного диалекта
type Builder struct {
	squirrel.StatementBuilderType
	dialect Dialect
}

// New создает билдер для диалекта.
// Postgres использует $1, $2..., остальные диалекты - "?".
func New(dialect Dialect) Builder {
	var format squirrel.PlaceholderFormat = squirrel.Question
	if dialect == DialectPostgres {
		format = squirrel.Dollar
	}
	return Builder{
		StatementBuilderType: squirrel.StatementBuilder.PlaceholderFormat(format),
		dialect:              dialect,
	}
}

// Dialect возвращает диалект билдера
func (b Builder) Dialect() Dialect {
	return b.dialect
}

// InCSV условие "value входит в список через запятую в колонке column".
// column должен быть константой из кода, не пользовательским вводом.
func (b Builder) InCSV(column, value string) squirrel.Sqlizer {
	switch b.dialect {
	case DialectMySQL:
		return squirrel.Expr(fmt.Sprintf("FIND_IN_SET(?, %s) > 0", column), value)
	case DialectPostgres:
		return squirrel.Expr(fmt.Sprintf("? = ANY(string_to_array(%s, ','))", column), value)
	default:
		// instr, а не LIKE: % и _ в значении не должны работать как шаблон
		return squirrel.Expr(fmt.Sprintf("instr(',' || %s || ',', ',' || ? || ',') > 0", column), value)
	}
}
