package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/m04kA/SMC-CallDashboard/pkg/sqlbuilder"
)

// DatabaseConfig параметры подключения к БД
type DatabaseConfig struct {
	// Driver имя database/sql драйвера: mysql, postgres или sqlite3
	Driver   string `toml:"driver"`
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	DBName   string `toml:"dbname"`
	SSLMode  string `toml:"sslmode"`
	// Path файл базы для sqlite3
	Path string `toml:"path"`

	MaxOpenConns    int `toml:"max_open_conns"`
	MaxIdleConns    int `toml:"max_idle_conns"`
	ConnMaxLifetime int `toml:"conn_max_lifetime"`
}

// Dialect диалект SQL для выбранного драйвера
func (d DatabaseConfig) Dialect() (sqlbuilder.Dialect, error) {
	dialect, err := sqlbuilder.ParseDialect(d.Driver)
	if err != nil {
		return "", fmt.Errorf("%w: database.driver: %v", ErrInvalidConfig, err)
	}
	return dialect, nil
}

// DriverName имя драйвера для sql.Open
func (d DatabaseConfig) DriverName() string {
	dialect, err := d.Dialect()
	if err != nil {
		return d.Driver
	}
	return string(dialect)
}

// Validate проверяет параметры подключения
func (d DatabaseConfig) Validate() error {
	dialect, err := d.Dialect()
	if err != nil {
		return err
	}
	switch dialect {
	case sqlbuilder.DialectSQLite:
		if d.Path == "" {
			return fmt.Errorf("%w: database.path is required for sqlite3", ErrInvalidConfig)
		}
	default:
		if d.Host == "" || d.DBName == "" {
			return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
		}
	}
	return nil
}

// DSN строка подключения для выбранного драйвера
func (d DatabaseConfig) DSN() string {
	dialect, _ := d.Dialect()

	switch dialect {
	case sqlbuilder.DialectPostgres:
		sslMode := d.SSLMode
		if sslMode == "" {
			sslMode = "disable"
		}
		parts := []string{
			"host=" + d.Host,
			"port=" + strconv.Itoa(d.Port),
			"user=" + d.User,
			"password=" + d.Password,
			"dbname=" + d.DBName,
			"sslmode=" + sslMode,
		}
		return strings.Join(parts, " ")

	case sqlbuilder.DialectSQLite:
		return d.Path

	default:
		cfg := mysql.NewConfig()
		cfg.User = d.User
		cfg.Passwd = d.Password
		cfg.Net = "tcp"
		cfg.Addr = net.JoinHostPort(d.Host, strconv.Itoa(d.Port))
		cfg.DBName = d.DBName
		// UPDATE должен возвращать количество найденных строк, а не изменённых:
		// повторное сохранение тех же значений не должно приводить к вставке дубля
		cfg.ClientFoundRows = true
		cfg.Timeout = 5 * time.Second
		return cfg.FormatDSN()
	}
}
