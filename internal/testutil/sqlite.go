package testutil

import (
	"database/sql"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

// schema минимальная схема таблиц CRM, с которыми работает дашборд
const schema = `
CREATE TABLE tbl_booking (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	fld_consultantid INTEGER,
	fld_secondary_consultant_id INTEGER,
	fld_third_consultantid INTEGER,
	fld_addedby INTEGER,
	fld_teamid TEXT,
	fld_sale_type TEXT,
	fld_converted_sts TEXT,
	fld_booking_date TEXT,
	fld_booking_slot TEXT,
	fld_consultation_sts TEXT,
	fld_call_request_sts TEXT,
	fld_timezone TEXT,
	fld_addedon TEXT,
	callDisabled TEXT
);

CREATE TABLE tbl_team (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	fld_title TEXT,
	status TEXT,
	fld_addedon TEXT
);

CREATE TABLE tbl_consultant_setting (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	fld_consultantid INTEGER NOT NULL,
	fld_sun_time_data TEXT,
	fld_mon_time_data TEXT,
	fld_tue_time_data TEXT,
	fld_wed_time_data TEXT,
	fld_thu_time_data TEXT,
	fld_fri_time_data TEXT,
	fld_sat_time_data TEXT
);

CREATE TABLE tbl_consultant_presaleslots (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL,
	sun_time TEXT,
	mon_time TEXT,
	tue_time TEXT,
	wed_time TEXT,
	thu_time TEXT,
	fri_time TEXT,
	sat_time TEXT
);
`

var dbCounter atomic.Int64

// NewTestDB открывает отдельную in-memory SQLite базу со схемой дашборда.
// База закрывается по завершении теста.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, dbCounter.Add(1))

	db, err := sql.Open("sqlite3", dsn)
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(schema)
	require.NoError(t, err)

	return db
}

// MustExec выполняет запрос подготовки данных
func MustExec(t *testing.T, db *sql.DB, query string, args ...interface{}) {
	t.Helper()
	_, err := db.Exec(query, args...)
	require.NoError(t, err)
}
