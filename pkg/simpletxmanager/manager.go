package simpletxmanager

import (
	"database/sql"

	"github.com/m04kA/SMC-CallDashboard/pkg/dbmetrics"
	"github.com/m04kA/SMC-CallDashboard/pkg/txmanager"
)

// NewTransactionManager менеджер транзакций поверх обычного *sql.DB, без метрик
func NewTransactionManager(db *sql.DB) *txmanager.Manager {
	return txmanager.NewTransactionManager(dbmetrics.NewSqlDB(db))
}
