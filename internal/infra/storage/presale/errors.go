package presale

import "errors"

var (
	// ErrPresaleNotFound возвращается, когда у пользователя нет сохраненных пресейл-слотов
	ErrPresaleNotFound = errors.New("presale.repository: presale slots not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("presale.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("presale.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("presale.repository: failed to scan row")
)
