package setting

import "errors"

var (
	// ErrSettingNotFound возвращается, когда настройки консультанта не найдены
	ErrSettingNotFound = errors.New("setting.repository: consultant setting not found")

	// ErrNothingToUpdate возвращается, когда в обновлении нет ни одного поля
	ErrNothingToUpdate = errors.New("setting.repository: nothing to update")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("setting.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("setting.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("setting.repository: failed to scan row")
)
