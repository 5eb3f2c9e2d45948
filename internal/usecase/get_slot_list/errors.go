package get_slot_list

import "errors"

var (
	// ErrInvalidDateRange возвращается при некорректном окне дат
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
