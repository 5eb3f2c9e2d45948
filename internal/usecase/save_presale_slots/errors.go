package save_presale_slots

import "errors"

var (
	// ErrUserIDRequired возвращается, когда не передан user_id
	ErrUserIDRequired = errors.New("user_id is required")

	// ErrInvalidSlots возвращается при некорректных метках слотов
	ErrInvalidSlots = errors.New("invalid presale slots")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
