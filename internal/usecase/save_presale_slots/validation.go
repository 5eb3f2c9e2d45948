package save_presale_slots

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID == nil || *req.UserID <= 0 {
		return ErrUserIDRequired
	}

	if err := req.Slots.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSlots, err)
	}

	return nil
}
