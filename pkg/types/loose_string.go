package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// ErrUnsupportedJSONValue возвращается для объектов и массивов
var ErrUnsupportedJSONValue = errors.New("unsupported json value for loose string")

// LooseString строковое поле запроса, которое клиент может прислать
// строкой, числом, булевым значением или null.
type LooseString string

// UnmarshalJSON реализует json.Unmarshaler
func (s *LooseString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}

	switch data[0] {
	case '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = LooseString(v)
		return nil
	case '{', '[':
		return ErrUnsupportedJSONValue
	}

	// число или true/false оставляем в исходной записи
	if !json.Valid(data) {
		return ErrUnsupportedJSONValue
	}
	*s = LooseString(data)
	return nil
}

// String возвращает значение без пробелов по краям
func (s LooseString) String() string {
	return strings.TrimSpace(string(s))
}

// IsEmpty проверяет, что значение не передано
func (s LooseString) IsEmpty() bool {
	return s.String() == ""
}

// Int64 разбирает значение как целое число.
// Пустое или нечисловое значение считается отсутствующим.
func (s LooseString) Int64() (int64, bool) {
	v := s.String()
	if v == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Int64Ptr то же, что Int64, но возвращает nil для отсутствующего значения
func (s LooseString) Int64Ptr() *int64 {
	n, ok := s.Int64()
	if !ok {
		return nil
	}
	return &n
}
