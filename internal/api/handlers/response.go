package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// maxBodyBytes ограничение размера тела запроса
const maxBodyBytes = 1 << 20

const msgInternalError = "internal server error"

// ErrEmptyBody возвращается, когда тело запроса пустое
var ErrEmptyBody = errors.New("request body is empty")

// Envelope формат ответа дашборда: {"status": true, "data": ...} или {"status": false, "message": ...}
type Envelope struct {
	Status  bool        `json:"status"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// dataEnvelope успешный ответ, data сериализуется всегда (в том числе null)
type dataEnvelope struct {
	Status bool        `json:"status"`
	Data   interface{} `json:"data"`
}

// DecodeJSON декодирует тело запроса в v.
// Пустое тело допускается только если allowEmpty передан как true.
func DecodeJSON(r *http.Request, v interface{}, allowEmpty ...bool) error {
	if r.Body == nil {
		if len(allowEmpty) > 0 && allowEmpty[0] {
			return nil
		}
		return ErrEmptyBody
	}

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := decoder.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			if len(allowEmpty) > 0 && allowEmpty[0] {
				return nil
			}
			return ErrEmptyBody
		}
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}

// RespondJSON пишет payload как есть
func RespondJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondData успешный ответ в формате дашборда
func RespondData(w http.ResponseWriter, data interface{}) {
	RespondJSON(w, http.StatusOK, dataEnvelope{Status: true, Data: data})
}

// RespondError ответ с ошибкой в формате дашборда
func RespondError(w http.ResponseWriter, statusCode int, message string) {
	RespondJSON(w, statusCode, Envelope{Status: false, Message: message})
}

// RespondBadRequest 400 с сообщением
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondNotFound 404 с сообщением
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondTooManyRequests 429 с сообщением
func RespondTooManyRequests(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusTooManyRequests, message)
}

// RespondInternalError 500 без подробностей
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}
