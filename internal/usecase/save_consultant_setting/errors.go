package save_consultant_setting

import "errors"

var (
	// ErrInvalidConsultantID возвращается, когда consultantid не передан или некорректен
	ErrInvalidConsultantID = errors.New("valid consultantid is required")

	// ErrNoTimeData возвращается, когда в запросе нет ни одного дня
	ErrNoTimeData = errors.New("no time data to save")

	// ErrInvalidTimeData возвращается при некорректных интервалах рабочих часов
	ErrInvalidTimeData = errors.New("invalid time data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
