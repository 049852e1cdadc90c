package pharmaapi

import (
	"errors"
	"fmt"

	"github.com/pharmafinder-client/internal/domain"
)

// ErrorKind - класс ошибки обращения к API
type ErrorKind int

const (
	// KindTransport - ответ не получен (сеть, таймаут, отмена контекста)
	KindTransport ErrorKind = iota + 1
	// KindApplication - сервер ответил неожиданным статусом
	KindApplication
	// KindDecode - успешный ответ с некорректным телом
	KindDecode
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindApplication:
		return "application"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// APIError - ошибка вызова API аптек.
// Для KindApplication Envelope содержит тело ошибки сервера, если его удалось разобрать.
type APIError struct {
	Kind       ErrorKind
	Method     string
	Path       string
	StatusCode int
	Envelope   domain.ErrorEnvelope
	Err        error
}

func (e *APIError) Error() string {
	switch e.Kind {
	case KindApplication:
		return fmt.Sprintf("pharmacy API %s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Envelope)
	default:
		return fmt.Sprintf("pharmacy API %s %s: %s error: %v", e.Method, e.Path, e.Kind, e.Err)
	}
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// KindOf возвращает класс ошибки или 0, если это не APIError
func KindOf(err error) ErrorKind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return 0
}

// StatusOf возвращает HTTP статус ответа или 0, если ответа не было
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
