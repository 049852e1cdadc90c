package domain

import "fmt"

// ErrorEnvelope - единый формат тела ошибки, который возвращает backend
// на не-успешные HTTP статусы. Все поля опциональны.
type ErrorEnvelope struct {
	Code *int    `json:"code,omitempty"`
	TS   *int64  `json:"ts,omitempty"`
	Msg  *string `json:"msg,omitempty"`
}

// IsEmpty сообщает, что в конверте нет ни одного поля
func (e ErrorEnvelope) IsEmpty() bool {
	return e.Code == nil && e.TS == nil && e.Msg == nil
}

func (e ErrorEnvelope) String() string {
	code, msg := 0, ""
	if e.Code != nil {
		code = *e.Code
	}
	if e.Msg != nil {
		msg = *e.Msg
	}
	return fmt.Sprintf("code=%d msg=%q", code, msg)
}
