package response

import (
	"encoding/json"
	"time"
)

const (
	MessageSuccess      = "success"
	MessageAccepted     = "accepted"
	DefaultErrorMessage = "Something went wrong"

	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)

// Resp is the standard JSON envelope: {success, data?, error?, message?}.
type Resp struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// Err is an error carrying the HTTP status it should be reported with.
type Err struct {
	Status  int
	Message string
}

func (e *Err) Error() string { return e.Message }

// NewErr creates an Err.
func NewErr(status int, message string) *Err {
	return &Err{Status: status, Message: message}
}

// Date is a date that marshals as DateFormat.
type Date time.Time

// MarshalJSON implements json.Marshaler for Date.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(DateFormat))
}

// DateTime is a datetime that marshals as DateTimeFormat.
type DateTime time.Time

// MarshalJSON implements json.Marshaler for DateTime.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(DateTimeFormat))
}
