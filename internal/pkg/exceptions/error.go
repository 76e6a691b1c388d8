package exceptions

import (
	"fmt"
	"medibook-service/internal/pkg/constvars"
	"runtime"
)

// Kind is the machine-checkable classification carried on every CustomError;
// clients branch on it to decide retry vs abandon.
type Kind string

const (
	KindNotFound       Kind = "not_found"
	KindForbidden      Kind = "forbidden"
	KindUnauthorized   Kind = "unauthorized"
	KindInvalidState   Kind = "invalid_state"
	KindConflict       Kind = "conflict"
	KindValidation     Kind = "validation_error"
	KindTooLate        Kind = "too_late"
	KindUnavailable    Kind = "unavailable"
	KindDayUnavailable Kind = "day_unavailable"
	KindInvalidSlot    Kind = "invalid_slot"
	KindInternal       Kind = "internal"
)

type CustomError struct {
	StatusCode    int      `json:"status_code"`
	Success       bool     `json:"success"`
	Kind          Kind     `json:"kind"`
	ClientMessage string   `json:"message"`
	DevMessage    string   `json:"-"`
	Location      Location `json:"-"`
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

func (e *CustomError) Is(target error) bool {
	t, ok := target.(*CustomError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func BuildNewCustomError(err error, statusCode int, kind Kind, clientMessage, devMessage string) *CustomError {
	location := getLocation(3)
	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		StatusCode:    statusCode,
		Kind:          kind,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      location,
	}
}

func WrapWithoutError(statusCode int, kind Kind, clientMessage, devMessage string) *CustomError {
	return &CustomError{
		StatusCode:    statusCode,
		Kind:          kind,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      getLocation(2),
	}
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
