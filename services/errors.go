package services

import "fmt"

// ErrorKind classifies a failed operation so the HTTP layer can pick a
// status code without inspecting message strings.
type ErrorKind int

const (
	// KindInternal covers storage and other infrastructure failures.
	KindInternal ErrorKind = iota
	// KindNotFound means a referenced entity does not exist.
	KindNotFound
	// KindConflict means a uniqueness or duplicate-state rule was violated.
	KindConflict
	// KindInvalidState means the operation does not apply to the current
	// relations, e.g. removing a membership that does not exist.
	KindInvalidState
	// KindUnprocessable means the payload itself is structurally invalid.
	KindUnprocessable
)

// Error is the error type returned by every service operation. A non-nil
// cause is preserved for logging but never sent to the caller.
type Error struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflictf(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func InvalidStatef(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidState, Message: fmt.Sprintf(format, args...)}
}

func Unprocessablef(format string, args ...any) *Error {
	return &Error{Kind: KindUnprocessable, Message: fmt.Sprintf(format, args...)}
}

func internalf(err error, format string, args ...any) *Error {
	return &Error{Kind: KindInternal, Message: fmt.Sprintf(format, args...), cause: err}
}
