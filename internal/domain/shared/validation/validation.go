package validation

import (
	"errors"
	"fmt"
)

// Error is the single error kind raised by domain invariants. The message is
// part of the contract: HTTP handlers and tests match on it verbatim.
type Error struct {
	msg string
}

func NewError(msg string) *Error {
	return &Error{msg: msg}
}

func Errorf(format string, args ...any) *Error {
	return &Error{msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return e.msg
}

// IsError reports whether err is (or wraps) a domain validation error.
func IsError(err error) bool {
	var target *Error
	return errors.As(err, &target)
}
