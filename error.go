package artex

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These allow callers to branch on the kind of failure without inspecting
// error message text. In particular, the hybrid parser's double-encoding
// retry fires on EENCODING and nothing else.
const (
	EENCODING    = "encoding"    // URL contains characters the fetcher cannot escape
	EINTERNAL    = "internal"    // unexpected internal error
	EINVALID     = "invalid"     // invalid input
	ENOCONTENT   = "no_content"  // page parsed but yielded no usable content
	ENOTFOUND    = "not_found"   // resource does not exist (HTTP 404/410)
	EUNAVAILABLE = "unavailable" // network failure, timeout, or upstream 5xx
)

// Error represents an application-specific error. Application errors can be
// unwrapped by the caller to extract the machine-readable code.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable message.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("artex error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
