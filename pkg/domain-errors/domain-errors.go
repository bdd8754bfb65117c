// Package domainerrors carries stable error codes from the engines and stores
// up to the transport layer, which alone decides status codes.
package domainerrors

import "errors"

type Code string

const (
	CodeNotFound     Code = "not_found"
	CodeBadRequest   Code = "bad_request"
	CodeInvalidInput Code = "invalid_input"
	// CodeValidation covers rejected farmer profiles, logistics inputs and
	// request bodies.
	CodeValidation Code = "validation_failed"
	CodeInternal   Code = "internal_error"
	// CodeUnsupportedLang is returned for a language with no content bundle.
	CodeUnsupportedLang Code = "unsupported_language"
	// CodeCatalogUnavailable means a scheme bundle failed to load or is
	// inconsistent with its language.
	CodeCatalogUnavailable Code = "catalog_unavailable"
	CodeTimeout            Code = "timeout"
	// CodeInvariantViolation is a write that would break a registry invariant,
	// such as rebinding a mobile number to another farmer.
	CodeInvariantViolation Code = "invariant_violation"
)

// Error wraps a failure with a stable code.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return string(e.Code)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches by code, so errors.Is(err, New(CodeNotFound, "")) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func New(code Code, msg string) error {
	return &Error{Code: code, Message: msg}
}

// Wrap attaches msg to err. A domain error keeps its original code; anything
// else takes code.
func Wrap(err error, code Code, msg string) error {
	if existing, ok := CodeOf(err); ok {
		code = existing
	}
	return &Error{Code: code, Message: msg, Err: err}
}

// CodeOf returns the code of the first domain error in err's chain.
func CodeOf(err error) (Code, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Code, true
	}
	return "", false
}

// HasCode reports whether err carries code.
func HasCode(err error, code Code) bool {
	c, ok := CodeOf(err)
	return ok && c == code
}
