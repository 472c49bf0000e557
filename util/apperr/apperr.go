package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies a domain error so controllers can map it to an HTTP
// status without inspecting messages.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindValidation
	KindForbidden
	KindConflict
)

type Error struct {
	kind Kind
	msg  string
}

func (e *Error) Error() string { return e.msg }
func (e *Error) Kind() Kind    { return e.kind }

func NotFound(msg string) error   { return &Error{kind: KindNotFound, msg: msg} }
func Validation(msg string) error { return &Error{kind: KindValidation, msg: msg} }
func Forbidden(msg string) error  { return &Error{kind: KindForbidden, msg: msg} }
func Conflict(msg string) error   { return &Error{kind: KindConflict, msg: msg} }

// KindOf extracts the kind; anything that is not an *Error counts as internal.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.kind
	}
	return KindInternal
}

// HTTPStatus maps an error to the response status.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusBadRequest
	case KindForbidden:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// UserMessage is the message exposed in the JSON error body. Internal
// errors are replaced with a generic message so details stay in the logs.
func UserMessage(err error) string {
	if KindOf(err) == KindInternal {
		return "internal server error"
	}
	return err.Error()
}
