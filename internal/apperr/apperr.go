// Package apperr is the error taxonomy shared by the session guard and the route handlers.
package apperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// Kind classifies a failure for the HTTP boundary.
type Kind int

const (
	KindInternal Kind = iota
	KindUnauthenticated
	KindInvalidSession
	KindProfileNotFound
	KindStore
	KindUpload
	KindBadRequest
)

func (k Kind) String() string {
	switch k {
	case KindUnauthenticated:
		return "Unauthenticated"
	case KindInvalidSession:
		return "InvalidSession"
	case KindProfileNotFound:
		return "ProfileNotFound"
	case KindStore:
		return "StoreError"
	case KindUpload:
		return "UploadError"
	case KindBadRequest:
		return "BadRequest"
	default:
		return "InternalError"
	}
}

// Status maps the kind to its HTTP status.
func (k Kind) Status() int {
	switch k {
	case KindUnauthenticated, KindInvalidSession:
		return http.StatusUnauthorized
	case KindProfileNotFound, KindStore, KindUpload, KindBadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Error carries a user-visible message alongside the underlying cause.
type Error struct {
	Kind    Kind
	Message string
	Status  int
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Err.Error() != e.Message {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatus is the explicit status, falling back to the kind default.
func (e *Error) HTTPStatus() int {
	if e.Status != 0 {
		return e.Status
	}
	return e.Kind.Status()
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Store wraps a data-layer rejection. The client sees the store's own message, without
// the context added while the error travelled up.
func Store(err error) *Error {
	return &Error{Kind: KindStore, Message: rootMessage(err), Err: err}
}

func rootMessage(err error) string {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}

func Unauthenticated(message string) *Error {
	return New(KindUnauthenticated, message)
}

func InvalidSession(message string, err error) *Error {
	return Wrap(KindInvalidSession, message, err)
}

func ProfileNotFound(message string) *Error {
	return New(KindProfileNotFound, message)
}

func Upload(message string, status int, err error) *Error {
	return &Error{Kind: KindUpload, Message: message, Status: status, Err: err}
}

func BadRequest(message string) *Error {
	return New(KindBadRequest, message)
}

func Internal(err error) *Error {
	return Wrap(KindInternal, "internal server error", err)
}

// KindOf reports the kind of err, KindInternal for unclassified errors.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// Response converts err into the huma error written to the client.
func Response(err error) huma.StatusError {
	var statusErr huma.StatusError
	if errors.As(err, &statusErr) {
		return statusErr
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return huma.NewError(appErr.HTTPStatus(), appErr.Message, err)
	}
	return huma.NewError(http.StatusInternalServerError, "internal server error", err)
}
