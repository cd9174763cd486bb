package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies failures so the HTTP layer can map them to status codes
// without string matching.
type Kind int

const (
	KindUnknown Kind = iota
	// KindNotFound: referenced deck/viewer/session does not exist, or the
	// deck is inactive for a public-facing operation.
	KindNotFound
	// KindInvalidInput: missing required correlation ids on a write-path call.
	KindInvalidInput
	// KindConflict: a storage-level uniqueness violation outside the
	// resolver's own upsert logic.
	KindConflict
	// KindUnauthorized: credential checks on the owner auth surface.
	KindUnauthorized
)

type Error struct {
	kind Kind
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.err
}

func (e *Error) Kind() Kind {
	return e.kind
}

func NotFound(msg string) error {
	return &Error{kind: KindNotFound, msg: msg}
}

func InvalidInput(msg string) error {
	return &Error{kind: KindInvalidInput, msg: msg}
}

func Conflict(msg string, err error) error {
	return &Error{kind: KindConflict, msg: msg, err: err}
}

func Unauthorized(msg string) error {
	return &Error{kind: KindUnauthorized, msg: msg}
}

func Wrap(kind Kind, msg string, err error) error {
	return &Error{kind: kind, msg: msg, err: err}
}

func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}
	return KindUnknown
}

func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

func IsInvalidInput(err error) bool {
	return KindOf(err) == KindInvalidInput
}

func IsConflict(err error) bool {
	return KindOf(err) == KindConflict
}
