package service

import (
	"github.com/pkg/errors"
)

// Error kinds returned by the services. Controllers map them to HTTP statuses.
var (
	ErrInvalidRequest   = errors.New("invalid request")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrGenerationFailed = errors.New("document generation failed")
)

// DetailError pairs an error kind with the message shown to clients
type DetailError struct {
	Kind   error
	Detail string
	Cause  error
}

func (e *DetailError) Error() string {
	return e.Detail
}

// Unwrap exposes both the kind and the underlying cause to errors.Is
func (e *DetailError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

func newDetailError(kind error, detail string) error {
	return &DetailError{Kind: kind, Detail: detail}
}

func generationFailed(cause error) error {
	return &DetailError{
		Kind:   ErrGenerationFailed,
		Detail: "Error generating PDF: " + cause.Error(),
		Cause:  cause,
	}
}

// Detail returns the client-facing message of err
func Detail(err error) string {
	var de *DetailError
	if errors.As(err, &de) {
		return de.Detail
	}
	return err.Error()
}
