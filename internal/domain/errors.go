package domain

import "errors"

// Business error set; the transport layer maps these onto envelope codes.
var (
	ErrNotFound  = errors.New("not found")
	ErrConflict  = errors.New("conflict")
	ErrForbidden = errors.New("forbidden")
)

// ValidationError carries a user-correctable input problem.
type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }

func Invalid(msg string) error { return &ValidationError{Msg: msg} }

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
