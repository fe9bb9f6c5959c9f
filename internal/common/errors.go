// Package common defines sentinel errors and small helpers shared by the
// storage, service and CLI layers of SnapHire. Callers should use errors.Is
// to match these values.
package common

import "errors"

var (
	// Storage errors.
	ErrStorage       = errors.New("storage error")
	ErrAlreadyExists = errors.New("already exists")

	// Signup validation errors.
	ErrTooShortID     = errors.New("user id is too short")
	ErrTooShortSecret = errors.New("password is too short")
	ErrInvalidSecret  = errors.New("password must not contain line breaks")

	// Job posting errors.
	ErrEmptyProfession = errors.New("profession is empty")

	// CLI flow control.
	ErrTooManyAttempts = errors.New("too many attempts")
)
