package patient

import "errors"

var (
	ErrValidation       = errors.New("validation failed")
	ErrMissingName      = errors.New("name is required")
	ErrInvalidAge       = errors.New("age must be a non-negative integer")
	ErrMissingCondition = errors.New("condition is required")
	ErrPatientNotFound  = errors.New("patient not found")
	ErrIndexOutOfRange  = errors.New("patient index out of range")
)
