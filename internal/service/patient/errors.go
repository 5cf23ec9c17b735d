package patient

import "errors"

var (
	ErrPatientNotFound = errors.New("patient not found")
	ErrNameRequired    = errors.New("patient name is required")
	ErrInvalidPhone    = errors.New("invalid phone number")
	ErrInvalidValue    = errors.New("invalid field value")
	ErrAccessDenied    = errors.New("access denied")
)
