package permission

import "errors"

var (
	ErrProfileNotFound       = errors.New("permission profile not found")
	ErrInvalidPermissionType = errors.New("permission type must be viewer or creator")
	ErrPatientNotFound       = errors.New("patient not found")
	ErrAlreadyGranted        = errors.New("access already granted for this patient")
	ErrGrantNotFound         = errors.New("access grant not found")
)
