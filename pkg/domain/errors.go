package domain

import "errors"

var (
	ErrNotFound             = errors.New("entity not found")
	ErrDuplicateID          = errors.New("duplicate entity id")
	ErrUnsupportedType      = errors.New("unsupported file type")
	ErrInvalidRecipient     = errors.New("invalid recipient")
	ErrInvalidPermission    = errors.New("invalid share permission")
	ErrInvalidPlan          = errors.New("unknown plan")
	ErrConfirmationRequired = errors.New("confirmation required")
	ErrNoSession            = errors.New("no active session")
)
