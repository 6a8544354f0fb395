package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName               = errors.New("signature request name is required")
	ErrNoSigners               = errors.New("at least one signer is required")
	ErrEmptyBinaryPropertyName = errors.New("binary property name is required")
	ErrEmptyFirstName          = errors.New("signer first name is required")
	ErrEmptyLastName           = errors.New("signer last name is required")
	ErrInvalidEmail            = errors.New("invalid signer email")
)
