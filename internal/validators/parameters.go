package validators

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/MKhiriev/yousign-node/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldName               = "name"
	FieldSigners            = "signers"
	FieldBinaryPropertyName = "binary_property_name"

	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldEmail     = "email"
)

// ParametersValidator checks node parameters and signer inputs.
type ParametersValidator struct {
}

func NewParametersValidator() Validator {
	return &ParametersValidator{}
}

func (v *ParametersValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Parameters:
		return v.validateParameters(ctx, value, fields...)
	case *models.Parameters:
		return v.validateParameters(ctx, *value, fields...)

	case models.SignerInput:
		return v.validateSigner(ctx, value, fields...)
	case *models.SignerInput:
		return v.validateSigner(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ParametersValidator) validateParameters(ctx context.Context, params models.Parameters, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldBinaryPropertyName, FieldSigners}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(params.Name) == "" {
				return ErrEmptyName
			}
		case FieldBinaryPropertyName:
			if strings.TrimSpace(params.BinaryPropertyName) == "" {
				return ErrEmptyBinaryPropertyName
			}
		case FieldSigners:
			if len(params.Signers) == 0 {
				return ErrNoSigners
			}
			for i, signer := range params.Signers {
				if err := v.validateSigner(ctx, signer); err != nil {
					return fmt.Errorf("signer %d: %w", i, err)
				}
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *ParametersValidator) validateSigner(_ context.Context, signer models.SignerInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFirstName, FieldLastName, FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldFirstName:
			if strings.TrimSpace(signer.FirstName) == "" {
				return ErrEmptyFirstName
			}
		case FieldLastName:
			if strings.TrimSpace(signer.LastName) == "" {
				return ErrEmptyLastName
			}
		case FieldEmail:
			if !isValidEmail(signer.Email) {
				return fmt.Errorf("%w: %q", ErrInvalidEmail, signer.Email)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

// isValidEmail accepts a bare RFC 5322 address; display names such as
// "John <john@example.com>" are rejected since the API expects the address
// only.
func isValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
