// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/yousign-node/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validSigner() models.SignerInput {
	return models.SignerInput{FirstName: "John", LastName: "Doe", Email: "john@example.com"}
}

func validParameters() models.Parameters {
	return models.Parameters{
		Sandbox:            true,
		Name:               "Contract A",
		Signers:            []models.SignerInput{validSigner()},
		BinaryPropertyName: "data",
	}
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewParametersValidator()
	ctx := context.Background()

	params := validParameters()
	signer := validSigner()

	assert.NoError(t, v.Validate(ctx, params))
	assert.NoError(t, v.Validate(ctx, &params))
	assert.NoError(t, v.Validate(ctx, signer))
	assert.NoError(t, v.Validate(ctx, &signer))
	assert.ErrorIs(t, v.Validate(ctx, "parameters"), ErrUnsupportedType)
}

// ---------------------------------------------------------------------------
// Parameters
// ---------------------------------------------------------------------------

func TestValidateParameters(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *models.Parameters)
		wantErr error
	}{
		{name: "valid", mutate: func(*models.Parameters) {}},
		{name: "blank name", mutate: func(p *models.Parameters) { p.Name = "  " }, wantErr: ErrEmptyName},
		{name: "no binary property", mutate: func(p *models.Parameters) { p.BinaryPropertyName = "" }, wantErr: ErrEmptyBinaryPropertyName},
		{name: "no signers", mutate: func(p *models.Parameters) { p.Signers = nil }, wantErr: ErrNoSigners},
		{
			name:    "bad second signer",
			mutate:  func(p *models.Parameters) { p.Signers = append(p.Signers, models.SignerInput{FirstName: "A", LastName: "B", Email: "nope"}) },
			wantErr: ErrInvalidEmail,
		},
		{name: "sandbox false is fine", mutate: func(p *models.Parameters) { p.Sandbox = false }},
	}

	v := NewParametersValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validParameters()
			tt.mutate(&p)

			err := v.Validate(context.Background(), p)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateParameters_SignerIndexInError(t *testing.T) {
	p := validParameters()
	p.Signers = append(p.Signers, models.SignerInput{FirstName: "", LastName: "Roe", Email: "jane@example.com"})

	err := NewParametersValidator().Validate(context.Background(), p)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyFirstName)
	assert.Contains(t, err.Error(), "signer 1")
}

func TestValidateParameters_FieldScoping(t *testing.T) {
	p := models.Parameters{Name: "Only name"}

	assert.NoError(t, NewParametersValidator().Validate(context.Background(), p, FieldName))
	assert.ErrorIs(t, NewParametersValidator().Validate(context.Background(), p, FieldSigners), ErrNoSigners)
}

func TestValidateParameters_UnknownField(t *testing.T) {
	err := NewParametersValidator().Validate(context.Background(), validParameters(), "locale")

	assert.ErrorIs(t, err, ErrUnknownField)
}

// ---------------------------------------------------------------------------
// Signers
// ---------------------------------------------------------------------------

func TestValidateSigner_Email(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{email: "john@example.com", valid: true},
		{email: "john.doe+sign@sub.example.fr", valid: true},
		{email: "", valid: false},
		{email: "john", valid: false},
		{email: "john@", valid: false},
		{email: "John Doe <john@example.com>", valid: false},
		{email: " john@example.com", valid: false},
	}

	v := NewParametersValidator()
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			s := validSigner()
			s.Email = tt.email

			err := v.Validate(context.Background(), s)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidEmail)
			}
		})
	}
}

func TestValidateSigner_Names(t *testing.T) {
	v := NewParametersValidator()

	s := validSigner()
	s.LastName = ""
	assert.ErrorIs(t, v.Validate(context.Background(), s), ErrEmptyLastName)

	s = validSigner()
	s.FirstName = "\t"
	assert.ErrorIs(t, v.Validate(context.Background(), s), ErrEmptyFirstName)
}
