// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Default node parameter values.
const (
	DefaultSignatureRequestName = "A Signature Request"
	DefaultBinaryPropertyName   = "data"
)

// Parameters are the node parameters resolved by the host for an execution.
type Parameters struct {
	// Sandbox selects the sandbox API environment for all calls of an item.
	Sandbox bool `json:"sandbox"`

	// Name is the display name of the signature request.
	Name string `json:"name"`

	// Signers lists who has to sign, in the order they are sent to the API.
	Signers []SignerInput `json:"signers"`

	// BinaryPropertyName is the attachment slot holding the document.
	BinaryPropertyName string `json:"binaryPropertyName"`
}

// DefaultParameters returns the parameters a freshly added node starts with.
func DefaultParameters() Parameters {
	return Parameters{
		Sandbox:            true,
		Name:               DefaultSignatureRequestName,
		BinaryPropertyName: DefaultBinaryPropertyName,
	}
}

// WithDefaults fills the empty string parameters with their default values.
// Sandbox is left untouched since false is a meaningful choice.
func (p Parameters) WithDefaults() Parameters {
	if p.Name == "" {
		p.Name = DefaultSignatureRequestName
	}
	if p.BinaryPropertyName == "" {
		p.BinaryPropertyName = DefaultBinaryPropertyName
	}
	return p
}
