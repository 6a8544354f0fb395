// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Fixed signer settings sent with every signature request.
const (
	SignerLocale                     = "fr"
	SignatureLevelElectronic         = "electronic_signature"
	SignatureAuthenticationModeNoOTP = "no_otp"
)

// SignerInput is a signer as configured on the node: one entry per person
// who has to sign the document.
type SignerInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// SignerInfo is the personal part of a [Signer] in the Yousign API format.
type SignerInfo struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Locale    string `json:"locale"`
}

// Signer is the signer payload expected by the create signature request
// endpoint. It is derived from a [SignerInput] and never persisted.
type Signer struct {
	Info                        SignerInfo `json:"info"`
	SignatureLevel              string     `json:"signature_level"`
	SignatureAuthenticationMode string     `json:"signature_authentication_mode"`
}
