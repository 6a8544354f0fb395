// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer used to talk to the Yousign v3
// REST API.
//
// The primary abstraction is [YousignAdapter], which decouples the
// orchestration in the service layer from HTTP details: environment routing
// (sandbox or production), header management, authentication through a
// credentials.Provider and the multipart/JSON encoding of request bodies.
//
// Every failure of a remote call (transport error, non-2xx status or an
// unusable response) is reported as an [*APICallError] so callers can tell
// remote failures apart from input problems with [IsAPICallError].
package adapter

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/yousign-node/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/yousign_adapter_mock.go -package=mock

// CallBody is the optional body of a [YousignAdapter.Call]. At most one of
// JSON and Multipart is set; both nil sends the request without a body.
type CallBody struct {
	JSON      any
	Multipart *models.DocumentUpload
}

// YousignAdapter performs authenticated calls against the Yousign API.
type YousignAdapter interface {
	// Call sends one request to path (relative to the API version root) on
	// the sandbox or production host and returns the raw JSON response body.
	// An empty response body is returned as "{}".
	Call(ctx context.Context, sandbox bool, method, path string, body CallBody) (json.RawMessage, error)

	// UploadDocument uploads doc as a multipart form to "documents" and
	// returns the identifier of the created document.
	UploadDocument(ctx context.Context, sandbox bool, doc *models.DocumentUpload) (string, error)

	// CreateSignatureRequest posts body to "signature_requests" and returns
	// the identifier of the created request.
	CreateSignatureRequest(ctx context.Context, sandbox bool, body models.SignatureRequestBody) (string, error)

	// ActivateSignatureRequest activates the request identified by id and
	// returns the full response unmodified.
	ActivateSignatureRequest(ctx context.Context, sandbox bool, id string) (models.ActivationResult, error)
}
