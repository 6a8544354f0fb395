// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrTokenIsExpired is reported to callers presenting an expired token.
	ErrTokenIsExpired = errors.New("token is expired")

	// ErrInvalidParametersField is returned when the "parameters" form field
	// or the manifest parameters are not valid JSON.
	ErrInvalidParametersField = errors.New("invalid parameters field")

	// ErrInvalidItemField is returned when the "json" form field is not a
	// JSON object.
	ErrInvalidItemField = errors.New("invalid json field")

	// ErrInvalidManifest is returned when a run request body is not a valid
	// manifest.
	ErrInvalidManifest = errors.New("invalid manifest")

	// ErrInvalidMultipartForm is returned when a trigger request is not a
	// readable multipart form or exceeds the upload limit.
	ErrInvalidMultipartForm = errors.New("invalid multipart form")
)
