// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package credentials injects the Yousign API key into outgoing requests.
//
// The adapter never holds a secret itself: every call is handed to a
// [Provider], which decorates the prepared *resty.Request with the
// Authorization header. Two providers ship with the package: [APIKey] for a
// key taken from the configuration and [File] for a key mounted as a file.
package credentials

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/yousign-node/internal/config"
	"github.com/go-resty/resty/v2"
)

// TypeYousignAPI is the credential type name of the Yousign API key.
const TypeYousignAPI = "yousignApi"

var (
	// ErrEmptyAPIKey is returned when the resolved API key is blank.
	ErrEmptyAPIKey = errors.New("empty api key")
	// ErrNoCredentials is returned by New when neither a key nor a key file
	// is configured.
	ErrNoCredentials = errors.New("no yousign credentials configured")
)

// Provider authenticates outgoing Yousign API requests.
type Provider interface {
	// Type returns the credential type name.
	Type() string

	// Authenticate sets the authentication headers on req. It returns an
	// error without touching req when no usable secret is available.
	Authenticate(ctx context.Context, req *resty.Request) error
}

// New picks the provider matching cfg: the key file wins over an inline key
// so mounted secrets can be rotated without a restart.
func New(cfg config.Yousign) (Provider, error) {
	switch {
	case cfg.APIKeyFile != "":
		return NewFile(cfg.APIKeyFile), nil
	case cfg.APIKey != "":
		return NewAPIKey(cfg.APIKey), nil
	default:
		return nil, ErrNoCredentials
	}
}

func setBearer(req *resty.Request, key string) error {
	if key == "" {
		return ErrEmptyAPIKey
	}
	req.SetAuthScheme("Bearer").SetAuthToken(key)
	return nil
}

func wrapErr(op string, err error) error {
	return fmt.Errorf("%s credentials: %w", op, err)
}
