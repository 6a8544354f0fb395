package credentials

import (
	"context"
	"strings"

	"github.com/go-resty/resty/v2"
)

// APIKey authenticates with a static key.
type APIKey struct {
	key string
}

// NewAPIKey returns an APIKey provider for key. Surrounding whitespace is
// dropped.
func NewAPIKey(key string) *APIKey {
	return &APIKey{key: strings.TrimSpace(key)}
}

// Type implements [Provider].
func (a *APIKey) Type() string {
	return TypeYousignAPI
}

// Authenticate implements [Provider].
func (a *APIKey) Authenticate(_ context.Context, req *resty.Request) error {
	if err := setBearer(req, a.key); err != nil {
		return wrapErr("api key", err)
	}
	return nil
}
