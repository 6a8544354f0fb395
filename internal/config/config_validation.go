// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks the settings every host needs: credentials and API base
// URLs, plus the consistency of the storage settings.
func (cfg *StructuredConfig) validate() error {
	if cfg.Yousign.APIKey == "" && cfg.Yousign.APIKeyFile == "" {
		return fmt.Errorf("%w: api key or api key file is required", ErrInvalidYousignConfigs)
	}

	for _, raw := range []string{cfg.Yousign.SandboxURL, cfg.Yousign.ProductionURL} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: bad base url %q", ErrInvalidYousignConfigs, raw)
		}
	}

	if cfg.Yousign.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidYousignConfigs)
	}

	if cfg.Storage.S3.Bucket != "" && cfg.Storage.S3.Region == "" {
		return fmt.Errorf("%w: s3 region is required with a bucket", ErrInvalidStorageConfigs)
	}

	if (cfg.Storage.S3.AccessKeyID == "") != (cfg.Storage.S3.SecretAccessKey == "") {
		return fmt.Errorf("%w: s3 access key id and secret must be set together", ErrInvalidStorageConfigs)
	}

	return nil
}

// ValidateServer checks the settings required by the HTTP trigger.
func (cfg *StructuredConfig) ValidateServer() error {
	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: listen address is required", ErrInvalidServerConfigs)
	}
	if cfg.Server.MaxUploadSize <= 0 {
		return fmt.Errorf("%w: max upload size must be positive", ErrInvalidServerConfigs)
	}
	return nil
}

// ValidateNode checks the settings required by the command line host.
func (cfg *StructuredConfig) ValidateNode() error {
	if cfg.Node.ManifestPath == "" {
		return fmt.Errorf("%w: manifest path is required", ErrInvalidNodeConfigs)
	}
	return nil
}
