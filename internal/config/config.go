// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/MKhiriev/yousign-node/models"
)

// Default values applied after all sources have been merged.
const (
	DefaultSandboxURL         = "https://api-sandbox.yousign.app/v3/"
	DefaultProductionURL      = "https://api.yousign.app/v3/"
	DefaultRequestTimeout     = 30 * time.Second
	DefaultServerTimeout      = 2 * time.Minute
	DefaultMaxUploadSize      = 32 << 20
	DefaultTokenIssuer        = "yousign-node"
	DefaultBinaryPropertyName = "data"
)

// StructuredConfig is the top-level configuration container of the node. It
// is populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-wide settings such as the log level.
	App App `envPrefix:"APP_"`

	// Yousign holds the remote API endpoints and credential sources.
	Yousign Yousign `envPrefix:"YOUSIGN_"`

	// Node holds the default node parameters and execution policy.
	Node Node `envPrefix:"NODE_"`

	// Storage holds the binary data storage and journal settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the settings of the HTTP trigger.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-wide settings.
type App struct {
	// LogLevel is the minimal zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Yousign holds the configuration of the Yousign API client.
type Yousign struct {
	// APIKey is the secret rendered as a bearer token on every call.
	// Env: YOUSIGN_API_KEY
	APIKey string `env:"API_KEY"`

	// APIKeyFile is a path to a file holding the API key. It is read on
	// every call so rotated secrets are picked up without a restart.
	// Env: YOUSIGN_API_KEY_FILE
	APIKeyFile string `env:"API_KEY_FILE"`

	// Sandbox is the default value of the sandbox node parameter. Nil means
	// "not configured" so that false set by one source is kept.
	// Env: YOUSIGN_SANDBOX
	Sandbox *bool `env:"SANDBOX"`

	// SandboxURL is the base URL of the sandbox environment.
	// Env: YOUSIGN_SANDBOX_URL
	SandboxURL string `env:"SANDBOX_URL"`

	// ProductionURL is the base URL of the production environment.
	// Env: YOUSIGN_PRODUCTION_URL
	ProductionURL string `env:"PRODUCTION_URL"`

	// RequestTimeout bounds a single API call.
	// Env: YOUSIGN_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Node holds the default node parameters and the execution policy.
type Node struct {
	// Name is the default signature request name.
	// Env: NODE_NAME
	Name string `env:"NAME"`

	// BinaryPropertyName is the default attachment slot of the document.
	// Env: NODE_BINARY_PROPERTY_NAME
	BinaryPropertyName string `env:"BINARY_PROPERTY_NAME"`

	// ContinueOnFail keeps processing the remaining items after a failed
	// one instead of aborting the run.
	// Env: NODE_CONTINUE_ON_FAIL
	ContinueOnFail bool `env:"CONTINUE_ON_FAIL"`

	// ValidateParameters rejects empty signer lists and malformed emails
	// before the document is uploaded.
	// Env: NODE_VALIDATE_PARAMETERS
	ValidateParameters bool `env:"VALIDATE_PARAMETERS"`

	// ManifestPath is the execution manifest read by the command line host.
	// Env: NODE_MANIFEST
	ManifestPath string `env:"MANIFEST"`
}

// Storage groups the binary data storage and journal settings.
type Storage struct {
	// DB holds the execution journal database settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the file-system binary data storage settings.
	Files Files `envPrefix:"FILES_"`

	// S3 holds the object storage settings for binary data.
	S3 S3 `envPrefix:"S3_"`
}

// DB holds the execution journal database settings.
type DB struct {
	// DSN selects the journal backend: a postgres:// URL, a SQLite file
	// path, or empty to disable the journal.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds file-system settings for binary data.
type Files struct {
	// BinaryDataDir is the directory binary data IDs are resolved against.
	// Env: STORAGE_FILES_BINARY_DATA_DIR
	BinaryDataDir string `env:"BINARY_DATA_DIR"`
}

// S3 holds object storage settings for binary data. When Bucket is empty
// the file storage is used.
type S3 struct {
	// Env: STORAGE_S3_BUCKET
	Bucket string `env:"BUCKET"`
	// Env: STORAGE_S3_REGION
	Region string `env:"REGION"`
	// Endpoint overrides the AWS endpoint (LocalStack, MinIO).
	// Env: STORAGE_S3_ENDPOINT
	Endpoint string `env:"ENDPOINT"`
	// Env: STORAGE_S3_ACCESS_KEY_ID
	AccessKeyID string `env:"ACCESS_KEY_ID"`
	// Env: STORAGE_S3_SECRET_ACCESS_KEY
	SecretAccessKey string `env:"SECRET_ACCESS_KEY"`
}

// Server holds the settings of the HTTP trigger.
type Server struct {
	// HTTPAddress is the listen address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the processing of one trigger request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxUploadSize limits the multipart body of a trigger request in bytes.
	// Env: SERVER_MAX_UPLOAD_SIZE
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE"`

	// TokenSignKey enables JWT authentication of trigger requests when set.
	// Env: SERVER_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected "iss" claim of trigger tokens.
	// Env: SERVER_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`
}

// SandboxEnabled returns the configured sandbox default, true when unset.
func (y Yousign) SandboxEnabled() bool {
	if y.Sandbox == nil {
		return true
	}
	return *y.Sandbox
}

// DefaultParameters returns the node parameters used for everything a
// manifest or a trigger request leaves out.
func (cfg *StructuredConfig) DefaultParameters() models.Parameters {
	return models.Parameters{
		Sandbox:            cfg.Yousign.SandboxEnabled(),
		Name:               cfg.Node.Name,
		BinaryPropertyName: cfg.Node.BinaryPropertyName,
	}.WithDefaults()
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (later sources win
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags (args, usually os.Args[1:])
//  3. JSON file (path resolved from sources 1 and 2)
//
// Defaults are filled in for every field left empty.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
