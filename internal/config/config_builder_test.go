package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func boolPtr(b bool) *bool { return &b }

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that defaults are filled in and that the
// missing API key is reported.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYousignConfigs)
	require.NotNil(t, cfg)
	assert.Equal(t, DefaultSandboxURL, cfg.Yousign.SandboxURL)
	assert.Equal(t, DefaultProductionURL, cfg.Yousign.ProductionURL)
	assert.Equal(t, DefaultRequestTimeout, cfg.Yousign.RequestTimeout)
	assert.Equal(t, DefaultBinaryPropertyName, cfg.Node.BinaryPropertyName)
	assert.Equal(t, int64(DefaultMaxUploadSize), cfg.Server.MaxUploadSize)
	assert.Equal(t, DefaultTokenIssuer, cfg.Server.TokenIssuer)
	assert.True(t, cfg.Yousign.SandboxEnabled())
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourcesWin verifies that a non-zero field of a later config
// overrides the same field of an earlier one.
func TestBuild_LaterSourcesWin(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			Yousign: Yousign{APIKey: "env-key"},
			Node:    Node{Name: "From env"},
		},
		&StructuredConfig{
			Yousign: Yousign{APIKey: "flag-key"},
			App:     App{LogLevel: "warn"},
		},
	)

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, "flag-key", cfg.Yousign.APIKey)
	assert.Equal(t, "From env", cfg.Node.Name)
	assert.Equal(t, "warn", cfg.App.LogLevel)
}

func TestBuild_SandboxFalseIsKept(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Yousign: Yousign{APIKey: "k", Sandbox: boolPtr(false)},
	})

	cfg, err := b.build()

	require.NoError(t, err)
	assert.False(t, cfg.Yousign.SandboxEnabled())
}

func TestBuild_InvalidBaseURL(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Yousign: Yousign{APIKey: "k", SandboxURL: "not a url"},
	})

	_, err := b.build()

	assert.ErrorIs(t, err, ErrInvalidYousignConfigs)
}

func TestBuild_BucketWithoutRegion(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Yousign: Yousign{APIKey: "k"},
		Storage: Storage{S3: S3{Bucket: "documents"}},
	})

	_, err := b.build()

	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestBuild_PartialS3Credentials(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Yousign: Yousign{APIKeyFile: "/run/secrets/yousign"},
		Storage: Storage{S3: S3{Bucket: "documents", Region: "eu-west-3", AccessKeyID: "id"}},
	})

	_, err := b.build()

	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"YOUSIGN_API_KEY": "secret",
		"NODE_NAME":       "Contract A",
	})

	b := newConfigBuilder().withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "secret", b.configs[0].Yousign.APIKey)
	assert.Equal(t, "Contract A", b.configs[0].Node.Name)
}

func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	setEnvVars(t, map[string]string{
		"SERVER_MAX_UPLOAD_SIZE": "big",
	})

	b := newConfigBuilder().withEnv()

	require.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_AppendsConfig(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-api-key", "secret"})

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "secret", b.configs[0].Yousign.APIKey)
}

func TestWithFlags_SetsErrorOnUnknownFlag(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-unknown"})

	require.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"yousign": map[string]any{"api_key": "from-json"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "from-json", b.configs[1].Yousign.APIKey)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})

	b.withJSON()

	require.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_UsesLastPath verifies that the flag-provided path wins over
// the env-provided one.
func TestWithJSON_UsesLastPath(t *testing.T) {
	first := writeTempJSONConfig(t, map[string]any{"node": map[string]any{"name": "first"}})
	second := writeTempJSONConfig(t, map[string]any{"node": map[string]any{"name": "second"}})

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: first},
		&StructuredConfig{JSONFilePath: second},
	)

	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "second", b.configs[2].Node.Name)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig_AllSources(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"node": map[string]any{"name": "From JSON"},
	})
	setEnvVars(t, map[string]string{
		"YOUSIGN_API_KEY":         "env-key",
		"YOUSIGN_SANDBOX":         "false",
		"YOUSIGN_REQUEST_TIMEOUT": "5s",
		"CONFIG":                  path,
	})

	cfg, err := GetStructuredConfig([]string{"-api-key", "flag-key", "-continue-on-fail"})

	require.NoError(t, err)
	assert.Equal(t, "flag-key", cfg.Yousign.APIKey)
	assert.False(t, cfg.Yousign.SandboxEnabled())
	assert.Equal(t, 5*time.Second, cfg.Yousign.RequestTimeout)
	assert.True(t, cfg.Node.ContinueOnFail)
	assert.Equal(t, "From JSON", cfg.Node.Name)
	assert.Equal(t, DefaultBinaryPropertyName, cfg.Node.BinaryPropertyName)
}

func TestValidateServer(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()
	assert.ErrorIs(t, cfg.ValidateServer(), ErrInvalidServerConfigs)

	cfg.Server.HTTPAddress = "localhost:8080"
	assert.NoError(t, cfg.ValidateServer())
}

func TestValidateNode(t *testing.T) {
	cfg := &StructuredConfig{}
	assert.ErrorIs(t, cfg.ValidateNode(), ErrInvalidNodeConfigs)

	cfg.Node.ManifestPath = "items.json"
	assert.NoError(t, cfg.ValidateNode())
}

func TestDefaultParameters(t *testing.T) {
	cfg := &StructuredConfig{}
	params := cfg.DefaultParameters()
	assert.True(t, params.Sandbox)
	assert.Equal(t, "A Signature Request", params.Name)
	assert.Equal(t, "data", params.BinaryPropertyName)
	assert.Empty(t, params.Signers)

	cfg = &StructuredConfig{
		Yousign: Yousign{Sandbox: boolPtr(false)},
		Node:    Node{Name: "NDA", BinaryPropertyName: "document"},
	}
	params = cfg.DefaultParameters()
	assert.False(t, params.Sandbox)
	assert.Equal(t, "NDA", params.Name)
	assert.Equal(t, "document", params.BinaryPropertyName)
}
