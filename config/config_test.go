package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/personnel/format/text"
)

func TestLoad(t *testing.T) {
	var testCases = []struct {
		description string
		yaml        string
		env         string
		expect      func(t *testing.T, cfg *Config)
		errContains []string
	}{
		{
			description: "defaults",
			yaml:        ``,
			expect: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
				assert.Equal(t, DefaultTimeout, cfg.Timeout)
				assert.Equal(t, text.Wire, cfg.WireFormat())
				assert.Equal(t, text.Local, cfg.LocalFormat())
				assert.Equal(t, CacheBackendNone, cfg.Cache.Backend)
				assert.Equal(t, DefaultTTL, cfg.Cache.TTL)
				assert.Equal(t, "info", cfg.Log.Level)
			},
		},
		{
			description: "explicit values",
			yaml: `
base_url: https://directory.example.com
timeout: 5s
casing:
  wire: snake
  local: camel
cache:
  backend: Redis
  ttl: 2m
  redis:
    addr: redis:6379
    db: 2
log:
  level: debug
  development: true
`,
			expect: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "https://directory.example.com", cfg.BaseURL)
				assert.Equal(t, 5*time.Second, cfg.Timeout)
				assert.Equal(t, text.CaseFormatLowerUnderscore, cfg.WireFormat())
				assert.Equal(t, text.CaseFormatLowerCamel, cfg.LocalFormat())
				assert.Equal(t, CacheBackendRedis, cfg.Cache.Backend)
				assert.Equal(t, 2*time.Minute, cfg.Cache.TTL)
				assert.Equal(t, "redis:6379", cfg.Cache.Redis.Addr)
				assert.Equal(t, 2, cfg.Cache.Redis.DB)
				assert.Equal(t, "personnel:", cfg.Cache.Redis.Namespace)
				assert.True(t, cfg.Log.Development)
			},
		},
		{
			description: "env override",
			yaml:        `base_url: http://ignored:1`,
			env:         "http://override:8080",
			expect: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "http://override:8080", cfg.BaseURL)
			},
		},
		{
			description: "invalid values",
			yaml: `
base_url: ftp://x
casing:
  wire: kebab
cache:
  backend: disk
  ttl: -1s
`,
			errContains: []string{"invalid base_url", "unsupported casing.wire: kebab", "unsupported cache.backend: disk", "invalid cache.ttl"},
		},
		{
			description: "malformed yaml",
			yaml:        "base_url: [",
			errContains: []string{"yaml"},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			t.Setenv(EnvBaseURL, testCase.env)
			cfg, err := Load([]byte(testCase.yaml))
			if len(testCase.errContains) > 0 {
				require.Error(t, err)
				for _, fragment := range testCase.errContains {
					assert.Contains(t, err.Error(), fragment)
				}
				return
			}
			require.NoError(t, err)
			testCase.expect(t, cfg)
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Setenv(EnvBaseURL, "")
	_, err := LoadFile("")
	assert.ErrorIs(t, err, ErrEmptyPath)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	location := filepath.Join(t.TempDir(), "personnel.yaml")
	require.NoError(t, os.WriteFile(location, []byte("base_url: http://localhost:4000\n"), 0o600))
	cfg, err := LoadFile(location)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:4000", cfg.BaseURL)
}

func TestDefault(t *testing.T) {
	t.Setenv(EnvBaseURL, "")
	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
}
