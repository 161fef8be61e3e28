// Package config loads personnel client configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/viant/personnel/format/text"
	"gopkg.in/yaml.v3"
)

const (
	// EnvBaseURL overrides configured base URL
	EnvBaseURL = "PERSONNEL_BASE_URL"

	DefaultBaseURL = "http://localhost:3333"
	DefaultTimeout = 30 * time.Second
	DefaultTTL     = time.Minute

	CacheBackendNone   = ""
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

// ErrEmptyPath is returned when config location is empty
var ErrEmptyPath = errors.New("config: empty path")

type (
	// Config represents client configuration
	Config struct {
		BaseURL string        `yaml:"base_url"`
		Timeout time.Duration `yaml:"timeout"`
		Casing  Casing        `yaml:"casing"`
		Cache   Cache         `yaml:"cache"`
		Log     Log           `yaml:"log"`
	}

	// Casing represents wire and local key conventions
	Casing struct {
		Wire  string `yaml:"wire"`
		Local string `yaml:"local"`
	}

	// Cache represents response cache settings
	Cache struct {
		Backend string        `yaml:"backend"`
		TTL     time.Duration `yaml:"ttl"`
		Redis   Redis         `yaml:"redis"`
	}

	// Redis represents redis cache backend settings
	Redis struct {
		Addr      string `yaml:"addr"`
		Password  string `yaml:"password"`
		DB        int    `yaml:"db"`
		Namespace string `yaml:"namespace"`
	}

	// Log represents logger settings
	Log struct {
		Level       string `yaml:"level"`
		Development bool   `yaml:"development"`
	}
)

// Default returns default configuration
func Default() *Config {
	ret := &Config{}
	ret.Init()
	return ret
}

// LoadFile loads, initialises and validates configuration file
func LoadFile(location string) (*Config, error) {
	if location == "" {
		return nil, ErrEmptyPath
	}
	data, err := os.ReadFile(location)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %v: %w", location, err)
	}
	ret, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("invalid config %v: %w", location, err)
	}
	return ret, nil
}

// Load decodes, initialises and validates configuration
func Load(data []byte) (*Config, error) {
	ret := &Config{}
	if err := yaml.Unmarshal(data, ret); err != nil {
		return nil, err
	}
	ret.Init()
	if err := ret.Validate(); err != nil {
		return nil, err
	}
	return ret, nil
}

// Init applies environment override and defaults
func (c *Config) Init() {
	if value := strings.TrimSpace(os.Getenv(EnvBaseURL)); value != "" {
		c.BaseURL = value
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.Casing.Wire == "" {
		c.Casing.Wire = string(text.Wire)
	}
	if c.Casing.Local == "" {
		c.Casing.Local = string(text.Local)
	}
	c.Cache.Backend = strings.ToLower(strings.TrimSpace(c.Cache.Backend))
	if c.Cache.TTL == 0 {
		c.Cache.TTL = DefaultTTL
	}
	if c.Cache.Redis.Addr == "" {
		c.Cache.Redis.Addr = "localhost:6379"
	}
	if c.Cache.Redis.Namespace == "" {
		c.Cache.Redis.Namespace = "personnel:"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate checks configuration
func (c *Config) Validate() error {
	var result *multierror.Error
	if parsed, err := url.Parse(c.BaseURL); err != nil {
		result = multierror.Append(result, fmt.Errorf("invalid base_url: %w", err))
	} else if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		result = multierror.Append(result, fmt.Errorf("invalid base_url: %v, expected absolute http(s) URL", c.BaseURL))
	}
	if c.Timeout < 0 {
		result = multierror.Append(result, fmt.Errorf("invalid timeout: %v", c.Timeout))
	}
	if !text.NewCaseFormat(c.Casing.Wire).IsDefined() {
		result = multierror.Append(result, fmt.Errorf("unsupported casing.wire: %v", c.Casing.Wire))
	}
	if !text.NewCaseFormat(c.Casing.Local).IsDefined() {
		result = multierror.Append(result, fmt.Errorf("unsupported casing.local: %v", c.Casing.Local))
	}
	switch c.Cache.Backend {
	case CacheBackendNone, CacheBackendMemory, CacheBackendRedis:
	default:
		result = multierror.Append(result, fmt.Errorf("unsupported cache.backend: %v", c.Cache.Backend))
	}
	if c.Cache.TTL <= 0 {
		result = multierror.Append(result, fmt.Errorf("invalid cache.ttl: %v", c.Cache.TTL))
	}
	return result.ErrorOrNil()
}

// WireFormat returns wire key convention
func (c *Config) WireFormat() text.CaseFormat {
	return text.NewCaseFormat(c.Casing.Wire)
}

// LocalFormat returns local key convention
func (c *Config) LocalFormat() text.CaseFormat {
	return text.NewCaseFormat(c.Casing.Local)
}
