package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/draftops/mflgate/internal/mfl"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Upstream UpstreamConfig `yaml:"upstream"`
	CORS     CORSConfig     `yaml:"cors"`
}

type ServerConfig struct {
	// Addr is the listen address for the gateway, e.g. ":8080".
	Addr string `yaml:"addr"`
}

type UpstreamConfig struct {
	// BaseURL is the MFL API host. Override for testing against a stub.
	BaseURL string `yaml:"base_url"`

	// Timeout is the connection-level timeout for upstream calls. The gateway itself
	// enforces no other deadlines.
	Timeout time.Duration `yaml:"timeout"`
}

type CORSConfig struct {
	// AllowedOrigins restricts cross-origin access. Empty means any origin.
	AllowedOrigins []string `yaml:"allowed_origins"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr: ":8080",
		},
		Upstream: UpstreamConfig{
			BaseURL: mfl.DefaultBaseURL,
			Timeout: 30 * time.Second,
		},
	}
}

// Load reads the YAML config at path, fills in defaults and validates the result. An
// empty path yields the default configuration.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.Server.Addr == "" {
		c.Server.Addr = def.Server.Addr
	}
	if c.Upstream.BaseURL == "" {
		c.Upstream.BaseURL = def.Upstream.BaseURL
	}
	if c.Upstream.Timeout <= 0 {
		c.Upstream.Timeout = def.Upstream.Timeout
	}
}

func (c *Config) Validate() error {
	u, err := url.Parse(c.Upstream.BaseURL)
	if err != nil {
		return fmt.Errorf("parsing upstream.base_url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("upstream.base_url %q must include scheme and host", c.Upstream.BaseURL)
	}
	return nil
}
