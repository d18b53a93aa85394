package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/pflag"

	"github.com/healthguidelab/keto365/internal/logging"
)

// Config holds runtime settings for the Keto365 client.
//
// Fields:
//   - DatabasePath: SQLite file holding the login flag and the user profile.
//   - VerifierEndpoint: host:port of the identity backend; empty skips the
//     reachability probe.
//   - VerifierService: grpc.health.v1 service name to probe; empty means
//     the whole server.
//   - ProbeTimeout: deadline of a single health probe.
//   - TokenSecret / TokenPublicKeyFile: HMAC secret or RSA public key used to
//     verify ID tokens. With neither set, verification is unavailable.
//   - TokenIssuer / TokenAudience: expected "iss" and "aud" claims.
//   - LogLevel / LogFormat: see logging.New.
type Config struct {
	DatabasePath       string
	VerifierEndpoint   string
	VerifierService    string
	ProbeTimeout       time.Duration
	TokenSecret        string
	TokenPublicKeyFile string
	TokenIssuer        string
	TokenAudience      string
	LogLevel           string
	LogFormat          string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "keto365.db"
	c.ProbeTimeout = 3 * time.Second
	c.TokenIssuer = "https://accounts.google.com"
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// Load builds a Config from defaults, then the file at path (if not empty),
// then the flags of fs that were explicitly set. Later sources take
// precedence over earlier ones.
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if path != "" {
		if err := parseFile(cfg, path); err != nil {
			return nil, err
		}
	}

	if fs != nil {
		if err := applyFlags(cfg, fs); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return errors.New("database path must not be empty")
	}
	if c.ProbeTimeout <= 0 {
		return fmt.Errorf("probe timeout must be positive, got %s", c.ProbeTimeout)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	if c.TokenSecret != "" && c.TokenPublicKeyFile != "" {
		return errors.New("token secret and token key file are mutually exclusive")
	}
	return nil
}
