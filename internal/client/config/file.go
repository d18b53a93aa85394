package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/healthguidelab/keto365/internal/timex"
)

// FileConfig is a DTO used exclusively for file unmarshalling. Durations
// use timex.Duration so they may be written as "3s" or as nanoseconds.
// Zero values leave the corresponding Config field untouched.
type FileConfig struct {
	DatabasePath       string         `json:"database_path" yaml:"database_path"`
	VerifierEndpoint   string         `json:"verifier_endpoint" yaml:"verifier_endpoint"`
	VerifierService    string         `json:"verifier_service" yaml:"verifier_service"`
	ProbeTimeout       timex.Duration `json:"probe_timeout" yaml:"probe_timeout"`
	TokenSecret        string         `json:"token_secret" yaml:"token_secret"`
	TokenPublicKeyFile string         `json:"token_public_key_file" yaml:"token_public_key_file"`
	TokenIssuer        string         `json:"token_issuer" yaml:"token_issuer"`
	TokenAudience      string         `json:"token_audience" yaml:"token_audience"`
	LogLevel           string         `json:"log_level" yaml:"log_level"`
	LogFormat          string         `json:"log_format" yaml:"log_format"`
}

// parseFile overlays cfg with the file at path. Files ending in .yaml or
// .yml are YAML, anything else JSON.
func parseFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	fc.apply(cfg)
	return nil
}

func (fc FileConfig) apply(cfg *Config) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&cfg.DatabasePath, fc.DatabasePath)
	set(&cfg.VerifierEndpoint, fc.VerifierEndpoint)
	set(&cfg.VerifierService, fc.VerifierService)
	set(&cfg.TokenSecret, fc.TokenSecret)
	set(&cfg.TokenPublicKeyFile, fc.TokenPublicKeyFile)
	set(&cfg.TokenIssuer, fc.TokenIssuer)
	set(&cfg.TokenAudience, fc.TokenAudience)
	set(&cfg.LogLevel, fc.LogLevel)
	set(&cfg.LogFormat, fc.LogFormat)

	if fc.ProbeTimeout.Duration != 0 {
		cfg.ProbeTimeout = fc.ProbeTimeout.Duration
	}
}
