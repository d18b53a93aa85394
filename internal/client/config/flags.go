package config

import (
	"github.com/spf13/pflag"
)

const (
	flagDB              = "db"
	flagVerifierAddr    = "verifier-addr"
	flagVerifierService = "verifier-service"
	flagProbeTimeout    = "probe-timeout"
	flagTokenSecret     = "token-secret"
	flagTokenKeyFile    = "token-key-file"
	flagIssuer          = "issuer"
	flagAudience        = "audience"
	flagLogLevel        = "log-level"
	flagLogFormat       = "log-format"
)

// RegisterFlags defines the configuration flags on fs. Their defaults are
// informational only: Load applies a flag only when it was set.
func RegisterFlags(fs *pflag.FlagSet) {
	var d Config
	d.LoadDefaults()

	fs.StringP(flagDB, "d", d.DatabasePath, "path to the SQLite database")
	fs.StringP(flagVerifierAddr, "a", d.VerifierEndpoint, "address:port of the identity backend")
	fs.String(flagVerifierService, d.VerifierService, "health service name of the identity backend")
	fs.Duration(flagProbeTimeout, d.ProbeTimeout, "identity backend probe timeout")
	fs.String(flagTokenSecret, d.TokenSecret, "HMAC secret for ID token verification")
	fs.String(flagTokenKeyFile, d.TokenPublicKeyFile, "PEM RSA public key for ID token verification")
	fs.String(flagIssuer, d.TokenIssuer, "expected ID token issuer")
	fs.String(flagAudience, d.TokenAudience, "expected ID token audience")
	fs.StringP(flagLogLevel, "l", d.LogLevel, "log level (debug, info, warn, error)")
	fs.String(flagLogFormat, d.LogFormat, "log format (text, json)")
}

// applyFlags overlays cfg with the flags of fs that were explicitly set.
func applyFlags(cfg *Config, fs *pflag.FlagSet) error {
	strs := map[string]*string{
		flagDB:              &cfg.DatabasePath,
		flagVerifierAddr:    &cfg.VerifierEndpoint,
		flagVerifierService: &cfg.VerifierService,
		flagTokenSecret:     &cfg.TokenSecret,
		flagTokenKeyFile:    &cfg.TokenPublicKeyFile,
		flagIssuer:          &cfg.TokenIssuer,
		flagAudience:        &cfg.TokenAudience,
		flagLogLevel:        &cfg.LogLevel,
		flagLogFormat:       &cfg.LogFormat,
	}
	for name, dst := range strs {
		if fs.Lookup(name) == nil || !fs.Changed(name) {
			continue
		}
		v, err := fs.GetString(name)
		if err != nil {
			return err
		}
		*dst = v
	}

	if fs.Lookup(flagProbeTimeout) != nil && fs.Changed(flagProbeTimeout) {
		v, err := fs.GetDuration(flagProbeTimeout)
		if err != nil {
			return err
		}
		cfg.ProbeTimeout = v
	}
	return nil
}
