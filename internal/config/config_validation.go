package config

import "time"

// Fallbacks applied by validate for fields that may be omitted.
const (
	defaultHTTPAddress    = ":3000"
	defaultTokenIssuer    = "spendbook"
	defaultTokenDuration  = 24 * time.Hour
	defaultRequestTimeout = 30 * time.Second
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup, filling documented
// defaults for optional fields.
//
// The token sign key and the database DSN have no safe default and must be
// provided by one of the configuration sources.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrNoTokenSignKey
	}
	if cfg.Storage.DB.DSN == "" {
		return ErrNoDatabaseDSN
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}

	return nil
}
