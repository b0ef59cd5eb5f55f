package config

import "errors"

var (
	// ErrNoTokenSignKey is returned by validation when no JWT signing key
	// was provided by any configuration source.
	ErrNoTokenSignKey = errors.New("token sign key is required")

	// ErrNoDatabaseDSN is returned by validation when no database DSN was
	// provided by any configuration source.
	ErrNoDatabaseDSN = errors.New("database DSN is required")
)
