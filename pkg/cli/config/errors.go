package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration validation
var (
	ErrInvalidCredentials = goerr.New("invalid Google Cloud credentials")
	ErrProjectRequired    = goerr.New("Google Cloud project ID is required")
)
