package config

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"google.golang.org/api/option"
)

// GoogleCloud holds shared Google Cloud configuration: the project ID and
// service account credentials. Credentials may come from a file path or from
// a base64-encoded JSON blob (deployment environments that cannot mount
// files). With neither set, Application Default Credentials apply.
type GoogleCloud struct {
	projectID         string
	credentialsFile   string
	credentialsBase64 string
}

// Flags returns CLI flags for Google Cloud configuration
func (g *GoogleCloud) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "gcp-project-id",
			Usage:       "Google Cloud project ID",
			Sources:     cli.EnvVars("LEXISCAN_GCP_PROJECT_ID"),
			Destination: &g.projectID,
		},
		&cli.StringFlag{
			Name:        "gcp-credentials-file",
			Usage:       "Path to a service account credentials JSON file",
			Sources:     cli.EnvVars("LEXISCAN_GCP_CREDENTIALS_FILE", "GOOGLE_APPLICATION_CREDENTIALS"),
			Destination: &g.credentialsFile,
		},
		&cli.StringFlag{
			Name:        "gcp-credentials-base64",
			Usage:       "Base64-encoded service account credentials JSON",
			Sources:     cli.EnvVars("LEXISCAN_GCP_CREDENTIALS_BASE64"),
			Destination: &g.credentialsBase64,
		},
	}
}

// ProjectID returns the configured project ID
func (g *GoogleCloud) ProjectID() string {
	return g.projectID
}

// IsConfigured returns true if a project ID is set
func (g *GoogleCloud) IsConfigured() bool {
	return g.projectID != ""
}

// ClientOptions returns the client options for Google Cloud SDK clients.
// An empty slice means Application Default Credentials.
func (g *GoogleCloud) ClientOptions() ([]option.ClientOption, error) {
	if g.credentialsBase64 != "" {
		raw, err := decodeCredentials(g.credentialsBase64)
		if err != nil {
			return nil, err
		}
		return []option.ClientOption{option.WithCredentialsJSON(raw)}, nil
	}

	if g.credentialsFile != "" {
		return []option.ClientOption{option.WithCredentialsFile(g.credentialsFile)}, nil
	}

	return nil, nil
}

// decodeCredentials accepts base64-encoded JSON, or raw JSON for deployments
// that paste the credential material directly.
func decodeCredentials(value string) ([]byte, error) {
	trimmed := strings.TrimSpace(value)
	if strings.HasPrefix(trimmed, "{") {
		if !json.Valid([]byte(trimmed)) {
			return nil, goerr.Wrap(ErrInvalidCredentials, "credential JSON does not parse")
		}
		return []byte(trimmed), nil
	}

	raw, err := base64.StdEncoding.DecodeString(trimmed)
	if err != nil {
		return nil, goerr.Wrap(ErrInvalidCredentials, "credential base64 does not decode")
	}
	if !json.Valid(raw) {
		return nil, goerr.Wrap(ErrInvalidCredentials, "decoded credential is not JSON")
	}
	return raw, nil
}
