package config

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/lexi-lab/lexiscan/pkg/service/gcs"
	"github.com/lexi-lab/lexiscan/pkg/utils/logging"
)

// Storage holds configuration for the document object store
type Storage struct {
	bucket string
}

// Flags returns CLI flags for storage configuration
func (s *Storage) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "gcs-bucket",
			Usage:       "GCS bucket name for uploaded documents (empty disables uploads)",
			Sources:     cli.EnvVars("LEXISCAN_GCS_BUCKET"),
			Destination: &s.bucket,
		},
	}
}

// IsConfigured returns true if a bucket is set
func (s *Storage) IsConfigured() bool {
	return s.bucket != ""
}

// Configure creates the object store client. Returns nil if no bucket is
// configured; uploads are then not attempted.
func (s *Storage) Configure(ctx context.Context, gcloud *GoogleCloud) (*gcs.Client, error) {
	if s.bucket == "" {
		logging.From(ctx).Info("GCS bucket not configured, document uploads disabled")
		return nil, nil
	}

	opts, err := gcloud.ClientOptions()
	if err != nil {
		return nil, err
	}

	client, err := gcs.New(ctx, s.bucket, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to initialize object store")
	}

	logging.From(ctx).Info("Using GCS object store", "bucket", s.bucket)
	return client, nil
}
