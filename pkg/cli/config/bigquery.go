package config

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/lexi-lab/lexiscan/pkg/service/bq"
	"github.com/lexi-lab/lexiscan/pkg/utils/logging"
)

// BigQuery holds configuration for the document metadata sink
type BigQuery struct {
	dataset string
	table   string
}

// Flags returns CLI flags for BigQuery configuration
func (b *BigQuery) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "bigquery-dataset",
			Usage:       "BigQuery dataset for document metadata (empty disables metadata logging)",
			Sources:     cli.EnvVars("LEXISCAN_BIGQUERY_DATASET"),
			Destination: &b.dataset,
		},
		&cli.StringFlag{
			Name:        "bigquery-table",
			Usage:       "BigQuery table for document metadata",
			Sources:     cli.EnvVars("LEXISCAN_BIGQUERY_TABLE"),
			Destination: &b.table,
		},
	}
}

// IsConfigured returns true if both dataset and table are set
func (b *BigQuery) IsConfigured() bool {
	return b.dataset != "" && b.table != ""
}

// Configure creates the metadata sink. Returns nil if dataset/table are not
// configured; metadata logging is then not attempted. A sink without a
// project ID is a configuration error.
func (b *BigQuery) Configure(ctx context.Context, gcloud *GoogleCloud) (*bq.Sink, error) {
	if !b.IsConfigured() {
		logging.From(ctx).Info("BigQuery dataset/table not configured, metadata logging disabled")
		return nil, nil
	}

	if !gcloud.IsConfigured() {
		return nil, goerr.Wrap(ErrProjectRequired, "BigQuery metadata sink requires a project ID")
	}

	opts, err := gcloud.ClientOptions()
	if err != nil {
		return nil, err
	}

	sink, err := bq.New(ctx, gcloud.ProjectID(), b.dataset, b.table, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to initialize metadata sink")
	}

	logging.From(ctx).Info("Using BigQuery metadata sink",
		"dataset", b.dataset,
		"table", b.table,
	)
	return sink, nil
}
