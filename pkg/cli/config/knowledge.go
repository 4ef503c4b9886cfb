package config

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/lexi-lab/lexiscan/pkg/service/knowledge"
	"github.com/lexi-lab/lexiscan/pkg/utils/logging"
)

// Knowledge holds configuration for the legal knowledge base
type Knowledge struct {
	manifestPath string
}

// Flags returns CLI flags for knowledge base configuration
func (k *Knowledge) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "knowledge-config",
			Usage:       "Path to the knowledge base TOML manifest",
			Value:       "knowledge.toml",
			Sources:     cli.EnvVars("LEXISCAN_KNOWLEDGE_CONFIG"),
			Destination: &k.manifestPath,
		},
	}
}

// Configure loads the knowledge base at process start. A missing manifest is
// tolerated: analysis still works, legal connections are just less specific.
func (k *Knowledge) Configure(ctx context.Context) (*knowledge.Base, error) {
	base, err := knowledge.Load(ctx, k.manifestPath)
	if err != nil {
		logging.From(ctx).Warn("knowledge base unavailable, continuing without it",
			"path", k.manifestPath,
			"error", err.Error(),
		)
		return knowledge.NewFromText(""), nil
	}

	logging.From(ctx).Info("knowledge base loaded",
		"path", k.manifestPath,
		"sources", len(base.Sources()),
		"size", len(base.Text()),
	)
	return base, nil
}
