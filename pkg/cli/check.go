package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/lexi-lab/lexiscan/pkg/cli/config"
	"github.com/lexi-lab/lexiscan/pkg/utils/logging"
)

// cmdCheck validates the deployment configuration without serving traffic:
// it loads the knowledge base and reports which collaborators are configured.
func cmdCheck() *cli.Command {
	var geminiCfg config.Gemini
	var gcloudCfg config.GoogleCloud
	var storageCfg config.Storage
	var bigqueryCfg config.BigQuery
	var visionCfg config.Vision
	var knowledgeCfg config.Knowledge

	var flags []cli.Flag
	flags = append(flags, geminiCfg.Flags()...)
	flags = append(flags, gcloudCfg.Flags()...)
	flags = append(flags, storageCfg.Flags()...)
	flags = append(flags, bigqueryCfg.Flags()...)
	flags = append(flags, visionCfg.Flags()...)
	flags = append(flags, knowledgeCfg.Flags()...)

	return &cli.Command{
		Name:    "check",
		Aliases: []string{"c"},
		Usage:   "Validate configuration and knowledge base",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			kb, err := knowledgeCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "knowledge base validation failed")
			}
			for _, src := range kb.Sources() {
				logger.Info("Knowledge source", "id", src.ID, "name", src.Name)
			}
			if kb.Text() == "" {
				logger.Warn("Knowledge base is empty, legal connections will be less specific")
			}

			if _, err := gcloudCfg.ClientOptions(); err != nil {
				return goerr.Wrap(err, "credential validation failed")
			}

			logger.Info("Configuration summary",
				"gemini_configured", geminiCfg.IsConfigured(),
				"gcp_configured", gcloudCfg.IsConfigured(),
				"storage_configured", storageCfg.IsConfigured(),
				"bigquery_configured", bigqueryCfg.IsConfigured(),
				"ocr_enabled", visionCfg.IsEnabled(),
			)

			if !geminiCfg.IsConfigured() {
				logger.Warn("Gemini project not configured, analyze and chat will fail")
			}

			return nil
		},
	}
}
