package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/lexi-lab/lexiscan/pkg/cli/config"
	httpctrl "github.com/lexi-lab/lexiscan/pkg/controller/http"
	"github.com/lexi-lab/lexiscan/pkg/service/extract"
	geminisvc "github.com/lexi-lab/lexiscan/pkg/service/gemini"
	"github.com/lexi-lab/lexiscan/pkg/usecase"
	"github.com/lexi-lab/lexiscan/pkg/utils/logging"
)

func cmdServe() *cli.Command {
	var addr string
	var geminiCfg config.Gemini
	var gcloudCfg config.GoogleCloud
	var storageCfg config.Storage
	var bigqueryCfg config.BigQuery
	var visionCfg config.Vision
	var knowledgeCfg config.Knowledge

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("LEXISCAN_ADDR"),
			Destination: &addr,
		},
	}
	flags = append(flags, geminiCfg.Flags()...)
	flags = append(flags, gcloudCfg.Flags()...)
	flags = append(flags, storageCfg.Flags()...)
	flags = append(flags, bigqueryCfg.Flags()...)
	flags = append(flags, visionCfg.Flags()...)
	flags = append(flags, knowledgeCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			// Knowledge base is loaded once and immutable afterwards
			kb, err := knowledgeCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to load knowledge base")
			}

			ocrClient, err := visionCfg.Configure(ctx, &gcloudCfg)
			if err != nil {
				return goerr.Wrap(err, "failed to configure image OCR")
			}

			var extractOpts []extract.Option
			if ocrClient != nil {
				extractOpts = append(extractOpts, extract.WithTextDetector(ocrClient))
			}
			extractor := extract.New(extractOpts...)

			ucOpts := []usecase.Option{}

			llmClient, err := geminiCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure Gemini client")
			}
			if llmClient != nil {
				genAI, err := geminisvc.New(llmClient)
				if err != nil {
					return goerr.Wrap(err, "failed to initialize GenAI service")
				}
				ucOpts = append(ucOpts, usecase.WithGenAI(genAI))
				logger.Info("Gemini analysis enabled")
			} else {
				logger.Warn("Gemini project not configured, analyze and chat will fail")
			}

			store, err := storageCfg.Configure(ctx, &gcloudCfg)
			if err != nil {
				return goerr.Wrap(err, "failed to configure object store")
			}
			if store != nil {
				defer func() {
					if err := store.Close(); err != nil {
						logger.Error("failed to close object store", "error", err.Error())
					}
				}()
				ucOpts = append(ucOpts, usecase.WithObjectStore(store))
			}

			sink, err := bigqueryCfg.Configure(ctx, &gcloudCfg)
			if err != nil {
				return goerr.Wrap(err, "failed to configure metadata sink")
			}
			if sink != nil {
				ucOpts = append(ucOpts, usecase.WithMetadataSink(sink))
			}

			uc := usecase.New(extractor, kb, ucOpts...)

			handler := httpctrl.New(uc,
				httpctrl.WithHealthStatus(geminiCfg.IsConfigured(), gcloudCfg.IsConfigured()),
			)
			server := &http.Server{
				Addr:              addr,
				Handler:           handler,
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				logger.Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logger.Info("Received shutdown signal", "signal", sig)

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logger.Info("Server shutdown completed")
				return nil
			}
		},
	}
}
