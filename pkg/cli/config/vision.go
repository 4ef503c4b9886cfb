package config

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/lexi-lab/lexiscan/pkg/service/vision"
	"github.com/lexi-lab/lexiscan/pkg/utils/logging"
)

// Vision holds configuration for image OCR
type Vision struct {
	disabled bool
}

// Flags returns CLI flags for Vision configuration
func (v *Vision) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "no-ocr",
			Usage:       "Disable image OCR (image uploads will be rejected)",
			Sources:     cli.EnvVars("LEXISCAN_NO_OCR"),
			Destination: &v.disabled,
		},
	}
}

// IsEnabled returns true unless OCR was explicitly disabled
func (v *Vision) IsEnabled() bool {
	return !v.disabled
}

// Configure creates the Vision OCR client. Returns nil if OCR is disabled;
// image uploads are then rejected with a configuration error.
func (v *Vision) Configure(ctx context.Context, gcloud *GoogleCloud) (*vision.Client, error) {
	if v.disabled {
		logging.From(ctx).Info("Image OCR disabled")
		return nil, nil
	}

	opts, err := gcloud.ClientOptions()
	if err != nil {
		return nil, err
	}

	client, err := vision.New(ctx, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to initialize Vision OCR client")
	}

	logging.From(ctx).Info("Image OCR enabled")
	return client, nil
}
