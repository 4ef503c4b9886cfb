package vision

import (
	"context"
	"encoding/base64"

	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/option"
	vision "google.golang.org/api/vision/v1"
)

// Client implements interfaces.TextDetector using the Cloud Vision API
type Client struct {
	svc *vision.Service
}

// New creates a new Vision API client
func New(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	svc, err := vision.NewService(ctx, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Vision API client")
	}
	return &Client{svc: svc}, nil
}

// DetectText runs TEXT_DETECTION on the image and returns the detected
// annotations in order. The first annotation is the full-image text.
func (c *Client) DetectText(ctx context.Context, image []byte) ([]string, error) {
	req := &vision.BatchAnnotateImagesRequest{
		Requests: []*vision.AnnotateImageRequest{
			{
				Image: &vision.Image{
					Content: base64.StdEncoding.EncodeToString(image),
				},
				Features: []*vision.Feature{
					{Type: "TEXT_DETECTION"},
				},
			},
		},
	}

	resp, err := c.svc.Images.Annotate(req).Context(ctx).Do()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to call Vision API")
	}
	if len(resp.Responses) == 0 {
		return nil, goerr.New("Vision API returned no responses")
	}

	annotated := resp.Responses[0]
	if annotated.Error != nil {
		return nil, goerr.New("Vision API error",
			goerr.V("code", annotated.Error.Code),
			goerr.V("message", annotated.Error.Message),
		)
	}

	texts := make([]string, 0, len(annotated.TextAnnotations))
	for _, ta := range annotated.TextAnnotations {
		texts = append(texts, ta.Description)
	}
	return texts, nil
}
