package gcs

import (
	"context"
	"fmt"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/option"
)

// Client implements interfaces.ObjectStore using Google Cloud Storage
type Client struct {
	client *storage.Client
	bucket string
}

// New creates a new GCS object store client for the given bucket
func New(ctx context.Context, bucket string, opts ...option.ClientOption) (*Client, error) {
	if bucket == "" {
		return nil, goerr.New("bucket name is required")
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create GCS client")
	}

	return &Client{
		client: client,
		bucket: bucket,
	}, nil
}

// Put writes the object and returns its gs:// locator
func (c *Client) Put(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	w := c.client.Bucket(c.bucket).Object(name).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", goerr.Wrap(err, "failed to write object",
			goerr.V("bucket", c.bucket),
			goerr.V("object", name),
		)
	}
	if err := w.Close(); err != nil {
		return "", goerr.Wrap(err, "failed to finalize object",
			goerr.V("bucket", c.bucket),
			goerr.V("object", name),
		)
	}

	return fmt.Sprintf("gs://%s/%s", c.bucket, name), nil
}

// Close releases the underlying client
func (c *Client) Close() error {
	return c.client.Close()
}
