package interfaces

import "context"

// ObjectStore defines the interface for the object storage collaborator
type ObjectStore interface {
	// Put writes the object and returns its storage locator
	Put(ctx context.Context, name string, data []byte, contentType string) (string, error)
}
