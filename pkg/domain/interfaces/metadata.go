package interfaces

import (
	"context"

	"github.com/lexi-lab/lexiscan/pkg/domain/model"
)

// MetadataSink defines the interface for the analytics table collaborator
type MetadataSink interface {
	// Insert appends one document record to the analytics table
	Insert(ctx context.Context, doc *model.Document) error
}
