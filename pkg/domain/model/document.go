package model

import (
	"time"

	"github.com/lexi-lab/lexiscan/pkg/domain/types"
)

// Document represents one uploaded file. It is created once per request and
// never mutated after creation; deletion is the concern of the external store.
type Document struct {
	ID         types.DocumentID
	Filename   string
	FileType   types.FileType
	Size       int64
	UploadedAt time.Time
	Status     types.DocumentStatus

	// StoragePath is the object store locator (e.g. gs://bucket/uploads/...).
	// Empty if the upload was skipped or failed.
	StoragePath string
}

// NewDocument creates a Document for an upload with a fresh ID
func NewDocument(filename string, size int64) *Document {
	return &Document{
		ID:         types.NewDocumentID(),
		Filename:   filename,
		FileType:   types.FileTypeFromFilename(filename),
		Size:       size,
		UploadedAt: time.Now().UTC(),
		Status:     types.DocumentStatusUploaded,
	}
}

// Row returns the document as an analytics table row
func (d *Document) Row() map[string]any {
	return map[string]any{
		"document_id":      d.ID.String(),
		"filename":         d.Filename,
		"file_type":        d.FileType.Ext(),
		"file_size":        d.Size,
		"upload_timestamp": d.UploadedAt.Format(time.RFC3339),
		"status":           d.Status.String(),
		"storage_path":     d.StoragePath,
	}
}
