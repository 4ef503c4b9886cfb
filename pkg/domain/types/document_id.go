package types

import (
	"fmt"

	"github.com/google/uuid"
)

// DocumentID identifies one uploaded document. It is used as the storage and
// metadata key for the upload.
type DocumentID string

// NewDocumentID generates a new time-ordered unique document ID
func NewDocumentID() DocumentID {
	return DocumentID(uuid.Must(uuid.NewV7()).String())
}

// String returns the string representation of the document ID
func (id DocumentID) String() string {
	return string(id)
}

// Validate checks if the document ID is a valid UUID
func (id DocumentID) Validate() error {
	if id == "" {
		return fmt.Errorf("document ID is empty")
	}
	if _, err := uuid.Parse(string(id)); err != nil {
		return fmt.Errorf("invalid document ID: %s", id)
	}
	return nil
}
