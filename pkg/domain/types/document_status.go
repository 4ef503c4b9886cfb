package types

import "fmt"

// DocumentStatus represents the lifecycle status of an uploaded document
type DocumentStatus string

const (
	DocumentStatusUploaded DocumentStatus = "UPLOADED"
	DocumentStatusAnalyzed DocumentStatus = "ANALYZED"
	DocumentStatusFailed   DocumentStatus = "FAILED"
)

// AllDocumentStatuses returns all valid document statuses
func AllDocumentStatuses() []DocumentStatus {
	return []DocumentStatus{
		DocumentStatusUploaded,
		DocumentStatusAnalyzed,
		DocumentStatusFailed,
	}
}

// IsValid checks if the document status is valid
func (s DocumentStatus) IsValid() bool {
	switch s {
	case DocumentStatusUploaded,
		DocumentStatusAnalyzed,
		DocumentStatusFailed:
		return true
	default:
		return false
	}
}

// String returns the string representation of the document status
func (s DocumentStatus) String() string {
	return string(s)
}

// ParseDocumentStatus parses a string into a DocumentStatus
func ParseDocumentStatus(s string) (DocumentStatus, error) {
	status := DocumentStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid document status: %s", s)
	}
	return status, nil
}
