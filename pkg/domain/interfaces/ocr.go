package interfaces

import "context"

// TextDetector defines the interface for the OCR collaborator
type TextDetector interface {
	// DetectText returns the detected text annotations of an image in order.
	// The first annotation covers the full image. An empty slice means no
	// text was detected, which is not an error.
	DetectText(ctx context.Context, image []byte) ([]string, error)
}
