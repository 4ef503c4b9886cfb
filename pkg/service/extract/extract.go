package extract

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/lexi-lab/lexiscan/pkg/domain/interfaces"
	"github.com/lexi-lab/lexiscan/pkg/domain/types"
)

// Sentinel errors for the extraction service
var (
	ErrUnsupportedFileType = goerr.New("unsupported file type")
	ErrNoTextDetector      = goerr.New("image OCR is not configured")
)

// NoTextFound is returned as the extraction result when the OCR collaborator
// detects no text in an image. It is a sentinel value, not an error.
const NoTextFound = "No text found in the image."

// Service extracts plain text from uploaded file bytes. Dispatch is strictly
// on the file type derived from the filename extension.
type Service struct {
	detector interfaces.TextDetector
}

// Option is a functional option for Service configuration
type Option func(*Service)

// WithTextDetector sets the OCR collaborator used for image file types
func WithTextDetector(d interfaces.TextDetector) Option {
	return func(s *Service) {
		s.detector = d
	}
}

// New creates a new extraction service
func New(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Extract returns the plain text content of the file. The result may be empty
// for documents that legitimately contain no extractable text (e.g. an
// image-only PDF).
func (s *Service) Extract(ctx context.Context, data []byte, filename string) (string, error) {
	fileType := types.FileTypeFromFilename(filename)

	switch fileType {
	case types.FileTypeText:
		return extractText(data)

	case types.FileTypePDF:
		return extractPDF(data)

	case types.FileTypeDOCX:
		return extractDOCX(data)

	case types.FileTypePNG, types.FileTypeJPG, types.FileTypeJPEG:
		return s.extractImage(ctx, data)

	default:
		return "", goerr.Wrap(ErrUnsupportedFileType, "cannot extract text",
			goerr.V("filename", filename),
		)
	}
}

func (s *Service) extractImage(ctx context.Context, data []byte) (string, error) {
	if s.detector == nil {
		return "", goerr.Wrap(ErrNoTextDetector, "cannot extract text from image")
	}

	annotations, err := s.detector.DetectText(ctx, data)
	if err != nil {
		return "", goerr.Wrap(err, "failed to detect text in image")
	}

	// The first annotation covers the full image
	if len(annotations) == 0 {
		return NoTextFound, nil
	}
	return annotations[0], nil
}
