package extract

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/m-mizutani/goerr/v2"
)

// extractPDF concatenates per-page text in page order. A page that yields no
// extractable text contributes an empty segment; an image-only PDF therefore
// produces an empty result, which is not an error.
func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", goerr.Wrap(err, "failed to open PDF")
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Pages without extractable text contribute nothing
			continue
		}
		sb.WriteString(text)
	}

	return strings.TrimSpace(sb.String()), nil
}
