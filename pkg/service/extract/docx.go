package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// A DOCX file is a ZIP archive; the document body lives in word/document.xml.
type wordDocument struct {
	XMLName xml.Name `xml:"document"`
	Body    wordBody `xml:"body"`
}

type wordBody struct {
	Paragraphs []wordParagraph `xml:"p"`
}

type wordParagraph struct {
	Runs []wordRun `xml:"r"`
}

type wordRun struct {
	Text string `xml:"t"`
}

// extractDOCX concatenates paragraph text in document order, one newline per
// paragraph.
func extractDOCX(data []byte) (string, error) {
	zipReader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", goerr.Wrap(err, "failed to open DOCX archive")
	}

	var documentFile *zip.File
	for _, f := range zipReader.File {
		if f.Name == "word/document.xml" {
			documentFile = f
			break
		}
	}
	if documentFile == nil {
		return "", goerr.New("document.xml not found in DOCX archive")
	}

	rc, err := documentFile.Open()
	if err != nil {
		return "", goerr.Wrap(err, "failed to open document.xml")
	}
	defer rc.Close()

	xmlData, err := io.ReadAll(rc)
	if err != nil {
		return "", goerr.Wrap(err, "failed to read document.xml")
	}

	var doc wordDocument
	if err := xml.Unmarshal(xmlData, &doc); err != nil {
		return "", goerr.Wrap(err, "failed to parse document.xml")
	}

	var sb strings.Builder
	for _, para := range doc.Body.Paragraphs {
		for _, run := range para.Runs {
			sb.WriteString(run.Text)
		}
		sb.WriteString("\n")
	}

	return strings.TrimSpace(sb.String()), nil
}
