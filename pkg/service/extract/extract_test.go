package extract_test

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/lexi-lab/lexiscan/pkg/service/extract"
)

type mockDetector struct {
	detectFn func(ctx context.Context, image []byte) ([]string, error)
	calls    int
}

func (m *mockDetector) DetectText(ctx context.Context, image []byte) ([]string, error) {
	m.calls++
	if m.detectFn != nil {
		return m.detectFn(ctx, image)
	}
	return nil, nil
}

func buildDOCX(t *testing.T, paragraphs []string) []byte {
	t.Helper()

	var body bytes.Buffer
	body.WriteString(`<?xml version="1.0" encoding="UTF-8"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range paragraphs {
		body.WriteString(`<w:p><w:r><w:t>` + p + `</w:t></w:r></w:p>`)
	}
	body.WriteString(`</w:body></w:document>`)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/document.xml")
	gt.NoError(t, err).Required()
	_, err = f.Write(body.Bytes())
	gt.NoError(t, err).Required()
	gt.NoError(t, zw.Close()).Required()

	return buf.Bytes()
}

func TestExtractText(t *testing.T) {
	svc := extract.New()
	ctx := context.Background()

	t.Run("plain UTF-8", func(t *testing.T) {
		text, err := svc.Extract(ctx, []byte("Hello world"), "hello.txt")
		gt.NoError(t, err).Required()
		gt.Value(t, text).Equal("Hello world")
	})

	t.Run("extraction is idempotent", func(t *testing.T) {
		data := []byte("Hello world")
		first, err := svc.Extract(ctx, data, "hello.txt")
		gt.NoError(t, err).Required()
		second, err := svc.Extract(ctx, data, "hello.txt")
		gt.NoError(t, err).Required()
		gt.Value(t, second).Equal(first)
	})

	t.Run("UTF-8 BOM is stripped", func(t *testing.T) {
		data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("with bom")...)
		text, err := svc.Extract(ctx, data, "bom.txt")
		gt.NoError(t, err).Required()
		gt.Value(t, text).Equal("with bom")
	})

	t.Run("CRLF is normalized", func(t *testing.T) {
		text, err := svc.Extract(ctx, []byte("line1\r\nline2"), "crlf.txt")
		gt.NoError(t, err).Required()
		gt.Value(t, text).Equal("line1\nline2")
	})

	t.Run("non-UTF-8 falls back to single-byte decode", func(t *testing.T) {
		// "café" in Windows-1252
		data := []byte{'c', 'a', 'f', 0xE9}
		text, err := svc.Extract(ctx, data, "latin.txt")
		gt.NoError(t, err).Required()
		gt.Value(t, text).Equal("café")
	})
}

func TestExtractDOCX(t *testing.T) {
	svc := extract.New()
	ctx := context.Background()

	t.Run("paragraphs joined by newlines", func(t *testing.T) {
		data := buildDOCX(t, []string{"First paragraph", "Second paragraph"})
		text, err := svc.Extract(ctx, data, "doc.docx")
		gt.NoError(t, err).Required()
		gt.Value(t, text).Equal("First paragraph\nSecond paragraph")
	})

	t.Run("broken archive fails", func(t *testing.T) {
		_, err := svc.Extract(ctx, []byte("not a zip"), "doc.docx")
		gt.Error(t, err)
	})
}

func TestExtractPDF(t *testing.T) {
	svc := extract.New()

	t.Run("broken PDF fails", func(t *testing.T) {
		_, err := svc.Extract(context.Background(), []byte("not a pdf"), "doc.pdf")
		gt.Error(t, err)
	})
}

func TestExtractImage(t *testing.T) {
	ctx := context.Background()

	t.Run("first annotation is the result", func(t *testing.T) {
		detector := &mockDetector{
			detectFn: func(ctx context.Context, image []byte) ([]string, error) {
				return []string{"full image text", "full"}, nil
			},
		}
		svc := extract.New(extract.WithTextDetector(detector))

		text, err := svc.Extract(ctx, []byte{0x89, 'P', 'N', 'G'}, "scan.png")
		gt.NoError(t, err).Required()
		gt.Value(t, text).Equal("full image text")
		gt.Value(t, detector.calls).Equal(1)
	})

	t.Run("no annotations yield sentinel text", func(t *testing.T) {
		svc := extract.New(extract.WithTextDetector(&mockDetector{}))

		text, err := svc.Extract(ctx, []byte{0xFF, 0xD8}, "photo.jpg")
		gt.NoError(t, err).Required()
		gt.Value(t, text).Equal(extract.NoTextFound)
	})

	t.Run("detector error propagates", func(t *testing.T) {
		detector := &mockDetector{
			detectFn: func(ctx context.Context, image []byte) ([]string, error) {
				return nil, errors.New("vision unavailable")
			},
		}
		svc := extract.New(extract.WithTextDetector(detector))

		_, err := svc.Extract(ctx, []byte{0xFF, 0xD8}, "photo.jpeg")
		gt.Error(t, err)
	})

	t.Run("missing detector is a configuration error", func(t *testing.T) {
		svc := extract.New()

		_, err := svc.Extract(ctx, []byte{0xFF, 0xD8}, "photo.jpg")
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, extract.ErrNoTextDetector)).True()
	})
}

func TestExtractUnsupported(t *testing.T) {
	svc := extract.New()

	for _, filename := range []string{"data.csv", "program.exe", "noextension"} {
		t.Run(filename, func(t *testing.T) {
			_, err := svc.Extract(context.Background(), []byte("data"), filename)
			gt.Error(t, err)
			gt.Bool(t, errors.Is(err, extract.ErrUnsupportedFileType)).True()
		})
	}
}
