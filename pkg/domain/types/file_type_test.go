package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/lexi-lab/lexiscan/pkg/domain/types"
)

func TestFileTypeFromFilename(t *testing.T) {
	cases := []struct {
		filename string
		expected types.FileType
	}{
		{"contract.txt", types.FileTypeText},
		{"contract.pdf", types.FileTypePDF},
		{"contract.docx", types.FileTypeDOCX},
		{"scan.png", types.FileTypePNG},
		{"scan.jpg", types.FileTypeJPG},
		{"scan.jpeg", types.FileTypeJPEG},
		{"CONTRACT.PDF", types.FileTypePDF},
		{"archive.tar.pdf", types.FileTypePDF},
		{"data.csv", types.FileTypeOther},
		{"noextension", types.FileTypeOther},
		{"", types.FileTypeOther},
	}

	for _, tc := range cases {
		t.Run(tc.filename, func(t *testing.T) {
			gt.Value(t, types.FileTypeFromFilename(tc.filename)).Equal(tc.expected)
		})
	}
}

func TestFileTypeIsImage(t *testing.T) {
	gt.Bool(t, types.FileTypePNG.IsImage()).True()
	gt.Bool(t, types.FileTypeJPG.IsImage()).True()
	gt.Bool(t, types.FileTypeJPEG.IsImage()).True()
	gt.Bool(t, types.FileTypePDF.IsImage()).False()
	gt.Bool(t, types.FileTypeText.IsImage()).False()
}

func TestParseFileType(t *testing.T) {
	ft, err := types.ParseFileType("PDF")
	gt.NoError(t, err).Required()
	gt.Value(t, ft).Equal(types.FileTypePDF)

	_, err = types.ParseFileType("csv")
	gt.Error(t, err)
}

func TestAllFileTypesAreValid(t *testing.T) {
	for _, ft := range types.AllFileTypes() {
		gt.Bool(t, ft.IsValid()).True()
	}
	gt.Bool(t, types.FileTypeOther.IsValid()).False()
}
