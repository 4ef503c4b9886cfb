package types

import (
	"fmt"
	"path/filepath"
	"strings"
)

// FileType represents a supported upload file type
type FileType string

const (
	FileTypeText  FileType = "txt"
	FileTypePDF   FileType = "pdf"
	FileTypeDOCX  FileType = "docx"
	FileTypePNG   FileType = "png"
	FileTypeJPG   FileType = "jpg"
	FileTypeJPEG  FileType = "jpeg"
	FileTypeOther FileType = ""
)

// AllFileTypes returns all supported file types
func AllFileTypes() []FileType {
	return []FileType{
		FileTypeText,
		FileTypePDF,
		FileTypeDOCX,
		FileTypePNG,
		FileTypeJPG,
		FileTypeJPEG,
	}
}

// IsValid checks if the file type is a supported one
func (t FileType) IsValid() bool {
	switch t {
	case FileTypeText,
		FileTypePDF,
		FileTypeDOCX,
		FileTypePNG,
		FileTypeJPG,
		FileTypeJPEG:
		return true
	default:
		return false
	}
}

// IsImage returns true for file types handled by OCR
func (t FileType) IsImage() bool {
	switch t {
	case FileTypePNG, FileTypeJPG, FileTypeJPEG:
		return true
	default:
		return false
	}
}

// Ext returns the file extension including the leading dot
func (t FileType) Ext() string {
	return "." + string(t)
}

// String returns the string representation of the file type
func (t FileType) String() string {
	return string(t)
}

// FileTypeFromFilename determines the file type from the filename extension.
// The extension is matched case-insensitively. An unknown or missing extension
// yields FileTypeOther.
func FileTypeFromFilename(filename string) FileType {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	t := FileType(ext)
	if !t.IsValid() {
		return FileTypeOther
	}
	return t
}

// ParseFileType parses a string into a FileType
func ParseFileType(s string) (FileType, error) {
	t := FileType(strings.ToLower(s))
	if !t.IsValid() {
		return FileTypeOther, fmt.Errorf("unsupported file type: %s", s)
	}
	return t, nil
}
