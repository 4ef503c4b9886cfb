package extract

import (
	"strings"
	"unicode/utf8"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// extractText decodes a plain text file. UTF-8 (with or without BOM) and
// UTF-16 with BOM are decoded directly; anything else falls back to a
// single-byte decode.
func extractText(data []byte) (string, error) {
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		return normalizeNewlines(string(data[3:])), nil
	}

	if len(data) >= 2 && data[0] == 0xFF && data[1] == 0xFE {
		return decodeUTF16(data, unicode.LittleEndian)
	}
	if len(data) >= 2 && data[0] == 0xFE && data[1] == 0xFF {
		return decodeUTF16(data, unicode.BigEndian)
	}

	if utf8.Valid(data) {
		return normalizeNewlines(string(data)), nil
	}

	decoded, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), data)
	if err != nil {
		return "", goerr.Wrap(err, "failed to decode text file")
	}
	return normalizeNewlines(string(decoded)), nil
}

func decodeUTF16(data []byte, endianness unicode.Endianness) (string, error) {
	decoder := unicode.UTF16(endianness, unicode.UseBOM).NewDecoder()
	decoded, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return "", goerr.Wrap(err, "failed to decode UTF-16 text file")
	}
	return normalizeNewlines(string(decoded)), nil
}

func normalizeNewlines(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.ReplaceAll(text, "\x00", "")
}
