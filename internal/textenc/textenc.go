// Package textenc decodes chapter text whose encoding is not known in
// advance.
//
// Chapter files come from clipboards, editors, and other players, so
// the bytes on disk may be UTF-8 (with or without a BOM), UTF-16, or a
// legacy Shift-JIS export. Decoding failures are reported as errors
// distinct from chapter parsing, which never fails.
package textenc

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Byte-order marks checked before falling back to content sniffing.
var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF16LE = []byte{0xFF, 0xFE}
)

// Decode converts raw file bytes to a UTF-8 string.
//
// Detection order: UTF-8 BOM (stripped), UTF-16 BOM (decoded), valid
// UTF-8 content, Shift-JIS fallback. Input that survives none of these
// is reported as an ErrUndecodable error.
func Decode(data []byte) (string, error) {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		data = data[len(bomUTF8):]
		if !utf8.Valid(data) {
			return "", fmt.Errorf("%w: invalid UTF-8 after BOM", ErrUndecodable)
		}
		return string(data), nil

	case bytes.HasPrefix(data, bomUTF16BE):
		return decodeUTF16(data, unicode.BigEndian)

	case bytes.HasPrefix(data, bomUTF16LE):
		return decodeUTF16(data, unicode.LittleEndian)
	}

	if utf8.Valid(data) {
		return string(data), nil
	}

	return decodeShiftJIS(data)
}

// ReadFile reads and decodes a text file in one step.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	text, err := Decode(data)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return text, nil
}

// decodeUTF16 decodes BOM-prefixed UTF-16 data of the given endianness.
func decodeUTF16(data []byte, endianness unicode.Endianness) (string, error) {
	decoder := unicode.UTF16(endianness, unicode.ExpectBOM).NewDecoder()
	decoded, err := io.ReadAll(transform.NewReader(bytes.NewReader(data), decoder))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUndecodable, err)
	}
	return string(decoded), nil
}

// decodeShiftJIS decodes legacy Shift-JIS data. The decoder substitutes
// U+FFFD for byte sequences it cannot map, so a replacement rune in the
// output means the input was not Shift-JIS either.
func decodeShiftJIS(data []byte) (string, error) {
	decoder := japanese.ShiftJIS.NewDecoder()
	decoded, err := io.ReadAll(transform.NewReader(bytes.NewReader(data), decoder))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUndecodable, err)
	}
	if strings.ContainsRune(string(decoded), utf8.RuneError) {
		return "", fmt.Errorf("%w: not UTF-8, UTF-16, or Shift-JIS", ErrUndecodable)
	}
	return string(decoded), nil
}
