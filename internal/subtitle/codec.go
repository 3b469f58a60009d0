package subtitle

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DecodeText decodes uploaded subtitle bytes permissively. UTF-16 input
// carrying a BOM is transcoded; everything else is treated as UTF-8 with
// invalid byte sequences replaced by U+FFFD rather than rejected.
func DecodeText(raw []byte) (string, error) {
	switch {
	case bytes.HasPrefix(raw, []byte{0xFF, 0xFE}):
		return decodeUTF16(raw, unicode.LittleEndian)
	case bytes.HasPrefix(raw, []byte{0xFE, 0xFF}):
		return decodeUTF16(raw, unicode.BigEndian)
	}
	return strings.ToValidUTF8(string(raw), "�"), nil
}

func decodeUTF16(raw []byte, endianness unicode.Endianness) (string, error) {
	decoder := unicode.UTF16(endianness, unicode.ExpectBOM).NewDecoder()
	reader := transform.NewReader(bytes.NewReader(raw), decoder)
	decoded, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("failed to decode UTF-16 input: %w", err)
	}
	return string(decoded), nil
}
