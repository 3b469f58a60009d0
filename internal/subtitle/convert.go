package subtitle

import (
	"fmt"
	"path/filepath"
	"strings"
)

// the outcome of one boundary conversion call
type Result struct {
	Filename string // derived delivery name: input base with a .ass extension
	Data     []byte
	Format   Format // source format that was dispatched
	Dropped  int    // malformed SRT blocks skipped; always 0 for restyle
}

// Convert is the boundary the transport shell calls: it decodes the
// uploaded bytes, dispatches on the source filename's extension (.srt is
// converted, .ass is restyled) and returns the output bytes together
// with the derived filename. Any other extension is rejected before the
// converter runs.
func Convert(filename string, raw []byte, set *StyleSet) (*Result, error) {
	text, err := DecodeText(raw)
	if err != nil {
		return nil, err
	}

	result := &Result{Filename: OutputFilename(filename)}

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".srt":
		cues, dropped := ParseSRT(text)
		result.Data = []byte(RenderASS(cues, set))
		result.Format = FormatSRT
		result.Dropped = dropped
	case ".ass":
		result.Data = []byte(Restyle(text, set))
		result.Format = FormatASS
	default:
		return nil, fmt.Errorf("unsupported subtitle format: %q (expected .srt or .ass)", ext)
	}

	return result, nil
}

// OutputFilename derives the delivery name: the input name with its
// extension replaced by .ass.
func OutputFilename(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename)) + ".ass"
}
