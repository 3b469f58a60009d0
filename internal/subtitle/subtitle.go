// Package subtitle converts subtitle documents between the SubRip (SRT)
// and Advanced SubStation Alpha (ASS) text formats.
package subtitle

// represents supported subtitle formats
type Format string

const (
	FormatSRT Format = "srt"
	FormatASS Format = "ass"
)

// represents one timed subtitle entry parsed from an SRT block
type Cue struct {
	Start string   // raw SRT timecode (HH:MM:SS,mmm)
	End   string   // raw SRT timecode
	Lines []string // display text, one element per source line
}
