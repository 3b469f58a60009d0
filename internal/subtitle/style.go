package subtitle

import (
	"fmt"
	"strconv"
	"strings"
)

// StyleFormatColumns is the column order of the [V4+ Styles] Format line.
// Style lines list their values in exactly this order.
var StyleFormatColumns = []string{
	"Name", "Fontname", "Fontsize", "PrimaryColour", "SecondaryColour",
	"OutlineColour", "BackColour", "Bold", "Italic", "Underline",
	"StrikeOut", "ScaleX", "ScaleY", "Spacing", "Angle", "BorderStyle",
	"Outline", "Shadow", "Alignment", "MarginL", "MarginR", "MarginV",
	"Encoding",
}

// EventFormatColumns is the column order of the [Events] Format line.
var EventFormatColumns = []string{
	"Layer", "Start", "End", "Style", "Name", "MarginL", "MarginR",
	"MarginV", "Effect", "Text",
}

// represents one [V4+ Styles] definition
type Style struct {
	Name            string
	Fontname        string
	Fontsize        int
	PrimaryColour   string
	SecondaryColour string
	OutlineColour   string
	BackColour      string
	Bold            int
	Italic          int
	Underline       int
	StrikeOut       int
	ScaleX          int
	ScaleY          int
	Spacing         int
	Angle           int
	BorderStyle     int
	Outline         float64
	Shadow          float64
	Alignment       int
	MarginL         int
	MarginR         int
	MarginV         int
	Encoding        int
}

// Line renders the Style: line with values in StyleFormatColumns order.
func (s Style) Line() string {
	return fmt.Sprintf(
		"Style: %s,%s,%d,%s,%s,%s,%s,%d,%d,%d,%d,%d,%d,%d,%d,%d,%s,%s,%d,%d,%d,%d,%d",
		s.Name, s.Fontname, s.Fontsize,
		s.PrimaryColour, s.SecondaryColour, s.OutlineColour, s.BackColour,
		s.Bold, s.Italic, s.Underline, s.StrikeOut,
		s.ScaleX, s.ScaleY, s.Spacing, s.Angle, s.BorderStyle,
		formatDecimal(s.Outline), formatDecimal(s.Shadow),
		s.Alignment, s.MarginL, s.MarginR, s.MarginV, s.Encoding,
	)
}

// formatDecimal renders a float the way ASS style lines are written:
// integral values without a fraction ("2"), everything else with the
// shortest exact fraction ("2.7").
func formatDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// script metadata emitted with generated documents
type ScriptInfo struct {
	Title    string
	PlayResX int
	PlayResY int
}

// an ordered catalog of style definitions plus the script metadata they
// are emitted with
type StyleSet struct {
	Script ScriptInfo
	Styles []Style
}

// Default returns the style referenced by every generated dialogue line.
// The first style in the catalog is the default.
func (ss *StyleSet) Default() Style {
	return ss.Styles[0]
}

// styleBlock renders the [V4+ Styles] section: header, Format line, one
// Style line per definition.
func (ss *StyleSet) styleBlock() []string {
	lines := make([]string, 0, len(ss.Styles)+2)
	lines = append(lines, "[V4+ Styles]")
	lines = append(lines, "Format: "+strings.Join(StyleFormatColumns, ", "))
	for _, style := range ss.Styles {
		lines = append(lines, style.Line())
	}
	return lines
}

// DefaultStyleSet returns the built-in catalog: a single style named
// Default carrying the fixed look converted subtitles are given.
func DefaultStyleSet() *StyleSet {
	return &StyleSet{
		Script: ScriptInfo{
			Title:    "Converted Subtitles",
			PlayResX: 1280,
			PlayResY: 720,
		},
		Styles: []Style{
			{
				Name:            "Default",
				Fontname:        "Arial Rounded MT Bold",
				Fontsize:        56,
				PrimaryColour:   "&H00FFFFFF",
				SecondaryColour: "&H000000FF",
				OutlineColour:   "&H00000000",
				BackColour:      "&H76151518",
				Bold:            -1,
				ScaleX:          87,
				ScaleY:          108,
				BorderStyle:     1,
				Outline:         2.7,
				Shadow:          3.7,
				Alignment:       2,
				MarginL:         10,
				MarginR:         10,
				MarginV:         95,
				Encoding:        1,
			},
		},
	}
}
