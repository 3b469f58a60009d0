package subtitle_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"subconv/internal/subtitle"
)

const expectedHeader = `[Script Info]
Title: Converted Subtitles
ScriptType: v4.00+
Collisions: Normal
PlayResX: 1280
PlayResY: 720
Timer: 100.0000

[V4+ Styles]
Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding
Style: Default,Arial Rounded MT Bold,56,&H00FFFFFF,&H000000FF,&H00000000,&H76151518,-1,0,0,0,87,108,0,0,1,2.7,3.7,2,10,10,95,1

[Events]
Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text
`

func TestConvertSRTEndToEnd(t *testing.T) {
	document := `1
00:00:01,000 --> 00:00:03,500
Hello there

2
00:00:04,250 --> 00:00:05,000
Second line
`

	expected := expectedHeader +
		`Dialogue: 0,0:00:01.00,0:00:03.50,Default,,0,0,0,,Hello there` + "\n" +
		`Dialogue: 0,0:00:04.25,0:00:05.00,Default,,0,0,0,,Second line`

	out := subtitle.ConvertSRT(document, subtitle.DefaultStyleSet())
	require.Equal(t, expected, out)
}

func TestConvertSRTCueCountInvariant(t *testing.T) {
	// three well-formed blocks with malformed ones interspersed
	document := `1
00:00:01,000 --> 00:00:02,000
One

bogus

2
00:00:03,000 --> 00:00:04,000
Two

3
missing separator line
text

4
00:00:05,000 --> 00:00:06,000
Three
`

	out := subtitle.ConvertSRT(document, subtitle.DefaultStyleSet())
	require.Equal(t, 3, strings.Count(out, "Dialogue:"))

	// relative order of surviving cues is preserved
	one := strings.Index(out, ",One")
	two := strings.Index(out, ",Two")
	three := strings.Index(out, ",Three")
	require.True(t, one < two && two < three)
}

func TestConvertSRTMultiLineJoin(t *testing.T) {
	document := `1
00:00:01,000 --> 00:00:02,000
Hello
world
`

	out := subtitle.ConvertSRT(document, subtitle.DefaultStyleSet())
	require.Contains(t, out, `Dialogue: 0,0:00:01.00,0:00:02.00,Default,,0,0,0,,Hello\Nworld`)
}

func TestConvertSRTEmptyDocument(t *testing.T) {
	out := subtitle.ConvertSRT("", subtitle.DefaultStyleSet())
	require.Equal(t, expectedHeader, out)
	require.NotContains(t, out, "Dialogue:")
}

func TestConvertSRTUsesFirstStyleName(t *testing.T) {
	set := subtitle.DefaultStyleSet()
	set.Styles[0].Name = "Narration"

	document := `1
00:00:01,000 --> 00:00:02,000
Hi
`

	out := subtitle.ConvertSRT(document, set)
	require.Contains(t, out, "Dialogue: 0,0:00:01.00,0:00:02.00,Narration,,0,0,0,,Hi")
}

const restyleStyleBlock = `[V4+ Styles]
Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding
Style: Default,Arial Rounded MT Bold,56,&H00FFFFFF,&H000000FF,&H00000000,&H76151518,-1,0,0,0,87,108,0,0,1,2.7,3.7,2,10,10,95,1
`

func TestRestyleReplacesStylesSection(t *testing.T) {
	document := `[Script Info]
Title: Original
PlayResX: 640

[V4+ Styles]
Format: Name, Fontname
Style: Old,Arial
Style: Older,Times

[Events]
Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text
Dialogue: 0,0:00:01.00,0:00:02.00,Old,,0,0,0,,Hi
`

	expected := `[Script Info]
Title: Original
PlayResX: 640

` + restyleStyleBlock + `
[Events]
Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text
Dialogue: 0,0:00:01.00,0:00:02.00,Old,,0,0,0,,Hi
`

	out := subtitle.Restyle(document, subtitle.DefaultStyleSet())
	require.Equal(t, expected, out)
}

func TestRestyleInsertsAfterScriptInfo(t *testing.T) {
	document := `[Script Info]
Title: Original

[Events]
Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text
Dialogue: 0,0:00:01.00,0:00:02.00,Default,,0,0,0,,Hi
`

	expected := `[Script Info]
Title: Original

` + restyleStyleBlock + `
[Events]
Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text
Dialogue: 0,0:00:01.00,0:00:02.00,Default,,0,0,0,,Hi
`

	out := subtitle.Restyle(document, subtitle.DefaultStyleSet())
	require.Equal(t, expected, out)
}

func TestRestyleInsertsAfterUnterminatedScriptInfo(t *testing.T) {
	// [Script Info] is the last section and does not end with a blank
	// line; the block lands at document end, separated by one
	document := "[Script Info]\nTitle: Original"

	expected := "[Script Info]\nTitle: Original\n\n" + restyleStyleBlock

	out := subtitle.Restyle(document, subtitle.DefaultStyleSet())
	require.Equal(t, expected, out)
}

func TestRestylePrependsWhenNoKnownSections(t *testing.T) {
	document := "; just a comment\nDialogue: 0,0:00:01.00,0:00:02.00,Default,,0,0,0,,Hi\n"

	out := subtitle.Restyle(document, subtitle.DefaultStyleSet())
	require.Equal(t, restyleStyleBlock+"\n"+document, out)
}

func TestRestylePreservesUnknownSections(t *testing.T) {
	document := `[Script Info]
Title: Original

[Aegisub Project Garbage]
Last Style Storage: Default

[V4+ Styles]
Format: Name, Fontname
Style: Old,Arial

[Fonts]
fontname: foo.ttf

[Events]
Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text
Dialogue: 0,0:00:01.00,0:00:02.00,Old,,0,0,0,,Hi
Comment: 0,0:00:03.00,0:00:04.00,Old,,0,0,0,,note
`

	out := subtitle.Restyle(document, subtitle.DefaultStyleSet())

	require.Contains(t, out, "[Aegisub Project Garbage]\nLast Style Storage: Default")
	require.Contains(t, out, "[Fonts]\nfontname: foo.ttf")
	require.Contains(t, out, "Comment: 0,0:00:03.00,0:00:04.00,Old,,0,0,0,,note")
	require.NotContains(t, out, "Style: Old,Arial")
	require.Equal(t, 1, strings.Count(out, "[V4+ Styles]"))
}

func TestRestyleBOMBeforeStylesSection(t *testing.T) {
	document := "\ufeff[V4+ Styles]\nFormat: Name, Fontname\nStyle: Old,Arial\n\n[Events]\nDialogue: 0,0:00:01.00,0:00:02.00,Old,,0,0,0,,Hi\n"

	out := subtitle.Restyle(document, subtitle.DefaultStyleSet())

	// the styles section is still replaced exactly once
	require.Equal(t, 1, strings.Count(out, "[V4+ Styles]"))
	require.NotContains(t, out, "Style: Old,Arial")
	require.Contains(t, out, "Style: Default,Arial Rounded MT Bold")
	require.Contains(t, out, "Dialogue: 0,0:00:01.00,0:00:02.00,Old,,0,0,0,,Hi")
}

func TestRestyleBOMBeforeScriptInfo(t *testing.T) {
	document := "\ufeff[Script Info]\nTitle: Original\n\n[Events]\nDialogue: 0,0:00:01.00,0:00:02.00,Default,,0,0,0,,Hi\n"

	out := subtitle.Restyle(document, subtitle.DefaultStyleSet())

	// the block is inserted after [Script Info], not prepended
	require.True(t, strings.Index(out, "[Script Info]") < strings.Index(out, "[V4+ Styles]"))
	require.True(t, strings.Index(out, "[V4+ Styles]") < strings.Index(out, "[Events]"))
}

func TestRestyleMatchesHeaderCaseInsensitively(t *testing.T) {
	document := "[script info]\nTitle: x\n\n[v4+ styles]\nStyle: Old,Arial\n\n[events]\n"

	out := subtitle.Restyle(document, subtitle.DefaultStyleSet())
	require.NotContains(t, out, "Style: Old,Arial")
	require.Contains(t, out, "Style: Default,Arial Rounded MT Bold")
	// untouched sections keep their original casing
	require.Contains(t, out, "[script info]")
	require.Contains(t, out, "[events]")
}
