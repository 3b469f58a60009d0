package subtitle

import (
	"fmt"
	"strings"
)

const (
	stylesHeader     = "[v4+ styles]"
	scriptInfoHeader = "[script info]"
)

// ConvertSRT converts an SRT document into an ASS document using the
// given style set. Malformed blocks are dropped per cue; the conversion
// itself never fails.
func ConvertSRT(document string, set *StyleSet) string {
	cues, _ := ParseSRT(document)
	return RenderASS(cues, set)
}

// RenderASS serializes cues as a complete ASS document: the fixed header
// followed by one Dialogue line per cue, in cue order. Text lines are
// joined with the literal \N line-break sequence.
func RenderASS(cues []Cue, set *StyleSet) string {
	styleName := set.Default().Name

	dialogue := make([]string, len(cues))
	for i, cue := range cues {
		dialogue[i] = fmt.Sprintf(
			"Dialogue: 0,%s,%s,%s,,0,0,0,,%s",
			SRTTimeToASS(cue.Start),
			SRTTimeToASS(cue.End),
			styleName,
			strings.Join(cue.Lines, `\N`),
		)
	}

	return header(set) + strings.Join(dialogue, "\n")
}

// header assembles the fixed document prefix: script info, the style
// section, and the [Events] Format line.
func header(set *StyleSet) string {
	var sb strings.Builder

	sb.WriteString("[Script Info]\n")
	sb.WriteString(fmt.Sprintf("Title: %s\n", set.Script.Title))
	sb.WriteString("ScriptType: v4.00+\n")
	sb.WriteString("Collisions: Normal\n")
	sb.WriteString(fmt.Sprintf("PlayResX: %d\n", set.Script.PlayResX))
	sb.WriteString(fmt.Sprintf("PlayResY: %d\n", set.Script.PlayResY))
	sb.WriteString("Timer: 100.0000\n")
	sb.WriteString("\n")

	for _, line := range set.styleBlock() {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	sb.WriteString("\n")

	sb.WriteString("[Events]\n")
	sb.WriteString("Format: " + strings.Join(EventFormatColumns, ", ") + "\n")

	return sb.String()
}

// a contiguous span of document lines belonging to one section; name is
// the normalized header token, or "" for content before the first header
type section struct {
	name  string
	lines []string
}

// Restyle replaces the [V4+ Styles] section of an ASS document with the
// configured style block, leaving every other section byte-for-byte
// unchanged. Documents without a styles section get the block inserted
// after the [Script Info] span; documents without either get it
// prepended.
func Restyle(document string, set *StyleSet) string {
	// a BOM would keep the first header line from being recognized
	document = strings.TrimPrefix(document, "\ufeff")

	// trailing blank line keeps the block separated from the section
	// that follows it
	replacement := append(set.styleBlock(), "")

	sections := splitSections(document)

	for i, sec := range sections {
		if sec.name == stylesHeader {
			sections[i].lines = replacement
			return joinSections(sections)
		}
	}

	for i, sec := range sections {
		if sec.name != scriptInfoHeader {
			continue
		}
		if last := sec.lines[len(sec.lines)-1]; strings.TrimSpace(last) != "" {
			sections[i].lines = append(sec.lines[:len(sec.lines):len(sec.lines)], "")
		}
		out := make([]section, 0, len(sections)+1)
		out = append(out, sections[:i+1]...)
		out = append(out, section{name: stylesHeader, lines: replacement})
		out = append(out, sections[i+1:]...)
		return joinSections(out)
	}

	return strings.Join(replacement, "\n") + "\n" + document
}

// splitSections is the single parse pass behind Restyle. The document is
// split on "\n" only, so carriage returns and the presence or absence of
// a final newline survive a re-join untouched.
func splitSections(document string) []section {
	var sections []section
	var current section

	flush := func() {
		if current.name != "" || len(current.lines) > 0 {
			sections = append(sections, current)
		}
	}

	for _, line := range strings.Split(document, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "[") {
			flush()
			current = section{
				name:  strings.ToLower(strings.TrimSpace(line)),
				lines: []string{line},
			}
			continue
		}
		current.lines = append(current.lines, line)
	}
	flush()

	return sections
}

func joinSections(sections []section) string {
	var all []string
	for _, sec := range sections {
		all = append(all, sec.lines...)
	}
	return strings.Join(all, "\n")
}
