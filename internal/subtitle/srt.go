package subtitle

import (
	"strings"
)

const timeSeparator = " --> "

// ParseSRT tokenizes an SRT document into cues. Blocks are separated by
// runs of one or more blank lines; a line containing only whitespace
// counts as blank. Returns the cues in document order along with the
// number of blocks that were dropped.
//
// A block is dropped when it has fewer than three lines (index, time
// range, text) or when its second line does not contain the " --> "
// separator. Dropping is per block and never aborts the rest of the
// document.
func ParseSRT(document string) ([]Cue, int) {
	document = strings.TrimPrefix(document, "\ufeff")

	var cues []Cue
	dropped := 0
	for _, block := range splitBlocks(document) {
		cue, ok := parseBlock(block)
		if !ok {
			dropped++
			continue
		}
		cues = append(cues, cue)
	}
	return cues, dropped
}

// splitBlocks splits the trimmed document into runs of non-blank lines.
func splitBlocks(document string) [][]string {
	var blocks [][]string
	var current []string

	for _, line := range strings.Split(strings.TrimSpace(document), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			if len(current) > 0 {
				blocks = append(blocks, current)
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}
	return blocks
}

func parseBlock(lines []string) (Cue, bool) {
	if len(lines) < 3 {
		return Cue{}, false
	}

	// lines[0] is the sequence number; it is not carried over.
	timeLine := strings.TrimSpace(lines[1])
	if !strings.Contains(timeLine, timeSeparator) {
		return Cue{}, false
	}
	parts := strings.SplitN(timeLine, timeSeparator, 2)

	return Cue{
		Start: strings.TrimSpace(parts[0]),
		End:   strings.TrimSpace(parts[1]),
		Lines: lines[2:],
	}, true
}
