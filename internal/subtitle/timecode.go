package subtitle

import (
	"fmt"
	"regexp"
	"strconv"
)

var srtTimecodeRegex = regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2}),(\d{3})`)

// SRTTimeToASS converts an SRT timecode ("00:00:05,000") to the ASS form
// ("0:00:05.00"). Millisecond precision below 10ms is truncated, not
// rounded, so 999ms becomes .99 and never overflows the two-digit field.
// Input that does not match the SRT pattern is returned unchanged: a
// malformed timecode surfaces in the output instead of aborting the
// document.
func SRTTimeToASS(timecode string) string {
	m := srtTimecodeRegex.FindStringSubmatch(timecode)
	if m == nil {
		return timecode
	}

	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	seconds, _ := strconv.Atoi(m[3])
	millis, _ := strconv.Atoi(m[4])

	return fmt.Sprintf("%d:%02d:%02d.%02d", hours, minutes, seconds, millis/10)
}
