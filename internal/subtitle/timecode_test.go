package subtitle_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"subconv/internal/subtitle"
)

type timecodeTestCase struct {
	name   string
	input  string
	expect string
}

var timecodeTestCases = []timecodeTestCase{
	{
		name:   "zero",
		input:  "00:00:00,000",
		expect: "0:00:00.00",
	},
	{
		name:   "milliseconds below 10ms truncate to zero",
		input:  "00:00:05,009",
		expect: "0:00:05.00",
	},
	{
		name:   "999ms truncates to 99cs instead of rounding up",
		input:  "00:01:02,999",
		expect: "0:01:02.99",
	},
	{
		name:   "hours lose the leading zero",
		input:  "01:02:03,450",
		expect: "1:02:03.45",
	},
	{
		name:   "two digit hours survive",
		input:  "10:59:59,990",
		expect: "10:59:59.99",
	},
	{
		name:   "garbage falls back unchanged",
		input:  "bad-time",
		expect: "bad-time",
	},
	{
		name:   "ass timecode falls back unchanged",
		input:  "0:00:05.00",
		expect: "0:00:05.00",
	},
	{
		name:   "period instead of comma falls back unchanged",
		input:  "00:00:05.000",
		expect: "00:00:05.000",
	},
	{
		name:   "two digit milliseconds fall back unchanged",
		input:  "00:00:05,00",
		expect: "00:00:05,00",
	},
	{
		name:   "trailing junk after milliseconds is ignored",
		input:  "00:00:05,0001",
		expect: "0:00:05.00",
	},
	{
		name:   "empty string falls back unchanged",
		input:  "",
		expect: "",
	},
}

func TestSRTTimeToASS(t *testing.T) {
	for _, tc := range timecodeTestCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expect, subtitle.SRTTimeToASS(tc.input))
		})
	}
}

func TestSRTTimeToASSWellFormedShape(t *testing.T) {
	shape := regexp.MustCompile(`^\d+:\d{2}:\d{2}\.\d{2}$`)

	inputs := []string{
		"00:00:00,000",
		"00:00:01,000",
		"00:59:59,999",
		"23:00:30,500",
		"99:59:59,999",
	}
	for _, input := range inputs {
		out := subtitle.SRTTimeToASS(input)
		require.Regexp(t, shape, out, "input %q", input)
	}
}
