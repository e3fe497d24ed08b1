package ass

import (
	"fmt"
	"regexp"
	"strconv"
)

// H:MM:SS.CC with unbounded hour digits
var timestampPattern = regexp.MustCompile(`^(\d+):(\d{2}):(\d{2})\.(\d{2})$`)

// ParseTimestamp converts an H:MM:SS.CC timestamp to milliseconds.
// Anything that does not match the shape decodes as 0, so a malformed
// cue lands at the start of the timeline instead of failing the parse.
func ParseTimestamp(s string) int {
	m := timestampPattern.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	seconds, _ := strconv.Atoi(m[3])
	centis, _ := strconv.Atoi(m[4])

	return hours*3600000 + minutes*60000 + seconds*1000 + centis*10
}

// FormatTimestamp renders a millisecond count in the H:MM:SS.CC form.
// Sub-centisecond precision is dropped.
func FormatTimestamp(ms int) string {
	if ms < 0 {
		ms = 0
	}
	return fmt.Sprintf("%d:%02d:%02d.%02d",
		ms/3600000,
		ms%3600000/60000,
		ms%60000/1000,
		ms%1000/10,
	)
}
