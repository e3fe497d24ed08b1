package ass

import (
	"regexp"
	"strconv"
	"strings"
)

// Overrides is the per-dialogue set of inline style overrides. A nil
// field means the value of the resolved style applies.
type Overrides struct {
	FontSize  *int
	Bold      *bool
	Italic    *bool
	Underline *bool
	Color     *Color
	Position  *Point
	Alignment *int
}

// screen coordinate, origin at the top-left corner
type Point struct {
	X int
	Y int
}

var (
	// non-greedy, non-nested {\...} blocks; plain {text} is left alone
	tagBlockPattern = regexp.MustCompile(`\{\\[^}]*\}`)
	posPattern      = regexp.MustCompile(`^pos\((-?\d+),(-?\d+)\)`)
)

// StripTags removes every {\...} override block from the dialogue text
// and folds the recognized commands into one override set. The plain
// text around the blocks is concatenated as-is. Later blocks win on
// field collisions; unrecognized commands are skipped.
func StripTags(text string) (string, Overrides) {
	var ov Overrides
	display := tagBlockPattern.ReplaceAllStringFunc(text, func(block string) string {
		for _, tok := range strings.Split(block[1:len(block)-1], "\\") {
			if tok == "" {
				continue
			}
			applyCommand(tok, &ov)
		}
		return ""
	})
	return display, ov
}

// applyCommand matches one backslash-delimited command token. The first
// matching rule wins.
func applyCommand(tok string, ov *Overrides) {
	switch {
	case strings.HasPrefix(tok, "fs"):
		if n, err := strconv.Atoi(tok[2:]); err == nil {
			ov.FontSize = intPtr(n)
		}
	case tok == "b1":
		ov.Bold = boolPtr(true)
	case tok == "b0":
		ov.Bold = boolPtr(false)
	case tok == "i1":
		ov.Italic = boolPtr(true)
	case tok == "i0":
		ov.Italic = boolPtr(false)
	case tok == "u1":
		ov.Underline = boolPtr(true)
	case tok == "u0":
		ov.Underline = boolPtr(false)
	case isColorCommand(tok):
		c := ParseColor(tok[strings.Index(tok, "&H"):])
		ov.Color = &c
	case strings.HasPrefix(tok, "pos"):
		if m := posPattern.FindStringSubmatch(tok); m != nil {
			x, _ := strconv.Atoi(m[1])
			y, _ := strconv.Atoi(m[2])
			ov.Position = &Point{X: x, Y: y}
		}
	case strings.HasPrefix(tok, "an"):
		if n, err := strconv.Atoi(tok[2:]); err == nil {
			ov.Alignment = intPtr(n)
		}
	}
}

// \1c and \c set the primary color; \2c..\4c are not interpreted
func isColorCommand(tok string) bool {
	if !strings.HasPrefix(tok, "1c") && !strings.HasPrefix(tok, "c") {
		return false
	}
	return strings.Contains(tok, "&H")
}

func boolPtr(b bool) *bool { return &b }

func intPtr(n int) *int { return &n }
