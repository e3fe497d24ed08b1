package ass

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// Color is a decoded ASS color. Alpha runs 0..1 where 1 is fully opaque.
type Color struct {
	R uint8
	G uint8
	B uint8
	A float64
}

func (c Color) String() string {
	return fmt.Sprintf("rgba(%d,%d,%d,%.2f)", c.R, c.G, c.B, c.A)
}

// &H followed by four 2-digit hex byte groups: alpha, blue, green, red.
// Anchored at the start only; trailing characters such as the closing
// '&' of an override tag are tolerated.
var colorPattern = regexp.MustCompile(`^&H([0-9A-Fa-f]{2})([0-9A-Fa-f]{2})([0-9A-Fa-f]{2})([0-9A-Fa-f]{2})`)

// opaque white, the fallback for any value that fails to decode
func defaultColor() Color {
	return Color{R: 255, G: 255, B: 255, A: 1}
}

// ParseColor decodes the &HAABBGGRR form used by ASS scripts. The byte
// order is alpha, blue, green, red, and an alpha byte of 0x00 means
// fully opaque (output alpha = 1 - byte/255, rounded to 2 decimals).
// Anything that does not match decodes as opaque white.
func ParseColor(s string) Color {
	m := colorPattern.FindStringSubmatch(s)
	if m == nil {
		return defaultColor()
	}
	alpha, _ := strconv.ParseUint(m[1], 16, 8)
	blue, _ := strconv.ParseUint(m[2], 16, 8)
	green, _ := strconv.ParseUint(m[3], 16, 8)
	red, _ := strconv.ParseUint(m[4], 16, 8)

	return Color{
		R: uint8(red),
		G: uint8(green),
		B: uint8(blue),
		A: math.Round((1-float64(alpha)/255)*100) / 100,
	}
}
