package ass

import "testing"

func TestParseColor(t *testing.T) {
	white := Color{R: 255, G: 255, B: 255, A: 1}

	tests := []struct {
		name string
		in   string
		want Color
	}{
		{"red", "&H000000FF", Color{R: 255, A: 1}},
		{"green", "&H0000FF00", Color{G: 255, A: 1}},
		{"blue", "&H00FF0000", Color{B: 255, A: 1}},
		{"white", "&H00FFFFFF", white},
		{"transparent black", "&HFF000000", Color{A: 0}},
		{"half transparent", "&H80000000", Color{A: 0.5}},
		{"lowercase hex", "&H00ff00ff", Color{R: 255, B: 255, A: 1}},
		{"trailing tag ampersand", "&H000000FF&", Color{R: 255, A: 1}},

		// undecodable values fall back to opaque white
		{"garbage", "garbage", white},
		{"empty", "", white},
		{"missing prefix", "000000FF", white},
		{"wrong prefix", "0x000000FF", white},
		{"too short", "&H00FFFF", white},
		{"non-hex digits", "&H00GG00FF", white},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseColor(tt.in)
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColorString(t *testing.T) {
	c := Color{R: 255, G: 128, B: 0, A: 0.5}
	if got, want := c.String(), "rgba(255,128,0,0.50)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
