package ass

import "testing"

func TestStripTagsPlainText(t *testing.T) {
	tests := []string{
		"",
		"Hello World",
		"a {not a tag} b",
		"math: {1,2,3}",
	}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			text, ov := StripTags(in)
			if text != in {
				t.Errorf("text = %q, want %q", text, in)
			}
			if ov != (Overrides{}) {
				t.Errorf("expected empty override set, got %+v", ov)
			}
		})
	}
}

func TestStripTagsBoldItalic(t *testing.T) {
	text, ov := StripTags(`Hello {\b1\i1}World`)
	if text != "Hello World" {
		t.Errorf("text = %q, want %q", text, "Hello World")
	}
	if ov.Bold == nil || !*ov.Bold {
		t.Error("expected bold override")
	}
	if ov.Italic == nil || !*ov.Italic {
		t.Error("expected italic override")
	}
	if ov.Underline != nil || ov.FontSize != nil || ov.Color != nil {
		t.Errorf("unexpected overrides set: %+v", ov)
	}
}

func TestStripTagsCommands(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		check func(t *testing.T, ov Overrides)
	}{
		{
			name: "font size",
			in:   `{\fs32}x`,
			check: func(t *testing.T, ov Overrides) {
				if ov.FontSize == nil || *ov.FontSize != 32 {
					t.Errorf("FontSize = %v, want 32", ov.FontSize)
				}
			},
		},
		{
			name: "bold off",
			in:   `{\b0}x`,
			check: func(t *testing.T, ov Overrides) {
				if ov.Bold == nil || *ov.Bold {
					t.Errorf("Bold = %v, want false", ov.Bold)
				}
			},
		},
		{
			name: "underline",
			in:   `{\u1}x`,
			check: func(t *testing.T, ov Overrides) {
				if ov.Underline == nil || !*ov.Underline {
					t.Errorf("Underline = %v, want true", ov.Underline)
				}
			},
		},
		{
			name: "primary color",
			in:   `{\c&H000000FF&}x`,
			check: func(t *testing.T, ov Overrides) {
				want := Color{R: 255, A: 1}
				if ov.Color == nil || *ov.Color != want {
					t.Errorf("Color = %v, want %+v", ov.Color, want)
				}
			},
		},
		{
			name: "1c color",
			in:   `{\1c&H00FF0000&}x`,
			check: func(t *testing.T, ov Overrides) {
				want := Color{B: 255, A: 1}
				if ov.Color == nil || *ov.Color != want {
					t.Errorf("Color = %v, want %+v", ov.Color, want)
				}
			},
		},
		{
			name: "short color falls back to white",
			in:   `{\c&HFFFFFF&}x`,
			check: func(t *testing.T, ov Overrides) {
				want := Color{R: 255, G: 255, B: 255, A: 1}
				if ov.Color == nil || *ov.Color != want {
					t.Errorf("Color = %v, want %+v", ov.Color, want)
				}
			},
		},
		{
			name: "position",
			in:   `{\pos(468,349)}x`,
			check: func(t *testing.T, ov Overrides) {
				if ov.Position == nil || *ov.Position != (Point{X: 468, Y: 349}) {
					t.Errorf("Position = %v, want (468,349)", ov.Position)
				}
			},
		},
		{
			name: "alignment",
			in:   `{\an8}x`,
			check: func(t *testing.T, ov Overrides) {
				if ov.Alignment == nil || *ov.Alignment != 8 {
					t.Errorf("Alignment = %v, want 8", ov.Alignment)
				}
			},
		},
		{
			name: "unknown commands ignored",
			in:   `{\blur3\fad(200,200)\frz19.65}x`,
			check: func(t *testing.T, ov Overrides) {
				if ov != (Overrides{}) {
					t.Errorf("expected empty override set, got %+v", ov)
				}
			},
		},
		{
			name: "non-numeric fs suffix ignored",
			in:   `{\fscx110}x`,
			check: func(t *testing.T, ov Overrides) {
				if ov.FontSize != nil {
					t.Errorf("FontSize = %v, want nil", ov.FontSize)
				}
			},
		},
		{
			name: "outline color not interpreted",
			in:   `{\3c&H00A0350D&}x`,
			check: func(t *testing.T, ov Overrides) {
				if ov.Color != nil {
					t.Errorf("Color = %v, want nil", ov.Color)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, ov := StripTags(tt.in)
			if text != "x" {
				t.Errorf("text = %q, want %q", text, "x")
			}
			tt.check(t, ov)
		})
	}
}

func TestStripTagsMultipleBlocks(t *testing.T) {
	text, ov := StripTags(`{\fs20\b1}Hello {\fs48\i1}World{\b0}`)
	if text != "Hello World" {
		t.Errorf("text = %q, want %q", text, "Hello World")
	}
	if ov.FontSize == nil || *ov.FontSize != 48 {
		t.Errorf("FontSize = %v, want 48 (later block wins)", ov.FontSize)
	}
	if ov.Bold == nil || *ov.Bold {
		t.Errorf("Bold = %v, want false (later block wins)", ov.Bold)
	}
	if ov.Italic == nil || !*ov.Italic {
		t.Error("expected italic override")
	}
}

func TestStripTagsPreservesSurroundingText(t *testing.T) {
	text, _ := StripTags(`a{\b1}b {\i1} c`)
	if text != "ab  c" {
		t.Errorf("text = %q, want %q", text, "ab  c")
	}
}
