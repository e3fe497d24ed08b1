package ass

// horizontal alignment of the rendered text
type TextAlign string

const (
	AlignLeft   TextAlign = "left"
	AlignCenter TextAlign = "center"
	AlignRight  TextAlign = "right"
)

// vertical edge the line anchors to
type VAnchor int

const (
	VBottom VAnchor = iota
	VMiddle
	VTop
)

// horizontal edge the line anchors to
type HAnchor int

const (
	HCenter HAnchor = iota
	HLeft
	HRight
)

// TextStyle is the renderer-agnostic attribute bag for one dialogue.
type TextStyle struct {
	FontFamily    string
	FontSize      float64
	Bold          bool
	Italic        bool
	Underline     bool
	Color         Color
	OutlineColor  Color
	ShadowColor   Color
	OutlineWidth  float64
	ShadowDepth   float64
	LetterSpacing float64
	Align         TextAlign
}

// Position describes where the line sits on screen. When Absolute is
// set the line pins to that point measured from the top-left corner and
// the edge anchors do not apply. Otherwise the anchors plus margins
// place the line relative to the frame edges, and OffsetY carries the
// compensating shift for middle-row alignment.
type Position struct {
	Absolute *Point
	V        VAnchor
	H        HAnchor
	MarginX  float64
	MarginY  float64
	OffsetY  float64
}

// ResolvedStyle is the final descriptor handed to a renderer.
type ResolvedStyle struct {
	Text     TextStyle
	Position Position
}

const (
	defaultFontSize  = 24
	defaultMargin    = 20
	defaultAlignment = 2 // bottom-center
)

// built-in base for dialogues whose style name is not in the document
func fallbackStyle() StyleDefinition {
	return StyleDefinition{
		FontSize:     defaultFontSize,
		PrimaryColor: defaultColor(),
		OutlineColor: Color{A: 1},
		BackColor:    Color{A: 1},
	}
}

// ResolveStyle merges the dialogue's named style with its inline
// overrides and alignment rules into a final positioned style. Pure:
// the document and the event are never modified, and the same inputs
// always resolve to the same descriptor.
func (d *Document) ResolveStyle(ev DialogueEvent) ResolvedStyle {
	base, ok := d.Styles[ev.Style]
	if !ok {
		base = fallbackStyle()
	}

	ts := TextStyle{
		FontFamily:    base.FontName,
		FontSize:      base.FontSize,
		Bold:          base.Bold,
		Italic:        base.Italic,
		Underline:     base.Underline,
		Color:         base.PrimaryColor,
		OutlineColor:  base.OutlineColor,
		ShadowColor:   base.BackColor,
		OutlineWidth:  base.Outline,
		ShadowDepth:   base.Shadow,
		LetterSpacing: base.Spacing,
	}
	if ts.FontSize == 0 {
		ts.FontSize = defaultFontSize
	}

	ov := ev.Overrides
	if ov.FontSize != nil {
		ts.FontSize = float64(*ov.FontSize)
	}
	if ov.Bold != nil {
		ts.Bold = *ov.Bold
	}
	if ov.Italic != nil {
		ts.Italic = *ov.Italic
	}
	if ov.Underline != nil {
		ts.Underline = *ov.Underline
	}
	if ov.Color != nil {
		ts.Color = *ov.Color
	}

	align := defaultAlignment
	switch {
	case ov.Alignment != nil:
		align = *ov.Alignment
	case base.Alignment != 0:
		align = base.Alignment
	}

	var pos Position

	// numpad rows: 7-9 top, 4-6 middle, 1-3 bottom
	switch {
	case align >= 7:
		pos.V = VTop
		pos.MarginY = marginOr(ev.MarginV, base.MarginV)
	case align >= 4:
		pos.V = VMiddle
		pos.OffsetY = -ts.FontSize / 2
	default:
		pos.V = VBottom
		pos.MarginY = marginOr(ev.MarginV, base.MarginV)
	}

	// numpad columns: 1/4/7 left, 3/6/9 right, the rest center
	switch align % 3 {
	case 1:
		pos.H = HLeft
		pos.MarginX = marginOr(ev.MarginL, base.MarginL)
		ts.Align = AlignLeft
	case 0:
		pos.H = HRight
		pos.MarginX = marginOr(ev.MarginR, base.MarginR)
		ts.Align = AlignRight
	default:
		pos.H = HCenter
		ts.Align = AlignCenter
	}

	// an explicit \pos pin beats any alignment-derived placement
	if ov.Position != nil {
		pos = Position{
			Absolute: &Point{X: ov.Position.X, Y: ov.Position.Y},
			V:        VTop,
			H:        HLeft,
		}
	}

	return ResolvedStyle{Text: ts, Position: pos}
}

// A zero margin reads as unset and falls through the chain, matching
// the format's handling of omitted margin fields.
func marginOr(dialogue, style int) float64 {
	if dialogue != 0 {
		return float64(dialogue)
	}
	if style != 0 {
		return float64(style)
	}
	return defaultMargin
}
