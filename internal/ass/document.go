package ass

// script-level metadata from the [Script Info] section
type ScriptInfo map[string]string

// named typographic preset from a [V4+ Styles] section
type StyleDefinition struct {
	Name           string
	FontName       string
	FontSize       float64
	PrimaryColor   Color
	SecondaryColor Color
	OutlineColor   Color
	BackColor      Color
	Bold           bool
	Italic         bool
	Underline      bool
	StrikeOut      bool
	ScaleX         float64
	ScaleY         float64
	Spacing        float64
	Angle          float64
	BorderStyle    int
	Outline        float64
	Shadow         float64
	Alignment      int
	MarginL        int
	MarginR        int
	MarginV        int
	Encoding       int
}

// one timed subtitle line from the [Events] section
type DialogueEvent struct {
	Layer   int
	StartMS int
	EndMS   int
	Style   string
	Name    string
	MarginL int
	MarginR int
	MarginV int
	Effect  string

	// RawText is the text field as written, override blocks included.
	// Text is the display form with every override block removed.
	RawText   string
	Text      string
	Overrides Overrides
}

// Document is the parsed form of one ASS script. It is immutable once
// built; queries and style resolution never modify it.
type Document struct {
	Info      ScriptInfo
	Styles    map[string]StyleDefinition
	Dialogues []DialogueEvent
}
