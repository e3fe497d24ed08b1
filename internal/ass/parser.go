package ass

import (
	"strconv"
	"strings"
)

// parser state, advanced only by section-header lines
type section int

const (
	sectionNone section = iota
	sectionScriptInfo
	sectionStyles
	sectionEvents
)

const (
	// comma fields in a v4/v4+ Style line
	styleFieldCount = 23
	// fixed-position fields before the free-form text of a Dialogue line
	dialogueFixedFields = 9
)

// Parse scans an ASS script line by line and builds the document. The
// grammar is deliberately lenient: unknown sections, unrecognized line
// prefixes, short field lists and malformed values never abort the
// parse, they just fall back to defaults downstream.
func Parse(text string) *Document {
	doc := &Document{
		Info:   make(ScriptInfo),
		Styles: make(map[string]StyleDefinition),
	}

	state := sectionNone
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			state = sectionFor(line[1 : len(line)-1])
			continue
		}

		switch state {
		case sectionScriptInfo:
			parseInfoLine(doc, line)
		case sectionStyles:
			parseStyleLine(doc, line)
		case sectionEvents:
			parseDialogueLine(doc, line)
		}
	}
	return doc
}

// sectionFor maps a bracket-stripped header to a parser state. Headers
// this parser does not dispatch on ([Fonts], [Graphics], ...) park the
// parser until the next known section.
func sectionFor(name string) section {
	switch name {
	case "Script Info":
		return sectionScriptInfo
	case "V4 Styles", "V4+ Styles":
		return sectionStyles
	case "Events":
		return sectionEvents
	}
	return sectionNone
}

// Key: Value, split at the first colon
func parseInfoLine(doc *Document, line string) {
	key, value, ok := strings.Cut(line, ":")
	if !ok {
		return
	}
	doc.Info[strings.TrimSpace(key)] = strings.TrimSpace(value)
}

func parseStyleLine(doc *Document, line string) {
	rest, ok := strings.CutPrefix(line, "Style:")
	if !ok {
		return
	}
	f := newFieldRow(strings.SplitN(rest, ",", styleFieldCount))

	st := StyleDefinition{
		Name:           f.str(0),
		FontName:       f.str(1),
		FontSize:       f.num(2),
		PrimaryColor:   ParseColor(f.str(3)),
		SecondaryColor: ParseColor(f.str(4)),
		OutlineColor:   ParseColor(f.str(5)),
		BackColor:      ParseColor(f.str(6)),
		Bold:           f.flag(7),
		Italic:         f.flag(8),
		Underline:      f.flag(9),
		StrikeOut:      f.flag(10),
		ScaleX:         f.num(11),
		ScaleY:         f.num(12),
		Spacing:        f.num(13),
		Angle:          f.num(14),
		BorderStyle:    f.int(15),
		Outline:        f.num(16),
		Shadow:         f.num(17),
		Alignment:      f.int(18),
		MarginL:        f.int(19),
		MarginR:        f.int(20),
		MarginV:        f.int(21),
		Encoding:       f.int(22),
	}
	// later definitions with the same name overwrite earlier ones
	doc.Styles[st.Name] = st
}

func parseDialogueLine(doc *Document, line string) {
	rest, ok := strings.CutPrefix(line, "Dialogue:")
	if !ok {
		return
	}
	// the text field may legitimately contain commas, so only the first
	// nine splits are field boundaries
	parts := strings.SplitN(rest, ",", dialogueFixedFields+1)
	var raw string
	if len(parts) > dialogueFixedFields {
		raw = parts[dialogueFixedFields]
		parts = parts[:dialogueFixedFields]
	}
	f := newFieldRow(parts)

	display, ov := StripTags(raw)
	doc.Dialogues = append(doc.Dialogues, DialogueEvent{
		Layer:     f.int(0),
		StartMS:   ParseTimestamp(f.str(1)),
		EndMS:     ParseTimestamp(f.str(2)),
		Style:     f.str(3),
		Name:      f.str(4),
		MarginL:   f.int(5),
		MarginR:   f.int(6),
		MarginV:   f.int(7),
		Effect:    f.str(8),
		RawText:   raw,
		Text:      display,
		Overrides: ov,
	})
}

// fieldRow reads trimmed positional fields with a fixed short-row
// policy: a missing field reads as the zero value and the consumer
// supplies its own default.
type fieldRow []string

func newFieldRow(parts []string) fieldRow {
	row := make(fieldRow, len(parts))
	for i, p := range parts {
		row[i] = strings.TrimSpace(p)
	}
	return row
}

func (r fieldRow) str(i int) string {
	if i >= len(r) {
		return ""
	}
	return r[i]
}

func (r fieldRow) num(i int) float64 {
	v, err := strconv.ParseFloat(r.str(i), 64)
	if err != nil {
		return 0
	}
	return v
}

func (r fieldRow) int(i int) int {
	v, err := strconv.Atoi(r.str(i))
	if err != nil {
		return 0
	}
	return v
}

// style flags use the literal -1 for true
func (r fieldRow) flag(i int) bool {
	return r.str(i) == "-1"
}
