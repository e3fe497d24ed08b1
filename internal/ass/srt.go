package ass

import (
	"fmt"
	"io"
	"strings"
)

// WriteSRT renders the document's dialogues as a SubRip track, numbered
// in source order. Override blocks are already stripped from the
// display text; ASS line breaks become real newlines.
func WriteSRT(d *Document, w io.Writer) error {
	for i, ev := range d.Dialogues {
		text := strings.ReplaceAll(ev.Text, "\\N", "\n")
		text = strings.ReplaceAll(text, "\\n", "\n")

		_, err := fmt.Fprintf(w, "%d\n%s --> %s\n%s\n\n",
			i+1,
			formatSRTTime(ev.StartMS),
			formatSRTTime(ev.EndMS),
			text,
		)
		if err != nil {
			return fmt.Errorf("failed to write SRT entry %d: %w", i+1, err)
		}
	}
	return nil
}

// HH:MM:SS,mmm
func formatSRTTime(ms int) string {
	if ms < 0 {
		ms = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d,%03d",
		ms/3600000,
		ms%3600000/60000,
		ms%60000/1000,
		ms%1000,
	)
}
