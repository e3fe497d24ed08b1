package cli

import (
	"fmt"
	"os"

	"github.com/mgpai22/substyle/internal/ass"
	"github.com/mgpai22/substyle/internal/textenc"
)

// loadDocument reads a subtitle file, normalizes its encoding and parses
// it. Parsing itself cannot fail; only I/O and transcoding can.
func loadDocument(path string) (*ass.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read subtitle file: %w", err)
	}
	text, err := textenc.Normalize(raw)
	if err != nil {
		return nil, err
	}
	return ass.Parse(text), nil
}
