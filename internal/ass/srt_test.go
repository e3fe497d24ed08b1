package ass

import (
	"strings"
	"testing"
)

func TestWriteSRT(t *testing.T) {
	doc := &Document{
		Dialogues: []DialogueEvent{
			{StartMS: 1000, EndMS: 4000, Text: "Hello, world!"},
			{StartMS: 5500, EndMS: 8200, Text: `Two\Nlines`},
		},
	}

	var sb strings.Builder
	if err := WriteSRT(doc, &sb); err != nil {
		t.Fatalf("WriteSRT failed: %v", err)
	}

	want := "1\n00:00:01,000 --> 00:00:04,000\nHello, world!\n\n" +
		"2\n00:00:05,500 --> 00:00:08,200\nTwo\nlines\n\n"
	if sb.String() != want {
		t.Errorf("output = %q, want %q", sb.String(), want)
	}
}

func TestWriteSRTEmptyDocument(t *testing.T) {
	var sb strings.Builder
	if err := WriteSRT(&Document{}, &sb); err != nil {
		t.Fatalf("WriteSRT failed: %v", err)
	}
	if sb.String() != "" {
		t.Errorf("expected empty output, got %q", sb.String())
	}
}
