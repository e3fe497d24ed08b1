package cli

import (
	"fmt"
	"sort"

	"github.com/mgpai22/substyle/internal/ass"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [subtitle_file]",
	Short: "Summarize an ASS subtitle file",
	Long: `Parse an ASS subtitle file and print its script metadata, style
definitions and dialogue timeline.

Examples:
  substyle inspect episode.ass
  substyle inspect episode.ass -v`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := args[0]

	doc, err := loadDocument(path)
	if err != nil {
		return err
	}

	logger.Infow("Parsed subtitle file",
		"path", path,
		"info_keys", len(doc.Info),
		"styles", len(doc.Styles),
		"dialogues", len(doc.Dialogues),
	)

	if title, ok := doc.Info["Title"]; ok {
		fmt.Printf("Title: %s\n", title)
	}
	if st, ok := doc.Info["ScriptType"]; ok {
		fmt.Printf("Script type: %s\n", st)
	}

	names := make([]string, 0, len(doc.Styles))
	for name := range doc.Styles {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("Styles (%d):\n", len(names))
	for _, name := range names {
		st := doc.Styles[name]
		fmt.Printf("  %-20s %s %g, %s, align %d\n",
			name, st.FontName, st.FontSize, st.PrimaryColor, st.Alignment)
	}

	fmt.Printf("Dialogues: %d\n", len(doc.Dialogues))
	if len(doc.Dialogues) > 0 {
		first := doc.Dialogues[0]
		last := doc.Dialogues[len(doc.Dialogues)-1]
		fmt.Printf("Timeline: %s - %s\n",
			ass.FormatTimestamp(first.StartMS),
			ass.FormatTimestamp(last.EndMS))
	}

	return nil
}
