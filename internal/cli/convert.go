package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mgpai22/substyle/internal/ass"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert [subtitle_file]",
	Short: "Convert an ASS subtitle file to SRT",
	Long: `Convert an ASS subtitle file to SRT, dropping styling and keeping the
dialogue text with override tags stripped.

Examples:
  substyle convert episode.ass
  substyle convert episode.ass -o episode.en.srt`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		outputPath = replaceExt(inputPath, ".srt")
	}

	doc, err := loadDocument(inputPath)
	if err != nil {
		return err
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	if err := ass.WriteSRT(doc, file); err != nil {
		return err
	}

	logger.Infow("Converted subtitle file",
		"input", inputPath,
		"output", outputPath,
		"dialogues", len(doc.Dialogues),
	)
	fmt.Printf("Wrote %s\n", outputPath)

	return nil
}

func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
