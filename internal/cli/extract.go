package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/mgpai22/substyle/internal/video"
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract [video_file]",
	Short: "Extract an embedded subtitle track from a video file",
	Long: `Extract a subtitle stream from a video container and save it as a
separate subtitle file.

Examples:
  substyle extract episode.mkv
  substyle extract episode.mkv -o subs.ass --stream 1
  substyle extract episode.mkv --codec srt`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().
		IntP("stream", "s", 0, "Subtitle stream index within the container")
	extractCmd.Flags().
		StringP("codec", "c", "ass", "Target subtitle codec (ass, srt, copy)")
	extractCmd.Flags().
		Bool("summary", false, "Parse the extracted track and print a summary")
}

func runExtract(cmd *cobra.Command, args []string) error {
	videoPath := args[0]

	stream, _ := cmd.Flags().GetInt("stream")
	codec, _ := cmd.Flags().GetString("codec")
	summary, _ := cmd.Flags().GetBool("summary")
	outputPath, _ := cmd.Flags().GetString("output")

	validCodecs := map[string]bool{
		"ass":  true,
		"srt":  true,
		"copy": true,
	}
	if !validCodecs[codec] {
		return fmt.Errorf(
			"invalid codec %q: supported codecs are ass, srt, copy",
			codec,
		)
	}

	if outputPath == "" {
		ext := ".ass"
		if codec == "srt" {
			ext = ".srt"
		}
		outputPath = replaceExt(videoPath, ext)
	}

	logger.Infow("Extracting subtitle track",
		"video", videoPath,
		"output", outputPath,
		"stream", stream,
		"codec", codec,
	)

	extractor := video.NewExtractor("")

	opts := video.ExtractSubtitleOptions{
		StreamIndex: stream,
		Codec:       codec,
	}

	ctx := context.Background()
	if err := extractor.ExtractSubtitle(
		ctx,
		videoPath,
		outputPath,
		opts,
	); err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Subtitle track extracted: %s\n", absOutput)

	if summary && codec != "srt" {
		doc, err := loadDocument(outputPath)
		if err != nil {
			return err
		}
		fmt.Printf("Styles: %d, dialogues: %d\n", len(doc.Styles), len(doc.Dialogues))
	}

	return nil
}
