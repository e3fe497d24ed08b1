package video

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// holds options for subtitle track extraction
type ExtractSubtitleOptions struct {
	StreamIndex int    // subtitle stream within the container (0 = first)
	Codec       string // target subtitle codec (ass, srt, copy)
}

// returns sensible defaults for subtitle extraction
func DefaultExtractSubtitleOptions() ExtractSubtitleOptions {
	return ExtractSubtitleOptions{
		StreamIndex: 0,
		Codec:       "ass",
	}
}

// pulls embedded subtitle tracks out of media files using ffmpeg
type Extractor struct {
	tempDir string
}

func NewExtractor(tempDir string) *Extractor {
	return &Extractor{
		tempDir: tempDir,
	}
}

// extracts one subtitle stream from a video file
func (e *Extractor) ExtractSubtitle(
	ctx context.Context,
	videoPath, outputPath string,
	opts ExtractSubtitleOptions,
) error {
	if _, err := os.Stat(videoPath); os.IsNotExist(err) {
		return fmt.Errorf("video file not found: %s", videoPath)
	}

	outputDir := filepath.Dir(outputPath)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	kwargs := ffmpeg.KwArgs{
		"map": fmt.Sprintf("0:s:%d", opts.StreamIndex),
		"vn":  "", // No video
		"an":  "", // No audio
		"y":   "", // Overwrite output
	}

	switch opts.Codec {
	case "copy":
		kwargs["c:s"] = "copy"
	case "srt":
		kwargs["c:s"] = "srt"
	default:
		kwargs["c:s"] = "ass"
	}

	err := ffmpeg.Input(videoPath).
		Output(outputPath, kwargs).
		OverWriteOutput().
		Run()

	if err != nil {
		return fmt.Errorf("ffmpeg subtitle extraction failed: %w", err)
	}

	return nil
}
