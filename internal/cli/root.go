package cli

import (
	"github.com/mgpai22/substyle/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "substyle",
	Short: "Inspect and resolve ASS subtitle styling",
	Long: `Substyle parses Advanced SubStation Alpha (ASS) subtitle files and
resolves each dialogue line into a renderer-agnostic style descriptor.

It can summarize scripts, show which dialogues are active at a playback
timestamp together with their resolved styles, convert scripts to SRT,
and extract embedded subtitle tracks from video files.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
}
