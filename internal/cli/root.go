package cli

import (
	"github.com/mgpai22/vttgen/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  = logging.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "vttgen",
	Short: "Build WebVTT and SRT subtitle tracks",
	Long: `vttgen builds valid WebVTT and SubRip subtitle tracks from structured input.

Tracks are described by a JSON manifest of cues and comments, or generated
from raw transcript segments, and can be translated with an LLM provider.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringP("output", "o", "", "Output file path (stdout when empty)")
	rootCmd.PersistentFlags().
		StringP("format", "f", "", "Output format (vtt, srt); defaults to the output extension, else vtt")
}
