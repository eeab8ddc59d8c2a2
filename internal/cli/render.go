package cli

import (
	"fmt"

	"github.com/mgpai22/vttgen/internal/manifest"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render [manifest]",
	Short: "Render a JSON track manifest as WebVTT or SRT",
	Long: `Render a JSON track manifest to a subtitle file.

The manifest lists a header and an ordered set of cues and comments:

  {
    "header": "Subtitles are cool",
    "elements": [
      {"type": "comment", "text": "This is a comment"},
      {"type": "cue", "start": 1, "end": 2, "payload": "Hello",
       "identifier": "1", "settings": {"size": "50%"}}
    ]
  }

Comments, the header and cue settings are dropped from SRT output.

Examples:
  vttgen render track.json
  vttgen render track.json -o track.srt
  vttgen render track.json -f srt > track.srt`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	manifestPath := args[0]

	formatStr, _ := cmd.Flags().GetString("format")
	outputPath, _ := cmd.Flags().GetString("output")

	format, err := resolveFormat(formatStr, outputPath)
	if err != nil {
		return err
	}

	logger.Debugw("Loading manifest", "path", manifestPath)

	track, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}

	doc, err := track.Document()
	if err != nil {
		return fmt.Errorf("invalid manifest: %w", err)
	}

	logger.Infow("Rendering track",
		"elements", doc.Len(),
		"format", format,
	)

	return emit(doc, format, outputPath, cmd.OutOrStdout())
}
