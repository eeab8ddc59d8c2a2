package cli

import (
	"fmt"

	"github.com/mgpai22/vttgen/internal/manifest"
	"github.com/mgpai22/vttgen/internal/subtitle"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate [transcript]",
	Short: "Generate subtitles from raw transcript segments",
	Long: `Generate a subtitle track from a JSON transcript of timed segments.

Segments longer than the character or duration limits are split into several
cues and long lines are wrapped at the word break closest to the middle.

  {"segments": [{"start": 0.0, "end": 2.5, "text": "Hello there"}]}

Examples:
  vttgen generate transcript.json -o movie.vtt
  vttgen generate transcript.json -f srt --number
  vttgen generate transcript.json --max-chars 32 --max-duration 5`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	defaults := subtitle.NewDefaultGenerator()

	generateCmd.Flags().
		String("header", "", "Text for the WEBVTT header line")
	generateCmd.Flags().
		Bool("number", false, "Give every cue a numeric identifier")
	generateCmd.Flags().
		Int("max-chars", defaults.MaxCharsPerLine, "Maximum characters per line")
	generateCmd.Flags().
		Int("max-lines", defaults.MaxLinesPerSub, "Maximum lines per cue")
	generateCmd.Flags().
		Float64("min-duration", defaults.MinDuration, "Minimum cue duration in seconds")
	generateCmd.Flags().
		Float64("max-duration", defaults.MaxDuration, "Maximum cue duration in seconds before splitting")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	transcriptPath := args[0]

	formatStr, _ := cmd.Flags().GetString("format")
	outputPath, _ := cmd.Flags().GetString("output")
	header, _ := cmd.Flags().GetString("header")
	number, _ := cmd.Flags().GetBool("number")
	maxChars, _ := cmd.Flags().GetInt("max-chars")
	maxLines, _ := cmd.Flags().GetInt("max-lines")
	minDuration, _ := cmd.Flags().GetFloat64("min-duration")
	maxDuration, _ := cmd.Flags().GetFloat64("max-duration")

	if maxChars <= 0 {
		return fmt.Errorf("max-chars must be positive, got %d", maxChars)
	}
	if maxLines <= 0 {
		return fmt.Errorf("max-lines must be positive, got %d", maxLines)
	}
	if minDuration < 0 || maxDuration < 0 {
		return fmt.Errorf("durations must not be negative")
	}

	format, err := resolveFormat(formatStr, outputPath)
	if err != nil {
		return err
	}

	transcript, err := manifest.LoadTranscript(transcriptPath)
	if err != nil {
		return err
	}

	logger.Infow("Generating subtitles",
		"input", transcriptPath,
		"segments", len(transcript.Segments),
		"format", format,
		"max_chars", maxChars,
		"max_duration", maxDuration,
	)

	generator := &subtitle.DefaultGenerator{
		Header:          header,
		MaxCharsPerLine: maxChars,
		MaxLinesPerSub:  maxLines,
		MinDuration:     minDuration,
		MaxDuration:     maxDuration,
		NumberCues:      number,
	}

	doc, err := generator.Generate(transcript.Segments())
	if err != nil {
		return fmt.Errorf("failed to generate subtitles: %w", err)
	}

	logger.Infow("Generation complete",
		"cues", len(doc.Cues()),
	)

	return emit(doc, format, outputPath, cmd.OutOrStdout())
}
