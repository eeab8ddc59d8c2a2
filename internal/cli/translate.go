package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mgpai22/vttgen/internal/manifest"
	"github.com/mgpai22/vttgen/internal/translate"
	"github.com/spf13/cobra"
)

var translateCmd = &cobra.Command{
	Use:   "translate [manifest]",
	Short: "Translate the cues of a track manifest using AI",
	Long: `Translate every cue payload of a JSON track manifest and render the result.

Comments, identifiers and settings are kept as they are. The --overlay flag
creates bilingual cues with the translated text first, followed by the
original text on the next line.

Examples:
  vttgen translate track.json --target-language japanese -o track.ja.vtt
  vttgen translate track.json -t es --provider openai --overlay
  vttgen translate track.json -t de --provider anthropic --rpm 30 -f srt`,
	Args: cobra.ExactArgs(1),
	RunE: runTranslate,
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().
		StringP("target-language", "t", "", "Target language for translation (required)")
	translateCmd.Flags().
		StringP("language", "l", "", "Language of the input cues (optional)")
	translateCmd.Flags().
		Bool("overlay", false, "Overlay translated text with original (bilingual subtitles)")
	translateCmd.Flags().
		StringP("api-key", "k", "", "API key (or set GEMINI_API_KEY/OPENAI_API_KEY/ANTHROPIC_API_KEY)")
	translateCmd.Flags().
		String("model", "", "Model to use for translation (provider-specific, uses sensible defaults)")
	translateCmd.Flags().
		String("provider", "gemini", "Translation provider (gemini, openai, anthropic)")
	translateCmd.Flags().
		String("prompt", "", "Additional instructions for the model")
	translateCmd.Flags().
		Int("concurrency", translate.DefaultConcurrency, "Number of parallel translation requests")
	translateCmd.Flags().
		Int("batch-size", translate.DefaultBatchSize, "Number of cues per API request")
	translateCmd.Flags().
		Int("rpm", 0, "Maximum API requests per minute (0 for no limit)")

	_ = translateCmd.MarkFlagRequired("target-language")
}

func runTranslate(cmd *cobra.Command, args []string) error {
	manifestPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	targetLang, _ := cmd.Flags().GetString("target-language")
	inputLang, _ := cmd.Flags().GetString("language")
	overlay, _ := cmd.Flags().GetBool("overlay")
	apiKey, _ := cmd.Flags().GetString("api-key")
	model, _ := cmd.Flags().GetString("model")
	providerStr, _ := cmd.Flags().GetString("provider")
	prompt, _ := cmd.Flags().GetString("prompt")
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	batchSize, _ := cmd.Flags().GetInt("batch-size")
	rpm, _ := cmd.Flags().GetInt("rpm")
	formatStr, _ := cmd.Flags().GetString("format")
	outputPath, _ := cmd.Flags().GetString("output")

	if targetLang == "" {
		return fmt.Errorf("target language is required")
	}
	if inputLang != "" &&
		strings.EqualFold(
			strings.TrimSpace(inputLang),
			strings.TrimSpace(targetLang),
		) {
		return fmt.Errorf(
			"input language %q and target language %q cannot be the same",
			inputLang,
			targetLang,
		)
	}
	if concurrency <= 0 {
		return fmt.Errorf("concurrency must be positive, got %d", concurrency)
	}
	if batchSize <= 0 {
		return fmt.Errorf("batch-size must be positive, got %d", batchSize)
	}
	if rpm < 0 {
		return fmt.Errorf("rpm must not be negative, got %d", rpm)
	}

	provider := translate.Provider(strings.ToLower(providerStr))
	if apiKey == "" {
		apiKey = os.Getenv(translate.APIKeyEnv(provider))
	}
	if apiKey == "" {
		return fmt.Errorf(
			"API key is required: use --api-key flag or set %s environment variable",
			translate.APIKeyEnv(provider),
		)
	}

	format, err := resolveFormat(formatStr, outputPath)
	if err != nil {
		return err
	}

	track, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}
	doc, err := track.Document()
	if err != nil {
		return fmt.Errorf("invalid manifest: %w", err)
	}

	logger.Infow("Starting cue translation",
		"input", manifestPath,
		"provider", provider,
		"target_language", targetLang,
		"input_language", inputLang,
		"overlay", overlay,
		"cues", len(doc.Cues()),
	)

	translator, err := translate.Factory(ctx, provider, apiKey, translate.Options{
		InputLanguage:     inputLang,
		TargetLanguage:    targetLang,
		Model:             model,
		Prompt:            prompt,
		BatchSize:         batchSize,
		Concurrency:       concurrency,
		RequestsPerMinute: rpm,
	})
	if err != nil {
		return fmt.Errorf("failed to create translator: %w", err)
	}

	translated, err := translate.TranslateDocument(ctx, translator, doc, overlay)
	if err != nil {
		return err
	}

	logger.Infow("Translation complete",
		"translated", translated,
	)

	return emit(doc, format, outputPath, cmd.OutOrStdout())
}
