package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// single cue payload to translate
type TranslationItem struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// translated cue payload
type TranslationResult struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// interface for text translation
type Translator interface {
	Translate(
		ctx context.Context,
		items []TranslationItem,
	) ([]TranslationResult, error)
}

// translation service provider
type Provider string

const (
	ProviderGemini    Provider = "gemini"
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
)

const (
	DefaultBatchSize   = 50
	DefaultConcurrency = 3
)

type Options struct {
	InputLanguage     string
	TargetLanguage    string
	Model             string
	Prompt            string
	BatchSize         int // items per API request (default 50)
	Concurrency       int // parallel requests (default 3)
	RequestsPerMinute int // 0 disables pacing
}

// APIKeyEnv is the environment variable consulted for a provider's key.
func APIKeyEnv(provider Provider) string {
	switch provider {
	case ProviderGemini:
		return "GEMINI_API_KEY"
	case ProviderOpenAI:
		return "OPENAI_API_KEY"
	case ProviderAnthropic:
		return "ANTHROPIC_API_KEY"
	default:
		return "API_KEY"
	}
}

// creates Translator based on provider
func Factory(
	ctx context.Context,
	provider Provider,
	apiKey string,
	opts Options,
) (Translator, error) {
	if opts.TargetLanguage == "" {
		return nil, fmt.Errorf("target language is required")
	}

	switch provider {
	case ProviderGemini:
		return NewGeminiTranslator(ctx, apiKey, opts)
	case ProviderOpenAI:
		return NewOpenAITranslator(ctx, apiKey, opts)
	case ProviderAnthropic:
		return NewAnthropicTranslator(ctx, apiKey, opts)
	default:
		return nil, fmt.Errorf("unsupported translation provider: %s", provider)
	}
}

// BuildPrompt creates the translation prompt for LLM providers
func BuildPrompt(opts Options, items []TranslationItem) string {
	var sb strings.Builder

	if opts.InputLanguage != "" {
		sb.WriteString(fmt.Sprintf(
			"Translate the following %s subtitle cue texts to %s.\n\n",
			opts.InputLanguage,
			opts.TargetLanguage,
		))
	} else {
		sb.WriteString(fmt.Sprintf(
			"Translate the following subtitle cue texts to %s.\n\n",
			opts.TargetLanguage,
		))
	}

	sb.WriteString("IMPORTANT INSTRUCTIONS:\n")
	sb.WriteString(
		"1. Translate ONLY the text content, preserving the meaning.\n",
	)
	sb.WriteString(
		"2. Keep cue tags (like <b>, <i>, <v Speaker>) and character references (&amp;, &lt;, &gt;) unchanged.\n",
	)
	sb.WriteString("3. Preserve line breaks (\\n) in the same positions.\n")
	sb.WriteString("4. Never output the sequence -->.\n")
	sb.WriteString("5. Return ONLY a JSON array with the same structure.\n")
	sb.WriteString("6. Each object must have 'index' and 'text' fields.\n")
	sb.WriteString(
		"7. The 'index' values must match the input indices exactly.\n",
	)
	sb.WriteString("8. Do not add any explanation or markdown formatting.\n\n")

	if opts.Prompt != "" {
		sb.WriteString(
			fmt.Sprintf("Additional instructions: %s\n\n", opts.Prompt),
		)
	}

	sb.WriteString("Input JSON:\n")

	inputJSON, _ := json.MarshalIndent(items, "", "  ")
	sb.Write(inputJSON)

	sb.WriteString("\n\nOutput the translated JSON array only:")

	return sb.String()
}
