package translate

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// implements Translator using OpenAI Chat Completions
type OpenAITranslator struct {
	client  openai.Client
	model   string
	batches *batchRunner
}

func NewOpenAITranslator(
	ctx context.Context,
	apiKey string,
	opts Options,
) (*OpenAITranslator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	model := opts.Model
	if model == "" {
		model = "gpt-5-mini"
	}

	return &OpenAITranslator{
		client:  openai.NewClient(option.WithAPIKey(apiKey)),
		model:   model,
		batches: newBatchRunner(opts),
	}, nil
}

func (t *OpenAITranslator) Translate(
	ctx context.Context,
	items []TranslationItem,
) ([]TranslationResult, error) {
	return t.batches.run(ctx, items, t.complete)
}

func (t *OpenAITranslator) complete(ctx context.Context, prompt string) (string, error) {
	completion, err := t.client.Chat.Completions.New(
		ctx,
		openai.ChatCompletionNewParams{
			Messages: []openai.ChatCompletionMessageParamUnion{
				openai.UserMessage(prompt),
			},
			Model: t.model,
		},
	)
	if err != nil {
		return "", err
	}
	if completion == nil || len(completion.Choices) == 0 {
		return "", fmt.Errorf("empty response from OpenAI")
	}

	text := completion.Choices[0].Message.Content
	if text == "" {
		return "", fmt.Errorf("no text in OpenAI response")
	}
	return text, nil
}
