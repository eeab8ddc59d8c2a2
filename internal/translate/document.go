package translate

import (
	"context"
	"fmt"
	"strings"

	"github.com/mgpai22/vttgen/internal/subtitle"
)

// TranslateDocument translates every cue payload of doc in place and returns
// the number of cues changed. With overlay set, the translation is placed on
// the line above the original text.
//
// Payloads are sent as stored, already escaped, and the answers are stored
// verbatim. Answers containing "-->" are rejected since they would break the
// cue block.
func TranslateDocument(
	ctx context.Context,
	translator Translator,
	doc *subtitle.Document,
	overlay bool,
) (int, error) {
	cues := doc.Cues()
	if len(cues) == 0 {
		return 0, nil
	}

	items := make([]TranslationItem, len(cues))
	for i, cue := range cues {
		items[i] = TranslationItem{
			Index: i,
			Text:  cue.Payload,
		}
	}

	results, err := translator.Translate(ctx, items)
	if err != nil {
		return 0, fmt.Errorf("translation failed: %w", err)
	}

	translated := make(map[int]string, len(results))
	for _, result := range results {
		if result.Index < 0 || result.Index >= len(cues) {
			continue
		}
		if strings.Contains(result.Text, "-->") {
			return 0, fmt.Errorf("translation for cue %d contains -->", result.Index)
		}
		translated[result.Index] = result.Text
	}

	for index, text := range translated {
		cue := cues[index]
		if overlay {
			cue.Payload = text + "\n" + cue.Payload
		} else {
			cue.Payload = text
		}
	}

	return len(translated), nil
}
