package translate

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var jsonBlockRegex = regexp.MustCompile("```(?:json)?\\s*")

// parseResults pulls the translation array out of a model answer and checks
// that every item of the batch came back.
func parseResults(responseText string, expectedCount int) ([]TranslationResult, error) {
	if strings.TrimSpace(responseText) == "" {
		return nil, fmt.Errorf("empty response text")
	}

	responseText = cleanJSONResponse(responseText)

	results, err := extractTranslationResults(responseText)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to parse JSON response: %w (response: %s)",
			err,
			truncateString(responseText, 200),
		)
	}

	if len(results) != expectedCount {
		return nil, fmt.Errorf(
			"expected %d results, got %d",
			expectedCount,
			len(results),
		)
	}

	return results, nil
}

func cleanJSONResponse(s string) string {
	s = strings.TrimSpace(s)
	s = jsonBlockRegex.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// scans for the first JSON value that decodes to a usable result list,
// skipping any preamble the model wrote before it
func extractTranslationResults(text string) ([]TranslationResult, error) {
	for i := 0; i < len(text); i++ {
		if text[i] != '[' && text[i] != '{' {
			continue
		}
		decoder := json.NewDecoder(strings.NewReader(text[i:]))
		var raw json.RawMessage
		if err := decoder.Decode(&raw); err != nil {
			continue
		}
		if results, ok := tryExtractResults(raw); ok && len(results) > 0 {
			return results, nil
		}
	}
	return nil, fmt.Errorf("no valid translation JSON found in response")
}

func tryExtractResults(raw json.RawMessage) ([]TranslationResult, bool) {
	var results []TranslationResult
	if err := json.Unmarshal(raw, &results); err == nil && validateResults(results) {
		return results, true
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return nil, false
	}

	for _, key := range []string{"results", "translations", "data", "items"} {
		fieldRaw, exists := wrapper[key]
		if !exists {
			continue
		}
		var fieldResults []TranslationResult
		if err := json.Unmarshal(fieldRaw, &fieldResults); err == nil && validateResults(fieldResults) {
			return fieldResults, true
		}
	}

	return nil, false
}

func validateResults(results []TranslationResult) bool {
	for _, r := range results {
		if r.Text != "" {
			return true
		}
	}
	return false
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
