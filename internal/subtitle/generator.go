package subtitle

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// DefaultGenerator turns transcript segments into a Document of cues.
// Durations are in seconds.
type DefaultGenerator struct {
	Header          string
	MaxCharsPerLine int
	MaxLinesPerSub  int
	MinDuration     float64
	MaxDuration     float64
	NumberCues      bool // give every cue a 1-based identifier
}

func NewDefaultGenerator() *DefaultGenerator {
	return &DefaultGenerator{
		MaxCharsPerLine: 42, // Standard subtitle line length
		MaxLinesPerSub:  2,  // Most players support 2 lines
		MinDuration:     1,
		MaxDuration:     7,
	}
}

// converts transcription segments to a document
func (g *DefaultGenerator) Generate(segments []Segment) (*Document, error) {
	doc, err := New(g.Header)
	if err != nil {
		return nil, err
	}

	index := 1
	for i, seg := range segments {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}

		var parts []Segment
		if g.needsSplit(text, seg.EndTime-seg.StartTime) {
			parts = g.splitSegment(seg)
		} else {
			parts = []Segment{{
				StartTime: seg.StartTime,
				EndTime:   seg.EndTime,
				Text:      g.formatText(text),
			}}
		}

		for _, part := range parts {
			cue, err := g.newCue(part, index)
			if err != nil {
				return nil, fmt.Errorf("segment %d: %w", i, err)
			}
			doc.Add(cue)
			index++
		}
	}

	return doc, nil
}

func (g *DefaultGenerator) newCue(seg Segment, index int) (*Cue, error) {
	// reversed segments are left for NewCue to reject
	end := seg.EndTime
	if end >= seg.StartTime && end-seg.StartTime < g.MinDuration {
		end = seg.StartTime + g.MinDuration
	}

	params := CueParams{
		StartTime: seg.StartTime,
		EndTime:   end,
		Payload:   seg.Text,
	}
	if g.NumberCues {
		params.Identifier = String(strconv.Itoa(index))
	}

	return NewCue(params)
}

func (g *DefaultGenerator) needsSplit(text string, duration float64) bool {
	// if text is too long, split
	if utf8.RuneCountInString(text) > g.MaxCharsPerLine*g.MaxLinesPerSub {
		return true
	}

	// if duration is too long, split
	if g.MaxDuration > 0 && duration > g.MaxDuration {
		return true
	}

	return false
}

// splits long segment into several shorter ones sharing its time span
func (g *DefaultGenerator) splitSegment(seg Segment) []Segment {
	words := strings.Fields(seg.Text)
	if len(words) == 0 {
		return nil
	}

	totalDuration := seg.EndTime - seg.StartTime

	// approximate characters per subtitle
	maxChars := g.MaxCharsPerLine * g.MaxLinesPerSub
	totalChars := utf8.RuneCountInString(strings.Join(words, " "))

	numSplits := (totalChars + maxChars - 1) / maxChars
	if numSplits < 1 {
		numSplits = 1
	}

	if g.MaxDuration > 0 {
		durationSplits := int(totalDuration/g.MaxDuration) + 1
		if durationSplits > numSplits {
			numSplits = durationSplits
		}
	}
	if numSplits > len(words) {
		numSplits = len(words)
	}

	// distribute words across splits
	wordsPerSplit := (len(words) + numSplits - 1) / numSplits
	durationPerSplit := totalDuration / float64(numSplits)

	var parts []Segment
	currentStart := seg.StartTime

	for i := 0; i < numSplits && len(words) > 0; i++ {
		endIdx := wordsPerSplit
		if endIdx > len(words) {
			endIdx = len(words)
		}

		splitText := strings.Join(words[:endIdx], " ")
		words = words[endIdx:]

		currentEnd := currentStart + durationPerSplit

		// Last split should end at the original end time
		if len(words) == 0 {
			currentEnd = seg.EndTime
		}

		parts = append(parts, Segment{
			StartTime: currentStart,
			EndTime:   currentEnd,
			Text:      g.formatText(splitText),
		})

		currentStart = currentEnd
	}

	return parts
}

// formatText wraps text onto two lines at the word break closest to the middle
func (g *DefaultGenerator) formatText(text string) string {
	text = strings.TrimSpace(text)
	runeCount := utf8.RuneCountInString(text)

	if runeCount <= g.MaxCharsPerLine {
		return text
	}

	words := strings.Fields(text)
	if len(words) < 2 {
		return text
	}

	middle := runeCount / 2
	bestSplit := 0
	bestDiff := runeCount

	currentLen := 0
	for i, word := range words[:len(words)-1] {
		currentLen += utf8.RuneCountInString(word)
		if i > 0 {
			currentLen++ // space
		}

		diff := abs(currentLen - middle)
		if diff < bestDiff {
			bestDiff = diff
			bestSplit = i + 1
		}
	}

	if bestSplit > 0 && bestSplit < len(words) {
		line1 := strings.Join(words[:bestSplit], " ")
		line2 := strings.Join(words[bestSplit:], " ")
		return line1 + "\n" + line2
	}

	return text
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
