package subtitle

import (
	"fmt"
	"strings"
)

// represents supported subtitle formats
type Format string

const (
	FormatVTT Format = "vtt"
	FormatSRT Format = "srt"
)

// DefaultFormat is used by Document.String.
const DefaultFormat = FormatVTT

// ParseFormat maps a user supplied format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vtt", "webvtt":
		return FormatVTT, nil
	case "srt":
		return FormatSRT, nil
	default:
		return "", fmt.Errorf("unsupported format %q: use vtt or srt", s)
	}
}

// Element is anything that can appear in a Document: the Header, a Cue or a
// Comment. The set is closed; no other package can implement it.
type Element interface {
	Render(format Format) string
	element()
}

// Entry is an Element a caller may append to a Document. The Header is an
// Element but not an Entry.
type Entry interface {
	Element
	entry()
}

// represents transcribed audio segment
type Segment struct {
	StartTime float64
	EndTime   float64
	Text      string
}

// String returns a pointer to v, for optional fields.
func String(v string) *string {
	return &v
}
