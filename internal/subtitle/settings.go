package subtitle

import "strings"

// CueSettings holds the optional WebVTT positioning attributes of a cue.
// Values are passed through as-is.
type CueSettings struct {
	Vertical *string
	Position *string
	Size     *string
	Line     *string
	Align    *string
}

// Render returns the space separated key:value list for WebVTT and an empty
// string for SRT. Keys are emitted in declaration order.
func (s *CueSettings) Render(format Format) string {
	if s == nil || format == FormatSRT {
		return ""
	}

	fields := []struct {
		key   string
		value *string
	}{
		{"vertical", s.Vertical},
		{"position", s.Position},
		{"size", s.Size},
		{"line", s.Line},
		{"align", s.Align},
	}

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if f.value == nil || *f.value == "" {
			continue
		}
		parts = append(parts, f.key+":"+*f.value)
	}

	return strings.Join(parts, " ")
}
