package subtitle

import (
	"fmt"
	"strings"
)

// Header is the leading WEBVTT line of a Document.
type Header struct {
	Text string
}

func newHeader(text string, escaped bool) (*Header, error) {
	if strings.Contains(text, timingArrow) {
		return nil, fmt.Errorf("%w: must not contain %s", ErrInvalidHeaderText, timingArrow)
	}
	if strings.Contains(text, "\n") {
		return nil, fmt.Errorf("%w: must not contain newlines", ErrInvalidHeaderText)
	}

	if !escaped {
		text = Escape(text)
	}

	return &Header{Text: text}, nil
}

func (h *Header) Render(format Format) string {
	if format == FormatSRT {
		return ""
	}
	if h.Text == "" {
		return "WEBVTT"
	}
	return "WEBVTT " + h.Text
}

func (h *Header) element() {}
