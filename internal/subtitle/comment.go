package subtitle

import (
	"fmt"
	"strings"
)

// Comment is a WebVTT NOTE block. It has no SRT representation.
type Comment struct {
	Text string
}

// NewComment escapes text unless escaped is set. Comments may span lines but
// must not contain "-->".
func NewComment(text string, escaped bool) (*Comment, error) {
	if strings.Contains(text, timingArrow) {
		return nil, fmt.Errorf("%w: must not contain %s", ErrInvalidCommentText, timingArrow)
	}

	if !escaped {
		text = Escape(text)
	}

	return &Comment{Text: text}, nil
}

func (c *Comment) Render(format Format) string {
	if format == FormatSRT {
		return ""
	}
	return "NOTE " + c.Text
}

func (c *Comment) element() {}
func (c *Comment) entry()   {}
