package subtitle

import (
	"fmt"
	"strings"
)

// Cue is a single timed subtitle entry. Times are in seconds.
//
// Fields may be changed after NewCue returns, but nothing is validated again.
type Cue struct {
	StartTime  float64
	EndTime    float64
	Payload    string
	Identifier *string
	Settings   *CueSettings
}

// CueParams are the inputs to NewCue. Payload and Identifier are escaped
// unless the matching Escaped flag is set, in which case they are stored as
// given.
type CueParams struct {
	StartTime         float64
	EndTime           float64
	Payload           string
	PayloadEscaped    bool
	Identifier        *string
	IdentifierEscaped bool
	Settings          *CueSettings
}

func NewCue(p CueParams) (*Cue, error) {
	// written negated so NaN fails too
	if !(p.StartTime < p.EndTime) || p.StartTime < 0 {
		return nil, fmt.Errorf(
			"%w: start %v, end %v",
			ErrInvalidTimeRange,
			p.StartTime,
			p.EndTime,
		)
	}

	payload := p.Payload
	if !p.PayloadEscaped {
		payload = Escape(payload)
	}

	var identifier *string
	if p.Identifier != nil {
		id := *p.Identifier
		if strings.Contains(id, "\n") {
			return nil, fmt.Errorf("%w: must not contain a newline", ErrInvalidIdentifier)
		}
		if strings.Contains(id, timingArrow) {
			return nil, fmt.Errorf("%w: must not contain %s", ErrInvalidIdentifier, timingArrow)
		}
		if !p.IdentifierEscaped {
			id = Escape(id)
		}
		identifier = &id
	}

	return &Cue{
		StartTime:  p.StartTime,
		EndTime:    p.EndTime,
		Payload:    payload,
		Identifier: identifier,
		Settings:   p.Settings,
	}, nil
}

// Render returns the cue block: optional identifier line, timing line and
// payload. SRT output drops settings but keeps the identifier.
func (c *Cue) Render(format Format) string {
	var sb strings.Builder

	if c.Identifier != nil && *c.Identifier != "" {
		sb.WriteString(*c.Identifier)
		sb.WriteString("\n")
	}

	timing := fmt.Sprintf("%s --> %s %s",
		FormatTime(c.StartTime),
		FormatTime(c.EndTime),
		c.Settings.Render(format))
	sb.WriteString(strings.TrimRight(timing, " "))
	sb.WriteString("\n")

	sb.WriteString(c.Payload)

	return sb.String()
}

func (c *Cue) element() {}
func (c *Cue) entry()   {}
