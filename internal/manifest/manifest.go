// Package manifest decodes the JSON inputs of the vttgen CLI into subtitle
// documents.
package manifest

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mgpai22/vttgen/internal/subtitle"
)

// element kinds accepted in a track manifest
const (
	KindCue     = "cue"
	KindComment = "comment"
)

// Track is a complete document description.
type Track struct {
	Header   string    `json:"header"`
	Elements []Element `json:"elements"`
}

// Element is one cue or comment of a Track.
type Element struct {
	Type string `json:"type"`

	// cue fields
	Start             float64   `json:"start"`
	End               float64   `json:"end"`
	Payload           string    `json:"payload"`
	PayloadEscaped    bool      `json:"payload_escaped,omitempty"`
	Identifier        *string   `json:"identifier,omitempty"`
	IdentifierEscaped bool      `json:"identifier_escaped,omitempty"`
	Settings          *Settings `json:"settings,omitempty"`

	// comment fields
	Text    string `json:"text"`
	Escaped bool   `json:"escaped,omitempty"`
}

type Settings struct {
	Vertical *string `json:"vertical,omitempty"`
	Position *string `json:"position,omitempty"`
	Size     *string `json:"size,omitempty"`
	Line     *string `json:"line,omitempty"`
	Align    *string `json:"align,omitempty"`
}

// Transcript is a list of raw timed segments fed to the generator.
type Transcript struct {
	Segments []Segment `json:"segments"`
}

type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

func Decode(r io.Reader) (*Track, error) {
	var track Track
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&track); err != nil {
		return nil, fmt.Errorf("failed to decode track manifest: %w", err)
	}
	return &track, nil
}

func Load(path string) (*Track, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	return Decode(file)
}

// Document builds a subtitle document, stopping at the first element that
// fails validation.
func (t *Track) Document() (*subtitle.Document, error) {
	doc, err := subtitle.New(t.Header)
	if err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}

	for i, el := range t.Elements {
		entry, err := el.entry()
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		doc.Add(entry)
	}

	return doc, nil
}

func (e Element) entry() (subtitle.Entry, error) {
	switch e.Type {
	case KindCue:
		params := subtitle.CueParams{
			StartTime:         e.Start,
			EndTime:           e.End,
			Payload:           e.Payload,
			PayloadEscaped:    e.PayloadEscaped,
			Identifier:        e.Identifier,
			IdentifierEscaped: e.IdentifierEscaped,
		}
		if e.Settings != nil {
			params.Settings = &subtitle.CueSettings{
				Vertical: e.Settings.Vertical,
				Position: e.Settings.Position,
				Size:     e.Settings.Size,
				Line:     e.Settings.Line,
				Align:    e.Settings.Align,
			}
		}
		return subtitle.NewCue(params)
	case KindComment:
		return subtitle.NewComment(e.Text, e.Escaped)
	default:
		return nil, fmt.Errorf("unknown element type %q", e.Type)
	}
}

func DecodeTranscript(r io.Reader) (*Transcript, error) {
	var transcript Transcript
	if err := json.NewDecoder(r).Decode(&transcript); err != nil {
		return nil, fmt.Errorf("failed to decode transcript: %w", err)
	}
	return &transcript, nil
}

func LoadTranscript(path string) (*Transcript, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open transcript: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	return DecodeTranscript(file)
}

// Segments converts the transcript for subtitle.DefaultGenerator.
func (t *Transcript) Segments() []subtitle.Segment {
	segments := make([]subtitle.Segment, len(t.Segments))
	for i, s := range t.Segments {
		segments[i] = subtitle.Segment{
			StartTime: s.Start,
			EndTime:   s.End,
			Text:      s.Text,
		}
	}
	return segments
}
