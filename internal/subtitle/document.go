package subtitle

import "strings"

// Document is an ordered subtitle track. The first element is always its
// Header; everything else is appended with Add and kept in insertion order.
//
// A Document is not safe for concurrent use.
type Document struct {
	header   *Header
	elements []Element
}

// New creates a Document whose header line carries text. Text is escaped
// and may be empty.
func New(header string) (*Document, error) {
	h, err := newHeader(header, false)
	if err != nil {
		return nil, err
	}

	return &Document{
		header:   h,
		elements: []Element{h},
	}, nil
}

// Add appends a cue or a comment.
func (d *Document) Add(entry Entry) {
	if entry == nil {
		return
	}
	d.elements = append(d.elements, entry)
}

func (d *Document) Header() *Header {
	return d.header
}

// Elements returns a copy of the element sequence, header first.
func (d *Document) Elements() []Element {
	out := make([]Element, len(d.elements))
	copy(out, d.elements)
	return out
}

// Cues returns the cues in document order.
func (d *Document) Cues() []*Cue {
	var cues []*Cue
	for _, el := range d.elements {
		if cue, ok := el.(*Cue); ok {
			cues = append(cues, cue)
		}
	}
	return cues
}

// Len is the number of elements including the header.
func (d *Document) Len() int {
	return len(d.elements)
}

// Render serializes the document. Elements that render empty in the given
// format are skipped and the rest are separated by a blank line.
func (d *Document) Render(format Format) string {
	blocks := make([]string, 0, len(d.elements))
	for _, el := range d.elements {
		if s := el.Render(format); s != "" {
			blocks = append(blocks, s)
		}
	}
	return strings.Join(blocks, "\n\n") + "\n"
}

func (d *Document) String() string {
	return d.Render(DefaultFormat)
}
