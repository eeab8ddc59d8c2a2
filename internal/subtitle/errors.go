package subtitle

import "errors"

var (
	// ErrInvalidTimeRange is returned when a cue does not end strictly after
	// it starts, or starts before zero.
	ErrInvalidTimeRange = errors.New("cue end time must be greater than cue start time")

	// ErrInvalidIdentifier is returned when a cue identifier contains a
	// newline or "-->".
	ErrInvalidIdentifier = errors.New("invalid cue identifier")

	// ErrInvalidCommentText is returned when a comment contains "-->".
	ErrInvalidCommentText = errors.New("invalid comment text")

	// ErrInvalidHeaderText is returned when the header contains a newline
	// or "-->".
	ErrInvalidHeaderText = errors.New("invalid header text")
)

const timingArrow = "-->"
