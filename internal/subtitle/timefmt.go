package subtitle

import (
	"fmt"
	"math"
)

// FormatTime renders seconds as HH:MM:SS.mmm. Milliseconds are truncated.
// The hours field is not capped, so 100h and above print three digits.
func FormatTime(sec float64) string {
	total := int64(math.Floor(sec * 1000))
	if total < 0 {
		total = 0
	}

	millis := total % 1000
	seconds := (total / 1000) % 60
	minutes := (total / 60000) % 60
	hours := total / 3600000

	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, seconds, millis)
}
