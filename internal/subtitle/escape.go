package subtitle

import "strings"

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// Escape replaces every &, < and > in text with its character reference.
func Escape(text string) string {
	return textEscaper.Replace(text)
}
