package wbb

import "strings"

// escaper replaces every special symbol in a single pass, so an ampersand produced by one
// replacement is never escaped again.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"\"", "&quot;",
	"<", "&lt;",
	">", "&gt;",
)

// Escape makes text safe to put between HTML tags.
func Escape(text string) string {
	return escaper.Replace(text)
}
