package wbb

import "strings"

// unquote strips surrounding quotes from a string literal, an unterminated literal has the
// opening quote only.
func unquote(s String) string {
	v := strings.TrimPrefix(string(s), "\"")
	return strings.TrimSuffix(v, "\"")
}

// indent returns a run of spaces of the given width
func indent(width int) string {
	if width <= 0 {
		return ""
	}

	return strings.Repeat(" ", width)
}
