package batch

import (
	"fmt"
	"strings"
)

// Truncate shortens s to at most maxLen runes for display, keeping the
// beginning which names the document.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen < 4 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}

// FormatResult formats run totals in human-readable form.
func FormatResult(r *Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Parsed %d", r.Parsed)
	if r.Failed > 0 {
		fmt.Fprintf(&b, ", failed %d", r.Failed)
	}
	if r.Skipped > 0 {
		fmt.Fprintf(&b, ", skipped %d", r.Skipped)
	}
	fmt.Fprintf(&b, " (%d nodes)", r.Nodes)
	return b.String()
}
