package lawtree

import (
	"strings"
	"unicode/utf8"
)

// IsDuplicate reports whether b repeats the heading of its preceding sibling
// a. Source markup often renders a heading twice: once as a bare anchor stub
// and once as styled text with the heading name appended.
func IsDuplicate(a, b *Node) bool {
	if a == nil || b == nil || a.Type != b.Type {
		return false
	}
	t1, t2 := normalizeTitle(a.Title), normalizeTitle(b.Title)
	if t1 == t2 {
		return true
	}
	return hasSeparatedPrefix(t1, t2) || hasSeparatedPrefix(t2, t1)
}

// merge folds dup into sibling. The longer title wins, content is
// concatenated in document order and the first non-empty anchor is kept.
func merge(sibling, dup *Node) {
	if utf8.RuneCountInString(dup.Title) > utf8.RuneCountInString(sibling.Title) {
		sibling.Title = dup.Title
	}
	sibling.Content = append(sibling.Content, dup.Content...)
	if sibling.AnchorID == "" {
		sibling.AnchorID = dup.AnchorID
	}
}

func normalizeTitle(s string) string {
	return strings.TrimRight(strings.ToLower(collapseSpace(s)), ".:;,")
}

// hasSeparatedPrefix reports whether s starts with prefix followed by a
// space, period or colon. "điều 1" is not a prefix of "điều 10".
func hasSeparatedPrefix(s, prefix string) bool {
	if prefix == "" || !strings.HasPrefix(s, prefix) || len(s) == len(prefix) {
		return false
	}
	switch s[len(prefix)] {
	case ' ', '.', ':':
		return true
	}
	return false
}
