package lawtree

import (
	"fmt"
	"strings"
)

// FormatSummary formats a short human-readable report of a parse result:
// node counts per type in tree order, then metadata and attachment titles.
func FormatSummary(r *ParseResult) string {
	if r == nil || r.Structure == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", r.Structure.Title)

	counts := CountByType(r.Structure)
	fmt.Fprintf(&b, "nodes: %d\n", CountNodes(r.Structure))
	for _, t := range summaryTypes {
		if counts[t] > 0 {
			fmt.Fprintf(&b, "  %s: %d\n", t, counts[t])
		}
	}

	writeList(&b, "recipients", r.Metadata.Recipients)
	writeList(&b, "signers", r.Metadata.Signers)

	titles := make([]string, 0, len(r.Attachments))
	for _, a := range r.Attachments {
		titles = append(titles, a.Title)
	}
	writeList(&b, "attachments", titles)

	return strings.TrimRight(b.String(), "\n")
}

var summaryTypes = []NodeType{
	TypePart, TypeChapter, TypeSection, TypeArticle, TypeItem,
	TypeClause, TypeSubitem, TypePoint,
}

func writeList(b *strings.Builder, name string, items []string) {
	fmt.Fprintf(b, "%s: %d\n", name, len(items))
	for _, item := range items {
		fmt.Fprintf(b, "  %s\n", item)
	}
}
