package lawtree

// Converter converts document markup to Markdown for review.
type Converter interface {
	// Convert transforms HTML content into Markdown, rendering the headings
	// that v recognizes as Markdown headings.
	// The input should be a content region (e.g., from goquery.ContentHTML).
	// Returns EINVALID for empty input.
	Convert(html string, v Variant) (string, error)
}
