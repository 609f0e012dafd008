package lawtree

// Fragment is one block-level unit of cleaned document text, in document
// order. Fragments with empty text never reach the builder.
type Fragment struct {
	Text   string
	Bold   bool
	Anchor string
}

// Normalizer turns raw markup into an ordered fragment sequence.
type Normalizer interface {
	// Normalize selects the primary content region of content and returns
	// one fragment per block-level unit whose element kind the variant
	// allows.
	//
	// Returns EINVALID if the markup cannot be read.
	Normalize(content string, v Variant) ([]Fragment, error)
}
