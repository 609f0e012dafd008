package goquery

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/lawtree"
)

var _ lawtree.Parser = (*Parser)(nil)

// Parser implements lawtree.Parser by normalizing markup with a Normalizer
// and building the tree for the variant routed from the document type.
// It holds no per-document state and is safe for concurrent use.
type Parser struct {
	normalizer *Normalizer
}

// NewParser creates a new Parser. Options configure its Normalizer.
func NewParser(opts ...Option) *Parser {
	return &Parser{normalizer: NewNormalizer(opts...)}
}

// Parse implements lawtree.Parser.
func (p *Parser) Parse(content, title, documentType string) (*lawtree.ParseResult, error) {
	if strings.TrimSpace(title) == "" {
		return nil, lawtree.Errorf(lawtree.EINVALID, "document title required")
	}
	if !utf8.ValidString(content) {
		return nil, lawtree.Errorf(lawtree.EINVALID, "content is not valid UTF-8 text")
	}
	if !isText(content) {
		return nil, lawtree.Errorf(lawtree.EUNSUPPORTED, "no structured content")
	}

	v := lawtree.VariantFor(documentType)
	fragments, err := p.normalizer.Normalize(content, v)
	if err != nil {
		return nil, err
	}
	return lawtree.Build(title, v, fragments)
}

// isText reports whether content sniffs as a text format rather than a
// binary document such as PDF or a zip container.
func isText(content string) bool {
	n := min(len(content), 512)
	return strings.HasPrefix(http.DetectContentType([]byte(content[:n])), "text/")
}
