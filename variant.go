package lawtree

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Variant is one of the closed set of rule configurations for a document
// family.
type Variant int

// Variants.
const (
	Hierarchical Variant = iota
	Decision
	Directive
	Plan
)

// Variants returns every variant in declaration order.
func Variants() []Variant {
	return []Variant{Hierarchical, Decision, Directive, Plan}
}

// String returns the lower-case variant name.
func (v Variant) String() string {
	switch v {
	case Decision:
		return "decision"
	case Directive:
		return "directive"
	case Plan:
		return "plan"
	}
	return "hierarchical"
}

// ParseVariant returns the variant with the given name.
func ParseVariant(name string) (Variant, error) {
	for _, v := range Variants() {
		if strings.EqualFold(strings.TrimSpace(name), v.String()) {
			return v, nil
		}
	}
	return Hierarchical, Errorf(EINVALID, "unknown variant %q", name)
}

// Elements returns the markup element kinds that produce fragments.
func (v Variant) Elements() []string {
	if v == Hierarchical {
		return []string{"p", "div", "h3", "h4", "h5", "table", "span"}
	}
	return []string{"p", "div", "h3", "h4", "h5"}
}

// Merges reports whether adjacent duplicate headings are collapsed.
func (v Variant) Merges() bool {
	return v == Hierarchical || v == Decision
}

// MetadataThreshold is the rune length under which a fragment following a
// recipients or signature marker is absorbed into metadata.
func (v Variant) MetadataThreshold() int {
	if v == Hierarchical {
		return 50
	}
	return 60
}

// Types returns the node types the variant creates below the root.
func (v Variant) Types() []NodeType {
	switch v {
	case Decision:
		return []NodeType{TypeArticle, TypeClause, TypePoint}
	case Directive:
		return []NodeType{TypeItem, TypeSubitem, TypePoint}
	case Plan:
		return []NodeType{TypeSection, TypeItem, TypePoint}
	}
	return []NodeType{TypePart, TypeChapter, TypeSection, TypeArticle, TypeClause, TypePoint}
}

// levelOf returns the level at which the variant creates nodes of type t.
func (v Variant) levelOf(t NodeType) Level {
	if v == Plan && t == TypeSection {
		return LevelChapter
	}
	return LevelOf(t)
}

// anchored reports whether a structural anchor for type t overrides
// classification in this variant.
func (v Variant) anchored(t NodeType) bool {
	switch v {
	case Hierarchical:
		return t != TypePoint
	case Decision:
		return t == TypeArticle || t == TypeClause
	}
	return false
}

// Route maps a document type label to a variant.
type Route struct {
	Label   string
	Variant Variant
}

var routes = []Route{
	{"Luật", Hierarchical},
	{"Thông tư", Hierarchical},
	{"Thông tư liên tịch", Hierarchical},
	{"Nghị định", Hierarchical},
	{"Pháp lệnh", Hierarchical},
	{"Văn bản hợp nhất", Hierarchical},
	{"Quy chế", Hierarchical},
	{"Quy định", Hierarchical},
	{"Quyết định", Decision},
	{"Lệnh", Decision},
	{"Sắc lệnh", Decision},
	{"Nghị quyết", Decision},
	{"Thông báo", Directive},
	{"Công điện", Directive},
	{"Thông tri", Directive},
	{"Chỉ thị", Plan},
	{"Kế hoạch", Plan},
	{"Hướng dẫn", Plan},
	{"Báo cáo", Plan},
}

// Routes returns a copy of the document type routing table.
func Routes() []Route {
	out := make([]Route, len(routes))
	copy(out, routes)
	return out
}

// VariantFor returns the variant for a document type label. Matching ignores
// case and surrounding whitespace. Unknown labels map to Hierarchical.
func VariantFor(label string) Variant {
	label = collapseSpace(label)
	for _, r := range routes {
		if strings.EqualFold(label, r.Label) {
			return r.Variant
		}
	}
	return Hierarchical
}

// InferDocumentType returns the longest routing label that starts the title
// as a whole word, or an empty string.
func InferDocumentType(title string) string {
	title = strings.ToLower(collapseSpace(title))
	var best string
	for _, r := range routes {
		prefix := strings.ToLower(r.Label)
		if !strings.HasPrefix(title, prefix) || len(r.Label) <= len(best) {
			continue
		}
		next, _ := utf8.DecodeRuneInString(title[len(prefix):])
		if next != utf8.RuneError && (unicode.IsLetter(next) || unicode.IsDigit(next)) {
			continue
		}
		best = r.Label
	}
	return best
}

// collapseSpace trims s and collapses internal whitespace runs to one space.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
