package lawtree

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Label is the classification of a single fragment.
type Label string

// Labels.
const (
	LabelNone       Label = "none"
	LabelPart       Label = "part"
	LabelChapter    Label = "chapter"
	LabelSection    Label = "section"
	LabelArticle    Label = "article"
	LabelClause     Label = "clause"
	LabelPoint      Label = "point"
	LabelItem       Label = "item"
	LabelSubitem    Label = "subitem"
	LabelAppendix   Label = "appendix"
	LabelRecipients Label = "recipients"
	LabelSignature  Label = "signature"
)

// Structural reports whether the label opens a tree node.
func (l Label) Structural() bool {
	switch l {
	case LabelPart, LabelChapter, LabelSection, LabelArticle,
		LabelClause, LabelPoint, LabelItem, LabelSubitem:
		return true
	}
	return false
}

// Heading patterns. Vietnamese case folding is handled by (?i); Roman
// numerals and point letters stay case-sensitive so that ordinary sentences
// starting with "I." or "A." are not misread.
var (
	partPattern       = regexp.MustCompile(`^(?s:.*[.:\n]\s*)?(?i:phần)\s+(?:(?i:thứ)\s+\pL|\p{Lu})`)
	chapterPattern    = regexp.MustCompile(`^(?s:.*[.:\n]\s*)?(?:(?i:chương)\s+(?i:[IVX0-9]+)|[IVX]+\.\s)`)
	sectionPattern    = regexp.MustCompile(`^(?s:.*[.:\n]\s*)?(?i:mục)\s+[0-9]+`)
	articlePattern    = regexp.MustCompile(`^\s*(?i:điều)\s+\d+`)
	pointPattern      = regexp.MustCompile(`^\s*[a-zđ][).]\s+`)
	loosePattern      = regexp.MustCompile(`^\s*(\d+(?:\.\d+)*)\.?\s+(.*)$`)
	romanPattern      = regexp.MustCompile(`^\s*([IVX]+)\.\s*(.*)$`)
	appendixPattern   = regexp.MustCompile(`^\s*(?i:phụ lục|mẫu số)(?:\s|$)`)
	recipientsPattern = regexp.MustCompile(`^\s*(?i:nơi nhận|nơi gửi)\s*[:;]`)
	signaturePattern  = regexp.MustCompile(`^\s*(?:TM\.|KT\.|TL\.|PP\.|CHỦ TỊCH|THỦ TƯỚNG|BỘ TRƯỞNG|THỐNG ĐỐC|GIÁM ĐỐC|TỔNG GIÁM ĐỐC|QUYỀN|KÝ THAY|(?i:thay mặt))`)
)

// triggerMaxRunes is the length under which a non-bold appendix or
// signature line still counts as a trigger.
const triggerMaxRunes = 100

// anchorPrefixes maps structural anchor prefixes to node types.
var anchorPrefixes = []struct {
	prefix string
	typ    NodeType
}{
	{"phan_", TypePart},
	{"chuong_", TypeChapter},
	{"muc_", TypeSection},
	{"dieu_", TypeArticle},
	{"khoan_", TypeClause},
}

// AnchorType returns the node type a structural anchor marks. Anchors with
// the "_name" suffix mark titles, not structure.
func AnchorType(anchor string) (NodeType, bool) {
	if anchor == "" || strings.HasSuffix(anchor, "_name") {
		return "", false
	}
	for _, p := range anchorPrefixes {
		if strings.HasPrefix(anchor, p.prefix) {
			return p.typ, true
		}
	}
	return "", false
}

// DetectTrigger returns LabelRecipients, LabelSignature or LabelAppendix
// when the fragment opens a side-channel block, and LabelNone otherwise.
func DetectTrigger(f Fragment) Label {
	short := utf8.RuneCountInString(f.Text) < triggerMaxRunes
	switch {
	case recipientsPattern.MatchString(f.Text):
		return LabelRecipients
	case signaturePattern.MatchString(f.Text) && (short || f.Bold):
		return LabelSignature
	case appendixPattern.MatchString(f.Text) && (short || f.Bold):
		return LabelAppendix
	}
	return LabelNone
}

// Classify returns the structural label of a fragment whose innermost open
// node has type parent. It never returns a side-channel label.
func Classify(f Fragment, parent NodeType, v Variant) Label {
	if c, ok := classify(f, parent, v); ok {
		return Label(c.Type)
	}
	return LabelNone
}

// classify returns the node a fragment opens, if any. The node carries its
// level, title, anchor and, for numbered paragraphs, the first content line.
func classify(f Fragment, parent NodeType, v Variant) (*Node, bool) {
	if t, ok := AnchorType(f.Anchor); ok && v.anchored(t) {
		return newCandidate(v, t, f.Text, f.Anchor), true
	}
	if t, ok := heading(f, v); ok {
		if v == Plan && t == TypeSection {
			m := romanPattern.FindStringSubmatch(f.Text)
			return newCandidate(v, t, strings.TrimSpace(m[1]+". "+m[2]), f.Anchor), true
		}
		return newCandidate(v, t, f.Text, f.Anchor), true
	}
	if m := loosePattern.FindStringSubmatch(f.Text); m != nil {
		t, ok := looseType(v, parent, m[1])
		if !ok {
			return nil, false
		}
		n := newCandidate(v, t, m[1], "")
		n.AddText(m[2])
		return n, true
	}
	if pointPattern.MatchString(f.Text) {
		return newCandidate(v, TypePoint, f.Text, f.Anchor), true
	}
	return nil, false
}

// heading returns the heading type matched by the variant's ordered heading
// patterns. Part, chapter and section headings must be bold.
func heading(f Fragment, v Variant) (NodeType, bool) {
	switch v {
	case Hierarchical:
		switch {
		case f.Bold && partPattern.MatchString(f.Text):
			return TypePart, true
		case f.Bold && chapterPattern.MatchString(f.Text):
			return TypeChapter, true
		case f.Bold && sectionPattern.MatchString(f.Text):
			return TypeSection, true
		case articlePattern.MatchString(f.Text):
			return TypeArticle, true
		}
	case Decision:
		if articlePattern.MatchString(f.Text) {
			return TypeArticle, true
		}
	case Plan:
		if f.Bold && romanPattern.MatchString(f.Text) {
			return TypeSection, true
		}
	}
	return "", false
}

// looseType maps a numbered paragraph to a node type given the innermost
// open node. A false result folds the paragraph into that node's content.
func looseType(v Variant, parent NodeType, numeral string) (NodeType, bool) {
	switch v {
	case Hierarchical, Decision:
		switch parent {
		case TypeArticle, TypeClause, TypePoint:
			return TypeClause, true
		}
	case Directive:
		switch parent {
		case TypeDocument:
			return TypeItem, true
		case TypeItem, TypeSubitem, TypePoint:
			if strings.Contains(numeral, ".") {
				return TypeSubitem, true
			}
			return TypeItem, true
		}
	case Plan:
		switch parent {
		case TypeSection, TypeItem, TypePoint:
			return TypeItem, true
		}
	}
	return "", false
}

func newCandidate(v Variant, t NodeType, title, anchor string) *Node {
	n := NewNode(v.levelOf(t), t, title)
	n.AnchorID = anchor
	return n
}
