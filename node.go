package lawtree

import (
	"encoding/json"
	"strings"
)

// Level is the fixed structural depth of a node.
type Level int

// Structural levels. Item and Subitem share the Article and Clause depths in
// document families that have no formal articles.
const (
	LevelDocument Level = 0
	LevelPart     Level = 1
	LevelChapter  Level = 2
	LevelSection  Level = 3
	LevelArticle  Level = 4
	LevelClause   Level = 5
	LevelPoint    Level = 6
)

// NodeType identifies the semantic kind of a node.
type NodeType string

// Node types.
const (
	TypeDocument NodeType = "document"
	TypePart     NodeType = "part"
	TypeChapter  NodeType = "chapter"
	TypeSection  NodeType = "section"
	TypeArticle  NodeType = "article"
	TypeClause   NodeType = "clause"
	TypePoint    NodeType = "point"
	TypeItem     NodeType = "item"
	TypeSubitem  NodeType = "subitem"
)

// LevelOf returns the default level for a node type. The Plan variant
// creates its Roman-numeral sections at LevelChapter; that placement is not
// recoverable from the type alone.
func LevelOf(t NodeType) Level {
	switch t {
	case TypePart:
		return LevelPart
	case TypeChapter:
		return LevelChapter
	case TypeSection:
		return LevelSection
	case TypeArticle, TypeItem:
		return LevelArticle
	case TypeClause, TypeSubitem:
		return LevelClause
	case TypePoint:
		return LevelPoint
	}
	return LevelDocument
}

// Node is one element of the legal document tree. A node exclusively owns
// its children.
type Node struct {
	Level    Level
	Type     NodeType
	Title    string
	Content  []string
	Children []*Node
	AnchorID string
}

// NewNode returns a node of the given type at the given level.
func NewNode(level Level, typ NodeType, title string) *Node {
	return &Node{Level: level, Type: typ, Title: title}
}

// AddText appends a trimmed, non-empty line to the node's content.
func (n *Node) AddText(text string) {
	if text = strings.TrimSpace(text); text != "" {
		n.Content = append(n.Content, text)
	}
}

// Walk calls fn for n and every descendant in depth-first order.
// Traversal of a subtree stops when fn returns false.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// nodeJSON is the external shape of a node.
type nodeJSON struct {
	Type     NodeType `json:"type"`
	Title    string   `json:"title"`
	AnchorID string   `json:"anchor_id,omitempty"`
	Content  string   `json:"content,omitempty"`
	Children []*Node  `json:"children,omitempty"`
}

// MarshalJSON encodes the node as {type, title, anchor_id?, content?, children?}.
func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(nodeJSON{
		Type:     n.Type,
		Title:    n.Title,
		AnchorID: n.AnchorID,
		Content:  strings.TrimSpace(strings.Join(n.Content, "\n")),
		Children: n.Children,
	})
}

// UnmarshalJSON decodes the external node shape. Content lines are split on
// newlines; the level is derived from the type.
func (n *Node) UnmarshalJSON(data []byte) error {
	var v nodeJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Type = v.Type
	n.Level = LevelOf(v.Type)
	n.Title = v.Title
	n.AnchorID = v.AnchorID
	n.Content = splitLines(v.Content)
	n.Children = v.Children
	return nil
}

// splitLines splits newline-joined content back into lines.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// CountNodes returns the number of nodes in the tree rooted at n, excluding
// the root itself.
func CountNodes(n *Node) int {
	count := -1
	n.Walk(func(*Node) bool {
		count++
		return true
	})
	return max(count, 0)
}

// CountByType returns the number of non-root nodes of each type.
func CountByType(n *Node) map[NodeType]int {
	counts := make(map[NodeType]int)
	n.Walk(func(c *Node) bool {
		if c != n {
			counts[c.Type]++
		}
		return true
	})
	return counts
}

// PlainText returns the content lines of the tree in depth-first order,
// joined by newlines.
func PlainText(n *Node) string {
	var lines []string
	n.Walk(func(c *Node) bool {
		lines = append(lines, c.Content...)
		return true
	})
	return strings.Join(lines, "\n")
}
