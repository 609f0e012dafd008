// Package yaml encodes parse results as YAML using github.com/goccy/go-yaml.
package yaml

import (
	"io"

	"github.com/fwojciec/lawtree"
	"github.com/goccy/go-yaml"
)

// Compile-time interface verification.
var _ lawtree.Encoder = (*Encoder)(nil)

// Encoder writes parse results as YAML. Content is written as a list of
// lines rather than one newline-joined string.
type Encoder struct{}

// NewEncoder creates a new Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Name implements lawtree.Encoder.
func (e *Encoder) Name() string { return "yaml" }

type node struct {
	Type     string   `yaml:"type"`
	Title    string   `yaml:"title"`
	AnchorID string   `yaml:"anchor_id,omitempty"`
	Content  []string `yaml:"content,omitempty"`
	Children []*node  `yaml:"children,omitempty"`
}

type metadata struct {
	Recipients []string `yaml:"recipients"`
	Signers    []string `yaml:"signers"`
}

type attachment struct {
	Title   string   `yaml:"title"`
	Content []string `yaml:"content"`
}

type result struct {
	Structure   *node        `yaml:"structure"`
	Metadata    metadata     `yaml:"metadata"`
	Attachments []attachment `yaml:"attachments"`
}

// Encode implements lawtree.Encoder.
func (e *Encoder) Encode(w io.Writer, r *lawtree.ParseResult) error {
	v := result{
		Structure: toNode(r.Structure),
		Metadata: metadata{
			Recipients: nonNil(r.Metadata.Recipients),
			Signers:    nonNil(r.Metadata.Signers),
		},
		Attachments: []attachment{},
	}
	for _, a := range r.Attachments {
		v.Attachments = append(v.Attachments, attachment{Title: a.Title, Content: nonNil(a.Content)})
	}

	enc := yaml.NewEncoder(w, yaml.Indent(2), yaml.IndentSequence(true))
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func toNode(n *lawtree.Node) *node {
	if n == nil {
		return nil
	}
	out := &node{
		Type:     string(n.Type),
		Title:    n.Title,
		AnchorID: n.AnchorID,
		Content:  n.Content,
	}
	for _, c := range n.Children {
		out.Children = append(out.Children, toNode(c))
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
