package lawtree

import (
	"encoding/json"
	"strings"
)

// Metadata holds the administrative closing block of a document.
type Metadata struct {
	Recipients []string `json:"recipients"`
	Signers    []string `json:"signers"`
}

// MarshalJSON always encodes both lists as arrays.
func (m Metadata) MarshalJSON() ([]byte, error) {
	type metadata struct {
		Recipients []string `json:"recipients"`
		Signers    []string `json:"signers"`
	}
	v := metadata{Recipients: m.Recipients, Signers: m.Signers}
	if v.Recipients == nil {
		v.Recipients = []string{}
	}
	if v.Signers == nil {
		v.Signers = []string{}
	}
	return json.Marshal(v)
}

// Attachment is an appendix block detected in the document.
type Attachment struct {
	Title   string
	Content []string
}

// AddText appends a trimmed, non-empty line to the attachment.
func (a *Attachment) AddText(text string) {
	if text = strings.TrimSpace(text); text != "" {
		a.Content = append(a.Content, text)
	}
}

type attachmentJSON struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// MarshalJSON encodes the attachment as {title, content} with content lines
// joined by newlines.
func (a *Attachment) MarshalJSON() ([]byte, error) {
	return json.Marshal(attachmentJSON{
		Title:   a.Title,
		Content: strings.Join(a.Content, "\n"),
	})
}

// UnmarshalJSON decodes the external attachment shape.
func (a *Attachment) UnmarshalJSON(data []byte) error {
	var v attachmentJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	a.Title = v.Title
	a.Content = splitLines(v.Content)
	return nil
}

// ParseResult is the output of parsing one document. It is fully determined
// by the content, title and variant it was built from.
type ParseResult struct {
	Structure   *Node         `json:"structure"`
	Metadata    Metadata      `json:"metadata"`
	Attachments []*Attachment `json:"attachments"`
}

// MarshalJSON always encodes attachments as an array.
func (r *ParseResult) MarshalJSON() ([]byte, error) {
	type result ParseResult
	v := result(*r)
	if v.Attachments == nil {
		v.Attachments = []*Attachment{}
	}
	return json.Marshal(v)
}

// Parser parses legal documents into a ParseResult.
type Parser interface {
	// Parse parses markup content with the given title. The document type
	// label selects the rule variant; unknown labels use the Hierarchical
	// variant.
	//
	// Returns EINVALID if the title is empty or content is not valid text.
	Parse(content, title, documentType string) (*ParseResult, error)
}
