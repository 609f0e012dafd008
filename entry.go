package lawtree

import "context"

// Entry statuses.
const (
	StatusParsed  = "parsed"
	StatusFailed  = "failed"
	StatusSkipped = "skipped"
)

// Entry is the outcome of one document in a batch run.
type Entry struct {
	SourceID     string           `json:"id"`
	Title        string           `json:"title"`
	DocumentType string           `json:"documentType"`
	Variant      string           `json:"variant"`
	Status       string           `json:"status"`
	RecordID     string           `json:"recordId,omitempty"`
	NodeCount    int              `json:"nodeCount"`
	NodeCounts   map[NodeType]int `json:"nodeCounts,omitempty"`
	Error        *Failure         `json:"error,omitempty"`
}

// EntryWriter records batch entries as they complete.
type EntryWriter interface {
	WriteEntry(ctx context.Context, e *Entry) error
}
