package lawtree

import (
	"context"
	"time"
)

// Input is one document submitted for parsing.
type Input struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Type    string `json:"type"`
	Content string `json:"content"`
}

// Validate returns an error if the input contains invalid fields.
func (in *Input) Validate() error {
	if in.Title == "" {
		return Errorf(EINVALID, "document title required")
	}
	return nil
}

// DocumentType returns the declared document type, or the type inferred
// from the title when none was declared.
func (in *Input) DocumentType() string {
	if in.Type != "" {
		return in.Type
	}
	return InferDocumentType(in.Title)
}

// Record is a stored parse result.
type Record struct {
	ID           string           `json:"id"`
	SourceID     string           `json:"sourceId"`
	Title        string           `json:"title"`
	DocumentType string           `json:"documentType"`
	Variant      string           `json:"variant"`
	Content      string           `json:"-"`
	ContentHash  string           `json:"contentHash"`
	Result       *ParseResult     `json:"result,omitempty"`
	PlainText    string           `json:"plainText,omitempty"`
	NodeCount    int              `json:"nodeCount"`
	NodeCounts   map[NodeType]int `json:"nodeCounts,omitempty"`
	ParsedAt     time.Time        `json:"parsedAt"`
}

// NewRecord returns an unsaved record for the result of parsing in.
func NewRecord(in *Input, r *ParseResult) *Record {
	docType := in.DocumentType()
	return &Record{
		SourceID:     in.ID,
		Title:        in.Title,
		DocumentType: docType,
		Variant:      VariantFor(docType).String(),
		Content:      in.Content,
		Result:       r,
		PlainText:    PlainText(r.Structure),
		NodeCount:    CountNodes(r.Structure),
		NodeCounts:   CountByType(r.Structure),
	}
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.Title == "" {
		return Errorf(EINVALID, "record title required")
	}
	if r.Result == nil || r.Result.Structure == nil {
		return Errorf(EINVALID, "record result required")
	}
	return nil
}

// RecordWriter writes parse records to storage.
type RecordWriter interface {
	CreateRecord(ctx context.Context, rec *Record) error
}

// RecordService represents a service for managing parse records.
type RecordService interface {
	// CreateRecord stores a new record and assigns its ID, hash and parse
	// time.
	CreateRecord(ctx context.Context, rec *Record) error

	// FindRecordByID retrieves a record by ID.
	// Returns ENOTFOUND if record does not exist.
	FindRecordByID(ctx context.Context, id string) (*Record, error)

	// FindRecords retrieves records matching the filter, newest first.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*Record, error)

	// DeleteRecord permanently removes a record.
	// Returns ENOTFOUND if record does not exist.
	DeleteRecord(ctx context.Context, id string) error
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	ID           *string `json:"id"`
	SourceID     *string `json:"sourceId"`
	DocumentType *string `json:"documentType"`
	Variant      *string `json:"variant"`
	ContentHash  *string `json:"contentHash"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
