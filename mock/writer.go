package mock

import (
	"context"

	"github.com/fwojciec/lawtree"
)

var (
	_ lawtree.RecordWriter = (*RecordWriter)(nil)
	_ lawtree.EntryWriter  = (*EntryWriter)(nil)
)

// RecordWriter is a mock implementation of lawtree.RecordWriter.
type RecordWriter struct {
	CreateRecordFn func(ctx context.Context, rec *lawtree.Record) error
}

func (w *RecordWriter) CreateRecord(ctx context.Context, rec *lawtree.Record) error {
	return w.CreateRecordFn(ctx, rec)
}

// EntryWriter is a mock implementation of lawtree.EntryWriter.
type EntryWriter struct {
	WriteEntryFn func(ctx context.Context, e *lawtree.Entry) error
}

func (w *EntryWriter) WriteEntry(ctx context.Context, e *lawtree.Entry) error {
	return w.WriteEntryFn(ctx, e)
}
