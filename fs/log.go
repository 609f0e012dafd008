package fs

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"sync"

	"github.com/fwojciec/lawtree"
)

// Ensure Log implements lawtree.EntryWriter at compile time.
var _ lawtree.EntryWriter = (*Log)(nil)

// Log appends batch entries as JSON lines. It is safe for concurrent use.
type Log struct {
	mu     sync.Mutex
	enc    *json.Encoder
	closer io.Closer
}

// NewLog creates a Log writing to w.
func NewLog(w io.Writer) *Log {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &Log{enc: enc}
}

// OpenLog opens path for appending, creating it if needed.
func OpenLog(path string) (*Log, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	l := NewLog(f)
	l.closer = f
	return l, nil
}

// WriteEntry writes e as one line.
func (l *Log) WriteEntry(ctx context.Context, e *lawtree.Entry) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enc.Encode(e)
}

// Close closes the underlying file, if the Log opened one.
func (l *Log) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
