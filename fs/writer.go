// Package fs provides file-based storage for parse results.
package fs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/fwojciec/lawtree"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Slug converts a document identifier or title to a file name stem.
// Example: "Thông tư 80/2021/TT-BTC" → "thong-tu-80-2021-tt-btc"
func Slug(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	folded = strings.NewReplacer("đ", "d", "Đ", "d").Replace(folded)

	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// Ensure Writer implements lawtree.RecordWriter at compile time.
var _ lawtree.RecordWriter = (*Writer)(nil)

// Writer writes records as JSON and plain-text files to a directory.
type Writer struct {
	baseDir string
	encoder lawtree.Encoder
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir, encoder: lawtree.JSONEncoder{}}
}

// maxNameAttempts bounds the numbered suffixes tried for one file name.
const maxNameAttempts = 1000

// CreateRecord writes <slug>.json with the parse result and <slug>.txt with
// the plain text. The slug comes from the source ID, or the title when the
// record has none, and becomes the record ID. When another record already
// holds the slug, the first free "<slug>-2", "<slug>-3"... is used instead.
func (w *Writer) CreateRecord(ctx context.Context, rec *lawtree.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	slug := Slug(rec.SourceID)
	if slug == "" {
		slug = Slug(rec.Title)
	}
	if slug == "" {
		return lawtree.Errorf(lawtree.EINVALID, "record has no usable file name")
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := w.encoder.Encode(&buf, rec.Result); err != nil {
		return err
	}

	f, name, err := w.reserve(slug)
	if err != nil {
		return err
	}
	if _, err := f.Write(buf.Bytes()); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	text := rec.PlainText
	if text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	if err := os.WriteFile(filepath.Join(w.baseDir, name+".txt"), []byte(text), 0644); err != nil {
		return err
	}

	rec.ID = name
	if rec.ParsedAt.IsZero() {
		rec.ParsedAt = time.Now().UTC().Truncate(time.Second)
	}
	return nil
}

// reserve exclusively creates the JSON file of the first free name derived
// from slug and returns it open for writing.
func (w *Writer) reserve(slug string) (*os.File, string, error) {
	for i := 1; i <= maxNameAttempts; i++ {
		name := slug
		if i > 1 {
			name = fmt.Sprintf("%s-%d", slug, i)
		}
		f, err := os.OpenFile(filepath.Join(w.baseDir, name+".json"), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		if err != nil {
			return nil, "", err
		}
		return f, name, nil
	}
	return nil, "", lawtree.Errorf(lawtree.EINVALID, "too many records named %q", slug)
}
