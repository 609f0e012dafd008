package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/fwojciec/lawtree"
)

// Ensure Store implements lawtree.RecordWriter at compile time.
var _ lawtree.RecordWriter = (*Store)(nil)

// Store writes records with atomic update semantics.
// Records are written to a temporary directory, then moved atomically on Commit.
type Store struct {
	baseDir string
	name    string
	writer  *Writer
}

// NewStore creates a new Store.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewStore(baseDir, name string) *Store {
	s := &Store{
		baseDir: baseDir,
		name:    name,
	}
	s.writer = NewWriter(s.tempDir())
	return s
}

func (s *Store) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *Store) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// CreateRecord implements lawtree.RecordWriter.
func (s *Store) CreateRecord(ctx context.Context, rec *lawtree.Record) error {
	return s.writer.CreateRecord(ctx, rec)
}

// markerName is the file Commit leaves in the output directory. Only
// directories carrying it are replaced by a later Commit.
const markerName = ".lawtree-output"

// CheckTarget returns EINVALID if the output directory exists, is not empty
// and was not written by a previous Commit.
func (s *Store) CheckTarget() error {
	entries, err := os.ReadDir(s.finalDir())
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}
	if _, err := os.Stat(filepath.Join(s.finalDir(), markerName)); err == nil {
		return nil
	}
	return lawtree.Errorf(lawtree.EINVALID, "output directory %q is not empty and was not written by lawtree", s.finalDir())
}

// Commit replaces the output directory with the staged records. It refuses
// to replace a directory that fails CheckTarget.
func (s *Store) Commit() error {
	if err := s.CheckTarget(); err != nil {
		return err
	}
	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(s.tempDir(), markerName), nil, 0644); err != nil {
		return err
	}
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards the staged records.
func (s *Store) Abort() error {
	return os.RemoveAll(s.tempDir())
}
