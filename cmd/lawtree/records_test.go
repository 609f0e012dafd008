package main_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/lawtree"
	main "github.com/fwojciec/lawtree/cmd/lawtree"
	"github.com/fwojciec/lawtree/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists records with ID variant node count and title", func(t *testing.T) {
		t.Parallel()

		var got lawtree.RecordFilter
		deps, stdout, _ := newDeps()
		deps.Records = &mock.RecordService{
			FindRecordsFn: func(_ context.Context, filter lawtree.RecordFilter) ([]*lawtree.Record, error) {
				got = filter
				return []*lawtree.Record{
					{ID: "rec-1", Title: "Luật Đất đai", Variant: "hierarchical", NodeCount: 42},
					{ID: "rec-2", Title: "Kế hoạch 5", Variant: "plan", NodeCount: 3},
				}, nil
			},
		}
		cmd := &main.ListCmd{Type: "Luật", Limit: 20}

		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "rec-1  hierarchical    42 nodes  Luật Đất đai")
		assert.Contains(t, output, "rec-2  plan             3 nodes  Kế hoạch 5")
		require.NotNil(t, got.DocumentType)
		assert.Equal(t, "Luật", *got.DocumentType)
		assert.Nil(t, got.Variant)
		assert.Equal(t, 20, got.Limit)
	})

	t.Run("shows helpful message when no records exist", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		deps.Records = &mock.RecordService{
			FindRecordsFn: func(context.Context, lawtree.RecordFilter) ([]*lawtree.Record, error) {
				return nil, nil
			},
		}

		require.NoError(t, (&main.ListCmd{}).Run(deps))

		assert.Contains(t, stdout.String(), "No records found")
	})

	t.Run("returns storage errors", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps()
		deps.Records = &mock.RecordService{
			FindRecordsFn: func(context.Context, lawtree.RecordFilter) ([]*lawtree.Record, error) {
				return nil, errors.New("disk I/O error")
			},
		}

		err := (&main.ListCmd{}).Run(deps)

		assert.Error(t, err)
		assert.Contains(t, stderr.String(), "Internal error.")
	})
}

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	record := func(t *testing.T) *lawtree.Record {
		t.Helper()
		r, err := lawtree.Build("Luật Đất đai", lawtree.Hierarchical, []lawtree.Fragment{
			{Text: "Chương I", Bold: true},
			{Text: "Điều 1. Phạm vi"},
		})
		require.NoError(t, err)
		rec := lawtree.NewRecord(&lawtree.Input{ID: "src-1", Title: "Luật Đất đai"}, r)
		rec.ID = "rec-1"
		rec.ParsedAt = time.Date(2025, 3, 1, 8, 30, 0, 0, time.UTC)
		return rec
	}

	t.Run("prints a summary with record details", func(t *testing.T) {
		t.Parallel()

		rec := record(t)
		deps, stdout, _ := newDeps()
		deps.Records = &mock.RecordService{
			FindRecordByIDFn: func(_ context.Context, id string) (*lawtree.Record, error) {
				assert.Equal(t, "rec-1", id)
				return rec, nil
			},
		}

		require.NoError(t, (&main.ShowCmd{ID: "rec-1", Format: "summary"}).Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "id: rec-1\nsource: src-1\ntype: Luật (hierarchical)\nparsed: 2025-03-01 08:30:00\n")
		assert.Contains(t, output, "chapter: 1")
		assert.Contains(t, output, "article: 1")
	})

	t.Run("prints the stored result as JSON", func(t *testing.T) {
		t.Parallel()

		rec := record(t)
		deps, stdout, _ := newDeps()
		deps.Records = &mock.RecordService{
			FindRecordByIDFn: func(context.Context, string) (*lawtree.Record, error) {
				return rec, nil
			},
		}

		require.NoError(t, (&main.ShowCmd{ID: "rec-1", Format: "json"}).Run(deps))

		assert.Contains(t, stdout.String(), `"type": "chapter"`)
		assert.NotContains(t, stdout.String(), "source: src-1")
	})

	t.Run("reports missing records", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps()
		deps.Records = &mock.RecordService{
			FindRecordByIDFn: func(context.Context, string) (*lawtree.Record, error) {
				return nil, lawtree.Errorf(lawtree.ENOTFOUND, "record not found")
			},
		}

		err := (&main.ShowCmd{ID: "missing", Format: "json"}).Run(deps)

		assert.Equal(t, lawtree.ENOTFOUND, lawtree.ErrorCode(err))
		assert.Contains(t, stderr.String(), "record not found")
	})
}

func TestDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("requires force", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps()
		deps.Records = &mock.RecordService{}

		err := (&main.DeleteCmd{ID: "rec-1"}).Run(deps)

		assert.Equal(t, lawtree.EINVALID, lawtree.ErrorCode(err))
		assert.Contains(t, stderr.String(), "--force")
	})

	t.Run("deletes the record", func(t *testing.T) {
		t.Parallel()

		var deleted string
		deps, stdout, _ := newDeps()
		deps.Records = &mock.RecordService{
			DeleteRecordFn: func(_ context.Context, id string) error {
				deleted = id
				return nil
			},
		}

		require.NoError(t, (&main.DeleteCmd{ID: "rec-1", Force: true}).Run(deps))

		assert.Equal(t, "rec-1", deleted)
		assert.Contains(t, stdout.String(), "Deleted record rec-1")
	})

	t.Run("points to list for missing records", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps()
		deps.Records = &mock.RecordService{
			DeleteRecordFn: func(context.Context, string) error {
				return lawtree.Errorf(lawtree.ENOTFOUND, "record not found")
			},
		}

		err := (&main.DeleteCmd{ID: "missing", Force: true}).Run(deps)

		assert.Equal(t, lawtree.ENOTFOUND, lawtree.ErrorCode(err))
		assert.Contains(t, stderr.String(), "lawtree list")
	})
}
