package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/lawtree"
	"github.com/fwojciec/lawtree/mock"
	lawslog "github.com/fwojciec/lawtree/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingParser_Parse(t *testing.T) {
	t.Parallel()

	t.Run("logs variant node count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		want, err := lawtree.Build("Quyết định 12", lawtree.Decision, []lawtree.Fragment{{Text: "Điều 1. Ban hành"}})
		require.NoError(t, err)
		inner := &mock.Parser{
			ParseFn: func(_, _, _ string) (*lawtree.ParseResult, error) {
				return want, nil
			},
		}

		got, err := lawslog.NewLoggingParser(inner, logger).Parse("<p>Điều 1</p>", "Quyết định 12", "Quyết định")

		require.NoError(t, err)
		assert.Equal(t, want, got)
		output := buf.String()
		assert.Contains(t, output, "msg=parse")
		assert.Contains(t, output, "variant=decision")
		assert.Contains(t, output, "nodes=1")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Parser{
			ParseFn: func(_, _, _ string) (*lawtree.ParseResult, error) {
				return nil, lawtree.Errorf(lawtree.EINVALID, "document title required")
			},
		}

		_, err := lawslog.NewLoggingParser(inner, logger).Parse("", "", "")

		assert.Equal(t, lawtree.EINVALID, lawtree.ErrorCode(err))
		assert.Contains(t, buf.String(), "nodes=0")
		assert.Contains(t, buf.String(), "document title required")
	})
}

func TestLoggingRecordService(t *testing.T) {
	t.Parallel()

	t.Run("logs created record", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.RecordService{
			CreateRecordFn: func(_ context.Context, rec *lawtree.Record) error {
				rec.ID = "rec-1"
				return nil
			},
		}

		err := lawslog.NewLoggingRecordService(inner, logger).CreateRecord(context.Background(), &lawtree.Record{SourceID: "a", NodeCount: 4})

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "id=rec-1")
		assert.Contains(t, buf.String(), "nodes=4")
	})

	t.Run("logs lookups at debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.RecordService{
			FindRecordsFn: func(context.Context, lawtree.RecordFilter) ([]*lawtree.Record, error) {
				return []*lawtree.Record{{}, {}}, nil
			},
			FindRecordByIDFn: func(context.Context, string) (*lawtree.Record, error) {
				return nil, lawtree.Errorf(lawtree.ENOTFOUND, "record not found")
			},
		}
		svc := lawslog.NewLoggingRecordService(inner, logger)

		recs, err := svc.FindRecords(context.Background(), lawtree.RecordFilter{})
		require.NoError(t, err)
		assert.Len(t, recs, 2)

		_, err = svc.FindRecordByID(context.Background(), "missing")
		assert.Equal(t, lawtree.ENOTFOUND, lawtree.ErrorCode(err))

		output := buf.String()
		assert.Contains(t, output, "count=2")
		assert.Contains(t, output, "record not found")
	})

	t.Run("omits lookups at info level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.RecordService{
			FindRecordsFn: func(context.Context, lawtree.RecordFilter) ([]*lawtree.Record, error) {
				return nil, nil
			},
		}

		_, err := lawslog.NewLoggingRecordService(inner, logger).FindRecords(context.Background(), lawtree.RecordFilter{})

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})

	t.Run("logs deletions", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.RecordService{
			DeleteRecordFn: func(context.Context, string) error {
				return errors.New("locked")
			},
		}

		err := lawslog.NewLoggingRecordService(inner, logger).DeleteRecord(context.Background(), "rec-1")

		assert.EqualError(t, err, "locked")
		assert.Contains(t, buf.String(), "delete record")
		assert.Contains(t, buf.String(), "err=locked")
	})
}
