package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/lawtree"
	"github.com/fwojciec/lawtree/sqlite"
	"github.com/fwojciec/lawtree/xxhash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecord(t *testing.T, id, title, content string) *lawtree.Record {
	t.Helper()
	r, err := lawtree.Build(title, lawtree.Hierarchical, []lawtree.Fragment{
		{Text: "Căn cứ Luật Ban hành văn bản;"},
		{Text: "Điều 1. Phạm vi", Anchor: "dieu_1"},
		{Text: "1. Khoản một"},
		{Text: "Nơi nhận:"},
	})
	require.NoError(t, err)
	return lawtree.NewRecord(&lawtree.Input{ID: id, Title: title, Content: content}, r)
}

func TestRecordService_CreateRecord(t *testing.T) {
	t.Parallel()

	t.Run("creates record with generated ID hash and timestamp", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRecordService(db)
		rec := newRecord(t, "src-1", "Thông tư 80/2021/TT-BTC", "<p>Điều 1</p>")

		err := svc.CreateRecord(context.Background(), rec)
		require.NoError(t, err)

		assert.NotEmpty(t, rec.ID)
		assert.Equal(t, xxhash.Sum("<p>Điều 1</p>"), rec.ContentHash)
		assert.False(t, rec.ParsedAt.IsZero())
	})

	t.Run("returns error for invalid record", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRecordService(db)

		err := svc.CreateRecord(context.Background(), &lawtree.Record{})

		require.Error(t, err)
		assert.Equal(t, lawtree.EINVALID, lawtree.ErrorCode(err))
	})
}

func TestRecordService_FindRecordByID(t *testing.T) {
	t.Parallel()

	t.Run("round-trips the parse result", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRecordService(db)
		ctx := context.Background()
		rec := newRecord(t, "src-1", "Thông tư 80/2021/TT-BTC", "<p>Điều 1</p>")
		require.NoError(t, svc.CreateRecord(ctx, rec))

		got, err := svc.FindRecordByID(ctx, rec.ID)
		require.NoError(t, err)

		assert.Equal(t, rec.SourceID, got.SourceID)
		assert.Equal(t, "Thông tư", got.DocumentType)
		assert.Equal(t, "hierarchical", got.Variant)
		assert.Equal(t, rec.Content, got.Content)
		assert.Equal(t, rec.PlainText, got.PlainText)
		assert.Equal(t, 2, got.NodeCount)
		assert.Equal(t, map[lawtree.NodeType]int{lawtree.TypeArticle: 1, lawtree.TypeClause: 1}, got.NodeCounts)
		assert.Equal(t, rec.Result.Structure, got.Result.Structure)
		assert.Equal(t, []string{"Nơi nhận:"}, got.Result.Metadata.Recipients)
		assert.Empty(t, got.Result.Metadata.Signers)
		assert.True(t, rec.ParsedAt.Equal(got.ParsedAt))
	})

	t.Run("returns ENOTFOUND for missing record", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRecordService(db)

		_, err := svc.FindRecordByID(context.Background(), "missing")

		assert.Equal(t, lawtree.ENOTFOUND, lawtree.ErrorCode(err))
	})
}

func TestRecordService_FindRecords(t *testing.T) {
	t.Parallel()

	seed := func(t *testing.T) *sqlite.RecordService {
		t.Helper()
		db := setupTestDB(t)
		svc := sqlite.NewRecordService(db)
		ctx := context.Background()
		require.NoError(t, svc.CreateRecord(ctx, newRecord(t, "a", "Luật Đất đai", "<p>a</p>")))
		require.NoError(t, svc.CreateRecord(ctx, newRecord(t, "b", "Thông tư 01", "<p>b</p>")))
		require.NoError(t, svc.CreateRecord(ctx, newRecord(t, "c", "Thông tư 02", "<p>c</p>")))
		return svc
	}

	t.Run("returns all records newest first", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)

		recs, err := svc.FindRecords(context.Background(), lawtree.RecordFilter{})

		require.NoError(t, err)
		require.Len(t, recs, 3)
		assert.Equal(t, "c", recs[0].SourceID)
		assert.Equal(t, "a", recs[2].SourceID)
	})

	t.Run("filters by document type", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)
		docType := "Thông tư"

		recs, err := svc.FindRecords(context.Background(), lawtree.RecordFilter{DocumentType: &docType})

		require.NoError(t, err)
		assert.Len(t, recs, 2)
	})

	t.Run("filters by content hash", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)
		hash := xxhash.Sum("<p>b</p>")

		recs, err := svc.FindRecords(context.Background(), lawtree.RecordFilter{ContentHash: &hash})

		require.NoError(t, err)
		require.Len(t, recs, 1)
		assert.Equal(t, "b", recs[0].SourceID)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)

		recs, err := svc.FindRecords(context.Background(), lawtree.RecordFilter{Limit: 1, Offset: 1})

		require.NoError(t, err)
		require.Len(t, recs, 1)
		assert.Equal(t, "b", recs[0].SourceID)
	})

	t.Run("applies offset without limit", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)

		recs, err := svc.FindRecords(context.Background(), lawtree.RecordFilter{Offset: 2})

		require.NoError(t, err)
		require.Len(t, recs, 1)
		assert.Equal(t, "a", recs[0].SourceID)
	})
}

func TestRecordService_DeleteRecord(t *testing.T) {
	t.Parallel()

	t.Run("deletes record and its node counts", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRecordService(db)
		ctx := context.Background()
		rec := newRecord(t, "a", "Luật Đất đai", "<p>a</p>")
		require.NoError(t, svc.CreateRecord(ctx, rec))

		require.NoError(t, svc.DeleteRecord(ctx, rec.ID))

		_, err := svc.FindRecordByID(ctx, rec.ID)
		assert.Equal(t, lawtree.ENOTFOUND, lawtree.ErrorCode(err))

		var counts int
		require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM record_node_counts").Scan(&counts))
		assert.Zero(t, counts)
	})

	t.Run("returns ENOTFOUND for missing record", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRecordService(db)

		err := svc.DeleteRecord(context.Background(), "missing")

		assert.Equal(t, lawtree.ENOTFOUND, lawtree.ErrorCode(err))
	})
}
