package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/lawtree"
	"github.com/fwojciec/lawtree/xxhash"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var (
	_ lawtree.RecordService = (*RecordService)(nil)
	_ lawtree.RecordWriter  = (*RecordService)(nil)
)

// RecordService implements lawtree.RecordService using SQLite.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

const recordColumns = "id, source_id, title, document_type, variant, content, content_hash, result, plain_text, node_count, parsed_at"

// CreateRecord stores a new record with its per-type node counts.
func (s *RecordService) CreateRecord(ctx context.Context, rec *lawtree.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	result, err := json.Marshal(rec.Result)
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	rec.ID = uuid.New().String()
	rec.ParsedAt = time.Now().UTC().Truncate(time.Second)
	rec.ContentHash = xxhash.Sum(rec.Content)

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO records (`+recordColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.SourceID, rec.Title, rec.DocumentType, rec.Variant, rec.Content,
		rec.ContentHash, string(result), rec.PlainText, rec.NodeCount,
		rec.ParsedAt.Format(time.RFC3339)); err != nil {
		return err
	}

	for typ, count := range rec.NodeCounts {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO record_node_counts (record_id, node_type, count) VALUES (?, ?, ?)
		`, rec.ID, string(typ), count); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindRecordByID retrieves a record by ID.
func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*lawtree.Record, error) {
	rec, err := scanRecord(s.db.QueryRowContext(ctx, `
		SELECT `+recordColumns+`
		FROM records
		WHERE id = ?
	`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, lawtree.Errorf(lawtree.ENOTFOUND, "record not found")
	}
	if err != nil {
		return nil, err
	}

	if err := s.attachNodeCounts(ctx, []*lawtree.Record{rec}); err != nil {
		return nil, err
	}
	return rec, nil
}

// FindRecords retrieves records matching the filter, newest first.
func (s *RecordService) FindRecords(ctx context.Context, filter lawtree.RecordFilter) ([]*lawtree.Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + recordColumns + " FROM records WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceID != nil {
		query.WriteString(" AND source_id = ?")
		args = append(args, *filter.SourceID)
	}
	if filter.DocumentType != nil {
		query.WriteString(" AND document_type = ?")
		args = append(args, *filter.DocumentType)
	}
	if filter.Variant != nil {
		query.WriteString(" AND variant = ?")
		args = append(args, *filter.Variant)
	}
	if filter.ContentHash != nil {
		query.WriteString(" AND content_hash = ?")
		args = append(args, *filter.ContentHash)
	}

	query.WriteString(" ORDER BY parsed_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*lawtree.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := s.attachNodeCounts(ctx, recs); err != nil {
		return nil, err
	}
	return recs, nil
}

// DeleteRecord permanently removes a record and its node counts.
func (s *RecordService) DeleteRecord(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM records WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return lawtree.Errorf(lawtree.ENOTFOUND, "record not found")
	}
	return nil
}

// attachNodeCounts loads the per-type node counts of recs.
func (s *RecordService) attachNodeCounts(ctx context.Context, recs []*lawtree.Record) error {
	for _, rec := range recs {
		rows, err := s.db.QueryContext(ctx, `
			SELECT node_type, count FROM record_node_counts WHERE record_id = ?
		`, rec.ID)
		if err != nil {
			return err
		}

		counts := make(map[lawtree.NodeType]int)
		for rows.Next() {
			var typ string
			var count int
			if err := rows.Scan(&typ, &count); err != nil {
				rows.Close()
				return err
			}
			counts[lawtree.NodeType(typ)] = count
		}
		err = rows.Err()
		rows.Close()
		if err != nil {
			return err
		}
		rec.NodeCounts = counts
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*lawtree.Record, error) {
	var rec lawtree.Record
	var result, parsedAt string

	if err := row.Scan(&rec.ID, &rec.SourceID, &rec.Title, &rec.DocumentType, &rec.Variant,
		&rec.Content, &rec.ContentHash, &result, &rec.PlainText, &rec.NodeCount, &parsedAt); err != nil {
		return nil, err
	}

	rec.Result = &lawtree.ParseResult{}
	if err := json.Unmarshal([]byte(result), rec.Result); err != nil {
		return nil, fmt.Errorf("failed to decode result: %w", err)
	}

	var err error
	if rec.ParsedAt, err = parseRFC3339(parsedAt, "parsed_at"); err != nil {
		return nil, err
	}
	return &rec, nil
}
