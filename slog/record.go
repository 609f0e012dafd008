package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/lawtree"
)

// Ensure LoggingRecordService implements lawtree.RecordService.
var _ lawtree.RecordService = (*LoggingRecordService)(nil)

// LoggingRecordService wraps a RecordService with debug logging.
type LoggingRecordService struct {
	next   lawtree.RecordService
	logger *slog.Logger
}

// NewLoggingRecordService creates a new LoggingRecordService.
func NewLoggingRecordService(next lawtree.RecordService, logger *slog.Logger) *LoggingRecordService {
	return &LoggingRecordService{next: next, logger: logger}
}

func (s *LoggingRecordService) CreateRecord(ctx context.Context, rec *lawtree.Record) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create record",
			"id", rec.ID,
			"source", rec.SourceID,
			"nodes", rec.NodeCount,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateRecord(ctx, rec)
}

func (s *LoggingRecordService) FindRecordByID(ctx context.Context, id string) (rec *lawtree.Record, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find record",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindRecordByID(ctx, id)
}

func (s *LoggingRecordService) FindRecords(ctx context.Context, filter lawtree.RecordFilter) (recs []*lawtree.Record, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find records",
			"count", len(recs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindRecords(ctx, filter)
}

func (s *LoggingRecordService) DeleteRecord(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete record",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteRecord(ctx, id)
}
