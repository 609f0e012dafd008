package mock

import (
	"context"

	"github.com/fwojciec/lawtree"
)

var _ lawtree.RecordService = (*RecordService)(nil)

// RecordService is a mock implementation of lawtree.RecordService.
type RecordService struct {
	CreateRecordFn   func(ctx context.Context, rec *lawtree.Record) error
	FindRecordByIDFn func(ctx context.Context, id string) (*lawtree.Record, error)
	FindRecordsFn    func(ctx context.Context, filter lawtree.RecordFilter) ([]*lawtree.Record, error)
	DeleteRecordFn   func(ctx context.Context, id string) error
}

func (s *RecordService) CreateRecord(ctx context.Context, rec *lawtree.Record) error {
	return s.CreateRecordFn(ctx, rec)
}

func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*lawtree.Record, error) {
	return s.FindRecordByIDFn(ctx, id)
}

func (s *RecordService) FindRecords(ctx context.Context, filter lawtree.RecordFilter) ([]*lawtree.Record, error) {
	return s.FindRecordsFn(ctx, filter)
}

func (s *RecordService) DeleteRecord(ctx context.Context, id string) error {
	return s.DeleteRecordFn(ctx, id)
}
