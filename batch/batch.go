// Package batch parses many documents concurrently.
// It coordinates deduplication, parsing, storage and entry logging.
package batch

import (
	"context"
	"sync/atomic"

	"github.com/fwojciec/lawtree"
	"github.com/fwojciec/lawtree/bloom"
	"github.com/fwojciec/lawtree/xxhash"
	"golang.org/x/sync/errgroup"
)

// Deduplication filter sizing.
const (
	dedupeMinItems          = 1000
	dedupeFalsePositiveRate = 0.0001
)

// DefaultConcurrency is the number of documents parsed at once when
// Runner.Concurrency is not set.
const DefaultConcurrency = 4

// Runner parses batches of documents.
type Runner struct {
	Parser      lawtree.Parser
	Records     lawtree.RecordWriter // optional
	Log         lawtree.EntryWriter  // optional
	Concurrency int
	// Dedupe skips documents whose content repeats an earlier input.
	Dedupe bool
}

// Result holds the totals of a batch run.
type Result struct {
	Parsed  int
	Failed  int
	Skipped int
	Nodes   int
}

// ProgressEvent reports progress during a batch run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	SourceID  string
	Title     string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// job holds the outcome of parsing a single input.
type job struct {
	position int
	input    *lawtree.Input
	skipped  bool
	result   *lawtree.ParseResult
	err      error
}

// Run parses inputs and returns the run totals and one entry per input in
// input order. Per-document failures are recorded in the entries; Run only
// returns an error when ctx is canceled.
func (r *Runner) Run(ctx context.Context, inputs []*lawtree.Input, progress ProgressFunc) (*Result, []*lawtree.Entry, error) {
	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	jobs := make([]job, len(inputs))
	var filter *bloom.Filter
	if r.Dedupe {
		filter = bloom.NewFilter(uint(max(len(inputs), dedupeMinItems)), dedupeFalsePositiveRate)
	}
	var pending []int
	for i, in := range inputs {
		jobs[i] = job{position: i, input: in}
		if filter != nil && filter.Seen(xxhash.Sum(in.Content)) {
			jobs[i].skipped = true
			continue
		}
		pending = append(pending, i)
	}

	total := len(pending)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan job, total)
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, i := range pending {
			j := jobs[i]
			g.Go(func() error {
				resultCh <- r.parse(gctx, j)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results in order
	for j := range resultCh {
		jobs[j.position] = j
		n := int(completed.Add(1))
		if progress == nil {
			continue
		}
		event := ProgressEvent{
			Type:      ProgressCompleted,
			Completed: n,
			Total:     total,
			SourceID:  j.input.ID,
			Title:     j.input.Title,
		}
		if j.err != nil {
			event.Type = ProgressFailed
			event.Error = j.err
		}
		progress(event)
	}

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	var result Result
	entries := make([]*lawtree.Entry, len(jobs))
	for i, j := range jobs {
		entries[i] = r.finish(ctx, j, &result)
		if r.Log != nil {
			if err := r.Log.WriteEntry(ctx, entries[i]); err != nil {
				return nil, nil, err
			}
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}
	return &result, entries, nil
}

// parse validates and parses a single input.
func (r *Runner) parse(ctx context.Context, j job) job {
	if err := ctx.Err(); err != nil {
		j.err = err
		return j
	}
	if err := j.input.Validate(); err != nil {
		j.err = err
		return j
	}
	j.result, j.err = r.Parser.Parse(j.input.Content, j.input.Title, j.input.DocumentType())
	return j
}

// finish stores a parsed job and converts it into an entry.
func (r *Runner) finish(ctx context.Context, j job, result *Result) *lawtree.Entry {
	in := j.input
	docType := in.DocumentType()
	entry := &lawtree.Entry{
		SourceID:     in.ID,
		Title:        in.Title,
		DocumentType: docType,
		Variant:      lawtree.VariantFor(docType).String(),
	}

	switch {
	case j.skipped:
		entry.Status = lawtree.StatusSkipped
		result.Skipped++
		return entry
	case j.err != nil:
		entry.Status = lawtree.StatusFailed
		entry.Error = lawtree.NewFailure(in.ID, j.err)
		result.Failed++
		return entry
	}

	rec := lawtree.NewRecord(in, j.result)
	if r.Records != nil {
		if err := r.Records.CreateRecord(ctx, rec); err != nil {
			entry.Status = lawtree.StatusFailed
			entry.Error = lawtree.NewFailure(in.ID, err)
			result.Failed++
			return entry
		}
	}

	entry.Status = lawtree.StatusParsed
	entry.RecordID = rec.ID
	entry.NodeCount = rec.NodeCount
	entry.NodeCounts = rec.NodeCounts
	result.Parsed++
	result.Nodes += rec.NodeCount
	return entry
}
