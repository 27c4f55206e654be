package feedback

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"codeberg.org/snonux/banglahindi/internal/archive"
	"codeberg.org/snonux/banglahindi/internal/nlp"
)

// DefaultCapacity is the queue size that triggers a submission. The queue
// never holds more pairs than its capacity.
const DefaultCapacity = 100

// ErrEmptyPair is returned for a correction without both sides.
var ErrEmptyPair = errors.New("feedback pair needs both the Bangla text and the corrected Hindi")

// Improver receives a full corpus.
type Improver interface {
	Improve(ctx context.Context, pairs []nlp.Pair) error
}

// Options configure a Trainer.
type Options struct {
	Capacity   int
	Store      *Store // Optional persistence of pending pairs
	ArchiveDir string // Optional directory for submitted corpora
	Logger     *zap.SugaredLogger
}

// Trainer is a bounded queue of corrections owned by a session.
type Trainer struct {
	mu       sync.Mutex
	flushMu  sync.Mutex
	queue    []nlp.Pair
	dropped  int // pairs discarded because the queue was full
	recorded int // pairs recorded since the last automatic submission attempt
	improver Improver
	options  Options
	logger   *zap.SugaredLogger
}

// NewTrainer creates a trainer. Pairs left pending in the store are loaded
// back into the queue.
func NewTrainer(improver Improver, opts Options) (*Trainer, error) {
	if opts.Capacity <= 0 {
		opts.Capacity = DefaultCapacity
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	t := &Trainer{
		improver: improver,
		options:  opts,
		logger:   logger,
	}

	if opts.Store != nil {
		pending, err := opts.Store.Pending()
		if err != nil {
			return nil, err
		}
		if len(pending) > opts.Capacity {
			if _, err := opts.Store.Trim(opts.Capacity); err != nil {
				return nil, err
			}
			t.dropped = len(pending) - opts.Capacity
			pending = pending[t.dropped:]
		}
		t.queue = pending
		t.recorded = len(pending)
		if len(pending) > 0 {
			logger.Infow("Loaded pending feedback", "pairs", len(pending), "dropped", t.dropped)
		}
	}

	return t, nil
}

// Capacity returns the queue size that triggers a submission.
func (t *Trainer) Capacity() int {
	return t.options.Capacity
}

// Len returns the number of pending pairs.
func (t *Trainer) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.queue)
}

// Pending returns a copy of the pending pairs.
func (t *Trainer) Pending() []nlp.Pair {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]nlp.Pair, len(t.queue))
	copy(out, t.queue)
	return out
}

// Dropped returns how many pairs were discarded because the queue was full.
func (t *Trainer) Dropped() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.dropped
}

// Record queues a correction. A full queue drops its oldest pair to make
// room. Every Capacity records a full queue is submitted; a failed
// submission keeps the pairs queued and is only logged.
func (t *Trainer) Record(ctx context.Context, bangla, hindi string) error {
	if bangla == "" || hindi == "" {
		return ErrEmptyPair
	}
	pair := nlp.Pair{Bangla: bangla, Hindi: hindi}
	capacity := t.options.Capacity

	if t.options.Store != nil {
		if err := t.options.Store.Append(pair); err != nil {
			return err
		}
		if _, err := t.options.Store.Trim(capacity); err != nil {
			t.logger.Warnw("Failed to trim stored feedback", "error", err)
		}
	}

	t.mu.Lock()
	if len(t.queue) >= capacity {
		drop := len(t.queue) - capacity + 1
		t.queue = append([]nlp.Pair(nil), t.queue[drop:]...)
		t.dropped += drop
		t.logger.Warnw("Feedback queue full, dropped oldest pairs",
			"dropped", drop,
			"capacity", capacity)
	}
	t.queue = append(t.queue, pair)
	t.recorded++
	full := len(t.queue) >= capacity && t.recorded >= capacity
	if full {
		t.recorded = 0
	}
	t.mu.Unlock()

	if full {
		if err := t.Flush(ctx); err != nil {
			t.logger.Warnw("Feedback submission failed, keeping pairs queued",
				"pending", t.Len(),
				"error", err)
		}
	}
	return nil
}

// Flush submits every pending pair as one corpus. On success the submitted
// pairs leave the queue; on failure they stay.
func (t *Trainer) Flush(ctx context.Context) error {
	t.flushMu.Lock()
	defer t.flushMu.Unlock()

	t.mu.Lock()
	batch := append([]nlp.Pair(nil), t.queue...)
	droppedBefore := t.dropped
	t.mu.Unlock()
	if len(batch) == 0 {
		return nil
	}
	if t.improver == nil {
		return errors.Mark(errors.New("no collaborator configured for feedback submission"), nlp.ErrUnavailable)
	}

	if err := t.improver.Improve(ctx, batch); err != nil {
		return err
	}

	t.mu.Lock()
	// Pairs recorded while the request was in flight stay queued. Pairs
	// dropped meanwhile came from the front of the batch.
	remove := len(batch) - (t.dropped - droppedBefore)
	if remove < 0 {
		remove = 0
	}
	t.queue = append([]nlp.Pair(nil), t.queue[remove:]...)
	t.mu.Unlock()

	var archivePath string
	if t.options.ArchiveDir != "" {
		path, err := archive.ArchiveCorpus(t.options.ArchiveDir, nlp.FormatCorpus(batch))
		if err != nil {
			t.logger.Warnw("Failed to archive corpus", "error", err)
		} else {
			archivePath = path
		}
	}

	if t.options.Store != nil {
		if err := t.options.Store.MarkSubmitted(len(batch), remove, archivePath); err != nil {
			return err
		}
	}

	t.logger.Infow("Feedback corpus submitted",
		"pairs", len(batch),
		"archive", archivePath)
	return nil
}
