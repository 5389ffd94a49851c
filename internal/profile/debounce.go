package profile

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jordan/creator-marketplace/internal/types"
)

// DefaultDebounceDelay is how long after the last edit a pending profile
// is flushed to storage.
const DefaultDebounceDelay = time.Second

// Saver persists a creator's Brand-Fit profile.
type Saver interface {
	SaveBrandFit(ctx context.Context, creatorID uuid.UUID, p *types.BrandFitProfile) error
}

type pendingWrite struct {
	profile types.BrandFitProfile
	timer   *time.Timer
}

// DebouncedWriter coalesces rapid sequential profile edits into a single
// write per creator. Each Write replaces the pending snapshot and restarts
// the timer; the eventual flush reflects only the latest field values.
// Readers via Pending always see a complete snapshot, never a partial
// write in progress.
type DebouncedWriter struct {
	saver Saver
	delay time.Duration

	mu      sync.Mutex
	pending map[uuid.UUID]*pendingWrite
	wg      sync.WaitGroup
}

// NewDebouncedWriter creates a writer flushing delay after the last edit.
// A non-positive delay falls back to DefaultDebounceDelay.
func NewDebouncedWriter(saver Saver, delay time.Duration) *DebouncedWriter {
	if delay <= 0 {
		delay = DefaultDebounceDelay
	}
	return &DebouncedWriter{
		saver:   saver,
		delay:   delay,
		pending: make(map[uuid.UUID]*pendingWrite),
	}
}

// Write stages the latest full profile snapshot for a creator and
// (re)starts the debounce timer. Edits arriving within the window cancel
// the previous timer, so only the final state reaches storage.
func (w *DebouncedWriter) Write(creatorID uuid.UUID, p *types.BrandFitProfile) {
	if p == nil {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.stageLocked(creatorID, *p)
}

// Update applies an edit against the freshest known profile: the staged
// snapshot when one exists, otherwise the caller-loaded base. The merge
// and the staging happen under one lock acquisition, so two overlapping
// edits to different fields both land even when both callers resolved the
// same persisted base. Returns the merged profile that was staged.
func (w *DebouncedWriter) Update(creatorID uuid.UUID, base *types.BrandFitProfile, apply func(*types.BrandFitProfile) (*types.BrandFitProfile, error)) (*types.BrandFitProfile, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if entry, ok := w.pending[creatorID]; ok {
		staged := entry.profile
		base = &staged
	}

	merged, err := apply(base)
	if err != nil {
		return nil, err
	}
	if merged == nil {
		return nil, fmt.Errorf("profile update returned no profile")
	}

	w.stageLocked(creatorID, *merged)
	out := *merged
	return &out, nil
}

// stageLocked stores a snapshot and (re)arms its debounce timer. Callers
// must hold mu.
func (w *DebouncedWriter) stageLocked(creatorID uuid.UUID, p types.BrandFitProfile) {
	if entry, ok := w.pending[creatorID]; ok {
		entry.timer.Stop()
		entry.profile = p
		entry.timer.Reset(w.delay)
		return
	}

	entry := &pendingWrite{profile: p}
	entry.timer = time.AfterFunc(w.delay, func() {
		w.flushTimer(creatorID)
	})
	w.pending[creatorID] = entry
}

// Pending returns the staged profile for a creator, if any. The returned
// value is a copy; mutating it does not affect the pending write.
func (w *DebouncedWriter) Pending(creatorID uuid.UUID) (*types.BrandFitProfile, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	entry, ok := w.pending[creatorID]
	if !ok {
		return nil, false
	}
	p := entry.profile
	return &p, true
}

// Flush persists any pending write for a creator immediately, cancelling
// its timer. It is a no-op when nothing is staged.
func (w *DebouncedWriter) Flush(ctx context.Context, creatorID uuid.UUID) error {
	w.mu.Lock()
	entry, ok := w.pending[creatorID]
	if !ok {
		w.mu.Unlock()
		return nil
	}
	entry.timer.Stop()
	delete(w.pending, creatorID)
	p := entry.profile
	w.mu.Unlock()

	return w.saver.SaveBrandFit(ctx, creatorID, &p)
}

// FlushAll persists every pending write. Used on shutdown so staged edits
// are not lost.
func (w *DebouncedWriter) FlushAll(ctx context.Context) error {
	w.mu.Lock()
	ids := make([]uuid.UUID, 0, len(w.pending))
	for id := range w.pending {
		ids = append(ids, id)
	}
	w.mu.Unlock()

	var firstErr error
	for _, id := range ids {
		if err := w.Flush(ctx, id); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	w.wg.Wait()
	return firstErr
}

// flushTimer runs when a debounce timer fires.
func (w *DebouncedWriter) flushTimer(creatorID uuid.UUID) {
	w.mu.Lock()
	entry, ok := w.pending[creatorID]
	if !ok {
		w.mu.Unlock()
		return
	}
	delete(w.pending, creatorID)
	p := entry.profile
	w.wg.Add(1)
	w.mu.Unlock()

	defer w.wg.Done()
	// Timer-driven flushes have no request context to inherit.
	if err := w.saver.SaveBrandFit(context.Background(), creatorID, &p); err != nil {
		log.Printf("failed to persist brand-fit profile for %s: %v", creatorID, err)
		w.restage(creatorID, p)
	}
}

// restage returns a failed flush to the queue so a later timer fire or an
// explicit Flush can retry it. A newer staged edit wins over the failed
// snapshot.
func (w *DebouncedWriter) restage(creatorID uuid.UUID, p types.BrandFitProfile) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.pending[creatorID]; ok {
		return
	}
	w.stageLocked(creatorID, p)
}
