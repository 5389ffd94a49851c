package profile

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordan/creator-marketplace/internal/types"
)

type recordingSaver struct {
	mu    sync.Mutex
	saves []savedProfile
	err   error
}

type savedProfile struct {
	creatorID uuid.UUID
	profile   types.BrandFitProfile
}

func (r *recordingSaver) SaveBrandFit(_ context.Context, creatorID uuid.UUID, p *types.BrandFitProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.saves = append(r.saves, savedProfile{creatorID: creatorID, profile: *p})
	return nil
}

func (r *recordingSaver) saved() []savedProfile {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]savedProfile(nil), r.saves...)
}

func (r *recordingSaver) setErr(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}

func TestDebouncedWriter_CoalescesRapidEdits(t *testing.T) {
	saver := &recordingSaver{}
	w := NewDebouncedWriter(saver, 30*time.Millisecond)
	creatorID := uuid.New()

	w.Write(creatorID, &types.BrandFitProfile{AudienceType: "first"})
	w.Write(creatorID, &types.BrandFitProfile{AudienceType: "second"})
	w.Write(creatorID, &types.BrandFitProfile{AudienceType: "final"})

	time.Sleep(100 * time.Millisecond)

	saves := saver.saved()
	require.Len(t, saves, 1)
	assert.Equal(t, creatorID, saves[0].creatorID)
	assert.Equal(t, "final", saves[0].profile.AudienceType)
}

func TestDebouncedWriter_IndependentCreators(t *testing.T) {
	saver := &recordingSaver{}
	w := NewDebouncedWriter(saver, 20*time.Millisecond)
	a := uuid.New()
	b := uuid.New()

	w.Write(a, &types.BrandFitProfile{AudienceType: "a"})
	w.Write(b, &types.BrandFitProfile{AudienceType: "b"})

	time.Sleep(80 * time.Millisecond)

	assert.Len(t, saver.saved(), 2)
}

func TestDebouncedWriter_PendingReturnsCopy(t *testing.T) {
	w := NewDebouncedWriter(&recordingSaver{}, time.Minute)
	creatorID := uuid.New()

	w.Write(creatorID, &types.BrandFitProfile{AudienceType: "staged"})

	p, ok := w.Pending(creatorID)
	require.True(t, ok)
	assert.Equal(t, "staged", p.AudienceType)

	p.AudienceType = "mutated"
	again, ok := w.Pending(creatorID)
	require.True(t, ok)
	assert.Equal(t, "staged", again.AudienceType)
}

func TestDebouncedWriter_PendingEmptyAfterFlush(t *testing.T) {
	saver := &recordingSaver{}
	w := NewDebouncedWriter(saver, time.Minute)
	creatorID := uuid.New()

	w.Write(creatorID, &types.BrandFitProfile{AudienceType: "staged"})
	require.NoError(t, w.Flush(context.Background(), creatorID))

	_, ok := w.Pending(creatorID)
	assert.False(t, ok)
	require.Len(t, saver.saved(), 1)
}

func TestDebouncedWriter_FlushBeatsTimer(t *testing.T) {
	saver := &recordingSaver{}
	w := NewDebouncedWriter(saver, 50*time.Millisecond)
	creatorID := uuid.New()

	w.Write(creatorID, &types.BrandFitProfile{AudienceType: "flushed"})
	require.NoError(t, w.Flush(context.Background(), creatorID))

	// The cancelled timer must not produce a second save.
	time.Sleep(120 * time.Millisecond)
	assert.Len(t, saver.saved(), 1)
}

func TestDebouncedWriter_FlushWithNothingStaged(t *testing.T) {
	w := NewDebouncedWriter(&recordingSaver{}, time.Minute)
	assert.NoError(t, w.Flush(context.Background(), uuid.New()))
}

func TestDebouncedWriter_FlushAllDrainsEveryCreator(t *testing.T) {
	saver := &recordingSaver{}
	w := NewDebouncedWriter(saver, time.Minute)

	for i := 0; i < 3; i++ {
		w.Write(uuid.New(), &types.BrandFitProfile{AudienceType: "pending"})
	}

	require.NoError(t, w.FlushAll(context.Background()))
	assert.Len(t, saver.saved(), 3)
}

func TestDebouncedWriter_FlushAllReportsFirstError(t *testing.T) {
	saver := &recordingSaver{err: errors.New("storage down")}
	w := NewDebouncedWriter(saver, time.Minute)

	w.Write(uuid.New(), &types.BrandFitProfile{AudienceType: "pending"})
	assert.Error(t, w.FlushAll(context.Background()))
}

// Two edits that both resolved the same persisted base before either was
// staged must still coalesce per field: the second merge sees the first
// edit's staged snapshot, not the stale base.
func TestDebouncedWriter_UpdateCoalescesOverlappingFieldEdits(t *testing.T) {
	saver := &recordingSaver{}
	w := NewDebouncedWriter(saver, time.Minute)
	creatorID := uuid.New()

	// Both requests loaded the persisted profile before either staged.
	staleBase := &types.BrandFitProfile{}

	_, err := w.Update(creatorID, staleBase, func(p *types.BrandFitProfile) (*types.BrandFitProfile, error) {
		return ApplyPatch(p, []byte(`{"audience_type": "gen-z"}`))
	})
	require.NoError(t, err)

	merged, err := w.Update(creatorID, staleBase, func(p *types.BrandFitProfile) (*types.BrandFitProfile, error) {
		return ApplyPatch(p, []byte(`{"camera_comfort": "on_camera"}`))
	})
	require.NoError(t, err)

	assert.Equal(t, "gen-z", merged.AudienceType)
	assert.Equal(t, types.CameraOnCamera, merged.CameraComfort)

	require.NoError(t, w.Flush(context.Background(), creatorID))
	saves := saver.saved()
	require.Len(t, saves, 1)
	assert.Equal(t, "gen-z", saves[0].profile.AudienceType)
	assert.Equal(t, types.CameraOnCamera, saves[0].profile.CameraComfort)
}

func TestDebouncedWriter_UpdateUsesBaseWhenNothingStaged(t *testing.T) {
	w := NewDebouncedWriter(&recordingSaver{}, time.Minute)
	creatorID := uuid.New()
	base := &types.BrandFitProfile{AudienceType: "persisted"}

	merged, err := w.Update(creatorID, base, func(p *types.BrandFitProfile) (*types.BrandFitProfile, error) {
		return ApplyPatch(p, []byte(`{"camera_comfort": "voiceover"}`))
	})
	require.NoError(t, err)

	assert.Equal(t, "persisted", merged.AudienceType)
	assert.Equal(t, types.CameraVoiceover, merged.CameraComfort)
}

func TestDebouncedWriter_UpdateErrorStagesNothing(t *testing.T) {
	w := NewDebouncedWriter(&recordingSaver{}, time.Minute)
	creatorID := uuid.New()

	_, err := w.Update(creatorID, &types.BrandFitProfile{}, func(p *types.BrandFitProfile) (*types.BrandFitProfile, error) {
		return ApplyPatch(p, []byte(`not json`))
	})
	assert.Error(t, err)

	_, ok := w.Pending(creatorID)
	assert.False(t, ok)
}

// A timer flush that fails must not drop the snapshot: it stays pending so
// a later flush can retry once storage recovers.
func TestDebouncedWriter_TimerFlushFailureRetainsSnapshot(t *testing.T) {
	saver := &recordingSaver{err: errors.New("storage down")}
	w := NewDebouncedWriter(saver, 20*time.Millisecond)
	creatorID := uuid.New()

	w.Write(creatorID, &types.BrandFitProfile{AudienceType: "staged"})

	// Wait past at least one failed timer fire, then confirm the snapshot
	// is still (or again) pending.
	time.Sleep(60 * time.Millisecond)
	require.Eventually(t, func() bool {
		p, ok := w.Pending(creatorID)
		return ok && p.AudienceType == "staged"
	}, time.Second, 5*time.Millisecond, "failed flush must keep the snapshot pending")

	saver.setErr(nil)
	require.NoError(t, w.Flush(context.Background(), creatorID))
	saves := saver.saved()
	require.NotEmpty(t, saves)
	assert.Equal(t, "staged", saves[len(saves)-1].profile.AudienceType)
}

func TestDebouncedWriter_NilProfileIgnored(t *testing.T) {
	w := NewDebouncedWriter(&recordingSaver{}, time.Minute)
	creatorID := uuid.New()

	w.Write(creatorID, nil)
	_, ok := w.Pending(creatorID)
	assert.False(t, ok)
}

func TestNewDebouncedWriter_NonPositiveDelayDefaults(t *testing.T) {
	w := NewDebouncedWriter(&recordingSaver{}, 0)
	assert.Equal(t, DefaultDebounceDelay, w.delay)
}
