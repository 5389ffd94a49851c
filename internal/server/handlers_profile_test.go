package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordan/creator-marketplace/internal/profile"
	"github.com/jordan/creator-marketplace/internal/types"
)

type noopSaver struct{}

func (noopSaver) SaveBrandFit(_ context.Context, _ uuid.UUID, _ *types.BrandFitProfile) error {
	return nil
}

func profileTestServer() *Server {
	return &Server{writer: profile.NewDebouncedWriter(noopSaver{}, time.Minute)}
}

func putBrandFit(t *testing.T, s *Server, creatorID, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPut, "/creators/"+creatorID+"/brand-fit", strings.NewReader(body))
	req.SetPathValue("id", creatorID)
	rec := httptest.NewRecorder()
	s.handlePutBrandFit(rec, req)
	return rec
}

// Per-field coalescing across requests: a second update within the debounce
// window must merge onto the staged snapshot, not replace it.
func TestHandlePutBrandFit_FieldEditsAccumulate(t *testing.T) {
	s := profileTestServer()
	creatorID := uuid.New()
	s.writer.Write(creatorID, &types.BrandFitProfile{})

	rec := putBrandFit(t, s, creatorID.String(), `{"audience_type": "gen-z"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = putBrandFit(t, s, creatorID.String(), `{"camera_comfort": "on_camera"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp BrandFitResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "gen-z", resp.Profile.AudienceType)
	assert.Equal(t, types.CameraOnCamera, resp.Profile.CameraComfort)

	staged, ok := s.writer.Pending(creatorID)
	require.True(t, ok)
	assert.Equal(t, "gen-z", staged.AudienceType)
	assert.Equal(t, types.CameraOnCamera, staged.CameraComfort)
}

func TestHandlePutBrandFit_InvalidCreatorID(t *testing.T) {
	rec := putBrandFit(t, profileTestServer(), "not-a-uuid", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlePutBrandFit_MalformedPatch(t *testing.T) {
	s := profileTestServer()
	creatorID := uuid.New()
	s.writer.Write(creatorID, &types.BrandFitProfile{AudienceType: "kept"})

	rec := putBrandFit(t, s, creatorID.String(), `{bad`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	staged, ok := s.writer.Pending(creatorID)
	require.True(t, ok)
	assert.Equal(t, "kept", staged.AudienceType)
}
