package server

import (
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/jordan/creator-marketplace/internal/profile"
	"github.com/jordan/creator-marketplace/internal/survey"
	"github.com/jordan/creator-marketplace/internal/types"
)

// BrandFitResponse pairs a profile with its completion percentage
type BrandFitResponse struct {
	Profile           *types.BrandFitProfile `json:"profile"`
	CompletionPercent int                    `json:"completion_percent"`
}

// handleGetBrandFit returns a creator's current Brand-Fit profile,
// including edits still inside the debounce window
func (s *Server) handleGetBrandFit(w http.ResponseWriter, r *http.Request) {
	creatorID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid creator ID")
		return
	}

	p, err := s.loadProfile(r.Context(), creatorID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load profile: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, BrandFitResponse{
		Profile:           p,
		CompletionPercent: survey.CompletionPercent(p),
	})
}

// handlePutBrandFit applies a partial Brand-Fit update. Only fields present
// in the body are touched; the patch is merged and staged inside the
// debounced writer's lock, so two in-flight updates to different fields
// both land even when they loaded the same base. Pass ?flush=1 to persist
// synchronously instead.
func (s *Server) handlePutBrandFit(w http.ResponseWriter, r *http.Request) {
	creatorID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid creator ID")
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, 64*1024))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read body")
		return
	}

	base, err := s.loadProfile(r.Context(), creatorID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load profile: "+err.Error())
		return
	}

	merged, err := s.writer.Update(creatorID, base, func(p *types.BrandFitProfile) (*types.BrandFitProfile, error) {
		return profile.ApplyPatch(p, body)
	})
	if err != nil {
		vErr := &ErrValidation{Field: "body", Message: err.Error()}
		s.errorResponse(w, HTTPStatus(vErr), vErr.Error())
		return
	}

	if r.URL.Query().Get("flush") == "1" {
		if err := s.writer.Flush(r.Context(), creatorID); err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Failed to save profile: "+err.Error())
			return
		}
	}

	s.jsonResponse(w, http.StatusOK, BrandFitResponse{
		Profile:           merged,
		CompletionPercent: survey.CompletionPercent(merged),
	})
}

// CompletionResponse reports survey completion for the profile page, the
// survey hub, and the matching banner alike
type CompletionResponse struct {
	CompletionPercent int  `json:"completion_percent"`
	AnsweredCount     int  `json:"answered_count"`
	TrackedFields     int  `json:"tracked_fields"`
	Complete          bool `json:"complete"`
}

// handleBrandFitCompletion returns just the completion score
func (s *Server) handleBrandFitCompletion(w http.ResponseWriter, r *http.Request) {
	creatorID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid creator ID")
		return
	}

	p, err := s.loadProfile(r.Context(), creatorID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load profile: "+err.Error())
		return
	}

	percent := survey.CompletionPercent(p)
	s.jsonResponse(w, http.StatusOK, CompletionResponse{
		CompletionPercent: percent,
		AnsweredCount:     survey.AnsweredCount(p),
		TrackedFields:     survey.TrackedFieldCount,
		Complete:          percent == 100,
	})
}
