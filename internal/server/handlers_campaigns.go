package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jordan/creator-marketplace/internal/db"
	"github.com/jordan/creator-marketplace/internal/profile"
	"github.com/jordan/creator-marketplace/internal/types"
)

// ListCampaignsResponse represents the response for listing campaigns
type ListCampaignsResponse struct {
	Campaigns []types.Campaign `json:"campaigns"`
	Count     int              `json:"count"`
	Limit     int              `json:"limit"`
	Offset    int              `json:"offset"`
}

// handleListCampaigns lists campaigns with optional filters and pagination
func (s *Server) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	limit := parseQueryInt(r, "limit", 50, 100)
	offset := parseQueryInt(r, "offset", 0, 0)

	opts := db.ListCampaignsOptions{
		Limit:  limit,
		Offset: offset,
	}
	if status := r.URL.Query().Get("status"); status != "" {
		opts.Status = &status
	}
	if locale := r.URL.Query().Get("locale"); locale != "" {
		opts.Locale = &locale
	}
	if brandIDStr := r.URL.Query().Get("brand_id"); brandIDStr != "" {
		brandID, err := uuid.Parse(brandIDStr)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid brand_id")
			return
		}
		opts.BrandID = &brandID
	}

	campaigns, total, err := s.db.ListCampaigns(ctx, opts)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ListCampaignsResponse{
		Campaigns: campaigns,
		Count:     total,
		Limit:     limit,
		Offset:    offset,
	})
}

// handleGetCampaign retrieves a campaign by its ID
func (s *Server) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	campaignID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid campaign ID")
		return
	}

	campaign, err := s.db.GetCampaignByID(r.Context(), campaignID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if campaign == nil {
		notFound := &ErrCampaignNotFound{CampaignID: campaignID}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, campaign)
}

// handleCreateCampaign accepts the campaign creation wizard's final submit
func (s *Server) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req types.CreateCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	id, err := s.db.CreateCampaign(r.Context(), &req)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": id.String()})
}

// handleMatchedCampaigns evaluates the active catalog against a creator's
// Brand-Fit profile. With no profile data, every campaign passes through
// unscored and has_profile_data signals the UI to prompt survey completion
// instead of ranking.
func (s *Server) handleMatchedCampaigns(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	creatorID, err := uuid.Parse(r.URL.Query().Get("creator_id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid creator_id")
		return
	}

	status := types.CampaignStatusActive
	campaigns, _, err := s.db.ListCampaigns(ctx, db.ListCampaignsOptions{
		Status: &status,
		Limit:  500,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	p, err := s.loadProfile(ctx, creatorID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load profile: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, s.engine.MatchCampaigns(p, campaigns))
}

// loadProfile resolves a creator's current Brand-Fit profile, preferring a
// staged-but-unflushed edit over the persisted blob so the creator's own
// reads reflect their latest input during the debounce window.
func (s *Server) loadProfile(ctx context.Context, creatorID uuid.UUID) (*types.BrandFitProfile, error) {
	if pending, ok := s.writer.Pending(creatorID); ok {
		return pending, nil
	}

	raw, err := s.db.GetBrandFitRaw(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	return profile.Decode(raw)
}
