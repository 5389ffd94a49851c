package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jordan/creator-marketplace/internal/db"
	"github.com/jordan/creator-marketplace/internal/intelligence"
	"github.com/jordan/creator-marketplace/internal/types"
)

// handleBrandIntelligence computes the detail-view aggregate for one brand.
// The raw inputs are independent queries, so they fan out concurrently;
// the aggregation itself is pure and runs once everything resolves.
func (s *Server) handleBrandIntelligence(w http.ResponseWriter, r *http.Request) {
	brandID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid brand ID")
		return
	}

	brand, err := s.db.GetBrandByID(r.Context(), brandID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if brand == nil {
		notFound := &ErrBrandNotFound{BrandID: brandID}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	var (
		campaigns   []types.CampaignRecord
		invitations []types.InvitationRecord
		teamSize    int
	)
	sources := make([]types.DataSource, 2)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		campaigns, err = s.db.ListCampaignRecordsByBrand(ctx, brandID)
		return err
	})
	g.Go(func() error {
		var err error
		invitations, err = s.db.ListInvitationRecordsByBrand(ctx, brandID)
		return err
	})
	g.Go(func() error {
		var err error
		teamSize, err = s.db.TeamSize(ctx, brandID)
		return err
	})
	g.Go(func() error {
		count, last, err := s.db.TableStats(ctx, "campaigns")
		sources[0] = types.DataSource{Table: "campaigns", RecordCount: count, LastUpdated: last}
		return err
	})
	g.Go(func() error {
		count, last, err := s.db.TableStats(ctx, "invitations")
		sources[1] = types.DataSource{Table: "invitations", RecordCount: count, LastUpdated: last}
		return err
	})
	if err := g.Wait(); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	now := time.Now()
	report := intelligence.BuildBrandIntelligence(intelligence.BrandInputs{
		BrandID:           brandID,
		Campaigns:         campaigns,
		Invitations:       invitations,
		TeamSize:          teamSize,
		DaysSinceCreation: int(now.Sub(brand.CreatedAt).Hours() / 24),
		DataSources:       sources,
	}, now)

	s.jsonResponse(w, http.StatusOK, report)
}

// BrandSummariesResponse represents the admin roster response
type BrandSummariesResponse struct {
	Brands []types.BrandSummary `json:"brands"`
	Count  int                  `json:"count"`
}

// handleBrandSummaries computes the roster view. Each row uses the summary
// risk formula, which intentionally differs from the detail view's.
func (s *Server) handleBrandSummaries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	brands, err := s.db.ListBrands(ctx)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	summaries := make([]types.BrandSummary, 0, len(brands))
	for _, b := range brands {
		records, err := s.db.ListCampaignRecordsByBrand(ctx, b.ID)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
			return
		}
		summaries = append(summaries, intelligence.BuildBrandSummary(b.ID, b.Name, records))
	}

	s.jsonResponse(w, http.StatusOK, BrandSummariesResponse{
		Brands: summaries,
		Count:  len(summaries),
	})
}

// handleIntegrity reports platform-wide table freshness. Empty tables are
// reported as "empty" and never degrade overall health.
func (s *Server) handleIntegrity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	names := db.IntegrityTables()
	tables := make([]types.TableHealth, len(names))

	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			count, last, err := s.db.TableStats(gctx, name)
			if err != nil {
				return err
			}
			tables[i] = types.TableHealth{Table: name, RecordCount: count, LastUpdated: last}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, intelligence.BuildIntegrityReport(tables, time.Now()))
}
