// Package server provides the HTTP REST API for the creator marketplace.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/jordan/creator-marketplace/internal/config"
	"github.com/jordan/creator-marketplace/internal/db"
	"github.com/jordan/creator-marketplace/internal/matching"
	"github.com/jordan/creator-marketplace/internal/messaging"
	"github.com/jordan/creator-marketplace/internal/profile"
	"github.com/jordan/creator-marketplace/internal/server/ratelimit"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	db          *db.DB
	engine      *matching.Engine
	writer      *profile.DebouncedWriter
	messages    *messaging.Log
	rateLimiter *ratelimit.Limiter
	port        int
}

// New creates a new server instance
func New(cfg config.Config) (*Server, error) {
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	engineCfg := matching.DefaultConfig()
	if len(cfg.CategorySynonyms) > 0 {
		engineCfg.Synonyms = matching.SynonymTable(cfg.CategorySynonyms)
	}

	s := &Server{
		db:       database,
		engine:   matching.NewEngine(engineCfg),
		writer:   profile.NewDebouncedWriter(database, time.Duration(cfg.DebounceMS)*time.Millisecond),
		messages: messaging.NewLog(),
		port:     cfg.Port,
	}
	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	mux := http.NewServeMux()

	// Campaign catalog and matching
	mux.HandleFunc("GET /campaigns", s.handleListCampaigns)
	mux.HandleFunc("GET /campaigns/matched", s.handleMatchedCampaigns)
	mux.HandleFunc("GET /campaigns/{id}", s.handleGetCampaign)
	mux.HandleFunc("POST /campaigns", s.handleCreateCampaign)

	// Brand-Fit profile
	mux.HandleFunc("GET /creators/{id}/brand-fit", s.handleGetBrandFit)
	mux.HandleFunc("PUT /creators/{id}/brand-fit", s.handlePutBrandFit)
	mux.HandleFunc("GET /creators/{id}/brand-fit/completion", s.handleBrandFitCompletion)

	// Admin intelligence
	mux.HandleFunc("GET /admin/brands/summary", s.handleBrandSummaries)
	mux.HandleFunc("GET /admin/brands/{id}/intelligence", s.handleBrandIntelligence)
	mux.HandleFunc("GET /admin/integrity", s.handleIntegrity)

	// Notifications
	mux.HandleFunc("GET /notifications", s.handleListNotifications)
	mux.HandleFunc("GET /notifications/stream", s.handleNotificationStream)
	mux.HandleFunc("POST /notifications/{id}/read", s.handleMarkNotificationRead)

	// Conversations
	mux.HandleFunc("GET /conversations/{id}/messages", s.handleListMessages)
	mux.HandleFunc("POST /conversations/{id}/messages", s.handlePostMessage)

	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withMiddleware(mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return s, nil
}

// Run starts the server and blocks until shutdown
func (s *Server) Run() error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-sigCh:
		log.Printf("received %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.Shutdown(ctx)
}

// Shutdown flushes pending profile writes and stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.writer.FlushAll(ctx); err != nil {
		log.Printf("failed to flush pending brand-fit writes: %v", err)
	}
	s.rateLimiter.Stop()
	err := s.httpServer.Shutdown(ctx)
	s.db.Close()
	if err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

// withMiddleware wraps the mux with rate limiting and request logging
func (s *Server) withMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := clientAddr(r)
		if !s.rateLimiter.Allow(clientID, r.URL.Path, r.Method) {
			s.errorResponse(w, http.StatusTooManyRequests, "Rate limit exceeded")
			return
		}

		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

// clientAddr extracts the client identity used for rate limiting
func clientAddr(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return fwd
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// jsonResponse writes a JSON response with the given status code
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// errorResponse writes a JSON error response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// parseQueryInt parses an integer query parameter with a default and an
// optional maximum (0 = no maximum)
func parseQueryInt(r *http.Request, name string, def, max int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return def
	}
	if max > 0 && v > max {
		return max
	}
	return v
}

// handleHealth reports service liveness
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.db.Ping(r.Context()); err != nil {
		s.jsonResponse(w, http.StatusServiceUnavailable, map[string]string{
			"status": "degraded",
			"error":  "database unreachable",
		})
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
