package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jordan/creator-marketplace/internal/db"
)

// ListNotificationsResponse represents the notification list response
type ListNotificationsResponse struct {
	Notifications []db.Notification `json:"notifications"`
	Count         int               `json:"count"`
}

// handleListNotifications lists a user's notifications, newest first
func (s *Server) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.URL.Query().Get("user_id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid user_id")
		return
	}
	limit := parseQueryInt(r, "limit", 50, 200)
	unreadOnly := r.URL.Query().Get("unread") == "1"

	notifications, err := s.db.ListNotifications(r.Context(), userID, unreadOnly, limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ListNotificationsResponse{
		Notifications: notifications,
		Count:         len(notifications),
	})
}

// handleMarkNotificationRead flags one notification as read
func (s *Server) handleMarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid notification ID")
		return
	}

	updated, err := s.db.MarkNotificationRead(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if !updated {
		s.errorResponse(w, http.StatusNotFound, "Notification not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]bool{"read": true})
}

// handleNotificationStream pushes unread notifications over SSE, polling
// the store until the client disconnects
func (s *Server) handleNotificationStream(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.URL.Query().Get("user_id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid user_id")
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	seen := make(map[uuid.UUID]bool)
	for {
		notifications, err := s.db.ListNotifications(r.Context(), userID, true, 50)
		if err != nil {
			sse.WriteError("Database error")
			return
		}
		for _, n := range notifications {
			if seen[n.ID] {
				continue
			}
			seen[n.ID] = true
			if err := sse.WriteEvent("notification", n); err != nil {
				return
			}
		}

		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
		}
	}
}
