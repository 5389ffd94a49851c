package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jordan/creator-marketplace/internal/messaging"
	"github.com/jordan/creator-marketplace/internal/types"
)

// ListMessagesResponse represents a conversation history response
type ListMessagesResponse struct {
	Messages []messaging.Message `json:"messages"`
	Count    int                 `json:"count"`
}

// handleListMessages returns a conversation's messages in append order.
// after=N skips messages with sequence numbers at or below N.
func (s *Server) handleListMessages(w http.ResponseWriter, r *http.Request) {
	conversationID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid conversation ID")
		return
	}
	afterSeq := parseQueryInt(r, "after", 0, 0)

	messages := s.messages.Messages(conversationID, afterSeq)
	s.jsonResponse(w, http.StatusOK, ListMessagesResponse{
		Messages: messages,
		Count:    len(messages),
	})
}

// handlePostMessage appends one message to a conversation
func (s *Server) handlePostMessage(w http.ResponseWriter, r *http.Request) {
	conversationID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid conversation ID")
		return
	}

	var req types.PostMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	senderID, err := uuid.Parse(req.SenderID)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid sender_id")
		return
	}

	msg := s.messages.Append(conversationID, senderID, req.Body)
	s.jsonResponse(w, http.StatusCreated, msg)
}
