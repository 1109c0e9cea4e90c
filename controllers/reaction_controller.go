package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"ripple_server/services"
)

// ReactionController struct
type ReactionController struct {
	ReactionService *services.ReactionService
	Broadcaster     Broadcaster
}

// NewReactionController initializes the reaction controller
func NewReactionController(service *services.ReactionService, broadcaster Broadcaster) *ReactionController {
	return &ReactionController{ReactionService: service, Broadcaster: broadcaster}
}

// HandleToggleReaction - one press of an emoji button. conversationId is
// only used to route the live update; the reaction itself keys off
// (messageId, userId).
func (c *ReactionController) HandleToggleReaction(w http.ResponseWriter, r *http.Request) {
	var request struct {
		MessageID      string `json:"messageId"`
		UserID         string `json:"userId"`
		Emoji          string `json:"emoji"`
		ConversationID string `json:"conversationId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if request.MessageID == "" || request.UserID == "" || request.Emoji == "" {
		http.Error(w, `{"error": "Missing required fields: messageId, userId, emoji"}`, http.StatusBadRequest)
		return
	}

	if err := c.ReactionService.ToggleReaction(context.TODO(), request.MessageID, request.UserID, request.Emoji); err != nil {
		log.Printf("❌ Failed to toggle reaction: %v", err)
		http.Error(w, `{"error": "Failed to toggle reaction"}`, http.StatusInternalServerError)
		return
	}

	if c.Broadcaster != nil && request.ConversationID != "" {
		c.Broadcaster.BroadcastTo(request.ConversationID, "reaction", map[string]string{
			"messageId": request.MessageID,
			"userId":    request.UserID,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "success"})
}

// HandleGetReactions - batch read for all visible messages in a conversation
func (c *ReactionController) HandleGetReactions(w http.ResponseWriter, r *http.Request) {
	var request struct {
		MessageIDs []string `json:"messageIds"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	reactions, err := c.ReactionService.GetReactionsForMessages(context.TODO(), request.MessageIDs)
	if err != nil {
		log.Printf("❌ Failed to fetch reactions: %v", err)
		http.Error(w, `{"error": "Failed to fetch reactions"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(reactions)
}
