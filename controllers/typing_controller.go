package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"ripple_server/services"
)

// TypingController struct
type TypingController struct {
	TypingService *services.TypingService
	Broadcaster   Broadcaster
}

// NewTypingController initializes the typing controller
func NewTypingController(service *services.TypingService, broadcaster Broadcaster) *TypingController {
	return &TypingController{TypingService: service, Broadcaster: broadcaster}
}

// HandleSetTyping - refresh or clear the caller's typing indicator
func (c *TypingController) HandleSetTyping(w http.ResponseWriter, r *http.Request) {
	var request struct {
		ConversationID string `json:"conversationId"`
		UserID         string `json:"userId"`
		UserName       string `json:"userName"`
		IsTyping       bool   `json:"isTyping"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if request.ConversationID == "" || request.UserID == "" {
		http.Error(w, `{"error": "Missing required fields: conversationId, userId"}`, http.StatusBadRequest)
		return
	}

	err := c.TypingService.SetTyping(context.TODO(), request.ConversationID, request.UserID, request.UserName, request.IsTyping)
	if err != nil {
		log.Printf("Failed to set typing indicator: %v", err)
		http.Error(w, `{"error": "Failed to set typing indicator"}`, http.StatusInternalServerError)
		return
	}

	if c.Broadcaster != nil {
		c.Broadcaster.BroadcastTo(request.ConversationID, "typing", map[string]interface{}{
			"conversationId": request.ConversationID,
			"userId":         request.UserID,
			"userName":       request.UserName,
			"isTyping":       request.IsTyping,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "success"})
}

// HandleGetTypingUsers - active typers in a conversation, excluding the
// caller
func (c *TypingController) HandleGetTypingUsers(w http.ResponseWriter, r *http.Request) {
	conversationID := r.URL.Query().Get("conversationId")
	excluding := r.URL.Query().Get("excluding")
	if conversationID == "" {
		http.Error(w, `{"error": "conversationId is required"}`, http.StatusBadRequest)
		return
	}

	typers, err := c.TypingService.GetTypingUsers(context.TODO(), conversationID, excluding)
	if err != nil {
		log.Printf("Failed to fetch typing users: %v", err)
		http.Error(w, `{"error": "Failed to fetch typing users"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(typers)
}
