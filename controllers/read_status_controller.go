package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"ripple_server/services"
)

// ReadStatusController struct
type ReadStatusController struct {
	ReadStatusService *services.ReadStatusService
}

// NewReadStatusController initializes the read-status controller
func NewReadStatusController(service *services.ReadStatusService) *ReadStatusController {
	return &ReadStatusController{ReadStatusService: service}
}

// HandleMarkAsRead - moves the caller's read cursor to now
func (c *ReadStatusController) HandleMarkAsRead(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID         string `json:"userId"`
		ConversationID string `json:"conversationId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if request.UserID == "" || request.ConversationID == "" {
		http.Error(w, `{"error": "Missing required fields: userId, conversationId"}`, http.StatusBadRequest)
		return
	}

	if err := c.ReadStatusService.MarkAsRead(context.TODO(), request.UserID, request.ConversationID); err != nil {
		log.Printf("Failed to mark as read: %v", err)
		http.Error(w, `{"error": "Failed to mark as read"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "success"})
}

// HandleGetUnreadCount - unread count for one conversation
func (c *ReadStatusController) HandleGetUnreadCount(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	conversationID := r.URL.Query().Get("conversationId")
	if userID == "" || conversationID == "" {
		http.Error(w, `{"error": "userId and conversationId are required"}`, http.StatusBadRequest)
		return
	}

	count, err := c.ReadStatusService.GetUnreadCount(context.TODO(), userID, conversationID)
	if err != nil {
		log.Printf("Failed to count unread messages: %v", err)
		http.Error(w, `{"error": "Failed to count unread messages"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int{"count": count})
}

// HandleGetAllUnreadCounts - unread counts for every conversation the user
// belongs to
func (c *ReadStatusController) HandleGetAllUnreadCounts(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, `{"error": "userId is required"}`, http.StatusBadRequest)
		return
	}

	counts, err := c.ReadStatusService.GetAllUnreadCounts(context.TODO(), userID)
	if err != nil {
		log.Printf("Failed to count unread messages: %v", err)
		http.Error(w, `{"error": "Failed to count unread messages"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(counts)
}
