package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"ripple_server/services"
)

// ChatController struct
type ChatController struct {
	MessageService *services.MessageService
	Broadcaster    Broadcaster
}

// NewChatController initializes the chat controller
func NewChatController(service *services.MessageService, broadcaster Broadcaster) *ChatController {
	return &ChatController{MessageService: service, Broadcaster: broadcaster}
}

// HandleSendMessage - appends a message to a conversation
func (c *ChatController) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	var request struct {
		ConversationID string `json:"conversationId"`
		SenderID       string `json:"senderId"`
		Content        string `json:"content"`
		ImageKey       string `json:"imageKey"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if request.ConversationID == "" || request.SenderID == "" {
		http.Error(w, `{"error": "Missing required fields: conversationId, senderId"}`, http.StatusBadRequest)
		return
	}

	err := c.MessageService.SendMessage(context.TODO(), request.ConversationID, request.SenderID, request.Content, request.ImageKey)
	if err != nil {
		log.Printf("❌ Failed to send message: %v", err)
		http.Error(w, `{"error": "Failed to send message"}`, http.StatusBadRequest)
		return
	}

	if c.Broadcaster != nil {
		c.Broadcaster.BroadcastTo(request.ConversationID, "newMessage", map[string]string{
			"conversationId": request.ConversationID,
			"senderId":       request.SenderID,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "success"})
}

// HandleGetMessages - fetches a conversation's messages in ascending order
func (c *ChatController) HandleGetMessages(w http.ResponseWriter, r *http.Request) {
	conversationID := r.URL.Query().Get("conversationId")
	if conversationID == "" {
		http.Error(w, `{"error": "conversationId is required"}`, http.StatusBadRequest)
		return
	}

	// limit is optional; 0 fetches the whole log
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 0 {
		limit = 0
	}

	messages, err := c.MessageService.GetMessages(context.TODO(), conversationID, limit)
	if err != nil {
		log.Printf("❌ Error fetching messages: %v", err)
		http.Error(w, `{"error": "Failed to fetch messages"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(messages)
}

// HandleGetLastMessages - batch roster previews, one entry per conversation
// that has at least one message
func (c *ChatController) HandleGetLastMessages(w http.ResponseWriter, r *http.Request) {
	var request struct {
		ConversationIDs []string `json:"conversationIds"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	previews, err := c.MessageService.GetLastMessages(context.TODO(), request.ConversationIDs)
	if err != nil {
		log.Printf("❌ Error fetching last messages: %v", err)
		http.Error(w, `{"error": "Failed to fetch last messages"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(previews)
}

// HandleDeleteMessage - sender-only soft delete
func (c *ChatController) HandleDeleteMessage(w http.ResponseWriter, r *http.Request) {
	var request struct {
		MessageID      string `json:"messageId"`
		RequesterID    string `json:"requesterId"`
		ConversationID string `json:"conversationId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if request.MessageID == "" || request.RequesterID == "" {
		http.Error(w, `{"error": "Missing required fields: messageId, requesterId"}`, http.StatusBadRequest)
		return
	}

	err := c.MessageService.DeleteMessage(context.TODO(), request.MessageID, request.RequesterID)
	if errors.Is(err, services.ErrNotFound) {
		http.Error(w, `{"error": "Message not found"}`, http.StatusNotFound)
		return
	}
	if errors.Is(err, services.ErrUnauthorized) {
		http.Error(w, `{"error": "Only the sender can delete a message"}`, http.StatusForbidden)
		return
	}
	if err != nil {
		log.Printf("❌ Failed to delete message: %v", err)
		http.Error(w, `{"error": "Failed to delete message"}`, http.StatusInternalServerError)
		return
	}

	if c.Broadcaster != nil && request.ConversationID != "" {
		c.Broadcaster.BroadcastTo(request.ConversationID, "messageDeleted", map[string]string{
			"messageId": request.MessageID,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "success"})
}
