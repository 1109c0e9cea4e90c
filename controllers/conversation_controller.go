package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"ripple_server/services"
)

// ConversationController struct
type ConversationController struct {
	ConversationService *services.ConversationService
}

// NewConversationController initializes the conversation controller
func NewConversationController(service *services.ConversationService) *ConversationController {
	return &ConversationController{ConversationService: service}
}

// HandleGetOrCreateDirect - find-or-create the unique DM for a user pair
func (c *ConversationController) HandleGetOrCreateDirect(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserA string `json:"userA"`
		UserB string `json:"userB"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if request.UserA == "" || request.UserB == "" {
		http.Error(w, `{"error": "Missing required fields: userA, userB"}`, http.StatusBadRequest)
		return
	}

	conversationID, err := c.ConversationService.GetOrCreateDirect(context.TODO(), request.UserA, request.UserB)
	if err != nil {
		log.Printf("Failed to get or create conversation: %v", err)
		http.Error(w, `{"error": "Failed to get or create conversation"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"conversationId": conversationID})
}

// HandleResolveDirect - read-only DM lookup; conversationId is null when the
// pair has never talked
func (c *ConversationController) HandleResolveDirect(w http.ResponseWriter, r *http.Request) {
	userA := r.URL.Query().Get("userA")
	userB := r.URL.Query().Get("userB")
	if userA == "" || userB == "" {
		http.Error(w, `{"error": "userA and userB are required"}`, http.StatusBadRequest)
		return
	}

	conversationID, err := c.ConversationService.ResolveDirectID(context.TODO(), userA, userB)
	if err != nil {
		log.Printf("Failed to resolve conversation: %v", err)
		http.Error(w, `{"error": "Failed to resolve conversation"}`, http.StatusInternalServerError)
		return
	}

	var response struct {
		ConversationID *string `json:"conversationId"`
	}
	if conversationID != "" {
		response.ConversationID = &conversationID
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// HandleCreateGroup - creates a group conversation
func (c *ConversationController) HandleCreateGroup(w http.ResponseWriter, r *http.Request) {
	var request struct {
		ParticipantIDs []string `json:"participantIds"`
		GroupName      string   `json:"groupName"`
		CreatedBy      string   `json:"createdBy"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if request.CreatedBy == "" {
		http.Error(w, `{"error": "createdBy is required"}`, http.StatusBadRequest)
		return
	}

	conversationID, err := c.ConversationService.CreateGroup(context.TODO(), request.ParticipantIDs, request.GroupName, request.CreatedBy)
	if err != nil {
		log.Printf("Failed to create group conversation: %v", err)
		http.Error(w, `{"error": "Failed to create group conversation"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"conversationId": conversationID})
}

// HandleListForUser - all conversations (DM + group) the user belongs to
func (c *ConversationController) HandleListForUser(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, `{"error": "userId is required"}`, http.StatusBadRequest)
		return
	}

	conversations, err := c.ConversationService.ListForUser(context.TODO(), userID)
	if err != nil {
		log.Printf("Failed to list conversations: %v", err)
		http.Error(w, `{"error": "Failed to list conversations"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(conversations)
}

// HandleListGroups - group conversations only
func (c *ConversationController) HandleListGroups(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, `{"error": "userId is required"}`, http.StatusBadRequest)
		return
	}

	conversations, err := c.ConversationService.ListGroupsForUser(context.TODO(), userID)
	if err != nil {
		log.Printf("Failed to list group conversations: %v", err)
		http.Error(w, `{"error": "Failed to list group conversations"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(conversations)
}
