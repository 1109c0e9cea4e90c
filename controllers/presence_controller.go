package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"ripple_server/services"
)

// PresenceController struct
type PresenceController struct {
	PresenceService *services.PresenceService
	Broadcaster     Broadcaster
}

// NewPresenceController initializes the presence controller
func NewPresenceController(service *services.PresenceService, broadcaster Broadcaster) *PresenceController {
	return &PresenceController{PresenceService: service, Broadcaster: broadcaster}
}

// HandleHeartbeat - records a heartbeat; clients ping roughly every 10s
func (c *PresenceController) HandleHeartbeat(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.UserID == "" {
		http.Error(w, `{"error": "userId is required"}`, http.StatusBadRequest)
		return
	}

	if err := c.PresenceService.UpdatePresence(context.TODO(), request.UserID); err != nil {
		log.Printf("Failed to update presence: %v", err)
		http.Error(w, `{"error": "Failed to update presence"}`, http.StatusInternalServerError)
		return
	}

	if c.Broadcaster != nil {
		c.Broadcaster.BroadcastTo(PresenceRoom, "presence", map[string]interface{}{
			"userId": request.UserID,
			"online": true,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "success"})
}

// HandleSetOffline - explicit offline signal on tab close/hide
func (c *PresenceController) HandleSetOffline(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.UserID == "" {
		http.Error(w, `{"error": "userId is required"}`, http.StatusBadRequest)
		return
	}

	if err := c.PresenceService.SetOffline(context.TODO(), request.UserID); err != nil {
		log.Printf("Failed to set offline: %v", err)
		http.Error(w, `{"error": "Failed to set offline"}`, http.StatusInternalServerError)
		return
	}

	if c.Broadcaster != nil {
		c.Broadcaster.BroadcastTo(PresenceRoom, "presence", map[string]interface{}{
			"userId": request.UserID,
			"online": false,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "success"})
}

// HandleGetAllPresence - all presence rows with the effective-online flag
func (c *PresenceController) HandleGetAllPresence(w http.ResponseWriter, r *http.Request) {
	statuses, err := c.PresenceService.GetAllPresence(context.TODO())
	if err != nil {
		log.Printf("Failed to list presence: %v", err)
		http.Error(w, `{"error": "Failed to list presence"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(statuses)
}
