package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"ripple_server/models"
	"ripple_server/services"

	"github.com/gorilla/mux"
)

// UserController struct
type UserController struct {
	UserService *services.UserService
}

// NewUserController initializes the user controller
func NewUserController(service *services.UserService) *UserController {
	return &UserController{UserService: service}
}

// HandleUpsertUser - stores or refreshes a profile on login
func (c *UserController) HandleUpsertUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if user.UserID == "" {
		http.Error(w, `{"error": "userId is required"}`, http.StatusBadRequest)
		return
	}

	if err := c.UserService.UpsertUser(context.TODO(), user); err != nil {
		log.Printf("Failed to upsert user %s: %v", user.UserID, err)
		http.Error(w, `{"error": "Failed to upsert user"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "success"})
}

// HandleGetUser - fetches a single profile by external id
func (c *UserController) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	user, err := c.UserService.GetUserByID(context.TODO(), userID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			http.Error(w, `{"error": "User not found"}`, http.StatusNotFound)
			return
		}
		log.Printf("Failed to fetch user %s: %v", userID, err)
		http.Error(w, `{"error": "Failed to fetch user"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}

// HandleGetAllUsers - fetches the roster, excluding the requester when the
// excluding query parameter is set
func (c *UserController) HandleGetAllUsers(w http.ResponseWriter, r *http.Request) {
	excluding := r.URL.Query().Get("excluding")

	users, err := c.UserService.GetAllUsers(context.TODO(), excluding)
	if err != nil {
		log.Printf("Failed to list users: %v", err)
		http.Error(w, `{"error": "Failed to list users"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(users)
}
