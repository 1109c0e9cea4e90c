package routes

import (
	"ripple_server/controllers"
	"ripple_server/services"

	"github.com/gorilla/mux"
)

// RegisterReactionRoutes sets up routes for the reaction engine under
// /api/reactions
func RegisterReactionRoutes(r *mux.Router, reactionService *services.ReactionService, broadcaster controllers.Broadcaster) {
	controller := controllers.NewReactionController(reactionService, broadcaster)

	reactionRouter := r.PathPrefix("/api/reactions").Subrouter()
	reactionRouter.HandleFunc("/toggle", controller.HandleToggleReaction).Methods("POST")
	reactionRouter.HandleFunc("/list", controller.HandleGetReactions).Methods("POST")
}
