package routes

import (
	"ripple_server/controllers"
	"ripple_server/services"

	"github.com/gorilla/mux"
)

// RegisterConversationRoutes sets up routes for the conversation registry
// under /api/conversations
func RegisterConversationRoutes(r *mux.Router, conversationService *services.ConversationService) {
	controller := controllers.NewConversationController(conversationService)

	conversationRouter := r.PathPrefix("/api/conversations").Subrouter()
	conversationRouter.HandleFunc("", controller.HandleListForUser).Methods("GET")
	conversationRouter.HandleFunc("/groups", controller.HandleListGroups).Methods("GET")
	conversationRouter.HandleFunc("/group", controller.HandleCreateGroup).Methods("POST")
	conversationRouter.HandleFunc("/direct", controller.HandleGetOrCreateDirect).Methods("POST")
	conversationRouter.HandleFunc("/direct", controller.HandleResolveDirect).Methods("GET")
}
