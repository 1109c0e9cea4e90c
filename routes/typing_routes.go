package routes

import (
	"ripple_server/controllers"
	"ripple_server/services"

	"github.com/gorilla/mux"
)

// RegisterTypingRoutes sets up routes for typing presence under /api/typing
func RegisterTypingRoutes(r *mux.Router, typingService *services.TypingService, broadcaster controllers.Broadcaster) {
	controller := controllers.NewTypingController(typingService, broadcaster)

	typingRouter := r.PathPrefix("/api/typing").Subrouter()
	typingRouter.HandleFunc("", controller.HandleSetTyping).Methods("POST")
	typingRouter.HandleFunc("", controller.HandleGetTypingUsers).Methods("GET")
}
