package routes

import (
	"ripple_server/controllers"
	"ripple_server/services"

	"github.com/gorilla/mux"
)

// RegisterChatRoutes sets up routes for the message store under /api/chat
func RegisterChatRoutes(r *mux.Router, messageService *services.MessageService, broadcaster controllers.Broadcaster) {
	controller := controllers.NewChatController(messageService, broadcaster)

	chatRouter := r.PathPrefix("/api/chat").Subrouter()
	chatRouter.HandleFunc("/message", controller.HandleSendMessage).Methods("POST")
	chatRouter.HandleFunc("/message/delete", controller.HandleDeleteMessage).Methods("POST")
	chatRouter.HandleFunc("/messages", controller.HandleGetMessages).Methods("GET")
	chatRouter.HandleFunc("/messages/last", controller.HandleGetLastMessages).Methods("POST")
}
