package routes

import (
	"ripple_server/controllers"
	"ripple_server/services"

	"github.com/gorilla/mux"
)

// RegisterReadRoutes sets up routes for the read-cursor / unread engine
// under /api/read
func RegisterReadRoutes(r *mux.Router, readStatusService *services.ReadStatusService) {
	controller := controllers.NewReadStatusController(readStatusService)

	readRouter := r.PathPrefix("/api/read").Subrouter()
	readRouter.HandleFunc("/mark", controller.HandleMarkAsRead).Methods("POST")
	readRouter.HandleFunc("/unread-count", controller.HandleGetUnreadCount).Methods("GET")
	readRouter.HandleFunc("/unread-counts", controller.HandleGetAllUnreadCounts).Methods("GET")
}
