package routes

import (
	"ripple_server/controllers"
	"ripple_server/services"

	"github.com/gorilla/mux"
)

// RegisterPresenceRoutes sets up routes for the presence tracker under
// /api/presence
func RegisterPresenceRoutes(r *mux.Router, presenceService *services.PresenceService, broadcaster controllers.Broadcaster) {
	controller := controllers.NewPresenceController(presenceService, broadcaster)

	presenceRouter := r.PathPrefix("/api/presence").Subrouter()
	presenceRouter.HandleFunc("", controller.HandleGetAllPresence).Methods("GET")
	presenceRouter.HandleFunc("/heartbeat", controller.HandleHeartbeat).Methods("POST")
	presenceRouter.HandleFunc("/offline", controller.HandleSetOffline).Methods("POST")
}
