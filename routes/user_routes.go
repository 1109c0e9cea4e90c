package routes

import (
	"ripple_server/controllers"
	"ripple_server/services"

	"github.com/gorilla/mux"
)

// RegisterUserRoutes sets up routes for the identity directory under /api/users
func RegisterUserRoutes(r *mux.Router, userService *services.UserService) {
	controller := controllers.NewUserController(userService)

	userRouter := r.PathPrefix("/api/users").Subrouter()
	userRouter.HandleFunc("", controller.HandleUpsertUser).Methods("POST")
	userRouter.HandleFunc("", controller.HandleGetAllUsers).Methods("GET")
	userRouter.HandleFunc("/{userId}", controller.HandleGetUser).Methods("GET")
}
