package routes

import (
	"sennight_server/controllers"
	"sennight_server/services"

	"github.com/gorilla/mux"
)

// RegisterAuthRoutes sets up the public registration and login
// routes.
func RegisterAuthRoutes(r *mux.Router, userProfileService *services.UserProfileService, jwtSecret string) {
	controller := controllers.NewAuthController(userProfileService, jwtSecret)

	authRouter := r.PathPrefix("/auth").Subrouter()
	authRouter.HandleFunc("/register", controller.Register).Methods("POST")
	authRouter.HandleFunc("/login", controller.Login).Methods("POST")
}
