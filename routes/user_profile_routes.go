package routes

import (
	"sennight_server/controllers"
	"sennight_server/services"

	"github.com/gorilla/mux"
)

// RegisterUserProfileRoutes sets up routes for the caller's own
// profile under /users.
func RegisterUserProfileRoutes(r *mux.Router, userProfileService *services.UserProfileService, auth mux.MiddlewareFunc) {
	controller := controllers.NewUserProfileController(userProfileService)

	userRouter := r.PathPrefix("/users").Subrouter()
	userRouter.Use(auth)
	userRouter.HandleFunc("/me", controller.GetMe).Methods("GET")
	userRouter.HandleFunc("/me", controller.UpdateMe).Methods("PUT")
}
