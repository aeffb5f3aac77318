package routes

import (
	"sennight_server/controllers"
	"sennight_server/services"

	"github.com/gorilla/mux"
)

// RegisterDiscoveryRoutes sets up the candidate listing route.
func RegisterDiscoveryRoutes(r *mux.Router, discoveryService *services.DiscoveryService, auth mux.MiddlewareFunc) {
	controller := controllers.NewDiscoveryController(discoveryService)

	profileRouter := r.PathPrefix("/profiles").Subrouter()
	profileRouter.Use(auth)
	profileRouter.HandleFunc("", controller.GetProfiles).Methods("GET")
}
