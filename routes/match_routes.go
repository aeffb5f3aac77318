package routes

import (
	"sennight_server/controllers"
	"sennight_server/services"

	"github.com/gorilla/mux"
)

// RegisterMatchRoutes sets up like and match listing routes under
// /matches.
func RegisterMatchRoutes(r *mux.Router, matchService *services.MatchService, auth mux.MiddlewareFunc) {
	controller := controllers.NewMatchController(matchService)

	matchRouter := r.PathPrefix("/matches").Subrouter()
	matchRouter.Use(auth)
	matchRouter.HandleFunc("/like/{targetId}", controller.Like).Methods("POST")
	matchRouter.HandleFunc("", controller.ListMatches).Methods("GET")
}
