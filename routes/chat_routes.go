package routes

import (
	"sennight_server/controllers"
	"sennight_server/services"

	"github.com/gorilla/mux"
)

// RegisterChatRoutes sets up message routes under /messages.
func RegisterChatRoutes(r *mux.Router, chatService *services.ChatService, auth mux.MiddlewareFunc) {
	controller := controllers.NewChatController(chatService)

	chatRouter := r.PathPrefix("/messages").Subrouter()
	chatRouter.Use(auth)
	chatRouter.HandleFunc("/{matchId}", controller.PostMessage).Methods("POST")
	chatRouter.HandleFunc("/{matchId}", controller.ListMessages).Methods("GET")
}
