package routes

import (
	"sennight_server/controllers"
	"sennight_server/services"

	"github.com/gorilla/mux"
)

// RegisterPhotoRoutes sets up presigned photo URL routes under
// /api/photos.
func RegisterPhotoRoutes(r *mux.Router, photoService *services.PhotoService, auth mux.MiddlewareFunc) {
	controller := controllers.NewPhotoController(photoService)

	photoRouter := r.PathPrefix("/api/photos").Subrouter()
	photoRouter.Use(auth)
	photoRouter.HandleFunc("/upload-url", controller.GenerateUploadURL).Methods("POST")
	photoRouter.HandleFunc("/read-url", controller.GenerateReadURL).Methods("GET")
}
