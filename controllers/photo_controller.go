package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"sennight_server/services"
)

// PhotoController hands out presigned URLs for profile photo uploads
// and reads.
type PhotoController struct {
	PhotoService *services.PhotoService
}

// NewPhotoController creates a new instance of PhotoController.
func NewPhotoController(photoService *services.PhotoService) *PhotoController {
	return &PhotoController{PhotoService: photoService}
}

// GenerateUploadURL returns a presigned PUT URL for a new photo.
func (c *PhotoController) GenerateUploadURL(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		FileName string `json:"fileName"`
		FileType string `json:"fileType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeServiceError(w, services.ErrMissingFields)
		return
	}
	if payload.FileName == "" || payload.FileType == "" {
		writeServiceError(w, services.ErrMissingFields)
		return
	}

	url, key, err := c.PhotoService.GenerateUploadURL(r.Context(), payload.FileName, payload.FileType)
	if err != nil {
		log.Printf("Failed to generate upload URL: %v", err)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"url": url, "key": key})
}

// GenerateReadURL returns a presigned GET URL for a stored photo key.
func (c *PhotoController) GenerateReadURL(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		writeServiceError(w, services.ErrMissingFields)
		return
	}

	url, err := c.PhotoService.GenerateReadURL(r.Context(), key)
	if err != nil {
		log.Printf("Failed to generate read URL: %v", err)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}
