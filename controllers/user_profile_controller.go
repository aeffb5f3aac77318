package controllers

import (
	"encoding/json"
	"net/http"

	"sennight_server/middleware"
	"sennight_server/services"
)

// UserProfileController handles requests for the caller's own
// profile.
type UserProfileController struct {
	UserProfileService *services.UserProfileService
}

// NewUserProfileController creates a new instance of UserProfileController.
func NewUserProfileController(userProfileService *services.UserProfileService) *UserProfileController {
	return &UserProfileController{UserProfileService: userProfileService}
}

// GetMe returns the authenticated user's public profile.
func (c *UserProfileController) GetMe(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	user, err := c.UserProfileService.GetProfile(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"user": user.Public()})
}

// UpdateMe applies allow-listed profile fields to the authenticated
// user's record.
func (c *UserProfileController) UpdateMe(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	var fields map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeServiceError(w, services.ErrMissingFields)
		return
	}

	user, err := c.UserProfileService.UpdateProfile(r.Context(), userID, fields)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"user": user.Public()})
}
