package controllers

import (
	"net/http"

	"sennight_server/middleware"
	"sennight_server/services"
)

// DiscoveryController serves candidate profile listings.
type DiscoveryController struct {
	DiscoveryService *services.DiscoveryService
}

// NewDiscoveryController creates a new instance of DiscoveryController.
func NewDiscoveryController(discoveryService *services.DiscoveryService) *DiscoveryController {
	return &DiscoveryController{DiscoveryService: discoveryService}
}

// GetProfiles returns candidates matching the caller's gender
// preference.
func (c *DiscoveryController) GetProfiles(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	profiles, err := c.DiscoveryService.FindCandidates(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"profiles": profiles})
}
