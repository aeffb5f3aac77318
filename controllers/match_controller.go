package controllers

import (
	"net/http"

	"sennight_server/middleware"
	"sennight_server/services"

	"github.com/gorilla/mux"
)

// MatchController handles likes and match listings.
type MatchController struct {
	MatchService *services.MatchService
}

// NewMatchController creates a new instance of MatchController.
func NewMatchController(matchService *services.MatchService) *MatchController {
	return &MatchController{MatchService: matchService}
}

// Like records a like from the caller towards the target user.
func (c *MatchController) Like(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())
	targetID := mux.Vars(r)["targetId"]

	result, err := c.MatchService.Like(r.Context(), userID, targetID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// ListMatches returns every match the caller participates in.
func (c *MatchController) ListMatches(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	matches, err := c.MatchService.ListMatchesFor(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"matches": matches})
}
