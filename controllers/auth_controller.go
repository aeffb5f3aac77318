package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"sennight_server/models"
	"sennight_server/services"
	"sennight_server/utils"
)

// AuthController handles registration and login.
type AuthController struct {
	UserProfileService *services.UserProfileService
	JWTSecret          string
}

// NewAuthController creates a new instance of AuthController.
func NewAuthController(userProfileService *services.UserProfileService, jwtSecret string) *AuthController {
	return &AuthController{UserProfileService: userProfileService, JWTSecret: jwtSecret}
}

type registerRequest struct {
	Email      string            `json:"email"`
	Password   string            `json:"password"`
	Name       string            `json:"name"`
	Gender     string            `json:"gender"`
	LookingFor models.StringList `json:"lookingFor"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates an account and returns a bearer token with the
// public user.
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeServiceError(w, services.ErrMissingFields)
		return
	}

	user, err := c.UserProfileService.Register(r.Context(), req.Email, req.Password, req.Name, req.Gender, req.LookingFor)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	token, err := utils.GenerateToken(user.ID, c.JWTSecret)
	if err != nil {
		log.Printf("Failed to sign token for user %s: %v", user.ID, err)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  user.Public(),
	})
}

// Login authenticates an account and returns a bearer token with the
// public user.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeServiceError(w, services.ErrMissingFields)
		return
	}

	user, err := c.UserProfileService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	token, err := utils.GenerateToken(user.ID, c.JWTSecret)
	if err != nil {
		log.Printf("Failed to sign token for user %s: %v", user.ID, err)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  user.Public(),
	})
}
