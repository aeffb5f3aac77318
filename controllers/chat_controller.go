package controllers

import (
	"encoding/json"
	"net/http"

	"sennight_server/middleware"
	"sennight_server/services"

	"github.com/gorilla/mux"
)

// ChatController handles posting and listing messages within a match.
type ChatController struct {
	ChatService *services.ChatService
}

// NewChatController creates a new instance of ChatController.
func NewChatController(chatService *services.ChatService) *ChatController {
	return &ChatController{ChatService: chatService}
}

type postMessageRequest struct {
	Text string `json:"text"`
}

// PostMessage appends a message from the caller to the match's
// conversation.
func (c *ChatController) PostMessage(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())
	matchID := mux.Vars(r)["matchId"]

	var req postMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeServiceError(w, services.ErrMissingText)
		return
	}

	msg, err := c.ChatService.PostMessage(r.Context(), matchID, userID, req.Text)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"message": msg})
}

// ListMessages returns the match's conversation in append order.
func (c *ChatController) ListMessages(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())
	matchID := mux.Vars(r)["matchId"]

	messages, err := c.ChatService.ListMessages(r.Context(), matchID, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"messages": messages})
}
