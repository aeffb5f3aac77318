package services

import (
	"context"
	"log"
	"time"

	"sennight_server/models"

	"github.com/google/uuid"
)

// ChatService appends and lists messages scoped to a match.
type ChatService struct {
	Store *FileStore
	Match *MatchService
}

// PostMessage appends a message to the match's conversation. The
// sender must be a participant; a missing match and a non-participant
// sender fail identically.
func (s *ChatService) PostMessage(ctx context.Context, matchID, senderID, text string) (models.Message, error) {
	if text == "" {
		return models.Message{}, ErrMissingText
	}

	if _, err := s.Match.GetMatch(ctx, matchID, senderID); err != nil {
		return models.Message{}, err
	}

	msg := models.Message{
		ID:        uuid.NewString(),
		MatchID:   matchID,
		From:      senderID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}

	err := s.Store.WithLock(models.MessagesCollection, func() error {
		messages, err := loadMessages(s.Store)
		if err != nil {
			return err
		}
		messages = append(messages, msg)
		return s.Store.Replace(models.MessagesCollection, messages)
	})
	if err != nil {
		return models.Message{}, err
	}

	log.Printf("Message %s posted to match %s", msg.ID, matchID)
	return msg, nil
}

// ListMessages returns the match's messages in append order. The
// requester must be a participant.
func (s *ChatService) ListMessages(ctx context.Context, matchID, requesterID string) ([]models.Message, error) {
	if _, err := s.Match.GetMatch(ctx, matchID, requesterID); err != nil {
		return nil, err
	}

	messages, err := loadMessages(s.Store)
	if err != nil {
		return nil, err
	}

	conversation := []models.Message{}
	for _, m := range messages {
		if m.MatchID == matchID {
			conversation = append(conversation, m)
		}
	}
	return conversation, nil
}
