package models

import "time"

// Message is one chat message inside a match. Immutable after
// creation; collection order is creation order.
type Message struct {
	ID        string    `json:"id"`
	MatchID   string    `json:"matchId"`
	From      string    `json:"from"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}
