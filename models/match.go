package models

import "time"

// Match records the like state between an unordered pair of users.
// Users holds exactly two distinct user IDs. Likes maps a user ID to
// whether that user has liked the other; a missing key means "has not
// liked", which is distinct from an explicit false even though the
// code never writes false.
type Match struct {
	ID        string          `json:"id"`
	Users     []string        `json:"users"`
	Likes     map[string]bool `json:"likes"`
	CreatedAt time.Time       `json:"createdAt"`
}

// HasParticipant reports whether userID is one of the pair.
func (m Match) HasParticipant(userID string) bool {
	for _, id := range m.Users {
		if id == userID {
			return true
		}
	}
	return false
}

// IsPair reports whether the match joins the unordered pair {a, b}.
func (m Match) IsPair(a, b string) bool {
	return m.HasParticipant(a) && m.HasParticipant(b)
}

// Mutual reports whether both participants have liked each other.
func (m Match) Mutual() bool {
	if len(m.Users) != 2 {
		return false
	}
	return m.Likes[m.Users[0]] && m.Likes[m.Users[1]]
}
