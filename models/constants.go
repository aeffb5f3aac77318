package models

// Collection names used by the file store. Each maps to one JSON
// document under the data directory.
const (
	UsersCollection    = "users"
	MatchesCollection  = "matches"
	MessagesCollection = "messages"
)
