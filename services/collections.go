package services

import "sennight_server/models"

// Typed accessors over the file store's three collections. Every
// caller re-reads the authoritative document; nothing is cached
// across requests.

func loadUsers(store *FileStore) ([]models.User, error) {
	var users []models.User
	if err := store.Load(models.UsersCollection, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func loadMatches(store *FileStore) ([]models.Match, error) {
	var matches []models.Match
	if err := store.Load(models.MatchesCollection, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

func loadMessages(store *FileStore) ([]models.Message, error) {
	var messages []models.Message
	if err := store.Load(models.MessagesCollection, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func findUserByID(users []models.User, id string) *models.User {
	for i := range users {
		if users[i].ID == id {
			return &users[i]
		}
	}
	return nil
}
