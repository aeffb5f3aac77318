package services

import (
	"context"

	"sennight_server/models"
)

// DiscoveryService produces candidate profiles for a requester based
// on their declared gender preference.
type DiscoveryService struct {
	Store *FileStore
}

// FindCandidates returns every other user whose gender the requester
// is looking for. Already-matched users are deliberately not
// excluded; discovery is independent of match state.
func (s *DiscoveryService) FindCandidates(ctx context.Context, requesterID string) ([]models.PublicUser, error) {
	users, err := loadUsers(s.Store)
	if err != nil {
		return nil, err
	}

	me := findUserByID(users, requesterID)
	if me == nil {
		return nil, ErrProfileNotFound
	}

	candidates := []models.PublicUser{}
	for _, u := range users {
		if u.ID == me.ID {
			continue
		}
		if me.LookingFor.Contains(u.Gender) {
			candidates = append(candidates, u.Public())
		}
	}
	return candidates, nil
}
