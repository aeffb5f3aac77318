package services

import (
	"context"
	"log"
	"time"

	"sennight_server/models"

	"github.com/google/uuid"
)

// MatchService runs the like state machine over the matches
// collection. A pair of users shares at most one match record no
// matter who liked first.
type MatchService struct {
	Store *FileStore
}

// LikeResult is what a like call reports back: which match record the
// pair converged on and whether it is now mutual.
type LikeResult struct {
	MatchID string `json:"matchId"`
	Mutual  bool   `json:"mutual"`
}

// Like records that liker likes target. The find-or-create and the
// write-back run under the matches lock, so concurrent likes from
// both sides converge on one record instead of racing two into the
// collection.
func (s *MatchService) Like(ctx context.Context, likerID, targetID string) (LikeResult, error) {
	users, err := loadUsers(s.Store)
	if err != nil {
		return LikeResult{}, err
	}
	if findUserByID(users, likerID) == nil || findUserByID(users, targetID) == nil {
		return LikeResult{}, ErrUserNotFound
	}

	var result LikeResult
	err = s.Store.WithLock(models.MatchesCollection, func() error {
		matches, err := loadMatches(s.Store)
		if err != nil {
			return err
		}

		idx := -1
		for i := range matches {
			if matches[i].IsPair(likerID, targetID) {
				idx = i
				break
			}
		}
		if idx < 0 {
			matches = append(matches, models.Match{
				ID:        uuid.NewString(),
				Users:     []string{likerID, targetID},
				Likes:     map[string]bool{},
				CreatedAt: time.Now().UTC(),
			})
			idx = len(matches) - 1
		}

		match := &matches[idx]
		if match.Likes == nil {
			match.Likes = map[string]bool{}
		}
		match.Likes[likerID] = true

		result = LikeResult{
			MatchID: match.ID,
			Mutual:  match.Likes[likerID] && match.Likes[targetID],
		}
		return s.Store.Replace(models.MatchesCollection, matches)
	})
	if err != nil {
		return LikeResult{}, err
	}

	if result.Mutual {
		log.Printf("Mutual match %s between %s and %s", result.MatchID, likerID, targetID)
	}
	return result, nil
}

// ListMatchesFor returns every match the user participates in.
// Read-only.
func (s *MatchService) ListMatchesFor(ctx context.Context, userID string) ([]models.Match, error) {
	matches, err := loadMatches(s.Store)
	if err != nil {
		return nil, err
	}

	mine := []models.Match{}
	for _, m := range matches {
		if m.HasParticipant(userID) {
			mine = append(mine, m)
		}
	}
	return mine, nil
}

// GetMatch looks up a match by ID and verifies that userID is one of
// its participants. Absence and non-participation report the same
// error so callers cannot probe which one failed.
func (s *MatchService) GetMatch(ctx context.Context, matchID, userID string) (models.Match, error) {
	matches, err := loadMatches(s.Store)
	if err != nil {
		return models.Match{}, err
	}
	for _, m := range matches {
		if m.ID == matchID && m.HasParticipant(userID) {
			return m, nil
		}
	}
	return models.Match{}, ErrMatchNotFound
}
