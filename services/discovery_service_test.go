package services

import (
	"context"
	"testing"

	"sennight_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindCandidatesFiltersByLookingFor(t *testing.T) {
	store := newTestStore(t)
	profiles := &UserProfileService{Store: store}
	discovery := &DiscoveryService{Store: store}

	alice := mustRegister(t, profiles, "alice@example.com", "pw123", "Alice", "female", models.StringList{"male"})
	bob := mustRegister(t, profiles, "bob@example.com", "pw456", "Bob", "male", models.StringList{"female"})
	dan := mustRegister(t, profiles, "dan@example.com", "pw789", "Dan", "male", models.StringList{"female"})
	mustRegister(t, profiles, "carol@example.com", "pw000", "Carol", "female", models.StringList{"male"})

	candidates, err := discovery.FindCandidates(context.Background(), alice.ID)
	require.NoError(t, err)

	ids := make([]string, 0, len(candidates))
	for _, c := range candidates {
		ids = append(ids, c.ID)
	}
	assert.ElementsMatch(t, []string{bob.ID, dan.ID}, ids)
}

func TestFindCandidatesExcludesRequesterButNotMatchedUsers(t *testing.T) {
	store := newTestStore(t)
	profiles := &UserProfileService{Store: store}
	matches := &MatchService{Store: store}
	discovery := &DiscoveryService{Store: store}
	ctx := context.Background()

	alice := mustRegister(t, profiles, "alice@example.com", "pw123", "Alice", "female", models.StringList{"female"})
	carol := mustRegister(t, profiles, "carol@example.com", "pw456", "Carol", "female", models.StringList{"female"})

	// A mutual match must not hide carol from discovery.
	_, err := matches.Like(ctx, alice.ID, carol.ID)
	require.NoError(t, err)
	_, err = matches.Like(ctx, carol.ID, alice.ID)
	require.NoError(t, err)

	candidates, err := discovery.FindCandidates(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, carol.ID, candidates[0].ID)
}

func TestFindCandidatesUnknownRequester(t *testing.T) {
	store := newTestStore(t)
	discovery := &DiscoveryService{Store: store}

	_, err := discovery.FindCandidates(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}
