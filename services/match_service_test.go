package services

import (
	"context"
	"sync"
	"testing"

	"sennight_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type matchTestEnv struct {
	profiles *UserProfileService
	matches  *MatchService
	alice    models.User
	bob      models.User
}

func newMatchTestEnv(t *testing.T) *matchTestEnv {
	t.Helper()
	store := newTestStore(t)
	profiles := &UserProfileService{Store: store}
	env := &matchTestEnv{
		profiles: profiles,
		matches:  &MatchService{Store: store},
	}
	env.alice = mustRegister(t, profiles, "alice@example.com", "pw123", "Alice", "female", models.StringList{"male"})
	env.bob = mustRegister(t, profiles, "bob@example.com", "pw456", "Bob", "male", models.StringList{"female"})
	return env
}

func (e *matchTestEnv) allMatches(t *testing.T) []models.Match {
	t.Helper()
	matches, err := loadMatches(e.matches.Store)
	require.NoError(t, err)
	return matches
}

func TestLikeUnknownUser(t *testing.T) {
	env := newMatchTestEnv(t)

	_, err := env.matches.Like(context.Background(), env.alice.ID, "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = env.matches.Like(context.Background(), "missing", env.bob.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLikeBecomesMutualOnlyAfterBothSides(t *testing.T) {
	env := newMatchTestEnv(t)
	ctx := context.Background()

	first, err := env.matches.Like(ctx, env.alice.ID, env.bob.ID)
	require.NoError(t, err)
	assert.False(t, first.Mutual)

	second, err := env.matches.Like(ctx, env.bob.ID, env.alice.ID)
	require.NoError(t, err)
	assert.True(t, second.Mutual)
	assert.Equal(t, first.MatchID, second.MatchID)

	require.Len(t, env.allMatches(t), 1)
}

func TestLikeOrderDoesNotMatter(t *testing.T) {
	env := newMatchTestEnv(t)
	ctx := context.Background()

	// Bob first this time; both orders must converge on one record.
	first, err := env.matches.Like(ctx, env.bob.ID, env.alice.ID)
	require.NoError(t, err)
	assert.False(t, first.Mutual)

	second, err := env.matches.Like(ctx, env.alice.ID, env.bob.ID)
	require.NoError(t, err)
	assert.True(t, second.Mutual)
	assert.Equal(t, first.MatchID, second.MatchID)
}

func TestLikeIsIdempotent(t *testing.T) {
	env := newMatchTestEnv(t)
	ctx := context.Background()

	first, err := env.matches.Like(ctx, env.alice.ID, env.bob.ID)
	require.NoError(t, err)
	repeat, err := env.matches.Like(ctx, env.alice.ID, env.bob.ID)
	require.NoError(t, err)

	assert.Equal(t, first.MatchID, repeat.MatchID)
	assert.Equal(t, first.Mutual, repeat.Mutual)
	require.Len(t, env.allMatches(t), 1)

	// Repeating after the match went mutual must keep it mutual.
	_, err = env.matches.Like(ctx, env.bob.ID, env.alice.ID)
	require.NoError(t, err)
	again, err := env.matches.Like(ctx, env.alice.ID, env.bob.ID)
	require.NoError(t, err)
	assert.True(t, again.Mutual)
	require.Len(t, env.allMatches(t), 1)
}

func TestConcurrentLikesCreateOneMatch(t *testing.T) {
	env := newMatchTestEnv(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := env.matches.Like(ctx, env.alice.ID, env.bob.ID)
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			_, err := env.matches.Like(ctx, env.bob.ID, env.alice.ID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	matches := env.allMatches(t)
	require.Len(t, matches, 1)
	assert.True(t, matches[0].Mutual())
}

func TestListMatchesForReturnsOnlyOwnMatches(t *testing.T) {
	env := newMatchTestEnv(t)
	ctx := context.Background()
	carol := mustRegister(t, env.profiles, "carol@example.com", "pw789", "Carol", "female", models.StringList{"male"})

	_, err := env.matches.Like(ctx, env.alice.ID, env.bob.ID)
	require.NoError(t, err)
	_, err = env.matches.Like(ctx, carol.ID, env.bob.ID)
	require.NoError(t, err)

	aliceMatches, err := env.matches.ListMatchesFor(ctx, env.alice.ID)
	require.NoError(t, err)
	require.Len(t, aliceMatches, 1)
	assert.True(t, aliceMatches[0].HasParticipant(env.bob.ID))

	bobMatches, err := env.matches.ListMatchesFor(ctx, env.bob.ID)
	require.NoError(t, err)
	assert.Len(t, bobMatches, 2)

	// A match is discoverable by either party.
	carolMatches, err := env.matches.ListMatchesFor(ctx, carol.ID)
	require.NoError(t, err)
	require.Len(t, carolMatches, 1)
}

func TestGetMatchRequiresParticipation(t *testing.T) {
	env := newMatchTestEnv(t)
	ctx := context.Background()
	carol := mustRegister(t, env.profiles, "carol@example.com", "pw789", "Carol", "female", models.StringList{"male"})

	result, err := env.matches.Like(ctx, env.alice.ID, env.bob.ID)
	require.NoError(t, err)

	_, err = env.matches.GetMatch(ctx, result.MatchID, env.alice.ID)
	require.NoError(t, err)

	_, err = env.matches.GetMatch(ctx, result.MatchID, carol.ID)
	assert.ErrorIs(t, err, ErrMatchNotFound)

	_, err = env.matches.GetMatch(ctx, "missing", env.alice.ID)
	assert.ErrorIs(t, err, ErrMatchNotFound)
}
