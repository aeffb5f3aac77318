package services

import (
	"context"
	"testing"

	"sennight_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chatTestEnv struct {
	*matchTestEnv
	chat    *ChatService
	matchID string
}

func newChatTestEnv(t *testing.T) *chatTestEnv {
	t.Helper()
	env := newMatchTestEnv(t)
	chat := &ChatService{Store: env.matches.Store, Match: env.matches}

	ctx := context.Background()
	_, err := env.matches.Like(ctx, env.alice.ID, env.bob.ID)
	require.NoError(t, err)
	result, err := env.matches.Like(ctx, env.bob.ID, env.alice.ID)
	require.NoError(t, err)
	require.True(t, result.Mutual)

	return &chatTestEnv{matchTestEnv: env, chat: chat, matchID: result.MatchID}
}

func TestPostMessageMissingText(t *testing.T) {
	env := newChatTestEnv(t)

	_, err := env.chat.PostMessage(context.Background(), env.matchID, env.alice.ID, "")
	assert.ErrorIs(t, err, ErrMissingText)
}

func TestPostMessageRequiresParticipation(t *testing.T) {
	env := newChatTestEnv(t)
	carol := mustRegister(t, env.profiles, "carol@example.com", "pw789", "Carol", "female", models.StringList{"male"})

	// The match exists, but carol is not in it. Same error as a
	// missing match so callers cannot tell which check failed.
	_, err := env.chat.PostMessage(context.Background(), env.matchID, carol.ID, "hi")
	assert.ErrorIs(t, err, ErrMatchNotFound)

	_, err = env.chat.PostMessage(context.Background(), "missing", env.alice.ID, "hi")
	assert.ErrorIs(t, err, ErrMatchNotFound)
}

func TestPostMessageReadYourWrites(t *testing.T) {
	env := newChatTestEnv(t)
	ctx := context.Background()

	msg, err := env.chat.PostMessage(ctx, env.matchID, env.alice.ID, "hi")
	require.NoError(t, err)
	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, env.matchID, msg.MatchID)
	assert.Equal(t, env.alice.ID, msg.From)

	messages, err := env.chat.ListMessages(ctx, env.matchID, env.bob.ID)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "hi", messages[0].Text)
	assert.Equal(t, env.alice.ID, messages[0].From)
}

func TestListMessagesPreservesAppendOrder(t *testing.T) {
	env := newChatTestEnv(t)
	ctx := context.Background()

	texts := []string{"first", "second", "third"}
	for _, text := range texts {
		_, err := env.chat.PostMessage(ctx, env.matchID, env.alice.ID, text)
		require.NoError(t, err)
	}

	messages, err := env.chat.ListMessages(ctx, env.matchID, env.alice.ID)
	require.NoError(t, err)
	require.Len(t, messages, len(texts))
	for i, text := range texts {
		assert.Equal(t, text, messages[i].Text)
	}
}

func TestListMessagesScopedToMatch(t *testing.T) {
	env := newChatTestEnv(t)
	ctx := context.Background()
	carol := mustRegister(t, env.profiles, "carol@example.com", "pw789", "Carol", "female", models.StringList{"male"})

	other, err := env.matches.Like(ctx, carol.ID, env.bob.ID)
	require.NoError(t, err)

	_, err = env.chat.PostMessage(ctx, env.matchID, env.alice.ID, "for bob")
	require.NoError(t, err)
	_, err = env.chat.PostMessage(ctx, other.MatchID, carol.ID, "also for bob")
	require.NoError(t, err)

	messages, err := env.chat.ListMessages(ctx, env.matchID, env.bob.ID)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "for bob", messages[0].Text)

	_, err = env.chat.ListMessages(ctx, other.MatchID, env.alice.ID)
	assert.ErrorIs(t, err, ErrMatchNotFound)
}
