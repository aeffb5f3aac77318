package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListUnmarshalsArray(t *testing.T) {
	var l StringList
	require.NoError(t, json.Unmarshal([]byte(`["male","female"]`), &l))
	assert.Equal(t, StringList{"male", "female"}, l)
}

func TestStringListUnmarshalsScalarAsSingleton(t *testing.T) {
	var l StringList
	require.NoError(t, json.Unmarshal([]byte(`"male"`), &l))
	assert.Equal(t, StringList{"male"}, l)
	assert.True(t, l.Contains("male"))
	assert.False(t, l.Contains("female"))
}

func TestMatchMutual(t *testing.T) {
	m := Match{Users: []string{"a", "b"}, Likes: map[string]bool{"a": true}}
	assert.False(t, m.Mutual())

	m.Likes["b"] = true
	assert.True(t, m.Mutual())

	assert.True(t, m.IsPair("b", "a"))
	assert.False(t, m.IsPair("a", "c"))
}

func TestUserPublicOmitsPassHash(t *testing.T) {
	u := User{ID: "u1", Email: "a@example.com", PassHash: "hash", Name: "A"}
	data, err := json.Marshal(u.Public())
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hash")
}
