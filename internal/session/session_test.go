package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmptyStore(t *testing.T) {
	sess, err := Load(NewMemoryStore())
	require.NoError(t, err)
	assert.False(t, sess.HasIdentity())
	assert.False(t, sess.HasToken())
}

func TestLoad_SeesLaterWrites(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, SaveIdentity(s, "s1"))

	before, err := Load(s)
	require.NoError(t, err)
	assert.False(t, before.HasToken())

	require.NoError(t, SaveToken(s, "t1"))

	after, err := Load(s)
	require.NoError(t, err)
	assert.Equal(t, "s1", after.Identity)
	assert.Equal(t, "t1", after.Token)
}

func TestClear(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, SaveIdentity(s, "s1"))
	require.NoError(t, SaveToken(s, "t1"))

	require.NoError(t, Clear(s))

	sess, err := Load(s)
	require.NoError(t, err)
	assert.False(t, sess.HasIdentity())
	assert.False(t, sess.HasToken())
}
