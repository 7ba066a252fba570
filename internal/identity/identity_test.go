package identity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestForUser(t *testing.T) {
	id := uuid.New()
	owner := ForUser(id)

	assert.True(t, owner.IsAuthenticated())
	assert.True(t, owner.Valid())
	assert.Equal(t, "user:"+id.String(), owner.Key())
	assert.Empty(t, owner.SessionID)
}

func TestForSession(t *testing.T) {
	owner := ForSession("abc123")

	assert.False(t, owner.IsAuthenticated())
	assert.True(t, owner.Valid())
	assert.Equal(t, "sess:abc123", owner.Key())
	assert.Equal(t, uuid.Nil, owner.UserID)
}

func TestZeroOwnerIsInvalid(t *testing.T) {
	assert.False(t, Owner{}.Valid())
}

func TestKeysDoNotCollideAcrossKinds(t *testing.T) {
	id := uuid.New()
	assert.NotEqual(t, ForUser(id).Key(), ForSession(id.String()).Key())
}
