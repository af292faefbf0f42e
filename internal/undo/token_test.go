package undo

import (
	"testing"
	"time"

	"citizen_policy_platform/internal/db/models"

	"github.com/stretchr/testify/assert"
)

func TestToken_RoundTrip(t *testing.T) {
	g := NewGenerator("secret", 15*time.Minute)
	user := &models.User{ID: 7}
	policy := &models.Policy{State: models.PolicyStateClosed}

	token := g.CreateToken(user, policy)

	state, err := g.ValidateToken(user, token)
	assert.NoError(t, err)
	assert.Equal(t, models.PolicyStateClosed, state)
}

func TestToken_Expired(t *testing.T) {
	g := NewGenerator("secret", 15*time.Minute)
	user := &models.User{ID: 7}
	policy := &models.Policy{State: models.PolicyStateClosed}

	issuedAt := time.Now()
	g.now = func() time.Time { return issuedAt }
	token := g.CreateToken(user, policy)

	g.now = func() time.Time { return issuedAt.Add(16 * time.Minute) }
	_, err := g.ValidateToken(user, token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestToken_WithinTimeout(t *testing.T) {
	g := NewGenerator("secret", 15*time.Minute)
	user := &models.User{ID: 7}
	policy := &models.Policy{State: models.PolicyStateClosed}

	issuedAt := time.Now()
	g.now = func() time.Time { return issuedAt }
	token := g.CreateToken(user, policy)

	g.now = func() time.Time { return issuedAt.Add(14 * time.Minute) }
	state, err := g.ValidateToken(user, token)
	assert.NoError(t, err)
	assert.Equal(t, models.PolicyStateClosed, state)
}

func TestToken_TamperedPayload(t *testing.T) {
	g := NewGenerator("secret", 15*time.Minute)
	user := &models.User{ID: 7}
	policy := &models.Policy{State: models.PolicyStateClosed}

	token := g.CreateToken(user, policy)
	tampered := "A" + token[1:]

	_, err := g.ValidateToken(user, tampered)
	assert.ErrorIs(t, err, ErrTokenCorrupted)
}

func TestToken_BoundToUser(t *testing.T) {
	g := NewGenerator("secret", 15*time.Minute)
	policy := &models.Policy{State: models.PolicyStateClosed}

	token := g.CreateToken(&models.User{ID: 7}, policy)

	_, err := g.ValidateToken(&models.User{ID: 8}, token)
	assert.ErrorIs(t, err, ErrTokenCorrupted)
}

func TestToken_Garbage(t *testing.T) {
	g := NewGenerator("secret", 15*time.Minute)

	for _, token := range []string{"", "no separator", "!!!-abc", "YWJj"} {
		_, err := g.ValidateToken(&models.User{ID: 7}, token)
		assert.ErrorIs(t, err, ErrTokenCorrupted, "token %q", token)
	}
}
