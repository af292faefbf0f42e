// Package undo issues signed, time-limited tokens that let a user
// revert a destructive policy action. A token captures the policy's
// state at issue time; validating it back returns that state so the
// caller can restore it.
package undo

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"citizen_policy_platform/internal/db/models"
)

var (
	ErrTokenCorrupted = errors.New("the undo token is corrupted")
	ErrTokenExpired   = errors.New("the undo token has expired")
)

// Generator creates and validates undo tokens. Tokens are bound to the
// issuing user, so one user's token cannot revert on behalf of
// another.
type Generator struct {
	secret  string
	timeout time.Duration
	now     func() time.Time
}

func NewGenerator(secret string, timeout time.Duration) Generator {
	return Generator{
		secret:  secret,
		timeout: timeout,
		now:     time.Now,
	}
}

// CreateToken issues a token of the form base64("<unix>-<state>") plus
// a signature over the user id and the timestamp. Standard base64
// never contains a dash, so the dash between the two parts is an
// unambiguous separator.
func (g Generator) CreateToken(user *models.User, policy *models.Policy) string {
	timestamp := g.now().Unix()
	payload := base64.StdEncoding.EncodeToString(
		[]byte(fmt.Sprintf("%d-%s", timestamp, policy.State)))
	return payload + "-" + g.sign(user.ID, timestamp)
}

// ValidateToken checks the token's signature and age and returns the
// policy state recorded at issue time. Any structural or signature
// defect is reported as corruption; only a genuine token past the
// timeout is reported as expired.
func (g Generator) ValidateToken(user *models.User, token string) (models.PolicyState, error) {
	payload, signature, ok := strings.Cut(token, "-")
	if !ok {
		return "", ErrTokenCorrupted
	}

	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", ErrTokenCorrupted
	}

	timestampPart, statePart, ok := strings.Cut(string(decoded), "-")
	if !ok {
		return "", ErrTokenCorrupted
	}

	timestamp, err := strconv.ParseInt(timestampPart, 10, 64)
	if err != nil {
		return "", ErrTokenCorrupted
	}

	if !hmac.Equal([]byte(signature), []byte(g.sign(user.ID, timestamp))) {
		return "", ErrTokenCorrupted
	}

	if g.now().After(time.Unix(timestamp, 0).Add(g.timeout)) {
		return "", ErrTokenExpired
	}

	return models.PolicyState(statePart), nil
}

func (g Generator) sign(userID int, timestamp int64) string {
	mac := hmac.New(sha256.New, []byte(g.secret))
	fmt.Fprintf(mac, "%d-%d", userID, timestamp)
	return hex.EncodeToString(mac.Sum(nil))
}
