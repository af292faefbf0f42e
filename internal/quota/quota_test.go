package quota

import (
	"testing"
	"time"

	"citizen_policy_platform/configs"
	"citizen_policy_platform/internal/db/models"

	"github.com/stretchr/testify/assert"
)

func testConfig() configs.Platform {
	return configs.Platform{
		InitiatorsCount:        3,
		MinModeratorVotes:      5,
		MinModeratorPercentage: 10,
		AddedVotesForChallenge: 2,
		AddedVotesForReview:    2,
		UseDiverseModeration:   false,
		MinFemaleModVotes:      3,
		MinDiverseModVotes:     2,
	}
}

func yesModeration(userID int, changedAt time.Time) *models.Moderation {
	return &models.Moderation{
		UserID:    userID,
		Vote:      models.ModerationVoteYes,
		ChangedAt: changedAt,
		User:      &models.User{ID: userID},
	}
}

func TestRequired_FixedCountWinsOverLowPercentage(t *testing.T) {
	c := NewCalculator(testConfig())
	assert.Equal(t, 5, c.Required(models.PolicyStateSubmitted, 10))
}

func TestRequired_PercentageWinsOverFixedCount(t *testing.T) {
	c := NewCalculator(testConfig())
	assert.Equal(t, 10, c.Required(models.PolicyStateSubmitted, 100))
}

func TestRequired_EvenFixedCountLoweredByOne(t *testing.T) {
	config := testConfig()
	config.MinModeratorVotes = 6

	c := NewCalculator(config)
	assert.Equal(t, 5, c.Required(models.PolicyStateSubmitted, 10))
}

func TestRequired_ChallengeSurcharge(t *testing.T) {
	c := NewCalculator(testConfig())
	assert.Equal(t, 7, c.Required(models.PolicyStateChallenged, 10))
	assert.Equal(t, 7, c.Required(models.PolicyStateRejected, 10))
}

func TestRequired_ReviewSurcharge(t *testing.T) {
	c := NewCalculator(testConfig())
	assert.Equal(t, 7, c.Required(models.PolicyStateReviewed, 10))
}

func TestMissing_CountsOnlyQualifyingReviews(t *testing.T) {
	c := NewCalculator(testConfig())
	now := time.Now()

	policy := &models.Policy{
		State: models.PolicyStateSubmitted,
		Moderations: []*models.Moderation{
			yesModeration(1, now),
			yesModeration(2, now),
			yesModeration(3, now),
		},
	}

	_, _, total := c.Missing(policy, 10)
	assert.Equal(t, 2, total)
}

func TestMissing_StaleAndRequestInfoReviewsDoNotCount(t *testing.T) {
	c := NewCalculator(testConfig())
	now := time.Now()

	policy := &models.Policy{
		State: models.PolicyStateSubmitted,
		Moderations: []*models.Moderation{
			yesModeration(1, now),
			{UserID: 2, Vote: models.ModerationVoteYes, Stale: true, ChangedAt: now},
			{UserID: 3, Vote: models.ModerationVoteRequestInfo, ChangedAt: now},
		},
	}

	_, _, total := c.Missing(policy, 10)
	assert.Equal(t, 4, total)
}

func TestMissing_ReopenedCutoffDiscardsOlderReviews(t *testing.T) {
	c := NewCalculator(testConfig())
	now := time.Now()
	reopenedAt := now.Add(-time.Hour)

	policy := &models.Policy{
		State:      models.PolicyStateSubmitted,
		ReopenedAt: &reopenedAt,
		Moderations: []*models.Moderation{
			yesModeration(1, now.Add(-2*time.Hour)),
			yesModeration(2, now),
		},
	}

	_, _, total := c.Missing(policy, 10)
	assert.Equal(t, 4, total)
}

func TestMissing_MonotonicallyNonIncreasing(t *testing.T) {
	c := NewCalculator(testConfig())
	now := time.Now()

	policy := &models.Policy{State: models.PolicyStateSubmitted}

	previous := 0
	for i := 1; i <= 7; i++ {
		policy.Moderations = append(policy.Moderations, yesModeration(i, now))

		_, _, total := c.Missing(policy, 10)
		if i > 1 {
			assert.LessOrEqual(t, total, previous)
		}
		previous = total
	}

	// exceeding the quota goes negative, it is never floored
	assert.Equal(t, -2, previous)
}

func TestMissing_DiversityTargetsDecrementPerMatchingReviewer(t *testing.T) {
	config := testConfig()
	config.UseDiverseModeration = true

	c := NewCalculator(config)
	now := time.Now()

	policy := &models.Policy{
		State: models.PolicyStateSubmitted,
		Moderations: []*models.Moderation{
			{UserID: 1, Vote: models.ModerationVoteYes, ChangedAt: now, User: &models.User{ID: 1, IsFemaleModerator: true}},
			{UserID: 2, Vote: models.ModerationVoteYes, ChangedAt: now, User: &models.User{ID: 2, IsFemaleModerator: true, IsDiverseModerator: true}},
		},
	}

	female, diverse, total := c.Missing(policy, 10)
	assert.Equal(t, 1, female)
	assert.Equal(t, 1, diverse)
	assert.Equal(t, 3, total)
}

func TestEvaluationsComplete_MetExactly(t *testing.T) {
	c := NewCalculator(testConfig())
	now := time.Now()

	policy := &models.Policy{State: models.PolicyStateSubmitted}
	for i := 1; i <= 5; i++ {
		policy.Moderations = append(policy.Moderations, yesModeration(i, now))
	}

	assert.True(t, c.EvaluationsComplete(policy, 10))
}

func TestEvaluationsComplete_FinalisedSkipsStaleReviews(t *testing.T) {
	c := NewCalculator(testConfig())
	now := time.Now()

	policy := &models.Policy{State: models.PolicyStateFinalised}
	for i := 1; i <= 5; i++ {
		m := yesModeration(i, now)
		m.Stale = true
		policy.Moderations = append(policy.Moderations, m)
	}

	assert.False(t, c.EvaluationsComplete(policy, 10))
}

func TestEvaluationsComplete_ChallengeCountsFullHistory(t *testing.T) {
	c := NewCalculator(testConfig())
	now := time.Now()

	// 7 reviews needed with the challenge surcharge; 4 stale + 3 fresh
	// still count because the gate looks at the full history
	policy := &models.Policy{State: models.PolicyStateChallenged}
	for i := 1; i <= 4; i++ {
		m := yesModeration(i, now)
		m.Stale = true
		policy.Moderations = append(policy.Moderations, m)
	}
	for i := 5; i <= 7; i++ {
		policy.Moderations = append(policy.Moderations, yesModeration(i, now))
	}

	assert.True(t, c.EvaluationsComplete(policy, 10))
}

func TestReviewBalance(t *testing.T) {
	now := time.Now()

	policy := &models.Policy{
		State: models.PolicyStateSubmitted,
		Moderations: []*models.Moderation{
			{UserID: 1, Vote: models.ModerationVoteYes, ChangedAt: now},
			{UserID: 2, Vote: models.ModerationVoteYes, ChangedAt: now},
			{UserID: 3, Vote: models.ModerationVoteNo, ChangedAt: now},
			{UserID: 4, Vote: models.ModerationVoteRequestInfo, ChangedAt: now},
		},
	}

	yes, no := ReviewBalance(policy)
	assert.Equal(t, 2, yes)
	assert.Equal(t, 1, no)
}
