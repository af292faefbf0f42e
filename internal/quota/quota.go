// Package quota derives how many more moderation reviews a policy
// needs before it may advance, optionally balanced across the
// moderation team's diversity flags.
package quota

import (
	"math"

	"citizen_policy_platform/configs"
	"citizen_policy_platform/internal/db/models"
)

type Calculator struct {
	config configs.Platform
}

func NewCalculator(config configs.Platform) Calculator {
	return Calculator{config: config}
}

// Required returns the number of reviews a policy in the given state
// must collect. The moderator-percentage value wins over the fixed
// minimum; on the fixed-minimum branch an even value is lowered by one
// so reviews cannot tie.
func (c Calculator) Required(state models.PolicyState, totalModerators int) int {
	byPercent := int(math.Round(float64(totalModerators) * float64(c.config.MinModeratorPercentage) / 100))
	byCount := c.config.MinModeratorVotes

	// rejected policies keep their review history, so the challenge
	// surcharge stacks on top of what was already required
	switch {
	case state == models.PolicyStateChallenged || state == models.PolicyStateRejected:
		byCount += c.config.AddedVotesForChallenge
	case state == models.PolicyStateReviewed:
		byCount += c.config.AddedVotesForReview
	}

	if byPercent >= byCount {
		return byPercent
	}

	if byCount%2 == 0 {
		return byCount - 1
	}

	return byCount
}

// Missing subtracts the recorded reviews from the requirement and
// returns the remaining (female, diverse, total) targets. Stale and
// request-info reviews never count; once a policy has been reopened,
// only reviews recorded afterwards count. Values are deliberately not
// floored at zero: a negative target means the quota is exceeded and
// callers treat <= 0 as satisfied.
func (c Calculator) Missing(policy *models.Policy, totalModerators int) (female, diverse, total int) {
	total = c.Required(policy.State, totalModerators)

	reviews := CountableModerations(policy)
	total -= len(reviews)

	if !c.config.UseDiverseModeration {
		return 0, 0, total
	}

	female = c.config.MinFemaleModVotes
	diverse = c.config.MinDiverseModVotes
	for _, m := range reviews {
		if m.User == nil {
			continue
		}
		if m.User.IsFemaleModerator {
			female--
		}
		if m.User.IsDiverseModerator {
			diverse--
		}
	}

	return female, diverse, total
}

// CountableModerations returns the non-stale yes/no reviews that count
// toward the current quota, applying the reopened-at cutoff.
func CountableModerations(policy *models.Policy) []*models.Moderation {
	var reviews []*models.Moderation
	for _, m := range policy.CurrentModerations() {
		if !m.Countable() {
			continue
		}
		if policy.ReopenedAt != nil && !m.ChangedAt.After(*policy.ReopenedAt) {
			continue
		}
		reviews = append(reviews, m)
	}
	return reviews
}

// EvaluationsComplete reports whether enough reviews are in for the
// policy's state. Finalised policies only count fresh reviews; for the
// challenge gate the full history still counts, so stale rows are kept
// everywhere else.
func (c Calculator) EvaluationsComplete(policy *models.Policy, totalModerators int) bool {
	required := c.Required(policy.State, totalModerators)

	count := 0
	for _, m := range policy.Moderations {
		if !m.Countable() {
			continue
		}
		if policy.State == models.PolicyStateFinalised && m.Stale {
			continue
		}
		if policy.ReopenedAt != nil && !m.ChangedAt.After(*policy.ReopenedAt) {
			continue
		}
		count++
	}

	return count >= required
}

// ReviewBalance counts the yes and no reviews relevant for the
// policy's current gate, with the same stale and reopened filters as
// EvaluationsComplete.
func ReviewBalance(policy *models.Policy) (yes, no int) {
	for _, m := range policy.Moderations {
		if policy.State == models.PolicyStateFinalised && m.Stale {
			continue
		}
		if policy.ReopenedAt != nil && !m.ChangedAt.After(*policy.ReopenedAt) {
			continue
		}
		switch m.Vote {
		case models.ModerationVoteYes:
			yes++
		case models.ModerationVoteNo:
			no++
		}
	}
	return yes, no
}
