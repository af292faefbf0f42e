// Package phase computes the wall-clock instant at which a policy's
// current phase may end. The result is advisory: it gates readiness
// checks and urgency displays, it never forces a transition by itself.
package phase

import (
	"time"

	"citizen_policy_platform/configs"
	"citizen_policy_platform/internal/db/models"
)

type Calculator struct {
	config configs.Platform
}

func NewCalculator(config configs.Platform) Calculator {
	return Calculator{config: config}
}

func days(n int) time.Duration {
	return time.Duration(n) * 24 * time.Hour
}

// EndOfPhase returns when the policy's current phase ends, or nil for
// states without a deadline.
func (c Calculator) EndOfPhase(policy *models.Policy, supporterCount, quorum int, now time.Time) *time.Time {
	switch policy.State {
	case models.PolicyStateRejected, models.PolicyStateChallenged:
		// a rejection has to rest out the moratorium
		if policy.RejectedAt == nil {
			return nil
		}
		end := policy.RejectedAt.Add(days(c.config.RelaunchMoratoriumDays))
		return &end

	case models.PolicyStateValidated:
		if policy.ValidatedAt == nil {
			return nil
		}
		lowerBound := policy.ValidatedAt.Add(days(c.config.SupportMinimumDays))

		// support reached: the cooldown still has to pass
		if supporterCount >= quorum {
			end := lowerBound.Add(days(c.config.SupportCooldownDays))
			return &end
		}

		if now.Before(lowerBound) {
			return &lowerBound
		}

		end := policy.ValidatedAt.Add(days(c.config.SupportMaximumDays))
		return &end

	case models.PolicyStateDiscussed:
		if policy.WentInDiscussionAt == nil {
			return nil
		}
		end := policy.WentInDiscussionAt.Add(days(c.config.DiscussionDays))
		return &end

	case models.PolicyStateVoted:
		if policy.WentInVoteAt == nil {
			return nil
		}
		end := policy.WentInVoteAt.Add(days(c.config.VotingDays))
		return &end
	}

	return nil
}
