package policy

import (
	"time"

	"citizen_policy_platform/configs"
	"citizen_policy_platform/internal/db/models"
	"citizen_policy_platform/internal/phase"
	"citizen_policy_platform/internal/quota"
	"citizen_policy_platform/internal/tally"
)

// Rules answers the two advancement questions of the process:
// ReadyForNextStage ("are the preconditions met") and ReadyToProceed
// ("did the gate carry, or should the policy fall off"). Everything is
// recomputed from the loaded rows on each call.
type Rules struct {
	config configs.Platform
	quota  quota.Calculator
	phase  phase.Calculator
}

func NewRules(config configs.Platform) Rules {
	return Rules{
		config: config,
		quota:  quota.NewCalculator(config),
		phase:  phase.NewCalculator(config),
	}
}

func (r Rules) Quota() quota.Calculator {
	return r.quota
}

func (r Rules) Phase() phase.Calculator {
	return r.phase
}

func days(n int) time.Duration {
	return time.Duration(n) * 24 * time.Hour
}

// HasRequiredInitiators reports whether the founding group is complete
// and confirmed.
func (r Rules) HasRequiredInitiators(policy *models.Policy) bool {
	return len(policy.ConfirmedInitiators()) >= r.config.InitiatorsCount
}

// EndOfPhase derives the current phase deadline.
func (r Rules) EndOfPhase(policy *models.Policy, env Env) *time.Time {
	return r.phase.EndOfPhase(policy, len(policy.Supporters), env.Quorum, env.Now)
}

// ReadyForNextStage reports whether the policy meets the preconditions
// of its current phase gate.
func (r Rules) ReadyForNextStage(policy *models.Policy, env Env) bool {
	switch policy.State {
	case models.PolicyStateStaged, models.PolicyStateReviewed:
		return r.HasRequiredInitiators(policy) && policy.HasRequiredFields()

	case models.PolicyStateSubmitted,
		models.PolicyStateInvalidated,
		models.PolicyStateChallenged,
		models.PolicyStateFinalised:
		return r.HasRequiredInitiators(policy) &&
			policy.HasRequiredFields() &&
			r.quota.EvaluationsComplete(policy, env.TotalModerators)

	case models.PolicyStateValidated, models.PolicyStateVoted:
		end := r.EndOfPhase(policy, env)
		return end != nil && env.Now.After(*end)

	case models.PolicyStateDiscussed:
		if policy.WentInDiscussionAt == nil {
			return false
		}
		return env.Now.After(policy.WentInDiscussionAt.Add(days(r.config.DiscussionDays)))

	case models.PolicyStateRejected:
		if policy.RejectedAt == nil {
			return false
		}
		return env.Now.After(policy.RejectedAt.Add(days(r.config.RelaunchMoratoriumDays)))

	case models.PolicyStateDraft, models.PolicyStateConcluded:
		return true
	}

	return false
}

// ReadyToProceed reports whether the phase gate carried: reviews in
// favor, quorum reached, or the vote accepted.
func (r Rules) ReadyToProceed(policy *models.Policy, env Env) bool {
	switch policy.State {
	case models.PolicyStateSubmitted,
		models.PolicyStateInvalidated,
		models.PolicyStateChallenged,
		models.PolicyStateFinalised:
		yes, no := quota.ReviewBalance(policy)
		return yes > no

	case models.PolicyStateValidated:
		return len(policy.Supporters) >= env.Quorum

	case models.PolicyStateConcluded:
		return tally.Resolve(policy) == tally.OutcomeAccepted
	}

	return false
}
