package policy

import (
	"fmt"

	"citizen_policy_platform/internal"
	"citizen_policy_platform/internal/db/models"
	"citizen_policy_platform/internal/tally"
)

type Event string

const (
	EventStage      Event = "stage"
	EventSubmit     Event = "submit"
	EventEvaluate   Event = "evaluate"
	EventValidate   Event = "validate"
	EventInvalidate Event = "invalidate"
	EventReject     Event = "reject"
	EventChallenge  Event = "challenge"
	EventDiscuss    Event = "discuss"
	EventReview     Event = "review"
	EventFinalise   Event = "finalise"
	EventRelease    Event = "release"
	EventConclude   Event = "conclude"
	EventPublish    Event = "publish"
	EventClose      Event = "close"
	EventDelete     Event = "delete"
	EventUndelete   Event = "undelete"
	EventUnhide     Event = "unhide"
)

// Effect is a persistence side effect the caller applies in the same
// transaction as the state change. The engine itself never touches
// storage.
type Effect int

const (
	EffectMarkModerationsStale Effect = iota
	EffectPurgeUnconfirmedSupporters
	EffectPurgeUnconfirmedInitiators
	EffectSnapshotEligibleVoters
)

// Payload carries event-specific input; today only evaluate needs one.
type Payload struct {
	ModerationVote     models.ModerationVote
	ModerationText     string
	ModerationBlockers string
}

// Outcome describes a successfully applied event: the mutated state,
// the effects to persist, an optional review row to save, and the
// notification events for the external dispatcher.
type Outcome struct {
	State         models.PolicyState
	Effects       []Effect
	Moderation    *models.Moderation
	Notifications []Notification
}

type applyFunc func(e Engine, actor *models.User, p *models.Policy, payload Payload, env Env) (*Outcome, error)

type transition struct {
	sources []models.PolicyState
	guard   func(e Engine, actor *models.User, p *models.Policy, env Env) Decision
	apply   applyFunc
}

// Engine applies lifecycle events. Each application asserts the source
// state, re-checks the guard, mutates the policy in memory and returns
// the outcome; persistence and delivery stay with the caller.
type Engine struct {
	guard Guard
	rules Rules
}

func NewEngine(guard Guard, rules Rules) Engine {
	return Engine{guard: guard, rules: rules}
}

var transitions = map[Event]transition{
	EventStage: {
		sources: []models.PolicyState{models.PolicyStateDraft},
		guard: func(e Engine, actor *models.User, p *models.Policy, env Env) Decision {
			return e.guard.PolicyStage(actor, p)
		},
		apply: applyStage,
	},
	EventSubmit: {
		sources: []models.PolicyState{models.PolicyStateStaged, models.PolicyStateInvalidated},
		guard: func(e Engine, actor *models.User, p *models.Policy, env Env) Decision {
			return e.guard.PolicySubmit(actor, p, env)
		},
		apply: applySubmit,
	},
	EventEvaluate: {
		sources: models.ModerationStates,
		guard: func(e Engine, actor *models.User, p *models.Policy, env Env) Decision {
			return e.guard.PolicyEvaluate(actor, p, env)
		},
		apply: applyEvaluate,
	},
	EventValidate: {
		sources: models.ModerationStates,
		guard: func(e Engine, actor *models.User, p *models.Policy, env Env) Decision {
			return e.guard.PolicyValidate(actor, p)
		},
		apply: applyValidate,
	},
	EventInvalidate: {
		sources: models.ModerationStates,
		guard: func(e Engine, actor *models.User, p *models.Policy, env Env) Decision {
			return e.guard.PolicyInvalidate(actor, p)
		},
		apply: applyInvalidate,
	},
	EventReject: {
		sources: append(append([]models.PolicyState{}, models.ModerationStates...), models.PolicyStateConcluded),
		guard: func(e Engine, actor *models.User, p *models.Policy, env Env) Decision {
			return e.guard.PolicyReject(actor, p)
		},
		apply: applyReject,
	},
	EventChallenge: {
		sources: []models.PolicyState{models.PolicyStateRejected},
		guard: func(e Engine, actor *models.User, p *models.Policy, env Env) Decision {
			return e.guard.PolicyChallenge(actor, p, env)
		},
		apply: applyChallenge,
	},
	EventDiscuss: {
		sources: []models.PolicyState{models.PolicyStateValidated},
		guard: func(e Engine, actor *models.User, p *models.Policy, env Env) Decision {
			return e.guard.PolicyDiscuss(actor, p, env)
		},
		apply: applyDiscuss,
	},
	EventReview: {
		sources: []models.PolicyState{models.PolicyStateDiscussed},
		guard: func(e Engine, actor *models.User, p *models.Policy, env Env) Decision {
			return e.guard.PolicyReview(actor, p, env)
		},
		apply: applyReview,
	},
	EventFinalise: {
		sources: []models.PolicyState{models.PolicyStateReviewed},
		guard: func(e Engine, actor *models.User, p *models.Policy, env Env) Decision {
			return e.guard.PolicyFinalise(actor, p, env)
		},
		apply: applyFinalise,
	},
	EventRelease: {
		sources: []models.PolicyState{models.PolicyStateFinalised},
		guard: func(e Engine, actor *models.User, p *models.Policy, env Env) Decision {
			return e.guard.PolicyRelease(actor, p, env)
		},
		apply: applyRelease,
	},
	EventConclude: {
		sources: []models.PolicyState{models.PolicyStateVoted},
		guard: func(e Engine, actor *models.User, p *models.Policy, env Env) Decision {
			return e.guard.PolicyConclude(actor, p, env)
		},
		apply: applyConclude,
	},
	EventPublish: {
		sources: []models.PolicyState{models.PolicyStateConcluded},
		guard: func(e Engine, actor *models.User, p *models.Policy, env Env) Decision {
			return e.guard.PolicyPublish(actor, p, env)
		},
		apply: applyPublish,
	},
	EventClose: {
		sources: []models.PolicyState{models.PolicyStateValidated},
		guard: func(e Engine, actor *models.User, p *models.Policy, env Env) Decision {
			return e.guard.PolicyClose(actor, p, env)
		},
		apply: applyClose,
	},
	EventDelete: {
		sources: []models.PolicyState{models.PolicyStateClosed},
		guard: func(e Engine, actor *models.User, p *models.Policy, env Env) Decision {
			return e.guard.PolicyDelete(actor, p)
		},
		apply: applyDelete,
	},
	EventUndelete: {
		sources: []models.PolicyState{models.PolicyStateDeleted},
		guard: func(e Engine, actor *models.User, p *models.Policy, env Env) Decision {
			return e.guard.PolicyUndelete(actor, p)
		},
		apply: applyUndelete,
	},
	EventUnhide: {
		sources: []models.PolicyState{models.PolicyStateHidden},
		guard: func(e Engine, actor *models.User, p *models.Policy, env Env) Decision {
			return e.guard.PolicyUnhide(actor, p)
		},
		apply: applyUnhide,
	},
}

// Apply runs a lifecycle event against the policy. The source-state
// assertion is centralized here: a violation means the caller skipped
// the guard or lost a race, and is reported as a fatal
// InvalidStateTransitionError. Guard refusals are recoverable and
// leave the policy untouched.
func (e Engine) Apply(event Event, actor *models.User, p *models.Policy, payload Payload, env Env) (*Outcome, error) {
	t, ok := transitions[event]
	if !ok {
		return nil, fmt.Errorf("unknown lifecycle event %q", event)
	}

	if !p.State.In(t.sources) {
		return nil, &InvalidStateTransitionError{Event: event, State: p.State}
	}

	if decision := t.guard(e, actor, p, env); !decision.Allowed {
		return nil, &PermissionDeniedError{Reason: decision.Reason}
	}

	outcome, err := t.apply(e, actor, p, payload, env)
	if err != nil {
		return nil, err
	}

	p.ChangedAt = env.Now
	return outcome, nil
}

func applyStage(e Engine, actor *models.User, p *models.Policy, _ Payload, env Env) (*Outcome, error) {
	now := env.Now
	p.StagedAt = &now

	// a re-staged policy that was challenged restarts its review
	// history from here
	if p.ChallengedAt != nil {
		p.ReopenedAt = &now
	}

	p.State = models.PolicyStateStaged
	return &Outcome{State: p.State}, nil
}

func applySubmit(e Engine, actor *models.User, p *models.Policy, _ Payload, env Env) (*Outcome, error) {
	p.State = models.PolicyStateSubmitted

	return &Outcome{
		State: p.State,
		Effects: []Effect{
			EffectPurgeUnconfirmedInitiators,
			EffectMarkModerationsStale,
		},
		Notifications: []Notification{
			notifyUsers(initiatorIDs(p, actor.ID), NotifyPolicySubmitted, p, "Policy submitted. Awaiting moderation."),
			notifyRole(models.UserRoleModerator, NotifyPolicySubmitted, p, "A policy awaits moderation."),
		},
	}, nil
}

func applyEvaluate(e Engine, actor *models.User, p *models.Policy, payload Payload, env Env) (*Outcome, error) {
	now := env.Now

	moderation := p.ModerationByUser(actor.ID)
	if moderation == nil {
		moderation = &models.Moderation{
			UserID:    actor.ID,
			PolicyID:  p.ID,
			User:      actor,
			CreatedAt: now,
		}
		p.Moderations = append(p.Moderations, moderation)
	}
	moderation.Vote = payload.ModerationVote
	moderation.Text = payload.ModerationText
	moderation.Blockers = payload.ModerationBlockers
	moderation.ChangedAt = now

	outcome := &Outcome{Moderation: moderation}

	if payload.ModerationVote == models.ModerationVoteRequestInfo {
		p.State = models.PolicyStateInvalidated
		outcome.State = p.State
		outcome.Notifications = append(outcome.Notifications,
			notifyUsers(initiatorIDs(p, 0), NotifyPolicyInvalidated, p, "A reviewer requested more information."))
		return outcome, nil
	}

	// the fresh review may have settled the quota
	if e.rules.ReadyForNextStage(p, env) && e.rules.ReadyToProceed(p, env) {
		p.ValidatedAt = &now
		p.State = models.PolicyStateValidated
		outcome.Effects = append(outcome.Effects, EffectPurgeUnconfirmedSupporters)
		outcome.Notifications = append(outcome.Notifications,
			notifyUsers(supporterIDs(p, actor.ID), NotifyPolicyValidated, p, "Policy validated."),
			notifyRole(models.UserRoleModerator, NotifyPolicyValidated, p, "Policy validated."),
		)
	}

	outcome.State = p.State
	return outcome, nil
}

func applyValidate(e Engine, actor *models.User, p *models.Policy, _ Payload, env Env) (*Outcome, error) {
	if !e.rules.ReadyForNextStage(p, env) {
		return nil, &PermissionDeniedError{Reason: "The review quota has not been met yet."}
	}

	now := env.Now
	p.ValidatedAt = &now
	p.State = models.PolicyStateValidated

	return &Outcome{
		State:   p.State,
		Effects: []Effect{EffectPurgeUnconfirmedSupporters},
		Notifications: []Notification{
			notifyUsers(supporterIDs(p, actor.ID), NotifyPolicyValidated, p, "Policy validated."),
			notifyRole(models.UserRoleModerator, NotifyPolicyValidated, p, "Policy validated."),
		},
	}, nil
}

func applyInvalidate(e Engine, actor *models.User, p *models.Policy, _ Payload, env Env) (*Outcome, error) {
	p.State = models.PolicyStateInvalidated

	return &Outcome{
		State: p.State,
		Notifications: []Notification{
			notifyUsers(initiatorIDs(p, 0), NotifyPolicyInvalidated, p, "The policy needs rework before moderation can continue."),
		},
	}, nil
}

func applyReject(e Engine, actor *models.User, p *models.Policy, _ Payload, env Env) (*Outcome, error) {
	// from CONCLUDED this is the vote-failed path and must not fire on
	// an ambiguous tally
	if p.State == models.PolicyStateConcluded {
		switch tally.Resolve(p) {
		case tally.OutcomeAmbiguous:
			return nil, ErrAmbiguousOutcome
		case tally.OutcomeAccepted:
			return nil, &PermissionDeniedError{Reason: "The vote carried; the policy cannot be rejected."}
		}
	}

	now := env.Now
	p.RejectedAt = &now
	p.State = models.PolicyStateRejected

	return &Outcome{
		State:   p.State,
		Effects: []Effect{EffectMarkModerationsStale},
		Notifications: []Notification{
			notifyUsers(initiatorIDs(p, 0), NotifyPolicyRejected, p, "The policy was rejected."),
		},
	}, nil
}

func applyChallenge(e Engine, actor *models.User, p *models.Policy, _ Payload, env Env) (*Outcome, error) {
	now := env.Now
	p.ChallengedAt = &now
	p.ReopenedAt = &now
	p.State = models.PolicyStateChallenged

	return &Outcome{
		State: p.State,
		Notifications: []Notification{
			notifyRole(models.UserRoleModerator, NotifyPolicyChallenged, p, "A rejection was challenged; additional reviews are needed."),
		},
	}, nil
}

func applyDiscuss(e Engine, actor *models.User, p *models.Policy, _ Payload, env Env) (*Outcome, error) {
	now := env.Now
	p.WentInDiscussionAt = &now
	p.State = models.PolicyStateDiscussed

	description := "The policy entered the discussion phase."
	if end := e.rules.EndOfPhase(p, env); end != nil {
		description = fmt.Sprintf("The policy is open for discussion until %s.", internal.Format(*end))
	}

	return &Outcome{
		State: p.State,
		Notifications: []Notification{
			notifyUsers(supporterIDs(p, 0), NotifyPolicyInDiscussion, p, description),
		},
	}, nil
}

func applyReview(e Engine, actor *models.User, p *models.Policy, _ Payload, env Env) (*Outcome, error) {
	p.State = models.PolicyStateReviewed

	return &Outcome{
		State: p.State,
		Notifications: []Notification{
			notifyUsers(initiatorIDs(p, 0), NotifyPolicyInReview, p, "The discussion ended; the policy can be revised for final edits."),
		},
	}, nil
}

func applyFinalise(e Engine, actor *models.User, p *models.Policy, _ Payload, env Env) (*Outcome, error) {
	p.State = models.PolicyStateFinalised

	// a fresh review round starts on the final text
	return &Outcome{
		State:   p.State,
		Effects: []Effect{EffectMarkModerationsStale},
		Notifications: []Notification{
			notifyRole(models.UserRoleModerator, NotifyPolicyReviewNeeded, p, "A finalised policy awaits its last review round."),
		},
	}, nil
}

func applyRelease(e Engine, actor *models.User, p *models.Policy, _ Payload, env Env) (*Outcome, error) {
	now := env.Now
	p.WentInVoteAt = &now
	p.State = models.PolicyStateVoted

	description := "The policy is open for voting."
	if end := e.rules.EndOfPhase(p, env); end != nil {
		description = fmt.Sprintf("The policy is open for voting until %s.", internal.Format(*end))
	}

	return &Outcome{
		State: p.State,
		Notifications: []Notification{
			notifyUsers(supporterIDs(p, 0), NotifyPolicyWentToVote, p, description),
			notifyRole(models.UserRoleModerator, NotifyPolicyWentToVote, p, description),
		},
	}, nil
}

func applyConclude(e Engine, actor *models.User, p *models.Policy, _ Payload, env Env) (*Outcome, error) {
	// freeze the electorate size the moment voting closes
	p.EligibleVoters = env.ActiveUserCount
	p.State = models.PolicyStateConcluded

	return &Outcome{
		State:   p.State,
		Effects: []Effect{EffectSnapshotEligibleVoters},
		Notifications: []Notification{
			notifyRole(models.UserRoleModerator, NotifyPolicyConcluded, p, "Voting closed; the result awaits resolution."),
		},
	}, nil
}

func applyPublish(e Engine, actor *models.User, p *models.Policy, _ Payload, env Env) (*Outcome, error) {
	switch tally.Resolve(p) {
	case tally.OutcomeAmbiguous:
		return nil, ErrAmbiguousOutcome
	case tally.OutcomeRejected:
		return nil, &PermissionDeniedError{Reason: "The vote did not carry."}
	}

	now := env.Now
	p.PublishedAt = &now
	p.State = models.PolicyStatePublished

	return &Outcome{
		State: p.State,
		Notifications: []Notification{
			notifyUsers(supporterIDs(p, 0), NotifyPolicyPublished, p, "The policy was accepted and published."),
		},
	}, nil
}

func applyClose(e Engine, actor *models.User, p *models.Policy, _ Payload, env Env) (*Outcome, error) {
	p.State = models.PolicyStateClosed

	return &Outcome{
		State: p.State,
		Notifications: []Notification{
			notifyUsers(initiatorIDs(p, 0), NotifyPolicyClosed, p, "The policy missed the support quorum and was closed."),
		},
	}, nil
}

func applyDelete(e Engine, actor *models.User, p *models.Policy, _ Payload, env Env) (*Outcome, error) {
	p.State = models.PolicyStateDeleted
	return &Outcome{State: p.State}, nil
}

func applyUndelete(e Engine, actor *models.User, p *models.Policy, _ Payload, env Env) (*Outcome, error) {
	p.State = models.PolicyStateHidden
	return &Outcome{State: p.State}, nil
}

func applyUnhide(e Engine, actor *models.User, p *models.Policy, _ Payload, env Env) (*Outcome, error) {
	p.State = models.PolicyStateDraft
	return &Outcome{State: p.State}, nil
}
