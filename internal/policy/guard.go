package policy

import (
	"citizen_policy_platform/configs"
	"citizen_policy_platform/internal/db/models"
	"citizen_policy_platform/internal/quota"
)

// Decision is the result of a guard predicate. Reason, when set,
// explains a refusal in user-facing terms.
type Decision struct {
	Allowed bool
	Reason  string
}

func Allow() Decision {
	return Decision{Allowed: true}
}

func Deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// Guard is the single place permissions are decided. Every predicate
// is side-effect free and recomputes its answer from the actor, the
// loaded policy rows and the environment snapshot, so the same
// predicate safely gates both mutations and UI affordances.
type Guard struct {
	config configs.Platform
	rules  Rules
}

func NewGuard(config configs.Platform) Guard {
	return Guard{
		config: config,
		rules:  NewRules(config),
	}
}

func authenticated(actor *models.User) bool {
	return actor != nil && actor.ID != 0
}

// countableCurrent counts the non-stale yes/no reviews, honoring the
// reopened cutoff.
func countableCurrent(p *models.Policy) int {
	return len(quota.CountableModerations(p))
}

// PolicyView hides team-only and draft policies from outsiders.
func (g Guard) PolicyView(actor *models.User, p *models.Policy) Decision {
	if p.State.In(models.AdminStates) {
		if !authenticated(actor) {
			return Deny("")
		}
		if actor.HasPermission(models.PermPolicyReview) || actor.IsSuperuser {
			return Allow()
		}
		if p.IsInitiator(actor.ID) {
			return Allow()
		}
		return Deny("")
	}

	if p.State == models.PolicyStateDraft {
		if !authenticated(actor) || !p.IsFirstInitiator(actor.ID) {
			return Deny("")
		}
	}

	return Allow()
}

// PolicyEdit allows confirmed initiators to change content while the
// policy is editable and its review quota is not yet settled.
func (g Guard) PolicyEdit(actor *models.User, p *models.Policy, env Env) Decision {
	if !authenticated(actor) {
		return Deny("")
	}
	if !p.State.In(models.EditStates) {
		return Deny("")
	}
	if !p.IsConfirmedInitiator(actor.ID) {
		return Deny("")
	}

	// once the review quota is met and the policy is ready, edits
	// would invalidate the recorded reviews
	if countableCurrent(p) >= g.rules.Quota().Required(p.State, env.TotalModerators) {
		if g.rules.ReadyForNextStage(p, env) {
			return Deny("")
		}
	}

	return Allow()
}

func (g Guard) PolicyInvite(actor *models.User, p *models.Policy, env Env) Decision {
	edit := g.PolicyEdit(actor, p, env)
	if !edit.Allowed && !(authenticated(actor) && actor.IsSuperuser) {
		return Deny("")
	}
	if !authenticated(actor) || !p.IsInitiator(actor.ID) {
		return Deny("")
	}
	if !p.State.In(models.InviteStates) {
		return Deny("")
	}
	if len(p.Initiators()) >= g.config.InitiatorsCount {
		return Deny("The founding group is already complete.")
	}
	return Allow()
}

func (g Guard) PolicyApply(actor *models.User, p *models.Policy) Decision {
	if !authenticated(actor) {
		return Deny("")
	}
	if !p.State.In(models.InviteStates) {
		return Deny("")
	}
	if p.IsInitiator(actor.ID) {
		return Deny("")
	}
	return Allow()
}

func (g Guard) PolicyStage(actor *models.User, p *models.Policy) Decision {
	if !authenticated(actor) {
		return Deny("")
	}
	if p.State != models.PolicyStateDraft {
		return Deny("")
	}
	if p.IsInitiator(actor.ID) || actor.IsSuperuser {
		return Allow()
	}
	return Deny("")
}

func (g Guard) PolicySubmit(actor *models.User, p *models.Policy, env Env) Decision {
	if !authenticated(actor) {
		return Deny("")
	}
	if !p.IsConfirmedInitiator(actor.ID) {
		return Deny("")
	}
	if len(p.ConfirmedInitiators()) < g.config.InitiatorsCount {
		return Deny("Submission requires the complete founding group to confirm.")
	}
	if countableCurrent(p) >= g.rules.Quota().Required(p.State, env.TotalModerators) {
		return Deny("")
	}
	if p.State != models.PolicyStateStaged && p.State != models.PolicyStateInvalidated {
		return Deny("")
	}
	return Allow()
}

// PolicyValidate decides whether the actor may validate or reject on
// behalf of the policy team.
func (g Guard) PolicyValidate(actor *models.User, p *models.Policy) Decision {
	if !authenticated(actor) {
		return Deny("")
	}
	if !p.State.In(models.ModerationStates) {
		return Deny("")
	}
	if actor.HasPermission(models.PermPolicyValidate) || actor.IsSuperuser {
		return Allow()
	}
	return Deny("")
}

// PolicyEvaluate decides whether the actor should record a review:
// moderators only, never on their own policy, never twice, and never
// when the review would be wasted on an already satisfied quota —
// unless the reviewer fills a still-open diversity target.
func (g Guard) PolicyEvaluate(actor *models.User, p *models.Policy, env Env) Decision {
	if !authenticated(actor) {
		return Deny("")
	}
	if !p.State.In(models.ModerationStates) {
		return Deny("")
	}
	if !actor.HasPermission(models.PermPolicyReview) && !actor.IsSuperuser {
		return Deny("")
	}
	if p.IsInitiator(actor.ID) {
		return Deny("Moderation not possible: initiators can not moderate their own policy.")
	}

	if existing := p.ModerationByUser(actor.ID); existing != nil && existing.Countable() {
		return Deny("")
	}

	female, diverse, total := g.rules.Quota().Missing(p, env.TotalModerators)

	// a qualifying review is never wasted on an open diversity target
	if female > 0 && actor.IsFemaleModerator {
		return Allow()
	}
	if diverse > 0 && actor.IsDiverseModerator {
		return Allow()
	}

	if total > female && total > diverse {
		return Allow()
	}
	return Deny("")
}

func (g Guard) PolicyInvalidate(actor *models.User, p *models.Policy) Decision {
	if !authenticated(actor) {
		return Deny("")
	}
	if !p.State.In(models.ModerationStates) {
		return Deny("")
	}
	if !actor.HasPermission(models.PermPolicyInvalidate) && !actor.IsSuperuser {
		return Deny("")
	}
	if p.IsInitiator(actor.ID) {
		return Deny("Moderation not possible: initiators can not moderate their own policy.")
	}
	return Allow()
}

func (g Guard) PolicyReject(actor *models.User, p *models.Policy) Decision {
	if !authenticated(actor) {
		return Deny("")
	}
	if !p.State.In(models.ModerationStates) && p.State != models.PolicyStateConcluded {
		return Deny("")
	}
	if !actor.HasPermission(models.PermPolicyReject) && !actor.IsSuperuser {
		return Deny("")
	}
	if p.IsInitiator(actor.ID) {
		return Deny("Moderation not possible: initiators can not moderate their own policy.")
	}
	return Allow()
}

// PolicyChallenge allows the founding group to contest a rejection
// once, and only when additional reviews could still overturn it.
func (g Guard) PolicyChallenge(actor *models.User, p *models.Policy, env Env) Decision {
	if !authenticated(actor) {
		return Deny("")
	}
	if p.State != models.PolicyStateRejected {
		return Deny("")
	}
	if !p.IsConfirmedInitiator(actor.ID) {
		return Deny("")
	}
	if len(p.ConfirmedInitiators()) < g.config.InitiatorsCount {
		return Deny("")
	}
	if p.ChallengedAt != nil {
		return Deny("A policy can only be challenged once.")
	}

	required := g.rules.Quota().Required(p.State, env.TotalModerators)
	if countableCurrent(p) >= required {
		return Deny("")
	}

	_, no := quota.ReviewBalance(p)
	if required-no <= no {
		return Deny("Additional reviews would not be sufficient to overturn the rejection.")
	}

	return Allow()
}

func (g Guard) PolicyDiscuss(actor *models.User, p *models.Policy, env Env) Decision {
	if !authenticated(actor) {
		return Deny("")
	}
	if p.State != models.PolicyStateValidated {
		return Deny("")
	}
	if len(p.Supporters) < env.Quorum {
		if actor.HasPermission(models.PermPolicyOverride) {
			return Allow()
		}
		return Deny("The policy has not reached the support quorum.")
	}
	return Allow()
}

func (g Guard) PolicyReview(actor *models.User, p *models.Policy, env Env) Decision {
	if !authenticated(actor) {
		return Deny("")
	}
	if p.State != models.PolicyStateDiscussed {
		return Deny("")
	}
	if !g.rules.ReadyForNextStage(p, env) {
		if actor.HasPermission(models.PermPolicyOverride) {
			return Allow()
		}
		return Deny("The discussion phase has not ended yet.")
	}
	return Allow()
}

func (g Guard) PolicyFinalise(actor *models.User, p *models.Policy, env Env) Decision {
	if !authenticated(actor) {
		return Deny("")
	}
	if p.State != models.PolicyStateReviewed {
		return Deny("")
	}
	if !g.rules.ReadyForNextStage(p, env) {
		return Deny("")
	}
	return Allow()
}

func (g Guard) PolicyRelease(actor *models.User, p *models.Policy, env Env) Decision {
	if !authenticated(actor) {
		return Deny("")
	}
	if p.State != models.PolicyStateFinalised {
		return Deny("")
	}
	if !actor.HasPermission(models.PermPolicyValidate) && !actor.IsSuperuser {
		return Deny("")
	}
	if !g.rules.ReadyForNextStage(p, env) || !g.rules.ReadyToProceed(p, env) {
		return Deny("The final review round has not carried yet.")
	}
	return Allow()
}

func (g Guard) PolicyConclude(actor *models.User, p *models.Policy, env Env) Decision {
	if !authenticated(actor) {
		return Deny("")
	}
	if p.State != models.PolicyStateVoted {
		return Deny("")
	}
	if !g.rules.ReadyForNextStage(p, env) {
		if actor.HasPermission(models.PermPolicyOverride) {
			return Allow()
		}
		return Deny("The voting phase has not ended yet.")
	}
	return Allow()
}

func (g Guard) PolicyPublish(actor *models.User, p *models.Policy, env Env) Decision {
	if !authenticated(actor) {
		return Deny("")
	}
	if p.State != models.PolicyStateConcluded {
		return Deny("")
	}
	if !g.rules.ReadyToProceed(p, env) {
		if actor.HasPermission(models.PermPolicyOverride) {
			return Allow()
		}
		return Deny("")
	}
	return Allow()
}

func (g Guard) PolicyClose(actor *models.User, p *models.Policy, env Env) Decision {
	if !authenticated(actor) {
		return Deny("")
	}
	if p.State != models.PolicyStateValidated {
		return Deny("")
	}
	if len(p.Supporters) >= env.Quorum {
		return Deny("")
	}
	if !actor.HasPermission(models.PermPolicyClose) {
		return Deny("")
	}
	return Allow()
}

func (g Guard) PolicyDelete(actor *models.User, p *models.Policy) Decision {
	if !authenticated(actor) {
		return Deny("")
	}
	if p.State != models.PolicyStateClosed {
		return Deny("")
	}
	if actor.HasPermission(models.PermPolicyDelete) || actor.IsSuperuser {
		return Allow()
	}
	return Deny("")
}

func (g Guard) PolicyUndelete(actor *models.User, p *models.Policy) Decision {
	if !authenticated(actor) {
		return Deny("")
	}
	if p.State != models.PolicyStateDeleted {
		return Deny("")
	}
	if actor.HasPermission(models.PermPolicyDelete) || actor.IsSuperuser {
		return Allow()
	}
	return Deny("")
}

func (g Guard) PolicyUnhide(actor *models.User, p *models.Policy) Decision {
	if !authenticated(actor) {
		return Deny("")
	}
	if p.State != models.PolicyStateHidden {
		return Deny("")
	}
	if actor.HasPermission(models.PermPolicyUnhide) || actor.IsSuperuser {
		return Allow()
	}
	return Deny("")
}

func (g Guard) PolicyHistoryDelete(actor *models.User, p *models.Policy) Decision {
	if !authenticated(actor) {
		return Deny("")
	}
	if !p.IsConfirmedInitiator(actor.ID) {
		return Deny("")
	}
	return Allow()
}

func (g Guard) PolicyProposalNew(actor *models.User, p *models.Policy) Decision {
	if !authenticated(actor) {
		return Deny("")
	}
	if p.State == models.PolicyStateStaged && p.IsConfirmedInitiator(actor.ID) {
		return Allow()
	}
	if p.State == models.PolicyStateDiscussed {
		return Allow()
	}
	return Deny("")
}

func (g Guard) PolicyProposalSolve(actor *models.User, p *models.Policy) Decision {
	if !authenticated(actor) {
		return Deny("")
	}
	if p.IsConfirmedInitiator(actor.ID) {
		return Allow()
	}
	return Deny("")
}

// TargetComment blocks two consecutive comments by the same author on
// one thread: the latest comment decides, not a counter.
func (g Guard) TargetComment(actor *models.User, threadAuthorID int, latest *models.Comment) Decision {
	if !authenticated(actor) {
		return Deny("")
	}

	if latest == nil && threadAuthorID == actor.ID {
		return Deny("Comment not possible: please wait for another user to comment.")
	}
	if latest != nil && latest.UserID == actor.ID {
		return Deny("Comment not possible: please wait for another user to comment.")
	}

	return Allow()
}

func (g Guard) CanLike(actor *models.User, comment *models.Comment) Decision {
	if !authenticated(actor) {
		return Deny("")
	}
	if comment.UserID == actor.ID {
		return Deny("")
	}
	return Allow()
}

// IsLikeable rejects likes on policies that left the active process.
func (g Guard) IsLikeable(p *models.Policy) Decision {
	if p.State.In(models.StaleStates) {
		return Deny("")
	}
	return Allow()
}

// IsEditable covers comment edit and delete: superusers always, the
// author within the configured edit window.
func (g Guard) IsEditable(actor *models.User, comment *models.Comment, env Env) Decision {
	if !authenticated(actor) {
		return Deny("")
	}
	if actor.IsSuperuser {
		return Allow()
	}
	if comment.UserID != actor.ID {
		return Deny("")
	}
	if env.Now.Sub(comment.ChangedAt) > g.config.CommentEditWindow() {
		return Deny("The edit window for this comment has passed.")
	}
	return Allow()
}

// IsRevisable lets a reviewer revise their own recorded review.
func (g Guard) IsRevisable(actor *models.User, moderation *models.Moderation) Decision {
	if !authenticated(actor) {
		return Deny("")
	}
	if moderation != nil && moderation.UserID == actor.ID {
		return Allow()
	}
	return Deny("")
}
