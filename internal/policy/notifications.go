package policy

import "citizen_policy_platform/internal/db/models"

// Notification templates dispatched by the external notifier.
const (
	NotifyPolicySubmitted     = "policy_submitted"
	NotifyPolicyValidated     = "policy_validated"
	NotifyPolicyInvalidated   = "policy_invalidated"
	NotifyPolicyRejected      = "policy_rejected"
	NotifyPolicyChallenged    = "policy_challenged"
	NotifyPolicyInDiscussion  = "policy_in_discussion"
	NotifyPolicyInReview      = "policy_in_review"
	NotifyPolicyReviewNeeded  = "policy_review_needed"
	NotifyPolicyWentToVote    = "policy_went_to_vote"
	NotifyPolicyConcluded     = "policy_concluded"
	NotifyPolicyPublished     = "policy_published"
	NotifyPolicyClosed        = "policy_closed"
	NotifySupportInvite       = "policy_support_invite"
	NotifySupportAccepted     = "policy_support_accepted"
	NotifySupportRetracted    = "policy_support_retracted"
)

// Notification is one event for the external notifier: either a group
// of users by id, a whole role, or both. Delivery, batching and
// localization are the notifier's concern.
type Notification struct {
	UserIDs  []int
	Role     models.UserRole
	Template string
	Context  map[string]string
}

func notifyUsers(userIDs []int, template string, policy *models.Policy, description string) Notification {
	return Notification{
		UserIDs:  userIDs,
		Template: template,
		Context: map[string]string{
			"policy":      policy.Title,
			"description": description,
		},
	}
}

func notifyRole(role models.UserRole, template string, policy *models.Policy, description string) Notification {
	return Notification{
		Role:     role,
		Template: template,
		Context: map[string]string{
			"policy":      policy.Title,
			"description": description,
		},
	}
}

// initiatorIDs collects the initiators' user ids, skipping the acting
// user who needs no notification about their own action.
func initiatorIDs(policy *models.Policy, excludeUserID int) []int {
	var ids []int
	for _, s := range policy.Initiators() {
		if s.UserID == excludeUserID {
			continue
		}
		ids = append(ids, s.UserID)
	}
	return ids
}

func supporterIDs(policy *models.Policy, excludeUserID int) []int {
	var ids []int
	for _, s := range policy.Supporters {
		if s.UserID == excludeUserID {
			continue
		}
		ids = append(ids, s.UserID)
	}
	return ids
}
