package main

import (
	"testing"
	"time"

	"citizen_policy_platform/configs"
	"citizen_policy_platform/internal/db/models"
	"citizen_policy_platform/internal/policy"

	"github.com/stretchr/testify/assert"
)

func testRules() policy.Rules {
	return policy.NewRules(configs.Platform{
		InitiatorsCount:        3,
		MinModeratorVotes:      5,
		MinModeratorPercentage: 10,
		RelaunchMoratoriumDays: 180,
		SupportMinimumDays:     14,
		SupportMaximumDays:     183,
		SupportCooldownDays:    7,
		DiscussionDays:         21,
		VotingDays:             7,
	})
}

func testEnv(now time.Time) policy.Env {
	return policy.Env{Quorum: 3, TotalModerators: 10, ActiveUserCount: 50, Now: now}
}

func daysAgo(now time.Time, n int) *time.Time {
	ts := now.Add(-time.Duration(n) * 24 * time.Hour)
	return &ts
}

func supporters(n int) []*models.Supporter {
	s := make([]*models.Supporter, 0, n)
	for i := 1; i <= n; i++ {
		s = append(s, &models.Supporter{UserID: i, Ack: true})
	}
	return s
}

func TestDueEvents_ValidatedWithQuorumAfterCooldownGoesToDiscussion(t *testing.T) {
	now := time.Now()
	p := &models.Policy{
		State:       models.PolicyStateValidated,
		ValidatedAt: daysAgo(now, 22),
		Supporters:  supporters(3),
	}

	assert.Equal(t, []policy.Event{policy.EventDiscuss}, dueEvents(p, testRules(), testEnv(now)))
}

func TestDueEvents_ValidatedWithQuorumBeforeCooldownNotDue(t *testing.T) {
	now := time.Now()
	p := &models.Policy{
		State:       models.PolicyStateValidated,
		ValidatedAt: daysAgo(now, 15),
		Supporters:  supporters(3),
	}

	assert.Nil(t, dueEvents(p, testRules(), testEnv(now)))
}

func TestDueEvents_ValidatedWithoutQuorumKeepsCollectingSupport(t *testing.T) {
	now := time.Now()
	p := &models.Policy{
		State:       models.PolicyStateValidated,
		ValidatedAt: daysAgo(now, 1),
		Supporters:  supporters(1),
	}

	assert.Nil(t, dueEvents(p, testRules(), testEnv(now)))
}

func TestDueEvents_ValidatedWithoutQuorumClosesAfterSupportWindow(t *testing.T) {
	now := time.Now()
	p := &models.Policy{
		State:       models.PolicyStateValidated,
		ValidatedAt: daysAgo(now, 184),
		Supporters:  supporters(1),
	}

	assert.Equal(t, []policy.Event{policy.EventClose}, dueEvents(p, testRules(), testEnv(now)))
}

func TestDueEvents_DiscussedGoesToReviewAfterDiscussionDays(t *testing.T) {
	now := time.Now()
	p := &models.Policy{
		State:              models.PolicyStateDiscussed,
		WentInDiscussionAt: daysAgo(now, 22),
	}

	assert.Equal(t, []policy.Event{policy.EventReview}, dueEvents(p, testRules(), testEnv(now)))
}

func TestDueEvents_DiscussedNotDueWhileDiscussionRuns(t *testing.T) {
	now := time.Now()
	p := &models.Policy{
		State:              models.PolicyStateDiscussed,
		WentInDiscussionAt: daysAgo(now, 5),
	}

	assert.Nil(t, dueEvents(p, testRules(), testEnv(now)))
}

func TestDueEvents_VotedConcludesAfterVotingDays(t *testing.T) {
	now := time.Now()
	p := &models.Policy{
		State:        models.PolicyStateVoted,
		WentInVoteAt: daysAgo(now, 8),
	}

	assert.Equal(t, []policy.Event{policy.EventConclude}, dueEvents(p, testRules(), testEnv(now)))
}

func TestDueEvents_VotedNotDueWhileVoteRuns(t *testing.T) {
	now := time.Now()
	p := &models.Policy{
		State:        models.PolicyStateVoted,
		WentInVoteAt: daysAgo(now, 2),
	}

	assert.Nil(t, dueEvents(p, testRules(), testEnv(now)))
}

func TestDueEvents_ConcludedTriesPublishThenReject(t *testing.T) {
	now := time.Now()
	p := &models.Policy{State: models.PolicyStateConcluded}

	assert.Equal(t, []policy.Event{policy.EventPublish, policy.EventReject}, dueEvents(p, testRules(), testEnv(now)))
}

func TestDueEvents_OtherStatesHaveNoDueEvents(t *testing.T) {
	now := time.Now()
	for _, state := range []models.PolicyState{
		models.PolicyStateDraft,
		models.PolicyStateStaged,
		models.PolicyStateSubmitted,
		models.PolicyStatePublished,
	} {
		p := &models.Policy{State: state}
		assert.Nil(t, dueEvents(p, testRules(), testEnv(now)), "state %s", state)
	}
}
