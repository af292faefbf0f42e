package policy

import (
	"testing"
	"time"

	"citizen_policy_platform/internal/db/models"

	"github.com/stretchr/testify/assert"
)

func testEngine() Engine {
	config := testConfig()
	return NewEngine(NewGuard(config), NewRules(config))
}

func TestApply_UnknownEvent(t *testing.T) {
	e := testEngine()

	_, err := e.Apply("teleport", member(1), testPolicy(models.PolicyStateDraft), Payload{}, testEnv())
	assert.Error(t, err)
}

func TestApply_WrongSourceStateIsFatal(t *testing.T) {
	e := testEngine()

	_, err := e.Apply(EventStage, member(1), testPolicy(models.PolicyStateVoted), Payload{}, testEnv())

	var invalid *InvalidStateTransitionError
	assert.ErrorAs(t, err, &invalid)
	assert.Equal(t, EventStage, invalid.Event)
	assert.Equal(t, models.PolicyStateVoted, invalid.State)
}

func TestApply_GuardRefusalLeavesPolicyUntouched(t *testing.T) {
	e := testEngine()
	p := testPolicy(models.PolicyStateDraft)

	_, err := e.Apply(EventStage, member(9), p, Payload{}, testEnv())

	assert.True(t, IsPermissionDenied(err))
	assert.Equal(t, models.PolicyStateDraft, p.State)
	assert.Nil(t, p.StagedAt)
}

func TestApply_Stage(t *testing.T) {
	e := testEngine()
	p := testPolicy(models.PolicyStateDraft)
	env := testEnv()

	outcome, err := e.Apply(EventStage, member(1), p, Payload{}, env)

	assert.NoError(t, err)
	assert.Equal(t, models.PolicyStateStaged, outcome.State)
	assert.NotNil(t, p.StagedAt)
	assert.Nil(t, p.ReopenedAt)
	assert.Equal(t, env.Now, p.ChangedAt)
}

func TestApply_StageAfterChallengeRestartsReviewHistory(t *testing.T) {
	e := testEngine()
	p := testPolicy(models.PolicyStateDraft)
	challengedAt := time.Now().Add(-time.Hour)
	p.ChallengedAt = &challengedAt

	_, err := e.Apply(EventStage, member(1), p, Payload{}, testEnv())

	assert.NoError(t, err)
	assert.NotNil(t, p.ReopenedAt)
}

func TestApply_Submit(t *testing.T) {
	e := testEngine()
	p := testPolicy(models.PolicyStateStaged)

	outcome, err := e.Apply(EventSubmit, member(1), p, Payload{}, testEnv())

	assert.NoError(t, err)
	assert.Equal(t, models.PolicyStateSubmitted, p.State)
	assert.Contains(t, outcome.Effects, EffectPurgeUnconfirmedInitiators)
	assert.Contains(t, outcome.Effects, EffectMarkModerationsStale)
	assert.NotEmpty(t, outcome.Notifications)
}

func TestApply_EvaluateRecordsReview(t *testing.T) {
	e := testEngine()
	p := testPolicy(models.PolicyStateSubmitted)

	outcome, err := e.Apply(EventEvaluate, moderator(10), p, Payload{
		ModerationVote: models.ModerationVoteYes,
		ModerationText: "sound proposal",
	}, testEnv())

	assert.NoError(t, err)
	assert.Equal(t, models.PolicyStateSubmitted, outcome.State)
	assert.NotNil(t, outcome.Moderation)
	assert.Equal(t, models.ModerationVoteYes, outcome.Moderation.Vote)
	assert.Len(t, p.Moderations, 1)
}

func TestApply_EvaluateRequestInfoInvalidates(t *testing.T) {
	e := testEngine()
	p := testPolicy(models.PolicyStateSubmitted)

	outcome, err := e.Apply(EventEvaluate, moderator(10), p, Payload{
		ModerationVote: models.ModerationVoteRequestInfo,
		ModerationText: "please detail the funding",
	}, testEnv())

	assert.NoError(t, err)
	assert.Equal(t, models.PolicyStateInvalidated, outcome.State)
}

func TestApply_FinalEvaluationAdvancesToValidated(t *testing.T) {
	e := testEngine()
	p := testPolicy(models.PolicyStateSubmitted)
	addYesReviews(p, 10, 4)

	outcome, err := e.Apply(EventEvaluate, moderator(14), p, Payload{
		ModerationVote: models.ModerationVoteYes,
	}, testEnv())

	assert.NoError(t, err)
	assert.Equal(t, models.PolicyStateValidated, outcome.State)
	assert.NotNil(t, p.ValidatedAt)
	assert.Contains(t, outcome.Effects, EffectPurgeUnconfirmedSupporters)
}

func TestApply_EvaluationsWithNoMajorityDoNotAdvance(t *testing.T) {
	e := testEngine()
	p := testPolicy(models.PolicyStateSubmitted)

	now := time.Now()
	for i := 10; i < 14; i++ {
		p.Moderations = append(p.Moderations, &models.Moderation{
			UserID: i, Vote: models.ModerationVoteNo, ChangedAt: now, User: &models.User{ID: i},
		})
	}

	outcome, err := e.Apply(EventEvaluate, moderator(14), p, Payload{
		ModerationVote: models.ModerationVoteYes,
	}, testEnv())

	assert.NoError(t, err)
	assert.Equal(t, models.PolicyStateSubmitted, outcome.State)
	assert.Nil(t, p.ValidatedAt)
}

func TestApply_Reject(t *testing.T) {
	e := testEngine()
	p := testPolicy(models.PolicyStateSubmitted)

	outcome, err := e.Apply(EventReject, moderator(10), p, Payload{}, testEnv())

	assert.NoError(t, err)
	assert.Equal(t, models.PolicyStateRejected, p.State)
	assert.NotNil(t, p.RejectedAt)
	assert.Contains(t, outcome.Effects, EffectMarkModerationsStale)
}

func TestApply_ChallengeStampsBothTimestamps(t *testing.T) {
	e := testEngine()
	p := testPolicy(models.PolicyStateRejected)

	_, err := e.Apply(EventChallenge, member(1), p, Payload{}, testEnv())

	assert.NoError(t, err)
	assert.Equal(t, models.PolicyStateChallenged, p.State)
	assert.NotNil(t, p.ChallengedAt)
	assert.NotNil(t, p.ReopenedAt)
}

func TestApply_DiscussRequiresQuorum(t *testing.T) {
	e := testEngine()
	p := testPolicy(models.PolicyStateValidated)
	env := testEnv()
	env.Quorum = 3

	_, err := e.Apply(EventDiscuss, member(1), p, Payload{}, env)

	assert.NoError(t, err)
	assert.Equal(t, models.PolicyStateDiscussed, p.State)
	assert.NotNil(t, p.WentInDiscussionAt)
}

func TestApply_ConcludeSnapshotsEligibleVoters(t *testing.T) {
	e := testEngine()
	p := testPolicy(models.PolicyStateVoted)
	wentInVoteAt := time.Now().Add(-8 * 24 * time.Hour)
	p.WentInVoteAt = &wentInVoteAt

	env := testEnv()
	env.ActiveUserCount = 123

	outcome, err := e.Apply(EventConclude, moderator(10), p, Payload{}, env)

	assert.NoError(t, err)
	assert.Equal(t, models.PolicyStateConcluded, p.State)
	assert.Equal(t, 123, p.EligibleVoters)
	assert.Contains(t, outcome.Effects, EffectSnapshotEligibleVoters)
}

func TestApply_PublishAcceptedVote(t *testing.T) {
	e := testEngine()
	p := testPolicy(models.PolicyStateConcluded)
	p.Votes = []*models.Vote{
		{UserID: 1, Value: models.VoteValueYes},
		{UserID: 2, Value: models.VoteValueYes},
		{UserID: 3, Value: models.VoteValueNo},
	}

	_, err := e.Apply(EventPublish, member(1), p, Payload{}, testEnv())

	assert.NoError(t, err)
	assert.Equal(t, models.PolicyStatePublished, p.State)
	assert.NotNil(t, p.PublishedAt)
}

func TestApply_PublishAmbiguousTieAborts(t *testing.T) {
	e := testEngine()
	p := testPolicy(models.PolicyStateConcluded)
	p.Votes = []*models.Vote{
		{UserID: 1, Value: models.VoteValueYes},
		{UserID: 2, Value: models.VoteValueYes},
	}
	p.Variants = []*models.Policy{
		{ID: 2, Votes: []*models.Vote{
			{UserID: 3, Value: models.VoteValueYes},
			{UserID: 4, Value: models.VoteValueYes},
		}},
	}

	super := member(9)
	super.IsSuperuser = true
	super.Permissions = []models.Permission{models.PermPolicyOverride}

	_, err := e.Apply(EventPublish, super, p, Payload{}, testEnv())
	assert.ErrorIs(t, err, ErrAmbiguousOutcome)
	assert.Equal(t, models.PolicyStateConcluded, p.State)
}

func TestApply_RejectFailedVote(t *testing.T) {
	e := testEngine()
	p := testPolicy(models.PolicyStateConcluded)
	p.Votes = []*models.Vote{
		{UserID: 1, Value: models.VoteValueYes},
		{UserID: 2, Value: models.VoteValueNo},
		{UserID: 3, Value: models.VoteValueNo},
	}

	_, err := e.Apply(EventReject, moderator(10), p, Payload{}, testEnv())

	assert.NoError(t, err)
	assert.Equal(t, models.PolicyStateRejected, p.State)
	assert.NotNil(t, p.RejectedAt)
}

func TestApply_RejectCarriedVoteRefused(t *testing.T) {
	e := testEngine()
	p := testPolicy(models.PolicyStateConcluded)
	p.Votes = []*models.Vote{
		{UserID: 1, Value: models.VoteValueYes},
		{UserID: 2, Value: models.VoteValueYes},
		{UserID: 3, Value: models.VoteValueNo},
	}

	_, err := e.Apply(EventReject, moderator(10), p, Payload{}, testEnv())

	assert.True(t, IsPermissionDenied(err))
	assert.Equal(t, models.PolicyStateConcluded, p.State)
}

func TestApply_SoftLifecycle(t *testing.T) {
	e := testEngine()
	env := testEnv()
	env.Quorum = 100

	super := member(9)
	super.IsSuperuser = true
	super.Permissions = []models.Permission{models.PermPolicyClose, models.PermPolicyDelete, models.PermPolicyUnhide}

	p := testPolicy(models.PolicyStateValidated)

	_, err := e.Apply(EventClose, super, p, Payload{}, env)
	assert.NoError(t, err)
	assert.Equal(t, models.PolicyStateClosed, p.State)

	_, err = e.Apply(EventDelete, super, p, Payload{}, env)
	assert.NoError(t, err)
	assert.Equal(t, models.PolicyStateDeleted, p.State)

	_, err = e.Apply(EventUndelete, super, p, Payload{}, env)
	assert.NoError(t, err)
	assert.Equal(t, models.PolicyStateHidden, p.State)

	_, err = e.Apply(EventUnhide, super, p, Payload{}, env)
	assert.NoError(t, err)
	assert.Equal(t, models.PolicyStateDraft, p.State)
}
