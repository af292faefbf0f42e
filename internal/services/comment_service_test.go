package services

import (
	"testing"

	"citizen_policy_platform/internal/db/models"
	mock_repositories "citizen_policy_platform/internal/db/repositories/mocks"
	"citizen_policy_platform/internal/policy"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type commentServiceMocks struct {
	commentRepo    *mock_repositories.MockCommentRepository
	policyRepo     *mock_repositories.MockPolicyRepository
	moderationRepo *mock_repositories.MockModerationRepository
	quorumRepo     *mock_repositories.MockQuorumRepository
	userRepo       *mock_repositories.MockUserRepository
}

func newCommentServiceForTest(ctrl *gomock.Controller) (CommentService, commentServiceMocks) {
	m := commentServiceMocks{
		commentRepo:    mock_repositories.NewMockCommentRepository(ctrl),
		policyRepo:     mock_repositories.NewMockPolicyRepository(ctrl),
		moderationRepo: mock_repositories.NewMockModerationRepository(ctrl),
		quorumRepo:     mock_repositories.NewMockQuorumRepository(ctrl),
		userRepo:       mock_repositories.NewMockUserRepository(ctrl),
	}

	service := NewCommentService(
		testPlatformConfig(),
		m.commentRepo,
		m.policyRepo,
		m.moderationRepo,
		m.quorumRepo,
		m.userRepo,
	)

	return service, m
}

func policyComment(commentID, authorID, policyID int) *models.Comment {
	return &models.Comment{
		ID:         commentID,
		UserID:     authorID,
		TargetType: models.CommentTargetPolicy,
		TargetID:   policyID,
		Text:       "well argued",
	}
}

func TestLike_ActivePolicyCounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newCommentServiceForTest(ctrl)
	comment := policyComment(5, 2, 1)

	m.commentRepo.EXPECT().GetOne(5).Return(comment, nil)
	m.policyRepo.EXPECT().GetOne(1).Return(testPolicy(models.PolicyStateValidated), nil)
	m.commentRepo.EXPECT().Like(5, 9).Return(nil)
	m.commentRepo.EXPECT().Update(comment).Return(comment, nil)

	err := service.Like(&models.User{ID: 9, IsActive: true}, 5)

	assert.NoError(t, err)
	assert.Equal(t, 1, comment.LikesCount)
}

func TestLike_RetiredPolicyRefused(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newCommentServiceForTest(ctrl)
	comment := policyComment(5, 2, 1)

	for _, state := range models.StaleStates {
		m.commentRepo.EXPECT().GetOne(5).Return(comment, nil)
		m.policyRepo.EXPECT().GetOne(1).Return(testPolicy(state), nil)

		err := service.Like(&models.User{ID: 9, IsActive: true}, 5)

		assert.True(t, policy.IsPermissionDenied(err), "state %s", state)
	}
}

func TestLike_ModerationThreadChecksParentPolicy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newCommentServiceForTest(ctrl)
	comment := &models.Comment{
		ID:         5,
		UserID:     2,
		TargetType: models.CommentTargetModeration,
		TargetID:   7,
	}

	m.commentRepo.EXPECT().GetOne(5).Return(comment, nil)
	m.moderationRepo.EXPECT().GetOne(7).Return(&models.Moderation{ID: 7, PolicyID: 1}, nil)
	m.policyRepo.EXPECT().GetOne(1).Return(testPolicy(models.PolicyStateClosed), nil)

	err := service.Like(&models.User{ID: 9, IsActive: true}, 5)

	assert.True(t, policy.IsPermissionDenied(err))
}

func TestLike_OwnCommentRefused(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newCommentServiceForTest(ctrl)
	comment := policyComment(5, 9, 1)

	m.commentRepo.EXPECT().GetOne(5).Return(comment, nil)
	m.policyRepo.EXPECT().GetOne(1).Return(testPolicy(models.PolicyStateValidated), nil)

	err := service.Like(&models.User{ID: 9, IsActive: true}, 5)

	assert.True(t, policy.IsPermissionDenied(err))
}
