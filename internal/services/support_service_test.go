package services

import (
	"testing"

	"citizen_policy_platform/internal/db/models"
	mock_repositories "citizen_policy_platform/internal/db/repositories/mocks"
	"citizen_policy_platform/internal/policy"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type supportServiceMocks struct {
	policyRepo    *mock_repositories.MockPolicyRepository
	supporterRepo *mock_repositories.MockSupporterRepository
	quorumRepo    *mock_repositories.MockQuorumRepository
	userRepo      *mock_repositories.MockUserRepository
	notifier      *fakeNotifier
}

func newSupportServiceForTest(ctrl *gomock.Controller) (SupportService, supportServiceMocks) {
	m := supportServiceMocks{
		policyRepo:    mock_repositories.NewMockPolicyRepository(ctrl),
		supporterRepo: mock_repositories.NewMockSupporterRepository(ctrl),
		quorumRepo:    mock_repositories.NewMockQuorumRepository(ctrl),
		userRepo:      mock_repositories.NewMockUserRepository(ctrl),
		notifier:      &fakeNotifier{},
	}

	service := NewSupportService(
		testPlatformConfig(),
		m.policyRepo,
		m.supporterRepo,
		m.quorumRepo,
		m.userRepo,
		m.notifier,
		zap.NewNop().Sugar(),
	)

	return service, m
}

func TestInvite_FoundingGroupAlreadyComplete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newSupportServiceForTest(ctrl)
	p := testPolicy(models.PolicyStateStaged)

	m.policyRepo.EXPECT().GetOne(1).Return(p, nil)
	m.quorumRepo.EXPECT().Current().Return(5, nil)
	m.userRepo.EXPECT().CountModerators().Return(10, nil)
	m.userRepo.EXPECT().CountActive().Return(50, nil)

	_, err := service.Invite(&models.User{ID: 1, IsActive: true}, 1, 42)

	assert.True(t, policy.IsPermissionDenied(err))
}

func TestInvite_PendingInviteeGetsNotified(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newSupportServiceForTest(ctrl)
	p := testPolicy(models.PolicyStateStaged)

	// an incomplete founding group: drop one confirmed initiator
	p.Supporters = p.Supporters[:2]

	m.policyRepo.EXPECT().GetOne(1).Return(p, nil)
	m.quorumRepo.EXPECT().Current().Return(5, nil)
	m.userRepo.EXPECT().CountModerators().Return(10, nil)
	m.userRepo.EXPECT().CountActive().Return(50, nil)
	m.supporterRepo.EXPECT().Create(gomock.Any()).DoAndReturn(
		func(supporter *models.Supporter) (*models.Supporter, error) {
			assert.Equal(t, 42, supporter.UserID)
			assert.True(t, supporter.Initiator)
			assert.False(t, supporter.Ack)
			return supporter, nil
		})

	_, err := service.Invite(&models.User{ID: 1, IsActive: true}, 1, 42)

	assert.NoError(t, err)
	assert.Len(t, m.notifier.dispatched, 1)
	assert.Equal(t, []int{42}, m.notifier.dispatched[0].UserIDs)
}

func TestAcknowledge_ConfirmsPendingInvitation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newSupportServiceForTest(ctrl)
	p := testPolicy(models.PolicyStateStaged)
	pending := &models.Supporter{UserID: 42, PolicyID: 1, Initiator: true}

	m.supporterRepo.EXPECT().GetOne(1, 42).Return(pending, nil)
	m.supporterRepo.EXPECT().Update(pending).Return(pending, nil)
	m.policyRepo.EXPECT().GetOne(1).Return(p, nil)

	supporter, err := service.Acknowledge(&models.User{ID: 42, Name: "Robin", IsActive: true}, 1)

	assert.NoError(t, err)
	assert.True(t, supporter.Ack)
	assert.Len(t, m.notifier.dispatched, 1)
}

func TestAcknowledge_NothingPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newSupportServiceForTest(ctrl)

	m.supporterRepo.EXPECT().GetOne(1, 42).Return(nil, nil)

	_, err := service.Acknowledge(&models.User{ID: 42, IsActive: true}, 1)
	assert.True(t, policy.IsPermissionDenied(err))
}

func TestSupport_OnlyWhileGatheringSupport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newSupportServiceForTest(ctrl)
	p := testPolicy(models.PolicyStateVoted)

	m.policyRepo.EXPECT().GetOne(1).Return(p, nil)

	_, err := service.Support(&models.User{ID: 42, IsActive: true}, 1, true)
	assert.True(t, policy.IsPermissionDenied(err))
}

func TestSupport_CreatesConfirmedSupporter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newSupportServiceForTest(ctrl)
	p := testPolicy(models.PolicyStateValidated)

	m.policyRepo.EXPECT().GetOne(1).Return(p, nil)
	m.supporterRepo.EXPECT().Create(gomock.Any()).DoAndReturn(
		func(supporter *models.Supporter) (*models.Supporter, error) {
			assert.True(t, supporter.Ack)
			assert.False(t, supporter.Initiator)
			assert.False(t, supporter.Public)
			return supporter, nil
		})

	_, err := service.Support(&models.User{ID: 42, IsActive: true}, 1, false)
	assert.NoError(t, err)
}

func TestRetract_AuthorCannotWithdraw(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newSupportServiceForTest(ctrl)
	p := testPolicy(models.PolicyStateValidated)

	m.policyRepo.EXPECT().GetOne(1).Return(p, nil)
	m.supporterRepo.EXPECT().GetOne(1, 1).Return(p.Supporters[0], nil)

	err := service.Retract(&models.User{ID: 1, IsActive: true}, 1)
	assert.True(t, policy.IsPermissionDenied(err))
}

func TestRetract_SupporterRemovedAndAuthorNotified(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newSupportServiceForTest(ctrl)
	p := testPolicy(models.PolicyStateValidated)
	supporter := &models.Supporter{UserID: 42, PolicyID: 1, Ack: true}
	p.Supporters = append(p.Supporters, supporter)

	m.policyRepo.EXPECT().GetOne(1).Return(p, nil)
	m.supporterRepo.EXPECT().GetOne(1, 42).Return(supporter, nil)
	m.supporterRepo.EXPECT().Delete(supporter).Return(nil)

	err := service.Retract(&models.User{ID: 42, Name: "Robin", IsActive: true}, 1)

	assert.NoError(t, err)
	assert.Len(t, m.notifier.dispatched, 1)
	assert.Equal(t, []int{1}, m.notifier.dispatched[0].UserIDs)
}
