package services

import (
	"citizen_policy_platform/configs"
	"citizen_policy_platform/internal/db/models"
	"citizen_policy_platform/internal/db/repositories"
	"citizen_policy_platform/internal/policy"

	"go.uber.org/zap"
)

// SupportService manages the supporter roster of a policy: the
// founding group (invited or self-applied initiators) and the plain
// supporters counted toward the quorum.
type SupportService interface {
	Invite(actor *models.User, policyID, inviteeID int) (*models.Supporter, error)
	Join(actor *models.User, policyID int) (*models.Supporter, error)
	Acknowledge(actor *models.User, policyID int) (*models.Supporter, error)
	Support(actor *models.User, policyID int, public bool) (*models.Supporter, error)
	Retract(actor *models.User, policyID int) error
}

type supportService struct {
	guard               policy.Guard
	policyRepository    repositories.PolicyRepository
	supporterRepository repositories.SupporterRepository
	quorumRepository    repositories.QuorumRepository
	userRepository      repositories.UserRepository
	notifier            Notifier
	logger              *zap.SugaredLogger
}

func NewSupportService(
	config configs.Platform,
	policyRepository repositories.PolicyRepository,
	supporterRepository repositories.SupporterRepository,
	quorumRepository repositories.QuorumRepository,
	userRepository repositories.UserRepository,
	notifier Notifier,
	logger *zap.SugaredLogger,
) SupportService {
	return &supportService{
		guard:               policy.NewGuard(config),
		policyRepository:    policyRepository,
		supporterRepository: supporterRepository,
		quorumRepository:    quorumRepository,
		userRepository:      userRepository,
		notifier:            notifier,
		logger:              logger,
	}
}

// Invite adds a user to the founding group, pending their
// acknowledgement.
func (s *supportService) Invite(actor *models.User, policyID, inviteeID int) (*models.Supporter, error) {
	p, err := s.policyRepository.GetOne(policyID)
	if err != nil {
		return nil, err
	}

	env, err := currentEnv(s.quorumRepository, s.userRepository)
	if err != nil {
		return nil, err
	}

	if decision := s.guard.PolicyInvite(actor, p, env); !decision.Allowed {
		return nil, &policy.PermissionDeniedError{Reason: decision.Reason}
	}

	if p.SupporterByUser(inviteeID) != nil {
		return nil, &policy.PermissionDeniedError{Reason: "The user already belongs to this policy."}
	}

	supporter, err := s.supporterRepository.Create(&models.Supporter{
		UserID:    inviteeID,
		PolicyID:  p.ID,
		Initiator: true,
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Dispatch([]policy.Notification{{
		UserIDs:  []int{inviteeID},
		Template: policy.NotifySupportInvite,
		Context: map[string]string{
			"policy":      p.Title,
			"description": "You were invited to join the founding group of this policy.",
		},
	}})

	return supporter, nil
}

// Join lets a user apply to the founding group of a staged policy.
func (s *supportService) Join(actor *models.User, policyID int) (*models.Supporter, error) {
	p, err := s.policyRepository.GetOne(policyID)
	if err != nil {
		return nil, err
	}

	if decision := s.guard.PolicyApply(actor, p); !decision.Allowed {
		return nil, &policy.PermissionDeniedError{Reason: decision.Reason}
	}

	supporter, err := s.supporterRepository.Create(&models.Supporter{
		UserID:    actor.ID,
		PolicyID:  p.ID,
		Initiator: true,
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Dispatch([]policy.Notification{{
		UserIDs:  firstInitiatorIDs(p),
		Template: policy.NotifySupportInvite,
		Context: map[string]string{
			"policy":      p.Title,
			"description": actor.Name + " applied to join the founding group.",
		},
	}})

	return supporter, nil
}

// Acknowledge confirms the actor's own pending membership.
func (s *supportService) Acknowledge(actor *models.User, policyID int) (*models.Supporter, error) {
	supporter, err := s.supporterRepository.GetOne(policyID, actor.ID)
	if err != nil {
		return nil, err
	}
	if supporter == nil || supporter.Ack {
		return nil, &policy.PermissionDeniedError{Reason: "There is no pending invitation to confirm."}
	}

	supporter.Ack = true
	supporter, err = s.supporterRepository.Update(supporter)
	if err != nil {
		return nil, err
	}

	p, err := s.policyRepository.GetOne(policyID)
	if err != nil {
		return nil, err
	}

	s.notifier.Dispatch([]policy.Notification{{
		UserIDs:  firstInitiatorIDs(p),
		Template: policy.NotifySupportAccepted,
		Context: map[string]string{
			"policy":      p.Title,
			"description": actor.Name + " joined the policy.",
		},
	}})

	return supporter, nil
}

// Support records a plain supporter while the policy gathers its
// quorum. Public controls whether the name appears on the policy page.
func (s *supportService) Support(actor *models.User, policyID int, public bool) (*models.Supporter, error) {
	p, err := s.policyRepository.GetOne(policyID)
	if err != nil {
		return nil, err
	}

	if p.State != models.PolicyStateValidated {
		return nil, &policy.PermissionDeniedError{Reason: "The policy is not gathering support right now."}
	}
	if actor == nil || actor.ID == 0 {
		return nil, &policy.PermissionDeniedError{}
	}
	if p.SupporterByUser(actor.ID) != nil {
		return nil, &policy.PermissionDeniedError{Reason: "You already support this policy."}
	}

	return s.supporterRepository.Create(&models.Supporter{
		UserID:   actor.ID,
		PolicyID: p.ID,
		Ack:      true,
		Public:   public,
	})
}

// Retract withdraws the actor's own support while the policy has not
// yet gone to vote. The original author cannot leave their own policy.
func (s *supportService) Retract(actor *models.User, policyID int) error {
	p, err := s.policyRepository.GetOne(policyID)
	if err != nil {
		return err
	}

	if p.State.In([]models.PolicyState{models.PolicyStateVoted, models.PolicyStateConcluded, models.PolicyStatePublished}) {
		return &policy.PermissionDeniedError{Reason: "Support can no longer be withdrawn."}
	}

	supporter, err := s.supporterRepository.GetOne(policyID, actor.ID)
	if err != nil {
		return err
	}
	if supporter == nil {
		return &policy.PermissionDeniedError{Reason: "You do not support this policy."}
	}
	if supporter.First {
		return &policy.PermissionDeniedError{Reason: "The policy author cannot withdraw."}
	}

	if err := s.supporterRepository.Delete(supporter); err != nil {
		return err
	}

	s.notifier.Dispatch([]policy.Notification{{
		UserIDs:  firstInitiatorIDs(p),
		Template: policy.NotifySupportRetracted,
		Context: map[string]string{
			"policy":      p.Title,
			"description": actor.Name + " withdrew their support.",
		},
	}})

	return nil
}

func firstInitiatorIDs(p *models.Policy) []int {
	var ids []int
	for _, supporter := range p.Initiators() {
		if supporter.First {
			ids = append(ids, supporter.UserID)
		}
	}
	return ids
}
