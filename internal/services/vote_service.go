package services

import (
	"citizen_policy_platform/internal/db/models"
	"citizen_policy_platform/internal/db/repositories"
	"citizen_policy_platform/internal/policy"
)

// VoteService records and withdraws ballots while a policy is open for
// voting.
type VoteService interface {
	Cast(actor *models.User, policyID int, value models.VoteValue, reason string) (*models.Vote, error)
	Reset(actor *models.User, policyID int) error
}

type voteService struct {
	policyRepository repositories.PolicyRepository
	voteRepository   repositories.VoteRepository
}

func NewVoteService(
	policyRepository repositories.PolicyRepository,
	voteRepository repositories.VoteRepository,
) VoteService {
	return &voteService{
		policyRepository: policyRepository,
		voteRepository:   voteRepository,
	}
}

func (s *voteService) Cast(actor *models.User, policyID int, value models.VoteValue, reason string) (*models.Vote, error) {
	p, err := s.policyRepository.GetOne(policyID)
	if err != nil {
		return nil, err
	}

	if actor == nil || actor.ID == 0 || !actor.IsActive {
		return nil, &policy.PermissionDeniedError{}
	}
	if p.State != models.PolicyStateVoted {
		return nil, &policy.PermissionDeniedError{Reason: "The policy is not open for voting."}
	}

	return s.voteRepository.Upsert(&models.Vote{
		UserID:   actor.ID,
		PolicyID: p.ID,
		Value:    value,
		Reason:   reason,
	})
}

// Reset withdraws the actor's ballot; allowed as long as the vote is
// still open.
func (s *voteService) Reset(actor *models.User, policyID int) error {
	p, err := s.policyRepository.GetOne(policyID)
	if err != nil {
		return err
	}

	if actor == nil || actor.ID == 0 {
		return &policy.PermissionDeniedError{}
	}
	if p.State != models.PolicyStateVoted {
		return &policy.PermissionDeniedError{Reason: "The policy is not open for voting."}
	}

	return s.voteRepository.Delete(policyID, actor.ID)
}
