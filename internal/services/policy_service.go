package services

import (
	"time"

	"citizen_policy_platform/configs"
	"citizen_policy_platform/internal"
	"citizen_policy_platform/internal/db/models"
	"citizen_policy_platform/internal/db/repositories"
	"citizen_policy_platform/internal/policy"
	"citizen_policy_platform/internal/undo"

	"github.com/go-pg/pg/v10"
	"go.uber.org/zap"
)

// PolicyService runs lifecycle events against stored policies. It
// loads the rows the engine needs, applies the transition and its
// persistence effects in one transaction and dispatches the resulting
// notifications after commit.
type PolicyService interface {
	Create(actor *models.User, draft *models.Policy) (*models.Policy, error)
	Apply(actor *models.User, policyID int, event policy.Event, payload policy.Payload) (*policy.Outcome, error)
	DeleteWithUndo(actor *models.User, policyID int) (string, error)
	Undo(actor *models.User, policyID int, token string) (*models.Policy, error)
}

type policyService struct {
	engine               policy.Engine
	tokens               undo.Generator
	policyRepository     repositories.PolicyRepository
	supporterRepository  repositories.SupporterRepository
	moderationRepository repositories.ModerationRepository
	quorumRepository     repositories.QuorumRepository
	userRepository       repositories.UserRepository
	notifier             Notifier
	logger               *zap.SugaredLogger
}

func NewPolicyService(
	config configs.Platform,
	policyRepository repositories.PolicyRepository,
	supporterRepository repositories.SupporterRepository,
	moderationRepository repositories.ModerationRepository,
	quorumRepository repositories.QuorumRepository,
	userRepository repositories.UserRepository,
	notifier Notifier,
	logger *zap.SugaredLogger,
) PolicyService {
	guard := policy.NewGuard(config)
	rules := policy.NewRules(config)

	return &policyService{
		engine:               policy.NewEngine(guard, rules),
		tokens:               undo.NewGenerator(config.UndoSecret, config.UndoTimeout()),
		policyRepository:     policyRepository,
		supporterRepository:  supporterRepository,
		moderationRepository: moderationRepository,
		quorumRepository:     quorumRepository,
		userRepository:       userRepository,
		notifier:             notifier,
		logger:               logger,
	}
}

// Create stores a fresh draft and records the author as its first
// initiator.
func (s *policyService) Create(actor *models.User, draft *models.Policy) (*models.Policy, error) {
	if actor == nil || actor.ID == 0 {
		return nil, &policy.PermissionDeniedError{}
	}

	draft.State = models.PolicyStateDraft
	draft.Slug = internal.Slugify(draft.Title)

	created, err := s.policyRepository.Create(draft)
	if err != nil {
		return nil, err
	}

	_, err = s.supporterRepository.Create(&models.Supporter{
		UserID:    actor.ID,
		PolicyID:  created.ID,
		Initiator: true,
		First:     true,
		Ack:       true,
	})
	if err != nil {
		return nil, err
	}

	return s.policyRepository.GetOne(created.ID)
}

func (s *policyService) Apply(actor *models.User, policyID int, event policy.Event, payload policy.Payload) (*policy.Outcome, error) {
	env, err := s.buildEnv()
	if err != nil {
		return nil, err
	}

	var outcome *policy.Outcome

	err = s.policyRepository.RunInTransaction(func(tx *pg.Tx) error {
		// the row lock serializes concurrent transitions on one policy;
		// the source-state assertion runs against the locked row
		p, err := s.policyRepository.GetOneForUpdate(tx, policyID)
		if err != nil {
			return err
		}

		outcome, err = s.engine.Apply(event, actor, p, payload, env)
		if err != nil {
			return err
		}

		for _, effect := range outcome.Effects {
			if err := s.applyEffect(effect, p); err != nil {
				return err
			}
		}

		if outcome.Moderation != nil {
			if err := s.saveModeration(outcome.Moderation); err != nil {
				return err
			}
		}

		_, err = s.policyRepository.Update(p)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Dispatch(outcome.Notifications)

	return outcome, nil
}

func (s *policyService) applyEffect(effect policy.Effect, p *models.Policy) error {
	switch effect {
	case policy.EffectMarkModerationsStale:
		return s.moderationRepository.MarkStale(p.ID)
	case policy.EffectPurgeUnconfirmedSupporters:
		return s.supporterRepository.DeleteUnconfirmed(p.ID)
	case policy.EffectPurgeUnconfirmedInitiators:
		return s.supporterRepository.DeleteUnconfirmedInitiators(p.ID)
	case policy.EffectSnapshotEligibleVoters:
		// the snapshot lives on the policy row and is persisted with it
		return nil
	}
	return nil
}

func (s *policyService) saveModeration(moderation *models.Moderation) error {
	if moderation.ID == 0 {
		_, err := s.moderationRepository.Create(moderation)
		return err
	}
	_, err := s.moderationRepository.Update(moderation)
	return err
}

// DeleteWithUndo deletes a closed policy and hands back a token that
// restores the pre-delete state within the undo window.
func (s *policyService) DeleteWithUndo(actor *models.User, policyID int) (string, error) {
	p, err := s.policyRepository.GetOne(policyID)
	if err != nil {
		return "", err
	}

	// capture the state before the transition mutates it
	token := s.tokens.CreateToken(actor, p)

	if _, err := s.Apply(actor, policyID, policy.EventDelete, policy.Payload{}); err != nil {
		return "", err
	}

	return token, nil
}

// Undo restores the policy to the state recorded in the token. The
// token is bound to the acting user, so only the user who performed
// the deletion can take it back.
func (s *policyService) Undo(actor *models.User, policyID int, token string) (*models.Policy, error) {
	if actor == nil || (!actor.HasPermission(models.PermPolicyDelete) && !actor.IsSuperuser) {
		return nil, &policy.PermissionDeniedError{}
	}

	priorState, err := s.tokens.ValidateToken(actor, token)
	if err != nil {
		return nil, err
	}

	p, err := s.policyRepository.GetOne(policyID)
	if err != nil {
		return nil, err
	}

	p.State = priorState
	p.ChangedAt = time.Now()

	return s.policyRepository.Update(p)
}

func (s *policyService) buildEnv() (policy.Env, error) {
	return currentEnv(s.quorumRepository, s.userRepository)
}
