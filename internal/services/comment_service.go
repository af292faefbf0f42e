package services

import (
	"fmt"
	"time"

	"citizen_policy_platform/configs"
	"citizen_policy_platform/internal/db/models"
	"citizen_policy_platform/internal/db/repositories"
	"citizen_policy_platform/internal/policy"
)

// CommentService handles the discussion threads attached to policies
// and moderation reviews.
type CommentService interface {
	Create(actor *models.User, targetType models.CommentTargetType, targetID, threadAuthorID int, text string) (*models.Comment, error)
	Edit(actor *models.User, commentID int, text string) (*models.Comment, error)
	Delete(actor *models.User, commentID int) error
	Like(actor *models.User, commentID int) error
	Unlike(actor *models.User, commentID int) error
}

type commentService struct {
	guard                policy.Guard
	commentRepository    repositories.CommentRepository
	policyRepository     repositories.PolicyRepository
	moderationRepository repositories.ModerationRepository
	quorumRepository     repositories.QuorumRepository
	userRepository       repositories.UserRepository
}

func NewCommentService(
	config configs.Platform,
	commentRepository repositories.CommentRepository,
	policyRepository repositories.PolicyRepository,
	moderationRepository repositories.ModerationRepository,
	quorumRepository repositories.QuorumRepository,
	userRepository repositories.UserRepository,
) CommentService {
	return &commentService{
		guard:                policy.NewGuard(config),
		commentRepository:    commentRepository,
		policyRepository:     policyRepository,
		moderationRepository: moderationRepository,
		quorumRepository:     quorumRepository,
		userRepository:       userRepository,
	}
}

// parentPolicy resolves the policy a comment thread hangs off, either
// directly or through the reviewed moderation.
func (s *commentService) parentPolicy(comment *models.Comment) (*models.Policy, error) {
	switch comment.TargetType {
	case models.CommentTargetPolicy:
		return s.policyRepository.GetOne(comment.TargetID)

	case models.CommentTargetModeration:
		moderation, err := s.moderationRepository.GetOne(comment.TargetID)
		if err != nil {
			return nil, err
		}
		return s.policyRepository.GetOne(moderation.PolicyID)
	}

	return nil, fmt.Errorf("unknown comment target type %q", comment.TargetType)
}

// Create appends a comment to a thread. Two consecutive comments by
// the same author are not allowed; the thread author opens the thread.
func (s *commentService) Create(actor *models.User, targetType models.CommentTargetType, targetID, threadAuthorID int, text string) (*models.Comment, error) {
	latest, err := s.commentRepository.GetLatest(targetType, targetID)
	if err != nil {
		return nil, err
	}

	if decision := s.guard.TargetComment(actor, threadAuthorID, latest); !decision.Allowed {
		return nil, &policy.PermissionDeniedError{Reason: decision.Reason}
	}

	return s.commentRepository.Create(&models.Comment{
		UserID:     actor.ID,
		TargetType: targetType,
		TargetID:   targetID,
		Text:       text,
	})
}

func (s *commentService) Edit(actor *models.User, commentID int, text string) (*models.Comment, error) {
	comment, err := s.commentRepository.GetOne(commentID)
	if err != nil {
		return nil, err
	}

	env, err := currentEnv(s.quorumRepository, s.userRepository)
	if err != nil {
		return nil, err
	}

	if decision := s.guard.IsEditable(actor, comment, env); !decision.Allowed {
		return nil, &policy.PermissionDeniedError{Reason: decision.Reason}
	}

	comment.Text = text
	comment.ChangedAt = time.Now()

	return s.commentRepository.Update(comment)
}

func (s *commentService) Delete(actor *models.User, commentID int) error {
	comment, err := s.commentRepository.GetOne(commentID)
	if err != nil {
		return err
	}

	env, err := currentEnv(s.quorumRepository, s.userRepository)
	if err != nil {
		return err
	}

	if decision := s.guard.IsEditable(actor, comment, env); !decision.Allowed {
		return &policy.PermissionDeniedError{Reason: decision.Reason}
	}

	return s.commentRepository.Delete(comment)
}

func (s *commentService) Like(actor *models.User, commentID int) error {
	comment, err := s.commentRepository.GetOne(commentID)
	if err != nil {
		return err
	}

	p, err := s.parentPolicy(comment)
	if err != nil {
		return err
	}
	if decision := s.guard.IsLikeable(p); !decision.Allowed {
		return &policy.PermissionDeniedError{Reason: decision.Reason}
	}

	if decision := s.guard.CanLike(actor, comment); !decision.Allowed {
		return &policy.PermissionDeniedError{Reason: decision.Reason}
	}

	if err := s.commentRepository.Like(commentID, actor.ID); err != nil {
		return err
	}

	comment.LikesCount++
	_, err = s.commentRepository.Update(comment)
	return err
}

func (s *commentService) Unlike(actor *models.User, commentID int) error {
	comment, err := s.commentRepository.GetOne(commentID)
	if err != nil {
		return err
	}

	if actor == nil || actor.ID == 0 {
		return &policy.PermissionDeniedError{}
	}

	if err := s.commentRepository.Unlike(commentID, actor.ID); err != nil {
		return err
	}

	if comment.LikesCount > 0 {
		comment.LikesCount--
	}
	_, err = s.commentRepository.Update(comment)
	return err
}
