package main

import (
	"errors"
	"math"
	"time"

	"citizen_policy_platform/configs"
	"citizen_policy_platform/internal/db"
	"citizen_policy_platform/internal/db/models"
	"citizen_policy_platform/internal/db/repositories"
	"citizen_policy_platform/internal/di"
	"citizen_policy_platform/internal/policy"
	"citizen_policy_platform/internal/services"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

// systemActor drives the time-gated transitions on behalf of the
// platform itself.
var systemActor = &models.User{
	ID:          -1,
	Name:        "platform",
	Role:        models.UserRoleLead,
	IsSuperuser: true,
	IsActive:    true,
	Permissions: []models.Permission{
		models.PermPolicyOverride,
		models.PermPolicyClose,
		models.PermPolicyReject,
		models.PermPolicyValidate,
	},
}

func main() {
	s := gocron.NewScheduler(time.UTC)

	config, err := configs.LoadPolicyStateServiceConfig()
	logger := di.NewLogger(config.Logger)

	if err != nil {
		logger.Fatalw("failed to load config", "error", err)
	}
	logger.Info("config loaded")

	logger.Info("starting db")
	database, err := db.StartDB(config.DB, logger)
	if err != nil {
		logger.Fatalw("failed to start db", "error", err)
	}
	logger.Info("db started")

	s.Cron("10 12 * * *").Do(func() {
		logger.Info("initializing repositories and services")
		userRepository := repositories.NewUserRepository(database)
		policyRepository := repositories.NewPolicyRepository(database)
		supporterRepository := repositories.NewSupporterRepository(database)
		moderationRepository := repositories.NewModerationRepository(database)
		quorumRepository := repositories.NewQuorumRepository(database)

		notifier, err := services.NewTelegramNotifier(
			config.Notifier.Token,
			config.Notifier.ModeratorsChatID,
			config.Notifier.LeadsChatID,
			userRepository,
			logger,
		)
		if err != nil {
			logger.Fatalw("failed to create notifier", "error", err)
		}

		policyService := services.NewPolicyService(
			config.Platform,
			policyRepository,
			supporterRepository,
			moderationRepository,
			quorumRepository,
			userRepository,
			notifier,
			logger,
		)

		refreshQuorum(config.Platform, userRepository, quorumRepository, logger)
		advancePolicies(config.Platform, policyService, policyRepository, quorumRepository, userRepository, logger)
	})

	s.StartBlocking()
}

// refreshQuorum appends a new support threshold snapshot when the
// electorate size has moved it.
func refreshQuorum(
	config configs.Platform,
	userRepository repositories.UserRepository,
	quorumRepository repositories.QuorumRepository,
	logger *zap.SugaredLogger,
) {
	activeUsers, err := userRepository.CountActive()
	if err != nil {
		logger.Errorw("failed to count active users", "error", err)
		return
	}

	quorum := int(math.Round(float64(activeUsers) * config.QuorumPercentage))

	current, err := quorumRepository.Current()
	if err != nil {
		logger.Errorw("failed to get current quorum", "error", err)
		return
	}

	if quorum == current {
		return
	}

	if _, err := quorumRepository.Append(quorum); err != nil {
		logger.Errorw("failed to append quorum", "error", err)
		return
	}

	logger.Infow("quorum updated", "previous", current, "current", quorum)
}

// advancePolicies walks the time-gated states and applies whichever
// transition each policy is due for. A refused guard just means the
// policy is not due yet and is skipped quietly.
func advancePolicies(
	config configs.Platform,
	policyService services.PolicyService,
	policyRepository repositories.PolicyRepository,
	quorumRepository repositories.QuorumRepository,
	userRepository repositories.UserRepository,
	logger *zap.SugaredLogger,
) {
	policies, err := policyRepository.GetMany(
		models.PolicyStateValidated,
		models.PolicyStateDiscussed,
		models.PolicyStateVoted,
		models.PolicyStateConcluded,
	)
	if err != nil {
		logger.Errorw("failed to get policies", "error", err)
		return
	}

	quorum, err := quorumRepository.Current()
	if err != nil {
		logger.Errorw("failed to get current quorum", "error", err)
		return
	}

	totalModerators, err := userRepository.CountModerators()
	if err != nil {
		logger.Errorw("failed to count moderators", "error", err)
		return
	}

	activeUsers, err := userRepository.CountActive()
	if err != nil {
		logger.Errorw("failed to count active users", "error", err)
		return
	}

	rules := policy.NewRules(config)
	env := policy.Env{
		Quorum:          quorum,
		TotalModerators: totalModerators,
		ActiveUserCount: activeUsers,
		Now:             time.Now(),
	}

	for _, p := range policies {
		for _, event := range dueEvents(p, rules, env) {
			outcome, err := policyService.Apply(systemActor, p.ID, event, policy.Payload{})
			if err != nil {
				logDueEventError(p, event, err, logger)
				continue
			}

			logger.Infow("policy advanced", "policyID", p.ID, "event", event, "state", outcome.State)
			break
		}
	}
}

// dueEvents lists the candidate transitions for the policy's state, in
// order of preference. A policy whose phase deadline has not passed yet
// has nothing due, whatever its support count.
func dueEvents(p *models.Policy, rules policy.Rules, env policy.Env) []policy.Event {
	switch p.State {
	case models.PolicyStateValidated:
		if !rules.ReadyForNextStage(p, env) {
			return nil
		}
		if rules.ReadyToProceed(p, env) {
			return []policy.Event{policy.EventDiscuss}
		}
		return []policy.Event{policy.EventClose}

	case models.PolicyStateDiscussed:
		if !rules.ReadyForNextStage(p, env) {
			return nil
		}
		return []policy.Event{policy.EventReview}

	case models.PolicyStateVoted:
		if !rules.ReadyForNextStage(p, env) {
			return nil
		}
		return []policy.Event{policy.EventConclude}

	case models.PolicyStateConcluded:
		return []policy.Event{policy.EventPublish, policy.EventReject}
	}

	return nil
}

func logDueEventError(p *models.Policy, event policy.Event, err error, logger *zap.SugaredLogger) {
	if policy.IsPermissionDenied(err) {
		logger.Debugw("policy not due", "policyID", p.ID, "event", event, "error", err)
		return
	}

	if errors.Is(err, policy.ErrAmbiguousOutcome) {
		logger.Errorw("vote outcome is ambiguous, manual resolution needed", "policyID", p.ID)
		return
	}

	logger.Errorw("failed to advance policy", "policyID", p.ID, "event", event, "error", err)
}
