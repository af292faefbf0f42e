package services

import (
	"time"

	"citizen_policy_platform/internal/db/repositories"
	"citizen_policy_platform/internal/policy"
)

// currentEnv snapshots the platform-wide values one evaluation works
// with: the current quorum, the size of the moderation team and the
// size of the electorate.
func currentEnv(
	quorumRepository repositories.QuorumRepository,
	userRepository repositories.UserRepository,
) (policy.Env, error) {
	quorum, err := quorumRepository.Current()
	if err != nil {
		return policy.Env{}, err
	}

	totalModerators, err := userRepository.CountModerators()
	if err != nil {
		return policy.Env{}, err
	}

	activeUsers, err := userRepository.CountActive()
	if err != nil {
		return policy.Env{}, err
	}

	return policy.Env{
		Quorum:          quorum,
		TotalModerators: totalModerators,
		ActiveUserCount: activeUsers,
		Now:             time.Now(),
	}, nil
}
