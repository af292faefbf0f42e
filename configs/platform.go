package configs

import (
	"errors"
	"time"
)

// Platform holds the deliberation process knobs. Defaults mirror the
// values the platform has been operated with so a bare environment
// still yields a working process.
type Platform struct {
	InitiatorsCount int `env:"PLATFORM_POLICY_INITIATORS_COUNT" envDefault:"3"`

	MinModeratorVotes      int  `env:"PLATFORM_MINIMUM_MODERATOR_VOTES" envDefault:"5"`
	MinModeratorPercentage int  `env:"PLATFORM_MINIMUM_MODERATOR_PERCENTAGE" envDefault:"10"`
	AddedVotesForChallenge int  `env:"PLATFORM_MINIMUM_ADDED_VOTES_FOR_CHALLENGE" envDefault:"2"`
	AddedVotesForReview    int  `env:"PLATFORM_MINIMUM_ADDED_VOTES_FOR_REVIEW" envDefault:"2"`
	UseDiverseModeration   bool `env:"PLATFORM_USE_DIVERSE_MODERATION_TEAM" envDefault:"false"`
	MinFemaleModVotes      int  `env:"PLATFORM_MINIMUM_FEMALE_MODERATOR_VOTES" envDefault:"3"`
	MinDiverseModVotes     int  `env:"PLATFORM_MINIMUM_DIVERSE_MODERATOR_VOTES" envDefault:"2"`

	QuorumPercentage float64 `env:"PLATFORM_QUORUM_PERCENTAGE" envDefault:"0.1"`

	RelaunchMoratoriumDays int `env:"PLATFORM_POLICY_RELAUNCH_MORATORIUM_DAYS" envDefault:"180"`
	SupportMinimumDays     int `env:"PLATFORM_POLICY_SUPPORT_MINIMUM_DAYS" envDefault:"14"`
	SupportMaximumDays     int `env:"PLATFORM_POLICY_SUPPORT_MAXIMUM_DAYS" envDefault:"183"`
	SupportCooldownDays    int `env:"PLATFORM_POLICY_SUPPORT_COOLDOWN_DAYS" envDefault:"7"`
	DiscussionDays         int `env:"PLATFORM_POLICY_DISCUSSION_DAYS" envDefault:"21"`
	VotingDays             int `env:"PLATFORM_POLICY_VOTING_DAYS" envDefault:"7"`

	CommentEditSeconds int    `env:"PLATFORM_POLICY_COMMENT_EDIT_SECONDS" envDefault:"300"`
	UndoTimeoutSeconds int    `env:"PLATFORM_UNDO_TIMEOUT_SECONDS" envDefault:"900"`
	UndoSecret         string `env:"PLATFORM_UNDO_SECRET,notEmpty"`
}

func (c Platform) Validate() error {
	if c.InitiatorsCount < 1 {
		return errors.New("initiators count must be at least 1")
	}
	if c.MinModeratorVotes < 1 {
		return errors.New("minimum moderator votes must be at least 1")
	}
	if c.MinModeratorPercentage < 0 || c.MinModeratorPercentage > 100 {
		return errors.New("minimum moderator percentage must be within 0..100")
	}
	if c.QuorumPercentage < 0 || c.QuorumPercentage > 1 {
		return errors.New("quorum percentage must be within 0..1")
	}
	if c.SupportMinimumDays > c.SupportMaximumDays {
		return errors.New("support minimum days exceeds support maximum days")
	}
	if c.UndoSecret == "" {
		return errors.New("undo secret must be set")
	}
	return nil
}

func (c Platform) CommentEditWindow() time.Duration {
	return time.Duration(c.CommentEditSeconds) * time.Second
}

func (c Platform) UndoTimeout() time.Duration {
	return time.Duration(c.UndoTimeoutSeconds) * time.Second
}
