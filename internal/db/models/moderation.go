package models

import "time"

type ModerationVote string

const (
	ModerationVoteYes         ModerationVote = "y"
	ModerationVoteNo          ModerationVote = "n"
	ModerationVoteRequestInfo ModerationVote = "r"
)

// Moderation is one reviewer's evaluation of a policy. At most one
// non-stale row exists per (user, policy); marking stale archives a
// review without losing history.
type Moderation struct {
	ID       int   `json:"id" pg:",pk"`
	UserID   int   `json:"user_id" pg:",notnull"`
	PolicyID int   `json:"policy_id" pg:",notnull"`
	User     *User `json:"user" pg:"rel:has-one"`

	Vote     ModerationVote `json:"vote" pg:"type:ModerationVote,notnull"`
	Text     string         `json:"text"`
	Blockers string         `json:"blockers"`
	Stale    bool           `json:"stale" pg:",use_zero"`

	CreatedAt time.Time `json:"created_at" pg:"default:now()"`
	ChangedAt time.Time `json:"changed_at" pg:"default:now()"`
}

// Countable reports whether the review counts toward a quota: yes/no
// reviews do, request-info reviews do not.
func (m *Moderation) Countable() bool {
	return m.Vote != ModerationVoteRequestInfo
}
