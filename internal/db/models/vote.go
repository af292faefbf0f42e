package models

import "time"

type VoteValue int

const (
	VoteValueNo VoteValue = iota
	VoteValueYes
	VoteValueAbstain
)

// Vote is one user's ballot on a policy, unique per (user, policy);
// changing a vote overwrites the prior value.
type Vote struct {
	ID       int `json:"id" pg:",pk"`
	UserID   int `json:"user_id" pg:",notnull,unique:user_policy_vote"`
	PolicyID int `json:"policy_id" pg:",notnull,unique:user_policy_vote"`

	Value  VoteValue `json:"value" pg:",notnull,use_zero"`
	Reason string    `json:"reason"`

	CreatedAt time.Time `json:"created_at" pg:"default:now()"`
	ChangedAt time.Time `json:"changed_at" pg:"default:now()"`
}

func (v *Vote) InFavor() bool {
	return v.Value == VoteValueYes
}

func (v *Vote) Against() bool {
	return v.Value == VoteValueNo
}

func (v *Vote) Abstained() bool {
	return v.Value == VoteValueAbstain
}
