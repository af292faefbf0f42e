package models

import "time"

// Supporter joins a user to a policy. The founding group is flagged
// initiator; the original author additionally carries first.
type Supporter struct {
	ID       int   `json:"id" pg:",pk"`
	UserID   int   `json:"user_id" pg:",notnull,unique:user_policy"`
	PolicyID int   `json:"policy_id" pg:",notnull,unique:user_policy"`
	User     *User `json:"user" pg:"rel:has-one"`

	// whether this supporter has acknowledged the invitation
	Ack       bool `json:"ack" pg:",use_zero"`
	Initiator bool `json:"initiator" pg:",use_zero"`
	Public    bool `json:"public" pg:",default:true,use_zero"`
	First     bool `json:"first" pg:",use_zero"`

	CreatedAt time.Time `json:"created_at" pg:"default:now()"`
}
