package models

import "time"

type CommentTargetType string

const (
	CommentTargetPolicy     CommentTargetType = "policy"
	CommentTargetModeration CommentTargetType = "moderation"
)

type Comment struct {
	ID     int   `json:"id" pg:",pk"`
	UserID int   `json:"user_id" pg:",notnull"`
	User   *User `json:"user" pg:"rel:has-one"`

	TargetType CommentTargetType `json:"target_type" pg:",notnull"`
	TargetID   int               `json:"target_id" pg:",notnull"`

	Text       string `json:"text"`
	LikesCount int    `json:"likes_count" pg:",use_zero"`

	CreatedAt time.Time `json:"created_at" pg:"default:now()"`
	ChangedAt time.Time `json:"changed_at" pg:"default:now()"`
}

type Like struct {
	ID        int       `json:"id" pg:",pk"`
	UserID    int       `json:"user_id" pg:",notnull,unique:user_comment"`
	CommentID int       `json:"comment_id" pg:",notnull,unique:user_comment"`
	CreatedAt time.Time `json:"created_at" pg:"default:now()"`
}
