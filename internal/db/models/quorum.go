package models

import "time"

// Quorum rows form an append-only log of support thresholds; the
// current quorum is always the most recently created row.
type Quorum struct {
	ID        int       `json:"id" pg:",pk"`
	Value     int       `json:"value" pg:",notnull,use_zero"`
	CreatedAt time.Time `json:"created_at" pg:"default:now()"`
}
