package repositories

import (
	"citizen_policy_platform/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type voteRepository struct {
	repository
}

type VoteRepository interface {
	Upsert(request *models.Vote) (*models.Vote, error)
	Delete(policyID, userID int) error
	GetManyByPolicy(policyID int) ([]*models.Vote, error)
}

func NewVoteRepository(db *pg.DB) VoteRepository {
	return &voteRepository{
		repository: repository{
			db: db,
		},
	}
}

// Upsert keeps one ballot per (user, policy); a repeated vote
// overwrites value and reason.
func (r *voteRepository) Upsert(request *models.Vote) (*models.Vote, error) {
	_, err := r.db.Model(request).
		OnConflict("(user_id, policy_id) DO UPDATE").
		Set("value = EXCLUDED.value, reason = EXCLUDED.reason, changed_at = now()").
		Insert()
	if err != nil {
		return nil, err
	}

	return request, nil
}

func (r *voteRepository) Delete(policyID, userID int) error {
	_, err := r.db.Model((*models.Vote)(nil)).
		Where("policy_id = ?", policyID).
		Where("user_id = ?", userID).
		Delete()
	return err
}

func (r *voteRepository) GetManyByPolicy(policyID int) ([]*models.Vote, error) {
	votes := make([]*models.Vote, 0)

	err := r.db.Model(&votes).
		Where("policy_id = ?", policyID).
		Select()

	return votes, err
}
