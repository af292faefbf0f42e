package repositories

import (
	"citizen_policy_platform/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type quorumRepository struct {
	repository
}

// QuorumRepository appends threshold snapshots and reads the newest
// one; rows are never updated in place.
type QuorumRepository interface {
	Append(value int) (*models.Quorum, error)
	Current() (int, error)
}

func NewQuorumRepository(db *pg.DB) QuorumRepository {
	return &quorumRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *quorumRepository) Append(value int) (*models.Quorum, error) {
	quorum := &models.Quorum{Value: value}

	_, err := r.db.Model(quorum).Insert()
	if err != nil {
		return nil, err
	}

	return quorum, nil
}

func (r *quorumRepository) Current() (int, error) {
	quorum := &models.Quorum{}

	err := r.db.Model(quorum).
		Order("created_at DESC").
		Limit(1).
		Select()
	if err == pg.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	return quorum.Value, nil
}
