package repositories

import (
	"citizen_policy_platform/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type supporterRepository struct {
	repository
}

type SupporterRepository interface {
	Create(request *models.Supporter) (*models.Supporter, error)
	Update(request *models.Supporter) (*models.Supporter, error)
	Delete(request *models.Supporter) error
	GetOne(policyID, userID int) (*models.Supporter, error)
	DeleteUnconfirmed(policyID int) error
	DeleteUnconfirmedInitiators(policyID int) error
}

func NewSupporterRepository(db *pg.DB) SupporterRepository {
	return &supporterRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *supporterRepository) Create(request *models.Supporter) (*models.Supporter, error) {
	_, err := r.db.Model(request).Insert()
	if err != nil {
		return nil, err
	}

	return request, nil
}

func (r *supporterRepository) Update(request *models.Supporter) (*models.Supporter, error) {
	_, err := r.db.Model(request).WherePK().Update()
	if err != nil {
		return nil, err
	}

	return request, nil
}

func (r *supporterRepository) Delete(request *models.Supporter) error {
	_, err := r.db.Model(request).WherePK().Delete()
	return err
}

func (r *supporterRepository) GetOne(policyID, userID int) (*models.Supporter, error) {
	supporter := &models.Supporter{}

	err := r.db.Model(supporter).
		Where("policy_id = ?", policyID).
		Where("user_id = ?", userID).
		Select()
	if err == pg.ErrNoRows {
		return nil, nil
	}

	return supporter, err
}

func (r *supporterRepository) DeleteUnconfirmed(policyID int) error {
	_, err := r.db.Model((*models.Supporter)(nil)).
		Where("policy_id = ?", policyID).
		Where("ack = FALSE").
		Delete()
	return err
}

func (r *supporterRepository) DeleteUnconfirmedInitiators(policyID int) error {
	_, err := r.db.Model((*models.Supporter)(nil)).
		Where("policy_id = ?", policyID).
		Where("initiator = TRUE").
		Where("ack = FALSE").
		Delete()
	return err
}
