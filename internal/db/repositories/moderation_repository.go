package repositories

import (
	"citizen_policy_platform/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type moderationRepository struct {
	repository
}

type ModerationRepository interface {
	Create(request *models.Moderation) (*models.Moderation, error)
	Update(request *models.Moderation) (*models.Moderation, error)
	GetOne(moderationID int) (*models.Moderation, error)
	GetCurrentByUser(policyID, userID int) (*models.Moderation, error)
	MarkStale(policyID int) error
}

func NewModerationRepository(db *pg.DB) ModerationRepository {
	return &moderationRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *moderationRepository) Create(request *models.Moderation) (*models.Moderation, error) {
	_, err := r.db.Model(request).Insert()
	if err != nil {
		return nil, err
	}

	return request, nil
}

func (r *moderationRepository) Update(request *models.Moderation) (*models.Moderation, error) {
	_, err := r.db.Model(request).WherePK().Update()
	if err != nil {
		return nil, err
	}

	return request, nil
}

func (r *moderationRepository) GetOne(moderationID int) (*models.Moderation, error) {
	moderation := &models.Moderation{}

	err := r.db.Model(moderation).
		Where("id = ?", moderationID).
		Select()

	return moderation, err
}

func (r *moderationRepository) GetCurrentByUser(policyID, userID int) (*models.Moderation, error) {
	moderation := &models.Moderation{}

	err := r.db.Model(moderation).
		Where("policy_id = ?", policyID).
		Where("user_id = ?", userID).
		Where("stale = FALSE").
		Select()
	if err == pg.ErrNoRows {
		return nil, nil
	}

	return moderation, err
}

func (r *moderationRepository) MarkStale(policyID int) error {
	_, err := r.db.Model((*models.Moderation)(nil)).
		Set("stale = TRUE").
		Where("policy_id = ?", policyID).
		Update()
	return err
}
