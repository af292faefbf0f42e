package repositories

import (
	"citizen_policy_platform/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type policyRepository struct {
	repository
}

type PolicyRepository interface {
	Create(request *models.Policy) (*models.Policy, error)
	Update(request *models.Policy) (*models.Policy, error)
	GetOne(policyID int) (*models.Policy, error)
	GetOneForUpdate(tx *pg.Tx, policyID int) (*models.Policy, error)
	GetMany(state ...models.PolicyState) ([]*models.Policy, error)
	RunInTransaction(fn func(tx *pg.Tx) error) error
}

func NewPolicyRepository(db *pg.DB) PolicyRepository {
	return &policyRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *policyRepository) Create(request *models.Policy) (*models.Policy, error) {
	_, err := r.db.Model(request).Insert()
	if err != nil {
		return nil, err
	}

	return r.GetOne(request.ID)
}

func (r *policyRepository) Update(request *models.Policy) (*models.Policy, error) {
	_, err := r.db.Model(request).WherePK().Update()
	if err != nil {
		return nil, err
	}

	return r.GetOne(request.ID)
}

func (r *policyRepository) GetOne(policyID int) (*models.Policy, error) {
	policy := &models.Policy{}

	err := r.db.Model(policy).
		Relation("Supporters").
		Relation("Supporters.User").
		Relation("Moderations").
		Relation("Moderations.User").
		Relation("Votes").
		Relation("VariantOf").
		Relation("VariantOf.Votes").
		Relation("VariantOf.Variants").
		Relation("Variants").
		Relation("Variants.Votes").
		Where("policy.id = ?", policyID).
		Select()

	return policy, err
}

// GetOneForUpdate locks the policy row for the duration of tx, then
// loads it with its relations. Concurrent transitions on the same
// policy queue up behind the lock.
func (r *policyRepository) GetOneForUpdate(tx *pg.Tx, policyID int) (*models.Policy, error) {
	policy := &models.Policy{}

	err := tx.Model(policy).
		Where("policy.id = ?", policyID).
		For("UPDATE").
		Select()
	if err != nil {
		return nil, err
	}

	err = tx.Model(policy).
		Relation("Supporters").
		Relation("Supporters.User").
		Relation("Moderations").
		Relation("Moderations.User").
		Relation("Votes").
		Relation("VariantOf").
		Relation("VariantOf.Votes").
		Relation("VariantOf.Variants").
		Relation("Variants").
		Relation("Variants.Votes").
		Where("policy.id = ?", policyID).
		Select()

	return policy, err
}

func (r *policyRepository) GetMany(state ...models.PolicyState) ([]*models.Policy, error) {
	policies := make([]*models.Policy, 0)

	err := r.db.Model(&policies).
		Relation("Supporters").
		Relation("Moderations").
		Relation("Votes").
		WhereGroup(func(q *pg.Query) (*pg.Query, error) {
			for _, s := range state {
				q = q.WhereOr("state = ?", s)
			}
			return q, nil
		}).
		OrderExpr("created_at ASC").
		Select()

	return policies, err
}

func (r *policyRepository) RunInTransaction(fn func(tx *pg.Tx) error) error {
	return r.db.RunInTransaction(r.db.Context(), fn)
}
