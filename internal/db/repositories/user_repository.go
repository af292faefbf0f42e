package repositories

import (
	"citizen_policy_platform/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type userRepository struct {
	repository
}

type UserRepository interface {
	Create(request *models.User) (*models.User, error)
	Update(request *models.User) (*models.User, error)
	GetOneByID(userID int) (*models.User, error)
	GetManyByRole(role models.UserRole) ([]*models.User, error)
	GetManyByPermission(permission models.Permission) ([]*models.User, error)
	CountActive() (int, error)
	CountModerators() (int, error)
}

func NewUserRepository(db *pg.DB) UserRepository {
	return &userRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *userRepository) Create(request *models.User) (*models.User, error) {
	_, err := r.db.Model(request).Insert()
	if err != nil {
		return nil, err
	}

	return r.GetOneByID(request.ID)
}

func (r *userRepository) Update(request *models.User) (*models.User, error) {
	_, err := r.db.Model(request).WherePK().Update()
	if err != nil {
		return nil, err
	}

	return r.GetOneByID(request.ID)
}

func (r *userRepository) GetOneByID(userID int) (*models.User, error) {
	user := &models.User{}

	err := r.db.Model(user).
		Where("id = ?", userID).
		Select()

	return user, err
}

func (r *userRepository) GetManyByRole(role models.UserRole) ([]*models.User, error) {
	users := make([]*models.User, 0)

	err := r.db.Model(&users).
		Where("role = ?", role).
		Select()

	return users, err
}

func (r *userRepository) GetManyByPermission(permission models.Permission) ([]*models.User, error) {
	users := make([]*models.User, 0)

	err := r.db.Model(&users).
		Where("? = ANY(permissions)", permission).
		Where("is_active = TRUE").
		Select()

	return users, err
}

func (r *userRepository) CountActive() (int, error) {
	return r.db.Model((*models.User)(nil)).
		Where("is_active = TRUE").
		Count()
}

func (r *userRepository) CountModerators() (int, error) {
	return r.db.Model((*models.User)(nil)).
		Where("is_active = TRUE").
		WhereGroup(func(q *pg.Query) (*pg.Query, error) {
			q = q.WhereOr("role = ?", models.UserRoleModerator).
				WhereOr("? = ANY(permissions)", models.PermPolicyReview)
			return q, nil
		}).
		Count()
}
