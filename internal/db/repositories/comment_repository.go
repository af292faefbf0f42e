package repositories

import (
	"citizen_policy_platform/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type commentRepository struct {
	repository
}

type CommentRepository interface {
	Create(request *models.Comment) (*models.Comment, error)
	Update(request *models.Comment) (*models.Comment, error)
	Delete(request *models.Comment) error
	GetOne(commentID int) (*models.Comment, error)
	GetLatest(targetType models.CommentTargetType, targetID int) (*models.Comment, error)
	Like(commentID, userID int) error
	Unlike(commentID, userID int) error
}

func NewCommentRepository(db *pg.DB) CommentRepository {
	return &commentRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *commentRepository) Create(request *models.Comment) (*models.Comment, error) {
	_, err := r.db.Model(request).Insert()
	if err != nil {
		return nil, err
	}

	return request, nil
}

func (r *commentRepository) Update(request *models.Comment) (*models.Comment, error) {
	_, err := r.db.Model(request).WherePK().Update()
	if err != nil {
		return nil, err
	}

	return request, nil
}

func (r *commentRepository) Delete(request *models.Comment) error {
	_, err := r.db.Model(request).WherePK().Delete()
	return err
}

func (r *commentRepository) GetOne(commentID int) (*models.Comment, error) {
	comment := &models.Comment{}

	err := r.db.Model(comment).
		Relation("User").
		Where("comment.id = ?", commentID).
		Select()

	return comment, err
}

func (r *commentRepository) GetLatest(targetType models.CommentTargetType, targetID int) (*models.Comment, error) {
	comment := &models.Comment{}

	err := r.db.Model(comment).
		Relation("User").
		Where("target_type = ?", targetType).
		Where("target_id = ?", targetID).
		Order("created_at DESC").
		Limit(1).
		Select()
	if err == pg.ErrNoRows {
		return nil, nil
	}

	return comment, err
}

func (r *commentRepository) Like(commentID, userID int) error {
	like := &models.Like{CommentID: commentID, UserID: userID}

	_, err := r.db.Model(like).
		OnConflict("DO NOTHING").
		Insert()
	return err
}

func (r *commentRepository) Unlike(commentID, userID int) error {
	_, err := r.db.Model((*models.Like)(nil)).
		Where("comment_id = ?", commentID).
		Where("user_id = ?", userID).
		Delete()
	return err
}
