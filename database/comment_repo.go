package database

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-site-backend/models"
)

type CommentRepo struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) *CommentRepo {
	return &CommentRepo{db}
}

// FindByID returns a comment by its ID, or nil if absent
func (r *CommentRepo) FindByID(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).First(&comment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// FindByProject returns a project's comments in posting order
func (r *CommentRepo) FindByProject(ctx context.Context, projectID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

// FindAll returns every comment across all projects, newest first
func (r *CommentRepo) FindAll(ctx context.Context) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&comments).Error
	return comments, err
}

// Add inserts a new comment into the database
func (r *CommentRepo) Add(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// UpdateContent replaces a comment's content in place. The creation
// timestamp is left untouched.
func (r *CommentRepo) UpdateContent(ctx context.Context, id uint, content string) error {
	return r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("id = ?", id).
		Update("content", content).Error
}

// Delete removes a comment from the database by id
func (r *CommentRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Comment{}, id).Error
}
