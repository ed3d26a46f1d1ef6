package database

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rpupo63/portfolio-site-backend/models"
)

type LikeRepo struct {
	db *gorm.DB
}

func NewLikeRepo(db *gorm.DB) *LikeRepo {
	return &LikeRepo{db}
}

// Toggle flips the like state for a (user, project) pair and reports the
// resulting state: true means the pair is now liked. The whole sequence runs
// in one transaction; the insert goes through ON CONFLICT DO NOTHING against
// the unique pair index, so a concurrent toggle can never leave two rows. A
// lost insert race still reports liked, since the pair ends up liked either
// way.
func (r *LikeRepo) Toggle(ctx context.Context, userID, projectID uint) (bool, error) {
	liked := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND project_id = ?", userID, projectID).
			Delete(&models.Like{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil
		}

		ins := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "project_id"}},
			DoNothing: true,
		}).Create(&models.Like{UserID: userID, ProjectID: projectID})
		if ins.Error != nil {
			return ins.Error
		}
		liked = true
		return nil
	})
	return liked, err
}

// CountForProject returns the number of likes on a project
func (r *LikeRepo) CountForProject(ctx context.Context, projectID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("project_id = ?", projectID).
		Count(&count).Error
	return count, err
}
