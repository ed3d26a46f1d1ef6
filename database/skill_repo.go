package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-site-backend/models"
)

type SkillRepo struct {
	db *gorm.DB
}

func NewSkillRepo(db *gorm.DB) *SkillRepo {
	return &SkillRepo{db}
}

// FindAll returns all skills grouped by category, then name
func (r *SkillRepo) FindAll(ctx context.Context) ([]models.Skill, error) {
	var skills []models.Skill
	err := r.db.WithContext(ctx).Order("category ASC, name ASC").Find(&skills).Error
	return skills, err
}

// AddAll inserts a batch of skills; used by the seed mode
func (r *SkillRepo) AddAll(ctx context.Context, skills []models.Skill) error {
	if len(skills) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&skills).Error
}
