package services

import (
	"context"

	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
)

// SkillReader defines read access to the static skills list.
type SkillReader interface {
	FindAll(ctx context.Context) ([]models.Skill, error)
}

// SkillService serves the read-only skills reference data.
type SkillService struct {
	skills SkillReader
}

func NewSkillService(skills SkillReader) *SkillService {
	return &SkillService{skills: skills}
}

func (svc *SkillService) List(ctx context.Context) ([]models.Skill, error) {
	skills, err := svc.skills.FindAll(ctx)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "skills", err)
	}
	return skills, nil
}
