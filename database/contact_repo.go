package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-site-backend/models"
)

type ContactRepo struct {
	db *gorm.DB
}

func NewContactRepo(db *gorm.DB) *ContactRepo {
	return &ContactRepo{db}
}

// Add appends a contact message to the inbox
func (r *ContactRepo) Add(ctx context.Context, contact *models.Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

// FindAll returns the whole inbox, newest first
func (r *ContactRepo) FindAll(ctx context.Context) ([]models.Contact, error) {
	var contacts []models.Contact
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&contacts).Error
	return contacts, err
}
