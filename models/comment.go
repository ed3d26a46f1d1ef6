package models

import "time"

// Comment belongs to a user and a project. Edits replace the content in
// place; the creation timestamp never changes after insert.
type Comment struct {
	ID        uint      `json:"id" db:"id" gorm:"primaryKey"`
	Content   string    `json:"content" db:"content" gorm:"type:text;not null"`
	UserID    uint      `json:"user_id" db:"user_id" gorm:"not null;index"`
	ProjectID uint      `json:"project_id" db:"project_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}
