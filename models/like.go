package models

import "time"

// Like marks that a user liked a project. The composite unique index is what
// makes the toggle race-safe: concurrent inserts for the same pair collapse
// into a single row.
type Like struct {
	ID        uint      `json:"id" db:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" db:"user_id" gorm:"not null;uniqueIndex:idx_likes_user_project"`
	ProjectID uint      `json:"project_id" db:"project_id" gorm:"not null;uniqueIndex:idx_likes_user_project"`
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}
