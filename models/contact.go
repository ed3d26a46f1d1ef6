package models

import "time"

// Contact is an append-only inbox entry from the public contact form.
type Contact struct {
	ID        uint      `json:"id" db:"id" gorm:"primaryKey"`
	Name      string    `json:"name" db:"name" gorm:"size:100;not null"`
	Email     string    `json:"email" db:"email" gorm:"size:120;not null"`
	Message   string    `json:"message" db:"message" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}
