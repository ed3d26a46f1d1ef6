package models

import "time"

// User is a registered account. The password hash is never serialized.
type User struct {
	ID           uint      `json:"id" db:"id" gorm:"primaryKey"`
	Username     string    `json:"username" db:"username" gorm:"size:80;not null;uniqueIndex"`
	Email        string    `json:"email" db:"email" gorm:"size:120;not null;uniqueIndex"`
	PasswordHash string    `json:"-" db:"password_hash" gorm:"size:200;not null"`
	IsAdmin      bool      `json:"is_admin" db:"is_admin" gorm:"not null;default:false"`
	CreatedAt    time.Time `json:"created_at" db:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	Projects     []Project `json:"projects,omitempty" gorm:"foreignKey:UserID;references:ID"`
	Comments     []Comment `json:"comments,omitempty" gorm:"foreignKey:UserID;references:ID"`
}
