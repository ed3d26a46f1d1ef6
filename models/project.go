package models

import "time"

// Project is a portfolio entry owned by a user
type Project struct {
	ID          uint      `json:"id" db:"id" gorm:"primaryKey"`
	Title       string    `json:"title" db:"title" gorm:"size:100;not null"`
	Description string    `json:"description" db:"description" gorm:"type:text;not null"`
	ImageURL    *string   `json:"image_url,omitempty" db:"image_url" gorm:"size:200"`
	GithubURL   *string   `json:"github_url,omitempty" db:"github_url" gorm:"size:200"`
	UserID      uint      `json:"user_id" db:"user_id" gorm:"not null;index"`
	CreatedAt   time.Time `json:"created_at" db:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	Comments    []Comment `json:"comments,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
	Likes       []Like    `json:"likes,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
}
