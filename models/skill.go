package models

// Skill is static reference data shown on the skills page. Proficiency is
// 1-5 by convention; the storage layer does not enforce the range.
type Skill struct {
	ID          uint   `json:"id" db:"id" gorm:"primaryKey"`
	Name        string `json:"name" db:"name" gorm:"size:50;not null"`
	Category    string `json:"category" db:"category" gorm:"size:50"`
	Proficiency int    `json:"proficiency" db:"proficiency"`
}
