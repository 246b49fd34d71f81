package models

import "time"

// Expense is a single expense record.
// Rows are never physically removed: IsDeleted marks a soft delete and
// every listing query filters on it. Direct lookups by id do not.
type Expense struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Description string    `gorm:"size:255" json:"description"`
	Category    string    `gorm:"size:64" json:"category"`
	IsDeleted   bool      `gorm:"index;not null;default:false" json:"isDeleted"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
