package models

import "time"

// Course is the catalog entry an assessment belongs to. The wider catalog
// (pricing, lessons, media) is managed elsewhere; this service only needs
// existence checks and the owning relation.
type Course struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
