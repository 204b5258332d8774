package domain

import "time"

// Campaign is a sponsor-owned marketing initiative. Visibility is a plain
// public/private flag: true only when the submitted literal was "public".
type Campaign struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" validate:"required" gorm:"size:100;not null"`
	Description string    `json:"description" validate:"required" gorm:"type:text;not null"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Budget      float64   `json:"budget" validate:"gte=0"`
	Visibility  bool      `json:"visibility"`
	SponsorID   int64     `json:"sponsor_id" gorm:"index;not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (c *Campaign) VisibilityLabel() string {
	if c.Visibility {
		return "public"
	}
	return "private"
}
