package campaign

import (
	"adconnect/internal/domain"
)

const dateLayout = "2006-01-02"

// CampaignForm carries both create and edit payloads; edits overwrite every
// mutable field, so the shapes are identical.
type CampaignForm struct {
	Name        string  `json:"name" form:"name" binding:"required" validate:"required,max=100"`
	Description string  `json:"description" form:"description" binding:"required" validate:"required"`
	StartDate   string  `json:"start_date" form:"start_date" binding:"required" validate:"required"`
	EndDate     string  `json:"end_date" form:"end_date" binding:"required" validate:"required"`
	Budget      float64 `json:"budget" form:"budget" binding:"required" validate:"required,gt=0"`
	// Visibility is the submitted literal; the campaign is public only when
	// it equals "public".
	Visibility string `json:"visibility" form:"visibility"`
}

type CampaignResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Budget      float64 `json:"budget"`
	Visibility  string  `json:"visibility"`
	SponsorID   int64   `json:"sponsor_id"`
}

func toCampaignResponse(c *domain.Campaign) CampaignResponse {
	return CampaignResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		StartDate:   c.StartDate.Format(dateLayout),
		EndDate:     c.EndDate.Format(dateLayout),
		Budget:      c.Budget,
		Visibility:  c.VisibilityLabel(),
		SponsorID:   c.SponsorID,
	}
}
