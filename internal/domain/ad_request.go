package domain

import "time"

type AdRequestStatus string

const (
	AdRequestPending  AdRequestStatus = "Pending"
	AdRequestAccepted AdRequestStatus = "Accepted"
	AdRequestRejected AdRequestStatus = "Rejected"
)

// ParseAdRequestStatus normalizes a submitted status string.
func ParseAdRequestStatus(s string) (AdRequestStatus, bool) {
	switch s {
	case "Pending", "pending":
		return AdRequestPending, true
	case "Accepted", "accepted":
		return AdRequestAccepted, true
	case "Rejected", "rejected":
		return AdRequestRejected, true
	}
	return "", false
}

// CanTransitionTo reports whether an influencer response may move the
// request from its current status to the target one. Only pending requests
// are open; accepted/rejected are terminal.
func (s AdRequestStatus) CanTransitionTo(target AdRequestStatus) bool {
	if s != AdRequestPending {
		return false
	}
	return target == AdRequestAccepted || target == AdRequestRejected
}

// AdRequest is an offer from a sponsor's campaign to a specific influencer.
type AdRequest struct {
	ID            int64           `json:"id" gorm:"primaryKey"`
	CampaignID    int64           `json:"campaign_id" validate:"required" gorm:"index;not null"`
	InfluencerID  int64           `json:"influencer_id" validate:"required" gorm:"index;not null"`
	Messages      string          `json:"messages" gorm:"type:text"`
	Requirements  string          `json:"requirements" gorm:"type:text"`
	PaymentAmount float64         `json:"payment_amount" validate:"gte=0"`
	Status        AdRequestStatus `json:"status" gorm:"size:50;not null"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
