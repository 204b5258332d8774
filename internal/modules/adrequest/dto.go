package adrequest

import (
	"adconnect/internal/domain"
	"adconnect/internal/repository"
)

type CreateAdRequestForm struct {
	InfluencerID  int64   `json:"influencer_id" form:"influencer_id" binding:"required" validate:"required,gt=0"`
	Messages      string  `json:"messages" form:"messages"`
	Requirements  string  `json:"requirements" form:"requirements"`
	PaymentAmount float64 `json:"payment_amount" form:"payment_amount" binding:"required" validate:"required,gt=0"`
}

// EditAdRequestForm overwrites every mutable field, status included.
type EditAdRequestForm struct {
	InfluencerID  int64   `json:"influencer_id" form:"influencer_id" binding:"required" validate:"required,gt=0"`
	Messages      string  `json:"messages" form:"messages"`
	Requirements  string  `json:"requirements" form:"requirements"`
	PaymentAmount float64 `json:"payment_amount" form:"payment_amount" binding:"required" validate:"required,gt=0"`
	Status        string  `json:"status" form:"status" binding:"required"`
}

// RespondForm is the influencer's answer: accept/reject plus an optional
// payment counter. A nil PaymentAmount keeps the offered amount; zero is a
// valid counter.
type RespondForm struct {
	PaymentAmount *float64 `json:"payment_amount" form:"payment_amount"`
	Status        string   `json:"status" form:"status" binding:"required"`
}

type AdRequestResponse struct {
	ID            int64   `json:"id"`
	CampaignID    int64   `json:"campaign_id"`
	InfluencerID  int64   `json:"influencer_id"`
	Messages      string  `json:"messages"`
	Requirements  string  `json:"requirements"`
	PaymentAmount float64 `json:"payment_amount"`
	Status        string  `json:"status"`
}

func toAdRequestResponse(a *domain.AdRequest) AdRequestResponse {
	return AdRequestResponse{
		ID:            a.ID,
		CampaignID:    a.CampaignID,
		InfluencerID:  a.InfluencerID,
		Messages:      a.Messages,
		Requirements:  a.Requirements,
		PaymentAmount: a.PaymentAmount,
		Status:        string(a.Status),
	}
}

// SponsorAdRequestItem is the joined list row for the sponsor view.
type SponsorAdRequestItem struct {
	ID                 int64   `json:"id"`
	CampaignID         int64   `json:"campaign_id"`
	CampaignName       string  `json:"campaign_name"`
	InfluencerID       int64   `json:"influencer_id"`
	InfluencerUsername string  `json:"influencer_username"`
	Messages           string  `json:"messages"`
	Requirements       string  `json:"requirements"`
	PaymentAmount      float64 `json:"payment_amount"`
	Status             string  `json:"status"`
}

func toSponsorItem(row repository.SponsorAdRequestRow) SponsorAdRequestItem {
	return SponsorAdRequestItem{
		ID:                 row.ID,
		CampaignID:         row.CampaignID,
		CampaignName:       row.CampaignName,
		InfluencerID:       row.InfluencerID,
		InfluencerUsername: row.InfluencerUsername,
		Messages:           row.Messages,
		Requirements:       row.Requirements,
		PaymentAmount:      row.PaymentAmount,
		Status:             row.Status,
	}
}

// InfluencerItem is a directory entry a sponsor picks a recipient from.
type InfluencerItem struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

func toInfluencerItem(u *domain.User) InfluencerItem {
	return InfluencerItem{ID: u.ID, Username: u.Username}
}

// InfluencerDashboard is the influencer landing view: open requests plus
// per-status totals.
type InfluencerDashboard struct {
	AdRequests []AdRequestResponse `json:"ad_requests"`
	Pending    int64               `json:"pending_count"`
	Accepted   int64               `json:"accepted_count"`
	Rejected   int64               `json:"rejected_count"`
}
