package repository

import (
	"context"
	"time"

	"adconnect/internal/domain"

	"gorm.io/gorm"
)

type AdRequestRepository struct {
	db *gorm.DB
}

func NewAdRequestRepository(db *gorm.DB) *AdRequestRepository {
	return &AdRequestRepository{db: db}
}

// SponsorAdRequestRow is an ad request joined with the names a sponsor's
// list view needs.
type SponsorAdRequestRow struct {
	ID                 int64     `gorm:"column:id"`
	CampaignID         int64     `gorm:"column:campaign_id"`
	CampaignName       string    `gorm:"column:campaign_name"`
	InfluencerID       int64     `gorm:"column:influencer_id"`
	InfluencerUsername string    `gorm:"column:influencer_username"`
	Messages           string    `gorm:"column:messages"`
	Requirements       string    `gorm:"column:requirements"`
	PaymentAmount      float64   `gorm:"column:payment_amount"`
	Status             string    `gorm:"column:status"`
	CreatedAt          time.Time `gorm:"column:created_at"`
}

func (r *AdRequestRepository) Create(ctx context.Context, a *domain.AdRequest) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AdRequestRepository) GetByID(ctx context.Context, id int64) (*domain.AdRequest, error) {
	var a domain.AdRequest
	tx := r.db.WithContext(ctx).First(&a, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &a, nil
}

// ListBySponsor returns every ad request whose parent campaign belongs to
// the sponsor, joined with campaign and influencer names.
func (r *AdRequestRepository) ListBySponsor(ctx context.Context, sponsorID int64) ([]SponsorAdRequestRow, error) {
	var rows []SponsorAdRequestRow
	tx := r.db.WithContext(ctx).
		Table("ad_requests").
		Select(`ad_requests.id, ad_requests.campaign_id, campaigns.name AS campaign_name,
			ad_requests.influencer_id, users.username AS influencer_username,
			ad_requests.messages, ad_requests.requirements,
			ad_requests.payment_amount, ad_requests.status, ad_requests.created_at`).
		Joins("JOIN campaigns ON campaigns.id = ad_requests.campaign_id").
		Joins("LEFT JOIN users ON users.id = ad_requests.influencer_id").
		Where("campaigns.sponsor_id = ?", sponsorID).
		Order("ad_requests.created_at DESC").
		Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

func (r *AdRequestRepository) ListByInfluencer(ctx context.Context, influencerID int64) ([]domain.AdRequest, error) {
	var requests []domain.AdRequest
	tx := r.db.WithContext(ctx).
		Where("influencer_id = ?", influencerID).
		Order("created_at DESC").
		Find(&requests)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return requests, nil
}

func (r *AdRequestRepository) Update(ctx context.Context, a *domain.AdRequest) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *AdRequestRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.AdRequest{}, id).Error
}

func (r *AdRequestRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	tx := r.db.WithContext(ctx).Model(&domain.AdRequest{}).Count(&count)
	return count, tx.Error
}

// CountByStatusForInfluencer feeds the influencer dashboard summary.
func (r *AdRequestRepository) CountByStatusForInfluencer(ctx context.Context, influencerID int64) (map[domain.AdRequestStatus]int64, error) {
	type statusCount struct {
		Status string `gorm:"column:status"`
		Total  int64  `gorm:"column:total"`
	}

	var rows []statusCount
	tx := r.db.WithContext(ctx).
		Table("ad_requests").
		Select("status, COUNT(*) AS total").
		Where("influencer_id = ?", influencerID).
		Group("status").
		Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	counts := make(map[domain.AdRequestStatus]int64, len(rows))
	for _, row := range rows {
		counts[domain.AdRequestStatus(row.Status)] = row.Total
	}
	return counts, nil
}
