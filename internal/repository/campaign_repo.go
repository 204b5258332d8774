package repository

import (
	"context"

	"adconnect/internal/domain"

	"gorm.io/gorm"
)

type CampaignRepository struct {
	db *gorm.DB
}

func NewCampaignRepository(db *gorm.DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

func (r *CampaignRepository) Create(ctx context.Context, c *domain.Campaign) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CampaignRepository) GetByID(ctx context.Context, id int64) (*domain.Campaign, error) {
	var c domain.Campaign
	tx := r.db.WithContext(ctx).First(&c, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &c, nil
}

func (r *CampaignRepository) ListBySponsor(ctx context.Context, sponsorID int64) ([]domain.Campaign, error) {
	var campaigns []domain.Campaign
	tx := r.db.WithContext(ctx).
		Where("sponsor_id = ?", sponsorID).
		Order("created_at DESC").
		Find(&campaigns)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return campaigns, nil
}

func (r *CampaignRepository) Update(ctx context.Context, c *domain.Campaign) error {
	return r.db.WithContext(ctx).Save(c).Error
}

// Delete removes only the campaign row. Ad requests keep their campaign_id;
// there is no cascade.
func (r *CampaignRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Campaign{}, id).Error
}

func (r *CampaignRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	tx := r.db.WithContext(ctx).Model(&domain.Campaign{}).Count(&count)
	return count, tx.Error
}
