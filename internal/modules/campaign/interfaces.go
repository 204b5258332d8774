package campaign

import (
	"context"

	"adconnect/internal/domain"
)

// CampaignRepository defines the storage operations the service needs
type CampaignRepository interface {
	Create(ctx context.Context, c *domain.Campaign) error
	GetByID(ctx context.Context, id int64) (*domain.Campaign, error)
	ListBySponsor(ctx context.Context, sponsorID int64) ([]domain.Campaign, error)
	Update(ctx context.Context, c *domain.Campaign) error
	Delete(ctx context.Context, id int64) error
}
