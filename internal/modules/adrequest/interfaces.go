package adrequest

import (
	"context"

	"adconnect/internal/domain"
	"adconnect/internal/repository"
)

// AdRequestRepository defines the storage operations the service needs
type AdRequestRepository interface {
	Create(ctx context.Context, a *domain.AdRequest) error
	GetByID(ctx context.Context, id int64) (*domain.AdRequest, error)
	ListBySponsor(ctx context.Context, sponsorID int64) ([]repository.SponsorAdRequestRow, error)
	ListByInfluencer(ctx context.Context, influencerID int64) ([]domain.AdRequest, error)
	Update(ctx context.Context, a *domain.AdRequest) error
	Delete(ctx context.Context, id int64) error
	CountByStatusForInfluencer(ctx context.Context, influencerID int64) (map[domain.AdRequestStatus]int64, error)
}

// CampaignReader — parent campaign lookups for ownership checks
type CampaignReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Campaign, error)
}

// UserReader — influencer lookups for referential validation and the
// sponsor's influencer directory
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	ListByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error)
}
