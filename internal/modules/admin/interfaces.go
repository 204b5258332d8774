package admin

import (
	"context"

	"adconnect/internal/domain"
)

// UserCounter — aggregate user counts for the dashboard
type UserCounter interface {
	CountAll(ctx context.Context) (int64, error)
	CountByRole(ctx context.Context, role domain.UserRole) (int64, error)
}

// CampaignCounter — total campaigns
type CampaignCounter interface {
	CountAll(ctx context.Context) (int64, error)
}

// AdRequestCounter — total ad requests
type AdRequestCounter interface {
	CountAll(ctx context.Context) (int64, error)
}
