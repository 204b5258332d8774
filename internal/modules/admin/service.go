package admin

import (
	"context"

	"adconnect/internal/domain"
)

type Service struct {
	users      UserCounter
	campaigns  CampaignCounter
	adRequests AdRequestCounter
}

func NewService(users UserCounter, campaigns CampaignCounter, adRequests AdRequestCounter) *Service {
	return &Service{
		users:      users,
		campaigns:  campaigns,
		adRequests: adRequests,
	}
}

// GetDashboardStats returns platform-wide counts.
func (s *Service) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	usersCount, err := s.users.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	sponsorsCount, err := s.users.CountByRole(ctx, domain.RoleSponsor)
	if err != nil {
		return nil, err
	}

	influencersCount, err := s.users.CountByRole(ctx, domain.RoleInfluencer)
	if err != nil {
		return nil, err
	}

	campaignsCount, err := s.campaigns.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	adRequestsCount, err := s.adRequests.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		UsersCount:       usersCount,
		SponsorsCount:    sponsorsCount,
		InfluencersCount: influencersCount,
		CampaignsCount:   campaignsCount,
		AdRequestsCount:  adRequestsCount,
		// No flagging logic exists; the metric is a placeholder.
		FlaggedUsers: 0,
	}, nil
}
