package adrequest

import (
	"context"
	"errors"

	"adconnect/internal/domain"
	"adconnect/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	adRequests AdRequestRepository
	campaigns  CampaignReader
	users      UserReader
}

func NewService(adRequests AdRequestRepository, campaigns CampaignReader, users UserReader) *Service {
	return &Service{
		adRequests: adRequests,
		campaigns:  campaigns,
		users:      users,
	}
}

/* -------- Sponsor side -------- */

func (s *Service) ListForSponsor(ctx context.Context, sponsorID int64) ([]repository.SponsorAdRequestRow, error) {
	return s.adRequests.ListBySponsor(ctx, sponsorID)
}

// ListInfluencers returns every influencer a sponsor can address an ad
// request to.
func (s *Service) ListInfluencers(ctx context.Context) ([]domain.User, error) {
	return s.users.ListByRole(ctx, domain.RoleInfluencer)
}

// CreateForCampaign attaches a new ad request to one of the sponsor's own
// campaigns. The initial status is always Pending regardless of input.
func (s *Service) CreateForCampaign(ctx context.Context, sponsorID, campaignID int64, form CreateAdRequestForm) (*domain.AdRequest, error) {
	if err := s.checkCampaignOwned(ctx, sponsorID, campaignID); err != nil {
		return nil, err
	}
	if err := s.checkInfluencer(ctx, form.InfluencerID); err != nil {
		return nil, err
	}

	a := &domain.AdRequest{
		CampaignID:    campaignID,
		InfluencerID:  form.InfluencerID,
		Messages:      form.Messages,
		Requirements:  form.Requirements,
		PaymentAmount: form.PaymentAmount,
		Status:        domain.AdRequestPending,
	}

	if err := s.adRequests.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// GetOwnedBySponsor loads an ad request and verifies the parent campaign
// belongs to the acting sponsor.
func (s *Service) GetOwnedBySponsor(ctx context.Context, sponsorID, id int64) (*domain.AdRequest, error) {
	a, err := s.adRequests.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := s.checkCampaignOwned(ctx, sponsorID, a.CampaignID); err != nil {
		return nil, err
	}
	return a, nil
}

// UpdateBySponsor overwrites every mutable field. The sponsor may set any
// defined status directly; only influencer responses are transition-checked.
func (s *Service) UpdateBySponsor(ctx context.Context, sponsorID, id int64, form EditAdRequestForm) (*domain.AdRequest, error) {
	a, err := s.GetOwnedBySponsor(ctx, sponsorID, id)
	if err != nil {
		return nil, err
	}

	status, ok := domain.ParseAdRequestStatus(form.Status)
	if !ok {
		return nil, ErrInvalidStatus
	}

	if form.InfluencerID != a.InfluencerID {
		if err := s.checkInfluencer(ctx, form.InfluencerID); err != nil {
			return nil, err
		}
	}

	a.InfluencerID = form.InfluencerID
	a.Messages = form.Messages
	a.Requirements = form.Requirements
	a.PaymentAmount = form.PaymentAmount
	a.Status = status

	if err := s.adRequests.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) DeleteBySponsor(ctx context.Context, sponsorID, id int64) error {
	if _, err := s.GetOwnedBySponsor(ctx, sponsorID, id); err != nil {
		return err
	}
	return s.adRequests.Delete(ctx, id)
}

/* -------- Influencer side -------- */

func (s *Service) ListForInfluencer(ctx context.Context, influencerID int64) ([]domain.AdRequest, error) {
	return s.adRequests.ListByInfluencer(ctx, influencerID)
}

func (s *Service) DashboardForInfluencer(ctx context.Context, influencerID int64) (*InfluencerDashboard, error) {
	requests, err := s.adRequests.ListByInfluencer(ctx, influencerID)
	if err != nil {
		return nil, err
	}

	counts, err := s.adRequests.CountByStatusForInfluencer(ctx, influencerID)
	if err != nil {
		return nil, err
	}

	items := make([]AdRequestResponse, 0, len(requests))
	for i := range requests {
		items = append(items, toAdRequestResponse(&requests[i]))
	}

	return &InfluencerDashboard{
		AdRequests: items,
		Pending:    counts[domain.AdRequestPending],
		Accepted:   counts[domain.AdRequestAccepted],
		Rejected:   counts[domain.AdRequestRejected],
	}, nil
}

// Respond lets the targeted influencer accept or reject a pending request
// and counter the payment amount. Requests addressed to someone else are
// rejected outright.
func (s *Service) Respond(ctx context.Context, influencerID, id int64, form RespondForm) (*domain.AdRequest, error) {
	a, err := s.adRequests.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if a.InfluencerID != influencerID {
		return nil, ErrNotRecipient
	}

	status, ok := domain.ParseAdRequestStatus(form.Status)
	if !ok {
		return nil, ErrInvalidStatus
	}
	if !a.Status.CanTransitionTo(status) {
		return nil, ErrInvalidTransition
	}

	if form.PaymentAmount != nil {
		a.PaymentAmount = *form.PaymentAmount
	}
	a.Status = status

	if err := s.adRequests.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

/* -------- helpers -------- */

func (s *Service) checkCampaignOwned(ctx context.Context, sponsorID, campaignID int64) error {
	c, err := s.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCampaignNotFound
		}
		return err
	}
	if c.SponsorID != sponsorID {
		return ErrNotCampaignOwner
	}
	return nil
}

func (s *Service) checkInfluencer(ctx context.Context, userID int64) error {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidInfluencer
		}
		return err
	}
	if u.Role != domain.RoleInfluencer {
		return ErrInvalidInfluencer
	}
	return nil
}
