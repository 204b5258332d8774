package campaign

import (
	"context"
	"errors"
	"time"

	"adconnect/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	campaigns CampaignRepository
}

func NewService(campaigns CampaignRepository) *Service {
	return &Service{campaigns: campaigns}
}

func (s *Service) ListForSponsor(ctx context.Context, sponsorID int64) ([]domain.Campaign, error) {
	return s.campaigns.ListBySponsor(ctx, sponsorID)
}

func (s *Service) Create(ctx context.Context, sponsorID int64, form CampaignForm) (*domain.Campaign, error) {
	start, end, err := parseDates(form.StartDate, form.EndDate)
	if err != nil {
		return nil, err
	}

	c := &domain.Campaign{
		Name:        form.Name,
		Description: form.Description,
		StartDate:   start,
		EndDate:     end,
		Budget:      form.Budget,
		Visibility:  form.Visibility == "public",
		SponsorID:   sponsorID,
	}

	if err := s.campaigns.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// GetOwned loads a campaign and verifies it belongs to the acting sponsor.
// Every sponsor-side read-one and mutation goes through it.
func (s *Service) GetOwned(ctx context.Context, sponsorID, id int64) (*domain.Campaign, error) {
	c, err := s.campaigns.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if c.SponsorID != sponsorID {
		return nil, ErrNotOwner
	}
	return c, nil
}

func (s *Service) Update(ctx context.Context, sponsorID, id int64, form CampaignForm) (*domain.Campaign, error) {
	c, err := s.GetOwned(ctx, sponsorID, id)
	if err != nil {
		return nil, err
	}

	start, end, err := parseDates(form.StartDate, form.EndDate)
	if err != nil {
		return nil, err
	}

	c.Name = form.Name
	c.Description = form.Description
	c.StartDate = start
	c.EndDate = end
	c.Budget = form.Budget
	c.Visibility = form.Visibility == "public"

	if err := s.campaigns.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Delete removes the campaign row only; ad requests pointing at it stay.
func (s *Service) Delete(ctx context.Context, sponsorID, id int64) error {
	if _, err := s.GetOwned(ctx, sponsorID, id); err != nil {
		return err
	}
	return s.campaigns.Delete(ctx, id)
}

func parseDates(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := time.Parse(dateLayout, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDate
	}
	end, err := time.Parse(dateLayout, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDate
	}
	return start, end, nil
}
