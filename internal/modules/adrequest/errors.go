package adrequest

import "errors"

var (
	ErrNotFound          = errors.New("ad request not found")
	ErrCampaignNotFound  = errors.New("campaign not found")
	ErrNotCampaignOwner  = errors.New("campaign belongs to another sponsor")
	ErrNotRecipient      = errors.New("ad request addressed to another influencer")
	ErrInvalidInfluencer = errors.New("target user is not an influencer")
	ErrInvalidStatus     = errors.New("unknown ad request status")
	ErrInvalidTransition = errors.New("status transition not allowed")
)
