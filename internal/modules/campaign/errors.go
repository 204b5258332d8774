package campaign

import "errors"

var (
	ErrNotFound    = errors.New("campaign not found")
	ErrNotOwner    = errors.New("campaign belongs to another sponsor")
	ErrInvalidDate = errors.New("invalid date format")
)
