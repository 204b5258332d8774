package domain

import "time"

// RefreshToken stores refresh tokens for users.
//
// Security notes:
// - We never store the raw token in DB, only its SHA-256 hash (TokenHash).
// - On refresh we rotate tokens: the old token is marked used and the new
//   one joins the same family (RotatedFrom links the chain).
// - Presenting a used or revoked token is treated as theft: the whole
//   family is revoked and ReuseDetectedAt is stamped.
type RefreshToken struct {
	ID int64 `json:"id" gorm:"primaryKey"`

	UserID int64 `json:"user_id" gorm:"index;not null"`
	User   User  `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	TokenHash string `json:"-" gorm:"size:64;uniqueIndex;not null"`
	JTI       string `json:"-" gorm:"size:36;index"`

	FamilyID    string `json:"-" gorm:"size:36;index;not null"`
	RotatedFrom *int64 `json:"-" gorm:"index"`

	CreatedAt       time.Time  `json:"created_at"`
	ExpiresAt       time.Time  `json:"expires_at" gorm:"index;not null"`
	UsedAt          *time.Time `json:"-" gorm:"index"`
	RevokedAt       *time.Time `json:"revoked_at" gorm:"index"`
	ReuseDetectedAt *time.Time `json:"-"`
}

func (t *RefreshToken) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

func (t *RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}
