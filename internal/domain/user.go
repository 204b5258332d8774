package domain

import "time"

type UserRole string

const (
	RoleAdmin      UserRole = "Admin"
	RoleSponsor    UserRole = "Sponsor"
	RoleInfluencer UserRole = "Influencer"
)

// ParseUserRole normalizes a submitted role string to one of the known roles.
func ParseUserRole(s string) (UserRole, bool) {
	switch s {
	case "Admin", "admin":
		return RoleAdmin, true
	case "Sponsor", "sponsor":
		return RoleSponsor, true
	case "Influencer", "influencer":
		return RoleInfluencer, true
	}
	return "", false
}

type User struct {
	ID                  int64      `json:"id" gorm:"primaryKey"`
	Username            string     `json:"username" validate:"required,min=3" gorm:"size:100;uniqueIndex;not null"`
	PasswordHash        string     `json:"-" gorm:"size:100;not null"`
	Role                UserRole   `json:"role" gorm:"size:50;not null"`
	FailedLoginAttempts int        `json:"-"`
	LockedUntil         *time.Time `json:"-"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}
