package auth

import (
	"context"
	"time"

	"adconnect/internal/domain"

	"gorm.io/gorm"
)

// UserRepositoryInterface — only the methods the auth service uses
type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	UpdateLoginAttempts(ctx context.Context, userID int64, attempts int, lockedUntil *time.Time) error
}

// RefreshTokenRepositoryInterface — storage for refresh tokens
type RefreshTokenRepositoryInterface interface {
	Create(ctx context.Context, t *domain.RefreshToken) error
	GetByHash(ctx context.Context, hash string) (*domain.RefreshToken, error)
	Revoke(ctx context.Context, id int64) error
	DB() *gorm.DB // for rotation transactions
}
