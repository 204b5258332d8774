package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"adconnect/internal/domain"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	maxFailedLoginAttempts = 5
	lockoutDuration        = 15 * time.Minute
)

type jwtService interface {
	GenerateToken(userID int64, role string) (string, error)
}

// Service contains all business logic for authentication
type Service struct {
	users              UserRepositoryInterface
	refreshTokens      RefreshTokenRepositoryInterface
	jwt                jwtService
	refreshTokenPepper string
	refreshTTL         time.Duration
}

type LoginResult struct {
	User         *domain.User
	AccessToken  string
	RefreshToken string
}

type RefreshResult struct {
	AccessToken  string
	RefreshToken string
}

func NewService(
	users UserRepositoryInterface,
	refreshTokens RefreshTokenRepositoryInterface,
	jwt jwtService,
	refreshTokenPepper string,
	refreshTTL time.Duration,
) *Service {
	return &Service{
		users:              users,
		refreshTokens:      refreshTokens,
		jwt:                jwt,
		refreshTokenPepper: refreshTokenPepper,
		refreshTTL:         refreshTTL,
	}
}

// Register creates a new user with the submitted role. Usernames are unique
// with a case-sensitive exact match.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	role, ok := domain.ParseUserRole(req.Role)
	if !ok {
		return nil, ErrInvalidRole
	}

	username := strings.TrimSpace(req.Username)
	exists, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.users.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	now := time.Now()
	if user.LockedUntil != nil && user.LockedUntil.After(now) {
		return nil, ErrAccountLocked
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		failedAttempts := user.FailedLoginAttempts + 1
		var lockedUntil *time.Time
		if failedAttempts >= maxFailedLoginAttempts {
			t := now.Add(lockoutDuration)
			lockedUntil = &t
		}
		if updateErr := s.users.UpdateLoginAttempts(ctx, user.ID, failedAttempts, lockedUntil); updateErr != nil {
			return nil, updateErr
		}
		if lockedUntil != nil {
			return nil, ErrAccountLocked
		}
		return nil, ErrInvalidCredentials
	}

	if user.FailedLoginAttempts > 0 || user.LockedUntil != nil {
		if err := s.users.UpdateLoginAttempts(ctx, user.ID, 0, nil); err != nil {
			return nil, err
		}
	}

	accessToken, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	refreshRaw, refreshHash, err := generateOpaqueRefreshToken(s.refreshTokenPepper)
	if err != nil {
		return nil, err
	}

	if err := s.refreshTokens.Create(ctx, &domain.RefreshToken{
		UserID:    user.ID,
		TokenHash: refreshHash,
		JTI:       uuid.NewString(),
		FamilyID:  uuid.NewString(),
		ExpiresAt: now.Add(s.refreshTTL),
	}); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &LoginResult{User: user, AccessToken: accessToken, RefreshToken: refreshRaw}, nil
}

// RefreshSession rotates the presented refresh token inside a transaction.
// The row is locked for the rotation so two requests racing on the same
// token cannot both pass the used check; presenting a token that was
// already rotated or revoked stamps reuse_detected_at and revokes the
// whole family.
func (s *Service) RefreshSession(ctx context.Context, refreshRaw string) (*RefreshResult, error) {
	now := time.Now()
	hash := hashTokenWithPepper(refreshRaw, s.refreshTokenPepper)
	var result *RefreshResult

	err := s.refreshTokens.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current domain.RefreshToken
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("token_hash = ?", hash).First(&current).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvalidRefreshToken
			}
			return err
		}

		if current.IsExpired(now) {
			return ErrInvalidRefreshToken
		}

		if current.UsedAt != nil || current.IsRevoked() {
			if err := tx.Model(&domain.RefreshToken{}).
				Where("id = ?", current.ID).
				Update("reuse_detected_at", now).Error; err != nil {
				return err
			}
			if err := tx.Model(&domain.RefreshToken{}).
				Where("family_id = ? AND revoked_at IS NULL", current.FamilyID).
				Update("revoked_at", now).Error; err != nil {
				return err
			}
			return ErrRefreshTokenReused
		}

		user, err := s.users.GetByID(ctx, current.UserID)
		if err != nil {
			return err
		}

		accessToken, err := s.jwt.GenerateToken(user.ID, string(user.Role))
		if err != nil {
			return err
		}

		newRaw, newHash, err := generateOpaqueRefreshToken(s.refreshTokenPepper)
		if err != nil {
			return err
		}

		if err := tx.Model(&domain.RefreshToken{}).
			Where("id = ?", current.ID).
			Updates(map[string]any{"used_at": now, "revoked_at": now}).Error; err != nil {
			return err
		}

		rotatedFrom := current.ID
		if err := tx.Create(&domain.RefreshToken{
			UserID:      current.UserID,
			TokenHash:   newHash,
			JTI:         uuid.NewString(),
			FamilyID:    current.FamilyID,
			RotatedFrom: &rotatedFrom,
			ExpiresAt:   now.Add(s.refreshTTL),
		}).Error; err != nil {
			return err
		}

		result = &RefreshResult{AccessToken: accessToken, RefreshToken: newRaw}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Logout revokes the presented refresh token. Unknown tokens are a no-op so
// logout is always safe to call.
func (s *Service) Logout(ctx context.Context, refreshRaw string) error {
	hash := hashTokenWithPepper(refreshRaw, s.refreshTokenPepper)

	token, err := s.refreshTokens.GetByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	return s.refreshTokens.Revoke(ctx, token.ID)
}

func (s *Service) GetCurrentUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

func generateOpaqueRefreshToken(pepper string) (raw string, hash string, err error) {
	buf := make([]byte, 32)
	if _, err = rand.Read(buf); err != nil {
		return "", "", err
	}
	raw = hex.EncodeToString(buf)
	hash = hashTokenWithPepper(raw, pepper)
	return raw, hash, nil
}

func hashTokenWithPepper(raw, pepper string) string {
	sum := sha256.Sum256([]byte(raw + pepper))
	return hex.EncodeToString(sum[:])
}
