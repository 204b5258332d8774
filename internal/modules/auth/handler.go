package auth

import (
	"errors"
	"net/http"

	"adconnect/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

const refreshCookieName = "refresh_token"

// CookieOptions controls how the refresh-token cookie is issued.
type CookieOptions struct {
	Secure   bool
	SameSite http.SameSite
	Path     string
	MaxAge   int
}

// Handler manages all HTTP interactions for authentication
type Handler struct {
	service *Service
	cookies CookieOptions
}

// NewHandler creates a new auth handler with injected service
func NewHandler(service *Service, cookies CookieOptions) *Handler {
	return &Handler{
		service: service,
		cookies: cookies,
	}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/refresh", h.Refresh)
		authGroup.POST("/logout", h.Logout)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	userGroup := protected.Group("/users")
	{
		userGroup.GET("/me", h.GetMe)
	}
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrUsernameTaken):
			response.Error(c, http.StatusConflict, "USERNAME_EXISTS", "Username already exists. Please choose a different one.")
		case errors.Is(err, ErrInvalidRole):
			response.Error(c, http.StatusBadRequest, "INVALID_ROLE", "Role must be Admin, Sponsor or Influencer")
		default:
			response.Error(c, http.StatusInternalServerError, "REGISTRATION_FAILED", "Failed to register user")
		}
		return
	}

	response.SuccessMessage(c, http.StatusCreated, "Registered successfully! Please log in.", gin.H{
		"user": UserPublic{
			ID:       user.ID,
			Username: user.Username,
			Role:     string(user.Role),
		},
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Login unsuccessful. Please check username and password.")
		case errors.Is(err, ErrAccountLocked):
			response.Error(c, http.StatusUnauthorized, "ACCOUNT_LOCKED", "Account temporarily locked after repeated failures")
		default:
			response.Error(c, http.StatusInternalServerError, "LOGIN_FAILED", "Failed to login")
		}
		return
	}

	h.setRefreshCookie(c, result.RefreshToken)

	response.SuccessMessage(c, http.StatusOK, "Logged in successfully!", gin.H{
		"user": UserPublic{
			ID:       result.User.ID,
			Username: result.User.Username,
			Role:     string(result.User.Role),
		},
		"token": result.AccessToken,
	})
}

func (h *Handler) Refresh(c *gin.Context) {
	raw, err := c.Cookie(refreshCookieName)
	if err != nil || raw == "" {
		response.Error(c, http.StatusUnauthorized, "NO_REFRESH_TOKEN", "Refresh token cookie is missing")
		return
	}

	result, err := h.service.RefreshSession(c.Request.Context(), raw)
	if err != nil {
		h.clearRefreshCookie(c)
		switch {
		case errors.Is(err, ErrRefreshTokenReused):
			response.Error(c, http.StatusUnauthorized, "REFRESH_REUSED", "Refresh token reuse detected; all sessions revoked")
		case errors.Is(err, ErrInvalidRefreshToken):
			response.Error(c, http.StatusUnauthorized, "INVALID_REFRESH_TOKEN", "Refresh token is invalid or expired")
		default:
			response.Error(c, http.StatusInternalServerError, "REFRESH_FAILED", "Failed to refresh session")
		}
		return
	}

	h.setRefreshCookie(c, result.RefreshToken)

	response.Success(c, http.StatusOK, gin.H{
		"token": result.AccessToken,
	})
}

func (h *Handler) Logout(c *gin.Context) {
	if raw, err := c.Cookie(refreshCookieName); err == nil && raw != "" {
		if err := h.service.Logout(c.Request.Context(), raw); err != nil {
			response.Error(c, http.StatusInternalServerError, "LOGOUT_FAILED", "Failed to logout")
			return
		}
	}

	h.clearRefreshCookie(c)
	response.SuccessMessage(c, http.StatusOK, "You have been logged out.", nil)
}

func (h *Handler) GetMe(c *gin.Context) {
	userIDAny, exists := c.Get("user_id")
	if !exists {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	user, err := h.service.GetCurrentUser(c.Request.Context(), userIDAny.(int64))
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user": gin.H{
			"id":         user.ID,
			"username":   user.Username,
			"role":       user.Role,
			"created_at": user.CreatedAt.Format("2006-01-02"),
		},
	})
}

func (h *Handler) setRefreshCookie(c *gin.Context, raw string) {
	c.SetSameSite(h.cookies.SameSite)
	c.SetCookie(refreshCookieName, raw, h.cookies.MaxAge, h.cookies.Path, "", h.cookies.Secure, true)
}

func (h *Handler) clearRefreshCookie(c *gin.Context) {
	c.SetSameSite(h.cookies.SameSite)
	c.SetCookie(refreshCookieName, "", -1, h.cookies.Path, "", h.cookies.Secure, true)
}
