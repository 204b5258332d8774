package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"adconnect/internal/database"
	"adconnect/internal/middleware"
	"adconnect/internal/modules/admin"
	"adconnect/internal/modules/adrequest"
	"adconnect/internal/modules/auth"
	"adconnect/internal/modules/campaign"
	jwtsvc "adconnect/internal/pkg/jwt"
	"adconnect/internal/repository"
)

type E2ETestSuite struct {
	router *gin.Engine
	db     *gorm.DB
}

type TestResponse struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *ErrorDetail           `json:"error,omitempty"`
	Message string                 `json:"message,omitempty"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func setupTestSuite(t *testing.T) *E2ETestSuite {
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")
	require.NoError(t, database.Migrate(db), "Failed to migrate schema")

	userRepo := repository.NewUserRepository(db)
	campaignRepo := repository.NewCampaignRepository(db)
	adRequestRepo := repository.NewAdRequestRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)

	jwtService := jwtsvc.New("test_secret_key_32_characters_min", 24*time.Hour)

	authService := auth.NewService(userRepo, refreshTokenRepo, jwtService, "test-pepper", 24*time.Hour)
	authHandler := auth.NewHandler(authService, auth.CookieOptions{
		SameSite: http.SameSiteLaxMode,
		Path:     "/api/v1/auth",
		MaxAge:   86400,
	})

	adminService := admin.NewService(userRepo, campaignRepo, adRequestRepo)
	adminHandler := admin.NewHandler(adminService)

	campaignService := campaign.NewService(campaignRepo)
	campaignHandler := campaign.NewHandler(campaignService)

	adRequestService := adrequest.NewService(adRequestRepo, campaignRepo, userRepo)
	adRequestHandler := adrequest.NewHandler(adRequestService)

	router := gin.New()
	v1 := router.Group("/api/v1")
	{
		authHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(jwtService))
		{
			authHandler.RegisterProtectedRoutes(protected)

			adminGroup := protected.Group("/admin")
			adminGroup.Use(middleware.AdminOnly())
			adminHandler.RegisterRoutes(adminGroup)

			sponsorGroup := protected.Group("/sponsor")
			sponsorGroup.Use(middleware.SponsorOnly())
			campaignHandler.RegisterRoutes(sponsorGroup)
			adRequestHandler.RegisterSponsorRoutes(sponsorGroup)

			influencerGroup := protected.Group("/influencer")
			influencerGroup.Use(middleware.InfluencerOnly())
			adRequestHandler.RegisterInfluencerRoutes(influencerGroup)
		}
	}

	return &E2ETestSuite{router: router, db: db}
}

func (s *E2ETestSuite) do(t *testing.T, method, path, token string, body interface{}) (*httptest.ResponseRecorder, TestResponse) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var parsed TestResponse
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed), "body: %s", w.Body.String())
	}
	return w, parsed
}

func (s *E2ETestSuite) register(t *testing.T, username, password, role string) {
	t.Helper()
	w, _ := s.do(t, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"username": username,
		"password": password,
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, w.Code)
}

func (s *E2ETestSuite) login(t *testing.T, username, password string) string {
	t.Helper()
	w, resp := s.do(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code)
	token, _ := resp.Data["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func (s *E2ETestSuite) createCampaign(t *testing.T, token string, body gin.H) int64 {
	t.Helper()
	w, resp := s.do(t, http.MethodPost, "/api/v1/sponsor/campaigns", token, body)
	require.Equal(t, http.StatusCreated, w.Code)
	campaignData := resp.Data["campaign"].(map[string]interface{})
	return int64(campaignData["id"].(float64))
}

func TestEndToEndSponsorInfluencerFlow(t *testing.T) {
	s := setupTestSuite(t)

	// Sponsor registers and logs in
	s.register(t, "alice", "pw", "Sponsor")
	sponsorToken := s.login(t, "alice", "pw")

	// Influencer registers
	s.register(t, "ivan", "pw", "Influencer")

	// Sponsor finds the influencer through the directory
	w, resp := s.do(t, http.MethodGet, "/api/v1/sponsor/influencers", sponsorToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	directory := resp.Data["influencers"].([]interface{})
	require.Len(t, directory, 1)
	entry := directory[0].(map[string]interface{})
	assert.Equal(t, "ivan", entry["username"])
	influencerID := int64(entry["id"].(float64))

	// Sponsor creates a campaign
	campaignID := s.createCampaign(t, sponsorToken, gin.H{
		"name":        "Summer Promo",
		"description": "Beachwear push",
		"start_date":  "2025-06-01",
		"end_date":    "2025-08-31",
		"budget":      100.50,
		"visibility":  "public",
	})

	// Sponsor creates an ad request against it
	w, resp = s.do(t, http.MethodPost, fmt.Sprintf("/api/v1/sponsor/campaigns/%d/ad-requests", campaignID), sponsorToken, gin.H{
		"influencer_id":  influencerID,
		"messages":       "Two reels please",
		"requirements":   "2 reels, tag @brand",
		"payment_amount": 500.0,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	adRequestData := resp.Data["ad_request"].(map[string]interface{})
	adRequestID := int64(adRequestData["id"].(float64))
	assert.Equal(t, "Pending", adRequestData["status"])

	// Influencer logs in and sees the request
	influencerToken := s.login(t, "ivan", "pw")
	w, resp = s.do(t, http.MethodGet, "/api/v1/influencer/ad-requests", influencerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, resp.Data["ad_requests"], 1)

	// Influencer accepts with a payment counter
	w, resp = s.do(t, http.MethodPost, fmt.Sprintf("/api/v1/influencer/ad-requests/%d/respond", adRequestID), influencerToken, gin.H{
		"payment_amount": 650.0,
		"status":         "Accepted",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// Sponsor's list now shows the accepted status
	w, resp = s.do(t, http.MethodGet, "/api/v1/sponsor/ad-requests", sponsorToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := resp.Data["ad_requests"].([]interface{})
	require.Len(t, items, 1)
	item := items[0].(map[string]interface{})
	assert.Equal(t, "Accepted", item["status"])
	assert.Equal(t, 650.0, item["payment_amount"])
	assert.Equal(t, "Summer Promo", item["campaign_name"])
	assert.Equal(t, "ivan", item["influencer_username"])
}

func TestRefreshCookieReuseIsRejected(t *testing.T) {
	s := setupTestSuite(t)
	s.register(t, "alice", "pw", "Sponsor")

	body, err := json.Marshal(gin.H{"username": "alice", "password": "pw"})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var refreshCookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "refresh_token" {
			refreshCookie = c
		}
	}
	require.NotNil(t, refreshCookie)

	refresh := func(c *http.Cookie) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
		req.AddCookie(c)
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)
		return w
	}

	// first presentation rotates the token
	first := refresh(refreshCookie)
	require.Equal(t, http.StatusOK, first.Code)

	// replaying the spent cookie is rejected
	second := refresh(refreshCookie)
	assert.Equal(t, http.StatusUnauthorized, second.Code)

	var parsed TestResponse
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &parsed))
	assert.Equal(t, "REFRESH_REUSED", parsed.Error.Code)
}

func TestRoleGateBlocksWithoutMutation(t *testing.T) {
	s := setupTestSuite(t)

	s.register(t, "ivan", "pw", "Influencer")
	influencerToken := s.login(t, "ivan", "pw")

	// Influencer hits a sponsor-only mutation
	w, resp := s.do(t, http.MethodPost, "/api/v1/sponsor/campaigns", influencerToken, gin.H{
		"name":        "Should Not Exist",
		"description": "d",
		"start_date":  "2025-06-01",
		"end_date":    "2025-08-31",
		"budget":      10.0,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "FORBIDDEN", resp.Error.Code)

	// Influencer hits the admin dashboard
	w, _ = s.do(t, http.MethodGet, "/api/v1/admin/dashboard", influencerToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// No token at all
	w, _ = s.do(t, http.MethodGet, "/api/v1/sponsor/campaigns", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Nothing was written
	var count int64
	require.NoError(t, s.db.Table("campaigns").Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestDuplicateUsernameLeavesOneRow(t *testing.T) {
	s := setupTestSuite(t)

	s.register(t, "alice", "pw", "Sponsor")

	w, resp := s.do(t, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"username": "alice",
		"password": "other",
		"role":     "Influencer",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "USERNAME_EXISTS", resp.Error.Code)

	var count int64
	require.NoError(t, s.db.Table("users").Where("username = ?", "alice").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCampaignBudgetAndVisibilityPersistence(t *testing.T) {
	s := setupTestSuite(t)

	s.register(t, "alice", "pw", "Sponsor")
	token := s.login(t, "alice", "pw")

	publicID := s.createCampaign(t, token, gin.H{
		"name":        "Summer Promo",
		"description": "d",
		"start_date":  "2025-06-01",
		"end_date":    "2025-08-31",
		"budget":      100.50,
		"visibility":  "public",
	})
	// any literal other than exactly "public" is private
	capitalizedID := s.createCampaign(t, token, gin.H{
		"name":        "Other",
		"description": "d",
		"start_date":  "2025-06-01",
		"end_date":    "2025-08-31",
		"budget":      7.0,
		"visibility":  "Public",
	})

	w, resp := s.do(t, http.MethodGet, fmt.Sprintf("/api/v1/sponsor/campaigns/%d", publicID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	campaignData := resp.Data["campaign"].(map[string]interface{})
	assert.Equal(t, 100.50, campaignData["budget"])
	assert.Equal(t, "public", campaignData["visibility"])

	w, resp = s.do(t, http.MethodGet, fmt.Sprintf("/api/v1/sponsor/campaigns/%d", capitalizedID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	campaignData = resp.Data["campaign"].(map[string]interface{})
	assert.Equal(t, "private", campaignData["visibility"])
}

func TestCampaignDeleteLeavesAdRequestRows(t *testing.T) {
	s := setupTestSuite(t)

	s.register(t, "alice", "pw", "Sponsor")
	s.register(t, "ivan", "pw", "Influencer")
	token := s.login(t, "alice", "pw")

	var influencerID int64
	require.NoError(t, s.db.Table("users").Select("id").Where("username = ?", "ivan").Scan(&influencerID).Error)

	campaignID := s.createCampaign(t, token, gin.H{
		"name":        "Doomed",
		"description": "d",
		"start_date":  "2025-06-01",
		"end_date":    "2025-08-31",
		"budget":      10.0,
	})

	w, resp := s.do(t, http.MethodPost, fmt.Sprintf("/api/v1/sponsor/campaigns/%d/ad-requests", campaignID), token, gin.H{
		"influencer_id":  influencerID,
		"payment_amount": 100.0,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	adRequestID := int64(resp.Data["ad_request"].(map[string]interface{})["id"].(float64))

	w, _ = s.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/sponsor/campaigns/%d", campaignID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Campaign is gone
	var campaignCount int64
	require.NoError(t, s.db.Table("campaigns").Where("id = ?", campaignID).Count(&campaignCount).Error)
	assert.Equal(t, int64(0), campaignCount)

	// The ad request row is deliberately left behind (no cascade)
	var orphanCount int64
	require.NoError(t, s.db.Table("ad_requests").Where("id = ?", adRequestID).Count(&orphanCount).Error)
	assert.Equal(t, int64(1), orphanCount)

	// The sponsor join-based list no longer reaches it
	w, resp = s.do(t, http.MethodGet, "/api/v1/sponsor/ad-requests", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, resp.Data["ad_requests"], 0)
}

func TestInfluencerCannotRespondToForeignRequest(t *testing.T) {
	s := setupTestSuite(t)

	s.register(t, "alice", "pw", "Sponsor")
	s.register(t, "ivan", "pw", "Influencer")
	s.register(t, "mallory", "pw", "Influencer")
	sponsorToken := s.login(t, "alice", "pw")

	var influencerID int64
	require.NoError(t, s.db.Table("users").Select("id").Where("username = ?", "ivan").Scan(&influencerID).Error)

	campaignID := s.createCampaign(t, sponsorToken, gin.H{
		"name":        "Targeted",
		"description": "d",
		"start_date":  "2025-06-01",
		"end_date":    "2025-08-31",
		"budget":      10.0,
	})

	w, resp := s.do(t, http.MethodPost, fmt.Sprintf("/api/v1/sponsor/campaigns/%d/ad-requests", campaignID), sponsorToken, gin.H{
		"influencer_id":  influencerID,
		"payment_amount": 100.0,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	adRequestID := int64(resp.Data["ad_request"].(map[string]interface{})["id"].(float64))

	// A different influencer tries to answer it
	malloryToken := s.login(t, "mallory", "pw")
	w, resp = s.do(t, http.MethodPost, fmt.Sprintf("/api/v1/influencer/ad-requests/%d/respond", adRequestID), malloryToken, gin.H{
		"payment_amount": 1.0,
		"status":         "Accepted",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "AD_REQUEST_FORBIDDEN", resp.Error.Code)

	// Status is untouched
	var status string
	require.NoError(t, s.db.Table("ad_requests").Select("status").Where("id = ?", adRequestID).Scan(&status).Error)
	assert.Equal(t, "Pending", status)
}

func TestSponsorCannotTouchForeignCampaign(t *testing.T) {
	s := setupTestSuite(t)

	s.register(t, "alice", "pw", "Sponsor")
	s.register(t, "eve", "pw", "Sponsor")
	aliceToken := s.login(t, "alice", "pw")
	eveToken := s.login(t, "eve", "pw")

	campaignID := s.createCampaign(t, aliceToken, gin.H{
		"name":        "Alice Only",
		"description": "d",
		"start_date":  "2025-06-01",
		"end_date":    "2025-08-31",
		"budget":      10.0,
	})

	w, resp := s.do(t, http.MethodPut, fmt.Sprintf("/api/v1/sponsor/campaigns/%d", campaignID), eveToken, gin.H{
		"name":        "Hijacked",
		"description": "d",
		"start_date":  "2025-06-01",
		"end_date":    "2025-08-31",
		"budget":      1.0,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "CAMPAIGN_FORBIDDEN", resp.Error.Code)

	w, _ = s.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/sponsor/campaigns/%d", campaignID), eveToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	var name string
	require.NoError(t, s.db.Table("campaigns").Select("name").Where("id = ?", campaignID).Scan(&name).Error)
	assert.Equal(t, "Alice Only", name)
}

func TestAdminDashboardCounts(t *testing.T) {
	s := setupTestSuite(t)

	s.register(t, "root", "pw", "Admin")
	s.register(t, "alice", "pw", "Sponsor")
	s.register(t, "ivan", "pw", "Influencer")

	sponsorToken := s.login(t, "alice", "pw")
	s.createCampaign(t, sponsorToken, gin.H{
		"name":        "Counted",
		"description": "d",
		"start_date":  "2025-06-01",
		"end_date":    "2025-08-31",
		"budget":      10.0,
	})

	adminToken := s.login(t, "root", "pw")
	w, resp := s.do(t, http.MethodGet, "/api/v1/admin/dashboard", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3.0, resp.Data["users_count"])
	assert.Equal(t, 1.0, resp.Data["campaigns_count"])
	assert.Equal(t, 0.0, resp.Data["ad_requests_count"])
	assert.Equal(t, 0.0, resp.Data["flagged_users_count"])
}
