package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"adconnect/internal/config"
	"adconnect/internal/database"
	"adconnect/internal/middleware"
	"adconnect/internal/modules/admin"
	"adconnect/internal/modules/adrequest"
	"adconnect/internal/modules/auth"
	"adconnect/internal/modules/campaign"
	jwtsvc "adconnect/internal/pkg/jwt"
	"adconnect/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	campaignRepo := repository.NewCampaignRepository(db)
	adRequestRepo := repository.NewAdRequestRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	authService := auth.NewService(userRepo, refreshTokenRepo, j, cfg.RefreshTokenPepper, cfg.RefreshTTL)
	authHandler := auth.NewHandler(authService, auth.CookieOptions{
		Secure:   cfg.CookieSecure,
		SameSite: parseSameSite(cfg.CookieSameSite),
		Path:     cfg.CookiePath,
		MaxAge:   int(cfg.RefreshTTL.Seconds()),
	})

	adminService := admin.NewService(userRepo, campaignRepo, adRequestRepo)
	adminHandler := admin.NewHandler(adminService)

	campaignService := campaign.NewService(campaignRepo)
	campaignHandler := campaign.NewHandler(campaignService)

	adRequestService := adrequest.NewService(adRequestRepo, campaignRepo, userRepo)
	adRequestHandler := adrequest.NewHandler(adRequestService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	r.GET("/", landing)
	r.GET("/healthz", landing)

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
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

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

func landing(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "adconnect",
		"status":  "ok",
	})
}

func parseSameSite(v string) http.SameSite {
	switch v {
	case "None", "none":
		return http.SameSiteNoneMode
	case "Strict", "strict":
		return http.SameSiteStrictMode
	default:
		return http.SameSiteLaxMode
	}
}
