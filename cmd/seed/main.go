package main

import (
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"adconnect/internal/database"
	"adconnect/internal/domain"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "adconnect.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM refresh_tokens")
	db.Exec("DELETE FROM ad_requests")
	db.Exec("DELETE FROM campaigns")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	admin := mustUser(db, "admin", "admin123", domain.RoleAdmin)
	alice := mustUser(db, "alice", "alice123", domain.RoleSponsor)
	bob := mustUser(db, "bob", "bob123", domain.RoleSponsor)
	carol := mustUser(db, "carol", "carol123", domain.RoleInfluencer)
	dave := mustUser(db, "dave", "dave123", domain.RoleInfluencer)

	_ = admin

	// ================== CAMPAIGNS ==================
	log.Println("Creating campaigns...")

	summer := &domain.Campaign{
		Name:        "Summer Promo",
		Description: "Beachwear push for the summer season",
		StartDate:   date(2025, 6, 1),
		EndDate:     date(2025, 8, 31),
		Budget:      5000,
		Visibility:  true,
		SponsorID:   alice.ID,
	}
	winter := &domain.Campaign{
		Name:        "Winter Launch",
		Description: "New outerwear line, private preview",
		StartDate:   date(2025, 11, 1),
		EndDate:     date(2026, 1, 31),
		Budget:      12000,
		Visibility:  false,
		SponsorID:   bob.ID,
	}
	for _, c := range []*domain.Campaign{summer, winter} {
		if err := db.Create(c).Error; err != nil {
			log.Fatal("campaign seed failed:", err)
		}
	}

	// ================== AD REQUESTS ==================
	log.Println("Creating ad requests...")

	requests := []*domain.AdRequest{
		{
			CampaignID:    summer.ID,
			InfluencerID:  carol.ID,
			Messages:      "Hi Carol, we'd love two reels featuring the new line.",
			Requirements:  "2 reels, 1 story, tag @brand",
			PaymentAmount: 750,
			Status:        domain.AdRequestPending,
		},
		{
			CampaignID:    summer.ID,
			InfluencerID:  dave.ID,
			Messages:      "Dave, interested in a beach shoot collab?",
			Requirements:  "1 post with swipe-up link",
			PaymentAmount: 400,
			Status:        domain.AdRequestAccepted,
		},
		{
			CampaignID:    winter.ID,
			InfluencerID:  carol.ID,
			Messages:      "Private preview access for the winter drop.",
			Requirements:  "3 posts over launch week",
			PaymentAmount: 1500,
			Status:        domain.AdRequestPending,
		},
	}
	for _, a := range requests {
		if err := db.Create(a).Error; err != nil {
			log.Fatal("ad request seed failed:", err)
		}
	}

	log.Println("Seed completed.")
}

func mustUser(db *gorm.DB, username, password string, role domain.UserRole) *domain.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("hash failed:", err)
	}

	u := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := db.Create(u).Error; err != nil {
		log.Fatal("user seed failed:", err)
	}
	return u
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
