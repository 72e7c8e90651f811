package main

import (
	"log"
	"os"

	"github.com/dresspalette/backend/internal/config"
	"github.com/dresspalette/backend/internal/database"
	"github.com/dresspalette/backend/internal/models"
	"github.com/dresspalette/backend/internal/utils"
	"github.com/google/uuid"
)

func main() {
	cfg := config.Load()
	database.Connect(cfg)
	database.Migrate()

	seedAdmin()
	seedCatalog()
}

func seedAdmin() {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")

	if adminEmail == "" || adminPassword == "" {
		log.Fatal("Missing environment variables: ADMIN_EMAIL, ADMIN_PASSWORD")
	}

	var admin models.User
	result := database.DB.Where("email = ?", adminEmail).First(&admin)
	if result.Error == nil {
		log.Println("Admin user already exists:", admin.Email)
		return
	}

	passwordHash, err := utils.HashPassword(adminPassword)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	admin = models.User{
		ID:           uuid.New(),
		Email:        adminEmail,
		PasswordHash: passwordHash,
		FullName:     "Studio Admin",
		Role:         models.RoleAdmin,
	}

	if err := database.DB.Create(&admin).Error; err != nil {
		log.Fatal("Failed to create admin:", err)
	}

	log.Println("Admin user created:", admin.Email)
}

// seedCatalog inserts a starter catalog so a fresh deployment has something
// to show. Skipped entirely when any dress already exists.
func seedCatalog() {
	var count int64
	if err := database.DB.Model(&models.Dress{}).Count(&count).Error; err != nil {
		log.Fatal("Failed to count dresses:", err)
	}
	if count > 0 {
		log.Println("Catalog already seeded, skipping")
		return
	}

	price := func(v float64) *float64 { return &v }

	dresses := []models.Dress{
		{
			Title:       "Ivory Silk Bridal Gown",
			Description: "Hand-beaded silk gown with a cathedral train.",
			Category:    models.DressBridal,
			Price:       price(1450),
			RentalPrice: price(220),
			Sizes:       models.StringList{"S", "M", "L"},
			Colors:      models.StringList{"ivory"},
			Available:   true,
			Featured:    true,
		},
		{
			Title:       "Emerald Cocktail Dress",
			Description: "Knee-length satin dress for evening events.",
			Category:    models.DressParty,
			RentalPrice: price(85),
			Sizes:       models.StringList{"XS", "S", "M", "L"},
			Colors:      models.StringList{"emerald", "navy"},
			Available:   true,
		},
		{
			Title:       "Embroidered Anarkali",
			Description: "Full-flare anarkali with zari embroidery.",
			Category:    models.DressEthnic,
			Price:       price(680),
			RentalPrice: price(120),
			Sizes:       models.StringList{"M", "L", "XL"},
			Colors:      models.StringList{"maroon", "gold"},
			Available:   true,
			Featured:    true,
		},
	}

	services := []models.MakeupService{
		{
			Title:           "Bridal Makeup Package",
			Description:     "Full bridal look with trial session included.",
			Category:        models.MakeupBridal,
			Price:           350,
			DurationMinutes: 180,
			Available:       true,
		},
		{
			Title:           "Party Glam",
			Description:     "Evening-ready look with lashes.",
			Category:        models.MakeupParty,
			Price:           90,
			DurationMinutes: 60,
			Available:       true,
		},
		{
			Title:           "Natural Day Look",
			Description:     "Light coverage for daytime shoots.",
			Category:        models.MakeupNatural,
			Price:           60,
			DurationMinutes: 45,
			Available:       true,
		},
	}

	if err := database.DB.Create(&dresses).Error; err != nil {
		log.Fatal("Failed to seed dresses:", err)
	}
	if err := database.DB.Create(&services).Error; err != nil {
		log.Fatal("Failed to seed makeup services:", err)
	}

	log.Printf("Catalog seeded: %d dresses, %d makeup services", len(dresses), len(services))
}
