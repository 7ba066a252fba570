package database

import (
	"log"

	"gorm.io/gorm"

	"github.com/example/glamora/internal/models"
	"github.com/example/glamora/internal/utils"
)

// Seed loads the starter catalog, rental periods, delivery options and the
// admin account. It is a no-op when rental periods already exist.
func Seed(conn *gorm.DB) error {
	var periods int64
	if err := conn.Model(&models.RentalPeriod{}).Count(&periods).Error; err != nil {
		return err
	}
	if periods > 0 {
		return nil
	}

	return conn.Transaction(func(tx *gorm.DB) error {
		categories := []models.Category{
			{Name: "Necklaces", Description: "Beautiful necklaces for any occasion"},
			{Name: "Earrings", Description: "Elegant earrings to enhance your look"},
			{Name: "Bracelets", Description: "Stylish bracelets to adorn your wrist"},
			{Name: "Rings", Description: "Stunning rings to complete your ensemble"},
		}
		if err := tx.Create(&categories).Error; err != nil {
			return err
		}

		rentalPeriods := []models.RentalPeriod{
			{Name: "3 Days", Days: 3, Multiplier: 1},
			{Name: "7 Days", Days: 7, Multiplier: 2},
			{Name: "14 Days", Days: 14, Multiplier: 3.5},
		}
		if err := tx.Create(&rentalPeriods).Error; err != nil {
			return err
		}

		deliveryOptions := []models.DeliveryOption{
			{Name: "Standard Delivery", Description: "5-7 business days", Price: 5.99, Days: 7},
			{Name: "Express Delivery", Description: "2-3 business days", Price: 12.99, Days: 3},
		}
		if err := tx.Create(&deliveryOptions).Error; err != nil {
			return err
		}

		products := []models.Product{
			{
				Name:        "Diamond Tennis Bracelet",
				Description: "Elegant tennis bracelet featuring 3.00 carats of round brilliant diamonds set in 14K white gold.",
				BasePrice:   89.99,
				ImageURL:    "/images/products/diamond-tennis-bracelet.jpg",
				Stock:       5,
				Active:      true,
				CategoryID:  &categories[2].ID,
			},
			{
				Name:        "Pearl Necklace",
				Description: "Classic 18-inch strand of AAA-grade white South Sea pearls with a 14K gold clasp.",
				BasePrice:   65.99,
				ImageURL:    "/images/products/pearl-necklace.jpg",
				Stock:       8,
				Active:      true,
				CategoryID:  &categories[0].ID,
			},
			{
				Name:        "Sapphire Stud Earrings",
				Description: "Stunning blue sapphire stud earrings totaling 2.00 carats set in 18K white gold with diamond halos.",
				BasePrice:   75.99,
				ImageURL:    "/images/products/sapphire-stud-earrings.jpg",
				Stock:       6,
				Active:      true,
				CategoryID:  &categories[1].ID,
			},
			{
				Name:        "Emerald Statement Ring",
				Description: "Bold emerald statement ring featuring a 3.50 carat Colombian emerald surrounded by diamonds in platinum.",
				BasePrice:   99.99,
				ImageURL:    "/images/products/emerald-statement-ring.jpg",
				Stock:       4,
				Active:      true,
				CategoryID:  &categories[3].ID,
			},
		}
		if err := tx.Create(&products).Error; err != nil {
			return err
		}

		passwordHash, err := utils.HashPassword("admin123")
		if err != nil {
			return err
		}
		admin := models.User{
			Name:         "Admin",
			Email:        "admin@glamora.com",
			PasswordHash: passwordHash,
			Role:         "admin",
		}
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}

		log.Printf("seeded %d categories, %d rental periods, %d delivery options, %d products",
			len(categories), len(rentalPeriods), len(deliveryOptions), len(products))
		return nil
	})
}
