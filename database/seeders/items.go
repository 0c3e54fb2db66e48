package seeders

import (
	"github.com/shashiranjanraj/winkel/app/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func init() {
	Register("items", SeedItems)
}

// SeedItems inserts a starter catalogue for development environments.
// It is idempotent: nothing happens when the items table already has rows.
func SeedItems(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Item{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	items := []models.Item{
		{
			Name:        "Pikachu plush",
			Description: "25cm soft plush",
			Price:       decimal.New(1999, -2),
			Category:    "plush",
			Stock:       50,
			IsActive:    true,
		},
		{
			Name:        "Snorlax hoodie",
			Description: "Unisex, sizes S-XXL",
			Price:       decimal.New(4950, -2),
			Category:    "clothing",
			Stock:       20,
			IsActive:    true,
		},
		{
			Name:        "Poké Ball keychain",
			Price:       decimal.New(595, -2),
			Category:    "accessories",
			Stock:       200,
			IsActive:    true,
		},
	}
	return db.Create(&items).Error
}
