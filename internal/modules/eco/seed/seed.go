package seed

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Seed loads the demo catalog into an empty database in one transaction
func Seed(db *gorm.DB) error {
	products := Products()
	points := RecyclingPoints()
	conversations := Conversations()
	analyses := Analyses()

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&products).Error; err != nil {
			return fmt.Errorf("failed to seed products: %w", err)
		}
		if err := tx.Create(&points).Error; err != nil {
			return fmt.Errorf("failed to seed recycling points: %w", err)
		}
		if err := tx.Create(&conversations).Error; err != nil {
			return fmt.Errorf("failed to seed conversations: %w", err)
		}
		if err := tx.Create(&analyses).Error; err != nil {
			return fmt.Errorf("failed to seed analyses: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info().
		Int("products", len(products)).
		Int("recycling_points", len(points)).
		Int("conversations", len(conversations)).
		Int("analyses", len(analyses)).
		Msg("demo catalog seeded")
	return nil
}
