package seed

import (
	"testing"

	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/modules/eco/models"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/shared/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedLoadsCatalog(t *testing.T) {
	db, err := database.NewDB("seedtest_"+uuid.NewString(), false)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Seed(db.GORM))

	var products []models.Product
	require.NoError(t, db.GORM.Order("sort_order").Find(&products).Error)
	require.Len(t, products, 5)
	assert.Equal(t, "EcoBottle Pro 500ml", products[0].Name)
	assert.Len(t, products[0].Materials, 3)
	require.NotNil(t, products[0].GetDimensions())
	assert.Equal(t, 220.0, products[0].GetDimensions().Height)
	assert.Nil(t, products[3].GetDimensions())
	assert.Equal(t, models.StatusDraft, products[4].Status)
	assert.Nil(t, products[4].Views)

	var points int64
	require.NoError(t, db.GORM.Model(&models.RecyclingPoint{}).Count(&points).Error)
	assert.EqualValues(t, 4, points)

	var conv models.AIConversation
	require.NoError(t, db.GORM.First(&conv, "id = ?", "conv-1").Error)
	assert.Len(t, conv.Messages, 4)
	assert.Equal(t, 2, conv.SuggestionCount())

	var analysis models.AIAnalysis
	require.NoError(t, db.GORM.First(&analysis, "product_id = ?", "2").Error)
	assert.Equal(t, 2.70, analysis.CostAnalysis.Data().Total)
}

func TestSeedFixtures(t *testing.T) {
	products := Products()
	seen := map[string]bool{}
	for _, p := range products {
		assert.False(t, seen[p.ID], "duplicate product id %s", p.ID)
		seen[p.ID] = true
	}

	for _, scan := range ScanHistory() {
		assert.True(t, seen[scan.ProductID], "scan history references unknown product %s", scan.ProductID)
	}
	for _, conv := range Conversations() {
		assert.True(t, seen[conv.ProductID], "conversation references unknown product %s", conv.ProductID)
	}

	plans := PricingPlans()
	require.Len(t, plans, 3)
	popular := 0
	for _, plan := range plans {
		if plan.Popular {
			popular++
			assert.Equal(t, "Pro", plan.Name)
		}
	}
	assert.Equal(t, 1, popular)
}
