package services

import (
	"testing"

	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/modules/eco/models"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/modules/eco/seed"
	"github.com/stretchr/testify/assert"
)

func ids(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestFilterProducts(t *testing.T) {
	products := seed.Products()

	tests := []struct {
		name   string
		filter models.ProductFilter
		want   []string
	}{
		{"no criteria", models.ProductFilter{}, []string{"1", "2", "3", "4", "5"}},
		{"eco score A", models.ProductFilter{EcoScore: models.EcoScoreA}, []string{"1", "2", "5"}},
		{"eco score C matches nothing", models.ProductFilter{EcoScore: models.EcoScoreC}, []string{}},
		{"published only", models.ProductFilter{PublishedOnly: true}, []string{"1", "2", "3", "4"}},
		{"query in name, any case", models.ProductFilter{Query: "BOTTLE"}, []string{"1", "4"}},
		{"query in description", models.ProductFilter{Query: "bamboo"}, []string{"2", "5"}},
		{"query and published", models.ProductFilter{Query: "bamboo", PublishedOnly: true}, []string{"2"}},
		{"material", models.ProductFilter{Material: "silicone"}, []string{"1", "3", "5"}},
		{"exclude id", models.ProductFilter{EcoScore: models.EcoScoreA, ExcludeID: "1"}, []string{"2", "5"}},
		{"no match", models.ProductFilter{Query: "spaceship"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(FilterProducts(products, tt.filter)))
		})
	}
}

func TestFilterProductsEcoScoreAOnMockCatalog(t *testing.T) {
	got := FilterProducts(seed.Products(), models.ProductFilter{EcoScore: models.EcoScoreA})
	assert.Len(t, got, 3)
}

func TestFilterProductsIdempotent(t *testing.T) {
	products := seed.Products()
	filters := []models.ProductFilter{
		{Query: "bottle"},
		{EcoScore: models.EcoScoreA, PublishedOnly: true},
		{Material: "bamboo", Query: "container"},
	}

	for _, f := range filters {
		once := FilterProducts(products, f)
		twice := FilterProducts(once, f)
		assert.Equal(t, ids(once), ids(twice))
	}
}

func TestFilterProductsPublishedOnlyStrictSubset(t *testing.T) {
	products := seed.Products()

	all := FilterProducts(products, models.ProductFilter{})
	published := FilterProducts(products, models.ProductFilter{PublishedOnly: true})

	assert.Less(t, len(published), len(all))
	for _, p := range published {
		assert.NotEqual(t, models.StatusDraft, p.Status)
		assert.Contains(t, ids(all), p.ID)
	}
}

func TestFilterProductsDoesNotMutateInput(t *testing.T) {
	products := seed.Products()
	before := ids(products)

	_ = FilterProducts(products, models.ProductFilter{Query: "cup"})
	assert.Equal(t, before, ids(products))
}
