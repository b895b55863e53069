package services

import (
	"strings"

	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/modules/eco/models"
)

// FilterProducts keeps the products matching every criterion of the filter,
// in input order. The input slice is not modified, so applying the same
// filter to its own output returns the same products.
//
//   - Query: case-insensitive substring of name or description; empty matches all
//   - EcoScore: exact grade; empty matches any
//   - PublishedOnly: drops drafts
//   - Material: case-insensitive substring of any material name; empty matches all
//   - ExcludeID: drops the product with this id
func FilterProducts(products []models.Product, filter models.ProductFilter) []models.Product {
	query := strings.ToLower(filter.Query)
	material := strings.ToLower(filter.Material)

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if filter.ExcludeID != "" && p.ID == filter.ExcludeID {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		if filter.EcoScore != "" && p.EcoScore != filter.EcoScore {
			continue
		}
		if filter.PublishedOnly && !p.IsPublished() {
			continue
		}
		if material != "" && !hasMaterial(p, material) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func hasMaterial(p models.Product, lowerName string) bool {
	for _, m := range p.Materials {
		if strings.Contains(strings.ToLower(m.Name), lowerName) {
			return true
		}
	}
	return false
}
