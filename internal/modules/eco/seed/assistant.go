package seed

import (
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/modules/eco/models"
	"gorm.io/datatypes"
)

// Conversations returns the stored AI design transcripts, most recent first
func Conversations() []models.AIConversation {
	return []models.AIConversation{
		{
			ID:        "conv-1",
			Title:     "Reusable Water Bottle Design",
			DateLabel: "2 hours ago",
			Preview:   "Discussing rPET materials and capacity options...",
			Status:    models.ConversationActive,
			ProductID: "1",
			SortOrder: 1,
			Messages: datatypes.JSONSlice[models.AIMessage]{
				{
					ID:        "msg-1",
					Type:      "user",
					Content:   "I want to create a sustainable water bottle. What materials should I consider?",
					Timestamp: "2025-01-25T10:30:00Z",
				},
				{
					ID:        "msg-2",
					Type:      "ai",
					Content:   "For a sustainable water bottle, I recommend rPET (recycled PET) as the primary material. It offers excellent recyclability (95%) and reduces carbon footprint by 60% compared to virgin plastic. Would you like me to suggest specific dimensions based on your target capacity?",
					Timestamp: "2025-01-25T10:30:15Z",
					Suggestions: []models.AISuggestion{
						{ID: "sug-1", Type: models.SuggestionMaterial, Title: "rPET Material", Description: "Recycled PET offers 95% recyclability and 60% lower carbon footprint", Impact: "high", Applied: true},
						{ID: "sug-2", Type: models.SuggestionSustainability, Title: "Ocean Plastic Source", Description: "Consider using ocean-bound plastic for premium positioning", Impact: "medium", Applied: false},
					},
				},
				{
					ID:        "msg-3",
					Type:      "user",
					Content:   "What about the capacity? I want something around 500ml.",
					Timestamp: "2025-01-25T10:32:00Z",
				},
				{
					ID:        "msg-4",
					Type:      "ai",
					Content:   "For a 500ml capacity, I suggest dimensions of 220mm height × 70mm diameter with 2.5mm wall thickness. This provides optimal ergonomics and durability. The rPET material can handle these specifications while maintaining structural integrity.",
					Timestamp: "2025-01-25T10:32:20Z",
					Suggestions: []models.AISuggestion{
						{ID: "sug-3", Type: models.SuggestionDimension, Title: "Optimal Dimensions", Description: "220mm × 70mm × 2.5mm for 500ml capacity", Impact: "high", Applied: true},
					},
				},
			},
		},
		{
			ID:        "conv-2",
			Title:     "Food Container Optimization",
			DateLabel: "Yesterday",
			Preview:   "Exploring bamboo fiber composite materials...",
			Status:    models.ConversationCompleted,
			ProductID: "2",
			SortOrder: 2,
			Messages: datatypes.JSONSlice[models.AIMessage]{
				{
					ID:        "msg-5",
					Type:      "user",
					Content:   "I need a biodegradable food container. What are the best sustainable options?",
					Timestamp: "2025-01-24T14:20:00Z",
				},
				{
					ID:        "msg-6",
					Type:      "ai",
					Content:   "For biodegradable food containers, I recommend bamboo fiber composite (60%) with corn starch polymer (35%). This combination offers 98% recyclability and complete biodegradability in 6-12 months. The natural rubber seal (5%) ensures leak-proof functionality.",
					Timestamp: "2025-01-24T14:20:30Z",
					Suggestions: []models.AISuggestion{
						{ID: "sug-4", Type: models.SuggestionMaterial, Title: "Bamboo Fiber Composite", Description: "60% bamboo fiber for strength and sustainability", Impact: "high", Applied: true},
						{ID: "sug-5", Type: models.SuggestionSustainability, Title: "Corn Starch Polymer", Description: "35% corn starch for biodegradability", Impact: "high", Applied: true},
					},
				},
			},
		},
		{
			ID:        "conv-3",
			Title:     "Coffee Cup Insulation",
			DateLabel: "3 days ago",
			Preview:   "Comparing stainless steel vs ceramic options...",
			Status:    models.ConversationArchived,
			ProductID: "3",
			SortOrder: 3,
			Messages: datatypes.JSONSlice[models.AIMessage]{
				{
					ID:        "msg-7",
					Type:      "user",
					Content:   "Should I use stainless steel or ceramic for a coffee cup?",
					Timestamp: "2025-01-22T09:15:00Z",
				},
				{
					ID:        "msg-8",
					Type:      "ai",
					Content:   "Stainless steel offers better durability and insulation properties. For a travel mug, I recommend 304 stainless steel (80%) with a PP plastic lid (15%) and silicone grip (5%). This provides excellent thermal retention while maintaining recyclability.",
					Timestamp: "2025-01-22T09:15:45Z",
				},
			},
		},
	}
}

// Analyses returns the stored sustainability analyses
func Analyses() []models.AIAnalysis {
	return []models.AIAnalysis{
		{
			ID:                  "analysis-1",
			ProductID:           "1",
			SustainabilityScore: 92,
			Recommendations: datatypes.JSONSlice[string]{
				"Consider adding a bamboo cap option for 100% plant-based materials",
				"Implement QR code for recycling instructions",
				"Add carbon footprint tracking feature",
			},
			Alternatives: datatypes.JSONSlice[models.Material]{
				{Name: "Tritan (BPA-free)", Percentage: 100, Recyclable: true, Sustainable: true},
				{Name: "Borosilicate Glass", Percentage: 100, Recyclable: true, Sustainable: true},
			},
			CarbonFootprint:    0.8,
			RecyclabilityScore: 95,
			CostAnalysis:       datatypes.NewJSONType(models.CostAnalysis{Material: 2.50, Manufacturing: 1.20, Total: 3.70}),
		},
		{
			ID:                  "analysis-2",
			ProductID:           "2",
			SustainabilityScore: 98,
			Recommendations: datatypes.JSONSlice[string]{
				"Perfect for premium eco-conscious market",
				"Consider adding compostable packaging",
				"Implement batch tracking for quality assurance",
			},
			Alternatives: datatypes.JSONSlice[models.Material]{
				{Name: "Wheat Straw Composite", Percentage: 100, Recyclable: true, Sustainable: true},
				{Name: "Bagasse (Sugarcane)", Percentage: 100, Recyclable: true, Sustainable: true},
			},
			CarbonFootprint:    0.3,
			RecyclabilityScore: 98,
			CostAnalysis:       datatypes.NewJSONType(models.CostAnalysis{Material: 1.80, Manufacturing: 0.90, Total: 2.70}),
		},
	}
}

// Suggestions returns the static recommendation tables used by the creator
func Suggestions() models.SuggestionCatalog {
	return models.SuggestionCatalog{
		Materials: []models.MaterialOption{
			{Name: "rPET (Recycled PET)", EcoScore: models.EcoScoreA, Recyclability: 95, CarbonReduction: 60, Cost: "Medium", Description: "Recycled ocean plastic with excellent durability"},
			{Name: "Bamboo Fiber Composite", EcoScore: models.EcoScoreA, Recyclability: 98, CarbonReduction: 80, Cost: "Low", Description: "Biodegradable and renewable resource"},
			{Name: "Tritan (BPA-free)", EcoScore: models.EcoScoreA, Recyclability: 90, CarbonReduction: 40, Cost: "High", Description: "Premium BPA-free plastic alternative"},
		},
		Dimensions: []models.DimensionPreset{
			{Capacity: 500, Height: 220, Width: 70, Depth: 70, Thickness: 2.5, Ergonomics: "Excellent"},
			{Capacity: 750, Height: 180, Width: 120, Depth: 80, Thickness: 2.0, Ergonomics: "Good"},
		},
		Sustainability: []models.SustainabilityFeature{
			{Feature: "Ocean Plastic Source", Impact: "High", Description: "Use ocean-bound plastic for premium positioning", Cost: "+15%"},
			{Feature: "Carbon Tracking", Impact: "Medium", Description: "QR code for carbon footprint transparency", Cost: "+5%"},
			{Feature: "Compostable Packaging", Impact: "High", Description: "Biodegradable packaging materials", Cost: "+20%"},
		},
	}
}
