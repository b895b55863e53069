// Package seed holds the demo catalog the platform boots with.
package seed

import (
	"time"

	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/modules/eco/models"
	"gorm.io/datatypes"
)

func mustTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

func dims(h, w, d float64) datatypes.JSONType[*models.Dimensions] {
	return datatypes.NewJSONType(&models.Dimensions{Height: h, Width: w, Depth: d})
}

// Products returns a fresh copy of the demo products in catalog order
func Products() []models.Product {
	return []models.Product{
		{
			ID:          "1",
			Name:        "EcoBottle Pro 500ml",
			Description: "Premium reusable water bottle made from 100% recycled ocean plastic",
			EcoScore:    models.EcoScoreA,
			Materials: datatypes.JSONSlice[models.Material]{
				{Name: "rPET (Recycled PET)", Percentage: 85, Recyclable: true, Sustainable: true},
				{Name: "Stainless Steel Cap", Percentage: 10, Recyclable: true, Sustainable: true},
				{Name: "Silicone Seal", Percentage: 5, Recyclable: false, Sustainable: true},
			},
			Recyclability: 95,
			Images:        datatypes.JSONSlice[string]{"https://images.unsplash.com/photo-1623684194967-48075185a58c?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=1080"},
			Capacity:      models.IntPtr(500),
			Dimensions:    dims(220, 70, 70),
			Manufacturer:  "EcoTech Industries",
			Status:        models.StatusPublished,
			CreatedAt:     mustTime("2025-10-15T10:00:00Z"),
			Views:         models.IntPtr(1234),
			Scans:         models.IntPtr(567),
			SortOrder:     1,
		},
		{
			ID:          "2",
			Name:        "Sustainable Food Container",
			Description: "Biodegradable lunch container with leak-proof bamboo lid",
			EcoScore:    models.EcoScoreA,
			Materials: datatypes.JSONSlice[models.Material]{
				{Name: "Bamboo Fiber", Percentage: 60, Recyclable: true, Sustainable: true},
				{Name: "Corn Starch Polymer", Percentage: 35, Recyclable: true, Sustainable: true},
				{Name: "Natural Rubber Seal", Percentage: 5, Recyclable: false, Sustainable: true},
			},
			Recyclability: 98,
			Images:        datatypes.JSONSlice[string]{"https://images.unsplash.com/photo-1643185720431-9c050eebbc9a?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=1080"},
			Capacity:      models.IntPtr(750),
			Dimensions:    dims(80, 180, 120),
			Status:        models.StatusPublished,
			CreatedAt:     mustTime("2025-10-10T14:30:00Z"),
			Views:         models.IntPtr(892),
			Scans:         models.IntPtr(423),
			SortOrder:     2,
		},
		{
			ID:          "3",
			Name:        "Reusable Coffee Cup",
			Description: "Insulated travel mug with double-wall stainless steel construction",
			EcoScore:    models.EcoScoreB,
			Materials: datatypes.JSONSlice[models.Material]{
				{Name: "Stainless Steel 304", Percentage: 80, Recyclable: true, Sustainable: true},
				{Name: "PP Plastic Lid", Percentage: 15, Recyclable: true, Sustainable: false},
				{Name: "Silicone Grip", Percentage: 5, Recyclable: false, Sustainable: true},
			},
			Recyclability: 85,
			Images:        datatypes.JSONSlice[string]{"https://images.unsplash.com/photo-1594602990685-2ad837215085?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=1080"},
			Capacity:      models.IntPtr(350),
			Dimensions:    dims(160, 80, 80),
			Status:        models.StatusPublished,
			CreatedAt:     mustTime("2025-10-08T09:15:00Z"),
			Views:         models.IntPtr(2103),
			Scans:         models.IntPtr(891),
			SortOrder:     3,
		},
		{
			ID:          "4",
			Name:        "Plastic Water Bottle",
			Description: "Standard single-use plastic bottle",
			EcoScore:    models.EcoScoreD,
			Materials: datatypes.JSONSlice[models.Material]{
				{Name: "Virgin PET", Percentage: 95, Recyclable: true, Sustainable: false},
				{Name: "HDPE Cap", Percentage: 5, Recyclable: true, Sustainable: false},
			},
			Recyclability: 60,
			Images:        datatypes.JSONSlice[string]{"https://images.unsplash.com/photo-1616118132534-381148898bb4?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=1080"},
			Capacity:      models.IntPtr(500),
			Status:        models.StatusPublished,
			CreatedAt:     mustTime("2025-10-05T11:20:00Z"),
			Views:         models.IntPtr(543),
			Scans:         models.IntPtr(234),
			SortOrder:     4,
		},
		{
			ID:          "5",
			Name:        "Glass Storage Jar",
			Description: "Premium borosilicate glass container with bamboo lid",
			EcoScore:    models.EcoScoreA,
			Materials: datatypes.JSONSlice[models.Material]{
				{Name: "Borosilicate Glass", Percentage: 85, Recyclable: true, Sustainable: true},
				{Name: "Bamboo", Percentage: 12, Recyclable: true, Sustainable: true},
				{Name: "Silicone Seal", Percentage: 3, Recyclable: false, Sustainable: true},
			},
			Recyclability: 97,
			Images:        datatypes.JSONSlice[string]{"https://images.unsplash.com/photo-1577056870081-33a62dace065?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=1080"},
			Capacity:      models.IntPtr(1000),
			Status:        models.StatusDraft,
			CreatedAt:     mustTime("2025-10-20T16:45:00Z"),
			SortOrder:     5,
		},
	}
}

// RecyclingPoints returns the demo recycling and buyback locations
func RecyclingPoints() []models.RecyclingPoint {
	return []models.RecyclingPoint{
		{
			ID:                "r1",
			Name:              "EcoCenter Downtown",
			Type:              models.PointRecycling,
			Lat:               40.7589,
			Lng:               -73.9851,
			Address:           "123 Green Street, New York, NY 10001",
			Hours:             "Mon-Sat: 8AM-6PM, Sun: 10AM-4PM",
			AcceptedMaterials: datatypes.JSONSlice[string]{"PET", "HDPE", "Glass", "Aluminum", "Paper"},
			Incentives:        "$0.05 per container",
		},
		{
			ID:                "r2",
			Name:              "City Recycling Hub",
			Type:              models.PointRecycling,
			Lat:               40.7489,
			Lng:               -73.9680,
			Address:           "456 Eco Avenue, New York, NY 10002",
			Hours:             "Mon-Fri: 7AM-7PM, Weekends: 9AM-5PM",
			AcceptedMaterials: datatypes.JSONSlice[string]{"All Plastics", "Metal", "Electronics"},
		},
		{
			ID:                "r3",
			Name:              "GreenReturn Buyback",
			Type:              models.PointBuyback,
			Lat:               40.7389,
			Lng:               -73.9920,
			Address:           "789 Sustainable Blvd, New York, NY 10003",
			Hours:             "Daily: 9AM-8PM",
			AcceptedMaterials: datatypes.JSONSlice[string]{"Bottles", "Cans", "Premium Containers"},
			Incentives:        "Up to $0.10 per item + loyalty points",
		},
		{
			ID:                "r4",
			Name:              "Ocean Plastic Collection",
			Type:              models.PointBuyback,
			Lat:               40.7289,
			Lng:               -73.9750,
			Address:           "321 Marine Way, New York, NY 10004",
			Hours:             "Tue-Sun: 10AM-6PM",
			AcceptedMaterials: datatypes.JSONSlice[string]{"Ocean-bound Plastic", "PET", "HDPE"},
			Incentives:        "Premium rates for ocean plastic",
		},
	}
}
