package services

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/modules/eco/models"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/modules/eco/repositories"
	"gorm.io/gorm"
)

const earthRadiusKm = 6371.0

type RecyclingService struct {
	pointRepo repositories.RecyclingPointRepo
}

func NewRecyclingService(pointRepo repositories.RecyclingPointRepo) *RecyclingService {
	return &RecyclingService{pointRepo: pointRepo}
}

// ListPoints filters points by type and accepted material. With an origin
// the results carry their distance and come nearest first; otherwise they
// keep catalog order.
func (s *RecyclingService) ListPoints(filter models.RecyclingPointFilter) ([]models.RecyclingPointResult, error) {
	points, err := s.pointRepo.List(filter.Type)
	if err != nil {
		return nil, fmt.Errorf("failed to list recycling points: %w", err)
	}

	material := strings.ToLower(strings.TrimSpace(filter.Material))
	results := make([]models.RecyclingPointResult, 0, len(points))
	for _, p := range points {
		if material != "" && !acceptsMaterial(p, material) {
			continue
		}
		result := models.RecyclingPointResult{RecyclingPoint: p}
		if filter.Origin != nil {
			d := math.Round(Haversine(*filter.Origin, models.Coordinates{Lat: p.Lat, Lng: p.Lng})*100) / 100
			result.DistanceKm = &d
		}
		results = append(results, result)
	}

	if filter.Origin != nil {
		sort.SliceStable(results, func(i, j int) bool {
			return *results[i].DistanceKm < *results[j].DistanceKm
		})
	}
	return results, nil
}

// GetPoint retrieves a recycling point by ID
func (s *RecyclingService) GetPoint(id string) (*models.RecyclingPoint, error) {
	point, err := s.pointRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecyclingPointNotFound
		}
		return nil, fmt.Errorf("failed to get recycling point: %w", err)
	}
	return point, nil
}

func acceptsMaterial(p models.RecyclingPoint, lowerName string) bool {
	for _, m := range p.AcceptedMaterials {
		if strings.Contains(strings.ToLower(m), lowerName) {
			return true
		}
	}
	return false
}

// Haversine returns the great-circle distance between two points in km
func Haversine(a, b models.Coordinates) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	// rounding can push h just past 1 for antipodal points
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(math.Min(1, h)))
}
