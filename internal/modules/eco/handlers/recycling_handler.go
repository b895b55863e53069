package handlers

import (
	"math"
	"strings"

	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/modules/eco/models"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/modules/eco/services"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cast"
)

type RecyclingHandler struct {
	recyclingService *services.RecyclingService
}

func NewRecyclingHandler(recyclingService *services.RecyclingService) *RecyclingHandler {
	return &RecyclingHandler{recyclingService: recyclingService}
}

// ListPoints godoc
// @Summary List recycling points
// @Description Filter by type and accepted material; with lat and lng the points come nearest first with their distance in km
// @Tags Recycling
// @Produce json
// @Param type query string false "recycling or buyback"
// @Param material query string false "Accepted material"
// @Param lat query number false "Latitude"
// @Param lng query number false "Longitude"
// @Success 200 {array} models.RecyclingPointResult
// @Failure 400 {object} map[string]interface{}
// @Router /recycling-points [get]
func (h *RecyclingHandler) ListPoints(c *fiber.Ctx) error {
	filter := models.RecyclingPointFilter{
		Material: strings.TrimSpace(c.Query("material")),
	}

	switch pointType := models.PointType(strings.ToLower(c.Query("type"))); pointType {
	case "", "all":
	case models.PointRecycling, models.PointBuyback:
		filter.Type = pointType
	default:
		return badRequest(c, "type must be recycling or buyback")
	}

	rawLat, rawLng := c.Query("lat"), c.Query("lng")
	if rawLat != "" || rawLng != "" {
		lat, errLat := cast.ToFloat64E(rawLat)
		lng, errLng := cast.ToFloat64E(rawLng)
		if errLat != nil || errLng != nil || rawLat == "" || rawLng == "" {
			return badRequest(c, "lat and lng must both be numbers")
		}
		if math.IsNaN(lat) || math.IsNaN(lng) {
			return badRequest(c, "lat and lng must both be numbers")
		}
		if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
			return badRequest(c, "lat or lng out of range")
		}
		filter.Origin = &models.Coordinates{Lat: lat, Lng: lng}
	}

	points, err := h.recyclingService.ListPoints(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(points)
}

// GetPoint godoc
// @Summary Get recycling point by ID
// @Tags Recycling
// @Produce json
// @Param id path string true "Recycling point ID"
// @Success 200 {object} models.RecyclingPoint
// @Failure 404 {object} map[string]interface{}
// @Router /recycling-points/{id} [get]
func (h *RecyclingHandler) GetPoint(c *fiber.Ctx) error {
	point, err := h.recyclingService.GetPoint(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(point)
}
