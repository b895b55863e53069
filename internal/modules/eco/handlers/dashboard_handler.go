package handlers

import (
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/modules/eco/models"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/modules/eco/services"
	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
	profileService   *services.ProfileService
}

func NewDashboardHandler(dashboardService *services.DashboardService, profileService *services.ProfileService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		profileService:   profileService,
	}
}

// GetFounderDashboard godoc
// @Summary Founder dashboard
// @Description Catalog stats, eco-score distribution, recent products and conversations (founder only)
// @Tags Dashboard
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Success 200 {object} models.FounderDashboard
// @Failure 403 {object} map[string]interface{}
// @Router /dashboard/founder [get]
func (h *DashboardHandler) GetFounderDashboard(c *fiber.Ctx) error {
	dashboard, err := h.dashboardService.FounderDashboard()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dashboard)
}

// GetAnalytics godoc
// @Summary Analytics
// @Description Charts and stat cards for a period (founder only)
// @Tags Dashboard
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param period query string false "7d, 30d, 90d or 1y" default(30d)
// @Success 200 {object} services.AnalyticsReport
// @Failure 400 {object} map[string]interface{}
// @Router /analytics [get]
func (h *DashboardHandler) GetAnalytics(c *fiber.Ctx) error {
	period, ok := models.ParseAnalyticsPeriod(c.Query("period"))
	if !ok {
		return badRequest(c, "period must be 7d, 30d, 90d or 1y")
	}

	report, err := h.dashboardService.Analytics(period)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(report)
}

// GetClientProfile godoc
// @Summary Client profile
// @Description Eco-impact stats, scan history, saved products and achievements
// @Tags Dashboard
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Success 200 {object} models.ClientProfile
// @Router /profile/client [get]
func (h *DashboardHandler) GetClientProfile(c *fiber.Ctx) error {
	profile, err := h.profileService.Profile(currentSession(c).ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}

// GetPricing godoc
// @Summary Pricing plans
// @Tags Dashboard
// @Produce json
// @Success 200 {array} models.PricingPlan
// @Router /pricing [get]
func (h *DashboardHandler) GetPricing(c *fiber.Ctx) error {
	return c.JSON(h.profileService.Pricing())
}
