package handlers

import (
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/modules/eco/models"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/modules/eco/services"
	"github.com/gofiber/fiber/v2"
)

type ScannerHandler struct {
	scannerService *services.ScannerService
}

func NewScannerHandler(scannerService *services.ScannerService) *ScannerHandler {
	return &ScannerHandler{scannerService: scannerService}
}

// Scan godoc
// @Summary Scan a product
// @Description Resolve a scan code or product ID. An empty code scans the demo product.
// @Tags Scanner
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param body body models.ScanRequest false "Scanned code"
// @Success 200 {object} models.ScanResult
// @Failure 404 {object} map[string]interface{}
// @Router /scanner/scan [post]
func (h *ScannerHandler) Scan(c *fiber.Ctx) error {
	var req models.ScanRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
	}

	result, err := h.scannerService.Scan(currentSession(c).ID, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}
