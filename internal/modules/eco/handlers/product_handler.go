package handlers

import (
	"fmt"
	"strings"

	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/core/export"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/core/qrcode"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/modules/eco/models"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/modules/eco/services"
	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	productService *services.ProductService
	exportService  *services.ExportService
}

func NewProductHandler(productService *services.ProductService, exportService *services.ExportService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		exportService:  exportService,
	}
}

// parseProductFilter reads the catalog filter from the query string
func parseProductFilter(c *fiber.Ctx) (models.ProductFilter, error) {
	filter := models.ProductFilter{
		Query:         strings.TrimSpace(c.Query("query")),
		Material:      anyValue(c.Query("material")),
		PublishedOnly: c.QueryBool("published_only", false),
	}
	if raw := anyValue(c.Query("eco_score")); raw != "" {
		score, ok := models.ParseEcoScore(raw)
		if !ok {
			return filter, fmt.Errorf("invalid eco_score: %s", raw)
		}
		filter.EcoScore = score
	}
	return filter, nil
}

// anyValue trims a select value and maps "all" to no criterion
func anyValue(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.EqualFold(raw, "all") {
		return ""
	}
	return raw
}

// ListProducts godoc
// @Summary List products
// @Description List catalog products with filtering
// @Tags Products
// @Produce json
// @Param query query string false "Search in name and description"
// @Param eco_score query string false "Eco-score grade A-E or all"
// @Param published_only query boolean false "Only published products"
// @Param material query string false "Search in material names"
// @Success 200 {object} models.ProductListResponse
// @Failure 400 {object} map[string]interface{}
// @Router /products [get]
func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	filter, err := parseProductFilter(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	products, err := h.productService.ListProducts(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(products)
}

// GetProduct godoc
// @Summary Get product by ID
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {object} map[string]interface{}
// @Router /products/{id} [get]
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	product, err := h.productService.GetProduct(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

// TogglePublish godoc
// @Summary Publish or unpublish a product
// @Description Flip a product between draft and published (founder only)
// @Tags Products
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param id path string true "Product ID"
// @Success 200 {object} models.Product
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /products/{id}/publish [patch]
func (h *ProductHandler) TogglePublish(c *fiber.Ctx) error {
	product, err := h.productService.TogglePublish(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

// SimilarProducts godoc
// @Summary Similar products
// @Description Alternatives to a product, never the product itself
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Param query query string false "Search in name and description"
// @Param eco_score query string false "Eco-score grade A-E or all"
// @Param published_only query boolean false "Only published products"
// @Param material query string false "Search in material names"
// @Success 200 {object} models.ProductListResponse
// @Failure 404 {object} map[string]interface{}
// @Router /products/{id}/similar [get]
func (h *ProductHandler) SimilarProducts(c *fiber.Ctx) error {
	filter, err := parseProductFilter(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	products, err := h.productService.SimilarProducts(c.Params("id"), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(products)
}

// GetQRCode godoc
// @Summary Product QR code
// @Description PNG QR code encoding the product's scan code
// @Tags Products
// @Produce image/png
// @Param id path string true "Product ID"
// @Param size query int false "Image size in pixels" default(256)
// @Success 200 {file} image/png
// @Failure 404 {object} map[string]interface{}
// @Router /products/{id}/qr [get]
func (h *ProductHandler) GetQRCode(c *fiber.Ctx) error {
	id := c.Params("id")
	png, err := h.productService.ProductQRCode(id, c.QueryInt("size", qrcode.DefaultSize))
	if err != nil {
		return respondError(c, err)
	}

	c.Set("Content-Type", "image/png")
	c.Set("Content-Disposition", fmt.Sprintf("inline; filename=product-%s-qr.png", id))
	return c.Send(png)
}

// ExportSpecSheet godoc
// @Summary Export product specification
// @Description Download the specification sheet as PDF or Excel (founder only)
// @Tags Export
// @Produce application/pdf
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param X-Session-ID header string true "Session ID"
// @Param id path string true "Product ID"
// @Param format query string false "pdf or excel" default(pdf)
// @Success 200 {file} file
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /products/{id}/export [get]
func (h *ProductHandler) ExportSpecSheet(c *fiber.Ctx) error {
	format, ok := export.ParseFormat(c.Query("format"))
	if !ok {
		return badRequest(c, "format must be pdf or excel")
	}

	file, err := h.exportService.ExportSpecSheet(c.Params("id"), format)
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, file)
}

// ExportCatalog godoc
// @Summary Export catalog
// @Description Download every product as CSV (founder only)
// @Tags Export
// @Produce text/csv
// @Param X-Session-ID header string true "Session ID"
// @Success 200 {file} file
// @Router /products/export.csv [get]
func (h *ProductHandler) ExportCatalog(c *fiber.Ctx) error {
	file, err := h.exportService.ExportCatalogCSV()
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, file)
}

// ClientCatalog godoc
// @Summary Client catalog
// @Description Published products matching the search text
// @Tags Catalog
// @Produce json
// @Param query query string false "Search in name and description"
// @Success 200 {object} models.ProductListResponse
// @Router /catalog [get]
func (h *ProductHandler) ClientCatalog(c *fiber.Ctx) error {
	products, err := h.productService.ClientCatalog(strings.TrimSpace(c.Query("query")))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(products)
}

// StoreOverview godoc
// @Summary Store management
// @Description The founder's products split into published and drafts (founder only)
// @Tags Catalog
// @Produce json
// @Param X-Session-ID header string true "Session ID"
// @Param query query string false "Search in name and description"
// @Success 200 {object} models.StoreOverview
// @Router /store [get]
func (h *ProductHandler) StoreOverview(c *fiber.Ctx) error {
	overview, err := h.productService.StoreOverview(strings.TrimSpace(c.Query("query")))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(overview)
}

func sendFile(c *fiber.Ctx, file *services.ExportFile) error {
	c.Set("Content-Type", file.ContentType)
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	return c.Send(file.Data)
}
