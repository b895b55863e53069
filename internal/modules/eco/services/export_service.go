package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/core/export"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/modules/eco/models"
	"github.com/MuhamadAgungGumelar/ecoscan-be/internal/modules/eco/repositories"
)

// ExportFile is a rendered download
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

type ExportService struct {
	productRepo repositories.ProductRepo
	products    *ProductService
	exporter    *export.Service
	baseURL     string
}

func NewExportService(productRepo repositories.ProductRepo, exporter *export.Service, baseURL string) *ExportService {
	return &ExportService{
		productRepo: productRepo,
		products:    NewProductService(productRepo),
		exporter:    exporter,
		baseURL:     strings.TrimRight(baseURL, "/"),
	}
}

// ExportSpecSheet renders the product specification as PDF or Excel
func (s *ExportService) ExportSpecSheet(id string, format export.ExportFormat) (*ExportFile, error) {
	product, err := s.products.GetProduct(id)
	if err != nil {
		return nil, err
	}

	data, contentType, ext, err := s.exporter.Export(s.specSheet(product), format)
	if err != nil {
		return nil, err
	}

	return &ExportFile{
		Filename:    slug(product.Name) + "-spec" + ext,
		ContentType: contentType,
		Data:        data,
	}, nil
}

func (s *ExportService) specSheet(p *models.Product) *export.Document {
	overview := [][]interface{}{
		{"Product ID", p.ID},
		{"Eco-Score", fmt.Sprintf("%s (%s)", p.EcoScore, p.EcoScore.Label())},
		{"Recyclability", fmt.Sprintf("%d%%", p.Recyclability)},
		{"Status", string(p.Status)},
	}
	if p.Capacity != nil {
		overview = append(overview, []interface{}{"Capacity", fmt.Sprintf("%d ml", *p.Capacity)})
	}
	if d := p.GetDimensions(); d != nil {
		overview = append(overview, []interface{}{"Dimensions (H × W × D)", fmt.Sprintf("%g × %g × %g mm", d.Height, d.Width, d.Depth)})
	}
	if p.Manufacturer != "" {
		overview = append(overview, []interface{}{"Manufacturer", p.Manufacturer})
	}
	overview = append(overview, []interface{}{"Scan code", p.ScanCode()})

	materials := make([][]interface{}, 0, len(p.Materials))
	for _, m := range p.Materials {
		materials = append(materials, []interface{}{m.Name, fmt.Sprintf("%g%%", m.Percentage), yesNo(m.Recyclable), yesNo(m.Sustainable)})
	}

	return &export.Document{
		Title:     p.Name,
		Subtitle:  p.Description,
		Author:    "EcoScan",
		Footer:    fmt.Sprintf("%s/products/%s", s.baseURL, p.ID),
		CreatedAt: time.Now().UTC(),
		Sections: []export.Section{
			{Title: "Overview", Headers: []string{"Field", "Value"}, Rows: overview},
			{Title: "Materials", Headers: []string{"Material", "Share", "Recyclable", "Sustainable"}, Rows: materials},
		},
		Style: export.DefaultStyle(),
	}
}

// CatalogRow is one product line of the catalog CSV
type CatalogRow struct {
	ID              string  `csv:"id"`
	Name            string  `csv:"name"`
	EcoScore        string  `csv:"eco_score"`
	Recyclability   int     `csv:"recyclability"`
	Status          string  `csv:"status"`
	Capacity        string  `csv:"capacity_ml"`
	Materials       string  `csv:"materials"`
	Views           int     `csv:"views"`
	Scans           int     `csv:"scans"`
	RecyclableShare float64 `csv:"recyclable_share"`
	URL             string  `csv:"url"`
}

// ExportCatalogCSV renders every product as one CSV row
func (s *ExportService) ExportCatalogCSV() (*ExportFile, error) {
	products, err := s.productRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	rows := make([]CatalogRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, s.catalogRow(p))
	}

	data, err := export.CSV(&rows)
	if err != nil {
		return nil, err
	}
	return &ExportFile{
		Filename:    "ecoscan-catalog.csv",
		ContentType: export.CSVContentType,
		Data:        data,
	}, nil
}

func (s *ExportService) catalogRow(p models.Product) CatalogRow {
	names := make([]string, 0, len(p.Materials))
	var recyclable float64
	for _, m := range p.Materials {
		names = append(names, fmt.Sprintf("%s %g%%", m.Name, m.Percentage))
		if m.Recyclable {
			recyclable += m.Percentage
		}
	}

	row := CatalogRow{
		ID:              p.ID,
		Name:            p.Name,
		EcoScore:        string(p.EcoScore),
		Recyclability:   p.Recyclability,
		Status:          string(p.Status),
		Materials:       strings.Join(names, "; "),
		RecyclableShare: recyclable,
		URL:             fmt.Sprintf("%s/products/%s", s.baseURL, p.ID),
	}
	if p.Capacity != nil {
		row.Capacity = fmt.Sprintf("%d", *p.Capacity)
	}
	if p.Views != nil {
		row.Views = *p.Views
	}
	if p.Scans != nil {
		row.Scans = *p.Scans
	}
	return row
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

// slug lower-cases a name and joins its words with dashes
func slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
