package export

import (
	"bytes"
	"fmt"
)

// Service provides high-level export functionality
type Service struct {
	pdfExporter   Exporter
	excelExporter Exporter
}

// NewService creates a new export service
func NewService() *Service {
	return &Service{
		pdfExporter:   NewPDFExporter(),
		excelExporter: NewExcelExporter(),
	}
}

// Export renders the document and returns the bytes, content type and file extension
func (s *Service) Export(doc *Document, format ExportFormat) ([]byte, string, string, error) {
	var exporter Exporter
	switch format {
	case FormatPDF:
		exporter = s.pdfExporter
	case FormatExcel:
		exporter = s.excelExporter
	default:
		return nil, "", "", fmt.Errorf("unsupported export format: %s", format)
	}

	var buf bytes.Buffer
	if err := exporter.Export(doc, &buf); err != nil {
		return nil, "", "", fmt.Errorf("%s export failed: %w", format, err)
	}

	return buf.Bytes(), exporter.GetContentType(), exporter.GetFileExtension(), nil
}
