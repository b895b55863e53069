package export

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// PDFExporter implements PDF export using gofpdf
type PDFExporter struct{}

// NewPDFExporter creates a new PDF exporter
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// Export renders every section of the document as a table
func (p *PDFExporter) Export(doc *Document, writer io.Writer) error {
	if len(doc.Sections) == 0 {
		return fmt.Errorf("document has no sections")
	}

	orientation := "P"
	if doc.Style.Orientation == "landscape" {
		orientation = "L"
	}
	pageSize := doc.Style.PageSize
	if pageSize == "" {
		pageSize = "A4"
	}
	fontSize := doc.Style.FontSize
	if fontSize == 0 {
		fontSize = 10
	}

	// gofpdf core fonts only; any other family falls back to Arial
	const fontFamily = "Arial"

	pdf := gofpdf.New(orientation, "mm", pageSize, "")
	// Core fonts are cp1252; translate UTF-8 text such as "CO₂" or "×".
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	if doc.Footer != "" {
		pdf.SetFooterFunc(func() {
			pdf.SetY(-15)
			pdf.SetFont(fontFamily, "I", 8)
			pdf.CellFormat(0, 10, tr(doc.Footer), "", 0, "C", false, 0, "")
		})
	}
	pdf.AddPage()

	pdf.SetFont(fontFamily, "B", 16)
	pdf.Cell(0, 10, tr(doc.Title))
	pdf.Ln(12)

	if doc.Subtitle != "" {
		pdf.SetFont(fontFamily, "", fontSize)
		pdf.MultiCell(0, 5, tr(doc.Subtitle), "", "", false)
		pdf.Ln(4)
	}

	if !doc.CreatedAt.IsZero() {
		pdf.SetFont(fontFamily, "I", 8)
		meta := fmt.Sprintf("Generated: %s", doc.CreatedAt.Format("2006-01-02 15:04:05"))
		if doc.Author != "" {
			meta += fmt.Sprintf(" | Author: %s", doc.Author)
		}
		pdf.Cell(0, 5, tr(meta))
		pdf.Ln(10)
	}

	pageWidth, pageHeight := pdf.GetPageSize()
	leftMargin, _, rightMargin, bottomMargin := pdf.GetMargins()
	usableWidth := pageWidth - leftMargin - rightMargin

	drawHeader := func(headers []string, colWidth float64) {
		pdf.SetFont(fontFamily, "B", fontSize)
		if doc.Style.HeaderBgColor != "" {
			r, g, b := hexToRGB(doc.Style.HeaderBgColor)
			pdf.SetFillColor(r, g, b)
			pdf.SetTextColor(255, 255, 255)
		}
		for _, header := range headers {
			pdf.CellFormat(colWidth, 7, tr(header), "1", 0, "C", doc.Style.HeaderBgColor != "", 0, "")
		}
		pdf.Ln(-1)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont(fontFamily, "", fontSize)
	}

	for _, section := range doc.Sections {
		if len(section.Headers) == 0 {
			return fmt.Errorf("section %q has no headers", section.Title)
		}
		colWidth := usableWidth / float64(len(section.Headers))

		if section.Title != "" {
			pdf.SetFont(fontFamily, "B", 12)
			pdf.Cell(0, 8, tr(section.Title))
			pdf.Ln(9)
		}
		drawHeader(section.Headers, colWidth)

		for rowIdx, row := range section.Rows {
			if doc.Style.AlternateRows {
				color := doc.Style.RowBgColor1
				if rowIdx%2 == 1 {
					color = doc.Style.RowBgColor2
				}
				r, g, b := hexToRGB(color)
				pdf.SetFillColor(r, g, b)
			}
			for _, value := range row {
				pdf.CellFormat(colWidth, 6, tr(fmt.Sprintf("%v", value)), "1", 0, "L", doc.Style.AlternateRows, 0, "")
			}
			pdf.Ln(-1)

			if pdf.GetY() > pageHeight-bottomMargin-10 {
				pdf.AddPage()
				drawHeader(section.Headers, colWidth)
			}
		}
		pdf.Ln(6)
	}

	if err := pdf.Output(writer); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

// GetContentType returns the MIME type for PDF files
func (p *PDFExporter) GetContentType() string {
	return "application/pdf"
}

// GetFileExtension returns the file extension for PDF files
func (p *PDFExporter) GetFileExtension() string {
	return ".pdf"
}

// hexToRGB converts hex color to RGB values
func hexToRGB(hex string) (int, int, int) {
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}
	// Default to white if invalid
	if len(hex) != 6 {
		return 255, 255, 255
	}

	var r, g, b int
	fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	return r, g, b
}
