package export

import (
	"io"
	"time"
)

// ExportFormat represents the export file format
type ExportFormat string

const (
	FormatPDF   ExportFormat = "pdf"
	FormatExcel ExportFormat = "excel"
	FormatCSV   ExportFormat = "csv"
)

// ParseFormat accepts pdf, excel or xlsx
func ParseFormat(raw string) (ExportFormat, bool) {
	switch raw {
	case "", "pdf":
		return FormatPDF, true
	case "excel", "xlsx":
		return FormatExcel, true
	}
	return "", false
}

// Exporter is the interface for document export formats
type Exporter interface {
	Export(doc *Document, writer io.Writer) error
	GetContentType() string
	GetFileExtension() string
}

// Document is a titled, multi-section sheet such as a product specification
type Document struct {
	Title     string
	Subtitle  string
	Author    string
	Footer    string
	CreatedAt time.Time
	Sections  []Section
	Style     ExportStyle
}

// Section is one table of a document. Two-column sections read as
// label/value pairs.
type Section struct {
	Title   string
	Headers []string
	Rows    [][]interface{}
}

// ExportStyle defines styling options for exports
type ExportStyle struct {
	// PDF specific
	Orientation string // "portrait" or "landscape"
	PageSize    string // "A4", "Letter", etc.

	// Common styling
	HeaderBold    bool
	HeaderBgColor string // Hex color
	AlternateRows bool
	RowBgColor1   string // Hex color for odd rows
	RowBgColor2   string // Hex color for even rows

	// Font settings
	FontFamily string
	FontSize   float64

	// Excel specific
	FreezeHeader bool
	ColumnWidths map[int]float64 // Column index -> width
}

// DefaultStyle returns default export styling in the eco palette
func DefaultStyle() ExportStyle {
	return ExportStyle{
		Orientation:   "portrait",
		PageSize:      "A4",
		HeaderBold:    true,
		HeaderBgColor: "#2E7D32",
		AlternateRows: true,
		RowBgColor1:   "#FFFFFF",
		RowBgColor2:   "#F1F8E9",
		FontFamily:    "Arial",
		FontSize:      10,
		FreezeHeader:  true,
		ColumnWidths:  map[int]float64{0: 28, 1: 40},
	}
}
