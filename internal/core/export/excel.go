package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// ExcelExporter implements Excel export using excelize
type ExcelExporter struct {
	sheetName string
}

// NewExcelExporter creates a new Excel exporter
func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{
		sheetName: "Specification",
	}
}

// Export writes the document to one sheet, sections stacked top to bottom
func (e *ExcelExporter) Export(doc *Document, writer io.Writer) error {
	if len(doc.Sections) == 0 {
		return fmt.Errorf("document has no sections")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", e.sheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14, Family: doc.Style.FontFamily},
	})
	if err != nil {
		return fmt.Errorf("failed to create title style: %w", err)
	}
	sectionStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 12, Family: doc.Style.FontFamily},
	})
	if err != nil {
		return fmt.Errorf("failed to create section style: %w", err)
	}
	headerStyle, err := e.createHeaderStyle(f, doc.Style)
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	oddRowStyle, _ := e.createRowStyle(f, doc.Style, doc.Style.RowBgColor1)
	evenRowStyle := oddRowStyle
	if doc.Style.AlternateRows {
		evenRowStyle, _ = e.createRowStyle(f, doc.Style, doc.Style.RowBgColor2)
	}

	rowIndex := 1
	cell := func(col int) string {
		return columnNumberToName(col) + strconv.Itoa(rowIndex)
	}

	f.SetCellValue(e.sheetName, cell(1), doc.Title)
	f.SetCellStyle(e.sheetName, cell(1), cell(1), titleStyle)
	rowIndex++
	if doc.Subtitle != "" {
		f.SetCellValue(e.sheetName, cell(1), doc.Subtitle)
		rowIndex++
	}
	rowIndex++ // blank row

	for colIndex, width := range doc.Style.ColumnWidths {
		colName := columnNumberToName(colIndex + 1)
		f.SetColWidth(e.sheetName, colName, colName, width)
	}

	firstHeaderRow := 0
	for _, section := range doc.Sections {
		if section.Title != "" {
			f.SetCellValue(e.sheetName, cell(1), section.Title)
			f.SetCellStyle(e.sheetName, cell(1), cell(1), sectionStyle)
			rowIndex++
		}

		if firstHeaderRow == 0 {
			firstHeaderRow = rowIndex
		}
		for colIndex, header := range section.Headers {
			f.SetCellValue(e.sheetName, cell(colIndex+1), header)
			f.SetCellStyle(e.sheetName, cell(colIndex+1), cell(colIndex+1), headerStyle)
		}
		rowIndex++

		for rowIdx, row := range section.Rows {
			style := oddRowStyle
			if rowIdx%2 == 1 {
				style = evenRowStyle
			}
			for colIndex, value := range row {
				f.SetCellValue(e.sheetName, cell(colIndex+1), value)
				f.SetCellStyle(e.sheetName, cell(colIndex+1), cell(colIndex+1), style)
			}
			rowIndex++
		}
		rowIndex++ // blank row between sections
	}

	// Freezing only makes sense when a single table fills the sheet.
	if doc.Style.FreezeHeader && len(doc.Sections) == 1 {
		f.SetPanes(e.sheetName, &excelize.Panes{
			Freeze:      true,
			YSplit:      firstHeaderRow,
			TopLeftCell: fmt.Sprintf("A%d", firstHeaderRow+1),
			ActivePane:  "bottomLeft",
		})
	}

	if err := f.Write(writer); err != nil {
		return fmt.Errorf("failed to write Excel file: %w", err)
	}
	return nil
}

// GetContentType returns the MIME type for Excel files
func (e *ExcelExporter) GetContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// GetFileExtension returns the file extension for Excel files
func (e *ExcelExporter) GetFileExtension() string {
	return ".xlsx"
}

// createHeaderStyle creates the header style
func (e *ExcelExporter) createHeaderStyle(f *excelize.File, style ExportStyle) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:   style.HeaderBold,
			Size:   style.FontSize,
			Family: style.FontFamily,
			Color:  "FFFFFF",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{stripHashFromColor(style.HeaderBgColor)},
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
}

// createRowStyle creates a row style with background color
func (e *ExcelExporter) createRowStyle(f *excelize.File, style ExportStyle, bgColor string) (int, error) {
	rowStyle := &excelize.Style{
		Font: &excelize.Font{
			Size:   style.FontSize,
			Family: style.FontFamily,
		},
	}

	// Only add fill if bgColor is not white
	if bgColor != "" && bgColor != "#FFFFFF" {
		rowStyle.Fill = excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{stripHashFromColor(bgColor)},
		}
	}
	return f.NewStyle(rowStyle)
}

// columnNumberToName converts column number to Excel column name (1 -> A, 27 -> AA)
func columnNumberToName(col int) string {
	name := ""
	for col > 0 {
		col--
		name = string(rune('A'+(col%26))) + name
		col /= 26
	}
	return name
}

// stripHashFromColor removes # from hex color codes
func stripHashFromColor(color string) string {
	if len(color) > 0 && color[0] == '#' {
		return color[1:]
	}
	return color
}
