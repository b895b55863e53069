package export

import (
	"bytes"
	"fmt"

	"github.com/gocarina/gocsv"
)

// CSVContentType is the MIME type of CSV exports
const CSVContentType = "text/csv; charset=utf-8"

// CSV marshals a slice of csv-tagged structs, header row first
func CSV(rows interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := gocsv.Marshal(rows, &buf); err != nil {
		return nil, fmt.Errorf("CSV export failed: %w", err)
	}
	return buf.Bytes(), nil
}
