package excel

import (
	"fmt"
	"log"

	"rialcom-scraper/models"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Sheet1"

// Writer serializes tariff records to a local .xlsx workbook
type Writer struct{}

// NewWriter creates a new xlsx writer
func NewWriter() *Writer {
	return &Writer{}
}

// WriteTariffs writes the tariffs to "<name>.xlsx" with the fixed column
// headers, one row per record. Returns the path of the written file.
func (w *Writer) WriteTariffs(tariffs []models.Tariff, name string) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	header := make([]interface{}, len(models.ExportHeaders))
	for i, h := range models.ExportHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return "", fmt.Errorf("failed to write header row: %w", err)
	}

	names, channels, speeds, payments := models.Columns(tariffs)
	for i := range names {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", err
		}
		row := []interface{}{names[i], channels[i], speeds[i], payments[i]}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return "", fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	path := name + ".xlsx"
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save %s: %w", path, err)
	}

	log.Printf("Successfully wrote %d tariffs to %s\n", len(tariffs), path)
	return path, nil
}
