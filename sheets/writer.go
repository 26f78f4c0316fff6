package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"rialcom-scraper/models"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Writer handles writing tariffs to Google Sheets
type Writer struct {
	service       *sheets.Service
	spreadsheetID string
}

// NewWriter creates a new Google Sheets writer
func NewWriter(spreadsheetID string, credentialsPath string) (*Writer, error) {
	ctx := context.Background()

	// Read credentials from file or environment variable
	var credsJSON []byte
	var err error

	if credentialsPath != "" {
		credsJSON, err = os.ReadFile(credentialsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read credentials file: %w", err)
		}
	} else {
		credsEnv := strings.TrimSpace(os.Getenv("GOOGLE_SHEETS_CREDENTIALS"))
		if credsEnv == "" {
			return nil, fmt.Errorf("credentials not found: GOOGLE_SHEETS_CREDENTIALS environment variable is empty or not set")
		}
		credsJSON = []byte(credsEnv)
	}

	// Parse and validate JSON
	var creds map[string]interface{}
	if err := json.Unmarshal(credsJSON, &creds); err != nil {
		return nil, fmt.Errorf("invalid credentials JSON (check if JSON is properly formatted): %w", err)
	}

	// Validate that it's a service account credentials file
	if creds["type"] != "service_account" {
		return nil, fmt.Errorf("credentials must be a service account JSON file (type: service_account), got type: %v", creds["type"])
	}

	service, err := sheets.NewService(ctx, option.WithCredentialsJSON(credsJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Writer{
		service:       service,
		spreadsheetID: spreadsheetID,
	}, nil
}

// WriteTariffs writes tariffs to Google Sheets with the same headers and
// column order as the xlsx export.
// If clearFirst is true, clears existing data before writing
func (w *Writer) WriteTariffs(tariffs []models.Tariff, clearFirst bool) error {
	if len(tariffs) == 0 {
		log.Println("No tariffs to write")
		return nil
	}

	var values [][]interface{}

	header := make([]interface{}, len(models.ExportHeaders))
	for i, h := range models.ExportHeaders {
		header[i] = h
	}
	values = append(values, header)

	names, channels, speeds, payments := models.Columns(tariffs)
	for i := range names {
		values = append(values, []interface{}{names[i], channels[i], speeds[i], payments[i]})
	}

	range_ := "Sheet1!A1"

	// Clear existing data if requested
	if clearFirst {
		clearReq := &sheets.ClearValuesRequest{}
		_, err := w.service.Spreadsheets.Values.Clear(w.spreadsheetID, range_, clearReq).Do()
		if err != nil {
			log.Printf("Warning: Failed to clear existing data: %v\n", err)
			// Continue anyway
		}
	}

	valueRange := &sheets.ValueRange{
		Values: values,
	}

	_, err := w.service.Spreadsheets.Values.Update(w.spreadsheetID, range_, valueRange).
		ValueInputOption("RAW").
		Do()

	if err != nil {
		return fmt.Errorf("failed to write to sheets: %w", err)
	}

	log.Printf("Successfully wrote %d tariffs to Google Sheets\n", len(tariffs))
	return nil
}

// ExtractSpreadsheetID extracts the spreadsheet ID from a Google Sheets URL
func ExtractSpreadsheetID(url string) string {
	// https://docs.google.com/spreadsheets/d/SPREADSHEET_ID/edit?usp=sharing
	parts := strings.Split(url, "/d/")
	if len(parts) < 2 {
		return ""
	}

	idPart := parts[1]
	if idx := strings.Index(idPart, "/"); idx != -1 {
		idPart = idPart[:idx]
	}
	if idx := strings.Index(idPart, "?"); idx != -1 {
		idPart = idPart[:idx]
	}

	return strings.TrimSpace(idPart)
}
