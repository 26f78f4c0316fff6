package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"rialcom-scraper/config"
	"rialcom-scraper/excel"
	"rialcom-scraper/fetcher"
	"rialcom-scraper/filter"
	"rialcom-scraper/models"
	"rialcom-scraper/parser"
	"rialcom-scraper/sheets"

	"github.com/PuerkitoBio/goquery"
)

func main() {
	// Parse command line arguments
	urlFlag := flag.String("url", "", "Tariff page URL (overrides the config value)")
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	output := flag.String("output", "", "Spreadsheet base name (overrides the config value)")
	fetcherKind := flag.String("fetcher", "colly", "Fetcher implementation: colly or rod")
	spreadsheetURL := flag.String("spreadsheet", "", "Google Sheets URL to also export to (optional)")
	credentialsPath := flag.String("credentials", "", "Path to Google service account credentials JSON file (or use GOOGLE_SHEETS_CREDENTIALS env var)")
	flag.Parse()

	cfg := loadConfig(*configPath)
	if *urlFlag != "" {
		cfg.URL = *urlFlag
	}
	if *output != "" {
		cfg.Output = *output
	}

	html, err := fetchPage(cfg.URL, *fetcherKind)
	if err != nil {
		var statusErr *fetcher.StatusError
		if errors.As(err, &statusErr) {
			fmt.Printf("Status Code: %d\n", statusErr.Code)
			os.Exit(1)
		}
		log.Fatalf("Fetching failed: %v\n", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		log.Fatalf("Failed to parse HTML: %v\n", err)
	}

	tariffs, err := parser.NewInterpreter().Process(doc)
	if err != nil {
		log.Fatalf("Extraction failed: %v\n", err)
	}

	filtered := filter.NewFilter(cfg).ApplyFilters(tariffs)

	// Display results to console
	fmt.Printf("Found %d tariffs before filtering\n", len(tariffs))
	fmt.Printf("Found %d tariffs after filtering\n", len(filtered))
	fmt.Println("---")
	formatTariffsConsole(filtered)

	path, err := excel.NewWriter().WriteTariffs(filtered, cfg.Output)
	if err != nil {
		log.Fatalf("Failed to write spreadsheet: %v\n", err)
	}
	fmt.Printf("\nSaved %s\n", path)

	if *spreadsheetURL != "" {
		writeToSheets(*spreadsheetURL, *credentialsPath, filtered)
	}
}

// loadConfig loads configuration from file or returns defaults
func loadConfig(configPath string) *config.Config {
	var cfg *config.Config
	if _, err := os.Stat(configPath); err == nil {
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			log.Printf("Warning: Failed to load config file: %v. Using defaults.\n", err)
			cfg = config.GetDefaultConfig()
		}
	} else {
		log.Println("Config file not found. Using default configuration.")
		cfg = config.GetDefaultConfig()
	}
	return cfg
}

// fetchPage retrieves the tariff page HTML with the selected fetcher
func fetchPage(url, kind string) (string, error) {
	switch kind {
	case "colly":
		return fetcher.NewCollyFetcher().Fetch(url)
	case "rod":
		rodFetcher, err := fetcher.NewRodFetcher()
		if err != nil {
			return "", fmt.Errorf("failed to create fetcher: %w", err)
		}
		defer func() {
			if err := rodFetcher.Close(); err != nil {
				log.Printf("Warning: Failed to close browser: %v\n", err)
			}
		}()
		return rodFetcher.Fetch(url)
	default:
		return "", fmt.Errorf("unknown fetcher: %s", kind)
	}
}

// writeToSheets exports tariffs to Google Sheets
func writeToSheets(spreadsheetURL, credentialsPath string, tariffs []models.Tariff) {
	spreadsheetID := sheets.ExtractSpreadsheetID(spreadsheetURL)
	if spreadsheetID == "" {
		log.Printf("Warning: Could not extract spreadsheet ID from URL: %s\n", spreadsheetURL)
		return
	}

	writer, err := sheets.NewWriter(spreadsheetID, credentialsPath)
	if err != nil {
		log.Printf("Warning: Failed to initialize Google Sheets writer: %v\n", err)
		return
	}

	if err := writer.WriteTariffs(tariffs, true); err != nil {
		log.Printf("Warning: Failed to write to Google Sheets: %v\n", err)
		return
	}
	fmt.Printf("Successfully wrote %d tariffs to Google Sheets\n", len(tariffs))
}

// formatTariffsConsole formats tariffs for console output
func formatTariffsConsole(tariffs []models.Tariff) {
	for i, tariff := range tariffs {
		fmt.Printf("\n%d. %s\n", i+1, tariff.Name)

		if tariff.Channels != nil {
			fmt.Printf("   Channels: %d\n", *tariff.Channels)
		}
		fmt.Printf("   Speed: %d Mbit/s\n", tariff.SpeedMbps)
		fmt.Printf("   Payment: %d rub/month\n", tariff.Payment)
	}
}
