package filter

import (
	"rialcom-scraper/config"
	"rialcom-scraper/models"
)

// Filter applies filter criteria to tariff records
type Filter struct {
	cfg *config.Config
}

// NewFilter creates a new Filter instance
func NewFilter(cfg *config.Config) *Filter {
	return &Filter{
		cfg: cfg,
	}
}

// ApplyFilters filters tariffs based on the configuration
func (f *Filter) ApplyFilters(tariffs []models.Tariff) []models.Tariff {
	var filtered []models.Tariff

	for _, tariff := range tariffs {
		if f.matchesFilters(tariff) {
			filtered = append(filtered, tariff)
		}
	}

	return filtered
}

// matchesFilters checks if a tariff matches all filter criteria
func (f *Filter) matchesFilters(tariff models.Tariff) bool {
	if tariff.Payment < f.cfg.Filters.MinPayment || tariff.Payment > f.cfg.Filters.MaxPayment {
		return false
	}

	if tariff.SpeedMbps < f.cfg.Filters.MinSpeed {
		return false
	}

	return true
}
