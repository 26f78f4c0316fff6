package filter

import (
	"testing"

	"rialcom-scraper/config"
	"rialcom-scraper/models"
)

func TestApplyFilters(t *testing.T) {
	tariffs := []models.Tariff{
		{Name: "Старт", SpeedMbps: 30, Payment: 350},
		{Name: "Оптимум", SpeedMbps: 60, Payment: 500},
		{Name: "Макси", SpeedMbps: 100, Payment: 800},
	}

	tests := []struct {
		name       string
		minPayment int
		maxPayment int
		minSpeed   int
		wantNames  []string
	}{
		{"defaults pass everything", 0, 1000000000, 0, []string{"Старт", "Оптимум", "Макси"}},
		{"payment range", 400, 600, 0, []string{"Оптимум"}},
		{"min speed", 0, 1000000000, 60, []string{"Оптимум", "Макси"}},
		{"combined", 0, 600, 60, []string{"Оптимум"}},
		{"nothing matches", 2000, 3000, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.GetDefaultConfig()
			cfg.Filters.MinPayment = tt.minPayment
			cfg.Filters.MaxPayment = tt.maxPayment
			cfg.Filters.MinSpeed = tt.minSpeed

			got := NewFilter(cfg).ApplyFilters(tariffs)
			if len(got) != len(tt.wantNames) {
				t.Fatalf("ApplyFilters() returned %d tariffs, want %d", len(got), len(tt.wantNames))
			}
			for i, want := range tt.wantNames {
				if got[i].Name != want {
					t.Errorf("tariff %d: Name = %q, want %q", i, got[i].Name, want)
				}
			}
		})
	}
}
