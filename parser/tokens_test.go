package parser

import "testing"

func TestExtractLeadingDigits(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
		ok       bool
	}{
		{"speed header", "Интернет 100 Мбит/с", 100, true},
		{"kbit value", "До 30000 Кбит/с", 30000, true},
		{"bare number", "1500", 1500, true},
		{"digits after text", "скорость до 60 Мбит", 60, true},
		{"first run wins", "от 10 до 20", 10, true},
		{"no digits", "не указана", 0, false},
		{"empty", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractLeadingDigits(tt.input)
			if ok != tt.ok {
				t.Fatalf("extractLeadingDigits() ok = %v, want %v", ok, tt.ok)
			}
			if tt.ok && got != tt.expected {
				t.Errorf("extractLeadingDigits() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestSplitBundleLabel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantBase string
		wantNum  int
		ok       bool
	}{
		{"standard label", "Комфорт (120 каналов)", "Комфорт", 120, true},
		{"no space before paren", "Эконом(60 каналов)", "Эконом", 60, true},
		{"bare digits in parens", "Старт (45)", "Старт", 45, true},
		{"multi-word base", "Все включено (210 каналов)", "Все включено", 210, true},
		{"no parenthetical", "Комфорт", "", 0, false},
		{"parens without digits", "Базовый (ТВ)", "", 0, false},
		{"empty", "", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, num, ok := splitBundleLabel(tt.input)
			if ok != tt.ok {
				t.Fatalf("splitBundleLabel() ok = %v, want %v", ok, tt.ok)
			}
			if !tt.ok {
				return
			}
			if base != tt.wantBase {
				t.Errorf("splitBundleLabel() base = %q, want %q", base, tt.wantBase)
			}
			if num != tt.wantNum {
				t.Errorf("splitBundleLabel() num = %d, want %d", num, tt.wantNum)
			}
		})
	}
}

func TestFirstToken(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"payment with unit", "350 руб./мес", "350"},
		{"leading whitespace", "  500 руб", "500"},
		{"single token", "600", "600"},
		{"blank", "   ", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := firstToken(tt.input)
			if got != tt.expected {
				t.Errorf("firstToken() = %q, want %q", got, tt.expected)
			}
		})
	}
}
