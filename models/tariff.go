package models

// ExportHeaders are the spreadsheet column headers, in export order:
// tariff name, channel count, access speed, subscription payment.
var ExportHeaders = []string{
	"Название тарифа",
	"Количество каналов",
	"Скорость доступа",
	"Абонентская плата",
}

// Tariff represents one normalized tariff record extracted from the page.
type Tariff struct {
	Name      string
	Channels  *int // nil for plain internet tariffs without a TV bundle
	SpeedMbps int
	Payment   int
}

// ChannelCount returns the channel count as an exported cell value.
// Plain internet tariffs carry no channel information and export as "null".
func (t Tariff) ChannelCount() interface{} {
	if t.Channels == nil {
		return "null"
	}
	return *t.Channels
}

// Columns projects tariffs onto the four parallel export columns:
// names, channel counts, speeds and payments. The four slices always
// have equal length.
func Columns(tariffs []Tariff) ([]string, []interface{}, []int, []int) {
	names := make([]string, 0, len(tariffs))
	channels := make([]interface{}, 0, len(tariffs))
	speeds := make([]int, 0, len(tariffs))
	payments := make([]int, 0, len(tariffs))

	for _, t := range tariffs {
		names = append(names, t.Name)
		channels = append(channels, t.ChannelCount())
		speeds = append(speeds, t.SpeedMbps)
		payments = append(payments, t.Payment)
	}

	return names, channels, speeds, payments
}
