package parser

import (
	"fmt"
	"strconv"
	"strings"

	"rialcom-scraper/models"

	"github.com/PuerkitoBio/goquery"
)

// Plain tariff tables have a fixed cell layout: [name, payment, -, speed].
// The indices are a contract with the page, not derived from headers.
const (
	tariffNameCell    = 0
	tariffPaymentCell = 1
	tariffSpeedCell   = 3
)

// ExtractionError reports a cell that failed to match its expected
// pattern. Table and Row are zero-based indices within the document and
// table respectively (row 0 is the header row).
type ExtractionError struct {
	Table int
	Row   int
	Field string
	Cause string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("table %d, row %d: %s: %s", e.Table, e.Row, e.Field, e.Cause)
}

// Interpreter extracts normalized tariff records from the tariff page's
// two known table layouts: plain internet tariffs and internet+TV bundles.
type Interpreter struct {
	seed map[string]int
}

// NewInterpreter creates an Interpreter with an empty channel registry.
func NewInterpreter() *Interpreter {
	return &Interpreter{}
}

// NewInterpreterWithRegistry creates an Interpreter whose channel registry
// is seeded with known bundle-name to channel-count mappings. The seed is
// copied for every Process call; nothing is retained between calls.
func NewInterpreterWithRegistry(seed map[string]int) *Interpreter {
	return &Interpreter{seed: seed}
}

// Process classifies every table in the document and extracts tariff
// records from the recognized ones. Tables matching neither layout are
// skipped. Any malformed cell aborts the whole call: the error identifies
// the table, row and field, and no partial results are returned.
func (in *Interpreter) Process(doc *goquery.Document) ([]models.Tariff, error) {
	registry := make(map[string]int, len(in.seed))
	for name, count := range in.seed {
		registry[name] = count
	}

	var tariffs []models.Tariff
	var procErr error

	doc.Find("table").EachWithBreak(func(tableIdx int, table *goquery.Selection) bool {
		rows := table.Find("tr")
		if rows.Length() == 0 {
			return true
		}
		heads := rows.First().Find("th")

		var headTexts []string
		heads.Each(func(_ int, h *goquery.Selection) {
			headTexts = append(headTexts, h.Text())
		})
		joined := strings.Join(headTexts, " ")

		switch {
		case strings.Contains(joined, "тариф"):
			tariffs, procErr = in.processTariffTable(tableIdx, rows, tariffs)
		case strings.Contains(joined, "Интернет"):
			tariffs, procErr = in.processTariffTVTable(tableIdx, rows, heads, registry, tariffs)
		default:
			// Not a tariff table, skip.
		}
		return procErr == nil
	})

	if procErr != nil {
		return nil, procErr
	}
	return tariffs, nil
}

// processTariffTable extracts rows from a plain internet tariff table.
// Speeds on the page are in kbit-scaled units, so the extracted digit run
// is divided by 1000 to get Mbit/s. These rows carry no channel count.
func (in *Interpreter) processTariffTable(tableIdx int, rows *goquery.Selection, tariffs []models.Tariff) ([]models.Tariff, error) {
	var err error

	rows.Slice(1, rows.Length()).EachWithBreak(func(i int, row *goquery.Selection) bool {
		rowIdx := i + 1
		cells := row.Find("td")

		if cells.Length() <= tariffSpeedCell {
			err = &ExtractionError{tableIdx, rowIdx, "speed",
				fmt.Sprintf("row has %d cells, need at least %d", cells.Length(), tariffSpeedCell+1)}
			return false
		}

		name := strings.TrimSpace(cells.Eq(tariffNameCell).Text())

		speedText := strings.TrimSpace(cells.Eq(tariffSpeedCell).Text())
		raw, ok := extractLeadingDigits(speedText)
		if !ok {
			err = &ExtractionError{tableIdx, rowIdx, "speed",
				fmt.Sprintf("no digits in %q", speedText)}
			return false
		}

		payText := firstToken(cells.Eq(tariffPaymentCell).Text())
		payment, perr := strconv.Atoi(payText)
		if perr != nil {
			err = &ExtractionError{tableIdx, rowIdx, "payment",
				fmt.Sprintf("cannot parse %q as integer", payText)}
			return false
		}

		tariffs = append(tariffs, models.Tariff{
			Name:      name,
			SpeedMbps: raw / 1000,
			Payment:   payment,
		})
		return true
	})

	if err != nil {
		return nil, err
	}
	return tariffs, nil
}

// processTariffTVTable extracts rows from an internet+TV bundle table.
// Each header cell after the first is one internet-speed column, so a
// single data row fans out into one record per speed column. Channel
// counts come from the bundle label's parenthetical on first sight and
// from the registry on repeats; repeats get the name suffix "TB_ч"
// instead of "TB".
func (in *Interpreter) processTariffTVTable(tableIdx int, rows, heads *goquery.Selection, registry map[string]int, tariffs []models.Tariff) ([]models.Tariff, error) {
	var err error

	rows.Slice(1, rows.Length()).EachWithBreak(func(i int, row *goquery.Selection) bool {
		rowIdx := i + 1
		cells := row.Find("td")

		label := strings.TrimSpace(cells.Eq(0).Text())

		channel, repeat := registry[label]
		if !repeat {
			base, count, ok := splitBundleLabel(label)
			if !ok {
				err = &ExtractionError{tableIdx, rowIdx, "name",
					fmt.Sprintf("no parenthesized channel count in %q", label)}
				return false
			}
			// Register under both keys so a later exact repeat of the
			// label and a later bare base-name row both resolve.
			registry[base] = count
			registry[label] = count
			channel = count
		}

		suffix := " + TB"
		if repeat {
			suffix = " + TB_ч"
		}

		for col := 1; col < heads.Length(); col++ {
			head := strings.TrimSpace(heads.Eq(col).Text())
			speed, ok := extractLeadingDigits(head)
			if !ok {
				err = &ExtractionError{tableIdx, rowIdx, "speed",
					fmt.Sprintf("no digits in header %q (column %d)", head, col)}
				return false
			}

			if col >= cells.Length() {
				err = &ExtractionError{tableIdx, rowIdx, "payment",
					fmt.Sprintf("row has no cell for column %d", col)}
				return false
			}
			payText := strings.TrimSpace(cells.Eq(col).Text())
			payment, perr := strconv.Atoi(payText)
			if perr != nil {
				err = &ExtractionError{tableIdx, rowIdx, "payment",
					fmt.Sprintf("cannot parse %q as integer (column %d)", payText, col)}
				return false
			}

			count := channel
			tariffs = append(tariffs, models.Tariff{
				Name:      fmt.Sprintf("%s + РиалКом Интернет %d%s", label, speed, suffix),
				Channels:  &count,
				SpeedMbps: speed,
				Payment:   payment,
			})
		}
		return true
	})

	if err != nil {
		return nil, err
	}
	return tariffs, nil
}
