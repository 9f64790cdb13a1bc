package report

import (
	"sort"
	"strings"

	"github.com/an-seung-kwon/ts-ankien-daily-production-analysis-system/internal/storage"
)

// HourlyPoint is one point of the hourly trend: quantity summed over all
// lines and styles for one date and time bucket.
type HourlyPoint struct {
	ProductionDate string `json:"production_date"`
	TimeLabel      string `json:"time_label"`
	Qty            int64  `json:"qty"`
}

// StyleRow is one row of the detail grid; Qty is aligned with the grid's
// Columns and Total is the sum of the displayed cells only.
type StyleRow struct {
	StyleNumber string  `json:"style_number"`
	Qty         []int64 `json:"qty"`
	Total       int64   `json:"total"`
}

type StyleTimeGrid struct {
	Columns []string   `json:"columns"`
	Rows    []StyleRow `json:"rows"`
}

type KPISummary struct {
	TotalOutput   int64   `json:"total_output"`
	AverageHourly float64 `json:"average_hourly"`
}

type StyleTotal struct {
	StyleNumber string `json:"style_number"`
	DailyTotal  int64  `json:"daily_production_total"`
}

// MeltHourly unpivots the per-bucket columns into (date, time label, qty)
// rows and sums them per date and bucket, discarding line/style granularity.
// One point is emitted per (date, present bucket) pair even when the sum is
// zero. No recognized bucket columns means an empty result, not an error.
func MeltHourly(rows []storage.ProductionRecord) []HourlyPoint {
	present := presentFields(rows)
	if len(present) == 0 {
		return nil
	}

	sums := make(map[string]map[string]int64)
	for _, rec := range rows {
		byLabel, ok := sums[rec.ProductionDate]
		if !ok {
			byLabel = make(map[string]int64)
			sums[rec.ProductionDate] = byLabel
		}
		for _, field := range present {
			if qty := bucketQty(rec, field); qty != nil {
				byLabel[bucketLabel(field)] += *qty
			}
		}
	}

	dates := make([]string, 0, len(sums))
	for date := range sums {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	points := make([]HourlyPoint, 0, len(dates)*len(present))
	for _, date := range dates {
		for _, field := range present {
			label := bucketLabel(field)
			points = append(points, HourlyPoint{
				ProductionDate: date,
				TimeLabel:      label,
				Qty:            sums[date][label],
			})
		}
	}
	return points
}

// HourlyDetailGrid pivots bucket quantities into one row per style number,
// summed across all dates in the input. Columns are the present buckets in
// display order; missing cells are zero; Total sums the displayed columns.
// Styles named in priorityOrder come first in that order, the rest follow in
// ascending style order; priority styles absent from the data are skipped.
func HourlyDetailGrid(rows []storage.ProductionRecord, priorityOrder []string) StyleTimeGrid {
	present := presentFields(rows)
	if len(present) == 0 {
		return StyleTimeGrid{}
	}

	sums := make(map[string]map[string]int64)
	for _, rec := range rows {
		if rec.StyleNumber == "" {
			continue
		}
		byLabel, ok := sums[rec.StyleNumber]
		if !ok {
			byLabel = make(map[string]int64)
			sums[rec.StyleNumber] = byLabel
		}
		for _, field := range present {
			if qty := bucketQty(rec, field); qty != nil {
				byLabel[bucketLabel(field)] += *qty
			}
		}
	}
	if len(sums) == 0 {
		return StyleTimeGrid{}
	}

	styles := make([]string, 0, len(sums))
	for style := range sums {
		styles = append(styles, style)
	}
	sort.Strings(styles)
	styles = reorderByPriority(styles, priorityOrder)

	columns := make([]string, len(present))
	for i, field := range present {
		columns[i] = bucketLabel(field)
	}

	grid := StyleTimeGrid{Columns: columns, Rows: make([]StyleRow, 0, len(styles))}
	for _, style := range styles {
		row := StyleRow{StyleNumber: style, Qty: make([]int64, len(columns))}
		for i, label := range columns {
			row.Qty[i] = sums[style][label]
			row.Total += sums[style][label]
		}
		grid.Rows = append(grid.Rows, row)
	}
	return grid
}

func reorderByPriority(styles, priorityOrder []string) []string {
	if len(priorityOrder) == 0 {
		return styles
	}

	existing := make(map[string]bool, len(styles))
	for _, s := range styles {
		existing[s] = true
	}

	ordered := make([]string, 0, len(styles))
	picked := make(map[string]bool, len(priorityOrder))
	for _, s := range priorityOrder {
		if existing[s] && !picked[s] {
			ordered = append(ordered, s)
			picked[s] = true
		}
	}
	for _, s := range styles {
		if !picked[s] {
			ordered = append(ordered, s)
		}
	}
	return ordered
}

// Summarize computes the two KPI cards: total output treats missing daily
// totals as zero, average hourly is the mean over rows that have a value.
func Summarize(rows []storage.ProductionRecord) KPISummary {
	var kpi KPISummary
	var n int
	var sum float64
	for _, rec := range rows {
		if rec.DailyTotal != nil {
			kpi.TotalOutput += *rec.DailyTotal
		}
		if rec.AverageHourly != nil {
			sum += *rec.AverageHourly
			n++
		}
	}
	if n > 0 {
		kpi.AverageHourly = sum / float64(n)
	}
	return kpi
}

// TopStyles groups rows by style number, sums daily_production_total and
// returns the top n styles by that sum, descending. Ties keep ascending
// style order.
func TopStyles(rows []storage.ProductionRecord, n int) []StyleTotal {
	sums := make(map[string]int64)
	for _, rec := range rows {
		if rec.StyleNumber == "" {
			continue
		}
		var total int64
		if rec.DailyTotal != nil {
			total = *rec.DailyTotal
		}
		sums[rec.StyleNumber] += total
	}
	if len(sums) == 0 {
		return nil
	}

	totals := make([]StyleTotal, 0, len(sums))
	for style, total := range sums {
		totals = append(totals, StyleTotal{StyleNumber: style, DailyTotal: total})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].DailyTotal != totals[j].DailyTotal {
			return totals[i].DailyTotal > totals[j].DailyTotal
		}
		return totals[i].StyleNumber < totals[j].StyleNumber
	})

	if n > 0 && len(totals) > n {
		totals = totals[:n]
	}
	return totals
}

// Filter narrows an already fetched row set in memory, mirroring the sidebar
// controls: explicit style selection wins over the free-text search.
type Filter struct {
	Lines       []string
	Categories  []string
	Styles      []string
	StyleSearch string
}

func ApplyFilters(rows []storage.ProductionRecord, f Filter) []storage.ProductionRecord {
	lines := toSet(f.Lines)
	cats := toSet(f.Categories)
	styles := toSet(f.Styles)
	search := strings.ToLower(f.StyleSearch)

	out := make([]storage.ProductionRecord, 0, len(rows))
	for _, rec := range rows {
		if len(lines) > 0 && !lines[rec.Line] {
			continue
		}
		if len(cats) > 0 && !cats[rec.Category] {
			continue
		}
		if len(styles) > 0 {
			if !styles[rec.StyleNumber] {
				continue
			}
		} else if search != "" && !strings.Contains(strings.ToLower(rec.StyleNumber), search) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func toSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

// FilterOptions are the distinct values offered by the sidebar multi-selects,
// computed from the fetched range rather than queried separately.
type FilterOptions struct {
	Lines      []string `json:"lines"`
	Categories []string `json:"categories"`
	Styles     []string `json:"styles"`
}

func Options(rows []storage.ProductionRecord) FilterOptions {
	return FilterOptions{
		Lines:      distinct(rows, func(r storage.ProductionRecord) string { return r.Line }),
		Categories: distinct(rows, func(r storage.ProductionRecord) string { return r.Category }),
		Styles:     distinct(rows, func(r storage.ProductionRecord) string { return r.StyleNumber }),
	}
}

func distinct(rows []storage.ProductionRecord, key func(storage.ProductionRecord) string) []string {
	seen := make(map[string]bool)
	var values []string
	for _, rec := range rows {
		v := key(rec)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
