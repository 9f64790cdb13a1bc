package storage

import "errors"

// ErrTableNotFound means <schema>.production_data does not exist. Handlers
// report it to the user and abort the interaction instead of crashing.
var ErrTableNotFound = errors.New("production table not found")

// ProductionRecord is one row of <schema>.production_data: one line/style/day
// with quantities at the fixed times of day. Bucket fields and the derived
// totals are pointers because the table allows NULLs; the store is trusted,
// daily_production_total is never reconciled against the bucket sum.
type ProductionRecord struct {
	ProductionDate string   `json:"production_date"`
	Line           string   `json:"line"`
	Category       string   `json:"category"`
	StyleNumber    string   `json:"style_number"`
	T0830          *int64   `json:"t_0830"`
	T0930          *int64   `json:"t_0930"`
	T1000          *int64   `json:"t_1000"`
	T1130          *int64   `json:"t_1130"`
	T1330          *int64   `json:"t_1330"`
	T1430          *int64   `json:"t_1430"`
	T1530          *int64   `json:"t_1530"`
	T1630          *int64   `json:"t_1630"`
	T1730          *int64   `json:"t_1730"`
	T1800          *int64   `json:"t_1800"`
	Overtime       *int64   `json:"overtime"`
	DailyTotal     *int64   `json:"daily_production_total"`
	AverageHourly  *float64 `json:"average_hourly"`
}

// ProductionFilter is the full pushdown contract: the date range is required,
// everything else optional and combined with AND. The dashboard's primary
// path only pushes the range and narrows the rest in memory.
type ProductionFilter struct {
	DateFrom   string   `json:"date_from"`
	DateTo     string   `json:"date_to"`
	Lines      []string `json:"lines,omitempty"`
	Categories []string `json:"categories,omitempty"`
	StyleLike  string   `json:"style_like,omitempty"`
}
