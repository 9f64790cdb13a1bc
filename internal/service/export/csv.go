package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/an-seung-kwon/ts-ankien-daily-production-analysis-system/internal/storage"
)

var csvHeader = []string{
	"production_date", "line", "category", "style_number",
	"t_0830", "t_0930", "t_1000", "t_1130", "t_1330", "t_1430", "t_1530", "t_1630", "t_1730", "t_1800", "overtime",
	"daily_production_total", "average_hourly",
}

// CSV serializes the filtered row set as UTF-8 comma-separated values with a
// byte-order mark so Excel opens Korean text correctly. NULL cells stay
// empty.
func CSV(rows []storage.ProductionRecord) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write([]byte{0xEF, 0xBB, 0xBF})

	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("export.CSV: header: %w", err)
	}

	for _, rec := range rows {
		record := []string{
			rec.ProductionDate,
			rec.Line,
			rec.Category,
			rec.StyleNumber,
			intCell(rec.T0830), intCell(rec.T0930), intCell(rec.T1000), intCell(rec.T1130), intCell(rec.T1330),
			intCell(rec.T1430), intCell(rec.T1530), intCell(rec.T1630), intCell(rec.T1730), intCell(rec.T1800),
			intCell(rec.Overtime),
			intCell(rec.DailyTotal),
			floatCell(rec.AverageHourly),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("export.CSV: row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("export.CSV: flush: %w", err)
	}
	return buf.Bytes(), nil
}

// FileName encodes the selected range into the download name:
// production_2024-01-01.csv for a single day, production_<from>_to_<to>.csv
// for a range.
func FileName(dateFrom, dateTo, ext string) string {
	if dateTo == "" || dateTo == dateFrom {
		return fmt.Sprintf("production_%s.%s", dateFrom, ext)
	}
	return fmt.Sprintf("production_%s_to_%s.%s", dateFrom, dateTo, ext)
}

func intCell(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func floatCell(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
