package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/an-seung-kwon/ts-ankien-daily-production-analysis-system/internal/i18n"
	"github.com/an-seung-kwon/ts-ankien-daily-production-analysis-system/internal/service/report"
	"github.com/an-seung-kwon/ts-ankien-daily-production-analysis-system/internal/storage"
)

// Excel renders the filtered rows as a styled workbook: the two KPI values on
// top, then the per-style hourly grid. Labels follow the requested locale.
func Excel(locale string, rows []storage.ProductionRecord) ([]byte, error) {
	const op = "export.Excel"

	kpi := report.Summarize(rows)
	top := report.TopStyles(rows, 10)
	order := make([]string, 0, len(top))
	for _, t := range top {
		order = append(order, t.StyleNumber)
	}
	grid := report.HourlyDetailGrid(rows, order)

	f := excelize.NewFile()
	defer f.Close()
	sheet := i18n.T(locale, "app_title")
	f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})

	// KPI block
	f.SetCellValue(sheet, "A1", i18n.T(locale, "kpi_total_output"))
	f.SetCellValue(sheet, "B1", kpi.TotalOutput)
	f.SetCellValue(sheet, "A2", i18n.T(locale, "kpi_avg_hourly"))
	f.SetCellValue(sheet, "B2", kpi.AverageHourly)

	// Grid header: style column, one column per present bucket, Total.
	const headerRow = 4
	headers := append([]string{i18n.T(locale, "style")}, grid.Columns...)
	headers = append(headers, "Total")
	for i, name := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, headerRow)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		f.SetCellValue(sheet, cell, name)
	}
	lastCol, _ := excelize.CoordinatesToCellName(len(headers), headerRow)
	firstCol, _ := excelize.CoordinatesToCellName(1, headerRow)
	f.SetCellStyle(sheet, firstCol, lastCol, headerStyle)

	for r, row := range grid.Rows {
		cells := make([]interface{}, 0, len(headers))
		cells = append(cells, row.StyleNumber)
		for _, qty := range row.Qty {
			cells = append(cells, qty)
		}
		cells = append(cells, row.Total)

		for c, v := range cells {
			cell, err := excelize.CoordinatesToCellName(c+1, headerRow+1+r)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return buf.Bytes(), nil
}
