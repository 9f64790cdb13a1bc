package report

import (
	"strings"

	"github.com/an-seung-kwon/ts-ankien-daily-production-analysis-system/internal/storage"
)

// hourFields is the fixed display order of the eleven time-of-day buckets.
// Every place that renders or aggregates buckets iterates this slice, never a
// map, so columns always come out in clock order with overtime last.
var hourFields = []string{
	"t_0830", "t_0930", "t_1000", "t_1130", "t_1330", "t_1430", "t_1530", "t_1630", "t_1730", "t_1800", "overtime",
}

// bucketLabel maps a raw column name to its display label: t_0830 -> 08:30,
// overtime -> OT.
func bucketLabel(field string) string {
	if field == "overtime" {
		return "OT"
	}
	t := strings.TrimPrefix(field, "t_")
	return t[:2] + ":" + t[2:]
}

func bucketQty(rec storage.ProductionRecord, field string) *int64 {
	switch field {
	case "t_0830":
		return rec.T0830
	case "t_0930":
		return rec.T0930
	case "t_1000":
		return rec.T1000
	case "t_1130":
		return rec.T1130
	case "t_1330":
		return rec.T1330
	case "t_1430":
		return rec.T1430
	case "t_1530":
		return rec.T1530
	case "t_1630":
		return rec.T1630
	case "t_1730":
		return rec.T1730
	case "t_1800":
		return rec.T1800
	case "overtime":
		return rec.Overtime
	}
	return nil
}

// presentFields returns the bucket columns that carry a value in at least one
// row, in display order. Buckets never filled in the fetched range are
// dropped from every derived view.
func presentFields(rows []storage.ProductionRecord) []string {
	var present []string
	for _, field := range hourFields {
		for _, rec := range rows {
			if bucketQty(rec, field) != nil {
				present = append(present, field)
				break
			}
		}
	}
	return present
}
