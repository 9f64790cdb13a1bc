package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/an-seung-kwon/ts-ankien-daily-production-analysis-system/internal/storage"
)

func i64(v int64) *int64 { return &v }

func f64(v float64) *float64 { return &v }

func TestCSV_StartsWithBOM(t *testing.T) {
	data, err := CSV(nil)

	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}))
}

func TestCSV_RowsAndNulls(t *testing.T) {
	rows := []storage.ProductionRecord{
		{
			ProductionDate: "2024-01-01",
			Line:           "A",
			Category:       "TOPS",
			StyleNumber:    "S1",
			T0830:          i64(5),
			DailyTotal:     i64(5),
			AverageHourly:  f64(2.5),
		},
	}

	data, err := CSV(rows)
	assert.NoError(t, err)

	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})))
	records, err := r.ReadAll()
	assert.NoError(t, err)
	assert.Len(t, records, 2)

	assert.Equal(t, csvHeader, records[0])
	assert.Equal(t, "2024-01-01", records[1][0])
	assert.Equal(t, "5", records[1][4])
	// NULL buckets stay empty, not zero.
	assert.Equal(t, "", records[1][5])
	assert.Equal(t, "2.5", records[1][16])
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "production_2024-01-01.csv", FileName("2024-01-01", "2024-01-01", "csv"))
	assert.Equal(t, "production_2024-01-01.csv", FileName("2024-01-01", "", "csv"))
	assert.Equal(t, "production_2024-01-01_to_2024-01-05.csv", FileName("2024-01-01", "2024-01-05", "csv"))
	assert.Equal(t, "production_2024-01-01_to_2024-01-05.xlsx", FileName("2024-01-01", "2024-01-05", "xlsx"))
}
