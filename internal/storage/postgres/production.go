package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/an-seung-kwon/ts-ankien-daily-production-analysis-system/internal/storage"
)

const productionColumns = `production_date, line, category, style_number,
	t_0830, t_0930, t_1000, t_1130, t_1330, t_1430, t_1530, t_1630, t_1730, t_1800, overtime,
	daily_production_total, average_hourly`

// FetchRange is the dashboard's primary fetch path: only the date range is
// pushed to the store, line/category/style narrowing happens downstream in
// memory so adjusting filters never re-queries.
func (s *Storage) FetchRange(ctx context.Context, dateFrom, dateTo string) ([]storage.ProductionRecord, error) {
	return s.FetchProduction(ctx, storage.ProductionFilter{DateFrom: dateFrom, DateTo: dateTo})
}

// FetchProduction pushes the full filter to the store. All filters combine
// with AND; list filters are set membership, the style filter a
// case-insensitive contains.
func (s *Storage) FetchProduction(ctx context.Context, f storage.ProductionFilter) ([]storage.ProductionRecord, error) {
	const op = "storage.postgres.FetchProduction"

	if err := s.db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("%s: ping: %w", op, err)
	}

	exists, err := s.tableExists(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !exists {
		return nil, fmt.Errorf("%s: %s.production_data: %w", op, s.schema, storage.ErrTableNotFound)
	}

	where, args := whereClause(f)
	query := fmt.Sprintf(`SELECT %s FROM %s.production_data WHERE %s ORDER BY production_date, line, style_number`,
		productionColumns, s.schema, where)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var records []storage.ProductionRecord
	for rows.Next() {
		rec, err := scanProduction(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

func whereClause(f storage.ProductionFilter) (string, []interface{}) {
	dateTo := f.DateTo
	if dateTo == "" {
		dateTo = f.DateFrom
	}

	conds := []string{"production_date BETWEEN $1 AND $2"}
	args := []interface{}{f.DateFrom, dateTo}

	if len(f.Lines) > 0 {
		args = append(args, pq.Array(f.Lines))
		conds = append(conds, fmt.Sprintf("line = ANY($%d)", len(args)))
	}
	if len(f.Categories) > 0 {
		args = append(args, pq.Array(f.Categories))
		conds = append(conds, fmt.Sprintf("category = ANY($%d)", len(args)))
	}
	if f.StyleLike != "" {
		args = append(args, "%"+f.StyleLike+"%")
		conds = append(conds, fmt.Sprintf("style_number ILIKE $%d", len(args)))
	}

	return strings.Join(conds, " AND "), args
}

func (s *Storage) tableExists(ctx context.Context) (bool, error) {
	const query = `SELECT 1 FROM information_schema.tables WHERE table_schema = $1 AND table_name = 'production_data'`

	var one int
	err := s.db.QueryRowContext(ctx, query, s.schema).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func scanProduction(rows *sql.Rows) (storage.ProductionRecord, error) {
	var rec storage.ProductionRecord
	var date time.Time

	err := rows.Scan(
		&date,
		&rec.Line,
		&rec.Category,
		&rec.StyleNumber,
		&rec.T0830, &rec.T0930, &rec.T1000, &rec.T1130, &rec.T1330,
		&rec.T1430, &rec.T1530, &rec.T1630, &rec.T1730, &rec.T1800,
		&rec.Overtime,
		&rec.DailyTotal,
		&rec.AverageHourly,
	)
	if err != nil {
		return rec, err
	}

	rec.ProductionDate = date.Format("2006-01-02")
	return rec, nil
}
