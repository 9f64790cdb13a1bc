package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/an-seung-kwon/ts-ankien-daily-production-analysis-system/internal/i18n"
	"github.com/an-seung-kwon/ts-ankien-daily-production-analysis-system/internal/service/export"
	"github.com/an-seung-kwon/ts-ankien-daily-production-analysis-system/internal/service/report"
	"github.com/an-seung-kwon/ts-ankien-daily-production-analysis-system/internal/storage"
)

type Loader interface {
	Load(ctx context.Context, dateFrom, dateTo string) ([]storage.ProductionRecord, error)
}

// DownloadCSV streams the currently filtered rows as a UTF-8-BOM CSV named
// after the selected date or range.
func DownloadCSV(log *slog.Logger, loader Loader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.export.get.DownloadCSV"

		rows, from, to, ok := loadFiltered(log.With(slog.String("op", op)), w, r, loader)
		if !ok {
			return
		}

		data, err := export.CSV(rows)
		if err != nil {
			log.Error("failed to build csv", "op", op, "err", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", "attachment; filename="+export.FileName(from, to, "csv"))
		w.Write(data)
	}
}

func loadFiltered(log *slog.Logger, w http.ResponseWriter, r *http.Request, loader Loader) ([]storage.ProductionRecord, string, string, bool) {
	q := r.URL.Query()

	from := q.Get("date_from")
	if from == "" {
		from = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", from); err != nil {
		http.Error(w, "invalid date_from", http.StatusBadRequest)
		return nil, "", "", false
	}
	to := q.Get("date_to")
	if to == "" {
		to = from
	} else if _, err := time.Parse("2006-01-02", to); err != nil {
		http.Error(w, "invalid date_to", http.StatusBadRequest)
		return nil, "", "", false
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	rows, err := loader.Load(ctx, from, to)
	if err != nil {
		if errors.Is(err, storage.ErrTableNotFound) {
			log.Error("production table missing", slog.String("error", err.Error()))
			http.Error(w, i18n.T(q.Get("locale"), "table_missing"), http.StatusNotFound)
			return nil, "", "", false
		}
		log.Error("failed to load production rows", slog.String("error", err.Error()))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return nil, "", "", false
	}

	rows = report.ApplyFilters(rows, report.Filter{
		Lines:       q["line"],
		Categories:  q["category"],
		Styles:      q["style"],
		StyleSearch: q.Get("style_like"),
	})
	return rows, from, to, true
}
