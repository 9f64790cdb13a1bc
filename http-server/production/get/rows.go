package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"github.com/an-seung-kwon/ts-ankien-daily-production-analysis-system/internal/service/report"
	"github.com/an-seung-kwon/ts-ankien-daily-production-analysis-system/internal/storage"
)

type ResponseRows struct {
	Rows   []storage.ProductionRecord `json:"rows"`
	Status string                     `json:"status"`
}

// GetProduction returns the filtered row set for a date range. The range is
// the only filter pushed to the store; line/category/style narrowing happens
// here against the memoized rows.
func GetProduction(log *slog.Logger, loader Loader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.production.get.GetProduction"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		q := r.URL.Query()
		from, to, err := dateRange(q)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		rows, err := loader.Load(ctx, from, to)
		if err != nil {
			respondStoreError(log, w, r, err)
			return
		}

		rows = report.ApplyFilters(rows, clientFilter(q))

		render.JSON(w, r, ResponseRows{Rows: rows, Status: rowStatus(len(rows))})
	}
}
