package get

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"github.com/an-seung-kwon/ts-ankien-daily-production-analysis-system/internal/service/report"
)

type ResponseDetail struct {
	Grid   report.StyleTimeGrid `json:"grid"`
	Status string               `json:"status"`
}

// GetDetailGrid returns the per-style hourly breakdown. The top styles of the
// same filtered rows lead the grid, the rest follow in style order, matching
// the summary table the user just looked at.
func GetDetailGrid(log *slog.Logger, loader Loader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.production.get.GetDetailGrid"

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

		top := report.TopStyles(rows, 10)
		order := make([]string, 0, len(top))
		for _, t := range top {
			order = append(order, t.StyleNumber)
		}
		grid := report.HourlyDetailGrid(rows, order)

		render.JSON(w, r, ResponseDetail{Grid: grid, Status: rowStatus(len(grid.Rows))})
	}
}
