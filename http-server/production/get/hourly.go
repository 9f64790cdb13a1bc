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

type ResponseHourly struct {
	Points []report.HourlyPoint `json:"points"`
	Status string               `json:"status"`
}

// GetHourlyTrend returns the melted time series: quantity per date and time
// bucket, summed over lines and styles. The chart encodes the time label on
// one axis, so point order does not matter to the consumer; it comes out
// date-ascending in bucket display order anyway.
func GetHourlyTrend(log *slog.Logger, loader Loader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.production.get.GetHourlyTrend"

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
		points := report.MeltHourly(rows)

		render.JSON(w, r, ResponseHourly{Points: points, Status: rowStatus(len(points))})
	}
}
