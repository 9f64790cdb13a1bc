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

type ResponseSummary struct {
	KPI       report.KPISummary   `json:"kpi"`
	TopStyles []report.StyleTotal `json:"top_styles"`
	Status    string              `json:"status"`
}

// GetSummary returns the KPI cards and the top-10 styles by summed daily
// production total for the filtered rows.
func GetSummary(log *slog.Logger, loader Loader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.production.get.GetSummary"

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

		render.JSON(w, r, ResponseSummary{
			KPI:       report.Summarize(rows),
			TopStyles: report.TopStyles(rows, 10),
			Status:    rowStatus(len(rows)),
		})
	}
}
