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

// GetFilterOptions returns the distinct line/category/style values of the
// fetched range so the sidebar multi-selects can populate without their own
// queries.
func GetFilterOptions(log *slog.Logger, loader Loader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.production.get.GetFilterOptions"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		from, to, err := dateRange(r.URL.Query())
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

		render.JSON(w, r, report.Options(rows))
	}
}
