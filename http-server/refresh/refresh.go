package refresh

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

type Invalidator interface {
	Refresh()
}

type Response struct {
	Status string `json:"status"`
}

// Refresh drops the memoized range fetches; the next load re-queries the
// store. This backs the dashboard's refresh button.
func Refresh(log *slog.Logger, inv Invalidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.refresh.Refresh"

		inv.Refresh()
		log.Info("fetch cache cleared", slog.String("op", op))

		render.JSON(w, r, Response{Status: "ok"})
	}
}
