package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/render"

	"github.com/an-seung-kwon/ts-ankien-daily-production-analysis-system/internal/i18n"
	"github.com/an-seung-kwon/ts-ankien-daily-production-analysis-system/internal/service/report"
	"github.com/an-seung-kwon/ts-ankien-daily-production-analysis-system/internal/storage"
)

type Loader interface {
	Load(ctx context.Context, dateFrom, dateTo string) ([]storage.ProductionRecord, error)
}

type ResponseError struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// dateRange reads date_from/date_to from the query. Both default so that a
// bare request means "today": a missing date_to collapses the range to a
// single day.
func dateRange(q url.Values) (string, string, error) {
	from := q.Get("date_from")
	if from == "" {
		from = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", from); err != nil {
		return "", "", errors.New("invalid date_from")
	}

	to := q.Get("date_to")
	if to == "" {
		to = from
	} else if _, err := time.Parse("2006-01-02", to); err != nil {
		return "", "", errors.New("invalid date_to")
	}

	return from, to, nil
}

// clientFilter mirrors the sidebar controls; these are applied in memory
// against the cached range fetch, never pushed back to the store.
func clientFilter(q url.Values) report.Filter {
	return report.Filter{
		Lines:       q["line"],
		Categories:  q["category"],
		Styles:      q["style"],
		StyleSearch: q.Get("style_like"),
	}
}

func respondStoreError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	locale := r.URL.Query().Get("locale")

	if errors.Is(err, storage.ErrTableNotFound) {
		log.Error("production table missing", slog.String("error", err.Error()))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, ResponseError{Status: "error", Error: i18n.T(locale, "table_missing")})
		return
	}

	log.Error("failed to load production rows", slog.String("error", err.Error()))
	w.WriteHeader(http.StatusInternalServerError)
	render.JSON(w, r, ResponseError{Status: "error", Error: "internal error"})
}

func rowStatus(n int) string {
	if n == 0 {
		return "no_data"
	}
	return "ok"
}
