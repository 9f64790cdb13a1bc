package get

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/an-seung-kwon/ts-ankien-daily-production-analysis-system/internal/i18n"
)

type ResponseLocales struct {
	Locales []string `json:"locales"`
	Default string   `json:"default"`
}

// GetLocales lists the supported UI languages and the configured default.
func GetLocales(log *slog.Logger, defaultLocale string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, ResponseLocales{Locales: i18n.Locales(), Default: defaultLocale})
	}
}

// GetLabels returns the full label table for one locale so the frontend can
// resolve every user-facing string in a single call.
func GetLabels(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, i18n.Labels(r.URL.Query().Get("locale")))
	}
}
