package main

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	exportget "github.com/an-seung-kwon/ts-ankien-daily-production-analysis-system/http-server/export/get"
	i18nget "github.com/an-seung-kwon/ts-ankien-daily-production-analysis-system/http-server/i18n/get"
	productionget "github.com/an-seung-kwon/ts-ankien-daily-production-analysis-system/http-server/production/get"
	"github.com/an-seung-kwon/ts-ankien-daily-production-analysis-system/http-server/refresh"
	"github.com/an-seung-kwon/ts-ankien-daily-production-analysis-system/internal/config"
	"github.com/an-seung-kwon/ts-ankien-daily-production-analysis-system/internal/service/report"
)

func routes(cfg config.Config, log *slog.Logger, svc *report.Service) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// Filtered rows for the selected range.
	router.Get("/api/production", productionget.GetProduction(log, svc))

	// Derived views over the same filtered rows.
	router.Get("/api/production/summary", productionget.GetSummary(log, svc))
	router.Get("/api/production/hourly", productionget.GetHourlyTrend(log, svc))
	router.Get("/api/production/detail", productionget.GetDetailGrid(log, svc))
	router.Get("/api/production/options", productionget.GetFilterOptions(log, svc))

	// Downloads of the filtered row set.
	router.Get("/api/export/csv", exportget.DownloadCSV(log, svc))
	router.Get("/api/export/excel", exportget.DownloadExcel(log, svc))

	// Refresh button: drop the memoized fetches.
	router.Post("/api/refresh", refresh.Refresh(log, svc))

	// Localization surface.
	router.Get("/api/locales", i18nget.GetLocales(log, cfg.DefaultLocale))
	router.Get("/api/labels", i18nget.GetLabels(log))

	// Static SPA frontend, when a build is present next to the binary.
	frontendDir := "./frontend-dist"
	if _, err := os.Stat(frontendDir); os.IsNotExist(err) {
		log.Warn("frontend build not found, serving API only", "path", frontendDir)
		return router
	}

	fileServer := http.StripPrefix("/", http.FileServer(http.Dir(frontendDir)))
	router.Handle("/assets/*", fileServer)
	router.Handle("/js/*", fileServer)
	router.Handle("/css/*", fileServer)
	router.Handle("/img/*", fileServer)

	// SPA fallback: existing files are served as-is, everything else gets
	// index.html.
	router.HandleFunc("/*", func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(frontendDir, r.URL.Path)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			http.ServeFile(w, r, path)
			return
		}
		http.ServeFile(w, r, filepath.Join(frontendDir, "index.html"))
	})

	return router
}
