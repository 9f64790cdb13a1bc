package get

import (
	"log/slog"
	"net/http"

	"github.com/an-seung-kwon/ts-ankien-daily-production-analysis-system/internal/service/export"
)

// DownloadExcel streams the styled workbook report for the filtered rows.
func DownloadExcel(log *slog.Logger, loader Loader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.export.get.DownloadExcel"

		rows, from, to, ok := loadFiltered(log.With(slog.String("op", op)), w, r, loader)
		if !ok {
			return
		}

		data, err := export.Excel(r.URL.Query().Get("locale"), rows)
		if err != nil {
			log.Error("failed to generate excel", "op", op, "err", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename="+export.FileName(from, to, "xlsx"))
		w.Write(data)
	}
}
