package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/vkamarthi/heritage-collect/internal/logger"
)

// CSVExporter defines the interface that the export service must implement.
type CSVExporter interface {
	WriteCSV(ctx context.Context, w io.Writer) error
}

// NewExportHandler returns an HTTP handler that serves the full joined
// submission data as a downloadable CSV. Produced on demand, no row limit.
// @Summary CSV export
// @Description Downloads all submissions joined to user names as CSV.
// @Tags admin
// @Produce text/csv
// @Success 200 {string} string "CSV document"
// @Failure 401 {object} handlers.ErrorResponse "Not logged in"
// @Failure 403 {object} handlers.ErrorResponse "Admins only"
// @Router /admin/export [get]
func NewExportHandler(svc CSVExporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Buffer so a mid-serialization failure still returns a clean error
		// instead of a truncated download.
		var buf bytes.Buffer
		if err := svc.WriteCSV(r.Context(), &buf); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="all_user_submissions.csv"`)
		w.Write(buf.Bytes())
	}
}
