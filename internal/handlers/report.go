package handlers

import (
	"errors"
	"net/http"

	"storefront-be/internal/importer"
	"storefront-be/internal/logger"
	"storefront-be/internal/report"

	"go.uber.org/zap"
)

type ReportHandler struct {
	reports  report.Service
	importer importer.Service
}

func NewReportHandler(reports report.Service, imp importer.Service) *ReportHandler {
	return &ReportHandler{reports: reports, importer: imp}
}

// Summary handles GET /report.
func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.reports.Summary(r.Context())
	if err != nil {
		logger.FromCtx(r.Context()).Error("failed to generate report", zap.Error(err))
		writeError(w, "failed to generate report", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// Export handles GET /report/export: the summary as a CSV download.
func (h *ReportHandler) Export(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=summary_report.csv")

	if err := h.reports.ExportCSV(r.Context(), w); err != nil {
		logger.FromCtx(r.Context()).Error("failed to export report", zap.Error(err))
	}
}

// Import handles POST /import: a multipart catalog CSV upload.
func (h *ReportHandler) Import(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, "missing csv file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	count, err := h.importer.Import(r.Context(), file)
	if err != nil {
		if errors.Is(err, importer.ErrMissingColumns) || errors.Is(err, importer.ErrInvalidRow) {
			writeError(w, err.Error(), http.StatusBadRequest)
			return
		}
		logger.FromCtx(r.Context()).Error("catalog import failed", zap.Error(err))
		writeError(w, "import failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"imported": count})
}
