package api

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/okian/sawboard/internal/adapters/export"
)

// ExportHandler serves the ranked table as a CSV download.
type ExportHandler struct {
	deps     Dependencies
	filename string
}

// NewExportHandler creates a new export handler.
func NewExportHandler(deps Dependencies, filename string) *ExportHandler {
	return &ExportHandler{deps: deps, filename: filename}
}

// HandleExport handles GET /export.csv requests. Unscored results are
// refused with 422.
func (h *ExportHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	const op = "api.export_csv"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	q, err := parseQuery(r, h.deps.DefaultWeights())
	if err != nil {
		writeFailure(w, WrapKind(op, ErrBadRequest, err))
		return
	}

	// Buffered so a failure can still be reported with a proper status.
	var buf bytes.Buffer
	if err := h.deps.Export(r.Context(), q, &buf); err != nil {
		writeFailure(w, Wrap(op, err))
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", export.ContentDisposition(h.filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
