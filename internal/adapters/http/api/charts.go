package api

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/okian/sawboard/internal/adapters/render"
	service "github.com/okian/sawboard/internal/app"
)

// ChartHandler serves the dashboard charts as SVG.
type ChartHandler struct {
	deps Dependencies
}

// NewChartHandler creates a new chart handler.
func NewChartHandler(deps Dependencies) *ChartHandler {
	return &ChartHandler{deps: deps}
}

// HandleTop handles GET /charts/top.svg requests.
func (h *ChartHandler) HandleTop(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "api.chart_top", func(buf *bytes.Buffer, res service.Result) {
		render.TopBarChart(buf, res.Top)
	})
}

// HandleHistogram handles GET /charts/histogram.svg requests.
func (h *ChartHandler) HandleHistogram(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "api.chart_histogram", func(buf *bytes.Buffer, res service.Result) {
		render.Histogram(buf, res.Histogram)
	})
}

func (h *ChartHandler) serve(w http.ResponseWriter, r *http.Request, op string, draw func(*bytes.Buffer, service.Result)) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	q, err := parseQuery(r, h.deps.DefaultWeights())
	if err != nil {
		writeFailure(w, WrapKind(op, ErrBadRequest, err))
		return
	}
	res, err := h.deps.Evaluate(r.Context(), q)
	if err != nil {
		writeFailure(w, Wrap(op, err))
		return
	}
	if !res.Scored {
		writeFailure(w, WrapKind(op, service.ErrNotScored, fmt.Errorf("%s", res.Warning)))
		return
	}

	var buf bytes.Buffer
	draw(&buf, res)
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
