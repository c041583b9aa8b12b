package api

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"

	"github.com/okian/sawboard/internal/domain/types"
)

const sliderStep = 0.05

var dashboardTmpl = template.Must(
	template.New("dashboard.html").Funcs(template.FuncMap{
		"num":   func(v float64) string { return fmt.Sprintf("%.2f", v) },
		"score": func(v *float64) string { return optional(v, "%.4f") },
		"rank":  func(v *float64) string { return optional(v, "%g") },
	}).ParseFS(dashboardFS, "dashboard.html"),
)

type slider struct {
	Name  string
	Label string
	Value float64
}

type dashboardView struct {
	Sliders     []slider
	Step        float64
	Departments []string
	Department  string
	Sum         float64
	Ranking     types.Ranking
	TopChart    template.URL
	HistChart   template.URL
	ExportURL   template.URL
	JSONURL     template.URL
}

// dashboardHandler renders the interactive ranking page.
type dashboardHandler struct {
	deps Dependencies
}

func newDashboardHandler(deps Dependencies) *dashboardHandler {
	return &dashboardHandler{deps: deps}
}

// HandleDashboard handles GET /dashboard requests. The page is rendered on
// the server from the same query parameters the JSON API takes.
func (h *dashboardHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	const op = "api.dashboard"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	q, err := parseQuery(r, h.deps.DefaultWeights())
	if err != nil {
		writeFailure(w, WrapKind(op, ErrBadRequest, err))
		return
	}
	depts, err := h.deps.Departments(r.Context())
	if err != nil {
		writeFailure(w, Wrap(op, err))
		return
	}
	res, err := h.deps.Evaluate(r.Context(), q)
	if err != nil {
		writeFailure(w, Wrap(op, err))
		return
	}

	encoded := encodeQuery(q)
	view := dashboardView{
		Sliders: []slider{
			{Name: paramSurvey, Label: "Engagement Survey", Value: q.Weights.Survey},
			{Name: paramSatisfaction, Label: "Employee Satisfaction", Value: q.Weights.Satisfaction},
			{Name: paramProjects, Label: "Special Projects", Value: q.Weights.Projects},
			{Name: paramAbsences, Label: "Absences (cost)", Value: q.Weights.Absences},
		},
		Step:        sliderStep,
		Departments: depts,
		Department:  q.Department,
		Sum:         q.Weights.Sum(),
		Ranking:     res.Ranking(),
		TopChart:    template.URL("/charts/top.svg?" + encoded),
		HistChart:   template.URL("/charts/histogram.svg?" + encoded),
		ExportURL:   template.URL("/export.csv?" + encoded),
		JSONURL:     template.URL("/api/ranking?" + encoded),
	}

	var buf bytes.Buffer
	if err := dashboardTmpl.Execute(&buf, view); err != nil {
		writeFailure(w, WrapKind(op, ErrRender, err))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func optional(v *float64, format string) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf(format, *v)
}
