package api

import (
	"net/http"
)

// RankingHandler serves the ranked table and the department list as JSON.
type RankingHandler struct {
	deps Dependencies
}

// NewRankingHandler creates a new ranking handler.
func NewRankingHandler(deps Dependencies) *RankingHandler {
	return &RankingHandler{deps: deps}
}

// HandleRanking handles GET /api/ranking requests. Weights that do not sum
// to 1 still answer 200 with scored=false and a warning.
func (h *RankingHandler) HandleRanking(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_ranking"
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
	writeJSON(w, http.StatusOK, res.Ranking())
}

// HandleDepartments handles GET /api/departments requests.
func (h *RankingHandler) HandleDepartments(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_departments"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	depts, err := h.deps.Departments(r.Context())
	if err != nil {
		writeFailure(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, depts)
}
