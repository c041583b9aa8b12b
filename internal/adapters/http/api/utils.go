package api

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/okian/sawboard/internal/adapters/repository"
	service "github.com/okian/sawboard/internal/app"
	"github.com/okian/sawboard/internal/domain/scoring"
)

// Query parameters shared by every ranking endpoint.
const (
	paramSurvey       = "w_survey"
	paramSatisfaction = "w_satisfaction"
	paramProjects     = "w_projects"
	paramAbsences     = "w_absences"
	paramDepartment   = "department"
)

// parseQuery reads the weights and department of r. Missing weights fall
// back to defaults; a missing department selects every record.
func parseQuery(r *http.Request, defaults scoring.Weights) (service.Query, error) {
	values := r.URL.Query()
	w := defaults
	for _, p := range []struct {
		name string
		dst  *float64
	}{
		{paramSurvey, &w.Survey},
		{paramSatisfaction, &w.Satisfaction},
		{paramProjects, &w.Projects},
		{paramAbsences, &w.Absences},
	} {
		raw := strings.TrimSpace(values.Get(p.name))
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return service.Query{}, fmt.Errorf("%w: %s=%q is not a number", ErrBadRequest, p.name, raw)
		}
		*p.dst = v
	}

	dept := strings.TrimSpace(values.Get(paramDepartment))
	if dept == "" {
		dept = repository.AllDepartments
	}
	return service.Query{Weights: w, Department: dept}, nil
}

// encodeQuery is the inverse of parseQuery.
func encodeQuery(q service.Query) string {
	v := url.Values{}
	v.Set(paramSurvey, formatWeight(q.Weights.Survey))
	v.Set(paramSatisfaction, formatWeight(q.Weights.Satisfaction))
	v.Set(paramProjects, formatWeight(q.Weights.Projects))
	v.Set(paramAbsences, formatWeight(q.Weights.Absences))
	v.Set(paramDepartment, q.Department)
	return v.Encode()
}

func formatWeight(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// statusFor maps an error onto the response status and error code.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, ErrBadRequest), errors.Is(err, service.ErrInvalidWeights):
		return http.StatusBadRequest, "bad_request"
	case errors.Is(err, repository.ErrUnknownDepartment):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, service.ErrNotScored):
		return http.StatusUnprocessableEntity, "weights_invalid"
	case errors.Is(err, service.ErrNotStarted), errors.Is(err, ErrUnavailable):
		return http.StatusServiceUnavailable, "unavailable"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}
