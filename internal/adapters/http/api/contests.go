package api

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/okian/concursos/internal/domain/filter"
)

// ContestsHandler serves the contest listing.
type ContestsHandler struct {
	deps Dependencies
}

// NewContestsHandler creates a new contests handler.
func NewContestsHandler(deps Dependencies) *ContestsHandler {
	return &ContestsHandler{deps: deps}
}

// HandleList handles GET /contests?animalType=&location=&status= requests.
// Unknown status keywords impose no constraint.
func (h *ContestsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	const op = "api.list_contests"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	spec, err := parseSpec(r.URL.RawQuery)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	writeJSON(w, http.StatusOK, h.deps.View(r.Context(), spec))
}

// HandleSummary handles GET /contests/summary requests.
func (h *ContestsHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Overview(r.Context()))
}

// HandleRefresh handles POST /contests/refresh requests.
func (h *ContestsHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	h.deps.Refresh(r.Context())
	writeJSON(w, http.StatusOK, h.deps.Overview(r.Context()))
}

// parseSpec reads the filter from the query string. Both camelCase and
// snake_case names are accepted for the animal type.
func parseSpec(rawQuery string) (filter.Spec, error) {
	q, err := url.ParseQuery(rawQuery)
	if err != nil {
		return filter.Spec{}, fmt.Errorf("malformed query: %w", err)
	}

	animal := q.Get("animalType")
	if animal == "" {
		animal = q.Get("animal_type")
	}
	return filter.Spec{
		AnimalType: animal,
		Location:   q.Get("location"),
		Status:     q.Get("status"),
	}, nil
}
