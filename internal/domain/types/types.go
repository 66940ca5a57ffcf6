// Package types contains the read shapes shared by the service and the HTTP API.
package types

import (
	"time"

	"github.com/okian/concursos/internal/domain/filter"
	"github.com/okian/concursos/internal/domain/model"
)

// View is the contest listing for one filter specification.
// Every field is computed against the same instant.
type View struct {
	State           string          `json:"state"`
	Filters         filter.Spec     `json:"filters"`
	All             []model.Contest `json:"all"`
	Contests        []model.Contest `json:"contests"`
	Active          []model.Contest `json:"active"`
	Finished        []model.Contest `json:"finished"`
	Summary         filter.Summary  `json:"summary"`
	FilteredSummary filter.Summary  `json:"filtered_summary"`
	ActiveCount     int             `json:"active_count"`
	FinishedCount   int             `json:"finished_count"`
	Degraded        bool            `json:"degraded"`
	GeneratedAt     time.Time       `json:"generated_at"`
}

// Overview carries the header aggregates over the full collection.
type Overview struct {
	State    string         `json:"state"`
	Summary  filter.Summary `json:"summary"`
	Degraded bool           `json:"degraded"`
	LoadedAt *time.Time     `json:"loaded_at,omitempty"`
}

// EmptyView returns a view with non-nil empty collections, as served while
// the first fetch is still pending.
func EmptyView(state string, spec filter.Spec, now time.Time) View {
	return View{
		State:       state,
		Filters:     spec,
		All:         []model.Contest{},
		Contests:    []model.Contest{},
		Active:      []model.Contest{},
		Finished:    []model.Contest{},
		GeneratedAt: now,
	}
}
