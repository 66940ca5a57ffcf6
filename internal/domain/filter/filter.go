// Package filter narrows a contest collection by animal type, location and
// status. Criteria are combined with AND; absent criteria impose no
// constraint and the input order is always preserved.
package filter

import (
	"strings"
	"time"

	"github.com/okian/concursos/internal/domain/classify"
	"github.com/okian/concursos/internal/domain/model"
)

// Spec is the filter configuration coming from the listing controls.
type Spec struct {
	// AnimalType is matched as a case-insensitive substring of any tag.
	AnimalType string `json:"animal_type,omitempty"`
	// Location is matched as a case-insensitive substring of the location.
	Location string `json:"location,omitempty"`
	// Status is a keyword understood by ParseStatus; anything else is ignored.
	Status string `json:"status,omitempty"`
}

// IsEmpty reports whether the spec constrains nothing.
func (s Spec) IsEmpty() bool {
	_, ok := ParseStatus(s.Status)
	return s.AnimalType == "" && s.Location == "" && !ok
}

// Apply returns the contests matching every criterion set in spec, evaluated
// against now. The result is a fresh slice; the input is never reordered or
// modified.
func Apply(contests []model.Contest, spec Spec, now time.Time) []model.Contest {
	m := newMatcher(spec)
	out := make([]model.Contest, 0, len(contests))
	for i := range contests {
		if m.match(&contests[i], now) {
			out = append(out, contests[i])
		}
	}
	return out
}

// Match reports whether a single contest satisfies spec at now.
func Match(c *model.Contest, spec Spec, now time.Time) bool {
	return newMatcher(spec).match(c, now)
}

// matcher holds a spec with its needles lowercased once per pass.
type matcher struct {
	animalType string
	location   string
	status     Status
}

func newMatcher(spec Spec) matcher {
	st, _ := ParseStatus(spec.Status)
	return matcher{
		animalType: strings.ToLower(spec.AnimalType),
		location:   strings.ToLower(spec.Location),
		status:     st,
	}
}

func (m matcher) match(c *model.Contest, now time.Time) bool {
	if m.animalType != "" && !anyTagContains(c.AnimalTypes, m.animalType) {
		return false
	}
	if m.location != "" && (c.Location == "" || !strings.Contains(strings.ToLower(c.Location), m.location)) {
		return false
	}
	return matchStatus(c, m.status, now)
}

func anyTagContains(tags []string, needle string) bool {
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

func matchStatus(c *model.Contest, st Status, now time.Time) bool {
	switch st {
	case StatusUpcoming:
		return classify.IsUpcoming(c, now)
	case StatusOngoing:
		return classify.IsOngoing(c, now)
	case StatusFinished:
		return classify.IsFinished(c, now)
	case StatusRegistrationOpen:
		return classify.IsRegistrationOpen(c, now)
	default:
		return true
	}
}
