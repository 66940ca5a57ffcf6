// Package classify decides where a contest sits in time relative to an instant.
//
// All functions are pure: callers take one "now" per evaluation pass and pass
// it to every call so that predicates straddling the sampling instant stay
// consistent with each other.
package classify

import (
	"time"

	"github.com/okian/concursos/internal/domain/model"
)

// Bucket is the display grouping used to section the listing page.
type Bucket string

// Display buckets.
const (
	BucketActiveOrUpcoming Bucket = "active-or-upcoming"
	BucketFinished         Bucket = "finished"
)

// Status holds the four filter-side predicates for a contest at an instant.
// Upcoming and Ongoing are mutually exclusive; both are false when the start
// date is unknown.
type Status struct {
	Upcoming         bool `json:"upcoming"`
	Ongoing          bool `json:"ongoing"`
	Finished         bool `json:"finished"`
	RegistrationOpen bool `json:"registration_open"`
}

// Of evaluates every status predicate for c at now.
func Of(c *model.Contest, now time.Time) Status {
	return Status{
		Upcoming:         IsUpcoming(c, now),
		Ongoing:          IsOngoing(c, now),
		Finished:         IsFinished(c, now),
		RegistrationOpen: IsRegistrationOpen(c, now),
	}
}

// IsFinished reports whether the contest has an end date strictly before now.
func IsFinished(c *model.Contest, now time.Time) bool {
	return c.EndDate != nil && c.EndDate.Before(now)
}

// IsUpcoming reports whether the contest starts strictly after now.
func IsUpcoming(c *model.Contest, now time.Time) bool {
	return c.StartDate != nil && c.StartDate.After(now)
}

// IsOngoing reports whether the contest has started and has not ended yet.
// An open-ended contest stays ongoing once started.
func IsOngoing(c *model.Contest, now time.Time) bool {
	if c.StartDate == nil || c.StartDate.After(now) {
		return false
	}
	return c.EndDate == nil || !c.EndDate.Before(now)
}

// IsRegistrationOpen reports whether now falls inside the registration window,
// bounds included. A window with a missing bound is never open.
func IsRegistrationOpen(c *model.Contest, now time.Time) bool {
	if !c.HasRegistrationWindow() {
		return false
	}
	return !now.Before(*c.RegistrationStart) && !now.After(*c.RegistrationEnd)
}

// BucketOf returns the display bucket for c. Contests that have not started
// yet land in BucketActiveOrUpcoming together with running ones.
func BucketOf(c *model.Contest, now time.Time) Bucket {
	if IsFinished(c, now) {
		return BucketFinished
	}
	return BucketActiveOrUpcoming
}

// Partition splits contests into the two display buckets, keeping the input
// order inside each. Both results are non-nil.
func Partition(contests []model.Contest, now time.Time) (active, finished []model.Contest) {
	active = make([]model.Contest, 0, len(contests))
	finished = make([]model.Contest, 0)
	for i := range contests {
		if BucketOf(&contests[i], now) == BucketFinished {
			finished = append(finished, contests[i])
			continue
		}
		active = append(active, contests[i])
	}
	return active, finished
}
