// Package source fetches the contest collection from where it lives: the
// backend listing endpoint or a local fixture file.
package source

import (
	"context"
	"time"

	"github.com/okian/concursos/internal/domain/model"
)

// Source reads the full contest collection in one go.
type Source interface {
	// Fetch returns every contest or an error wrapping ErrTransport,
	// ErrStatus or ErrDecode.
	Fetch(ctx context.Context) ([]model.Contest, error)
}

// Option applies a configuration option to a source.
type Option func(*options)

type options struct {
	timeout  time.Duration
	location *time.Location
}

func defaultOptions() options {
	return options{
		timeout:  defaultTimeout,
		location: time.UTC,
	}
}

// WithTimeout bounds a single fetch.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithLocation sets the time zone used for dates that carry no offset.
func WithLocation(loc *time.Location) Option {
	return func(o *options) {
		if loc != nil {
			o.location = loc
		}
	}
}
