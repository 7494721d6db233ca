// Package queries contains read-only operations in the CQRS architecture.
// Report queries aggregate completed orders through reader interfaces;
// listing queries go straight to the database for efficiency.
package queries

import (
	"fmt"
	"time"

	"backoffice/internal/pkg/errs"
)

// Period is a reporting date range. Bounds are inclusive by day and both
// optional: a nil bound is unbounded. The zero value covers all time.
type Period struct {
	start *time.Time
	end   *time.Time
}

// NewPeriod creates a period from optional bounds.
// Returns errs.ErrValueIsInvalid when both bounds are set and end precedes start.
func NewPeriod(start, end *time.Time) (Period, error) {
	if start != nil && end != nil && end.Before(*start) {
		return Period{}, errs.NewValueIsInvalidErrorWithCause("period",
			fmt.Errorf("end %s precedes start %s", end.Format(time.DateOnly), start.Format(time.DateOnly)))
	}
	return Period{start: start, end: end}, nil
}

// Start returns the lower bound, or nil if unbounded.
func (p Period) Start() *time.Time {
	return p.start
}

// End returns the upper bound, or nil if unbounded.
func (p Period) End() *time.Time {
	return p.end
}

// String renders the period for logs and report payloads.
func (p Period) String() string {
	format := func(t *time.Time) string {
		if t == nil {
			return "unbounded"
		}
		return t.Format(time.DateOnly)
	}
	return fmt.Sprintf("%s..%s", format(p.start), format(p.end))
}
