// Package insight runs behavioral pattern detectors over a trailing window
// of the activity log. Detectors are pure functions of the window; all
// persistence, locking and dedupe live in the Engine so a detector can be
// unit-tested with a slice of events.
package insight

import (
	"time"

	"github.com/Stoick643/elara/internal/domain"
)

// Pattern types emitted by the built-in detectors.
const (
	PatternMostProductiveWeekday = "most_productive_weekday"
	PatternMoodHabitLift         = "mood_habit_lift"
	PatternMoodTrend             = "mood_trend"
	PatternRecurringTheme        = "recurring_theme"
	PatternWeekendDropoff        = "weekend_dropoff"
)

// Window is the detector input: the user's events whose local date falls in
// [From, To], in canonical order.
type Window struct {
	UserID string
	From   domain.LocalDate
	To     domain.LocalDate
	Days   int
	Events []*domain.Event
}

// Candidate is a raw detector finding before dedupe and persistence.
type Candidate struct {
	PatternType string
	Description string

	// Identity distinguishes this finding from other findings of the same
	// pattern (the weekday, the trend direction, the tag). It feeds the
	// dedupe signature; measured magnitudes deliberately do not, so the
	// same conclusion with slightly different numbers stays suppressed
	// within the cooldown.
	Identity map[string]string

	// Supporting carries the measured evidence stored with the insight.
	Supporting map[string]any
}

// Detector finds one pattern kind in a window. Returning (nil, nil) means
// no finding; thresholds are the detector's own business.
type Detector interface {
	Name() string
	Detect(w Window) (*Candidate, error)
}

// Thresholds tunes the statistical floors shared by the detectors.
type Thresholds struct {
	// MinSampleSize is the minimum observation count before any
	// correlation is surfaced.
	MinSampleSize int

	// BaselineMargin is the multiplier over the uniform share a frequency
	// bucket must reach.
	BaselineMargin float64
}

// ofType returns the window's events of one type, preserving order.
func (w Window) ofType(t domain.EventType) []*domain.Event {
	var out []*domain.Event
	for _, e := range w.Events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// dayCount returns how many days of the window fall on the given weekdays.
func (w Window) dayCount(match func(time.Weekday) bool) int {
	n := 0
	for d := w.From; !d.After(w.To); d = d.AddDays(1) {
		if match(d.Weekday()) {
			n++
		}
	}
	return n
}

func isWeekend(d time.Weekday) bool {
	return d == time.Saturday || d == time.Sunday
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}
