// Package streak derives per-habit streak state from the activity log.
//
// The cached HabitStreak row is never trusted as truth: any out-of-order
// or backfilled log falls back to Compute over the full ordered date list,
// which must land on the exact same value as incremental application.
package streak

import (
	"github.com/Stoick643/elara/internal/domain"
)

// State is the derived streak value for one habit.
type State struct {
	Current       int
	Longest       int
	LastCompleted domain.LocalDate // zero value when never logged
}

// Outcome classifies one incremental application.
type Outcome int

const (
	// OutcomeNoChange: same-day re-log, idempotent no-op.
	OutcomeNoChange Outcome = iota
	// OutcomeStarted: first log ever, or first after state was empty.
	OutcomeStarted
	// OutcomeExtended: consecutive local day, streak incremented.
	OutcomeExtended
	// OutcomeReset: gap of more than one day, streak restarted at 1.
	OutcomeReset
	// OutcomeOutOfOrder: the log predates the cached last date; the
	// incremental rule does not apply and the caller must recompute from
	// the full log.
	OutcomeOutOfOrder
)

// Apply applies one habit log on local date d to the cached state.
// For OutcomeOutOfOrder the returned state is the unchanged input.
func Apply(s State, d domain.LocalDate) (State, Outcome) {
	if s.LastCompleted.IsZero() {
		s.Current = 1
		if s.Longest < 1 {
			s.Longest = 1
		}
		s.LastCompleted = d
		return s, OutcomeStarted
	}

	switch gap := s.LastCompleted.DaysUntil(d); {
	case gap == 0:
		return s, OutcomeNoChange
	case gap == 1:
		s.Current++
		if s.Current > s.Longest {
			s.Longest = s.Current
		}
		s.LastCompleted = d
		return s, OutcomeExtended
	case gap > 1:
		// Prior run is finalized into Longest before restarting.
		if s.Current > s.Longest {
			s.Longest = s.Current
		}
		s.Current = 1
		s.LastCompleted = d
		return s, OutcomeReset
	default:
		return s, OutcomeOutOfOrder
	}
}

// Compute derives streak state from the full list of log dates, which may
// be unsorted and contain duplicates. Running it twice over the same log
// yields the same value; this is the correctness anchor that makes the
// HabitStreak cache disposable.
func Compute(dates []domain.LocalDate) State {
	ordered := dedupSort(dates)
	var s State
	for _, d := range ordered {
		s, _ = Apply(s, d)
	}
	return s
}

// dedupSort returns the dates sorted ascending with duplicates removed,
// without mutating the input.
func dedupSort(dates []domain.LocalDate) []domain.LocalDate {
	if len(dates) == 0 {
		return nil
	}
	out := make([]domain.LocalDate, len(dates))
	copy(out, dates)
	// Insertion sort: habit logs per user are small, and LocalDate ordering
	// is a calendar comparison rather than a numeric one.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Before(out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	dedup := out[:1]
	for _, d := range out[1:] {
		if !d.Equal(dedup[len(dedup)-1]) {
			dedup = append(dedup, d)
		}
	}
	return dedup
}
