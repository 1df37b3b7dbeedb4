package streak

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Stoick643/elara/internal/domain"
)

func d(s string) domain.LocalDate {
	ld, err := domain.ParseLocalDate(s)
	if err != nil {
		panic(err)
	}
	return ld
}

func TestApplyFirstLog(t *testing.T) {
	s, outcome := Apply(State{}, d("2025-01-01"))
	require.Equal(t, OutcomeStarted, outcome)
	require.Equal(t, 1, s.Current)
	require.Equal(t, 1, s.Longest)
	require.Equal(t, "2025-01-01", s.LastCompleted.String())
}

func TestApplySameDayIsNoOp(t *testing.T) {
	in := State{Current: 3, Longest: 5, LastCompleted: d("2025-01-03")}
	s, outcome := Apply(in, d("2025-01-03"))
	require.Equal(t, OutcomeNoChange, outcome)
	require.Equal(t, in, s)
}

func TestApplyConsecutiveDayExtends(t *testing.T) {
	s, outcome := Apply(State{Current: 2, Longest: 2, LastCompleted: d("2025-01-02")}, d("2025-01-03"))
	require.Equal(t, OutcomeExtended, outcome)
	require.Equal(t, 3, s.Current)
	require.Equal(t, 3, s.Longest)
}

func TestApplyGapResetsAndKeepsLongest(t *testing.T) {
	s, outcome := Apply(State{Current: 3, Longest: 3, LastCompleted: d("2025-01-03")}, d("2025-01-06"))
	require.Equal(t, OutcomeReset, outcome)
	require.Equal(t, 1, s.Current)
	require.Equal(t, 3, s.Longest)
	require.Equal(t, "2025-01-06", s.LastCompleted.String())
}

func TestApplyEarlierDateIsOutOfOrder(t *testing.T) {
	in := State{Current: 1, Longest: 3, LastCompleted: d("2025-01-06")}
	s, outcome := Apply(in, d("2025-01-05"))
	require.Equal(t, OutcomeOutOfOrder, outcome)
	require.Equal(t, in, s, "state must be untouched on out-of-order input")
}

func TestApplyAcrossMonthBoundary(t *testing.T) {
	s, outcome := Apply(State{Current: 4, Longest: 4, LastCompleted: d("2025-01-31")}, d("2025-02-01"))
	require.Equal(t, OutcomeExtended, outcome)
	require.Equal(t, 5, s.Current)
}

func TestComputeScenario(t *testing.T) {
	// Three consecutive logs, then a gap, then a backfilled middle day.
	logs := []domain.LocalDate{d("2025-01-01"), d("2025-01-02"), d("2025-01-03")}
	s := Compute(logs)
	require.Equal(t, 3, s.Current)
	require.Equal(t, 3, s.Longest)

	logs = append(logs, d("2025-01-06"))
	s = Compute(logs)
	require.Equal(t, 1, s.Current)
	require.Equal(t, 3, s.Longest)

	// Backfilled 01-05 joins with 01-06: current run is now two days long.
	logs = append(logs, d("2025-01-05"))
	s = Compute(logs)
	require.Equal(t, 2, s.Current)
	require.Equal(t, 3, s.Longest)
	require.Equal(t, "2025-01-06", s.LastCompleted.String())
}

func TestComputeMatchesIncrementalApplication(t *testing.T) {
	dates := []domain.LocalDate{
		d("2025-02-01"), d("2025-02-02"), d("2025-02-03"),
		d("2025-02-05"), d("2025-02-06"),
		d("2025-02-10"),
		d("2025-02-11"), d("2025-02-12"), d("2025-02-13"), d("2025-02-14"),
	}
	var incremental State
	for _, day := range dates {
		incremental, _ = Apply(incremental, day)
	}
	require.Equal(t, incremental, Compute(dates))
	require.Equal(t, 5, incremental.Current)
	require.Equal(t, 5, incremental.Longest)
}

func TestComputeUnsortedWithDuplicates(t *testing.T) {
	dates := []domain.LocalDate{
		d("2025-03-03"), d("2025-03-01"), d("2025-03-02"),
		d("2025-03-02"), d("2025-03-03"),
	}
	s := Compute(dates)
	require.Equal(t, 3, s.Current)
	require.Equal(t, 3, s.Longest)
}

func TestComputeEmpty(t *testing.T) {
	s := Compute(nil)
	require.Equal(t, State{}, s)
	require.True(t, s.LastCompleted.IsZero())
}

func TestComputeIsIdempotent(t *testing.T) {
	dates := []domain.LocalDate{d("2025-04-01"), d("2025-04-02"), d("2025-04-04")}
	require.Equal(t, Compute(dates), Compute(dates))
}

func TestMilestoneCheckpoints(t *testing.T) {
	prev := State{Current: 6, Longest: 20, LastCompleted: d("2025-01-06")}
	next, _ := Apply(prev, d("2025-01-07"))
	m, ok := milestoneFor(prev, next)
	require.True(t, ok)
	require.Equal(t, 7, m.Current)
	require.False(t, m.PersonalBest, "fixed checkpoint wins over personal best")
}

func TestMilestonePersonalBestPastDayThree(t *testing.T) {
	// Day 4 beating a previous best of 3 is a personal best.
	prev := State{Current: 3, Longest: 3, LastCompleted: d("2025-01-03")}
	next, _ := Apply(prev, d("2025-01-04"))
	m, ok := milestoneFor(prev, next)
	require.True(t, ok)
	require.True(t, m.PersonalBest)
	require.Equal(t, 4, m.Current)

	// Day 2 and 3 stay silent even when they beat the record.
	prev = State{Current: 1, Longest: 1, LastCompleted: d("2025-01-01")}
	next, _ = Apply(prev, d("2025-01-02"))
	_, ok = milestoneFor(prev, next)
	require.False(t, ok)
}

func TestMilestoneSilentBelowRecord(t *testing.T) {
	prev := State{Current: 4, Longest: 10, LastCompleted: d("2025-01-04")}
	next, _ := Apply(prev, d("2025-01-05"))
	_, ok := milestoneFor(prev, next)
	require.False(t, ok)
}

func TestDedupSortDoesNotMutateInput(t *testing.T) {
	in := []domain.LocalDate{d("2025-05-02"), d("2025-05-01")}
	_ = dedupSort(in)
	require.Equal(t, "2025-05-02", in[0].String())
}

func TestComputeLongRun(t *testing.T) {
	start := d("2025-01-01")
	var dates []domain.LocalDate
	for i := 0; i < 100; i++ {
		dates = append(dates, start.AddDays(i))
	}
	s := Compute(dates)
	require.Equal(t, 100, s.Current)
	require.Equal(t, 100, s.Longest)
	require.Equal(t, start.AddDays(99), s.LastCompleted)
}
