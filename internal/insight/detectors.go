package insight

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/Stoick643/elara/internal/domain"
)

// Fixed statistical floors not worth a config knob.
const (
	// moodLiftThreshold is the minimum mean-mood difference (on the 1-10
	// scale) before a lift or trend is surfaced.
	moodLiftThreshold = 1.0

	// minContrastDays is the minimum number of non-habit mood days needed
	// to form a baseline for the lift comparison.
	minContrastDays = 3

	// dropoffGap is the completion-rate gap (weekday minus weekend) that
	// counts as a dropoff.
	dropoffGap = 0.30
)

// DefaultDetectors returns the built-in detector set.
func DefaultDetectors(t Thresholds) []Detector {
	return []Detector{
		MostProductiveWeekday{T: t},
		MoodHabitLift{T: t},
		MoodTrend{T: t},
		RecurringTheme{T: t},
		WeekendDropoff{T: t},
	}
}

// MostProductiveWeekday finds the weekday on which the user completes a
// disproportionate share of tasks.
type MostProductiveWeekday struct{ T Thresholds }

func (MostProductiveWeekday) Name() string { return PatternMostProductiveWeekday }

func (d MostProductiveWeekday) Detect(w Window) (*Candidate, error) {
	counts := make(map[time.Weekday]int)
	total := 0
	for _, e := range w.ofType(domain.EventTaskCompleted) {
		counts[e.LocalDate.Weekday()]++
		total++
	}
	if total < d.T.MinSampleSize {
		return nil, nil
	}

	// Ties resolve to the earliest weekday so repeated passes agree.
	top := time.Sunday
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if counts[wd] > counts[top] {
			top = wd
		}
	}
	uniform := float64(total) / 7.0
	if float64(counts[top]) < d.T.BaselineMargin*uniform {
		return nil, nil
	}

	return &Candidate{
		PatternType: PatternMostProductiveWeekday,
		Description: fmt.Sprintf("You complete the most tasks on %ss (%d of %d in the last %d days).",
			top, counts[top], total, w.Days),
		Identity: map[string]string{"weekday": top.String()},
		Supporting: map[string]any{
			"weekday":       top.String(),
			"weekday_count": counts[top],
			"total_tasks":   total,
			"uniform_share": uniform,
		},
	}, nil
}

// MoodHabitLift compares mean journal mood on days with a habit log against
// days without one.
type MoodHabitLift struct{ T Thresholds }

func (MoodHabitLift) Name() string { return PatternMoodHabitLift }

func (d MoodHabitLift) Detect(w Window) (*Candidate, error) {
	moods := moodByDay(w)
	habitDays := make(map[string]bool)
	for _, e := range w.ofType(domain.EventHabitLogged) {
		habitDays[e.LocalDate.String()] = true
	}

	var withHabit, without []float64
	for day, mood := range moods {
		if habitDays[day] {
			withHabit = append(withHabit, mood)
		} else {
			without = append(without, mood)
		}
	}
	if len(withHabit) < d.T.MinSampleSize || len(without) < minContrastDays {
		return nil, nil
	}

	lift := mean(withHabit) - mean(without)
	if lift < moodLiftThreshold {
		return nil, nil
	}

	return &Candidate{
		PatternType: PatternMoodHabitLift,
		Description: fmt.Sprintf("Your mood averages %.1f points higher on days you complete a habit (%d habit days vs %d other days).",
			lift, len(withHabit), len(without)),
		Identity: map[string]string{"direction": "higher"},
		Supporting: map[string]any{
			"habit_day_mean":  mean(withHabit),
			"other_day_mean":  mean(without),
			"lift":            lift,
			"habit_day_count": len(withHabit),
			"other_day_count": len(without),
		},
	}, nil
}

// MoodTrend compares the second half of the window's mood entries against
// the first half.
type MoodTrend struct{ T Thresholds }

func (MoodTrend) Name() string { return PatternMoodTrend }

func (d MoodTrend) Detect(w Window) (*Candidate, error) {
	var scores []float64
	for _, e := range w.ofType(domain.EventJournalEntry) {
		if s, ok := moodScore(e); ok {
			scores = append(scores, s)
		}
	}
	if len(scores) < d.T.MinSampleSize {
		return nil, nil
	}

	half := len(scores) / 2
	early, late := mean(scores[:half]), mean(scores[half:])
	delta := late - early

	direction := ""
	switch {
	case delta >= moodLiftThreshold:
		direction = "improving"
	case delta <= -moodLiftThreshold:
		direction = "declining"
	default:
		return nil, nil
	}

	return &Candidate{
		PatternType: PatternMoodTrend,
		Description: fmt.Sprintf("Your mood has been %s: recent entries average %.1f vs %.1f earlier in the window.",
			direction, late, early),
		Identity: map[string]string{"direction": direction},
		Supporting: map[string]any{
			"direction":  direction,
			"early_mean": early,
			"late_mean":  late,
			"delta":      delta,
			"entries":    len(scores),
		},
	}, nil
}

// RecurringTheme finds a journal tag that dominates the window.
type RecurringTheme struct{ T Thresholds }

func (RecurringTheme) Name() string { return PatternRecurringTheme }

func (d RecurringTheme) Detect(w Window) (*Candidate, error) {
	counts := make(map[string]int)
	total := 0
	for _, e := range w.ofType(domain.EventJournalEntry) {
		var p domain.JournalEntryPayload
		if err := json.Unmarshal(e.Payload, &p); err != nil {
			continue
		}
		for _, tag := range p.Tags {
			counts[tag]++
			total++
		}
	}
	if len(counts) < 2 {
		// A lone tag has no baseline to stand out against.
		return nil, nil
	}

	tags := make([]string, 0, len(counts))
	for tag := range counts {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	top := tags[0]
	for _, tag := range tags[1:] {
		if counts[tag] > counts[top] {
			top = tag
		}
	}

	uniform := float64(total) / float64(len(counts))
	if counts[top] < d.T.MinSampleSize || float64(counts[top]) < d.T.BaselineMargin*uniform {
		return nil, nil
	}

	return &Candidate{
		PatternType: PatternRecurringTheme,
		Description: fmt.Sprintf("%q keeps coming up in your journal: %d mentions in the last %d days.",
			top, counts[top], w.Days),
		Identity: map[string]string{"tag": top},
		Supporting: map[string]any{
			"tag":           top,
			"count":         counts[top],
			"total_tags":    total,
			"distinct_tags": len(counts),
		},
	}, nil
}

// WeekendDropoff compares habit completion rates between weekdays and
// weekends.
type WeekendDropoff struct{ T Thresholds }

func (WeekendDropoff) Name() string { return PatternWeekendDropoff }

func (d WeekendDropoff) Detect(w Window) (*Candidate, error) {
	logs := w.ofType(domain.EventHabitLogged)
	if len(logs) < d.T.MinSampleSize {
		return nil, nil
	}

	logDays := make(map[string]domain.LocalDate)
	for _, e := range logs {
		logDays[e.LocalDate.String()] = e.LocalDate
	}
	weekendLogged, weekdayLogged := 0, 0
	for _, day := range logDays {
		if isWeekend(day.Weekday()) {
			weekendLogged++
		} else {
			weekdayLogged++
		}
	}

	weekendTotal := w.dayCount(isWeekend)
	weekdayTotal := w.dayCount(func(wd time.Weekday) bool { return !isWeekend(wd) })
	if weekendTotal == 0 || weekdayTotal == 0 {
		return nil, nil
	}

	weekendRate := float64(weekendLogged) / float64(weekendTotal)
	weekdayRate := float64(weekdayLogged) / float64(weekdayTotal)
	if weekdayRate-weekendRate < dropoffGap {
		return nil, nil
	}

	return &Candidate{
		PatternType: PatternWeekendDropoff,
		Description: fmt.Sprintf("Your habits drop off on weekends: %.0f%% of weekdays have a log vs %.0f%% of weekend days.",
			weekdayRate*100, weekendRate*100),
		Identity: map[string]string{},
		Supporting: map[string]any{
			"weekday_rate":   weekdayRate,
			"weekend_rate":   weekendRate,
			"weekday_logged": weekdayLogged,
			"weekend_logged": weekendLogged,
		},
	}, nil
}

// moodByDay returns the mean mood score per local date, skipping entries
// without a mood.
func moodByDay(w Window) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, e := range w.ofType(domain.EventJournalEntry) {
		if s, ok := moodScore(e); ok {
			day := e.LocalDate.String()
			sums[day] += s
			counts[day]++
		}
	}
	out := make(map[string]float64, len(sums))
	for day, sum := range sums {
		out[day] = sum / float64(counts[day])
	}
	return out
}

func moodScore(e *domain.Event) (float64, bool) {
	var p domain.JournalEntryPayload
	if err := json.Unmarshal(e.Payload, &p); err != nil || p.MoodScore == 0 {
		return 0, false
	}
	return float64(p.MoodScore), true
}
