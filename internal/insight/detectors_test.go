package insight

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Stoick643/elara/internal/domain"
)

var testThresholds = Thresholds{MinSampleSize: 5, BaselineMargin: 1.5}

func d(s string) domain.LocalDate {
	ld, err := domain.ParseLocalDate(s)
	if err != nil {
		panic(err)
	}
	return ld
}

// window builds a 30-day window ending 2025-06-30 around the given events.
func window(events ...*domain.Event) Window {
	return Window{
		UserID: "u1",
		From:   d("2025-06-01"),
		To:     d("2025-06-30"),
		Days:   30,
		Events: events,
	}
}

func evt(t domain.EventType, day string, payload any) *domain.Event {
	raw, err := json.Marshal(payload)
	if err != nil {
		panic(err)
	}
	return &domain.Event{
		ID:        fmt.Sprintf("%s-%s", t, day),
		UserID:    "u1",
		Type:      t,
		Payload:   raw,
		LocalDate: d(day),
	}
}

func taskOn(day string) *domain.Event {
	return evt(domain.EventTaskCompleted, day, domain.TaskCompletedPayload{TaskID: "t-" + day})
}

func habitOn(day string) *domain.Event {
	return evt(domain.EventHabitLogged, day, domain.HabitLoggedPayload{HabitID: "h1"})
}

func journalOn(day string, mood int, tags ...string) *domain.Event {
	return evt(domain.EventJournalEntry, day, domain.JournalEntryPayload{
		EntryID: "j-" + day, MoodScore: mood, Tags: tags,
	})
}

func TestMostProductiveWeekdaySurfacesDominantDay(t *testing.T) {
	// 2025-06-03, 10, 17, 24 are Tuesdays.
	w := window(
		taskOn("2025-06-03"), taskOn("2025-06-03"), taskOn("2025-06-10"),
		taskOn("2025-06-17"), taskOn("2025-06-24"),
		taskOn("2025-06-05"), taskOn("2025-06-12"),
	)
	c, err := MostProductiveWeekday{T: testThresholds}.Detect(w)
	require.NoError(t, err)
	require.NotNil(t, c)
	require.Equal(t, "Tuesday", c.Identity["weekday"])
	require.Equal(t, 5, c.Supporting["weekday_count"])
}

func TestMostProductiveWeekdayBelowSampleStaysSilent(t *testing.T) {
	w := window(
		taskOn("2025-06-03"), taskOn("2025-06-10"), taskOn("2025-06-17"),
		taskOn("2025-06-24"),
	)
	c, err := MostProductiveWeekday{T: testThresholds}.Detect(w)
	require.NoError(t, err)
	require.Nil(t, c, "four samples is below the floor of five")
}

func TestMostProductiveWeekdayUniformStaysSilent(t *testing.T) {
	// Seven tasks spread over seven distinct weekdays: nothing stands out.
	w := window(
		taskOn("2025-06-02"), taskOn("2025-06-03"), taskOn("2025-06-04"),
		taskOn("2025-06-05"), taskOn("2025-06-06"), taskOn("2025-06-07"),
		taskOn("2025-06-08"),
	)
	c, err := MostProductiveWeekday{T: testThresholds}.Detect(w)
	require.NoError(t, err)
	require.Nil(t, c)
}

func TestMoodHabitLiftSurfaces(t *testing.T) {
	w := window(
		habitOn("2025-06-02"), journalOn("2025-06-02", 8),
		habitOn("2025-06-03"), journalOn("2025-06-03", 8),
		habitOn("2025-06-04"), journalOn("2025-06-04", 7),
		habitOn("2025-06-05"), journalOn("2025-06-05", 8),
		habitOn("2025-06-06"), journalOn("2025-06-06", 9),
		journalOn("2025-06-09", 5),
		journalOn("2025-06-10", 6),
		journalOn("2025-06-11", 5),
	)
	c, err := MoodHabitLift{T: testThresholds}.Detect(w)
	require.NoError(t, err)
	require.NotNil(t, c)
	require.Equal(t, "higher", c.Identity["direction"])
	require.Equal(t, 5, c.Supporting["habit_day_count"])
	require.InDelta(t, 2.67, c.Supporting["lift"].(float64), 0.01)
}

func TestMoodHabitLiftSuppressedBelowFiveCoOccurrences(t *testing.T) {
	// Only four habit days carry a mood; the correlation stays unreported
	// no matter how strong it looks.
	w := window(
		habitOn("2025-06-02"), journalOn("2025-06-02", 10),
		habitOn("2025-06-03"), journalOn("2025-06-03", 10),
		habitOn("2025-06-04"), journalOn("2025-06-04", 10),
		habitOn("2025-06-05"), journalOn("2025-06-05", 10),
		journalOn("2025-06-09", 1),
		journalOn("2025-06-10", 1),
		journalOn("2025-06-11", 1),
	)
	c, err := MoodHabitLift{T: testThresholds}.Detect(w)
	require.NoError(t, err)
	require.Nil(t, c)
}

func TestMoodHabitLiftNeedsContrastDays(t *testing.T) {
	w := window(
		habitOn("2025-06-02"), journalOn("2025-06-02", 8),
		habitOn("2025-06-03"), journalOn("2025-06-03", 8),
		habitOn("2025-06-04"), journalOn("2025-06-04", 8),
		habitOn("2025-06-05"), journalOn("2025-06-05", 8),
		habitOn("2025-06-06"), journalOn("2025-06-06", 8),
		journalOn("2025-06-09", 5),
		journalOn("2025-06-10", 5),
	)
	c, err := MoodHabitLift{T: testThresholds}.Detect(w)
	require.NoError(t, err)
	require.Nil(t, c, "two non-habit mood days cannot form a baseline")
}

func TestMoodTrendImproving(t *testing.T) {
	w := window(
		journalOn("2025-06-02", 4),
		journalOn("2025-06-05", 5),
		journalOn("2025-06-10", 5),
		journalOn("2025-06-20", 7),
		journalOn("2025-06-25", 8),
		journalOn("2025-06-28", 8),
	)
	c, err := MoodTrend{T: testThresholds}.Detect(w)
	require.NoError(t, err)
	require.NotNil(t, c)
	require.Equal(t, "improving", c.Identity["direction"])
}

func TestMoodTrendFlatStaysSilent(t *testing.T) {
	w := window(
		journalOn("2025-06-02", 6),
		journalOn("2025-06-05", 6),
		journalOn("2025-06-10", 7),
		journalOn("2025-06-20", 6),
		journalOn("2025-06-25", 6),
		journalOn("2025-06-28", 7),
	)
	c, err := MoodTrend{T: testThresholds}.Detect(w)
	require.NoError(t, err)
	require.Nil(t, c)
}

func TestMoodTrendIgnoresEntriesWithoutMood(t *testing.T) {
	w := window(
		journalOn("2025-06-02", 0),
		journalOn("2025-06-05", 0),
		journalOn("2025-06-10", 3),
		journalOn("2025-06-20", 3),
		journalOn("2025-06-25", 3),
	)
	c, err := MoodTrend{T: testThresholds}.Detect(w)
	require.NoError(t, err)
	require.Nil(t, c, "three scored entries is below the floor of five")
}

func TestRecurringThemeSurfacesTopTag(t *testing.T) {
	w := window(
		journalOn("2025-06-02", 6, "work", "sleep"),
		journalOn("2025-06-05", 6, "work"),
		journalOn("2025-06-10", 6, "work"),
		journalOn("2025-06-15", 6, "work", "family"),
		journalOn("2025-06-20", 6, "work"),
	)
	c, err := RecurringTheme{T: testThresholds}.Detect(w)
	require.NoError(t, err)
	require.NotNil(t, c)
	require.Equal(t, "work", c.Identity["tag"])
	require.Equal(t, 5, c.Supporting["count"])
}

func TestRecurringThemeSingleTagHasNoBaseline(t *testing.T) {
	w := window(
		journalOn("2025-06-02", 6, "work"),
		journalOn("2025-06-05", 6, "work"),
		journalOn("2025-06-10", 6, "work"),
		journalOn("2025-06-15", 6, "work"),
		journalOn("2025-06-20", 6, "work"),
	)
	c, err := RecurringTheme{T: testThresholds}.Detect(w)
	require.NoError(t, err)
	require.Nil(t, c)
}

func TestWeekendDropoffSurfaces(t *testing.T) {
	// Habit logged every weekday of two weeks, never on weekends.
	var events []*domain.Event
	for _, day := range []string{
		"2025-06-02", "2025-06-03", "2025-06-04", "2025-06-05", "2025-06-06",
		"2025-06-09", "2025-06-10", "2025-06-11", "2025-06-12", "2025-06-13",
	} {
		events = append(events, habitOn(day))
	}
	c, err := WeekendDropoff{T: testThresholds}.Detect(window(events...))
	require.NoError(t, err)
	require.NotNil(t, c)
	require.InDelta(t, 0.0, c.Supporting["weekend_rate"].(float64), 0.001)
}

func TestWeekendDropoffEvenCoverageStaysSilent(t *testing.T) {
	var events []*domain.Event
	for i := 0; i < 30; i++ {
		events = append(events, habitOn(d("2025-06-01").AddDays(i).String()))
	}
	c, err := WeekendDropoff{T: testThresholds}.Detect(window(events...))
	require.NoError(t, err)
	require.Nil(t, c)
}

func TestDetectorsAreDeterministic(t *testing.T) {
	w := window(
		taskOn("2025-06-03"), taskOn("2025-06-03"), taskOn("2025-06-10"),
		taskOn("2025-06-17"), taskOn("2025-06-24"),
	)
	for _, det := range DefaultDetectors(testThresholds) {
		first, err := det.Detect(w)
		require.NoError(t, err)
		second, err := det.Detect(w)
		require.NoError(t, err)
		require.Equal(t, first, second, det.Name())
	}
}

func TestSignatureStability(t *testing.T) {
	a := Signature(PatternMoodTrend, map[string]string{"direction": "improving"}, 30)
	b := Signature(PatternMoodTrend, map[string]string{"direction": "improving"}, 30)
	require.Equal(t, a, b)

	require.NotEqual(t, a, Signature(PatternMoodTrend, map[string]string{"direction": "declining"}, 30))
	require.NotEqual(t, a, Signature(PatternMoodTrend, map[string]string{"direction": "improving"}, 14))
	require.NotEqual(t, a, Signature(PatternMoodHabitLift, map[string]string{"direction": "improving"}, 30))
}

func TestSignatureKeyOrderIndependence(t *testing.T) {
	one := Signature("p", map[string]string{"a": "1", "b": "2"}, 30)
	two := Signature("p", map[string]string{"b": "2", "a": "1"}, 30)
	require.Equal(t, one, two)
}

func TestWindowDayCount(t *testing.T) {
	w := window()
	require.Equal(t, 30, w.dayCount(func(time.Weekday) bool { return true }))
	// June 2025 has nine weekend days (Sat 7/14/21/28, Sun 1/8/15/22/29).
	require.Equal(t, 9, w.dayCount(isWeekend))
}
