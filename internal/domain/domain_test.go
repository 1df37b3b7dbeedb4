package domain

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Stoick643/elara/internal/pkg/logger"
)

func TestMain(m *testing.M) {
	_ = logger.Init("error", "json")
	m.Run()
}

func TestLocalDateOfCrossesMidnight(t *testing.T) {
	ny := LoadLocation("America/New_York")

	// 03:30 UTC is still the previous evening in New York.
	instant := time.Date(2025, 1, 2, 3, 30, 0, 0, time.UTC)
	require.Equal(t, "2025-01-01", LocalDateOf(instant, ny).String())
	require.Equal(t, "2025-01-02", LocalDateOf(instant, time.UTC).String())
}

func TestLocalDateArithmeticAcrossDST(t *testing.T) {
	// US spring-forward 2025-03-09: the local day is only 23 hours long,
	// but calendar arithmetic must still treat it as exactly one day.
	before := LocalDate{Year: 2025, Month: time.March, Day: 8}
	after := before.AddDays(1)
	require.Equal(t, "2025-03-09", after.String())
	require.Equal(t, 1, before.DaysUntil(after))
	require.Equal(t, -1, after.DaysUntil(before))
}

func TestLocalDateAddDaysNormalizes(t *testing.T) {
	d := LocalDate{Year: 2024, Month: time.December, Day: 30}
	require.Equal(t, "2025-01-02", d.AddDays(3).String())
	require.Equal(t, "2024-12-28", d.AddDays(-2).String())
}

func TestParseLocalDateRoundTrip(t *testing.T) {
	d, err := ParseLocalDate("2025-01-05")
	require.NoError(t, err)
	require.Equal(t, "2025-01-05", d.String())

	_, err = ParseLocalDate("05/01/2025")
	require.Error(t, err)
}

func TestLoadLocationFallsBackToUTC(t *testing.T) {
	require.Equal(t, time.UTC, LoadLocation(""))
	require.Equal(t, time.UTC, LoadLocation("Mars/Olympus_Mons"))
	require.NotEqual(t, time.UTC, LoadLocation("Europe/Ljubljana"))
}

func TestValidatePayload(t *testing.T) {
	tests := []struct {
		name    string
		typ     EventType
		payload string
		wantErr bool
	}{
		{"habit log ok", EventHabitLogged, `{"habit_id":"h1"}`, false},
		{"habit log missing id", EventHabitLogged, `{}`, true},
		{"journal ok", EventJournalEntry, `{"entry_id":"j1","mood_score":7}`, false},
		{"journal mood out of range", EventJournalEntry, `{"mood_score":11}`, true},
		{"task ok", EventTaskCompleted, `{"task_id":"t1","energy_level":"high"}`, false},
		{"review empty ok", EventWeeklyReview, ``, false},
		{"wheel ok", EventWheelAssessment, `{"scores":{"health":6,"career":8}}`, false},
		{"wheel score out of range", EventWheelAssessment, `{"scores":{"health":0}}`, true},
		{"unknown type", EventType("vm_created"), `{}`, true},
		{"malformed json", EventHabitLogged, `{`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePayload(tt.typ, []byte(tt.payload))
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestEventHabitID(t *testing.T) {
	e := &Event{Type: EventHabitLogged, Payload: []byte(`{"habit_id":"h42"}`)}
	require.Equal(t, "h42", e.HabitID())

	e = &Event{Type: EventJournalEntry, Payload: []byte(`{"habit_id":"h42"}`)}
	require.Equal(t, "", e.HabitID())
}

func TestDispatcherRoutesAndCollectsFirstError(t *testing.T) {
	d := NewEventDispatcher()

	var order []string
	d.Register(EventHabitLogged, func(ctx context.Context, e *Event) error {
		order = append(order, "streak")
		return fmt.Errorf("streak failed")
	})
	d.RegisterAll(func(ctx context.Context, e *Event) error {
		order = append(order, "unlock")
		return nil
	})

	err := d.Dispatch(context.Background(), &Event{ID: "e1", Type: EventHabitLogged})
	require.Error(t, err)
	require.Contains(t, err.Error(), "habit_logged")
	// The failing handler must not stop later handlers.
	require.Equal(t, []string{"streak", "unlock"}, order)

	order = nil
	err = d.Dispatch(context.Background(), &Event{ID: "e2", Type: EventJournalEntry})
	require.NoError(t, err)
	require.Equal(t, []string{"unlock"}, order)
}
