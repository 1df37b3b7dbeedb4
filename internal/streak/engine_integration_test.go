package streak_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/Stoick643/elara/ent"
	"github.com/Stoick643/elara/ent/activityevent"
	entnotification "github.com/Stoick643/elara/ent/notification"
	"github.com/Stoick643/elara/internal/domain"
	"github.com/Stoick643/elara/internal/eventstore"
	"github.com/Stoick643/elara/internal/notification"
	"github.com/Stoick643/elara/internal/pkg/logger"
	"github.com/Stoick643/elara/internal/streak"
	"github.com/Stoick643/elara/internal/testutil"
)

func TestMain(m *testing.M) {
	_ = logger.Init("error", "json")
	m.Run()
}

type streakFixture struct {
	client *ent.Client
	engine *streak.Engine
	seq    int
}

func newStreakFixture(t *testing.T, prefix string) *streakFixture {
	t.Helper()
	client := testutil.OpenEntPostgres(t, prefix)
	ctx := context.Background()

	_, err := client.User.Create().
		SetID("u1").
		SetUsername("u1").
		SetTimezone("UTC").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Habit.Create().
		SetID("h1").
		SetUserID("u1").
		SetName("Morning walk").
		Save(ctx)
	require.NoError(t, err)

	triggers := notification.NewTriggers(notification.NewInboxSender(client))
	return &streakFixture{
		client: client,
		engine: streak.NewEngine(client, eventstore.New(client), triggers),
	}
}

// logDay appends a habit_logged event for the date and runs it through the
// engine, the same order the derive job uses.
func (f *streakFixture) logDay(t *testing.T, date string) {
	t.Helper()
	ctx := context.Background()

	d, err := domain.ParseLocalDate(date)
	require.NoError(t, err)
	f.seq++

	evt := &domain.Event{
		ID:         uuid.Must(uuid.NewV7()).String(),
		UserID:     "u1",
		Type:       domain.EventHabitLogged,
		Payload:    []byte(`{"habit_id":"h1"}`),
		OccurredAt: time.Date(d.Year, d.Month, d.Day, 9, 0, 0, 0, time.UTC),
		LocalDate:  d,
	}
	_, err = f.client.ActivityEvent.Create().
		SetID(evt.ID).
		SetUserID(evt.UserID).
		SetEventType(activityevent.EventTypeHabitLogged).
		SetPayload(evt.Payload).
		SetOccurredAt(evt.OccurredAt).
		SetLocalDate(date).
		SetIdempotencyKey(fmt.Sprintf("log-%d", f.seq)).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, f.engine.HandleHabitLogged(ctx, evt))
}

func (f *streakFixture) state(t *testing.T) streak.State {
	t.Helper()
	s, err := f.engine.Get(context.Background(), "h1")
	require.NoError(t, err)
	return s
}

func TestStreakLifecycleWithGapAndBackfill(t *testing.T) {
	f := newStreakFixture(t, "streak-lifecycle")

	f.logDay(t, "2025-01-01")
	f.logDay(t, "2025-01-02")
	f.logDay(t, "2025-01-03")
	s := f.state(t)
	require.Equal(t, 3, s.Current)
	require.Equal(t, 3, s.Longest)

	// Gap of two days resets the run and finalizes the old one as longest.
	f.logDay(t, "2025-01-06")
	s = f.state(t)
	require.Equal(t, 1, s.Current)
	require.Equal(t, 3, s.Longest)

	// Backfilling Jan 5 arrives out of order and forces a recompute: Jan 5
	// and Jan 6 now form a 2-day run.
	f.logDay(t, "2025-01-05")
	s = f.state(t)
	require.Equal(t, 2, s.Current)
	require.Equal(t, 3, s.Longest)
	require.Equal(t, "2025-01-06", s.LastCompleted.String())
}

func TestStreakSevenDayMilestoneNotifiesOnce(t *testing.T) {
	f := newStreakFixture(t, "streak-milestone")
	ctx := context.Background()

	for day := 1; day <= 7; day++ {
		f.logDay(t, fmt.Sprintf("2025-03-%02d", day))
	}
	require.Equal(t, 7, f.state(t).Current)

	notifs, err := f.client.Notification.Query().
		Where(
			entnotification.UserIDEQ("u1"),
			entnotification.TypeEQ(entnotification.TypeSTREAK_MILESTONE),
		).
		All(ctx)
	require.NoError(t, err)

	// Days 4-6 are personal bests, day 7 is the fixed checkpoint.
	require.Len(t, notifs, 4)

	// Same-day duplicate log changes nothing and celebrates nothing.
	f.logDay(t, "2025-03-07")
	again, err := f.client.Notification.Query().
		Where(entnotification.TypeEQ(entnotification.TypeSTREAK_MILESTONE)).
		Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 4, again)
}

func TestRecomputeAfterDeletionShrinksStreak(t *testing.T) {
	f := newStreakFixture(t, "streak-recompute")
	ctx := context.Background()

	f.logDay(t, "2025-01-01")
	f.logDay(t, "2025-01-02")
	f.logDay(t, "2025-01-03")

	// Remove the middle day directly and rebuild from the log.
	_, err := f.client.ActivityEvent.Delete().
		Where(activityevent.LocalDateEQ("2025-01-02")).
		Exec(ctx)
	require.NoError(t, err)

	s, err := f.engine.Recompute(ctx, "u1", "h1")
	require.NoError(t, err)
	require.Equal(t, 1, s.Current)
	require.Equal(t, 1, s.Longest)
	require.Equal(t, "2025-01-03", s.LastCompleted.String())
}
