package insight_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/Stoick643/elara/ent"
	"github.com/Stoick643/elara/ent/activityevent"
	entinsight "github.com/Stoick643/elara/ent/insight"
	entnotification "github.com/Stoick643/elara/ent/notification"
	"github.com/Stoick643/elara/internal/config"
	"github.com/Stoick643/elara/internal/domain"
	"github.com/Stoick643/elara/internal/eventstore"
	"github.com/Stoick643/elara/internal/insight"
	"github.com/Stoick643/elara/internal/notification"
	apperrors "github.com/Stoick643/elara/internal/pkg/errors"
	"github.com/Stoick643/elara/internal/pkg/logger"
	"github.com/Stoick643/elara/internal/testutil"
)

func TestMain(m *testing.M) {
	_ = logger.Init("error", "json")
	m.Run()
}

var passAsOf = time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

func newPassEngine(t *testing.T) (*insight.Engine, *ent.Client) {
	t.Helper()
	client, pool := testutil.OpenEngagementDB(t, "insight-pass")

	cfg := config.EngagementConfig{
		InsightWindowDays:   30,
		InsightCooldownDays: 30,
		MinSampleSize:       5,
		BaselineMargin:      1.5,
	}
	detectors := insight.DefaultDetectors(insight.Thresholds{
		MinSampleSize:  cfg.MinSampleSize,
		BaselineMargin: cfg.BaselineMargin,
	})
	triggers := notification.NewTriggers(notification.NewInboxSender(client))
	engine := insight.NewEngine(client, pool, eventstore.New(client), detectors, cfg, triggers)

	_, err := client.User.Create().
		SetID("u1").
		SetUsername("u1").
		SetTimezone("UTC").
		Save(context.Background())
	require.NoError(t, err)

	return engine, client
}

func seedTask(t *testing.T, client *ent.Client, date string, n int) {
	t.Helper()
	d, err := domain.ParseLocalDate(date)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		at := time.Date(d.Year, d.Month, d.Day, 10+i, 0, 0, 0, time.UTC)
		_, err := client.ActivityEvent.Create().
			SetID(uuid.Must(uuid.NewV7()).String()).
			SetUserID("u1").
			SetEventType(activityevent.EventTypeTaskCompleted).
			SetPayload([]byte(`{"task_id":"t1"}`)).
			SetOccurredAt(at).
			SetLocalDate(date).
			SetIdempotencyKey(fmt.Sprintf("task-%s-%d", date, i)).
			Save(context.Background())
		require.NoError(t, err)
	}
}

func TestRunPassDetectsAndDeduplicates(t *testing.T) {
	engine, client := newPassEngine(t)
	ctx := context.Background()

	// Five of six tasks land on Tuesdays inside the trailing 30 days.
	seedTask(t, client, "2026-07-28", 1)
	seedTask(t, client, "2026-08-04", 1)
	seedTask(t, client, "2026-08-11", 1)
	seedTask(t, client, "2026-08-18", 2)
	seedTask(t, client, "2026-08-14", 1) // Friday

	created, err := engine.RunPass(ctx, "u1", passAsOf)
	require.NoError(t, err)
	require.Len(t, created, 1)
	require.Equal(t, "most_productive_weekday", created[0].PatternType)
	require.Contains(t, created[0].Description, "Tuesday")
	require.Equal(t, entinsight.StatusNew, created[0].Status)

	// The identical finding inside the cooldown stays suppressed.
	again, err := engine.RunPass(ctx, "u1", passAsOf)
	require.NoError(t, err)
	require.Empty(t, again)

	notifs, err := client.Notification.Query().
		Where(
			entnotification.UserIDEQ("u1"),
			entnotification.TypeEQ(entnotification.TypeINSIGHT_READY),
		).
		Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, notifs)
}

func TestRunPassUnknownUser(t *testing.T) {
	engine, _ := newPassEngine(t)

	_, err := engine.RunPass(context.Background(), "ghost", passAsOf)
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeUserNotFound, appErr.Code)
}

func TestMarkStatusMovesForwardOnly(t *testing.T) {
	engine, client := newPassEngine(t)
	ctx := context.Background()

	seedTask(t, client, "2026-08-04", 3)
	seedTask(t, client, "2026-08-11", 2)

	created, err := engine.RunPass(ctx, "u1", passAsOf)
	require.NoError(t, err)
	require.Len(t, created, 1)
	id := created[0].ID

	row, err := engine.MarkStatus(ctx, id, "viewed")
	require.NoError(t, err)
	require.Equal(t, entinsight.StatusViewed, row.Status)

	row, err = engine.MarkStatus(ctx, id, "actioned")
	require.NoError(t, err)
	require.Equal(t, entinsight.StatusActioned, row.Status)

	// Downgrading is an idempotent no-op, not an error.
	row, err = engine.MarkStatus(ctx, id, "viewed")
	require.NoError(t, err)
	require.Equal(t, entinsight.StatusActioned, row.Status)

	fresh, err := engine.List(ctx, "u1", "new")
	require.NoError(t, err)
	require.Empty(t, fresh)

	actioned, err := engine.List(ctx, "u1", "actioned")
	require.NoError(t, err)
	require.Len(t, actioned, 1)
}
