package achievement_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/Stoick643/elara/ent"
	"github.com/Stoick643/elara/ent/activityevent"
	entnotification "github.com/Stoick643/elara/ent/notification"
	"github.com/Stoick643/elara/ent/userachievement"
	"github.com/Stoick643/elara/internal/achievement"
	"github.com/Stoick643/elara/internal/domain"
	"github.com/Stoick643/elara/internal/notification"
	"github.com/Stoick643/elara/internal/pkg/logger"
	"github.com/Stoick643/elara/internal/stats"
	"github.com/Stoick643/elara/internal/testutil"
)

func TestMain(m *testing.M) {
	_ = logger.Init("error", "json")
	m.Run()
}

func setupEngine(t *testing.T, client *ent.Client) *achievement.Engine {
	t.Helper()
	ctx := context.Background()

	catalog, err := achievement.DefaultCatalog()
	require.NoError(t, err)
	require.NoError(t, achievement.Sync(ctx, client, catalog))

	triggers := notification.NewTriggers(notification.NewInboxSender(client))
	return achievement.NewEngine(client, stats.New(client), triggers)
}

func seedUserWithOneEvent(t *testing.T, client *ent.Client, userID string) {
	t.Helper()
	ctx := context.Background()

	_, err := client.User.Create().
		SetID(userID).
		SetUsername(userID).
		SetTimezone("UTC").
		Save(ctx)
	require.NoError(t, err)

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	_, err = client.ActivityEvent.Create().
		SetID(uuid.Must(uuid.NewV7()).String()).
		SetUserID(userID).
		SetEventType(activityevent.EventTypeTaskCompleted).
		SetPayload([]byte(`{"task_id":"t1"}`)).
		SetOccurredAt(at).
		SetLocalDate(domain.LocalDateOf(at, time.UTC).String()).
		SetIdempotencyKey("seed-0").
		Save(ctx)
	require.NoError(t, err)
}

func TestConcurrentEvaluateAwardsExactlyOnce(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "achievement-race")
	ctx := context.Background()

	engine := setupEngine(t, client)
	seedUserWithOneEvent(t, client, "u1")

	// Every worker sees first_steps as unmet and races to insert; the
	// unique constraint must let exactly one through.
	const workers = 4
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = engine.Evaluate(ctx, "u1")
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		require.NoError(t, err)
	}

	rows, err := client.UserAchievement.Query().
		Where(
			userachievement.UserIDEQ("u1"),
			userachievement.AchievementIDEQ("first_steps"),
		).
		Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, rows)

	notifs, err := client.Notification.Query().
		Where(
			entnotification.UserIDEQ("u1"),
			entnotification.TypeEQ(entnotification.TypeACHIEVEMENT_AWARDED),
		).
		Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, notifs)
}

func TestAwardedListsCatalogMetadata(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "achievement-list")
	ctx := context.Background()

	engine := setupEngine(t, client)
	seedUserWithOneEvent(t, client, "u1")

	first, err := engine.Evaluate(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, []string{"first_steps"}, first)

	awards, err := engine.Awarded(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, awards, 1)
	require.Equal(t, "first_steps", awards[0].AchievementID)
	require.NotEmpty(t, awards[0].Name)
	require.False(t, awards[0].UnlockedAt.IsZero())
}
