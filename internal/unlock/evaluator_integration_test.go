package unlock_test

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
	"github.com/Stoick643/elara/internal/notification"
	"github.com/Stoick643/elara/internal/pkg/logger"
	"github.com/Stoick643/elara/internal/stats"
	"github.com/Stoick643/elara/internal/testutil"
	"github.com/Stoick643/elara/internal/unlock"
)

func TestMain(m *testing.M) {
	_ = logger.Init("error", "json")
	m.Run()
}

func seedUser(t *testing.T, client *ent.Client, id string) {
	t.Helper()
	_, err := client.User.Create().
		SetID(id).
		SetUsername(id).
		SetTimezone("UTC").
		Save(context.Background())
	require.NoError(t, err)
}

func seedEvents(t *testing.T, client *ent.Client, userID string, typ domain.EventType, n int) {
	t.Helper()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		at := base.Add(time.Duration(i) * time.Hour)
		_, err := client.ActivityEvent.Create().
			SetID(uuid.Must(uuid.NewV7()).String()).
			SetUserID(userID).
			SetEventType(activityevent.EventType(typ)).
			SetPayload([]byte(`{}`)).
			SetOccurredAt(at).
			SetLocalDate(domain.LocalDateOf(at, time.UTC).String()).
			SetIdempotencyKey(fmt.Sprintf("seed-%s-%d", typ, i)).
			Save(context.Background())
		require.NoError(t, err)
	}
}

func newEvaluator(t *testing.T, client *ent.Client) *unlock.Evaluator {
	t.Helper()
	catalog, err := unlock.DefaultCatalog()
	require.NoError(t, err)
	triggers := notification.NewTriggers(notification.NewInboxSender(client))
	return unlock.NewEvaluator(client, catalog, stats.New(client), triggers)
}

func TestEvaluateUnlocksAndChainsWithinPass(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "unlock-chain")
	ctx := context.Background()

	seedUser(t, client, "u1")
	seedEvents(t, client, "u1", domain.EventJournalEntry, 15)

	unlocked, err := newEvaluator(t, client).Evaluate(ctx, "u1")
	require.NoError(t, err)

	// 15 journal entries clear the three journal/total thresholds, and the
	// unlock-count gate opens within the same pass once the third lands.
	require.Equal(t, []string{
		"cbt_tools",
		"detailed_progress",
		"advanced_analytics",
		"advanced_insights",
	}, unlocked)
}

func TestEvaluateIsIdempotentAndNotifiesOnce(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "unlock-idem")
	ctx := context.Background()

	seedUser(t, client, "u1")
	seedEvents(t, client, "u1", domain.EventJournalEntry, 5)

	ev := newEvaluator(t, client)

	first, err := ev.Evaluate(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, []string{"cbt_tools"}, first)

	second, err := ev.Evaluate(ctx, "u1")
	require.NoError(t, err)
	require.Empty(t, second)

	n, err := client.Notification.Query().
		Where(
			entnotification.UserIDEQ("u1"),
			entnotification.TypeEQ(entnotification.TypeFEATURE_UNLOCKED),
		).
		Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestUnlocksAreMonotonicAfterEventDeletion(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "unlock-mono")
	ctx := context.Background()

	seedUser(t, client, "u1")
	seedEvents(t, client, "u1", domain.EventJournalEntry, 5)

	ev := newEvaluator(t, client)
	first, err := ev.Evaluate(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, []string{"cbt_tools"}, first)

	// Corrections may drop the user below the threshold afterwards; the
	// unlock stays.
	_, err = client.ActivityEvent.Delete().
		Where(activityevent.UserIDEQ("u1")).
		Exec(ctx)
	require.NoError(t, err)

	again, err := ev.Evaluate(ctx, "u1")
	require.NoError(t, err)
	require.Empty(t, again)

	held, err := ev.Unlocked(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, held, 1)
	require.Equal(t, "cbt_tools", held[0].FeatureID)
	require.Equal(t, "CBT Toolkit", held[0].Name)
}
