package jobs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDeriveArgsClaimCheck(t *testing.T) {
	args := DeriveArgs{EventID: "e1"}
	require.Equal(t, "derive_event", args.Kind())

	opts := args.InsertOpts()
	require.Equal(t, "derivations", opts.Queue)
	// One derive job per event: a retried ingest must not double-enqueue.
	require.True(t, opts.UniqueOpts.ByArgs)
	require.True(t, opts.UniqueOpts.ByQueue)
	require.Equal(t, 3, opts.MaxAttempts)
}

func TestInsightPassArgsRouting(t *testing.T) {
	args := InsightPassArgs{UserID: "u1"}
	require.Equal(t, "insight_pass", args.Kind())

	opts := args.InsertOpts()
	require.Equal(t, "analysis", opts.Queue)
	require.True(t, opts.UniqueOpts.ByArgs)
}

func TestPeriodicJobsAreDailyUnique(t *testing.T) {
	require.Equal(t, "insight_fanout", InsightFanoutArgs{}.Kind())
	require.Equal(t, 24*time.Hour, InsightFanoutArgs{}.InsertOpts().UniqueOpts.ByPeriod)

	require.Equal(t, "notification_cleanup", NotificationCleanupArgs{}.Kind())
	require.Equal(t, 24*time.Hour, NotificationCleanupArgs{}.InsertOpts().UniqueOpts.ByPeriod)
}

func TestCleanupWorkerDefaultsRetention(t *testing.T) {
	w := NewNotificationCleanupWorker(nil, 0)
	require.Equal(t, DefaultNotificationRetention, w.retention)

	w = NewNotificationCleanupWorker(nil, time.Hour)
	require.Equal(t, time.Hour, w.retention)
}
