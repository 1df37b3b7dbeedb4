package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"github.com/stretchr/testify/require"

	"github.com/Stoick643/elara/internal/domain"
	apperrors "github.com/Stoick643/elara/internal/pkg/errors"
	"github.com/Stoick643/elara/internal/pkg/logger"
	"github.com/Stoick643/elara/internal/testutil"
	"github.com/Stoick643/elara/internal/usecase"
)

func TestMain(m *testing.M) {
	_ = logger.Init("error", "json")
	m.Run()
}

func newWriter(t *testing.T) *usecase.IngestWriter {
	t.Helper()
	client, pool := testutil.OpenEngagementDB(t, "ingest")

	// Insert-only client: no queues, no workers. Jobs land in river_job and
	// stay there, which is all these tests need.
	riverClient, err := river.NewClient(riverpgxv5.New(pool), &river.Config{})
	require.NoError(t, err)

	_, err = client.User.Create().
		SetID("u1").
		SetUsername("u1").
		SetTimezone("Europe/Ljubljana").
		Save(context.Background())
	require.NoError(t, err)

	return usecase.NewIngestWriter(pool, riverClient, client)
}

func TestIngestIsIdempotentPerKey(t *testing.T) {
	writer := newWriter(t)
	ctx := context.Background()

	in := usecase.IngestInput{
		UserID:         "u1",
		Type:           domain.EventJournalEntry,
		Payload:        []byte(`{"entry_id":"j1","mood_score":7}`),
		OccurredAt:     time.Date(2026, 6, 1, 22, 30, 0, 0, time.UTC),
		IdempotencyKey: "k1",
	}

	evt, err := writer.Ingest(ctx, in)
	require.NoError(t, err)
	// 22:30 UTC is already past midnight in Ljubljana (UTC+2 in June).
	require.Equal(t, "2026-06-02", evt.LocalDate.String())

	_, err = writer.Ingest(ctx, in)
	dup, ok := apperrors.IsDuplicateEvent(err)
	require.True(t, ok)
	require.Equal(t, evt.ID, dup.ExistingID)
}

func TestIngestConcurrentSameKeyAppendsOnce(t *testing.T) {
	client, pool := testutil.OpenEngagementDB(t, "ingest-race")
	ctx := context.Background()

	riverClient, err := river.NewClient(riverpgxv5.New(pool), &river.Config{})
	require.NoError(t, err)
	_, err = client.User.Create().
		SetID("u1").SetUsername("u1").SetTimezone("UTC").Save(ctx)
	require.NoError(t, err)
	writer := usecase.NewIngestWriter(pool, riverClient, client)

	in := usecase.IngestInput{
		UserID:         "u1",
		Type:           domain.EventTaskCompleted,
		Payload:        []byte(`{"task_id":"t1"}`),
		IdempotencyKey: "race-key",
	}

	const callers = 6
	var wg sync.WaitGroup
	results := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = writer.Ingest(ctx, in)
		}(i)
	}
	wg.Wait()

	appended, duplicated := 0, 0
	for _, err := range results {
		if err == nil {
			appended++
			continue
		}
		_, ok := apperrors.IsDuplicateEvent(err)
		require.True(t, ok, "unexpected error: %v", err)
		duplicated++
	}
	require.Equal(t, 1, appended)
	require.Equal(t, callers-1, duplicated)

	var events, jobs int
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT count(*) FROM activity_events`).Scan(&events))
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT count(*) FROM river_job WHERE kind = 'derive_event'`).Scan(&jobs))
	require.Equal(t, 1, events)
	require.Equal(t, 1, jobs)
}

func TestIngestRejectsBadInput(t *testing.T) {
	writer := newWriter(t)
	ctx := context.Background()

	_, err := writer.Ingest(ctx, usecase.IngestInput{
		UserID: "u1",
		Type:   "telemetry_ping",
	})
	appErr, ok := apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeInvalidPayload, appErr.Code)

	_, err = writer.Ingest(ctx, usecase.IngestInput{
		UserID:  "u1",
		Type:    domain.EventHabitLogged,
		Payload: []byte(`{}`),
	})
	appErr, ok = apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeInvalidPayload, appErr.Code)

	_, err = writer.Ingest(ctx, usecase.IngestInput{
		UserID: "ghost",
		Type:   domain.EventJournalEntry,
	})
	appErr, ok = apperrors.IsAppError(err)
	require.True(t, ok)
	require.Equal(t, apperrors.CodeUserNotFound, appErr.Code)
}
