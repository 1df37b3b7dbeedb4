// Package jobs defines River Queue job types for async processing.
//
// Derivation follows the claim-check pattern: the job carries only the
// event ID and every consumer re-reads the committed row, so a retried job
// can never act on stale payload data.
package jobs

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"github.com/Stoick643/elara/internal/domain"
	"github.com/Stoick643/elara/internal/eventstore"
	"github.com/Stoick643/elara/internal/pkg/logger"
)

// DeriveArgs carries only the event ID (claim-check).
type DeriveArgs struct {
	EventID string `json:"event_id"`
}

// Kind returns the job kind identifier for event derivation.
func (DeriveArgs) Kind() string { return "derive_event" }

// InsertOpts returns default insert options for derivation jobs.
func (DeriveArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       "derivations",
		MaxAttempts: 3,
		UniqueOpts: river.UniqueOpts{
			ByArgs:  true,
			ByQueue: true,
		},
	}
}

// DeriveWorker replays one committed event through the dispatcher, which
// fans out to the streak, unlock and achievement engines. Derivations for
// one user are serialized with a session advisory lock: River may run two
// of a user's jobs concurrently and the engines' read-modify-write on the
// streak cache is not safe to interleave. Every engine step is idempotent,
// so at-least-once delivery is fine.
type DeriveWorker struct {
	river.WorkerDefaults[DeriveArgs]
	store      *eventstore.Store
	dispatcher *domain.EventDispatcher
	pool       *pgxpool.Pool
}

// NewDeriveWorker creates a DeriveWorker.
func NewDeriveWorker(store *eventstore.Store, dispatcher *domain.EventDispatcher, pool *pgxpool.Pool) *DeriveWorker {
	return &DeriveWorker{store: store, dispatcher: dispatcher, pool: pool}
}

// Work executes the derivation.
func (w *DeriveWorker) Work(ctx context.Context, job *river.Job[DeriveArgs]) error {
	if w == nil || w.store == nil || w.dispatcher == nil || w.pool == nil {
		return fmt.Errorf("derive worker is not initialized")
	}
	eventID := job.Args.EventID

	logger.Info("processing derive job",
		zap.String("event_id", eventID),
		zap.Int("attempt", job.Attempt),
	)

	evt, err := w.store.Get(ctx, eventID)
	if err != nil {
		if eventstore.IsNotFound(err) {
			// The correction path removed the event after enqueue. Nothing
			// left to derive; a retry would fail the same way.
			logger.Warn("event gone before derivation, cancelling job",
				zap.String("event_id", eventID))
			return river.JobCancel(fmt.Errorf("event %s no longer exists", eventID))
		}
		return err
	}

	release, err := lockUser(ctx, w.pool, "derive", evt.UserID)
	if err != nil {
		return err
	}
	defer release()

	if err := w.dispatcher.Dispatch(ctx, evt); err != nil {
		return fmt.Errorf("derive event %s: %w", eventID, err)
	}

	logger.Info("derive job completed",
		zap.String("event_id", eventID),
		zap.String("user_id", evt.UserID),
		zap.String("event_type", string(evt.Type)),
	)
	return nil
}

// lockUser takes a blocking per-user session advisory lock scoped by name.
// The returned release function must be called on the same goroutine path;
// it unlocks on a background context so cancellation cannot leak the lock.
func lockUser(ctx context.Context, pool *pgxpool.Pool, scope, userID string) (func(), error) {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire %s lock connection: %w", scope, err)
	}
	if _, err := conn.Exec(ctx,
		`SELECT pg_advisory_lock(hashtextextended($1 || ':' || $2, 0))`,
		scope, userID,
	); err != nil {
		conn.Release()
		return nil, fmt.Errorf("take %s lock for user %s: %w", scope, userID, err)
	}
	return func() {
		if _, err := conn.Exec(context.Background(),
			`SELECT pg_advisory_unlock(hashtextextended($1 || ':' || $2, 0))`,
			scope, userID,
		); err != nil {
			logger.Warn("release user lock",
				zap.String("scope", scope),
				zap.String("user_id", userID),
				zap.Error(err))
		}
		conn.Release()
	}, nil
}
