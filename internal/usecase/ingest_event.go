// Package usecase provides the application's write paths. The event insert
// and its derive-job enqueue must be atomic in a single pgx.Tx: a committed
// event always has a queued derivation and a failed insert enqueues
// nothing.
package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"

	"github.com/Stoick643/elara/ent"
	"github.com/Stoick643/elara/internal/domain"
	"github.com/Stoick643/elara/internal/jobs"
	apperrors "github.com/Stoick643/elara/internal/pkg/errors"
)

// IngestInput is one activity append request.
type IngestInput struct {
	UserID         string
	Type           domain.EventType
	Payload        json.RawMessage
	OccurredAt     time.Time // zero means now
	IdempotencyKey string    // empty means no retry protection
}

// IngestWriter appends activity events. Appends for one user are serialized
// by a transaction-scoped advisory lock so the idempotency check and the
// insert cannot interleave between concurrent requests; different users
// never contend.
type IngestWriter struct {
	pool        *pgxpool.Pool
	riverClient *river.Client[pgx.Tx]
	client      *ent.Client
}

// NewIngestWriter creates the atomic ingest writer.
func NewIngestWriter(pool *pgxpool.Pool, riverClient *river.Client[pgx.Tx], client *ent.Client) *IngestWriter {
	return &IngestWriter{pool: pool, riverClient: riverClient, client: client}
}

// Ingest validates, appends and enqueues derivation for one event.
//
// A replayed idempotency key returns *apperrors.DuplicateEventError carrying
// the existing event's ID; the log is unchanged and nothing is enqueued.
func (w *IngestWriter) Ingest(ctx context.Context, in IngestInput) (*domain.Event, error) {
	if w.pool == nil || w.riverClient == nil || w.client == nil {
		return nil, fmt.Errorf("ingest writer is not initialized")
	}
	if in.UserID == "" {
		return nil, apperrors.BadRequest(apperrors.CodeInvalidPayload, "user_id is required")
	}
	if !in.Type.Valid() {
		return nil, apperrors.BadRequest(apperrors.CodeInvalidPayload,
			fmt.Sprintf("unrecognized event type %q", in.Type))
	}
	if err := domain.ValidatePayload(in.Type, in.Payload); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInvalidPayload, err.Error(), http.StatusBadRequest)
	}

	user, err := w.client.User.Get(ctx, in.UserID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeUserNotFound,
				fmt.Sprintf("user %s not found", in.UserID))
		}
		return nil, fmt.Errorf("fetch user %s: %w", in.UserID, err)
	}

	occurredAt := in.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}
	occurredAt = occurredAt.UTC()
	localDate := domain.LocalDateOf(occurredAt, domain.LoadLocation(user.Timezone))

	payload := in.Payload
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	idemKey := in.IdempotencyKey
	if idemKey == "" {
		// A generated key makes the row self-identifying and keeps the
		// unique index total, at the cost of no replay protection.
		idemKey = uuid.Must(uuid.NewV7()).String()
	}

	tx, err := w.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin ingest tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// Serializes appends per user for the rest of this transaction.
	if _, err := tx.Exec(ctx,
		`SELECT pg_advisory_xact_lock(hashtextextended('ingest:' || $1, 0))`,
		in.UserID,
	); err != nil {
		return nil, fmt.Errorf("take ingest lock for user %s: %w", in.UserID, err)
	}

	var existingID string
	err = tx.QueryRow(ctx,
		`SELECT id FROM activity_events WHERE user_id = $1 AND idempotency_key = $2`,
		in.UserID, idemKey,
	).Scan(&existingID)
	switch {
	case err == nil:
		return nil, &apperrors.DuplicateEventError{ExistingID: existingID}
	case err != pgx.ErrNoRows:
		return nil, fmt.Errorf("idempotency check for user %s: %w", in.UserID, err)
	}

	evt := &domain.Event{
		ID:             uuid.Must(uuid.NewV7()).String(),
		UserID:         in.UserID,
		Type:           in.Type,
		Payload:        payload,
		OccurredAt:     occurredAt,
		LocalDate:      localDate,
		IdempotencyKey: idemKey,
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO activity_events
		   (id, user_id, event_type, payload, occurred_at, local_date, idempotency_key, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, now())`,
		evt.ID, evt.UserID, string(evt.Type), []byte(evt.Payload),
		evt.OccurredAt, evt.LocalDate.String(), evt.IdempotencyKey,
	); err != nil {
		return nil, fmt.Errorf("insert event for user %s: %w", in.UserID, err)
	}

	if _, err := w.riverClient.InsertTx(ctx, tx, jobs.DeriveArgs{
		EventID: evt.ID,
	}, nil); err != nil {
		return nil, fmt.Errorf("enqueue derive for event %s: %w", evt.ID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit ingest tx: %w", err)
	}
	return evt, nil
}
