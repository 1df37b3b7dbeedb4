// Package eventstore provides the read path over the append-only activity
// log. Writes go through the atomic ingest writer in internal/usecase so
// the event insert and the derive-job enqueue share one transaction.
package eventstore

import (
	"context"
	"fmt"
	"time"

	"github.com/Stoick643/elara/ent"
	"github.com/Stoick643/elara/ent/activityevent"
	"github.com/Stoick643/elara/internal/domain"
)

// Store reads the activity log.
type Store struct {
	client *ent.Client
}

// New creates a Store over the shared Ent client.
func New(client *ent.Client) *Store {
	return &Store{client: client}
}

// Filter narrows a Query call. Nil fields are ignored.
type Filter struct {
	Type *domain.EventType
	From *time.Time
	To   *time.Time
}

// Get fetches a single event by ID.
func (s *Store) Get(ctx context.Context, id string) (*domain.Event, error) {
	row, err := s.client.ActivityEvent.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch event %s: %w", id, err)
	}
	return toDomain(row)
}

// Query returns the user's events ordered by occurred_at then id — the
// canonical per-user ordering every derivation relies on.
func (s *Store) Query(ctx context.Context, userID string, f Filter) ([]*domain.Event, error) {
	q := s.client.ActivityEvent.Query().
		Where(activityevent.UserIDEQ(userID))

	if f.Type != nil {
		entType, err := toEntType(*f.Type)
		if err != nil {
			return nil, err
		}
		q = q.Where(activityevent.EventTypeEQ(entType))
	}
	if f.From != nil {
		q = q.Where(activityevent.OccurredAtGTE(*f.From))
	}
	if f.To != nil {
		q = q.Where(activityevent.OccurredAtLT(*f.To))
	}

	rows, err := q.
		Order(ent.Asc(activityevent.FieldOccurredAt), ent.Asc(activityevent.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query events for user %s: %w", userID, err)
	}
	return toDomainSlice(rows)
}

// WindowEvents returns the user's events whose local date falls in
// [from, to], ordered canonically. Local dates are stored as YYYY-MM-DD
// strings, so the range predicate is a plain lexicographic comparison.
func (s *Store) WindowEvents(ctx context.Context, userID string, from, to domain.LocalDate) ([]*domain.Event, error) {
	rows, err := s.client.ActivityEvent.Query().
		Where(
			activityevent.UserIDEQ(userID),
			activityevent.LocalDateGTE(from.String()),
			activityevent.LocalDateLTE(to.String()),
		).
		Order(ent.Asc(activityevent.FieldOccurredAt), ent.Asc(activityevent.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query window events for user %s: %w", userID, err)
	}
	return toDomainSlice(rows)
}

// HabitLogDates returns the distinct, ascending local dates on which the
// habit was logged. This is the full-recompute input for the streak engine.
func (s *Store) HabitLogDates(ctx context.Context, userID, habitID string) ([]domain.LocalDate, error) {
	rows, err := s.client.ActivityEvent.Query().
		Where(
			activityevent.UserIDEQ(userID),
			activityevent.EventTypeEQ(activityevent.EventTypeHabitLogged),
		).
		Order(ent.Asc(activityevent.FieldLocalDate)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query habit logs for habit %s: %w", habitID, err)
	}

	var dates []domain.LocalDate
	var last string
	for _, row := range rows {
		evt, err := toDomain(row)
		if err != nil {
			return nil, err
		}
		if evt.HabitID() != habitID {
			continue
		}
		if row.LocalDate == last {
			continue // same-day re-log, idempotent
		}
		last = row.LocalDate
		dates = append(dates, evt.LocalDate)
	}
	return dates, nil
}

// Delete removes an event as part of the explicit correction path. Callers
// own triggering the full recompute of dependent caches.
func (s *Store) Delete(ctx context.Context, id string) (*domain.Event, error) {
	evt, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.client.ActivityEvent.DeleteOneID(id).Exec(ctx); err != nil {
		return nil, fmt.Errorf("delete event %s: %w", id, err)
	}
	return evt, nil
}

// IsNotFound reports whether err wraps an Ent not-found error.
func IsNotFound(err error) bool {
	return ent.IsNotFound(err)
}

func toDomainSlice(rows []*ent.ActivityEvent) ([]*domain.Event, error) {
	events := make([]*domain.Event, 0, len(rows))
	for _, row := range rows {
		evt, err := toDomain(row)
		if err != nil {
			return nil, err
		}
		events = append(events, evt)
	}
	return events, nil
}

func toDomain(row *ent.ActivityEvent) (*domain.Event, error) {
	localDate, err := domain.ParseLocalDate(row.LocalDate)
	if err != nil {
		return nil, fmt.Errorf("event %s has malformed local_date: %w", row.ID, err)
	}
	return &domain.Event{
		ID:             row.ID,
		UserID:         row.UserID,
		Type:           domain.EventType(row.EventType),
		Payload:        row.Payload,
		OccurredAt:     row.OccurredAt,
		LocalDate:      localDate,
		IdempotencyKey: row.IdempotencyKey,
	}, nil
}

func toEntType(t domain.EventType) (activityevent.EventType, error) {
	switch t {
	case domain.EventJournalEntry:
		return activityevent.EventTypeJournalEntry, nil
	case domain.EventTaskCompleted:
		return activityevent.EventTypeTaskCompleted, nil
	case domain.EventHabitLogged:
		return activityevent.EventTypeHabitLogged, nil
	case domain.EventWeeklyReview:
		return activityevent.EventTypeWeeklyReviewCompleted, nil
	case domain.EventWheelAssessment:
		return activityevent.EventTypeWheelAssessmentCompleted, nil
	default:
		return "", fmt.Errorf("unrecognized event type %q", t)
	}
}
