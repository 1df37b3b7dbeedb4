package streak

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Stoick643/elara/ent"
	"github.com/Stoick643/elara/ent/habitstreak"
	"github.com/Stoick643/elara/internal/domain"
	"github.com/Stoick643/elara/internal/eventstore"
	apperrors "github.com/Stoick643/elara/internal/pkg/errors"
	"github.com/Stoick643/elara/internal/pkg/logger"
)

// Milestone is a streak worth celebrating. Day values mirror the habit
// formation checkpoints the app celebrates in the inbox.
type Milestone struct {
	UserID       string
	HabitID      string
	HabitName    string
	Current      int
	PersonalBest bool
}

// Notifier delivers a milestone inside the streak update transaction so the
// inbox row and the streak row commit or roll back together.
type Notifier interface {
	StreakMilestone(ctx context.Context, tx *ent.Tx, m Milestone) error
}

// milestoneDays are the fixed celebration checkpoints.
var milestoneDays = map[int]bool{7: true, 30: true, 100: true}

// Engine maintains the HabitStreak cache from habit_logged events.
type Engine struct {
	client   *ent.Client
	store    *eventstore.Store
	notifier Notifier // nil disables milestone notifications
}

// NewEngine creates a streak engine over the shared Ent client.
func NewEngine(client *ent.Client, store *eventstore.Store, notifier Notifier) *Engine {
	return &Engine{client: client, store: store, notifier: notifier}
}

// HandleHabitLogged is the dispatcher handler for habit_logged events. It
// applies the incremental rule when the log is in order and falls back to a
// full recompute when the log predates the cached last date. Milestones are
// emitted only on forward application, never during recompute, so a backfill
// cannot re-celebrate days the user already saw.
func (e *Engine) HandleHabitLogged(ctx context.Context, evt *domain.Event) error {
	habitID := evt.HabitID()
	if habitID == "" {
		return fmt.Errorf("habit_logged event %s carries no habit_id", evt.ID)
	}

	tx, err := e.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin streak tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	habit, err := tx.Habit.Get(ctx, habitID)
	if err != nil {
		if ent.IsNotFound(err) {
			return apperrors.NotFound(apperrors.CodeHabitNotFound,
				fmt.Sprintf("habit %s not found", habitID))
		}
		return fmt.Errorf("fetch habit %s: %w", habitID, err)
	}

	row, prev, err := e.loadState(ctx, tx, habitID)
	if err != nil {
		return err
	}

	next, outcome := Apply(prev, evt.LocalDate)
	if outcome == OutcomeOutOfOrder {
		logger.Info("out-of-order habit log, recomputing streak",
			zap.String("habit_id", habitID),
			zap.String("log_date", evt.LocalDate.String()),
			zap.String("cached_last", prev.LastCompleted.String()))
		next, err = e.recomputeState(ctx, evt.UserID, habitID)
		if err != nil {
			return err
		}
	}

	if err := persistState(ctx, tx, row, habit, next); err != nil {
		return err
	}

	if e.notifier != nil && outcome != OutcomeOutOfOrder && outcome != OutcomeNoChange {
		if m, ok := milestoneFor(prev, next); ok {
			m.UserID = evt.UserID
			m.HabitID = habitID
			m.HabitName = habit.Name
			if err := e.notifier.StreakMilestone(ctx, tx, m); err != nil {
				return fmt.Errorf("notify streak milestone: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit streak tx: %w", err)
	}
	return nil
}

// Recompute rebuilds the streak row from the full habit log. Used by the
// correction path after an event deletion, and safe to call at any time.
func (e *Engine) Recompute(ctx context.Context, userID, habitID string) (State, error) {
	tx, err := e.client.Tx(ctx)
	if err != nil {
		return State{}, fmt.Errorf("begin streak tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	habit, err := tx.Habit.Get(ctx, habitID)
	if err != nil {
		if ent.IsNotFound(err) {
			return State{}, apperrors.NotFound(apperrors.CodeHabitNotFound,
				fmt.Sprintf("habit %s not found", habitID))
		}
		return State{}, fmt.Errorf("fetch habit %s: %w", habitID, err)
	}

	row, _, err := e.loadState(ctx, tx, habitID)
	if err != nil {
		return State{}, err
	}
	next, err := e.recomputeState(ctx, userID, habitID)
	if err != nil {
		return State{}, err
	}
	if err := persistState(ctx, tx, row, habit, next); err != nil {
		return State{}, err
	}
	if err := tx.Commit(); err != nil {
		return State{}, fmt.Errorf("commit streak tx: %w", err)
	}
	return next, nil
}

// Get returns the cached streak for a habit. A habit that exists but was
// never logged reports the zero state rather than an error.
func (e *Engine) Get(ctx context.Context, habitID string) (State, error) {
	row, err := e.client.HabitStreak.Query().
		Where(habitstreak.HabitIDEQ(habitID)).
		Only(ctx)
	if err == nil {
		return rowState(row)
	}
	if !ent.IsNotFound(err) {
		return State{}, fmt.Errorf("fetch streak for habit %s: %w", habitID, err)
	}

	if _, err := e.client.Habit.Get(ctx, habitID); err != nil {
		if ent.IsNotFound(err) {
			return State{}, apperrors.NotFound(apperrors.CodeHabitNotFound,
				fmt.Sprintf("habit %s not found", habitID))
		}
		return State{}, fmt.Errorf("fetch habit %s: %w", habitID, err)
	}
	return State{}, nil
}

func (e *Engine) recomputeState(ctx context.Context, userID, habitID string) (State, error) {
	dates, err := e.store.HabitLogDates(ctx, userID, habitID)
	if err != nil {
		return State{}, fmt.Errorf("recompute streak for habit %s: %w", habitID, err)
	}
	return Compute(dates), nil
}

func (e *Engine) loadState(ctx context.Context, tx *ent.Tx, habitID string) (*ent.HabitStreak, State, error) {
	row, err := tx.HabitStreak.Query().
		Where(habitstreak.HabitIDEQ(habitID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, State{}, nil
		}
		return nil, State{}, fmt.Errorf("fetch streak for habit %s: %w", habitID, err)
	}
	s, err := rowState(row)
	return row, s, err
}

func rowState(row *ent.HabitStreak) (State, error) {
	s := State{Current: row.CurrentStreak, Longest: row.LongestStreak}
	if row.LastCompletedDate != "" {
		d, err := domain.ParseLocalDate(row.LastCompletedDate)
		if err != nil {
			return State{}, fmt.Errorf("streak row %s has malformed last_completed_date: %w", row.ID, err)
		}
		s.LastCompleted = d
	}
	return s, nil
}

func persistState(ctx context.Context, tx *ent.Tx, row *ent.HabitStreak, habit *ent.Habit, s State) error {
	last := ""
	if !s.LastCompleted.IsZero() {
		last = s.LastCompleted.String()
	}
	if row == nil {
		_, err := tx.HabitStreak.Create().
			SetID(uuid.Must(uuid.NewV7()).String()).
			SetHabitID(habit.ID).
			SetUserID(habit.UserID).
			SetCurrentStreak(s.Current).
			SetLongestStreak(s.Longest).
			SetLastCompletedDate(last).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create streak row for habit %s: %w", habit.ID, err)
		}
		return nil
	}
	_, err := tx.HabitStreak.UpdateOneID(row.ID).
		SetCurrentStreak(s.Current).
		SetLongestStreak(s.Longest).
		SetLastCompletedDate(last).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update streak row for habit %s: %w", habit.ID, err)
	}
	return nil
}

// milestoneFor decides whether the transition prev->next deserves a
// celebration. Fixed checkpoints win over personal bests; a personal best
// only counts past day 3 so brand-new habits do not celebrate every day.
func milestoneFor(prev, next State) (Milestone, bool) {
	if milestoneDays[next.Current] {
		return Milestone{Current: next.Current}, true
	}
	if next.Current > 3 && next.Current > prev.Longest {
		return Milestone{Current: next.Current, PersonalBest: true}, true
	}
	return Milestone{}, false
}
