package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Stoick643/elara/internal/domain"
	"github.com/Stoick643/elara/internal/eventstore"
	apperrors "github.com/Stoick643/elara/internal/pkg/errors"
	"github.com/Stoick643/elara/internal/pkg/logger"
	"github.com/Stoick643/elara/internal/streak"
)

// Corrector implements the explicit correction path: the one sanctioned way
// to remove an event from the otherwise append-only log. Streaks are fully
// recomputed afterwards; unlocks and awards stay put because they are
// monotonic by contract.
type Corrector struct {
	store   *eventstore.Store
	streaks *streak.Engine
}

// NewCorrector creates a Corrector.
func NewCorrector(store *eventstore.Store, streaks *streak.Engine) *Corrector {
	return &Corrector{store: store, streaks: streaks}
}

// DeleteEvent removes the event and recomputes any dependent streak.
func (c *Corrector) DeleteEvent(ctx context.Context, eventID string) error {
	evt, err := c.store.Delete(ctx, eventID)
	if err != nil {
		if eventstore.IsNotFound(err) {
			return apperrors.NotFound(apperrors.CodeEventNotFound,
				fmt.Sprintf("event %s not found", eventID))
		}
		return err
	}

	logger.Info("event removed via correction path",
		zap.String("event_id", eventID),
		zap.String("user_id", evt.UserID),
		zap.String("event_type", string(evt.Type)))

	if evt.Type == domain.EventHabitLogged {
		if habitID := evt.HabitID(); habitID != "" {
			if _, err := c.streaks.Recompute(ctx, evt.UserID, habitID); err != nil {
				return fmt.Errorf("recompute streak after correction: %w", err)
			}
		}
	}
	return nil
}
