package unlock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Stoick643/elara/ent"
	"github.com/Stoick643/elara/ent/featureunlock"
	"github.com/Stoick643/elara/internal/domain"
	"github.com/Stoick643/elara/internal/pkg/logger"
	"github.com/Stoick643/elara/internal/stats"
)

// Notifier delivers the unlock notification inside the unlock transaction
// so the inbox row exists exactly when the unlock row does.
type Notifier interface {
	FeatureUnlocked(ctx context.Context, tx *ent.Tx, userID string, f Feature) error
}

// Evaluator applies the catalog to a user's snapshot and records unlocks.
// Unlocks are monotonic: rows are only ever created, never removed, even
// when the underlying counters later fall below the threshold.
type Evaluator struct {
	client    *ent.Client
	catalog   *Catalog
	collector *stats.Collector
	notifier  Notifier // nil disables notifications
}

// NewEvaluator creates an Evaluator over the shared Ent client.
func NewEvaluator(client *ent.Client, catalog *Catalog, collector *stats.Collector, notifier Notifier) *Evaluator {
	return &Evaluator{client: client, catalog: catalog, collector: collector, notifier: notifier}
}

// HandleEvent is the dispatcher handler run after every ingested event.
func (e *Evaluator) HandleEvent(ctx context.Context, evt *domain.Event) error {
	_, err := e.Evaluate(ctx, evt.UserID)
	return err
}

// Evaluate unlocks every catalog feature whose criteria the user now meets
// and returns the newly unlocked IDs in catalog order. Concurrent evaluation
// of the same user is safe: the unique (user_id, feature_id) constraint
// turns the race into a no-op and only the winning transaction notifies.
func (e *Evaluator) Evaluate(ctx context.Context, userID string) ([]string, error) {
	snap, err := e.collector.Snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	rows, err := e.client.FeatureUnlock.Query().
		Where(featureunlock.UserIDEQ(userID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch unlocks for user %s: %w", userID, err)
	}
	held := make(map[string]bool, len(rows))
	for _, row := range rows {
		held[row.FeatureID] = true
	}

	var unlocked []string
	for _, f := range e.catalog.Features {
		if held[f.ID] || !f.Criteria.Met(snap) {
			continue
		}
		created, err := e.unlockOne(ctx, userID, f)
		if err != nil {
			return unlocked, err
		}
		if created {
			unlocked = append(unlocked, f.ID)
			// Features later in the catalog may gate on the unlock count,
			// so the snapshot advances within the pass.
			snap.FeaturesUnlocked++
		}
	}
	return unlocked, nil
}

// unlockOne records a single unlock in its own transaction. Reports false
// without error when another writer got there first.
func (e *Evaluator) unlockOne(ctx context.Context, userID string, f Feature) (bool, error) {
	tx, err := e.client.Tx(ctx)
	if err != nil {
		return false, fmt.Errorf("begin unlock tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.FeatureUnlock.Create().
		SetID(uuid.Must(uuid.NewV7()).String()).
		SetUserID(userID).
		SetFeatureID(f.ID).
		SetUnlocked(true).
		SetUnlockedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return false, nil
		}
		return false, fmt.Errorf("create unlock %s for user %s: %w", f.ID, userID, err)
	}

	if e.notifier != nil {
		if err := e.notifier.FeatureUnlocked(ctx, tx, userID, f); err != nil {
			return false, fmt.Errorf("notify unlock %s: %w", f.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		if ent.IsConstraintError(err) {
			return false, nil
		}
		return false, fmt.Errorf("commit unlock tx: %w", err)
	}
	logger.Info("feature unlocked",
		zap.String("user_id", userID), zap.String("feature_id", f.ID))
	return true, nil
}

// UnlockedFeature is the read-model row for the features endpoint.
type UnlockedFeature struct {
	FeatureID   string    `json:"feature_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	UnlockedAt  time.Time `json:"unlocked_at"`
}

// Unlocked lists the user's unlocked features in unlock order, enriched
// with catalog names. Rows for features since removed from the catalog are
// kept and reported by ID.
func (e *Evaluator) Unlocked(ctx context.Context, userID string) ([]UnlockedFeature, error) {
	rows, err := e.client.FeatureUnlock.Query().
		Where(
			featureunlock.UserIDEQ(userID),
			featureunlock.UnlockedEQ(true),
		).
		Order(ent.Asc(featureunlock.FieldUnlockedAt), ent.Asc(featureunlock.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch unlocks for user %s: %w", userID, err)
	}

	out := make([]UnlockedFeature, 0, len(rows))
	for _, row := range rows {
		uf := UnlockedFeature{FeatureID: row.FeatureID, Name: row.FeatureID, UnlockedAt: row.UnlockedAt}
		if f, ok := e.catalog.Get(row.FeatureID); ok {
			uf.Name = f.Name
			uf.Description = f.Description
		}
		out = append(out, uf)
	}
	return out, nil
}
