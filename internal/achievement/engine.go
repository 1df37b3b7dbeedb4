package achievement

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Stoick643/elara/ent"
	entachievement "github.com/Stoick643/elara/ent/achievement"
	"github.com/Stoick643/elara/ent/userachievement"
	"github.com/Stoick643/elara/internal/domain"
	"github.com/Stoick643/elara/internal/pkg/logger"
	"github.com/Stoick643/elara/internal/stats"
	"github.com/Stoick643/elara/internal/unlock"
)

// Notifier writes the ACHIEVEMENT_AWARDED inbox row inside the award
// transaction.
type Notifier interface {
	AchievementAwarded(ctx context.Context, tx *ent.Tx, userID string, a *ent.Achievement) error
}

// Engine awards achievements whose criteria a user's snapshot meets.
type Engine struct {
	client    *ent.Client
	collector *stats.Collector
	notifier  Notifier // nil disables notifications
}

// NewEngine creates an achievement engine over the shared Ent client.
func NewEngine(client *ent.Client, collector *stats.Collector, notifier Notifier) *Engine {
	return &Engine{client: client, collector: collector, notifier: notifier}
}

// HandleEvent is the dispatcher handler run after every ingested event.
func (e *Engine) HandleEvent(ctx context.Context, evt *domain.Event) error {
	_, err := e.Evaluate(ctx, evt.UserID)
	return err
}

// Evaluate awards every unawarded achievement whose criteria the user now
// meets, in ascending achievement ID order so repeated passes notify in a
// stable sequence. Concurrent evaluation is safe: the unique
// (user_id, achievement_id) constraint makes the award at-most-once and a
// losing insert is a silent no-op.
func (e *Engine) Evaluate(ctx context.Context, userID string) ([]string, error) {
	snap, err := e.collector.Snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	defs, err := e.client.Achievement.Query().
		Order(ent.Asc(entachievement.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch achievement catalog: %w", err)
	}

	awarded, err := e.client.UserAchievement.Query().
		Where(userachievement.UserIDEQ(userID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch awards for user %s: %w", userID, err)
	}
	held := make(map[string]bool, len(awarded))
	for _, a := range awarded {
		held[a.AchievementID] = true
	}

	var newAwards []string
	for _, def := range defs {
		if held[def.ID] {
			continue
		}
		var crit unlock.Criterion
		if err := json.Unmarshal(def.CriteriaSpec, &crit); err != nil {
			return newAwards, fmt.Errorf("decode criteria for achievement %q: %w", def.ID, err)
		}
		if !crit.Met(snap) {
			continue
		}
		won, err := e.awardOne(ctx, userID, def)
		if err != nil {
			return newAwards, err
		}
		if won {
			newAwards = append(newAwards, def.ID)
		}
	}
	return newAwards, nil
}

// awardOne records one award in its own transaction. Reports false without
// error when a concurrent evaluation already holds the row.
func (e *Engine) awardOne(ctx context.Context, userID string, def *ent.Achievement) (bool, error) {
	tx, err := e.client.Tx(ctx)
	if err != nil {
		return false, fmt.Errorf("begin award tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.UserAchievement.Create().
		SetID(uuid.Must(uuid.NewV7()).String()).
		SetUserID(userID).
		SetAchievementID(def.ID).
		SetUnlockedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return false, nil
		}
		return false, fmt.Errorf("create award %s for user %s: %w", def.ID, userID, err)
	}

	if e.notifier != nil {
		if err := e.notifier.AchievementAwarded(ctx, tx, userID, def); err != nil {
			return false, fmt.Errorf("notify award %s: %w", def.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		if ent.IsConstraintError(err) {
			return false, nil
		}
		return false, fmt.Errorf("commit award tx: %w", err)
	}
	logger.Info("achievement awarded",
		zap.String("user_id", userID), zap.String("achievement_id", def.ID))
	return true, nil
}

// Award is the read-model row for the achievements endpoint.
type Award struct {
	AchievementID string    `json:"achievement_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	UnlockedAt    time.Time `json:"unlocked_at"`
}

// Awarded lists the user's achievements in award order with catalog names.
func (e *Engine) Awarded(ctx context.Context, userID string) ([]Award, error) {
	rows, err := e.client.UserAchievement.Query().
		Where(userachievement.UserIDEQ(userID)).
		Order(ent.Asc(userachievement.FieldUnlockedAt), ent.Asc(userachievement.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch awards for user %s: %w", userID, err)
	}

	out := make([]Award, 0, len(rows))
	for _, row := range rows {
		award := Award{AchievementID: row.AchievementID, Name: row.AchievementID, UnlockedAt: row.UnlockedAt}
		def, err := e.client.Achievement.Get(ctx, row.AchievementID)
		if err == nil {
			award.Name = def.Name
			award.Description = def.Description
		} else if !ent.IsNotFound(err) {
			return nil, fmt.Errorf("fetch achievement %q: %w", row.AchievementID, err)
		}
		out = append(out, award)
	}
	return out, nil
}
