package jobs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"github.com/Stoick643/elara/ent"
	"github.com/Stoick643/elara/ent/activityevent"
	"github.com/Stoick643/elara/internal/insight"
	apperrors "github.com/Stoick643/elara/internal/pkg/errors"
	"github.com/Stoick643/elara/internal/pkg/logger"
)

// InsightPassArgs runs the detector pass for one user.
type InsightPassArgs struct {
	UserID string `json:"user_id"`

	// AsOf anchors the trailing window; zero means job start time.
	AsOf time.Time `json:"as_of,omitzero"`
}

// Kind returns the job kind identifier for a per-user insight pass.
func (InsightPassArgs) Kind() string { return "insight_pass" }

// InsertOpts routes passes to the analysis queue.
func (InsightPassArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       "analysis",
		MaxAttempts: 3,
		UniqueOpts: river.UniqueOpts{
			ByArgs:  true,
			ByQueue: true,
		},
	}
}

// InsightPassWorker executes the detector pass.
type InsightPassWorker struct {
	river.WorkerDefaults[InsightPassArgs]
	engine *insight.Engine
}

// NewInsightPassWorker creates an InsightPassWorker.
func NewInsightPassWorker(engine *insight.Engine) *InsightPassWorker {
	return &InsightPassWorker{engine: engine}
}

// Work runs the pass. A pass already in progress for the user counts as
// success: the running pass covers the same window, so there is nothing to
// retry.
func (w *InsightPassWorker) Work(ctx context.Context, job *river.Job[InsightPassArgs]) error {
	if w == nil || w.engine == nil {
		return fmt.Errorf("insight pass worker is not initialized")
	}

	asOf := job.Args.AsOf
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}

	created, err := w.engine.RunPass(ctx, job.Args.UserID, asOf)
	if err != nil {
		if errors.Is(err, apperrors.ErrPassInProgress) {
			logger.Info("insight pass already running, skipping",
				zap.String("user_id", job.Args.UserID))
			return nil
		}
		return fmt.Errorf("insight pass for user %s: %w", job.Args.UserID, err)
	}

	logger.Info("insight pass job completed",
		zap.String("user_id", job.Args.UserID),
		zap.Int("new_insights", len(created)),
	)
	return nil
}

// InsightFanoutArgs is the nightly job that enqueues one pass per active
// user.
type InsightFanoutArgs struct{}

// Kind returns the job kind identifier for the nightly fan-out.
func (InsightFanoutArgs) Kind() string { return "insight_fanout" }

// InsertOpts ensures at most one fan-out within the same day.
func (InsightFanoutArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       river.QueueDefault,
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: 24 * time.Hour,
			ByQueue:  true,
			ByArgs:   true,
		},
	}
}

// InsightFanoutWorker enqueues insight passes for every user who logged
// anything inside the detector window. Users without recent events are
// skipped: their window cannot produce a finding and the passes would only
// burn analysis-queue capacity.
type InsightFanoutWorker struct {
	river.WorkerDefaults[InsightFanoutArgs]
	entClient  *ent.Client
	windowDays int
}

// NewInsightFanoutWorker creates an InsightFanoutWorker.
func NewInsightFanoutWorker(entClient *ent.Client, windowDays int) *InsightFanoutWorker {
	return &InsightFanoutWorker{entClient: entClient, windowDays: windowDays}
}

// Work fans out per-user pass jobs via the client that is executing this
// job.
func (w *InsightFanoutWorker) Work(ctx context.Context, _ *river.Job[InsightFanoutArgs]) error {
	if w == nil || w.entClient == nil {
		return fmt.Errorf("insight fanout worker is not initialized")
	}

	riverClient, err := river.ClientFromContextSafely[pgx.Tx](ctx)
	if err != nil {
		return fmt.Errorf("river client unavailable in fanout job: %w", err)
	}

	asOf := time.Now().UTC()
	cutoff := asOf.AddDate(0, 0, -w.windowDays)
	userIDs, err := w.entClient.ActivityEvent.Query().
		Where(activityevent.OccurredAtGTE(cutoff)).
		GroupBy(activityevent.FieldUserID).
		Strings(ctx)
	if err != nil {
		return fmt.Errorf("list active users since %s: %w", cutoff.Format(time.RFC3339), err)
	}

	var failed int
	for _, userID := range userIDs {
		if _, err := riverClient.Insert(ctx, InsightPassArgs{UserID: userID, AsOf: asOf}, nil); err != nil {
			failed++
			logger.Error("enqueue insight pass failed",
				zap.String("user_id", userID),
				zap.Error(err))
		}
	}

	logger.Info("insight fanout completed",
		zap.Int("users", len(userIDs)),
		zap.Int("failed", failed),
	)
	if failed > 0 {
		return fmt.Errorf("insight fanout failed for %d/%d users", failed, len(userIDs))
	}
	return nil
}
