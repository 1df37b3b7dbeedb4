package insight

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/Stoick643/elara/ent"
	entinsight "github.com/Stoick643/elara/ent/insight"
	"github.com/Stoick643/elara/internal/config"
	"github.com/Stoick643/elara/internal/domain"
	"github.com/Stoick643/elara/internal/eventstore"
	apperrors "github.com/Stoick643/elara/internal/pkg/errors"
	"github.com/Stoick643/elara/internal/pkg/logger"
	"github.com/Stoick643/elara/internal/pkg/worker"
)

// Notifier writes the INSIGHT_READY inbox row inside the insight's own
// transaction.
type Notifier interface {
	InsightReady(ctx context.Context, tx *ent.Tx, userID string, ins *ent.Insight) error
}

// Engine orchestrates detector passes: windowing, per-user mutual
// exclusion, cooldown dedupe and persistence.
type Engine struct {
	client    *ent.Client
	pool      *pgxpool.Pool
	store     *eventstore.Store
	detectors []Detector
	cfg       config.EngagementConfig
	notifier  Notifier      // nil disables notifications
	pools     *worker.Pools // nil runs detectors inline
}

// NewEngine creates an insight engine. The pgx pool is used directly for
// advisory locks, which Ent does not model.
func NewEngine(client *ent.Client, pool *pgxpool.Pool, store *eventstore.Store,
	detectors []Detector, cfg config.EngagementConfig, notifier Notifier) *Engine {
	return &Engine{
		client: client, pool: pool, store: store,
		detectors: detectors, cfg: cfg, notifier: notifier,
	}
}

// WithPools routes detector execution through the analysis pool so detectors
// for one pass run concurrently. Each detector commits in its own
// transaction, so they do not share state.
func (e *Engine) WithPools(pools *worker.Pools) *Engine {
	e.pools = pools
	return e
}

// RunPass runs every detector over the user's trailing window ending at
// asOf and returns the newly persisted insights. At most one pass per user
// runs at a time; a second caller gets CodePassInProgress immediately
// instead of queueing behind the first.
//
// Each detector is isolated: a failure (or panic) is logged and the pass
// moves on. Dedupe is per detector in its own transaction, so a crash
// mid-pass leaves earlier findings committed and the rerun suppressed by
// their cooldown rows.
func (e *Engine) RunPass(ctx context.Context, userID string, asOf time.Time) ([]*ent.Insight, error) {
	user, err := e.client.User.Get(ctx, userID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeUserNotFound,
				fmt.Sprintf("user %s not found", userID))
		}
		return nil, fmt.Errorf("fetch user %s: %w", userID, err)
	}

	unlock, err := e.tryLock(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	loc := domain.LoadLocation(user.Timezone)
	to := domain.LocalDateOf(asOf, loc)
	from := to.AddDays(-(e.cfg.InsightWindowDays - 1))

	events, err := e.store.WindowEvents(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	w := Window{
		UserID: userID,
		From:   from,
		To:     to,
		Days:   e.cfg.InsightWindowDays,
		Events: events,
	}

	now := time.Now().UTC()
	created := e.runDetectors(ctx, w, now)

	logger.Info("insight pass finished",
		zap.String("user_id", userID),
		zap.String("window_from", from.String()),
		zap.String("window_to", to.String()),
		zap.Int("events", len(events)),
		zap.Int("new_insights", len(created)))
	return created, nil
}

// runDetectors executes all detectors over one window. With a worker pool
// attached they run concurrently on the analysis pool; each detector is
// isolated either way and a failure only costs its own finding.
func (e *Engine) runDetectors(ctx context.Context, w Window, now time.Time) []*ent.Insight {
	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		created []*ent.Insight
	)

	collect := func(det Detector) {
		ins, err := e.runOne(ctx, det, w, now)
		if err != nil {
			logger.Error("detector failed, continuing pass",
				zap.String("user_id", w.UserID),
				zap.String("detector", det.Name()),
				zap.Error(err))
			return
		}
		if ins != nil {
			mu.Lock()
			created = append(created, ins)
			mu.Unlock()
		}
	}

	for _, det := range e.detectors {
		if e.pools == nil {
			collect(det)
			continue
		}
		det := det
		wg.Add(1)
		if err := e.pools.Analysis.Submit(ctx, func(context.Context) {
			defer wg.Done()
			collect(det)
		}); err != nil {
			wg.Done()
			logger.Warn("analysis pool rejected detector, running inline",
				zap.String("detector", det.Name()), zap.Error(err))
			collect(det)
		}
	}
	wg.Wait()
	return created
}

// runOne executes a single detector and persists its finding unless an
// identical one exists within the cooldown. Returns (nil, nil) when the
// detector stayed silent or the finding was suppressed.
func (e *Engine) runOne(ctx context.Context, det Detector, w Window, now time.Time) (ins *ent.Insight, err error) {
	defer func() {
		if r := recover(); r != nil {
			ins = nil
			err = &apperrors.AnalysisError{
				UserID:   w.UserID,
				Detector: det.Name(),
				Err:      fmt.Errorf("panic: %v", r),
			}
		}
	}()

	cand, err := det.Detect(w)
	if err != nil {
		return nil, &apperrors.AnalysisError{UserID: w.UserID, Detector: det.Name(), Err: err}
	}
	if cand == nil {
		return nil, nil
	}

	sig := Signature(cand.PatternType, cand.Identity, w.Days)
	cooldownFloor := now.AddDate(0, 0, -e.cfg.InsightCooldownDays)

	tx, err := e.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin insight tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	exists, err := tx.Insight.Query().
		Where(
			entinsight.UserIDEQ(w.UserID),
			entinsight.PatternTypeEQ(cand.PatternType),
			entinsight.SignatureEQ(sig),
			entinsight.GeneratedAtGTE(cooldownFloor),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("cooldown check for %s: %w", cand.PatternType, err)
	}
	if exists {
		logger.Debug("insight suppressed by cooldown",
			zap.String("user_id", w.UserID),
			zap.String("pattern_type", cand.PatternType))
		return nil, nil
	}

	supporting, err := json.Marshal(cand.Supporting)
	if err != nil {
		return nil, fmt.Errorf("encode supporting data for %s: %w", cand.PatternType, err)
	}

	row, err := tx.Insight.Create().
		SetID(uuid.Must(uuid.NewV7()).String()).
		SetUserID(w.UserID).
		SetPatternType(cand.PatternType).
		SetSignature(sig).
		SetDescription(cand.Description).
		SetSupportingData(supporting).
		SetGeneratedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("persist insight %s: %w", cand.PatternType, err)
	}

	if e.notifier != nil {
		if err := e.notifier.InsightReady(ctx, tx, w.UserID, row); err != nil {
			return nil, fmt.Errorf("notify insight %s: %w", cand.PatternType, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit insight tx: %w", err)
	}
	return row, nil
}

// tryLock takes the per-user session advisory lock. The lock is connection
// scoped, so the connection is pinned until the returned release function
// runs.
func (e *Engine) tryLock(ctx context.Context, userID string) (func(), error) {
	conn, err := e.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire lock connection: %w", err)
	}

	var got bool
	err = conn.QueryRow(ctx,
		`SELECT pg_try_advisory_lock(hashtextextended('insight-pass:' || $1, 0))`,
		userID,
	).Scan(&got)
	if err != nil {
		conn.Release()
		return nil, fmt.Errorf("take insight pass lock: %w", err)
	}
	if !got {
		conn.Release()
		return nil, apperrors.Wrap(apperrors.ErrPassInProgress,
			apperrors.CodePassInProgress,
			fmt.Sprintf("insight pass already running for user %s", userID),
			http.StatusConflict)
	}

	return func() {
		// Background context: the lock must be released even when the
		// pass context was canceled.
		_, err := conn.Exec(context.Background(),
			`SELECT pg_advisory_unlock(hashtextextended('insight-pass:' || $1, 0))`,
			userID)
		if err != nil {
			logger.Warn("release insight pass lock",
				zap.String("user_id", userID), zap.Error(err))
		}
		conn.Release()
	}, nil
}
