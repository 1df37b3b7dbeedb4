package modules

import (
	"context"
	"fmt"
	"time"

	"github.com/riverqueue/river"

	"github.com/Stoick643/elara/internal/achievement"
	"github.com/Stoick643/elara/internal/api/handlers"
	"github.com/Stoick643/elara/internal/domain"
	"github.com/Stoick643/elara/internal/eventstore"
	"github.com/Stoick643/elara/internal/jobs"
	"github.com/Stoick643/elara/internal/notification"
	"github.com/Stoick643/elara/internal/stats"
	"github.com/Stoick643/elara/internal/streak"
	"github.com/Stoick643/elara/internal/unlock"
	"github.com/Stoick643/elara/internal/usecase"
)

// TrackerModule wires the event log and every engine that reacts to a
// single derived event: streaks, feature unlocks, achievements and the
// notification inbox they write into.
type TrackerModule struct {
	infra        *Infrastructure
	store        *eventstore.Store
	dispatcher   *domain.EventDispatcher
	corrector    *usecase.Corrector
	streaks      *streak.Engine
	unlocks      *unlock.Evaluator
	achievements *achievement.Engine
	inbox        *notification.Inbox
}

// NewTrackerModule creates the tracker module with explicit constructor
// wiring and syncs the embedded catalogs into the database.
func NewTrackerModule(ctx context.Context, infra *Infrastructure) (*TrackerModule, error) {
	entClient := infra.EntClient
	store := eventstore.New(entClient)
	triggers := notification.NewTriggers(notification.NewInboxSender(entClient))
	collector := stats.New(entClient)

	unlockCatalog, err := unlock.DefaultCatalog()
	if err != nil {
		return nil, fmt.Errorf("load feature catalog: %w", err)
	}
	achievementCatalog, err := achievement.DefaultCatalog()
	if err != nil {
		return nil, fmt.Errorf("load achievement catalog: %w", err)
	}
	if err := achievement.Sync(ctx, entClient, achievementCatalog); err != nil {
		return nil, fmt.Errorf("sync achievement catalog: %w", err)
	}

	streaks := streak.NewEngine(entClient, store, triggers)
	unlocks := unlock.NewEvaluator(entClient, unlockCatalog, collector, triggers)
	achievements := achievement.NewEngine(entClient, collector, triggers)

	// Handler order is fixed: the streak update runs before the snapshot
	// evaluators so streak-gated criteria see the event they were derived
	// from.
	dispatcher := domain.NewEventDispatcher()
	dispatcher.Register(domain.EventHabitLogged, streaks.HandleHabitLogged)
	dispatcher.RegisterAll(unlocks.HandleEvent)
	dispatcher.RegisterAll(achievements.HandleEvent)

	return &TrackerModule{
		infra:        infra,
		store:        store,
		dispatcher:   dispatcher,
		corrector:    usecase.NewCorrector(store, streaks),
		streaks:      streaks,
		unlocks:      unlocks,
		achievements: achievements,
		inbox:        notification.NewInbox(entClient),
	}, nil
}

func (m *TrackerModule) Name() string { return "tracker" }

func (m *TrackerModule) ContributeServerDeps(deps *handlers.ServerDeps) {
	if deps == nil {
		return
	}
	deps.Store = m.store
	// The River client exists only after InitRiver, which runs before
	// server deps are assembled.
	deps.Ingest = usecase.NewIngestWriter(m.infra.Pool, m.infra.RiverClient, m.infra.EntClient)
	deps.Corrector = m.corrector
	deps.Streaks = m.streaks
	deps.Unlocks = m.unlocks
	deps.Achievements = m.achievements
	deps.Inbox = m.inbox
}

func (m *TrackerModule) RegisterWorkers(workers *river.Workers) {
	if workers == nil || m == nil || m.infra == nil {
		return
	}
	river.AddWorker(workers, jobs.NewDeriveWorker(m.store, m.dispatcher, m.infra.Pool))
	river.AddWorker(workers, jobs.NewNotificationCleanupWorker(m.inbox, m.infra.Config.Engagement.NotificationRetention))
}

func (m *TrackerModule) PeriodicJobs() []*river.PeriodicJob {
	return []*river.PeriodicJob{
		river.NewPeriodicJob(
			river.PeriodicInterval(24*time.Hour),
			func() (river.JobArgs, *river.InsertOpts) {
				return jobs.NotificationCleanupArgs{}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		),
	}
}

func (m *TrackerModule) Shutdown(context.Context) error { return nil }
