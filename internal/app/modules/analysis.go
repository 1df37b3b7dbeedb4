package modules

import (
	"context"
	"time"

	"github.com/riverqueue/river"

	"github.com/Stoick643/elara/internal/api/handlers"
	"github.com/Stoick643/elara/internal/eventstore"
	"github.com/Stoick643/elara/internal/insight"
	"github.com/Stoick643/elara/internal/jobs"
	"github.com/Stoick643/elara/internal/notification"
)

// AnalysisModule wires the insight detector pass: the engine itself, the
// per-user pass worker and the nightly fan-out that enqueues one pass per
// active user.
type AnalysisModule struct {
	infra  *Infrastructure
	engine *insight.Engine
}

// NewAnalysisModule creates the analysis module.
func NewAnalysisModule(infra *Infrastructure) *AnalysisModule {
	cfg := infra.Config.Engagement
	detectors := insight.DefaultDetectors(insight.Thresholds{
		MinSampleSize:  cfg.MinSampleSize,
		BaselineMargin: cfg.BaselineMargin,
	})
	triggers := notification.NewTriggers(notification.NewInboxSender(infra.EntClient))

	engine := insight.NewEngine(
		infra.EntClient,
		infra.Pool,
		eventstore.New(infra.EntClient),
		detectors,
		cfg,
		triggers,
	).WithPools(infra.Pools)

	return &AnalysisModule{infra: infra, engine: engine}
}

func (m *AnalysisModule) Name() string { return "analysis" }

func (m *AnalysisModule) ContributeServerDeps(deps *handlers.ServerDeps) {
	if deps == nil {
		return
	}
	deps.Insights = m.engine
}

func (m *AnalysisModule) RegisterWorkers(workers *river.Workers) {
	if workers == nil || m == nil || m.infra == nil {
		return
	}
	river.AddWorker(workers, jobs.NewInsightPassWorker(m.engine))
	river.AddWorker(workers, jobs.NewInsightFanoutWorker(m.infra.EntClient, m.infra.Config.Engagement.InsightWindowDays))
}

func (m *AnalysisModule) PeriodicJobs() []*river.PeriodicJob {
	return []*river.PeriodicJob{
		river.NewPeriodicJob(
			river.PeriodicInterval(24*time.Hour),
			func() (river.JobArgs, *river.InsertOpts) {
				return jobs.InsightFanoutArgs{}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: false},
		),
	}
}

func (m *AnalysisModule) Shutdown(context.Context) error { return nil }
