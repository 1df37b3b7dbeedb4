// Package handlers implements the HTTP handlers of the engagement API.
//
// Handlers stay thin: decode the request, call one engine or use case, push
// failures to the centralized error middleware via c.Error. Route
// registration lives in internal/app; handlers do NOT register their own
// routes.
package handlers

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Stoick643/elara/ent"
	"github.com/Stoick643/elara/internal/achievement"
	"github.com/Stoick643/elara/internal/eventstore"
	"github.com/Stoick643/elara/internal/insight"
	"github.com/Stoick643/elara/internal/notification"
	"github.com/Stoick643/elara/internal/streak"
	"github.com/Stoick643/elara/internal/unlock"
	"github.com/Stoick643/elara/internal/usecase"
)

// Server implements all API handlers.
type Server struct {
	client       *ent.Client
	pool         *pgxpool.Pool
	store        *eventstore.Store
	ingest       *usecase.IngestWriter
	corrector    *usecase.Corrector
	streaks      *streak.Engine
	unlocks      *unlock.Evaluator
	achievements *achievement.Engine
	insights     *insight.Engine
	inbox        *notification.Inbox
}

// ServerDeps holds all dependencies for creating a Server. Manual DI, no
// Wire/Dig.
type ServerDeps struct {
	EntClient    *ent.Client
	Pool         *pgxpool.Pool
	Store        *eventstore.Store
	Ingest       *usecase.IngestWriter
	Corrector    *usecase.Corrector
	Streaks      *streak.Engine
	Unlocks      *unlock.Evaluator
	Achievements *achievement.Engine
	Insights     *insight.Engine
	Inbox        *notification.Inbox
}

// NewServer creates a new Server with all dependencies.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		client:       deps.EntClient,
		pool:         deps.Pool,
		store:        deps.Store,
		ingest:       deps.Ingest,
		corrector:    deps.Corrector,
		streaks:      deps.Streaks,
		unlocks:      deps.Unlocks,
		achievements: deps.Achievements,
		insights:     deps.Insights,
		inbox:        deps.Inbox,
	}
}
