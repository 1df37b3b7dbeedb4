// Package main provides data seeding for the Elara engagement core.
//
// Catalogs are synced on every server start; this command additionally
// bootstraps a demo user with a couple of habits for local development.
// All writes are idempotent, so reruns are safe.
package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Stoick643/elara/ent"
	"github.com/Stoick643/elara/ent/habit"
	"github.com/Stoick643/elara/ent/user"
	"github.com/Stoick643/elara/internal/achievement"
	"github.com/Stoick643/elara/internal/config"
	"github.com/Stoick643/elara/internal/infrastructure"
	"github.com/Stoick643/elara/internal/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()

	client := db.EntClient

	logger.Info("Starting data seeding...")

	// Schema and River migrations are expected to be executed before
	// seeding. This command only performs idempotent data bootstrap.
	catalog, err := achievement.DefaultCatalog()
	if err != nil {
		return fmt.Errorf("load achievement catalog: %w", err)
	}
	if err := achievement.Sync(ctx, client, catalog); err != nil {
		return fmt.Errorf("sync achievement catalog: %w", err)
	}
	logger.Info("achievement catalog synced", zap.Int("achievements", len(catalog.Achievements)))

	if err := seedDemoUser(ctx, client); err != nil {
		return fmt.Errorf("seed demo user: %w", err)
	}

	logger.Info("Data seeding completed successfully")
	return nil
}

// demoHabit defines a habit for the demo user.
type demoHabit struct {
	ID      string
	Name    string
	Cue     string
	Routine string
	Reward  string
}

var demoHabits = []demoHabit{
	{
		ID:      "habit-demo-walk",
		Name:    "Morning walk",
		Cue:     "After the first coffee",
		Routine: "Walk 20 minutes outside",
		Reward:  "Podcast episode",
	},
	{
		ID:      "habit-demo-journal",
		Name:    "Evening journal",
		Cue:     "After brushing teeth",
		Routine: "Write three sentences about the day",
		Reward:  "Lights out guilt-free",
	},
}

// seedDemoUser creates the demo account and its habits when absent.
func seedDemoUser(ctx context.Context, client *ent.Client) error {
	const demoUserID = "user-demo"

	exists, err := client.User.Query().Where(user.IDEQ(demoUserID)).Exist(ctx)
	if err != nil {
		return fmt.Errorf("check demo user: %w", err)
	}
	if !exists {
		if _, err := client.User.Create().
			SetID(demoUserID).
			SetUsername("demo").
			SetTimezone("Europe/Ljubljana").
			Save(ctx); err != nil {
			return fmt.Errorf("create demo user: %w", err)
		}
		logger.Info("demo user created", zap.String("user_id", demoUserID))
	}

	for _, h := range demoHabits {
		exists, err := client.Habit.Query().Where(habit.IDEQ(h.ID)).Exist(ctx)
		if err != nil {
			return fmt.Errorf("check habit %s: %w", h.ID, err)
		}
		if exists {
			continue
		}
		if _, err := client.Habit.Create().
			SetID(h.ID).
			SetUserID(demoUserID).
			SetName(h.Name).
			SetCue(h.Cue).
			SetRoutine(h.Routine).
			SetReward(h.Reward).
			Save(ctx); err != nil {
			return fmt.Errorf("create habit %s: %w", h.ID, err)
		}
		logger.Info("demo habit created", zap.String("habit_id", h.ID))
	}
	return nil
}
