// Package stats aggregates per-user engagement counters. A Snapshot is the
// single input shape every unlock and achievement criterion evaluates
// against, so criteria never touch the database themselves.
package stats

import (
	"context"
	"fmt"

	"github.com/Stoick643/elara/ent"
	"github.com/Stoick643/elara/ent/activityevent"
	"github.com/Stoick643/elara/ent/featureunlock"
	"github.com/Stoick643/elara/ent/habitstreak"
	"github.com/Stoick643/elara/internal/domain"
)

// Snapshot is a point-in-time view of one user's engagement counters.
type Snapshot struct {
	EventCounts      map[domain.EventType]int
	TotalEvents      int
	MaxCurrentStreak int
	MaxLongestStreak int
	FeaturesUnlocked int
}

// Count returns the event count for one type.
func (s *Snapshot) Count(t domain.EventType) int {
	return s.EventCounts[t]
}

// Collector builds snapshots from the shared Ent client.
type Collector struct {
	client *ent.Client
}

// New creates a Collector.
func New(client *ent.Client) *Collector {
	return &Collector{client: client}
}

// Snapshot aggregates the user's counters. Event counts come from a single
// grouped query; streaks are read per habit since a user holds only a
// handful of habit rows.
func (c *Collector) Snapshot(ctx context.Context, userID string) (*Snapshot, error) {
	snap := &Snapshot{EventCounts: make(map[domain.EventType]int)}

	var grouped []struct {
		EventType string `json:"event_type"`
		Count     int    `json:"count"`
	}
	err := c.client.ActivityEvent.Query().
		Where(activityevent.UserIDEQ(userID)).
		GroupBy(activityevent.FieldEventType).
		Aggregate(ent.Count()).
		Scan(ctx, &grouped)
	if err != nil {
		return nil, fmt.Errorf("aggregate event counts for user %s: %w", userID, err)
	}
	for _, g := range grouped {
		snap.EventCounts[domain.EventType(g.EventType)] = g.Count
		snap.TotalEvents += g.Count
	}

	streaks, err := c.client.HabitStreak.Query().
		Where(habitstreak.UserIDEQ(userID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch streaks for user %s: %w", userID, err)
	}
	for _, s := range streaks {
		if s.CurrentStreak > snap.MaxCurrentStreak {
			snap.MaxCurrentStreak = s.CurrentStreak
		}
		if s.LongestStreak > snap.MaxLongestStreak {
			snap.MaxLongestStreak = s.LongestStreak
		}
	}

	unlocked, err := c.client.FeatureUnlock.Query().
		Where(
			featureunlock.UserIDEQ(userID),
			featureunlock.UnlockedEQ(true),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count feature unlocks for user %s: %w", userID, err)
	}
	snap.FeaturesUnlocked = unlocked

	return snap, nil
}
