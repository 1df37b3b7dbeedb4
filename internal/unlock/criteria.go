// Package unlock evaluates feature-unlock criteria and maintains the
// monotonic per-user unlock set. Criteria are data, not code: catalogs ship
// as embedded YAML and are interpreted over a stats.Snapshot, so adding a
// feature or tuning a threshold never touches the engine.
package unlock

import (
	"fmt"
	"strings"

	"github.com/Stoick643/elara/internal/domain"
	"github.com/Stoick643/elara/internal/stats"
)

// Criterion kinds. The set is closed: catalogs naming any other kind fail
// to load.
const (
	KindEventCount       = "event_count"
	KindStreakCurrent    = "streak_current"
	KindStreakLongest    = "streak_longest"
	KindFeaturesUnlocked = "features_unlocked"
	KindAllOf            = "all_of"
)

// Criterion is one predicate over a user's engagement snapshot.
type Criterion struct {
	Kind string `yaml:"kind" json:"kind"`

	// EventType narrows event_count to one type; empty counts all events.
	EventType string `yaml:"event_type,omitempty" json:"event_type,omitempty"`

	// Min is the inclusive threshold for the counting kinds.
	Min int `yaml:"min,omitempty" json:"min,omitempty"`

	// Of holds the children of an all_of conjunction.
	Of []Criterion `yaml:"of,omitempty" json:"of,omitempty"`
}

// Validate checks the criterion tree at load time so a malformed catalog
// fails startup instead of silently never unlocking anything.
func (c Criterion) Validate() error {
	switch c.Kind {
	case KindEventCount:
		if c.EventType != "" && !domain.EventType(c.EventType).Valid() {
			return fmt.Errorf("event_count criterion references unknown event type %q", c.EventType)
		}
		if c.Min < 1 {
			return fmt.Errorf("event_count criterion requires min >= 1, got %d", c.Min)
		}
	case KindStreakCurrent, KindStreakLongest, KindFeaturesUnlocked:
		if c.Min < 1 {
			return fmt.Errorf("%s criterion requires min >= 1, got %d", c.Kind, c.Min)
		}
	case KindAllOf:
		if len(c.Of) == 0 {
			return fmt.Errorf("all_of criterion requires at least one child")
		}
		for i, child := range c.Of {
			if child.Kind == KindAllOf {
				return fmt.Errorf("all_of criterion must not nest another all_of")
			}
			if err := child.Validate(); err != nil {
				return fmt.Errorf("all_of child %d: %w", i, err)
			}
		}
	case "":
		return fmt.Errorf("criterion missing kind")
	default:
		return fmt.Errorf("unknown criterion kind %q", c.Kind)
	}
	return nil
}

// Met evaluates the criterion against a snapshot.
func (c Criterion) Met(s *stats.Snapshot) bool {
	switch c.Kind {
	case KindEventCount:
		if c.EventType == "" {
			return s.TotalEvents >= c.Min
		}
		return s.Count(domain.EventType(c.EventType)) >= c.Min
	case KindStreakCurrent:
		return s.MaxCurrentStreak >= c.Min
	case KindStreakLongest:
		return s.MaxLongestStreak >= c.Min
	case KindFeaturesUnlocked:
		return s.FeaturesUnlocked >= c.Min
	case KindAllOf:
		for _, child := range c.Of {
			if !child.Met(s) {
				return false
			}
		}
		return true
	}
	return false
}

// String renders the criterion for logs and seed output.
func (c Criterion) String() string {
	switch c.Kind {
	case KindEventCount:
		if c.EventType == "" {
			return fmt.Sprintf("event_count(any) >= %d", c.Min)
		}
		return fmt.Sprintf("event_count(%s) >= %d", c.EventType, c.Min)
	case KindAllOf:
		parts := make([]string, len(c.Of))
		for i, child := range c.Of {
			parts[i] = child.String()
		}
		return "all_of(" + strings.Join(parts, ", ") + ")"
	default:
		return fmt.Sprintf("%s >= %d", c.Kind, c.Min)
	}
}
