package unlock

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Stoick643/elara/internal/domain"
	"github.com/Stoick643/elara/internal/stats"
)

func snapshot() *stats.Snapshot {
	return &stats.Snapshot{
		EventCounts: map[domain.EventType]int{
			domain.EventJournalEntry: 12,
			domain.EventHabitLogged:  20,
		},
		TotalEvents:      32,
		MaxCurrentStreak: 7,
		MaxLongestStreak: 15,
		FeaturesUnlocked: 3,
	}
}

func TestCriterionMet(t *testing.T) {
	tests := []struct {
		name string
		c    Criterion
		want bool
	}{
		{"event count met", Criterion{Kind: KindEventCount, EventType: "journal_entry", Min: 10}, true},
		{"event count not met", Criterion{Kind: KindEventCount, EventType: "journal_entry", Min: 13}, false},
		{"event count any type", Criterion{Kind: KindEventCount, Min: 30}, true},
		{"event count zero for absent type", Criterion{Kind: KindEventCount, EventType: "task_completed", Min: 1}, false},
		{"streak current exact threshold", Criterion{Kind: KindStreakCurrent, Min: 7}, true},
		{"streak current above", Criterion{Kind: KindStreakCurrent, Min: 8}, false},
		{"streak longest", Criterion{Kind: KindStreakLongest, Min: 14}, true},
		{"features unlocked", Criterion{Kind: KindFeaturesUnlocked, Min: 3}, true},
		{"all_of all met", Criterion{Kind: KindAllOf, Of: []Criterion{
			{Kind: KindStreakCurrent, Min: 7},
			{Kind: KindFeaturesUnlocked, Min: 2},
		}}, true},
		{"all_of one unmet", Criterion{Kind: KindAllOf, Of: []Criterion{
			{Kind: KindStreakCurrent, Min: 7},
			{Kind: KindFeaturesUnlocked, Min: 4},
		}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.c.Met(snapshot()))
		})
	}
}

func TestCriterionValidate(t *testing.T) {
	tests := []struct {
		name    string
		c       Criterion
		wantErr string
	}{
		{"valid event count", Criterion{Kind: KindEventCount, EventType: "habit_logged", Min: 5}, ""},
		{"unknown kind", Criterion{Kind: "event_ratio", Min: 1}, "unknown criterion kind"},
		{"missing kind", Criterion{Min: 1}, "missing kind"},
		{"unknown event type", Criterion{Kind: KindEventCount, EventType: "vm_created", Min: 1}, "unknown event type"},
		{"zero min", Criterion{Kind: KindStreakCurrent}, "min >= 1"},
		{"empty all_of", Criterion{Kind: KindAllOf}, "at least one child"},
		{"nested all_of", Criterion{Kind: KindAllOf, Of: []Criterion{
			{Kind: KindAllOf, Of: []Criterion{{Kind: KindStreakCurrent, Min: 1}}},
		}}, "must not nest"},
		{"invalid child", Criterion{Kind: KindAllOf, Of: []Criterion{
			{Kind: "bogus", Min: 1},
		}}, "all_of child 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.c.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
			} else {
				require.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestDefaultCatalogLoads(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)
	require.NotEmpty(t, c.Features)

	// The catalog keeps count-gated features ahead of the ones gating on
	// features_unlocked so a single pass can chain unlocks.
	_, ok := c.Get("advanced_insights")
	require.True(t, ok)
	_, ok = c.Get("nonexistent")
	require.False(t, ok)
}

func TestParseCatalogRejectsBadInput(t *testing.T) {
	_, err := ParseCatalog([]byte("features: []"))
	require.ErrorContains(t, err, "empty")

	_, err = ParseCatalog([]byte(`
features:
  - id: a
    name: A
    criteria: {kind: event_count, min: 1}
  - id: a
    name: Again
    criteria: {kind: event_count, min: 1}
`))
	require.ErrorContains(t, err, "duplicate feature id")

	_, err = ParseCatalog([]byte(`
features:
  - id: b
    name: B
    criteria: {kind: mystery, min: 1}
`))
	require.ErrorContains(t, err, "unknown criterion kind")
}
