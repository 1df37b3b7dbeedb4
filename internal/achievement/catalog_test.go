package achievement

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Stoick643/elara/internal/domain"
	"github.com/Stoick643/elara/internal/stats"
	"github.com/Stoick643/elara/internal/unlock"
)

func TestDefaultCatalogLoads(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)
	require.NotEmpty(t, c.Achievements)

	ids := make(map[string]bool)
	for _, a := range c.Achievements {
		ids[a.ID] = true
	}
	require.True(t, ids["first_steps"])
	require.True(t, ids["week_streak"])
}

func TestParseCatalogRejectsUnknownKind(t *testing.T) {
	_, err := ParseCatalog([]byte(`
achievements:
  - id: a
    name: A
    description: d
    criteria: {kind: lines_of_code, min: 1}
`))
	require.ErrorContains(t, err, "unknown criterion kind")
}

func TestCriteriaRoundTripThroughJSON(t *testing.T) {
	// Catalog criteria survive the YAML -> criteria_spec -> evaluation path.
	c, err := DefaultCatalog()
	require.NoError(t, err)

	var weekStreak Definition
	for _, a := range c.Achievements {
		if a.ID == "week_streak" {
			weekStreak = a
		}
	}
	raw, err := json.Marshal(weekStreak.Criteria)
	require.NoError(t, err)

	var decoded unlock.Criterion
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.NoError(t, decoded.Validate())

	snap := &stats.Snapshot{
		EventCounts:      map[domain.EventType]int{},
		MaxLongestStreak: 7,
	}
	require.True(t, decoded.Met(snap))
	snap.MaxLongestStreak = 6
	require.False(t, decoded.Met(snap))
}
