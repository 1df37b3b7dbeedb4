// Package achievement awards one-time badges when a user's engagement
// counters cross catalog thresholds. Awards are at-most-once: the unique
// (user_id, achievement_id) constraint is the arbiter under concurrency.
package achievement

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Stoick643/elara/ent"
	"github.com/Stoick643/elara/internal/unlock"
)

//go:embed achievements.yaml
var defaultAchievementsYAML []byte

// Definition is one catalog entry.
type Definition struct {
	ID          string           `yaml:"id"`
	Name        string           `yaml:"name"`
	Description string           `yaml:"description"`
	Criteria    unlock.Criterion `yaml:"criteria"`
}

// Catalog is the achievement list, ordered by definition.
type Catalog struct {
	Achievements []Definition `yaml:"achievements"`
}

// ParseCatalog decodes and validates a YAML catalog.
func ParseCatalog(raw []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("decode achievement catalog: %w", err)
	}
	if len(c.Achievements) == 0 {
		return nil, fmt.Errorf("achievement catalog is empty")
	}
	seen := make(map[string]bool, len(c.Achievements))
	for i, a := range c.Achievements {
		if a.ID == "" {
			return nil, fmt.Errorf("achievement %d missing id", i)
		}
		if seen[a.ID] {
			return nil, fmt.Errorf("duplicate achievement id %q", a.ID)
		}
		seen[a.ID] = true
		if a.Name == "" {
			return nil, fmt.Errorf("achievement %q missing name", a.ID)
		}
		if err := a.Criteria.Validate(); err != nil {
			return nil, fmt.Errorf("achievement %q: %w", a.ID, err)
		}
	}
	return &c, nil
}

// DefaultCatalog returns the embedded achievement catalog.
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultAchievementsYAML)
}

// Sync upserts the catalog into the achievements table. Existing rows are
// updated in place so threshold tuning applies to running deployments;
// rows for achievements removed from the catalog are kept, since users may
// already hold them.
func Sync(ctx context.Context, client *ent.Client, c *Catalog) error {
	for _, def := range c.Achievements {
		spec, err := json.Marshal(def.Criteria)
		if err != nil {
			return fmt.Errorf("encode criteria for achievement %q: %w", def.ID, err)
		}
		existing, err := client.Achievement.Get(ctx, def.ID)
		if err != nil {
			if !ent.IsNotFound(err) {
				return fmt.Errorf("fetch achievement %q: %w", def.ID, err)
			}
			_, err = client.Achievement.Create().
				SetID(def.ID).
				SetName(def.Name).
				SetDescription(def.Description).
				SetCriteriaSpec(spec).
				Save(ctx)
			if err != nil && !ent.IsConstraintError(err) {
				return fmt.Errorf("create achievement %q: %w", def.ID, err)
			}
			continue
		}
		_, err = client.Achievement.UpdateOne(existing).
			SetName(def.Name).
			SetDescription(def.Description).
			SetCriteriaSpec(spec).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update achievement %q: %w", def.ID, err)
		}
	}
	return nil
}
