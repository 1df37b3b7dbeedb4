package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FeatureUnlock holds the schema definition for the FeatureUnlock entity.
// One-way state: a row is only ever created, never flipped back. The unique
// (user_id, feature_id) index turns concurrent unlock attempts into no-ops
// and guarantees the transition notification fires at most once.
type FeatureUnlock struct {
	ent.Schema
}

// Mixin of the FeatureUnlock.
func (FeatureUnlock) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{},
	}
}

// Fields of the FeatureUnlock.
func (FeatureUnlock) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("feature_id").
			NotEmpty().
			Immutable(),
		field.Bool("unlocked").
			Default(true).
			Comment("monotonic: once true, never false"),
		field.Time("unlocked_at").
			Immutable(),
	}
}

// Edges of the FeatureUnlock.
func (FeatureUnlock) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("feature_unlocks").
			Field("user_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the FeatureUnlock.
func (FeatureUnlock) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "feature_id").Unique(),
	}
}
