package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UserAchievement holds the schema definition for the UserAchievement entity.
// The unique (user_id, achievement_id) index is the at-most-once award
// guarantee: a losing concurrent insert surfaces as a constraint error that
// the award path treats as a no-op.
type UserAchievement struct {
	ent.Schema
}

// Mixin of the UserAchievement.
func (UserAchievement) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{},
	}
}

// Fields of the UserAchievement.
func (UserAchievement) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("achievement_id").
			NotEmpty().
			Immutable(),
		field.Time("unlocked_at").
			Immutable(),
	}
}

// Edges of the UserAchievement.
func (UserAchievement) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("awards").
			Field("user_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the UserAchievement.
func (UserAchievement) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "achievement_id").Unique(),
	}
}
