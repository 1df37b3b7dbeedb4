package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// User holds the schema definition for the User entity.
// Accounts are owned by the auth collaborator; the engagement core only
// reads the timezone, since all streak and window arithmetic is user-local.
type User struct {
	ent.Schema
}

// Mixin of the User.
func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("username").
			NotEmpty().
			Unique(),
		field.String("timezone").
			Default("UTC").
			Comment("IANA zone name, the unit of all local-date arithmetic"),
		field.Bool("pro_mode").
			Default(false),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("events", ActivityEvent.Type),
		edge.To("habits", Habit.Type),
		edge.To("feature_unlocks", FeatureUnlock.Type),
		edge.To("insights", Insight.Type),
		edge.To("awards", UserAchievement.Type),
		edge.To("notifications", Notification.Type),
	}
}
