package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ActivityEvent holds the schema definition for the ActivityEvent entity.
// Append-only log of normalized user activity; every derived table
// (HabitStreak, FeatureUnlock, Insight, UserAchievement) is recomputable
// from this log alone. Rows are immutable; the only mutation path is the
// explicit correction delete, which forces a full recompute downstream.
type ActivityEvent struct {
	ent.Schema
}

// Mixin of the ActivityEvent.
func (ActivityEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{},
	}
}

// Fields of the ActivityEvent.
func (ActivityEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.Enum("event_type").
			Values(
				"journal_entry",
				"task_completed",
				"habit_logged",
				"weekly_review_completed",
				"wheel_assessment_completed",
			).
			Immutable(),
		field.Bytes("payload").
			Immutable(),
		field.Time("occurred_at").
			Immutable().
			Comment("UTC instant supplied by the collaborator"),
		field.String("local_date").
			Immutable().
			Comment("YYYY-MM-DD in the user's timezone, captured at append"),
		field.String("idempotency_key").
			NotEmpty().
			Immutable(),
	}
}

// Edges of the ActivityEvent.
func (ActivityEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("events").
			Field("user_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ActivityEvent.
func (ActivityEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "idempotency_key").Unique(),
		index.Fields("user_id", "occurred_at"),
		index.Fields("user_id", "event_type", "local_date"),
	}
}
