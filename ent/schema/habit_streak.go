package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// HabitStreak holds the schema definition for the HabitStreak entity.
// Derived cache over the habit_logged slice of the event log. Never a
// source of truth: discarding the row and running a full recompute must
// yield an identical value.
type HabitStreak struct {
	ent.Schema
}

// Mixin of the HabitStreak.
func (HabitStreak) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the HabitStreak.
func (HabitStreak) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("habit_id").
			NotEmpty().
			Unique().
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.Int("current_streak").
			Default(0).
			NonNegative(),
		field.Int("longest_streak").
			Default(0).
			NonNegative(),
		field.String("last_completed_date").
			Default("").
			Comment("YYYY-MM-DD local date of the most recent log; empty when none"),
	}
}

// Edges of the HabitStreak.
func (HabitStreak) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("habit", Habit.Type).
			Ref("streak").
			Field("habit_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the HabitStreak.
func (HabitStreak) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
