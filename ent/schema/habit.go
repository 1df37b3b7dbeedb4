package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Habit holds the schema definition for the Habit entity.
// Created and edited by the habit-management collaborator; the core only
// reads it and maintains the derived streak row.
type Habit struct {
	ent.Schema
}

// Mixin of the Habit.
func (Habit) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Habit.
func (Habit) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.String("cue").
			Default(""),
		field.String("routine").
			Default(""),
		field.String("reward").
			Default(""),
		field.Bool("active").
			Default(true),
	}
}

// Edges of the Habit.
func (Habit) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("habits").
			Field("user_id").
			Unique().
			Required().
			Immutable(),
		edge.To("streak", HabitStreak.Type).
			Unique(),
	}
}

// Indexes of the Habit.
func (Habit) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "active"),
	}
}
