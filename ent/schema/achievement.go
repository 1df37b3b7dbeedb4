package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Achievement holds the schema definition for the Achievement entity.
// Static catalog seeded from the embedded YAML definition; criteria_spec is
// the serialized tagged predicate evaluated by the criteria interpreter,
// never arbitrary executable logic.
type Achievement struct {
	ent.Schema
}

// Mixin of the Achievement.
func (Achievement) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Achievement.
func (Achievement) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.String("description").
			NotEmpty(),
		field.Bytes("criteria_spec"),
	}
}
