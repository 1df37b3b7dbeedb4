package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Insight holds the schema definition for the Insight entity.
// Deduplication key is (user_id, pattern_type, signature) within the
// cooldown window. The index is deliberately non-unique: the same finding
// may legitimately resurface once the cooldown has expired.
type Insight struct {
	ent.Schema
}

// Mixin of the Insight.
func (Insight) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{},
	}
}

// Fields of the Insight.
func (Insight) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("pattern_type").
			NotEmpty().
			Immutable(),
		field.String("signature").
			NotEmpty().
			Immutable().
			Comment("stable hash of pattern type, finding parameters and window length"),
		field.String("description").
			NotEmpty(),
		field.Bytes("supporting_data").
			Optional(),
		field.Time("generated_at").
			Immutable(),
		field.Enum("status").
			Values("new", "viewed", "actioned").
			Default("new"),
	}
}

// Edges of the Insight.
func (Insight) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("insights").
			Field("user_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Insight.
func (Insight) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "pattern_type", "signature"),
		index.Fields("user_id", "status"),
		index.Fields("user_id", "generated_at"),
	}
}
