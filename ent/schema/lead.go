package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Lead holds the schema definition for the Lead entity.
// A lead is written once per inbound call and never changed afterwards.
type Lead struct {
	ent.Schema
}

// Fields of the Lead.
func (Lead) Fields() []ent.Field {
	return []ent.Field{
		field.Int("lead_source_id").
			Immutable().
			Comment("Lead source that received the call"),
		field.String("phone_number").
			Default("").
			Immutable().
			Comment("Caller value as reported by the provider, stored verbatim"),
		field.String("city").
			Default("").
			Immutable().
			Comment("Caller city as reported by the provider"),
		field.String("state").
			Default("").
			Immutable().
			Comment("Caller state as reported by the provider"),
		field.String("call_sid").
			Default("").
			Immutable().
			Comment("Provider call identifier, when supplied"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the call was received"),
	}
}

// Edges of the Lead.
func (Lead) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("source", LeadSource.Type).
			Ref("leads").
			Field("lead_source_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Lead.
func (Lead) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lead_source_id"),
		index.Fields("city"),
		index.Fields("created_at"),
	}
}
