package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LeadSource holds the schema definition for the LeadSource entity.
type LeadSource struct {
	ent.Schema
}

// Fields of the LeadSource.
func (LeadSource) Fields() []ent.Field {
	return []ent.Field{
		field.String("incoming_number").
			NotEmpty().
			MaxLen(20).
			Unique().
			Immutable().
			Comment("Purchased tracking number (E.164 format)"),
		field.String("name").
			Default("").
			Comment("Campaign label, blank until edited. Length is checked in characters by the service"),
		field.String("forwarding_number").
			Default("").
			MaxLen(20).
			Comment("Destination callers are connected to (E.164 format)"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last update timestamp"),
	}
}

// Edges of the LeadSource.
func (LeadSource) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("leads", Lead.Type).
			Comment("Calls received on this number"),
	}
}

// Indexes of the LeadSource.
func (LeadSource) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name"),
	}
}
