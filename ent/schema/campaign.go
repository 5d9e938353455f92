package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Campaign holds the schema definition for the Campaign entity.
type Campaign struct {
	ent.Schema
}

// Fields of the Campaign.
func (Campaign) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Comment("Campaign name"),
		field.String("owner_email").
			Optional().
			Comment("Email of the campaign owner"),
		field.String("objective").
			Optional().
			Comment("Free-form campaign objective used for copy generation"),
		field.Enum("status").
			Values("draft", "active", "archived").
			Default("draft").
			Comment("Campaign lifecycle status"),
		field.Text("generated_copy").
			Optional().
			Comment("Latest AI-generated campaign copy"),
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

// Edges of the Campaign.
func (Campaign) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("batches", EnrichmentBatch.Type).
			Comment("Contact upload batches attached to this campaign"),
	}
}

// Indexes of the Campaign.
func (Campaign) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
	}
}
