package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EnrichmentBatch holds the schema definition for the EnrichmentBatch entity.
// One batch represents a single upload-and-enrich run over a contact list.
type EnrichmentBatch struct {
	ent.Schema
}

// Fields of the EnrichmentBatch.
func (EnrichmentBatch) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Comment("Human-readable batch name"),
		field.String("owner_email").
			Optional().
			Comment("Email of the user who uploaded the list; notified on completion"),
		field.Int("total_count").
			Default(0).
			Min(0).
			Comment("Number of contacts in the batch"),
		field.Int("processed_count").
			Default(0).
			Min(0).
			Comment("Contacts that reached a terminal status so far"),
		field.Int("succeeded_count").
			Default(0).
			Min(0).
			Comment("Contacts enriched successfully so far"),
		field.Int("failed_count").
			Default(0).
			Min(0).
			Comment("Contacts that failed so far"),
		field.Enum("status").
			Values("pending", "processing", "completed", "failed", "paused", "cancelled").
			Default("pending").
			Comment("Batch lifecycle status"),
		field.String("error_detail").
			Optional().
			Comment("Explanation when the batch is marked failed"),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When processing began; used for ETA estimation"),
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

// Edges of the EnrichmentBatch.
func (EnrichmentBatch) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("contacts", Contact.Type).
			Comment("Contacts uploaded in this batch"),
		edge.From("campaign", Campaign.Type).
			Ref("batches").
			Unique().
			Comment("Owning campaign, if the list was uploaded for one"),
	}
}

// Indexes of the EnrichmentBatch.
func (EnrichmentBatch) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("created_at"),
	}
}
