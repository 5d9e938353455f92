package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Contact holds the schema definition for the Contact entity.
// A contact is the unit of enrichment work: original fields come from the
// uploaded list and are never overwritten; enriched_* fields are filled by
// the enrichment pipeline.
type Contact struct {
	ent.Schema
}

// Fields of the Contact.
func (Contact) Fields() []ent.Field {
	return []ent.Field{
		// Original input fields (all optional - uploads are messy)
		field.String("first_name").
			Optional().
			Comment("Contact first name"),
		field.String("last_name").
			Optional().
			Comment("Contact last name"),
		field.String("company").
			Optional().
			Comment("Company or brokerage name"),
		field.String("city").
			Optional().
			Comment("City name"),
		field.String("state").
			Optional().
			Comment("State or region"),
		field.String("phone").
			Optional().
			Comment("Original phone number from upload"),
		field.String("email").
			Optional().
			Comment("Original email address from upload"),
		field.String("website").
			Optional().
			Comment("Claimed website URL"),
		field.String("facebook_url").
			Optional().
			Comment("Facebook page or profile URL"),

		// Enriched email
		field.String("enriched_email").
			Optional().
			Comment("Best candidate email found by enrichment"),
		field.Float("enriched_email_confidence").
			Optional().
			Comment("Confidence of the winning email (0-1)"),
		field.String("enriched_email_source").
			Optional().
			Comment("Source that produced the winning email (search, website, social)"),
		field.Bool("email_valid").
			Optional().
			Nillable().
			Comment("Validator verdict for the winning email; nil means validation was unavailable"),
		field.String("email_validation_status").
			Optional().
			Comment("Raw validator status (valid, invalid, catch-all, error, ...)"),

		// Enriched phone
		field.String("enriched_phone").
			Optional().
			Comment("Best candidate phone found by enrichment"),
		field.Float("enriched_phone_confidence").
			Optional().
			Comment("Confidence of the winning phone (0-1)"),
		field.String("enriched_phone_source").
			Optional().
			Comment("Source that produced the winning phone"),
		field.String("enriched_phone_formatted").
			Optional().
			Comment("Winning phone in national format"),

		// Website findings
		field.JSON("website_emails", []string{}).
			Optional().
			Comment("All emails scraped from the contact's website"),
		field.JSON("website_phones", []string{}).
			Optional().
			Comment("All phones scraped from the contact's website"),
		field.JSON("social_links", map[string]string{}).
			Optional().
			Comment("Social links scraped from the website (facebook, twitter, linkedin, instagram)"),

		// Social profile findings
		field.Int("social_followers").
			Optional().
			Comment("Follower count from the social profile"),
		field.String("social_about").
			Optional().
			Comment("About text from the social profile"),

		// Derived scores
		field.Float("completeness_score").
			Optional().
			Comment("Weighted share of enrichment fields that were filled (0-1)"),
		field.Float("confidence_score").
			Optional().
			Comment("Overall confidence across winning candidates (0-1)"),

		// Processing state
		field.Enum("status").
			Values("pending", "processing", "success", "failed", "cancelled").
			Default("pending").
			Comment("Per-contact enrichment status; pending -> processing -> terminal"),
		field.String("error_detail").
			Optional().
			Comment("User-visible diagnostic when status is failed"),

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

// Edges of the Contact.
func (Contact) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("batch", EnrichmentBatch.Type).
			Ref("contacts").
			Unique().
			Comment("Parent upload batch"),
	}
}

// Indexes of the Contact.
func (Contact) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("email"),
		index.Fields("enriched_email"),
		index.Fields("created_at"),
	}
}
