// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CampaignsColumns holds the columns for the "campaigns" table.
	CampaignsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "owner_email", Type: field.TypeString, Nullable: true},
		{Name: "objective", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "active", "archived"}, Default: "draft"},
		{Name: "generated_copy", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CampaignsTable holds the schema information for the "campaigns" table.
	CampaignsTable = &schema.Table{
		Name:       "campaigns",
		Columns:    CampaignsColumns,
		PrimaryKey: []*schema.Column{CampaignsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "campaign_status",
				Unique:  false,
				Columns: []*schema.Column{CampaignsColumns[4]},
			},
		},
	}
	// ContactsColumns holds the columns for the "contacts" table.
	ContactsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "first_name", Type: field.TypeString, Nullable: true},
		{Name: "last_name", Type: field.TypeString, Nullable: true},
		{Name: "company", Type: field.TypeString, Nullable: true},
		{Name: "city", Type: field.TypeString, Nullable: true},
		{Name: "state", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "website", Type: field.TypeString, Nullable: true},
		{Name: "facebook_url", Type: field.TypeString, Nullable: true},
		{Name: "enriched_email", Type: field.TypeString, Nullable: true},
		{Name: "enriched_email_confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "enriched_email_source", Type: field.TypeString, Nullable: true},
		{Name: "email_valid", Type: field.TypeBool, Nullable: true},
		{Name: "email_validation_status", Type: field.TypeString, Nullable: true},
		{Name: "enriched_phone", Type: field.TypeString, Nullable: true},
		{Name: "enriched_phone_confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "enriched_phone_source", Type: field.TypeString, Nullable: true},
		{Name: "enriched_phone_formatted", Type: field.TypeString, Nullable: true},
		{Name: "website_emails", Type: field.TypeJSON, Nullable: true},
		{Name: "website_phones", Type: field.TypeJSON, Nullable: true},
		{Name: "social_links", Type: field.TypeJSON, Nullable: true},
		{Name: "social_followers", Type: field.TypeInt, Nullable: true},
		{Name: "social_about", Type: field.TypeString, Nullable: true},
		{Name: "completeness_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "confidence_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "success", "failed", "cancelled"}, Default: "pending"},
		{Name: "error_detail", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "enrichment_batch_contacts", Type: field.TypeInt, Nullable: true},
	}
	// ContactsTable holds the schema information for the "contacts" table.
	ContactsTable = &schema.Table{
		Name:       "contacts",
		Columns:    ContactsColumns,
		PrimaryKey: []*schema.Column{ContactsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "contacts_enrichment_batches_contacts",
				Columns:    []*schema.Column{ContactsColumns[30]},
				RefColumns: []*schema.Column{EnrichmentBatchesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "contact_status",
				Unique:  false,
				Columns: []*schema.Column{ContactsColumns[26]},
			},
			{
				Name:    "contact_email",
				Unique:  false,
				Columns: []*schema.Column{ContactsColumns[7]},
			},
			{
				Name:    "contact_enriched_email",
				Unique:  false,
				Columns: []*schema.Column{ContactsColumns[10]},
			},
			{
				Name:    "contact_created_at",
				Unique:  false,
				Columns: []*schema.Column{ContactsColumns[28]},
			},
		},
	}
	// EnrichmentBatchesColumns holds the columns for the "enrichment_batches" table.
	EnrichmentBatchesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "owner_email", Type: field.TypeString, Nullable: true},
		{Name: "total_count", Type: field.TypeInt, Default: 0},
		{Name: "processed_count", Type: field.TypeInt, Default: 0},
		{Name: "succeeded_count", Type: field.TypeInt, Default: 0},
		{Name: "failed_count", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "completed", "failed", "paused", "cancelled"}, Default: "pending"},
		{Name: "error_detail", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "campaign_batches", Type: field.TypeInt, Nullable: true},
	}
	// EnrichmentBatchesTable holds the schema information for the "enrichment_batches" table.
	EnrichmentBatchesTable = &schema.Table{
		Name:       "enrichment_batches",
		Columns:    EnrichmentBatchesColumns,
		PrimaryKey: []*schema.Column{EnrichmentBatchesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "enrichment_batches_campaigns_batches",
				Columns:    []*schema.Column{EnrichmentBatchesColumns[12]},
				RefColumns: []*schema.Column{CampaignsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "enrichmentbatch_status",
				Unique:  false,
				Columns: []*schema.Column{EnrichmentBatchesColumns[7]},
			},
			{
				Name:    "enrichmentbatch_created_at",
				Unique:  false,
				Columns: []*schema.Column{EnrichmentBatchesColumns[10]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CampaignsTable,
		ContactsTable,
		EnrichmentBatchesTable,
	}
)

func init() {
	ContactsTable.ForeignKeys[0].RefTable = EnrichmentBatchesTable
	EnrichmentBatchesTable.ForeignKeys[0].RefTable = CampaignsTable
}
