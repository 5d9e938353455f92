// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/promarkhq/marketingdb/ent/campaign"
	"github.com/promarkhq/marketingdb/ent/contact"
	"github.com/promarkhq/marketingdb/ent/enrichmentbatch"
	"github.com/promarkhq/marketingdb/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	campaignFields := schema.Campaign{}.Fields()
	_ = campaignFields
	// campaignDescName is the schema descriptor for name field.
	campaignDescName := campaignFields[0].Descriptor()
	// campaign.NameValidator is a validator for the "name" field. It is called by the builders before save.
	campaign.NameValidator = campaignDescName.Validators[0].(func(string) error)
	// campaignDescCreatedAt is the schema descriptor for created_at field.
	campaignDescCreatedAt := campaignFields[5].Descriptor()
	// campaign.DefaultCreatedAt holds the default value on creation for the created_at field.
	campaign.DefaultCreatedAt = campaignDescCreatedAt.Default.(func() time.Time)
	// campaignDescUpdatedAt is the schema descriptor for updated_at field.
	campaignDescUpdatedAt := campaignFields[6].Descriptor()
	// campaign.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	campaign.DefaultUpdatedAt = campaignDescUpdatedAt.Default.(func() time.Time)
	// campaign.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	campaign.UpdateDefaultUpdatedAt = campaignDescUpdatedAt.UpdateDefault.(func() time.Time)
	contactFields := schema.Contact{}.Fields()
	_ = contactFields
	// contactDescCreatedAt is the schema descriptor for created_at field.
	contactDescCreatedAt := contactFields[27].Descriptor()
	// contact.DefaultCreatedAt holds the default value on creation for the created_at field.
	contact.DefaultCreatedAt = contactDescCreatedAt.Default.(func() time.Time)
	// contactDescUpdatedAt is the schema descriptor for updated_at field.
	contactDescUpdatedAt := contactFields[28].Descriptor()
	// contact.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	contact.DefaultUpdatedAt = contactDescUpdatedAt.Default.(func() time.Time)
	// contact.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	contact.UpdateDefaultUpdatedAt = contactDescUpdatedAt.UpdateDefault.(func() time.Time)
	enrichmentbatchFields := schema.EnrichmentBatch{}.Fields()
	_ = enrichmentbatchFields
	// enrichmentbatchDescName is the schema descriptor for name field.
	enrichmentbatchDescName := enrichmentbatchFields[0].Descriptor()
	// enrichmentbatch.NameValidator is a validator for the "name" field. It is called by the builders before save.
	enrichmentbatch.NameValidator = enrichmentbatchDescName.Validators[0].(func(string) error)
	// enrichmentbatchDescTotalCount is the schema descriptor for total_count field.
	enrichmentbatchDescTotalCount := enrichmentbatchFields[2].Descriptor()
	// enrichmentbatch.DefaultTotalCount holds the default value on creation for the total_count field.
	enrichmentbatch.DefaultTotalCount = enrichmentbatchDescTotalCount.Default.(int)
	// enrichmentbatch.TotalCountValidator is a validator for the "total_count" field. It is called by the builders before save.
	enrichmentbatch.TotalCountValidator = enrichmentbatchDescTotalCount.Validators[0].(func(int) error)
	// enrichmentbatchDescProcessedCount is the schema descriptor for processed_count field.
	enrichmentbatchDescProcessedCount := enrichmentbatchFields[3].Descriptor()
	// enrichmentbatch.DefaultProcessedCount holds the default value on creation for the processed_count field.
	enrichmentbatch.DefaultProcessedCount = enrichmentbatchDescProcessedCount.Default.(int)
	// enrichmentbatch.ProcessedCountValidator is a validator for the "processed_count" field. It is called by the builders before save.
	enrichmentbatch.ProcessedCountValidator = enrichmentbatchDescProcessedCount.Validators[0].(func(int) error)
	// enrichmentbatchDescSucceededCount is the schema descriptor for succeeded_count field.
	enrichmentbatchDescSucceededCount := enrichmentbatchFields[4].Descriptor()
	// enrichmentbatch.DefaultSucceededCount holds the default value on creation for the succeeded_count field.
	enrichmentbatch.DefaultSucceededCount = enrichmentbatchDescSucceededCount.Default.(int)
	// enrichmentbatch.SucceededCountValidator is a validator for the "succeeded_count" field. It is called by the builders before save.
	enrichmentbatch.SucceededCountValidator = enrichmentbatchDescSucceededCount.Validators[0].(func(int) error)
	// enrichmentbatchDescFailedCount is the schema descriptor for failed_count field.
	enrichmentbatchDescFailedCount := enrichmentbatchFields[5].Descriptor()
	// enrichmentbatch.DefaultFailedCount holds the default value on creation for the failed_count field.
	enrichmentbatch.DefaultFailedCount = enrichmentbatchDescFailedCount.Default.(int)
	// enrichmentbatch.FailedCountValidator is a validator for the "failed_count" field. It is called by the builders before save.
	enrichmentbatch.FailedCountValidator = enrichmentbatchDescFailedCount.Validators[0].(func(int) error)
	// enrichmentbatchDescCreatedAt is the schema descriptor for created_at field.
	enrichmentbatchDescCreatedAt := enrichmentbatchFields[9].Descriptor()
	// enrichmentbatch.DefaultCreatedAt holds the default value on creation for the created_at field.
	enrichmentbatch.DefaultCreatedAt = enrichmentbatchDescCreatedAt.Default.(func() time.Time)
	// enrichmentbatchDescUpdatedAt is the schema descriptor for updated_at field.
	enrichmentbatchDescUpdatedAt := enrichmentbatchFields[10].Descriptor()
	// enrichmentbatch.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	enrichmentbatch.DefaultUpdatedAt = enrichmentbatchDescUpdatedAt.Default.(func() time.Time)
	// enrichmentbatch.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	enrichmentbatch.UpdateDefaultUpdatedAt = enrichmentbatchDescUpdatedAt.UpdateDefault.(func() time.Time)
}
