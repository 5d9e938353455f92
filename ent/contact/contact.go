// Code generated by ent, DO NOT EDIT.

package contact

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the contact type in the database.
	Label = "contact"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFirstName holds the string denoting the first_name field in the database.
	FieldFirstName = "first_name"
	// FieldLastName holds the string denoting the last_name field in the database.
	FieldLastName = "last_name"
	// FieldCompany holds the string denoting the company field in the database.
	FieldCompany = "company"
	// FieldCity holds the string denoting the city field in the database.
	FieldCity = "city"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldPhone holds the string denoting the phone field in the database.
	FieldPhone = "phone"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldWebsite holds the string denoting the website field in the database.
	FieldWebsite = "website"
	// FieldFacebookURL holds the string denoting the facebook_url field in the database.
	FieldFacebookURL = "facebook_url"
	// FieldEnrichedEmail holds the string denoting the enriched_email field in the database.
	FieldEnrichedEmail = "enriched_email"
	// FieldEnrichedEmailConfidence holds the string denoting the enriched_email_confidence field in the database.
	FieldEnrichedEmailConfidence = "enriched_email_confidence"
	// FieldEnrichedEmailSource holds the string denoting the enriched_email_source field in the database.
	FieldEnrichedEmailSource = "enriched_email_source"
	// FieldEmailValid holds the string denoting the email_valid field in the database.
	FieldEmailValid = "email_valid"
	// FieldEmailValidationStatus holds the string denoting the email_validation_status field in the database.
	FieldEmailValidationStatus = "email_validation_status"
	// FieldEnrichedPhone holds the string denoting the enriched_phone field in the database.
	FieldEnrichedPhone = "enriched_phone"
	// FieldEnrichedPhoneConfidence holds the string denoting the enriched_phone_confidence field in the database.
	FieldEnrichedPhoneConfidence = "enriched_phone_confidence"
	// FieldEnrichedPhoneSource holds the string denoting the enriched_phone_source field in the database.
	FieldEnrichedPhoneSource = "enriched_phone_source"
	// FieldEnrichedPhoneFormatted holds the string denoting the enriched_phone_formatted field in the database.
	FieldEnrichedPhoneFormatted = "enriched_phone_formatted"
	// FieldWebsiteEmails holds the string denoting the website_emails field in the database.
	FieldWebsiteEmails = "website_emails"
	// FieldWebsitePhones holds the string denoting the website_phones field in the database.
	FieldWebsitePhones = "website_phones"
	// FieldSocialLinks holds the string denoting the social_links field in the database.
	FieldSocialLinks = "social_links"
	// FieldSocialFollowers holds the string denoting the social_followers field in the database.
	FieldSocialFollowers = "social_followers"
	// FieldSocialAbout holds the string denoting the social_about field in the database.
	FieldSocialAbout = "social_about"
	// FieldCompletenessScore holds the string denoting the completeness_score field in the database.
	FieldCompletenessScore = "completeness_score"
	// FieldConfidenceScore holds the string denoting the confidence_score field in the database.
	FieldConfidenceScore = "confidence_score"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldErrorDetail holds the string denoting the error_detail field in the database.
	FieldErrorDetail = "error_detail"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeBatch holds the string denoting the batch edge name in mutations.
	EdgeBatch = "batch"
	// Table holds the table name of the contact in the database.
	Table = "contacts"
	// BatchTable is the table that holds the batch relation/edge.
	BatchTable = "contacts"
	// BatchInverseTable is the table name for the EnrichmentBatch entity.
	// It exists in this package in order to avoid circular dependency with the "enrichmentbatch" package.
	BatchInverseTable = "enrichment_batches"
	// BatchColumn is the table column denoting the batch relation/edge.
	BatchColumn = "enrichment_batch_contacts"
)

// Columns holds all SQL columns for contact fields.
var Columns = []string{
	FieldID,
	FieldFirstName,
	FieldLastName,
	FieldCompany,
	FieldCity,
	FieldState,
	FieldPhone,
	FieldEmail,
	FieldWebsite,
	FieldFacebookURL,
	FieldEnrichedEmail,
	FieldEnrichedEmailConfidence,
	FieldEnrichedEmailSource,
	FieldEmailValid,
	FieldEmailValidationStatus,
	FieldEnrichedPhone,
	FieldEnrichedPhoneConfidence,
	FieldEnrichedPhoneSource,
	FieldEnrichedPhoneFormatted,
	FieldWebsiteEmails,
	FieldWebsitePhones,
	FieldSocialLinks,
	FieldSocialFollowers,
	FieldSocialAbout,
	FieldCompletenessScore,
	FieldConfidenceScore,
	FieldStatus,
	FieldErrorDetail,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "contacts"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"enrichment_batch_contacts",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusSuccess    Status = "success"
	StatusFailed     Status = "failed"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusProcessing, StatusSuccess, StatusFailed, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("contact: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Contact queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFirstName orders the results by the first_name field.
func ByFirstName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstName, opts...).ToFunc()
}

// ByLastName orders the results by the last_name field.
func ByLastName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastName, opts...).ToFunc()
}

// ByCompany orders the results by the company field.
func ByCompany(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompany, opts...).ToFunc()
}

// ByCity orders the results by the city field.
func ByCity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCity, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByPhone orders the results by the phone field.
func ByPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhone, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByWebsite orders the results by the website field.
func ByWebsite(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWebsite, opts...).ToFunc()
}

// ByFacebookURL orders the results by the facebook_url field.
func ByFacebookURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFacebookURL, opts...).ToFunc()
}

// ByEnrichedEmail orders the results by the enriched_email field.
func ByEnrichedEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnrichedEmail, opts...).ToFunc()
}

// ByEnrichedEmailConfidence orders the results by the enriched_email_confidence field.
func ByEnrichedEmailConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnrichedEmailConfidence, opts...).ToFunc()
}

// ByEnrichedEmailSource orders the results by the enriched_email_source field.
func ByEnrichedEmailSource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnrichedEmailSource, opts...).ToFunc()
}

// ByEmailValid orders the results by the email_valid field.
func ByEmailValid(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmailValid, opts...).ToFunc()
}

// ByEmailValidationStatus orders the results by the email_validation_status field.
func ByEmailValidationStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmailValidationStatus, opts...).ToFunc()
}

// ByEnrichedPhone orders the results by the enriched_phone field.
func ByEnrichedPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnrichedPhone, opts...).ToFunc()
}

// ByEnrichedPhoneConfidence orders the results by the enriched_phone_confidence field.
func ByEnrichedPhoneConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnrichedPhoneConfidence, opts...).ToFunc()
}

// ByEnrichedPhoneSource orders the results by the enriched_phone_source field.
func ByEnrichedPhoneSource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnrichedPhoneSource, opts...).ToFunc()
}

// ByEnrichedPhoneFormatted orders the results by the enriched_phone_formatted field.
func ByEnrichedPhoneFormatted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnrichedPhoneFormatted, opts...).ToFunc()
}

// BySocialFollowers orders the results by the social_followers field.
func BySocialFollowers(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSocialFollowers, opts...).ToFunc()
}

// BySocialAbout orders the results by the social_about field.
func BySocialAbout(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSocialAbout, opts...).ToFunc()
}

// ByCompletenessScore orders the results by the completeness_score field.
func ByCompletenessScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletenessScore, opts...).ToFunc()
}

// ByConfidenceScore orders the results by the confidence_score field.
func ByConfidenceScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidenceScore, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByErrorDetail orders the results by the error_detail field.
func ByErrorDetail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorDetail, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByBatchField orders the results by batch field.
func ByBatchField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBatchStep(), sql.OrderByField(field, opts...))
	}
}
func newBatchStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BatchInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, BatchTable, BatchColumn),
	)
}
