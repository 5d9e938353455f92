// Code generated by ent, DO NOT EDIT.

package campaign

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the campaign type in the database.
	Label = "campaign"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldOwnerEmail holds the string denoting the owner_email field in the database.
	FieldOwnerEmail = "owner_email"
	// FieldObjective holds the string denoting the objective field in the database.
	FieldObjective = "objective"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldGeneratedCopy holds the string denoting the generated_copy field in the database.
	FieldGeneratedCopy = "generated_copy"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeBatches holds the string denoting the batches edge name in mutations.
	EdgeBatches = "batches"
	// Table holds the table name of the campaign in the database.
	Table = "campaigns"
	// BatchesTable is the table that holds the batches relation/edge.
	BatchesTable = "enrichment_batches"
	// BatchesInverseTable is the table name for the EnrichmentBatch entity.
	// It exists in this package in order to avoid circular dependency with the "enrichmentbatch" package.
	BatchesInverseTable = "enrichment_batches"
	// BatchesColumn is the table column denoting the batches relation/edge.
	BatchesColumn = "campaign_batches"
)

// Columns holds all SQL columns for campaign fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldOwnerEmail,
	FieldObjective,
	FieldStatus,
	FieldGeneratedCopy,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusDraft is the default value of the Status enum.
const DefaultStatus = StatusDraft

// Status values.
const (
	StatusDraft    Status = "draft"
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusDraft, StatusActive, StatusArchived:
		return nil
	default:
		return fmt.Errorf("campaign: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Campaign queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByOwnerEmail orders the results by the owner_email field.
func ByOwnerEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerEmail, opts...).ToFunc()
}

// ByObjective orders the results by the objective field.
func ByObjective(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldObjective, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByGeneratedCopy orders the results by the generated_copy field.
func ByGeneratedCopy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGeneratedCopy, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByBatchesCount orders the results by batches count.
func ByBatchesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newBatchesStep(), opts...)
	}
}

// ByBatches orders the results by batches terms.
func ByBatches(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBatchesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newBatchesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BatchesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, BatchesTable, BatchesColumn),
	)
}
