// Code generated by ent, DO NOT EDIT.

package enrichmentbatch

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/promarkhq/marketingdb/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldEQ(FieldName, v))
}

// OwnerEmail applies equality check predicate on the "owner_email" field. It's identical to OwnerEmailEQ.
func OwnerEmail(v string) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldEQ(FieldOwnerEmail, v))
}

// TotalCount applies equality check predicate on the "total_count" field. It's identical to TotalCountEQ.
func TotalCount(v int) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldEQ(FieldTotalCount, v))
}

// ProcessedCount applies equality check predicate on the "processed_count" field. It's identical to ProcessedCountEQ.
func ProcessedCount(v int) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldEQ(FieldProcessedCount, v))
}

// SucceededCount applies equality check predicate on the "succeeded_count" field. It's identical to SucceededCountEQ.
func SucceededCount(v int) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldEQ(FieldSucceededCount, v))
}

// FailedCount applies equality check predicate on the "failed_count" field. It's identical to FailedCountEQ.
func FailedCount(v int) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldEQ(FieldFailedCount, v))
}

// ErrorDetail applies equality check predicate on the "error_detail" field. It's identical to ErrorDetailEQ.
func ErrorDetail(v string) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldEQ(FieldErrorDetail, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldEQ(FieldStartedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldContainsFold(FieldName, v))
}

// OwnerEmailEQ applies the EQ predicate on the "owner_email" field.
func OwnerEmailEQ(v string) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldEQ(FieldOwnerEmail, v))
}

// OwnerEmailNEQ applies the NEQ predicate on the "owner_email" field.
func OwnerEmailNEQ(v string) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldNEQ(FieldOwnerEmail, v))
}

// OwnerEmailIn applies the In predicate on the "owner_email" field.
func OwnerEmailIn(vs ...string) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldIn(FieldOwnerEmail, vs...))
}

// OwnerEmailNotIn applies the NotIn predicate on the "owner_email" field.
func OwnerEmailNotIn(vs ...string) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldNotIn(FieldOwnerEmail, vs...))
}

// OwnerEmailGT applies the GT predicate on the "owner_email" field.
func OwnerEmailGT(v string) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldGT(FieldOwnerEmail, v))
}

// OwnerEmailGTE applies the GTE predicate on the "owner_email" field.
func OwnerEmailGTE(v string) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldGTE(FieldOwnerEmail, v))
}

// OwnerEmailLT applies the LT predicate on the "owner_email" field.
func OwnerEmailLT(v string) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldLT(FieldOwnerEmail, v))
}

// OwnerEmailLTE applies the LTE predicate on the "owner_email" field.
func OwnerEmailLTE(v string) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldLTE(FieldOwnerEmail, v))
}

// OwnerEmailContains applies the Contains predicate on the "owner_email" field.
func OwnerEmailContains(v string) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldContains(FieldOwnerEmail, v))
}

// OwnerEmailHasPrefix applies the HasPrefix predicate on the "owner_email" field.
func OwnerEmailHasPrefix(v string) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldHasPrefix(FieldOwnerEmail, v))
}

// OwnerEmailHasSuffix applies the HasSuffix predicate on the "owner_email" field.
func OwnerEmailHasSuffix(v string) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldHasSuffix(FieldOwnerEmail, v))
}

// OwnerEmailIsNil applies the IsNil predicate on the "owner_email" field.
func OwnerEmailIsNil() predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldIsNull(FieldOwnerEmail))
}

// OwnerEmailNotNil applies the NotNil predicate on the "owner_email" field.
func OwnerEmailNotNil() predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldNotNull(FieldOwnerEmail))
}

// OwnerEmailEqualFold applies the EqualFold predicate on the "owner_email" field.
func OwnerEmailEqualFold(v string) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldEqualFold(FieldOwnerEmail, v))
}

// OwnerEmailContainsFold applies the ContainsFold predicate on the "owner_email" field.
func OwnerEmailContainsFold(v string) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldContainsFold(FieldOwnerEmail, v))
}

// TotalCountEQ applies the EQ predicate on the "total_count" field.
func TotalCountEQ(v int) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldEQ(FieldTotalCount, v))
}

// TotalCountNEQ applies the NEQ predicate on the "total_count" field.
func TotalCountNEQ(v int) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldNEQ(FieldTotalCount, v))
}

// TotalCountIn applies the In predicate on the "total_count" field.
func TotalCountIn(vs ...int) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldIn(FieldTotalCount, vs...))
}

// TotalCountNotIn applies the NotIn predicate on the "total_count" field.
func TotalCountNotIn(vs ...int) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldNotIn(FieldTotalCount, vs...))
}

// TotalCountGT applies the GT predicate on the "total_count" field.
func TotalCountGT(v int) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldGT(FieldTotalCount, v))
}

// TotalCountGTE applies the GTE predicate on the "total_count" field.
func TotalCountGTE(v int) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldGTE(FieldTotalCount, v))
}

// TotalCountLT applies the LT predicate on the "total_count" field.
func TotalCountLT(v int) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldLT(FieldTotalCount, v))
}

// TotalCountLTE applies the LTE predicate on the "total_count" field.
func TotalCountLTE(v int) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldLTE(FieldTotalCount, v))
}

// ProcessedCountEQ applies the EQ predicate on the "processed_count" field.
func ProcessedCountEQ(v int) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldEQ(FieldProcessedCount, v))
}

// ProcessedCountNEQ applies the NEQ predicate on the "processed_count" field.
func ProcessedCountNEQ(v int) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldNEQ(FieldProcessedCount, v))
}

// ProcessedCountIn applies the In predicate on the "processed_count" field.
func ProcessedCountIn(vs ...int) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldIn(FieldProcessedCount, vs...))
}

// ProcessedCountNotIn applies the NotIn predicate on the "processed_count" field.
func ProcessedCountNotIn(vs ...int) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldNotIn(FieldProcessedCount, vs...))
}

// ProcessedCountGT applies the GT predicate on the "processed_count" field.
func ProcessedCountGT(v int) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldGT(FieldProcessedCount, v))
}

// ProcessedCountGTE applies the GTE predicate on the "processed_count" field.
func ProcessedCountGTE(v int) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldGTE(FieldProcessedCount, v))
}

// ProcessedCountLT applies the LT predicate on the "processed_count" field.
func ProcessedCountLT(v int) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldLT(FieldProcessedCount, v))
}

// ProcessedCountLTE applies the LTE predicate on the "processed_count" field.
func ProcessedCountLTE(v int) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldLTE(FieldProcessedCount, v))
}

// SucceededCountEQ applies the EQ predicate on the "succeeded_count" field.
func SucceededCountEQ(v int) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldEQ(FieldSucceededCount, v))
}

// SucceededCountNEQ applies the NEQ predicate on the "succeeded_count" field.
func SucceededCountNEQ(v int) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldNEQ(FieldSucceededCount, v))
}

// SucceededCountIn applies the In predicate on the "succeeded_count" field.
func SucceededCountIn(vs ...int) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldIn(FieldSucceededCount, vs...))
}

// SucceededCountNotIn applies the NotIn predicate on the "succeeded_count" field.
func SucceededCountNotIn(vs ...int) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldNotIn(FieldSucceededCount, vs...))
}

// SucceededCountGT applies the GT predicate on the "succeeded_count" field.
func SucceededCountGT(v int) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldGT(FieldSucceededCount, v))
}

// SucceededCountGTE applies the GTE predicate on the "succeeded_count" field.
func SucceededCountGTE(v int) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldGTE(FieldSucceededCount, v))
}

// SucceededCountLT applies the LT predicate on the "succeeded_count" field.
func SucceededCountLT(v int) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldLT(FieldSucceededCount, v))
}

// SucceededCountLTE applies the LTE predicate on the "succeeded_count" field.
func SucceededCountLTE(v int) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldLTE(FieldSucceededCount, v))
}

// FailedCountEQ applies the EQ predicate on the "failed_count" field.
func FailedCountEQ(v int) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldEQ(FieldFailedCount, v))
}

// FailedCountNEQ applies the NEQ predicate on the "failed_count" field.
func FailedCountNEQ(v int) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldNEQ(FieldFailedCount, v))
}

// FailedCountIn applies the In predicate on the "failed_count" field.
func FailedCountIn(vs ...int) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldIn(FieldFailedCount, vs...))
}

// FailedCountNotIn applies the NotIn predicate on the "failed_count" field.
func FailedCountNotIn(vs ...int) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldNotIn(FieldFailedCount, vs...))
}

// FailedCountGT applies the GT predicate on the "failed_count" field.
func FailedCountGT(v int) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldGT(FieldFailedCount, v))
}

// FailedCountGTE applies the GTE predicate on the "failed_count" field.
func FailedCountGTE(v int) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldGTE(FieldFailedCount, v))
}

// FailedCountLT applies the LT predicate on the "failed_count" field.
func FailedCountLT(v int) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldLT(FieldFailedCount, v))
}

// FailedCountLTE applies the LTE predicate on the "failed_count" field.
func FailedCountLTE(v int) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldLTE(FieldFailedCount, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldNotIn(FieldStatus, vs...))
}

// ErrorDetailEQ applies the EQ predicate on the "error_detail" field.
func ErrorDetailEQ(v string) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldEQ(FieldErrorDetail, v))
}

// ErrorDetailNEQ applies the NEQ predicate on the "error_detail" field.
func ErrorDetailNEQ(v string) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldNEQ(FieldErrorDetail, v))
}

// ErrorDetailIn applies the In predicate on the "error_detail" field.
func ErrorDetailIn(vs ...string) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldIn(FieldErrorDetail, vs...))
}

// ErrorDetailNotIn applies the NotIn predicate on the "error_detail" field.
func ErrorDetailNotIn(vs ...string) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldNotIn(FieldErrorDetail, vs...))
}

// ErrorDetailGT applies the GT predicate on the "error_detail" field.
func ErrorDetailGT(v string) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldGT(FieldErrorDetail, v))
}

// ErrorDetailGTE applies the GTE predicate on the "error_detail" field.
func ErrorDetailGTE(v string) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldGTE(FieldErrorDetail, v))
}

// ErrorDetailLT applies the LT predicate on the "error_detail" field.
func ErrorDetailLT(v string) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldLT(FieldErrorDetail, v))
}

// ErrorDetailLTE applies the LTE predicate on the "error_detail" field.
func ErrorDetailLTE(v string) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldLTE(FieldErrorDetail, v))
}

// ErrorDetailContains applies the Contains predicate on the "error_detail" field.
func ErrorDetailContains(v string) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldContains(FieldErrorDetail, v))
}

// ErrorDetailHasPrefix applies the HasPrefix predicate on the "error_detail" field.
func ErrorDetailHasPrefix(v string) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldHasPrefix(FieldErrorDetail, v))
}

// ErrorDetailHasSuffix applies the HasSuffix predicate on the "error_detail" field.
func ErrorDetailHasSuffix(v string) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldHasSuffix(FieldErrorDetail, v))
}

// ErrorDetailIsNil applies the IsNil predicate on the "error_detail" field.
func ErrorDetailIsNil() predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldIsNull(FieldErrorDetail))
}

// ErrorDetailNotNil applies the NotNil predicate on the "error_detail" field.
func ErrorDetailNotNil() predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldNotNull(FieldErrorDetail))
}

// ErrorDetailEqualFold applies the EqualFold predicate on the "error_detail" field.
func ErrorDetailEqualFold(v string) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldEqualFold(FieldErrorDetail, v))
}

// ErrorDetailContainsFold applies the ContainsFold predicate on the "error_detail" field.
func ErrorDetailContainsFold(v string) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldContainsFold(FieldErrorDetail, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldNotNull(FieldStartedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasContacts applies the HasEdge predicate on the "contacts" edge.
func HasContacts() predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ContactsTable, ContactsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasContactsWith applies the HasEdge predicate on the "contacts" edge with a given conditions (other predicates).
func HasContactsWith(preds ...predicate.Contact) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(func(s *sql.Selector) {
		step := newContactsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCampaign applies the HasEdge predicate on the "campaign" edge.
func HasCampaign() predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CampaignTable, CampaignColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCampaignWith applies the HasEdge predicate on the "campaign" edge with a given conditions (other predicates).
func HasCampaignWith(preds ...predicate.Campaign) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(func(s *sql.Selector) {
		step := newCampaignStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EnrichmentBatch) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EnrichmentBatch) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EnrichmentBatch) predicate.EnrichmentBatch {
	return predicate.EnrichmentBatch(sql.NotPredicates(p))
}
