// Code generated by ent, DO NOT EDIT.

package campaign

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/promarkhq/marketingdb/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldName, v))
}

// OwnerEmail applies equality check predicate on the "owner_email" field. It's identical to OwnerEmailEQ.
func OwnerEmail(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldOwnerEmail, v))
}

// Objective applies equality check predicate on the "objective" field. It's identical to ObjectiveEQ.
func Objective(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldObjective, v))
}

// GeneratedCopy applies equality check predicate on the "generated_copy" field. It's identical to GeneratedCopyEQ.
func GeneratedCopy(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldGeneratedCopy, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldContainsFold(FieldName, v))
}

// OwnerEmailEQ applies the EQ predicate on the "owner_email" field.
func OwnerEmailEQ(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldOwnerEmail, v))
}

// OwnerEmailNEQ applies the NEQ predicate on the "owner_email" field.
func OwnerEmailNEQ(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldOwnerEmail, v))
}

// OwnerEmailIn applies the In predicate on the "owner_email" field.
func OwnerEmailIn(vs ...string) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldOwnerEmail, vs...))
}

// OwnerEmailNotIn applies the NotIn predicate on the "owner_email" field.
func OwnerEmailNotIn(vs ...string) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldOwnerEmail, vs...))
}

// OwnerEmailGT applies the GT predicate on the "owner_email" field.
func OwnerEmailGT(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldOwnerEmail, v))
}

// OwnerEmailGTE applies the GTE predicate on the "owner_email" field.
func OwnerEmailGTE(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldOwnerEmail, v))
}

// OwnerEmailLT applies the LT predicate on the "owner_email" field.
func OwnerEmailLT(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldOwnerEmail, v))
}

// OwnerEmailLTE applies the LTE predicate on the "owner_email" field.
func OwnerEmailLTE(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldOwnerEmail, v))
}

// OwnerEmailContains applies the Contains predicate on the "owner_email" field.
func OwnerEmailContains(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldContains(FieldOwnerEmail, v))
}

// OwnerEmailHasPrefix applies the HasPrefix predicate on the "owner_email" field.
func OwnerEmailHasPrefix(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldHasPrefix(FieldOwnerEmail, v))
}

// OwnerEmailHasSuffix applies the HasSuffix predicate on the "owner_email" field.
func OwnerEmailHasSuffix(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldHasSuffix(FieldOwnerEmail, v))
}

// OwnerEmailIsNil applies the IsNil predicate on the "owner_email" field.
func OwnerEmailIsNil() predicate.Campaign {
	return predicate.Campaign(sql.FieldIsNull(FieldOwnerEmail))
}

// OwnerEmailNotNil applies the NotNil predicate on the "owner_email" field.
func OwnerEmailNotNil() predicate.Campaign {
	return predicate.Campaign(sql.FieldNotNull(FieldOwnerEmail))
}

// OwnerEmailEqualFold applies the EqualFold predicate on the "owner_email" field.
func OwnerEmailEqualFold(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEqualFold(FieldOwnerEmail, v))
}

// OwnerEmailContainsFold applies the ContainsFold predicate on the "owner_email" field.
func OwnerEmailContainsFold(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldContainsFold(FieldOwnerEmail, v))
}

// ObjectiveEQ applies the EQ predicate on the "objective" field.
func ObjectiveEQ(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldObjective, v))
}

// ObjectiveNEQ applies the NEQ predicate on the "objective" field.
func ObjectiveNEQ(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldObjective, v))
}

// ObjectiveIn applies the In predicate on the "objective" field.
func ObjectiveIn(vs ...string) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldObjective, vs...))
}

// ObjectiveNotIn applies the NotIn predicate on the "objective" field.
func ObjectiveNotIn(vs ...string) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldObjective, vs...))
}

// ObjectiveGT applies the GT predicate on the "objective" field.
func ObjectiveGT(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldObjective, v))
}

// ObjectiveGTE applies the GTE predicate on the "objective" field.
func ObjectiveGTE(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldObjective, v))
}

// ObjectiveLT applies the LT predicate on the "objective" field.
func ObjectiveLT(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldObjective, v))
}

// ObjectiveLTE applies the LTE predicate on the "objective" field.
func ObjectiveLTE(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldObjective, v))
}

// ObjectiveContains applies the Contains predicate on the "objective" field.
func ObjectiveContains(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldContains(FieldObjective, v))
}

// ObjectiveHasPrefix applies the HasPrefix predicate on the "objective" field.
func ObjectiveHasPrefix(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldHasPrefix(FieldObjective, v))
}

// ObjectiveHasSuffix applies the HasSuffix predicate on the "objective" field.
func ObjectiveHasSuffix(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldHasSuffix(FieldObjective, v))
}

// ObjectiveIsNil applies the IsNil predicate on the "objective" field.
func ObjectiveIsNil() predicate.Campaign {
	return predicate.Campaign(sql.FieldIsNull(FieldObjective))
}

// ObjectiveNotNil applies the NotNil predicate on the "objective" field.
func ObjectiveNotNil() predicate.Campaign {
	return predicate.Campaign(sql.FieldNotNull(FieldObjective))
}

// ObjectiveEqualFold applies the EqualFold predicate on the "objective" field.
func ObjectiveEqualFold(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEqualFold(FieldObjective, v))
}

// ObjectiveContainsFold applies the ContainsFold predicate on the "objective" field.
func ObjectiveContainsFold(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldContainsFold(FieldObjective, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldStatus, vs...))
}

// GeneratedCopyEQ applies the EQ predicate on the "generated_copy" field.
func GeneratedCopyEQ(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldGeneratedCopy, v))
}

// GeneratedCopyNEQ applies the NEQ predicate on the "generated_copy" field.
func GeneratedCopyNEQ(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldGeneratedCopy, v))
}

// GeneratedCopyIn applies the In predicate on the "generated_copy" field.
func GeneratedCopyIn(vs ...string) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldGeneratedCopy, vs...))
}

// GeneratedCopyNotIn applies the NotIn predicate on the "generated_copy" field.
func GeneratedCopyNotIn(vs ...string) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldGeneratedCopy, vs...))
}

// GeneratedCopyGT applies the GT predicate on the "generated_copy" field.
func GeneratedCopyGT(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldGeneratedCopy, v))
}

// GeneratedCopyGTE applies the GTE predicate on the "generated_copy" field.
func GeneratedCopyGTE(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldGeneratedCopy, v))
}

// GeneratedCopyLT applies the LT predicate on the "generated_copy" field.
func GeneratedCopyLT(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldGeneratedCopy, v))
}

// GeneratedCopyLTE applies the LTE predicate on the "generated_copy" field.
func GeneratedCopyLTE(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldGeneratedCopy, v))
}

// GeneratedCopyContains applies the Contains predicate on the "generated_copy" field.
func GeneratedCopyContains(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldContains(FieldGeneratedCopy, v))
}

// GeneratedCopyHasPrefix applies the HasPrefix predicate on the "generated_copy" field.
func GeneratedCopyHasPrefix(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldHasPrefix(FieldGeneratedCopy, v))
}

// GeneratedCopyHasSuffix applies the HasSuffix predicate on the "generated_copy" field.
func GeneratedCopyHasSuffix(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldHasSuffix(FieldGeneratedCopy, v))
}

// GeneratedCopyIsNil applies the IsNil predicate on the "generated_copy" field.
func GeneratedCopyIsNil() predicate.Campaign {
	return predicate.Campaign(sql.FieldIsNull(FieldGeneratedCopy))
}

// GeneratedCopyNotNil applies the NotNil predicate on the "generated_copy" field.
func GeneratedCopyNotNil() predicate.Campaign {
	return predicate.Campaign(sql.FieldNotNull(FieldGeneratedCopy))
}

// GeneratedCopyEqualFold applies the EqualFold predicate on the "generated_copy" field.
func GeneratedCopyEqualFold(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldEqualFold(FieldGeneratedCopy, v))
}

// GeneratedCopyContainsFold applies the ContainsFold predicate on the "generated_copy" field.
func GeneratedCopyContainsFold(v string) predicate.Campaign {
	return predicate.Campaign(sql.FieldContainsFold(FieldGeneratedCopy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Campaign {
	return predicate.Campaign(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasBatches applies the HasEdge predicate on the "batches" edge.
func HasBatches() predicate.Campaign {
	return predicate.Campaign(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, BatchesTable, BatchesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBatchesWith applies the HasEdge predicate on the "batches" edge with a given conditions (other predicates).
func HasBatchesWith(preds ...predicate.EnrichmentBatch) predicate.Campaign {
	return predicate.Campaign(func(s *sql.Selector) {
		step := newBatchesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Campaign) predicate.Campaign {
	return predicate.Campaign(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Campaign) predicate.Campaign {
	return predicate.Campaign(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Campaign) predicate.Campaign {
	return predicate.Campaign(sql.NotPredicates(p))
}
