// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/promarkhq/marketingdb/ent/campaign"
	"github.com/promarkhq/marketingdb/ent/contact"
	"github.com/promarkhq/marketingdb/ent/enrichmentbatch"
	"github.com/promarkhq/marketingdb/ent/predicate"
)

// EnrichmentBatchUpdate is the builder for updating EnrichmentBatch entities.
type EnrichmentBatchUpdate struct {
	config
	hooks    []Hook
	mutation *EnrichmentBatchMutation
}

// Where appends a list predicates to the EnrichmentBatchUpdate builder.
func (_u *EnrichmentBatchUpdate) Where(ps ...predicate.EnrichmentBatch) *EnrichmentBatchUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *EnrichmentBatchUpdate) SetName(v string) *EnrichmentBatchUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *EnrichmentBatchUpdate) SetNillableName(v *string) *EnrichmentBatchUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetOwnerEmail sets the "owner_email" field.
func (_u *EnrichmentBatchUpdate) SetOwnerEmail(v string) *EnrichmentBatchUpdate {
	_u.mutation.SetOwnerEmail(v)
	return _u
}

// SetNillableOwnerEmail sets the "owner_email" field if the given value is not nil.
func (_u *EnrichmentBatchUpdate) SetNillableOwnerEmail(v *string) *EnrichmentBatchUpdate {
	if v != nil {
		_u.SetOwnerEmail(*v)
	}
	return _u
}

// ClearOwnerEmail clears the value of the "owner_email" field.
func (_u *EnrichmentBatchUpdate) ClearOwnerEmail() *EnrichmentBatchUpdate {
	_u.mutation.ClearOwnerEmail()
	return _u
}

// SetTotalCount sets the "total_count" field.
func (_u *EnrichmentBatchUpdate) SetTotalCount(v int) *EnrichmentBatchUpdate {
	_u.mutation.ResetTotalCount()
	_u.mutation.SetTotalCount(v)
	return _u
}

// SetNillableTotalCount sets the "total_count" field if the given value is not nil.
func (_u *EnrichmentBatchUpdate) SetNillableTotalCount(v *int) *EnrichmentBatchUpdate {
	if v != nil {
		_u.SetTotalCount(*v)
	}
	return _u
}

// AddTotalCount adds value to the "total_count" field.
func (_u *EnrichmentBatchUpdate) AddTotalCount(v int) *EnrichmentBatchUpdate {
	_u.mutation.AddTotalCount(v)
	return _u
}

// SetProcessedCount sets the "processed_count" field.
func (_u *EnrichmentBatchUpdate) SetProcessedCount(v int) *EnrichmentBatchUpdate {
	_u.mutation.ResetProcessedCount()
	_u.mutation.SetProcessedCount(v)
	return _u
}

// SetNillableProcessedCount sets the "processed_count" field if the given value is not nil.
func (_u *EnrichmentBatchUpdate) SetNillableProcessedCount(v *int) *EnrichmentBatchUpdate {
	if v != nil {
		_u.SetProcessedCount(*v)
	}
	return _u
}

// AddProcessedCount adds value to the "processed_count" field.
func (_u *EnrichmentBatchUpdate) AddProcessedCount(v int) *EnrichmentBatchUpdate {
	_u.mutation.AddProcessedCount(v)
	return _u
}

// SetSucceededCount sets the "succeeded_count" field.
func (_u *EnrichmentBatchUpdate) SetSucceededCount(v int) *EnrichmentBatchUpdate {
	_u.mutation.ResetSucceededCount()
	_u.mutation.SetSucceededCount(v)
	return _u
}

// SetNillableSucceededCount sets the "succeeded_count" field if the given value is not nil.
func (_u *EnrichmentBatchUpdate) SetNillableSucceededCount(v *int) *EnrichmentBatchUpdate {
	if v != nil {
		_u.SetSucceededCount(*v)
	}
	return _u
}

// AddSucceededCount adds value to the "succeeded_count" field.
func (_u *EnrichmentBatchUpdate) AddSucceededCount(v int) *EnrichmentBatchUpdate {
	_u.mutation.AddSucceededCount(v)
	return _u
}

// SetFailedCount sets the "failed_count" field.
func (_u *EnrichmentBatchUpdate) SetFailedCount(v int) *EnrichmentBatchUpdate {
	_u.mutation.ResetFailedCount()
	_u.mutation.SetFailedCount(v)
	return _u
}

// SetNillableFailedCount sets the "failed_count" field if the given value is not nil.
func (_u *EnrichmentBatchUpdate) SetNillableFailedCount(v *int) *EnrichmentBatchUpdate {
	if v != nil {
		_u.SetFailedCount(*v)
	}
	return _u
}

// AddFailedCount adds value to the "failed_count" field.
func (_u *EnrichmentBatchUpdate) AddFailedCount(v int) *EnrichmentBatchUpdate {
	_u.mutation.AddFailedCount(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *EnrichmentBatchUpdate) SetStatus(v enrichmentbatch.Status) *EnrichmentBatchUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EnrichmentBatchUpdate) SetNillableStatus(v *enrichmentbatch.Status) *EnrichmentBatchUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorDetail sets the "error_detail" field.
func (_u *EnrichmentBatchUpdate) SetErrorDetail(v string) *EnrichmentBatchUpdate {
	_u.mutation.SetErrorDetail(v)
	return _u
}

// SetNillableErrorDetail sets the "error_detail" field if the given value is not nil.
func (_u *EnrichmentBatchUpdate) SetNillableErrorDetail(v *string) *EnrichmentBatchUpdate {
	if v != nil {
		_u.SetErrorDetail(*v)
	}
	return _u
}

// ClearErrorDetail clears the value of the "error_detail" field.
func (_u *EnrichmentBatchUpdate) ClearErrorDetail() *EnrichmentBatchUpdate {
	_u.mutation.ClearErrorDetail()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *EnrichmentBatchUpdate) SetStartedAt(v time.Time) *EnrichmentBatchUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *EnrichmentBatchUpdate) SetNillableStartedAt(v *time.Time) *EnrichmentBatchUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *EnrichmentBatchUpdate) ClearStartedAt() *EnrichmentBatchUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EnrichmentBatchUpdate) SetUpdatedAt(v time.Time) *EnrichmentBatchUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddContactIDs adds the "contacts" edge to the Contact entity by IDs.
func (_u *EnrichmentBatchUpdate) AddContactIDs(ids ...int) *EnrichmentBatchUpdate {
	_u.mutation.AddContactIDs(ids...)
	return _u
}

// AddContacts adds the "contacts" edges to the Contact entity.
func (_u *EnrichmentBatchUpdate) AddContacts(v ...*Contact) *EnrichmentBatchUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddContactIDs(ids...)
}

// SetCampaignID sets the "campaign" edge to the Campaign entity by ID.
func (_u *EnrichmentBatchUpdate) SetCampaignID(id int) *EnrichmentBatchUpdate {
	_u.mutation.SetCampaignID(id)
	return _u
}

// SetNillableCampaignID sets the "campaign" edge to the Campaign entity by ID if the given value is not nil.
func (_u *EnrichmentBatchUpdate) SetNillableCampaignID(id *int) *EnrichmentBatchUpdate {
	if id != nil {
		_u = _u.SetCampaignID(*id)
	}
	return _u
}

// SetCampaign sets the "campaign" edge to the Campaign entity.
func (_u *EnrichmentBatchUpdate) SetCampaign(v *Campaign) *EnrichmentBatchUpdate {
	return _u.SetCampaignID(v.ID)
}

// Mutation returns the EnrichmentBatchMutation object of the builder.
func (_u *EnrichmentBatchUpdate) Mutation() *EnrichmentBatchMutation {
	return _u.mutation
}

// ClearContacts clears all "contacts" edges to the Contact entity.
func (_u *EnrichmentBatchUpdate) ClearContacts() *EnrichmentBatchUpdate {
	_u.mutation.ClearContacts()
	return _u
}

// RemoveContactIDs removes the "contacts" edge to Contact entities by IDs.
func (_u *EnrichmentBatchUpdate) RemoveContactIDs(ids ...int) *EnrichmentBatchUpdate {
	_u.mutation.RemoveContactIDs(ids...)
	return _u
}

// RemoveContacts removes "contacts" edges to Contact entities.
func (_u *EnrichmentBatchUpdate) RemoveContacts(v ...*Contact) *EnrichmentBatchUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveContactIDs(ids...)
}

// ClearCampaign clears the "campaign" edge to the Campaign entity.
func (_u *EnrichmentBatchUpdate) ClearCampaign() *EnrichmentBatchUpdate {
	_u.mutation.ClearCampaign()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EnrichmentBatchUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EnrichmentBatchUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EnrichmentBatchUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EnrichmentBatchUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EnrichmentBatchUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := enrichmentbatch.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EnrichmentBatchUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := enrichmentbatch.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "EnrichmentBatch.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalCount(); ok {
		if err := enrichmentbatch.TotalCountValidator(v); err != nil {
			return &ValidationError{Name: "total_count", err: fmt.Errorf(`ent: validator failed for field "EnrichmentBatch.total_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProcessedCount(); ok {
		if err := enrichmentbatch.ProcessedCountValidator(v); err != nil {
			return &ValidationError{Name: "processed_count", err: fmt.Errorf(`ent: validator failed for field "EnrichmentBatch.processed_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SucceededCount(); ok {
		if err := enrichmentbatch.SucceededCountValidator(v); err != nil {
			return &ValidationError{Name: "succeeded_count", err: fmt.Errorf(`ent: validator failed for field "EnrichmentBatch.succeeded_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FailedCount(); ok {
		if err := enrichmentbatch.FailedCountValidator(v); err != nil {
			return &ValidationError{Name: "failed_count", err: fmt.Errorf(`ent: validator failed for field "EnrichmentBatch.failed_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := enrichmentbatch.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "EnrichmentBatch.status": %w`, err)}
		}
	}
	return nil
}

func (_u *EnrichmentBatchUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(enrichmentbatch.Table, enrichmentbatch.Columns, sqlgraph.NewFieldSpec(enrichmentbatch.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(enrichmentbatch.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.OwnerEmail(); ok {
		_spec.SetField(enrichmentbatch.FieldOwnerEmail, field.TypeString, value)
	}
	if _u.mutation.OwnerEmailCleared() {
		_spec.ClearField(enrichmentbatch.FieldOwnerEmail, field.TypeString)
	}
	if value, ok := _u.mutation.TotalCount(); ok {
		_spec.SetField(enrichmentbatch.FieldTotalCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalCount(); ok {
		_spec.AddField(enrichmentbatch.FieldTotalCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProcessedCount(); ok {
		_spec.SetField(enrichmentbatch.FieldProcessedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProcessedCount(); ok {
		_spec.AddField(enrichmentbatch.FieldProcessedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SucceededCount(); ok {
		_spec.SetField(enrichmentbatch.FieldSucceededCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSucceededCount(); ok {
		_spec.AddField(enrichmentbatch.FieldSucceededCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedCount(); ok {
		_spec.SetField(enrichmentbatch.FieldFailedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedCount(); ok {
		_spec.AddField(enrichmentbatch.FieldFailedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(enrichmentbatch.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorDetail(); ok {
		_spec.SetField(enrichmentbatch.FieldErrorDetail, field.TypeString, value)
	}
	if _u.mutation.ErrorDetailCleared() {
		_spec.ClearField(enrichmentbatch.FieldErrorDetail, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(enrichmentbatch.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(enrichmentbatch.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(enrichmentbatch.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ContactsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   enrichmentbatch.ContactsTable,
			Columns: []string{enrichmentbatch.ContactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contact.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedContactsIDs(); len(nodes) > 0 && !_u.mutation.ContactsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   enrichmentbatch.ContactsTable,
			Columns: []string{enrichmentbatch.ContactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contact.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContactsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   enrichmentbatch.ContactsTable,
			Columns: []string{enrichmentbatch.ContactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contact.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CampaignCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   enrichmentbatch.CampaignTable,
			Columns: []string{enrichmentbatch.CampaignColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CampaignIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   enrichmentbatch.CampaignTable,
			Columns: []string{enrichmentbatch.CampaignColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{enrichmentbatch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EnrichmentBatchUpdateOne is the builder for updating a single EnrichmentBatch entity.
type EnrichmentBatchUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EnrichmentBatchMutation
}

// SetName sets the "name" field.
func (_u *EnrichmentBatchUpdateOne) SetName(v string) *EnrichmentBatchUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *EnrichmentBatchUpdateOne) SetNillableName(v *string) *EnrichmentBatchUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetOwnerEmail sets the "owner_email" field.
func (_u *EnrichmentBatchUpdateOne) SetOwnerEmail(v string) *EnrichmentBatchUpdateOne {
	_u.mutation.SetOwnerEmail(v)
	return _u
}

// SetNillableOwnerEmail sets the "owner_email" field if the given value is not nil.
func (_u *EnrichmentBatchUpdateOne) SetNillableOwnerEmail(v *string) *EnrichmentBatchUpdateOne {
	if v != nil {
		_u.SetOwnerEmail(*v)
	}
	return _u
}

// ClearOwnerEmail clears the value of the "owner_email" field.
func (_u *EnrichmentBatchUpdateOne) ClearOwnerEmail() *EnrichmentBatchUpdateOne {
	_u.mutation.ClearOwnerEmail()
	return _u
}

// SetTotalCount sets the "total_count" field.
func (_u *EnrichmentBatchUpdateOne) SetTotalCount(v int) *EnrichmentBatchUpdateOne {
	_u.mutation.ResetTotalCount()
	_u.mutation.SetTotalCount(v)
	return _u
}

// SetNillableTotalCount sets the "total_count" field if the given value is not nil.
func (_u *EnrichmentBatchUpdateOne) SetNillableTotalCount(v *int) *EnrichmentBatchUpdateOne {
	if v != nil {
		_u.SetTotalCount(*v)
	}
	return _u
}

// AddTotalCount adds value to the "total_count" field.
func (_u *EnrichmentBatchUpdateOne) AddTotalCount(v int) *EnrichmentBatchUpdateOne {
	_u.mutation.AddTotalCount(v)
	return _u
}

// SetProcessedCount sets the "processed_count" field.
func (_u *EnrichmentBatchUpdateOne) SetProcessedCount(v int) *EnrichmentBatchUpdateOne {
	_u.mutation.ResetProcessedCount()
	_u.mutation.SetProcessedCount(v)
	return _u
}

// SetNillableProcessedCount sets the "processed_count" field if the given value is not nil.
func (_u *EnrichmentBatchUpdateOne) SetNillableProcessedCount(v *int) *EnrichmentBatchUpdateOne {
	if v != nil {
		_u.SetProcessedCount(*v)
	}
	return _u
}

// AddProcessedCount adds value to the "processed_count" field.
func (_u *EnrichmentBatchUpdateOne) AddProcessedCount(v int) *EnrichmentBatchUpdateOne {
	_u.mutation.AddProcessedCount(v)
	return _u
}

// SetSucceededCount sets the "succeeded_count" field.
func (_u *EnrichmentBatchUpdateOne) SetSucceededCount(v int) *EnrichmentBatchUpdateOne {
	_u.mutation.ResetSucceededCount()
	_u.mutation.SetSucceededCount(v)
	return _u
}

// SetNillableSucceededCount sets the "succeeded_count" field if the given value is not nil.
func (_u *EnrichmentBatchUpdateOne) SetNillableSucceededCount(v *int) *EnrichmentBatchUpdateOne {
	if v != nil {
		_u.SetSucceededCount(*v)
	}
	return _u
}

// AddSucceededCount adds value to the "succeeded_count" field.
func (_u *EnrichmentBatchUpdateOne) AddSucceededCount(v int) *EnrichmentBatchUpdateOne {
	_u.mutation.AddSucceededCount(v)
	return _u
}

// SetFailedCount sets the "failed_count" field.
func (_u *EnrichmentBatchUpdateOne) SetFailedCount(v int) *EnrichmentBatchUpdateOne {
	_u.mutation.ResetFailedCount()
	_u.mutation.SetFailedCount(v)
	return _u
}

// SetNillableFailedCount sets the "failed_count" field if the given value is not nil.
func (_u *EnrichmentBatchUpdateOne) SetNillableFailedCount(v *int) *EnrichmentBatchUpdateOne {
	if v != nil {
		_u.SetFailedCount(*v)
	}
	return _u
}

// AddFailedCount adds value to the "failed_count" field.
func (_u *EnrichmentBatchUpdateOne) AddFailedCount(v int) *EnrichmentBatchUpdateOne {
	_u.mutation.AddFailedCount(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *EnrichmentBatchUpdateOne) SetStatus(v enrichmentbatch.Status) *EnrichmentBatchUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EnrichmentBatchUpdateOne) SetNillableStatus(v *enrichmentbatch.Status) *EnrichmentBatchUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorDetail sets the "error_detail" field.
func (_u *EnrichmentBatchUpdateOne) SetErrorDetail(v string) *EnrichmentBatchUpdateOne {
	_u.mutation.SetErrorDetail(v)
	return _u
}

// SetNillableErrorDetail sets the "error_detail" field if the given value is not nil.
func (_u *EnrichmentBatchUpdateOne) SetNillableErrorDetail(v *string) *EnrichmentBatchUpdateOne {
	if v != nil {
		_u.SetErrorDetail(*v)
	}
	return _u
}

// ClearErrorDetail clears the value of the "error_detail" field.
func (_u *EnrichmentBatchUpdateOne) ClearErrorDetail() *EnrichmentBatchUpdateOne {
	_u.mutation.ClearErrorDetail()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *EnrichmentBatchUpdateOne) SetStartedAt(v time.Time) *EnrichmentBatchUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *EnrichmentBatchUpdateOne) SetNillableStartedAt(v *time.Time) *EnrichmentBatchUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *EnrichmentBatchUpdateOne) ClearStartedAt() *EnrichmentBatchUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EnrichmentBatchUpdateOne) SetUpdatedAt(v time.Time) *EnrichmentBatchUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddContactIDs adds the "contacts" edge to the Contact entity by IDs.
func (_u *EnrichmentBatchUpdateOne) AddContactIDs(ids ...int) *EnrichmentBatchUpdateOne {
	_u.mutation.AddContactIDs(ids...)
	return _u
}

// AddContacts adds the "contacts" edges to the Contact entity.
func (_u *EnrichmentBatchUpdateOne) AddContacts(v ...*Contact) *EnrichmentBatchUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddContactIDs(ids...)
}

// SetCampaignID sets the "campaign" edge to the Campaign entity by ID.
func (_u *EnrichmentBatchUpdateOne) SetCampaignID(id int) *EnrichmentBatchUpdateOne {
	_u.mutation.SetCampaignID(id)
	return _u
}

// SetNillableCampaignID sets the "campaign" edge to the Campaign entity by ID if the given value is not nil.
func (_u *EnrichmentBatchUpdateOne) SetNillableCampaignID(id *int) *EnrichmentBatchUpdateOne {
	if id != nil {
		_u = _u.SetCampaignID(*id)
	}
	return _u
}

// SetCampaign sets the "campaign" edge to the Campaign entity.
func (_u *EnrichmentBatchUpdateOne) SetCampaign(v *Campaign) *EnrichmentBatchUpdateOne {
	return _u.SetCampaignID(v.ID)
}

// Mutation returns the EnrichmentBatchMutation object of the builder.
func (_u *EnrichmentBatchUpdateOne) Mutation() *EnrichmentBatchMutation {
	return _u.mutation
}

// ClearContacts clears all "contacts" edges to the Contact entity.
func (_u *EnrichmentBatchUpdateOne) ClearContacts() *EnrichmentBatchUpdateOne {
	_u.mutation.ClearContacts()
	return _u
}

// RemoveContactIDs removes the "contacts" edge to Contact entities by IDs.
func (_u *EnrichmentBatchUpdateOne) RemoveContactIDs(ids ...int) *EnrichmentBatchUpdateOne {
	_u.mutation.RemoveContactIDs(ids...)
	return _u
}

// RemoveContacts removes "contacts" edges to Contact entities.
func (_u *EnrichmentBatchUpdateOne) RemoveContacts(v ...*Contact) *EnrichmentBatchUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveContactIDs(ids...)
}

// ClearCampaign clears the "campaign" edge to the Campaign entity.
func (_u *EnrichmentBatchUpdateOne) ClearCampaign() *EnrichmentBatchUpdateOne {
	_u.mutation.ClearCampaign()
	return _u
}

// Where appends a list predicates to the EnrichmentBatchUpdate builder.
func (_u *EnrichmentBatchUpdateOne) Where(ps ...predicate.EnrichmentBatch) *EnrichmentBatchUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EnrichmentBatchUpdateOne) Select(field string, fields ...string) *EnrichmentBatchUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EnrichmentBatch entity.
func (_u *EnrichmentBatchUpdateOne) Save(ctx context.Context) (*EnrichmentBatch, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EnrichmentBatchUpdateOne) SaveX(ctx context.Context) *EnrichmentBatch {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EnrichmentBatchUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EnrichmentBatchUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EnrichmentBatchUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := enrichmentbatch.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EnrichmentBatchUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := enrichmentbatch.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "EnrichmentBatch.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalCount(); ok {
		if err := enrichmentbatch.TotalCountValidator(v); err != nil {
			return &ValidationError{Name: "total_count", err: fmt.Errorf(`ent: validator failed for field "EnrichmentBatch.total_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProcessedCount(); ok {
		if err := enrichmentbatch.ProcessedCountValidator(v); err != nil {
			return &ValidationError{Name: "processed_count", err: fmt.Errorf(`ent: validator failed for field "EnrichmentBatch.processed_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SucceededCount(); ok {
		if err := enrichmentbatch.SucceededCountValidator(v); err != nil {
			return &ValidationError{Name: "succeeded_count", err: fmt.Errorf(`ent: validator failed for field "EnrichmentBatch.succeeded_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FailedCount(); ok {
		if err := enrichmentbatch.FailedCountValidator(v); err != nil {
			return &ValidationError{Name: "failed_count", err: fmt.Errorf(`ent: validator failed for field "EnrichmentBatch.failed_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := enrichmentbatch.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "EnrichmentBatch.status": %w`, err)}
		}
	}
	return nil
}

func (_u *EnrichmentBatchUpdateOne) sqlSave(ctx context.Context) (_node *EnrichmentBatch, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(enrichmentbatch.Table, enrichmentbatch.Columns, sqlgraph.NewFieldSpec(enrichmentbatch.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EnrichmentBatch.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, enrichmentbatch.FieldID)
		for _, f := range fields {
			if !enrichmentbatch.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != enrichmentbatch.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(enrichmentbatch.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.OwnerEmail(); ok {
		_spec.SetField(enrichmentbatch.FieldOwnerEmail, field.TypeString, value)
	}
	if _u.mutation.OwnerEmailCleared() {
		_spec.ClearField(enrichmentbatch.FieldOwnerEmail, field.TypeString)
	}
	if value, ok := _u.mutation.TotalCount(); ok {
		_spec.SetField(enrichmentbatch.FieldTotalCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalCount(); ok {
		_spec.AddField(enrichmentbatch.FieldTotalCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProcessedCount(); ok {
		_spec.SetField(enrichmentbatch.FieldProcessedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProcessedCount(); ok {
		_spec.AddField(enrichmentbatch.FieldProcessedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SucceededCount(); ok {
		_spec.SetField(enrichmentbatch.FieldSucceededCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSucceededCount(); ok {
		_spec.AddField(enrichmentbatch.FieldSucceededCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedCount(); ok {
		_spec.SetField(enrichmentbatch.FieldFailedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedCount(); ok {
		_spec.AddField(enrichmentbatch.FieldFailedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(enrichmentbatch.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorDetail(); ok {
		_spec.SetField(enrichmentbatch.FieldErrorDetail, field.TypeString, value)
	}
	if _u.mutation.ErrorDetailCleared() {
		_spec.ClearField(enrichmentbatch.FieldErrorDetail, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(enrichmentbatch.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(enrichmentbatch.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(enrichmentbatch.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ContactsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   enrichmentbatch.ContactsTable,
			Columns: []string{enrichmentbatch.ContactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contact.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedContactsIDs(); len(nodes) > 0 && !_u.mutation.ContactsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   enrichmentbatch.ContactsTable,
			Columns: []string{enrichmentbatch.ContactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contact.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContactsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   enrichmentbatch.ContactsTable,
			Columns: []string{enrichmentbatch.ContactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contact.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CampaignCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   enrichmentbatch.CampaignTable,
			Columns: []string{enrichmentbatch.CampaignColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CampaignIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   enrichmentbatch.CampaignTable,
			Columns: []string{enrichmentbatch.CampaignColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &EnrichmentBatch{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{enrichmentbatch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
