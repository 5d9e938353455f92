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
	"github.com/promarkhq/marketingdb/ent/enrichmentbatch"
	"github.com/promarkhq/marketingdb/ent/predicate"
)

// CampaignUpdate is the builder for updating Campaign entities.
type CampaignUpdate struct {
	config
	hooks    []Hook
	mutation *CampaignMutation
}

// Where appends a list predicates to the CampaignUpdate builder.
func (_u *CampaignUpdate) Where(ps ...predicate.Campaign) *CampaignUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *CampaignUpdate) SetName(v string) *CampaignUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableName(v *string) *CampaignUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetOwnerEmail sets the "owner_email" field.
func (_u *CampaignUpdate) SetOwnerEmail(v string) *CampaignUpdate {
	_u.mutation.SetOwnerEmail(v)
	return _u
}

// SetNillableOwnerEmail sets the "owner_email" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableOwnerEmail(v *string) *CampaignUpdate {
	if v != nil {
		_u.SetOwnerEmail(*v)
	}
	return _u
}

// ClearOwnerEmail clears the value of the "owner_email" field.
func (_u *CampaignUpdate) ClearOwnerEmail() *CampaignUpdate {
	_u.mutation.ClearOwnerEmail()
	return _u
}

// SetObjective sets the "objective" field.
func (_u *CampaignUpdate) SetObjective(v string) *CampaignUpdate {
	_u.mutation.SetObjective(v)
	return _u
}

// SetNillableObjective sets the "objective" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableObjective(v *string) *CampaignUpdate {
	if v != nil {
		_u.SetObjective(*v)
	}
	return _u
}

// ClearObjective clears the value of the "objective" field.
func (_u *CampaignUpdate) ClearObjective() *CampaignUpdate {
	_u.mutation.ClearObjective()
	return _u
}

// SetStatus sets the "status" field.
func (_u *CampaignUpdate) SetStatus(v campaign.Status) *CampaignUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableStatus(v *campaign.Status) *CampaignUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetGeneratedCopy sets the "generated_copy" field.
func (_u *CampaignUpdate) SetGeneratedCopy(v string) *CampaignUpdate {
	_u.mutation.SetGeneratedCopy(v)
	return _u
}

// SetNillableGeneratedCopy sets the "generated_copy" field if the given value is not nil.
func (_u *CampaignUpdate) SetNillableGeneratedCopy(v *string) *CampaignUpdate {
	if v != nil {
		_u.SetGeneratedCopy(*v)
	}
	return _u
}

// ClearGeneratedCopy clears the value of the "generated_copy" field.
func (_u *CampaignUpdate) ClearGeneratedCopy() *CampaignUpdate {
	_u.mutation.ClearGeneratedCopy()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CampaignUpdate) SetUpdatedAt(v time.Time) *CampaignUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddBatchIDs adds the "batches" edge to the EnrichmentBatch entity by IDs.
func (_u *CampaignUpdate) AddBatchIDs(ids ...int) *CampaignUpdate {
	_u.mutation.AddBatchIDs(ids...)
	return _u
}

// AddBatches adds the "batches" edges to the EnrichmentBatch entity.
func (_u *CampaignUpdate) AddBatches(v ...*EnrichmentBatch) *CampaignUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBatchIDs(ids...)
}

// Mutation returns the CampaignMutation object of the builder.
func (_u *CampaignUpdate) Mutation() *CampaignMutation {
	return _u.mutation
}

// ClearBatches clears all "batches" edges to the EnrichmentBatch entity.
func (_u *CampaignUpdate) ClearBatches() *CampaignUpdate {
	_u.mutation.ClearBatches()
	return _u
}

// RemoveBatchIDs removes the "batches" edge to EnrichmentBatch entities by IDs.
func (_u *CampaignUpdate) RemoveBatchIDs(ids ...int) *CampaignUpdate {
	_u.mutation.RemoveBatchIDs(ids...)
	return _u
}

// RemoveBatches removes "batches" edges to EnrichmentBatch entities.
func (_u *CampaignUpdate) RemoveBatches(v ...*EnrichmentBatch) *CampaignUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBatchIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CampaignUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CampaignUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CampaignUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CampaignUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CampaignUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := campaign.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CampaignUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := campaign.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Campaign.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := campaign.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Campaign.status": %w`, err)}
		}
	}
	return nil
}

func (_u *CampaignUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(campaign.Table, campaign.Columns, sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(campaign.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.OwnerEmail(); ok {
		_spec.SetField(campaign.FieldOwnerEmail, field.TypeString, value)
	}
	if _u.mutation.OwnerEmailCleared() {
		_spec.ClearField(campaign.FieldOwnerEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Objective(); ok {
		_spec.SetField(campaign.FieldObjective, field.TypeString, value)
	}
	if _u.mutation.ObjectiveCleared() {
		_spec.ClearField(campaign.FieldObjective, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(campaign.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.GeneratedCopy(); ok {
		_spec.SetField(campaign.FieldGeneratedCopy, field.TypeString, value)
	}
	if _u.mutation.GeneratedCopyCleared() {
		_spec.ClearField(campaign.FieldGeneratedCopy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(campaign.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.BatchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.BatchesTable,
			Columns: []string{campaign.BatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(enrichmentbatch.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBatchesIDs(); len(nodes) > 0 && !_u.mutation.BatchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.BatchesTable,
			Columns: []string{campaign.BatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(enrichmentbatch.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BatchesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.BatchesTable,
			Columns: []string{campaign.BatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(enrichmentbatch.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{campaign.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CampaignUpdateOne is the builder for updating a single Campaign entity.
type CampaignUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CampaignMutation
}

// SetName sets the "name" field.
func (_u *CampaignUpdateOne) SetName(v string) *CampaignUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableName(v *string) *CampaignUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetOwnerEmail sets the "owner_email" field.
func (_u *CampaignUpdateOne) SetOwnerEmail(v string) *CampaignUpdateOne {
	_u.mutation.SetOwnerEmail(v)
	return _u
}

// SetNillableOwnerEmail sets the "owner_email" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableOwnerEmail(v *string) *CampaignUpdateOne {
	if v != nil {
		_u.SetOwnerEmail(*v)
	}
	return _u
}

// ClearOwnerEmail clears the value of the "owner_email" field.
func (_u *CampaignUpdateOne) ClearOwnerEmail() *CampaignUpdateOne {
	_u.mutation.ClearOwnerEmail()
	return _u
}

// SetObjective sets the "objective" field.
func (_u *CampaignUpdateOne) SetObjective(v string) *CampaignUpdateOne {
	_u.mutation.SetObjective(v)
	return _u
}

// SetNillableObjective sets the "objective" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableObjective(v *string) *CampaignUpdateOne {
	if v != nil {
		_u.SetObjective(*v)
	}
	return _u
}

// ClearObjective clears the value of the "objective" field.
func (_u *CampaignUpdateOne) ClearObjective() *CampaignUpdateOne {
	_u.mutation.ClearObjective()
	return _u
}

// SetStatus sets the "status" field.
func (_u *CampaignUpdateOne) SetStatus(v campaign.Status) *CampaignUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableStatus(v *campaign.Status) *CampaignUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetGeneratedCopy sets the "generated_copy" field.
func (_u *CampaignUpdateOne) SetGeneratedCopy(v string) *CampaignUpdateOne {
	_u.mutation.SetGeneratedCopy(v)
	return _u
}

// SetNillableGeneratedCopy sets the "generated_copy" field if the given value is not nil.
func (_u *CampaignUpdateOne) SetNillableGeneratedCopy(v *string) *CampaignUpdateOne {
	if v != nil {
		_u.SetGeneratedCopy(*v)
	}
	return _u
}

// ClearGeneratedCopy clears the value of the "generated_copy" field.
func (_u *CampaignUpdateOne) ClearGeneratedCopy() *CampaignUpdateOne {
	_u.mutation.ClearGeneratedCopy()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CampaignUpdateOne) SetUpdatedAt(v time.Time) *CampaignUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddBatchIDs adds the "batches" edge to the EnrichmentBatch entity by IDs.
func (_u *CampaignUpdateOne) AddBatchIDs(ids ...int) *CampaignUpdateOne {
	_u.mutation.AddBatchIDs(ids...)
	return _u
}

// AddBatches adds the "batches" edges to the EnrichmentBatch entity.
func (_u *CampaignUpdateOne) AddBatches(v ...*EnrichmentBatch) *CampaignUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBatchIDs(ids...)
}

// Mutation returns the CampaignMutation object of the builder.
func (_u *CampaignUpdateOne) Mutation() *CampaignMutation {
	return _u.mutation
}

// ClearBatches clears all "batches" edges to the EnrichmentBatch entity.
func (_u *CampaignUpdateOne) ClearBatches() *CampaignUpdateOne {
	_u.mutation.ClearBatches()
	return _u
}

// RemoveBatchIDs removes the "batches" edge to EnrichmentBatch entities by IDs.
func (_u *CampaignUpdateOne) RemoveBatchIDs(ids ...int) *CampaignUpdateOne {
	_u.mutation.RemoveBatchIDs(ids...)
	return _u
}

// RemoveBatches removes "batches" edges to EnrichmentBatch entities.
func (_u *CampaignUpdateOne) RemoveBatches(v ...*EnrichmentBatch) *CampaignUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBatchIDs(ids...)
}

// Where appends a list predicates to the CampaignUpdate builder.
func (_u *CampaignUpdateOne) Where(ps ...predicate.Campaign) *CampaignUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CampaignUpdateOne) Select(field string, fields ...string) *CampaignUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Campaign entity.
func (_u *CampaignUpdateOne) Save(ctx context.Context) (*Campaign, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CampaignUpdateOne) SaveX(ctx context.Context) *Campaign {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CampaignUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CampaignUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CampaignUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := campaign.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CampaignUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := campaign.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Campaign.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := campaign.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Campaign.status": %w`, err)}
		}
	}
	return nil
}

func (_u *CampaignUpdateOne) sqlSave(ctx context.Context) (_node *Campaign, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(campaign.Table, campaign.Columns, sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Campaign.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, campaign.FieldID)
		for _, f := range fields {
			if !campaign.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != campaign.FieldID {
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
		_spec.SetField(campaign.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.OwnerEmail(); ok {
		_spec.SetField(campaign.FieldOwnerEmail, field.TypeString, value)
	}
	if _u.mutation.OwnerEmailCleared() {
		_spec.ClearField(campaign.FieldOwnerEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Objective(); ok {
		_spec.SetField(campaign.FieldObjective, field.TypeString, value)
	}
	if _u.mutation.ObjectiveCleared() {
		_spec.ClearField(campaign.FieldObjective, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(campaign.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.GeneratedCopy(); ok {
		_spec.SetField(campaign.FieldGeneratedCopy, field.TypeString, value)
	}
	if _u.mutation.GeneratedCopyCleared() {
		_spec.ClearField(campaign.FieldGeneratedCopy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(campaign.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.BatchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.BatchesTable,
			Columns: []string{campaign.BatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(enrichmentbatch.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBatchesIDs(); len(nodes) > 0 && !_u.mutation.BatchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.BatchesTable,
			Columns: []string{campaign.BatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(enrichmentbatch.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BatchesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.BatchesTable,
			Columns: []string{campaign.BatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(enrichmentbatch.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Campaign{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{campaign.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
