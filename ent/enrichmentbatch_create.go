// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/promarkhq/marketingdb/ent/campaign"
	"github.com/promarkhq/marketingdb/ent/contact"
	"github.com/promarkhq/marketingdb/ent/enrichmentbatch"
)

// EnrichmentBatchCreate is the builder for creating a EnrichmentBatch entity.
type EnrichmentBatchCreate struct {
	config
	mutation *EnrichmentBatchMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *EnrichmentBatchCreate) SetName(v string) *EnrichmentBatchCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetOwnerEmail sets the "owner_email" field.
func (_c *EnrichmentBatchCreate) SetOwnerEmail(v string) *EnrichmentBatchCreate {
	_c.mutation.SetOwnerEmail(v)
	return _c
}

// SetNillableOwnerEmail sets the "owner_email" field if the given value is not nil.
func (_c *EnrichmentBatchCreate) SetNillableOwnerEmail(v *string) *EnrichmentBatchCreate {
	if v != nil {
		_c.SetOwnerEmail(*v)
	}
	return _c
}

// SetTotalCount sets the "total_count" field.
func (_c *EnrichmentBatchCreate) SetTotalCount(v int) *EnrichmentBatchCreate {
	_c.mutation.SetTotalCount(v)
	return _c
}

// SetNillableTotalCount sets the "total_count" field if the given value is not nil.
func (_c *EnrichmentBatchCreate) SetNillableTotalCount(v *int) *EnrichmentBatchCreate {
	if v != nil {
		_c.SetTotalCount(*v)
	}
	return _c
}

// SetProcessedCount sets the "processed_count" field.
func (_c *EnrichmentBatchCreate) SetProcessedCount(v int) *EnrichmentBatchCreate {
	_c.mutation.SetProcessedCount(v)
	return _c
}

// SetNillableProcessedCount sets the "processed_count" field if the given value is not nil.
func (_c *EnrichmentBatchCreate) SetNillableProcessedCount(v *int) *EnrichmentBatchCreate {
	if v != nil {
		_c.SetProcessedCount(*v)
	}
	return _c
}

// SetSucceededCount sets the "succeeded_count" field.
func (_c *EnrichmentBatchCreate) SetSucceededCount(v int) *EnrichmentBatchCreate {
	_c.mutation.SetSucceededCount(v)
	return _c
}

// SetNillableSucceededCount sets the "succeeded_count" field if the given value is not nil.
func (_c *EnrichmentBatchCreate) SetNillableSucceededCount(v *int) *EnrichmentBatchCreate {
	if v != nil {
		_c.SetSucceededCount(*v)
	}
	return _c
}

// SetFailedCount sets the "failed_count" field.
func (_c *EnrichmentBatchCreate) SetFailedCount(v int) *EnrichmentBatchCreate {
	_c.mutation.SetFailedCount(v)
	return _c
}

// SetNillableFailedCount sets the "failed_count" field if the given value is not nil.
func (_c *EnrichmentBatchCreate) SetNillableFailedCount(v *int) *EnrichmentBatchCreate {
	if v != nil {
		_c.SetFailedCount(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *EnrichmentBatchCreate) SetStatus(v enrichmentbatch.Status) *EnrichmentBatchCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *EnrichmentBatchCreate) SetNillableStatus(v *enrichmentbatch.Status) *EnrichmentBatchCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorDetail sets the "error_detail" field.
func (_c *EnrichmentBatchCreate) SetErrorDetail(v string) *EnrichmentBatchCreate {
	_c.mutation.SetErrorDetail(v)
	return _c
}

// SetNillableErrorDetail sets the "error_detail" field if the given value is not nil.
func (_c *EnrichmentBatchCreate) SetNillableErrorDetail(v *string) *EnrichmentBatchCreate {
	if v != nil {
		_c.SetErrorDetail(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *EnrichmentBatchCreate) SetStartedAt(v time.Time) *EnrichmentBatchCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *EnrichmentBatchCreate) SetNillableStartedAt(v *time.Time) *EnrichmentBatchCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EnrichmentBatchCreate) SetCreatedAt(v time.Time) *EnrichmentBatchCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EnrichmentBatchCreate) SetNillableCreatedAt(v *time.Time) *EnrichmentBatchCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EnrichmentBatchCreate) SetUpdatedAt(v time.Time) *EnrichmentBatchCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EnrichmentBatchCreate) SetNillableUpdatedAt(v *time.Time) *EnrichmentBatchCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// AddContactIDs adds the "contacts" edge to the Contact entity by IDs.
func (_c *EnrichmentBatchCreate) AddContactIDs(ids ...int) *EnrichmentBatchCreate {
	_c.mutation.AddContactIDs(ids...)
	return _c
}

// AddContacts adds the "contacts" edges to the Contact entity.
func (_c *EnrichmentBatchCreate) AddContacts(v ...*Contact) *EnrichmentBatchCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddContactIDs(ids...)
}

// SetCampaignID sets the "campaign" edge to the Campaign entity by ID.
func (_c *EnrichmentBatchCreate) SetCampaignID(id int) *EnrichmentBatchCreate {
	_c.mutation.SetCampaignID(id)
	return _c
}

// SetNillableCampaignID sets the "campaign" edge to the Campaign entity by ID if the given value is not nil.
func (_c *EnrichmentBatchCreate) SetNillableCampaignID(id *int) *EnrichmentBatchCreate {
	if id != nil {
		_c = _c.SetCampaignID(*id)
	}
	return _c
}

// SetCampaign sets the "campaign" edge to the Campaign entity.
func (_c *EnrichmentBatchCreate) SetCampaign(v *Campaign) *EnrichmentBatchCreate {
	return _c.SetCampaignID(v.ID)
}

// Mutation returns the EnrichmentBatchMutation object of the builder.
func (_c *EnrichmentBatchCreate) Mutation() *EnrichmentBatchMutation {
	return _c.mutation
}

// Save creates the EnrichmentBatch in the database.
func (_c *EnrichmentBatchCreate) Save(ctx context.Context) (*EnrichmentBatch, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EnrichmentBatchCreate) SaveX(ctx context.Context) *EnrichmentBatch {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EnrichmentBatchCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EnrichmentBatchCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EnrichmentBatchCreate) defaults() {
	if _, ok := _c.mutation.TotalCount(); !ok {
		v := enrichmentbatch.DefaultTotalCount
		_c.mutation.SetTotalCount(v)
	}
	if _, ok := _c.mutation.ProcessedCount(); !ok {
		v := enrichmentbatch.DefaultProcessedCount
		_c.mutation.SetProcessedCount(v)
	}
	if _, ok := _c.mutation.SucceededCount(); !ok {
		v := enrichmentbatch.DefaultSucceededCount
		_c.mutation.SetSucceededCount(v)
	}
	if _, ok := _c.mutation.FailedCount(); !ok {
		v := enrichmentbatch.DefaultFailedCount
		_c.mutation.SetFailedCount(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := enrichmentbatch.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := enrichmentbatch.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := enrichmentbatch.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EnrichmentBatchCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "EnrichmentBatch.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := enrichmentbatch.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "EnrichmentBatch.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalCount(); !ok {
		return &ValidationError{Name: "total_count", err: errors.New(`ent: missing required field "EnrichmentBatch.total_count"`)}
	}
	if v, ok := _c.mutation.TotalCount(); ok {
		if err := enrichmentbatch.TotalCountValidator(v); err != nil {
			return &ValidationError{Name: "total_count", err: fmt.Errorf(`ent: validator failed for field "EnrichmentBatch.total_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProcessedCount(); !ok {
		return &ValidationError{Name: "processed_count", err: errors.New(`ent: missing required field "EnrichmentBatch.processed_count"`)}
	}
	if v, ok := _c.mutation.ProcessedCount(); ok {
		if err := enrichmentbatch.ProcessedCountValidator(v); err != nil {
			return &ValidationError{Name: "processed_count", err: fmt.Errorf(`ent: validator failed for field "EnrichmentBatch.processed_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SucceededCount(); !ok {
		return &ValidationError{Name: "succeeded_count", err: errors.New(`ent: missing required field "EnrichmentBatch.succeeded_count"`)}
	}
	if v, ok := _c.mutation.SucceededCount(); ok {
		if err := enrichmentbatch.SucceededCountValidator(v); err != nil {
			return &ValidationError{Name: "succeeded_count", err: fmt.Errorf(`ent: validator failed for field "EnrichmentBatch.succeeded_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FailedCount(); !ok {
		return &ValidationError{Name: "failed_count", err: errors.New(`ent: missing required field "EnrichmentBatch.failed_count"`)}
	}
	if v, ok := _c.mutation.FailedCount(); ok {
		if err := enrichmentbatch.FailedCountValidator(v); err != nil {
			return &ValidationError{Name: "failed_count", err: fmt.Errorf(`ent: validator failed for field "EnrichmentBatch.failed_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "EnrichmentBatch.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := enrichmentbatch.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "EnrichmentBatch.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EnrichmentBatch.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "EnrichmentBatch.updated_at"`)}
	}
	return nil
}

func (_c *EnrichmentBatchCreate) sqlSave(ctx context.Context) (*EnrichmentBatch, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EnrichmentBatchCreate) createSpec() (*EnrichmentBatch, *sqlgraph.CreateSpec) {
	var (
		_node = &EnrichmentBatch{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(enrichmentbatch.Table, sqlgraph.NewFieldSpec(enrichmentbatch.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(enrichmentbatch.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.OwnerEmail(); ok {
		_spec.SetField(enrichmentbatch.FieldOwnerEmail, field.TypeString, value)
		_node.OwnerEmail = value
	}
	if value, ok := _c.mutation.TotalCount(); ok {
		_spec.SetField(enrichmentbatch.FieldTotalCount, field.TypeInt, value)
		_node.TotalCount = value
	}
	if value, ok := _c.mutation.ProcessedCount(); ok {
		_spec.SetField(enrichmentbatch.FieldProcessedCount, field.TypeInt, value)
		_node.ProcessedCount = value
	}
	if value, ok := _c.mutation.SucceededCount(); ok {
		_spec.SetField(enrichmentbatch.FieldSucceededCount, field.TypeInt, value)
		_node.SucceededCount = value
	}
	if value, ok := _c.mutation.FailedCount(); ok {
		_spec.SetField(enrichmentbatch.FieldFailedCount, field.TypeInt, value)
		_node.FailedCount = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(enrichmentbatch.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorDetail(); ok {
		_spec.SetField(enrichmentbatch.FieldErrorDetail, field.TypeString, value)
		_node.ErrorDetail = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(enrichmentbatch.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(enrichmentbatch.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(enrichmentbatch.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ContactsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CampaignIDs(); len(nodes) > 0 {
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
		_node.campaign_batches = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// EnrichmentBatchCreateBulk is the builder for creating many EnrichmentBatch entities in bulk.
type EnrichmentBatchCreateBulk struct {
	config
	err      error
	builders []*EnrichmentBatchCreate
}

// Save creates the EnrichmentBatch entities in the database.
func (_c *EnrichmentBatchCreateBulk) Save(ctx context.Context) ([]*EnrichmentBatch, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EnrichmentBatch, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EnrichmentBatchMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *EnrichmentBatchCreateBulk) SaveX(ctx context.Context) []*EnrichmentBatch {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EnrichmentBatchCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EnrichmentBatchCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
