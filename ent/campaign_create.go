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
	"github.com/promarkhq/marketingdb/ent/enrichmentbatch"
)

// CampaignCreate is the builder for creating a Campaign entity.
type CampaignCreate struct {
	config
	mutation *CampaignMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *CampaignCreate) SetName(v string) *CampaignCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetOwnerEmail sets the "owner_email" field.
func (_c *CampaignCreate) SetOwnerEmail(v string) *CampaignCreate {
	_c.mutation.SetOwnerEmail(v)
	return _c
}

// SetNillableOwnerEmail sets the "owner_email" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableOwnerEmail(v *string) *CampaignCreate {
	if v != nil {
		_c.SetOwnerEmail(*v)
	}
	return _c
}

// SetObjective sets the "objective" field.
func (_c *CampaignCreate) SetObjective(v string) *CampaignCreate {
	_c.mutation.SetObjective(v)
	return _c
}

// SetNillableObjective sets the "objective" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableObjective(v *string) *CampaignCreate {
	if v != nil {
		_c.SetObjective(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *CampaignCreate) SetStatus(v campaign.Status) *CampaignCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableStatus(v *campaign.Status) *CampaignCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetGeneratedCopy sets the "generated_copy" field.
func (_c *CampaignCreate) SetGeneratedCopy(v string) *CampaignCreate {
	_c.mutation.SetGeneratedCopy(v)
	return _c
}

// SetNillableGeneratedCopy sets the "generated_copy" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableGeneratedCopy(v *string) *CampaignCreate {
	if v != nil {
		_c.SetGeneratedCopy(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CampaignCreate) SetCreatedAt(v time.Time) *CampaignCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableCreatedAt(v *time.Time) *CampaignCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CampaignCreate) SetUpdatedAt(v time.Time) *CampaignCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableUpdatedAt(v *time.Time) *CampaignCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// AddBatchIDs adds the "batches" edge to the EnrichmentBatch entity by IDs.
func (_c *CampaignCreate) AddBatchIDs(ids ...int) *CampaignCreate {
	_c.mutation.AddBatchIDs(ids...)
	return _c
}

// AddBatches adds the "batches" edges to the EnrichmentBatch entity.
func (_c *CampaignCreate) AddBatches(v ...*EnrichmentBatch) *CampaignCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddBatchIDs(ids...)
}

// Mutation returns the CampaignMutation object of the builder.
func (_c *CampaignCreate) Mutation() *CampaignMutation {
	return _c.mutation
}

// Save creates the Campaign in the database.
func (_c *CampaignCreate) Save(ctx context.Context) (*Campaign, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CampaignCreate) SaveX(ctx context.Context) *Campaign {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CampaignCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CampaignCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CampaignCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := campaign.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := campaign.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := campaign.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CampaignCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Campaign.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := campaign.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Campaign.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Campaign.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := campaign.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Campaign.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Campaign.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Campaign.updated_at"`)}
	}
	return nil
}

func (_c *CampaignCreate) sqlSave(ctx context.Context) (*Campaign, error) {
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

func (_c *CampaignCreate) createSpec() (*Campaign, *sqlgraph.CreateSpec) {
	var (
		_node = &Campaign{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(campaign.Table, sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(campaign.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.OwnerEmail(); ok {
		_spec.SetField(campaign.FieldOwnerEmail, field.TypeString, value)
		_node.OwnerEmail = value
	}
	if value, ok := _c.mutation.Objective(); ok {
		_spec.SetField(campaign.FieldObjective, field.TypeString, value)
		_node.Objective = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(campaign.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.GeneratedCopy(); ok {
		_spec.SetField(campaign.FieldGeneratedCopy, field.TypeString, value)
		_node.GeneratedCopy = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(campaign.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(campaign.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.BatchesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CampaignCreateBulk is the builder for creating many Campaign entities in bulk.
type CampaignCreateBulk struct {
	config
	err      error
	builders []*CampaignCreate
}

// Save creates the Campaign entities in the database.
func (_c *CampaignCreateBulk) Save(ctx context.Context) ([]*Campaign, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Campaign, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CampaignMutation)
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
func (_c *CampaignCreateBulk) SaveX(ctx context.Context) []*Campaign {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CampaignCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CampaignCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
