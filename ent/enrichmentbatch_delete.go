// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/promarkhq/marketingdb/ent/enrichmentbatch"
	"github.com/promarkhq/marketingdb/ent/predicate"
)

// EnrichmentBatchDelete is the builder for deleting a EnrichmentBatch entity.
type EnrichmentBatchDelete struct {
	config
	hooks    []Hook
	mutation *EnrichmentBatchMutation
}

// Where appends a list predicates to the EnrichmentBatchDelete builder.
func (_d *EnrichmentBatchDelete) Where(ps ...predicate.EnrichmentBatch) *EnrichmentBatchDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *EnrichmentBatchDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EnrichmentBatchDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *EnrichmentBatchDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(enrichmentbatch.Table, sqlgraph.NewFieldSpec(enrichmentbatch.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// EnrichmentBatchDeleteOne is the builder for deleting a single EnrichmentBatch entity.
type EnrichmentBatchDeleteOne struct {
	_d *EnrichmentBatchDelete
}

// Where appends a list predicates to the EnrichmentBatchDelete builder.
func (_d *EnrichmentBatchDeleteOne) Where(ps ...predicate.EnrichmentBatch) *EnrichmentBatchDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *EnrichmentBatchDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{enrichmentbatch.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EnrichmentBatchDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
