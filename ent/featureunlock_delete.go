// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Stoick643/elara/ent/featureunlock"
	"github.com/Stoick643/elara/ent/predicate"
)

// FeatureUnlockDelete is the builder for deleting a FeatureUnlock entity.
type FeatureUnlockDelete struct {
	config
	hooks    []Hook
	mutation *FeatureUnlockMutation
}

// Where appends a list predicates to the FeatureUnlockDelete builder.
func (_d *FeatureUnlockDelete) Where(ps ...predicate.FeatureUnlock) *FeatureUnlockDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *FeatureUnlockDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FeatureUnlockDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *FeatureUnlockDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(featureunlock.Table, sqlgraph.NewFieldSpec(featureunlock.FieldID, field.TypeString))
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

// FeatureUnlockDeleteOne is the builder for deleting a single FeatureUnlock entity.
type FeatureUnlockDeleteOne struct {
	_d *FeatureUnlockDelete
}

// Where appends a list predicates to the FeatureUnlockDelete builder.
func (_d *FeatureUnlockDeleteOne) Where(ps ...predicate.FeatureUnlock) *FeatureUnlockDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *FeatureUnlockDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{featureunlock.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FeatureUnlockDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
