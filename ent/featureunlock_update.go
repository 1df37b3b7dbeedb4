// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Stoick643/elara/ent/featureunlock"
	"github.com/Stoick643/elara/ent/predicate"
)

// FeatureUnlockUpdate is the builder for updating FeatureUnlock entities.
type FeatureUnlockUpdate struct {
	config
	hooks    []Hook
	mutation *FeatureUnlockMutation
}

// Where appends a list predicates to the FeatureUnlockUpdate builder.
func (_u *FeatureUnlockUpdate) Where(ps ...predicate.FeatureUnlock) *FeatureUnlockUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUnlocked sets the "unlocked" field.
func (_u *FeatureUnlockUpdate) SetUnlocked(v bool) *FeatureUnlockUpdate {
	_u.mutation.SetUnlocked(v)
	return _u
}

// SetNillableUnlocked sets the "unlocked" field if the given value is not nil.
func (_u *FeatureUnlockUpdate) SetNillableUnlocked(v *bool) *FeatureUnlockUpdate {
	if v != nil {
		_u.SetUnlocked(*v)
	}
	return _u
}

// Mutation returns the FeatureUnlockMutation object of the builder.
func (_u *FeatureUnlockUpdate) Mutation() *FeatureUnlockMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FeatureUnlockUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FeatureUnlockUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FeatureUnlockUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FeatureUnlockUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FeatureUnlockUpdate) check() error {
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FeatureUnlock.user"`)
	}
	return nil
}

func (_u *FeatureUnlockUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(featureunlock.Table, featureunlock.Columns, sqlgraph.NewFieldSpec(featureunlock.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Unlocked(); ok {
		_spec.SetField(featureunlock.FieldUnlocked, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{featureunlock.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FeatureUnlockUpdateOne is the builder for updating a single FeatureUnlock entity.
type FeatureUnlockUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FeatureUnlockMutation
}

// SetUnlocked sets the "unlocked" field.
func (_u *FeatureUnlockUpdateOne) SetUnlocked(v bool) *FeatureUnlockUpdateOne {
	_u.mutation.SetUnlocked(v)
	return _u
}

// SetNillableUnlocked sets the "unlocked" field if the given value is not nil.
func (_u *FeatureUnlockUpdateOne) SetNillableUnlocked(v *bool) *FeatureUnlockUpdateOne {
	if v != nil {
		_u.SetUnlocked(*v)
	}
	return _u
}

// Mutation returns the FeatureUnlockMutation object of the builder.
func (_u *FeatureUnlockUpdateOne) Mutation() *FeatureUnlockMutation {
	return _u.mutation
}

// Where appends a list predicates to the FeatureUnlockUpdate builder.
func (_u *FeatureUnlockUpdateOne) Where(ps ...predicate.FeatureUnlock) *FeatureUnlockUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FeatureUnlockUpdateOne) Select(field string, fields ...string) *FeatureUnlockUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FeatureUnlock entity.
func (_u *FeatureUnlockUpdateOne) Save(ctx context.Context) (*FeatureUnlock, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FeatureUnlockUpdateOne) SaveX(ctx context.Context) *FeatureUnlock {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FeatureUnlockUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FeatureUnlockUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FeatureUnlockUpdateOne) check() error {
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FeatureUnlock.user"`)
	}
	return nil
}

func (_u *FeatureUnlockUpdateOne) sqlSave(ctx context.Context) (_node *FeatureUnlock, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(featureunlock.Table, featureunlock.Columns, sqlgraph.NewFieldSpec(featureunlock.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FeatureUnlock.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, featureunlock.FieldID)
		for _, f := range fields {
			if !featureunlock.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != featureunlock.FieldID {
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
	if value, ok := _u.mutation.Unlocked(); ok {
		_spec.SetField(featureunlock.FieldUnlocked, field.TypeBool, value)
	}
	_node = &FeatureUnlock{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{featureunlock.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
