// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Stoick643/elara/ent/featureunlock"
	"github.com/Stoick643/elara/ent/user"
)

// FeatureUnlockCreate is the builder for creating a FeatureUnlock entity.
type FeatureUnlockCreate struct {
	config
	mutation *FeatureUnlockMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *FeatureUnlockCreate) SetCreatedAt(v time.Time) *FeatureUnlockCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FeatureUnlockCreate) SetNillableCreatedAt(v *time.Time) *FeatureUnlockCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *FeatureUnlockCreate) SetUserID(v string) *FeatureUnlockCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetFeatureID sets the "feature_id" field.
func (_c *FeatureUnlockCreate) SetFeatureID(v string) *FeatureUnlockCreate {
	_c.mutation.SetFeatureID(v)
	return _c
}

// SetUnlocked sets the "unlocked" field.
func (_c *FeatureUnlockCreate) SetUnlocked(v bool) *FeatureUnlockCreate {
	_c.mutation.SetUnlocked(v)
	return _c
}

// SetNillableUnlocked sets the "unlocked" field if the given value is not nil.
func (_c *FeatureUnlockCreate) SetNillableUnlocked(v *bool) *FeatureUnlockCreate {
	if v != nil {
		_c.SetUnlocked(*v)
	}
	return _c
}

// SetUnlockedAt sets the "unlocked_at" field.
func (_c *FeatureUnlockCreate) SetUnlockedAt(v time.Time) *FeatureUnlockCreate {
	_c.mutation.SetUnlockedAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *FeatureUnlockCreate) SetID(v string) *FeatureUnlockCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *FeatureUnlockCreate) SetUser(v *User) *FeatureUnlockCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the FeatureUnlockMutation object of the builder.
func (_c *FeatureUnlockCreate) Mutation() *FeatureUnlockMutation {
	return _c.mutation
}

// Save creates the FeatureUnlock in the database.
func (_c *FeatureUnlockCreate) Save(ctx context.Context) (*FeatureUnlock, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FeatureUnlockCreate) SaveX(ctx context.Context) *FeatureUnlock {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FeatureUnlockCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FeatureUnlockCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FeatureUnlockCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := featureunlock.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.Unlocked(); !ok {
		v := featureunlock.DefaultUnlocked
		_c.mutation.SetUnlocked(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FeatureUnlockCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FeatureUnlock.created_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "FeatureUnlock.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := featureunlock.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "FeatureUnlock.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FeatureID(); !ok {
		return &ValidationError{Name: "feature_id", err: errors.New(`ent: missing required field "FeatureUnlock.feature_id"`)}
	}
	if v, ok := _c.mutation.FeatureID(); ok {
		if err := featureunlock.FeatureIDValidator(v); err != nil {
			return &ValidationError{Name: "feature_id", err: fmt.Errorf(`ent: validator failed for field "FeatureUnlock.feature_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Unlocked(); !ok {
		return &ValidationError{Name: "unlocked", err: errors.New(`ent: missing required field "FeatureUnlock.unlocked"`)}
	}
	if _, ok := _c.mutation.UnlockedAt(); !ok {
		return &ValidationError{Name: "unlocked_at", err: errors.New(`ent: missing required field "FeatureUnlock.unlocked_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "FeatureUnlock.user"`)}
	}
	return nil
}

func (_c *FeatureUnlockCreate) sqlSave(ctx context.Context) (*FeatureUnlock, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected FeatureUnlock.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FeatureUnlockCreate) createSpec() (*FeatureUnlock, *sqlgraph.CreateSpec) {
	var (
		_node = &FeatureUnlock{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(featureunlock.Table, sqlgraph.NewFieldSpec(featureunlock.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(featureunlock.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.FeatureID(); ok {
		_spec.SetField(featureunlock.FieldFeatureID, field.TypeString, value)
		_node.FeatureID = value
	}
	if value, ok := _c.mutation.Unlocked(); ok {
		_spec.SetField(featureunlock.FieldUnlocked, field.TypeBool, value)
		_node.Unlocked = value
	}
	if value, ok := _c.mutation.UnlockedAt(); ok {
		_spec.SetField(featureunlock.FieldUnlockedAt, field.TypeTime, value)
		_node.UnlockedAt = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   featureunlock.UserTable,
			Columns: []string{featureunlock.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FeatureUnlockCreateBulk is the builder for creating many FeatureUnlock entities in bulk.
type FeatureUnlockCreateBulk struct {
	config
	err      error
	builders []*FeatureUnlockCreate
}

// Save creates the FeatureUnlock entities in the database.
func (_c *FeatureUnlockCreateBulk) Save(ctx context.Context) ([]*FeatureUnlock, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FeatureUnlock, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FeatureUnlockMutation)
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
func (_c *FeatureUnlockCreateBulk) SaveX(ctx context.Context) []*FeatureUnlock {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FeatureUnlockCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FeatureUnlockCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
