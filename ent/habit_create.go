// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Stoick643/elara/ent/habit"
	"github.com/Stoick643/elara/ent/habitstreak"
	"github.com/Stoick643/elara/ent/user"
)

// HabitCreate is the builder for creating a Habit entity.
type HabitCreate struct {
	config
	mutation *HabitMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *HabitCreate) SetCreatedAt(v time.Time) *HabitCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *HabitCreate) SetNillableCreatedAt(v *time.Time) *HabitCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *HabitCreate) SetUpdatedAt(v time.Time) *HabitCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *HabitCreate) SetNillableUpdatedAt(v *time.Time) *HabitCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *HabitCreate) SetUserID(v string) *HabitCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *HabitCreate) SetName(v string) *HabitCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetCue sets the "cue" field.
func (_c *HabitCreate) SetCue(v string) *HabitCreate {
	_c.mutation.SetCue(v)
	return _c
}

// SetNillableCue sets the "cue" field if the given value is not nil.
func (_c *HabitCreate) SetNillableCue(v *string) *HabitCreate {
	if v != nil {
		_c.SetCue(*v)
	}
	return _c
}

// SetRoutine sets the "routine" field.
func (_c *HabitCreate) SetRoutine(v string) *HabitCreate {
	_c.mutation.SetRoutine(v)
	return _c
}

// SetNillableRoutine sets the "routine" field if the given value is not nil.
func (_c *HabitCreate) SetNillableRoutine(v *string) *HabitCreate {
	if v != nil {
		_c.SetRoutine(*v)
	}
	return _c
}

// SetReward sets the "reward" field.
func (_c *HabitCreate) SetReward(v string) *HabitCreate {
	_c.mutation.SetReward(v)
	return _c
}

// SetNillableReward sets the "reward" field if the given value is not nil.
func (_c *HabitCreate) SetNillableReward(v *string) *HabitCreate {
	if v != nil {
		_c.SetReward(*v)
	}
	return _c
}

// SetActive sets the "active" field.
func (_c *HabitCreate) SetActive(v bool) *HabitCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *HabitCreate) SetNillableActive(v *bool) *HabitCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *HabitCreate) SetID(v string) *HabitCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *HabitCreate) SetUser(v *User) *HabitCreate {
	return _c.SetUserID(v.ID)
}

// SetStreakID sets the "streak" edge to the HabitStreak entity by ID.
func (_c *HabitCreate) SetStreakID(id string) *HabitCreate {
	_c.mutation.SetStreakID(id)
	return _c
}

// SetNillableStreakID sets the "streak" edge to the HabitStreak entity by ID if the given value is not nil.
func (_c *HabitCreate) SetNillableStreakID(id *string) *HabitCreate {
	if id != nil {
		_c = _c.SetStreakID(*id)
	}
	return _c
}

// SetStreak sets the "streak" edge to the HabitStreak entity.
func (_c *HabitCreate) SetStreak(v *HabitStreak) *HabitCreate {
	return _c.SetStreakID(v.ID)
}

// Mutation returns the HabitMutation object of the builder.
func (_c *HabitCreate) Mutation() *HabitMutation {
	return _c.mutation
}

// Save creates the Habit in the database.
func (_c *HabitCreate) Save(ctx context.Context) (*Habit, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HabitCreate) SaveX(ctx context.Context) *Habit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HabitCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HabitCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HabitCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := habit.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := habit.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Cue(); !ok {
		v := habit.DefaultCue
		_c.mutation.SetCue(v)
	}
	if _, ok := _c.mutation.Routine(); !ok {
		v := habit.DefaultRoutine
		_c.mutation.SetRoutine(v)
	}
	if _, ok := _c.mutation.Reward(); !ok {
		v := habit.DefaultReward
		_c.mutation.SetReward(v)
	}
	if _, ok := _c.mutation.Active(); !ok {
		v := habit.DefaultActive
		_c.mutation.SetActive(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HabitCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Habit.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Habit.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Habit.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := habit.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Habit.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Habit.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := habit.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Habit.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Cue(); !ok {
		return &ValidationError{Name: "cue", err: errors.New(`ent: missing required field "Habit.cue"`)}
	}
	if _, ok := _c.mutation.Routine(); !ok {
		return &ValidationError{Name: "routine", err: errors.New(`ent: missing required field "Habit.routine"`)}
	}
	if _, ok := _c.mutation.Reward(); !ok {
		return &ValidationError{Name: "reward", err: errors.New(`ent: missing required field "Habit.reward"`)}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "Habit.active"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "Habit.user"`)}
	}
	return nil
}

func (_c *HabitCreate) sqlSave(ctx context.Context) (*Habit, error) {
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
			return nil, fmt.Errorf("unexpected Habit.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *HabitCreate) createSpec() (*Habit, *sqlgraph.CreateSpec) {
	var (
		_node = &Habit{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(habit.Table, sqlgraph.NewFieldSpec(habit.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(habit.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(habit.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(habit.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Cue(); ok {
		_spec.SetField(habit.FieldCue, field.TypeString, value)
		_node.Cue = value
	}
	if value, ok := _c.mutation.Routine(); ok {
		_spec.SetField(habit.FieldRoutine, field.TypeString, value)
		_node.Routine = value
	}
	if value, ok := _c.mutation.Reward(); ok {
		_spec.SetField(habit.FieldReward, field.TypeString, value)
		_node.Reward = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(habit.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   habit.UserTable,
			Columns: []string{habit.UserColumn},
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
	if nodes := _c.mutation.StreakIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   habit.StreakTable,
			Columns: []string{habit.StreakColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(habitstreak.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// HabitCreateBulk is the builder for creating many Habit entities in bulk.
type HabitCreateBulk struct {
	config
	err      error
	builders []*HabitCreate
}

// Save creates the Habit entities in the database.
func (_c *HabitCreateBulk) Save(ctx context.Context) ([]*Habit, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Habit, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HabitMutation)
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
func (_c *HabitCreateBulk) SaveX(ctx context.Context) []*Habit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HabitCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HabitCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
