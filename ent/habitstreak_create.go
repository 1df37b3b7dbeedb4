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
)

// HabitStreakCreate is the builder for creating a HabitStreak entity.
type HabitStreakCreate struct {
	config
	mutation *HabitStreakMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *HabitStreakCreate) SetCreatedAt(v time.Time) *HabitStreakCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *HabitStreakCreate) SetNillableCreatedAt(v *time.Time) *HabitStreakCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *HabitStreakCreate) SetUpdatedAt(v time.Time) *HabitStreakCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *HabitStreakCreate) SetNillableUpdatedAt(v *time.Time) *HabitStreakCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetHabitID sets the "habit_id" field.
func (_c *HabitStreakCreate) SetHabitID(v string) *HabitStreakCreate {
	_c.mutation.SetHabitID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *HabitStreakCreate) SetUserID(v string) *HabitStreakCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetCurrentStreak sets the "current_streak" field.
func (_c *HabitStreakCreate) SetCurrentStreak(v int) *HabitStreakCreate {
	_c.mutation.SetCurrentStreak(v)
	return _c
}

// SetNillableCurrentStreak sets the "current_streak" field if the given value is not nil.
func (_c *HabitStreakCreate) SetNillableCurrentStreak(v *int) *HabitStreakCreate {
	if v != nil {
		_c.SetCurrentStreak(*v)
	}
	return _c
}

// SetLongestStreak sets the "longest_streak" field.
func (_c *HabitStreakCreate) SetLongestStreak(v int) *HabitStreakCreate {
	_c.mutation.SetLongestStreak(v)
	return _c
}

// SetNillableLongestStreak sets the "longest_streak" field if the given value is not nil.
func (_c *HabitStreakCreate) SetNillableLongestStreak(v *int) *HabitStreakCreate {
	if v != nil {
		_c.SetLongestStreak(*v)
	}
	return _c
}

// SetLastCompletedDate sets the "last_completed_date" field.
func (_c *HabitStreakCreate) SetLastCompletedDate(v string) *HabitStreakCreate {
	_c.mutation.SetLastCompletedDate(v)
	return _c
}

// SetNillableLastCompletedDate sets the "last_completed_date" field if the given value is not nil.
func (_c *HabitStreakCreate) SetNillableLastCompletedDate(v *string) *HabitStreakCreate {
	if v != nil {
		_c.SetLastCompletedDate(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *HabitStreakCreate) SetID(v string) *HabitStreakCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetHabit sets the "habit" edge to the Habit entity.
func (_c *HabitStreakCreate) SetHabit(v *Habit) *HabitStreakCreate {
	return _c.SetHabitID(v.ID)
}

// Mutation returns the HabitStreakMutation object of the builder.
func (_c *HabitStreakCreate) Mutation() *HabitStreakMutation {
	return _c.mutation
}

// Save creates the HabitStreak in the database.
func (_c *HabitStreakCreate) Save(ctx context.Context) (*HabitStreak, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HabitStreakCreate) SaveX(ctx context.Context) *HabitStreak {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HabitStreakCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HabitStreakCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HabitStreakCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := habitstreak.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := habitstreak.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.CurrentStreak(); !ok {
		v := habitstreak.DefaultCurrentStreak
		_c.mutation.SetCurrentStreak(v)
	}
	if _, ok := _c.mutation.LongestStreak(); !ok {
		v := habitstreak.DefaultLongestStreak
		_c.mutation.SetLongestStreak(v)
	}
	if _, ok := _c.mutation.LastCompletedDate(); !ok {
		v := habitstreak.DefaultLastCompletedDate
		_c.mutation.SetLastCompletedDate(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HabitStreakCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "HabitStreak.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "HabitStreak.updated_at"`)}
	}
	if _, ok := _c.mutation.HabitID(); !ok {
		return &ValidationError{Name: "habit_id", err: errors.New(`ent: missing required field "HabitStreak.habit_id"`)}
	}
	if v, ok := _c.mutation.HabitID(); ok {
		if err := habitstreak.HabitIDValidator(v); err != nil {
			return &ValidationError{Name: "habit_id", err: fmt.Errorf(`ent: validator failed for field "HabitStreak.habit_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "HabitStreak.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := habitstreak.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "HabitStreak.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CurrentStreak(); !ok {
		return &ValidationError{Name: "current_streak", err: errors.New(`ent: missing required field "HabitStreak.current_streak"`)}
	}
	if v, ok := _c.mutation.CurrentStreak(); ok {
		if err := habitstreak.CurrentStreakValidator(v); err != nil {
			return &ValidationError{Name: "current_streak", err: fmt.Errorf(`ent: validator failed for field "HabitStreak.current_streak": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LongestStreak(); !ok {
		return &ValidationError{Name: "longest_streak", err: errors.New(`ent: missing required field "HabitStreak.longest_streak"`)}
	}
	if v, ok := _c.mutation.LongestStreak(); ok {
		if err := habitstreak.LongestStreakValidator(v); err != nil {
			return &ValidationError{Name: "longest_streak", err: fmt.Errorf(`ent: validator failed for field "HabitStreak.longest_streak": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastCompletedDate(); !ok {
		return &ValidationError{Name: "last_completed_date", err: errors.New(`ent: missing required field "HabitStreak.last_completed_date"`)}
	}
	if len(_c.mutation.HabitIDs()) == 0 {
		return &ValidationError{Name: "habit", err: errors.New(`ent: missing required edge "HabitStreak.habit"`)}
	}
	return nil
}

func (_c *HabitStreakCreate) sqlSave(ctx context.Context) (*HabitStreak, error) {
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
			return nil, fmt.Errorf("unexpected HabitStreak.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *HabitStreakCreate) createSpec() (*HabitStreak, *sqlgraph.CreateSpec) {
	var (
		_node = &HabitStreak{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(habitstreak.Table, sqlgraph.NewFieldSpec(habitstreak.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(habitstreak.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(habitstreak.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(habitstreak.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.CurrentStreak(); ok {
		_spec.SetField(habitstreak.FieldCurrentStreak, field.TypeInt, value)
		_node.CurrentStreak = value
	}
	if value, ok := _c.mutation.LongestStreak(); ok {
		_spec.SetField(habitstreak.FieldLongestStreak, field.TypeInt, value)
		_node.LongestStreak = value
	}
	if value, ok := _c.mutation.LastCompletedDate(); ok {
		_spec.SetField(habitstreak.FieldLastCompletedDate, field.TypeString, value)
		_node.LastCompletedDate = value
	}
	if nodes := _c.mutation.HabitIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   habitstreak.HabitTable,
			Columns: []string{habitstreak.HabitColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(habit.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.HabitID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// HabitStreakCreateBulk is the builder for creating many HabitStreak entities in bulk.
type HabitStreakCreateBulk struct {
	config
	err      error
	builders []*HabitStreakCreate
}

// Save creates the HabitStreak entities in the database.
func (_c *HabitStreakCreateBulk) Save(ctx context.Context) ([]*HabitStreak, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*HabitStreak, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HabitStreakMutation)
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
func (_c *HabitStreakCreateBulk) SaveX(ctx context.Context) []*HabitStreak {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HabitStreakCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HabitStreakCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
