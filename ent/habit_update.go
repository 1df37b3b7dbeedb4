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
	"github.com/Stoick643/elara/ent/habit"
	"github.com/Stoick643/elara/ent/habitstreak"
	"github.com/Stoick643/elara/ent/predicate"
)

// HabitUpdate is the builder for updating Habit entities.
type HabitUpdate struct {
	config
	hooks    []Hook
	mutation *HabitMutation
}

// Where appends a list predicates to the HabitUpdate builder.
func (_u *HabitUpdate) Where(ps ...predicate.Habit) *HabitUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *HabitUpdate) SetUpdatedAt(v time.Time) *HabitUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *HabitUpdate) SetName(v string) *HabitUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *HabitUpdate) SetNillableName(v *string) *HabitUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCue sets the "cue" field.
func (_u *HabitUpdate) SetCue(v string) *HabitUpdate {
	_u.mutation.SetCue(v)
	return _u
}

// SetNillableCue sets the "cue" field if the given value is not nil.
func (_u *HabitUpdate) SetNillableCue(v *string) *HabitUpdate {
	if v != nil {
		_u.SetCue(*v)
	}
	return _u
}

// SetRoutine sets the "routine" field.
func (_u *HabitUpdate) SetRoutine(v string) *HabitUpdate {
	_u.mutation.SetRoutine(v)
	return _u
}

// SetNillableRoutine sets the "routine" field if the given value is not nil.
func (_u *HabitUpdate) SetNillableRoutine(v *string) *HabitUpdate {
	if v != nil {
		_u.SetRoutine(*v)
	}
	return _u
}

// SetReward sets the "reward" field.
func (_u *HabitUpdate) SetReward(v string) *HabitUpdate {
	_u.mutation.SetReward(v)
	return _u
}

// SetNillableReward sets the "reward" field if the given value is not nil.
func (_u *HabitUpdate) SetNillableReward(v *string) *HabitUpdate {
	if v != nil {
		_u.SetReward(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *HabitUpdate) SetActive(v bool) *HabitUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *HabitUpdate) SetNillableActive(v *bool) *HabitUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetStreakID sets the "streak" edge to the HabitStreak entity by ID.
func (_u *HabitUpdate) SetStreakID(id string) *HabitUpdate {
	_u.mutation.SetStreakID(id)
	return _u
}

// SetNillableStreakID sets the "streak" edge to the HabitStreak entity by ID if the given value is not nil.
func (_u *HabitUpdate) SetNillableStreakID(id *string) *HabitUpdate {
	if id != nil {
		_u = _u.SetStreakID(*id)
	}
	return _u
}

// SetStreak sets the "streak" edge to the HabitStreak entity.
func (_u *HabitUpdate) SetStreak(v *HabitStreak) *HabitUpdate {
	return _u.SetStreakID(v.ID)
}

// Mutation returns the HabitMutation object of the builder.
func (_u *HabitUpdate) Mutation() *HabitMutation {
	return _u.mutation
}

// ClearStreak clears the "streak" edge to the HabitStreak entity.
func (_u *HabitUpdate) ClearStreak() *HabitUpdate {
	_u.mutation.ClearStreak()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HabitUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HabitUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HabitUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HabitUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *HabitUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := habit.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HabitUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := habit.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Habit.name": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Habit.user"`)
	}
	return nil
}

func (_u *HabitUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(habit.Table, habit.Columns, sqlgraph.NewFieldSpec(habit.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(habit.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(habit.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Cue(); ok {
		_spec.SetField(habit.FieldCue, field.TypeString, value)
	}
	if value, ok := _u.mutation.Routine(); ok {
		_spec.SetField(habit.FieldRoutine, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reward(); ok {
		_spec.SetField(habit.FieldReward, field.TypeString, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(habit.FieldActive, field.TypeBool, value)
	}
	if _u.mutation.StreakCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StreakIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{habit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HabitUpdateOne is the builder for updating a single Habit entity.
type HabitUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HabitMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *HabitUpdateOne) SetUpdatedAt(v time.Time) *HabitUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *HabitUpdateOne) SetName(v string) *HabitUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *HabitUpdateOne) SetNillableName(v *string) *HabitUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCue sets the "cue" field.
func (_u *HabitUpdateOne) SetCue(v string) *HabitUpdateOne {
	_u.mutation.SetCue(v)
	return _u
}

// SetNillableCue sets the "cue" field if the given value is not nil.
func (_u *HabitUpdateOne) SetNillableCue(v *string) *HabitUpdateOne {
	if v != nil {
		_u.SetCue(*v)
	}
	return _u
}

// SetRoutine sets the "routine" field.
func (_u *HabitUpdateOne) SetRoutine(v string) *HabitUpdateOne {
	_u.mutation.SetRoutine(v)
	return _u
}

// SetNillableRoutine sets the "routine" field if the given value is not nil.
func (_u *HabitUpdateOne) SetNillableRoutine(v *string) *HabitUpdateOne {
	if v != nil {
		_u.SetRoutine(*v)
	}
	return _u
}

// SetReward sets the "reward" field.
func (_u *HabitUpdateOne) SetReward(v string) *HabitUpdateOne {
	_u.mutation.SetReward(v)
	return _u
}

// SetNillableReward sets the "reward" field if the given value is not nil.
func (_u *HabitUpdateOne) SetNillableReward(v *string) *HabitUpdateOne {
	if v != nil {
		_u.SetReward(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *HabitUpdateOne) SetActive(v bool) *HabitUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *HabitUpdateOne) SetNillableActive(v *bool) *HabitUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetStreakID sets the "streak" edge to the HabitStreak entity by ID.
func (_u *HabitUpdateOne) SetStreakID(id string) *HabitUpdateOne {
	_u.mutation.SetStreakID(id)
	return _u
}

// SetNillableStreakID sets the "streak" edge to the HabitStreak entity by ID if the given value is not nil.
func (_u *HabitUpdateOne) SetNillableStreakID(id *string) *HabitUpdateOne {
	if id != nil {
		_u = _u.SetStreakID(*id)
	}
	return _u
}

// SetStreak sets the "streak" edge to the HabitStreak entity.
func (_u *HabitUpdateOne) SetStreak(v *HabitStreak) *HabitUpdateOne {
	return _u.SetStreakID(v.ID)
}

// Mutation returns the HabitMutation object of the builder.
func (_u *HabitUpdateOne) Mutation() *HabitMutation {
	return _u.mutation
}

// ClearStreak clears the "streak" edge to the HabitStreak entity.
func (_u *HabitUpdateOne) ClearStreak() *HabitUpdateOne {
	_u.mutation.ClearStreak()
	return _u
}

// Where appends a list predicates to the HabitUpdate builder.
func (_u *HabitUpdateOne) Where(ps ...predicate.Habit) *HabitUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HabitUpdateOne) Select(field string, fields ...string) *HabitUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Habit entity.
func (_u *HabitUpdateOne) Save(ctx context.Context) (*Habit, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HabitUpdateOne) SaveX(ctx context.Context) *Habit {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HabitUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HabitUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *HabitUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := habit.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HabitUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := habit.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Habit.name": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Habit.user"`)
	}
	return nil
}

func (_u *HabitUpdateOne) sqlSave(ctx context.Context) (_node *Habit, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(habit.Table, habit.Columns, sqlgraph.NewFieldSpec(habit.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Habit.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, habit.FieldID)
		for _, f := range fields {
			if !habit.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != habit.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(habit.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(habit.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Cue(); ok {
		_spec.SetField(habit.FieldCue, field.TypeString, value)
	}
	if value, ok := _u.mutation.Routine(); ok {
		_spec.SetField(habit.FieldRoutine, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reward(); ok {
		_spec.SetField(habit.FieldReward, field.TypeString, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(habit.FieldActive, field.TypeBool, value)
	}
	if _u.mutation.StreakCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StreakIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Habit{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{habit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
