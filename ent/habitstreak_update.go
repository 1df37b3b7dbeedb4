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
	"github.com/Stoick643/elara/ent/habitstreak"
	"github.com/Stoick643/elara/ent/predicate"
)

// HabitStreakUpdate is the builder for updating HabitStreak entities.
type HabitStreakUpdate struct {
	config
	hooks    []Hook
	mutation *HabitStreakMutation
}

// Where appends a list predicates to the HabitStreakUpdate builder.
func (_u *HabitStreakUpdate) Where(ps ...predicate.HabitStreak) *HabitStreakUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *HabitStreakUpdate) SetUpdatedAt(v time.Time) *HabitStreakUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCurrentStreak sets the "current_streak" field.
func (_u *HabitStreakUpdate) SetCurrentStreak(v int) *HabitStreakUpdate {
	_u.mutation.ResetCurrentStreak()
	_u.mutation.SetCurrentStreak(v)
	return _u
}

// SetNillableCurrentStreak sets the "current_streak" field if the given value is not nil.
func (_u *HabitStreakUpdate) SetNillableCurrentStreak(v *int) *HabitStreakUpdate {
	if v != nil {
		_u.SetCurrentStreak(*v)
	}
	return _u
}

// AddCurrentStreak adds value to the "current_streak" field.
func (_u *HabitStreakUpdate) AddCurrentStreak(v int) *HabitStreakUpdate {
	_u.mutation.AddCurrentStreak(v)
	return _u
}

// SetLongestStreak sets the "longest_streak" field.
func (_u *HabitStreakUpdate) SetLongestStreak(v int) *HabitStreakUpdate {
	_u.mutation.ResetLongestStreak()
	_u.mutation.SetLongestStreak(v)
	return _u
}

// SetNillableLongestStreak sets the "longest_streak" field if the given value is not nil.
func (_u *HabitStreakUpdate) SetNillableLongestStreak(v *int) *HabitStreakUpdate {
	if v != nil {
		_u.SetLongestStreak(*v)
	}
	return _u
}

// AddLongestStreak adds value to the "longest_streak" field.
func (_u *HabitStreakUpdate) AddLongestStreak(v int) *HabitStreakUpdate {
	_u.mutation.AddLongestStreak(v)
	return _u
}

// SetLastCompletedDate sets the "last_completed_date" field.
func (_u *HabitStreakUpdate) SetLastCompletedDate(v string) *HabitStreakUpdate {
	_u.mutation.SetLastCompletedDate(v)
	return _u
}

// SetNillableLastCompletedDate sets the "last_completed_date" field if the given value is not nil.
func (_u *HabitStreakUpdate) SetNillableLastCompletedDate(v *string) *HabitStreakUpdate {
	if v != nil {
		_u.SetLastCompletedDate(*v)
	}
	return _u
}

// Mutation returns the HabitStreakMutation object of the builder.
func (_u *HabitStreakUpdate) Mutation() *HabitStreakMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HabitStreakUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HabitStreakUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HabitStreakUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HabitStreakUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *HabitStreakUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := habitstreak.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HabitStreakUpdate) check() error {
	if v, ok := _u.mutation.CurrentStreak(); ok {
		if err := habitstreak.CurrentStreakValidator(v); err != nil {
			return &ValidationError{Name: "current_streak", err: fmt.Errorf(`ent: validator failed for field "HabitStreak.current_streak": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LongestStreak(); ok {
		if err := habitstreak.LongestStreakValidator(v); err != nil {
			return &ValidationError{Name: "longest_streak", err: fmt.Errorf(`ent: validator failed for field "HabitStreak.longest_streak": %w`, err)}
		}
	}
	if _u.mutation.HabitCleared() && len(_u.mutation.HabitIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "HabitStreak.habit"`)
	}
	return nil
}

func (_u *HabitStreakUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(habitstreak.Table, habitstreak.Columns, sqlgraph.NewFieldSpec(habitstreak.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(habitstreak.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CurrentStreak(); ok {
		_spec.SetField(habitstreak.FieldCurrentStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStreak(); ok {
		_spec.AddField(habitstreak.FieldCurrentStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LongestStreak(); ok {
		_spec.SetField(habitstreak.FieldLongestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLongestStreak(); ok {
		_spec.AddField(habitstreak.FieldLongestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastCompletedDate(); ok {
		_spec.SetField(habitstreak.FieldLastCompletedDate, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{habitstreak.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HabitStreakUpdateOne is the builder for updating a single HabitStreak entity.
type HabitStreakUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HabitStreakMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *HabitStreakUpdateOne) SetUpdatedAt(v time.Time) *HabitStreakUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCurrentStreak sets the "current_streak" field.
func (_u *HabitStreakUpdateOne) SetCurrentStreak(v int) *HabitStreakUpdateOne {
	_u.mutation.ResetCurrentStreak()
	_u.mutation.SetCurrentStreak(v)
	return _u
}

// SetNillableCurrentStreak sets the "current_streak" field if the given value is not nil.
func (_u *HabitStreakUpdateOne) SetNillableCurrentStreak(v *int) *HabitStreakUpdateOne {
	if v != nil {
		_u.SetCurrentStreak(*v)
	}
	return _u
}

// AddCurrentStreak adds value to the "current_streak" field.
func (_u *HabitStreakUpdateOne) AddCurrentStreak(v int) *HabitStreakUpdateOne {
	_u.mutation.AddCurrentStreak(v)
	return _u
}

// SetLongestStreak sets the "longest_streak" field.
func (_u *HabitStreakUpdateOne) SetLongestStreak(v int) *HabitStreakUpdateOne {
	_u.mutation.ResetLongestStreak()
	_u.mutation.SetLongestStreak(v)
	return _u
}

// SetNillableLongestStreak sets the "longest_streak" field if the given value is not nil.
func (_u *HabitStreakUpdateOne) SetNillableLongestStreak(v *int) *HabitStreakUpdateOne {
	if v != nil {
		_u.SetLongestStreak(*v)
	}
	return _u
}

// AddLongestStreak adds value to the "longest_streak" field.
func (_u *HabitStreakUpdateOne) AddLongestStreak(v int) *HabitStreakUpdateOne {
	_u.mutation.AddLongestStreak(v)
	return _u
}

// SetLastCompletedDate sets the "last_completed_date" field.
func (_u *HabitStreakUpdateOne) SetLastCompletedDate(v string) *HabitStreakUpdateOne {
	_u.mutation.SetLastCompletedDate(v)
	return _u
}

// SetNillableLastCompletedDate sets the "last_completed_date" field if the given value is not nil.
func (_u *HabitStreakUpdateOne) SetNillableLastCompletedDate(v *string) *HabitStreakUpdateOne {
	if v != nil {
		_u.SetLastCompletedDate(*v)
	}
	return _u
}

// Mutation returns the HabitStreakMutation object of the builder.
func (_u *HabitStreakUpdateOne) Mutation() *HabitStreakMutation {
	return _u.mutation
}

// Where appends a list predicates to the HabitStreakUpdate builder.
func (_u *HabitStreakUpdateOne) Where(ps ...predicate.HabitStreak) *HabitStreakUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HabitStreakUpdateOne) Select(field string, fields ...string) *HabitStreakUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated HabitStreak entity.
func (_u *HabitStreakUpdateOne) Save(ctx context.Context) (*HabitStreak, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HabitStreakUpdateOne) SaveX(ctx context.Context) *HabitStreak {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HabitStreakUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HabitStreakUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *HabitStreakUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := habitstreak.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HabitStreakUpdateOne) check() error {
	if v, ok := _u.mutation.CurrentStreak(); ok {
		if err := habitstreak.CurrentStreakValidator(v); err != nil {
			return &ValidationError{Name: "current_streak", err: fmt.Errorf(`ent: validator failed for field "HabitStreak.current_streak": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LongestStreak(); ok {
		if err := habitstreak.LongestStreakValidator(v); err != nil {
			return &ValidationError{Name: "longest_streak", err: fmt.Errorf(`ent: validator failed for field "HabitStreak.longest_streak": %w`, err)}
		}
	}
	if _u.mutation.HabitCleared() && len(_u.mutation.HabitIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "HabitStreak.habit"`)
	}
	return nil
}

func (_u *HabitStreakUpdateOne) sqlSave(ctx context.Context) (_node *HabitStreak, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(habitstreak.Table, habitstreak.Columns, sqlgraph.NewFieldSpec(habitstreak.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "HabitStreak.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, habitstreak.FieldID)
		for _, f := range fields {
			if !habitstreak.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != habitstreak.FieldID {
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
		_spec.SetField(habitstreak.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CurrentStreak(); ok {
		_spec.SetField(habitstreak.FieldCurrentStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStreak(); ok {
		_spec.AddField(habitstreak.FieldCurrentStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LongestStreak(); ok {
		_spec.SetField(habitstreak.FieldLongestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLongestStreak(); ok {
		_spec.AddField(habitstreak.FieldLongestStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastCompletedDate(); ok {
		_spec.SetField(habitstreak.FieldLastCompletedDate, field.TypeString, value)
	}
	_node = &HabitStreak{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{habitstreak.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
