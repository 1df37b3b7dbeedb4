// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Stoick643/elara/ent/habit"
	"github.com/Stoick643/elara/ent/habitstreak"
	"github.com/Stoick643/elara/ent/user"
)

// Habit is the model entity for the Habit schema.
type Habit struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Cue holds the value of the "cue" field.
	Cue string `json:"cue,omitempty"`
	// Routine holds the value of the "routine" field.
	Routine string `json:"routine,omitempty"`
	// Reward holds the value of the "reward" field.
	Reward string `json:"reward,omitempty"`
	// Active holds the value of the "active" field.
	Active bool `json:"active,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the HabitQuery when eager-loading is set.
	Edges        HabitEdges `json:"edges"`
	selectValues sql.SelectValues
}

// HabitEdges holds the relations/edges for other nodes in the graph.
type HabitEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// Streak holds the value of the streak edge.
	Streak *HabitStreak `json:"streak,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e HabitEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// StreakOrErr returns the Streak value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e HabitEdges) StreakOrErr() (*HabitStreak, error) {
	if e.Streak != nil {
		return e.Streak, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: habitstreak.Label}
	}
	return nil, &NotLoadedError{edge: "streak"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Habit) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case habit.FieldActive:
			values[i] = new(sql.NullBool)
		case habit.FieldID, habit.FieldUserID, habit.FieldName, habit.FieldCue, habit.FieldRoutine, habit.FieldReward:
			values[i] = new(sql.NullString)
		case habit.FieldCreatedAt, habit.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Habit fields.
func (_m *Habit) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case habit.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case habit.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case habit.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case habit.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case habit.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case habit.FieldCue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cue", values[i])
			} else if value.Valid {
				_m.Cue = value.String
			}
		case habit.FieldRoutine:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field routine", values[i])
			} else if value.Valid {
				_m.Routine = value.String
			}
		case habit.FieldReward:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reward", values[i])
			} else if value.Valid {
				_m.Reward = value.String
			}
		case habit.FieldActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field active", values[i])
			} else if value.Valid {
				_m.Active = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Habit.
// This includes values selected through modifiers, order, etc.
func (_m *Habit) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the Habit entity.
func (_m *Habit) QueryUser() *UserQuery {
	return NewHabitClient(_m.config).QueryUser(_m)
}

// QueryStreak queries the "streak" edge of the Habit entity.
func (_m *Habit) QueryStreak() *HabitStreakQuery {
	return NewHabitClient(_m.config).QueryStreak(_m)
}

// Update returns a builder for updating this Habit.
// Note that you need to call Habit.Unwrap() before calling this method if this Habit
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Habit) Update() *HabitUpdateOne {
	return NewHabitClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Habit entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Habit) Unwrap() *Habit {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Habit is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Habit) String() string {
	var builder strings.Builder
	builder.WriteString("Habit(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("cue=")
	builder.WriteString(_m.Cue)
	builder.WriteString(", ")
	builder.WriteString("routine=")
	builder.WriteString(_m.Routine)
	builder.WriteString(", ")
	builder.WriteString("reward=")
	builder.WriteString(_m.Reward)
	builder.WriteString(", ")
	builder.WriteString("active=")
	builder.WriteString(fmt.Sprintf("%v", _m.Active))
	builder.WriteByte(')')
	return builder.String()
}

// Habits is a parsable slice of Habit.
type Habits []*Habit
