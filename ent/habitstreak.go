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
)

// HabitStreak is the model entity for the HabitStreak schema.
type HabitStreak struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// HabitID holds the value of the "habit_id" field.
	HabitID string `json:"habit_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// CurrentStreak holds the value of the "current_streak" field.
	CurrentStreak int `json:"current_streak,omitempty"`
	// LongestStreak holds the value of the "longest_streak" field.
	LongestStreak int `json:"longest_streak,omitempty"`
	// YYYY-MM-DD local date of the most recent log; empty when none
	LastCompletedDate string `json:"last_completed_date,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the HabitStreakQuery when eager-loading is set.
	Edges        HabitStreakEdges `json:"edges"`
	selectValues sql.SelectValues
}

// HabitStreakEdges holds the relations/edges for other nodes in the graph.
type HabitStreakEdges struct {
	// Habit holds the value of the habit edge.
	Habit *Habit `json:"habit,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// HabitOrErr returns the Habit value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e HabitStreakEdges) HabitOrErr() (*Habit, error) {
	if e.Habit != nil {
		return e.Habit, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: habit.Label}
	}
	return nil, &NotLoadedError{edge: "habit"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*HabitStreak) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case habitstreak.FieldCurrentStreak, habitstreak.FieldLongestStreak:
			values[i] = new(sql.NullInt64)
		case habitstreak.FieldID, habitstreak.FieldHabitID, habitstreak.FieldUserID, habitstreak.FieldLastCompletedDate:
			values[i] = new(sql.NullString)
		case habitstreak.FieldCreatedAt, habitstreak.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the HabitStreak fields.
func (_m *HabitStreak) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case habitstreak.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case habitstreak.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case habitstreak.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case habitstreak.FieldHabitID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field habit_id", values[i])
			} else if value.Valid {
				_m.HabitID = value.String
			}
		case habitstreak.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case habitstreak.FieldCurrentStreak:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_streak", values[i])
			} else if value.Valid {
				_m.CurrentStreak = int(value.Int64)
			}
		case habitstreak.FieldLongestStreak:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field longest_streak", values[i])
			} else if value.Valid {
				_m.LongestStreak = int(value.Int64)
			}
		case habitstreak.FieldLastCompletedDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_completed_date", values[i])
			} else if value.Valid {
				_m.LastCompletedDate = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the HabitStreak.
// This includes values selected through modifiers, order, etc.
func (_m *HabitStreak) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryHabit queries the "habit" edge of the HabitStreak entity.
func (_m *HabitStreak) QueryHabit() *HabitQuery {
	return NewHabitStreakClient(_m.config).QueryHabit(_m)
}

// Update returns a builder for updating this HabitStreak.
// Note that you need to call HabitStreak.Unwrap() before calling this method if this HabitStreak
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *HabitStreak) Update() *HabitStreakUpdateOne {
	return NewHabitStreakClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the HabitStreak entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *HabitStreak) Unwrap() *HabitStreak {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: HabitStreak is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *HabitStreak) String() string {
	var builder strings.Builder
	builder.WriteString("HabitStreak(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("habit_id=")
	builder.WriteString(_m.HabitID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("current_streak=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentStreak))
	builder.WriteString(", ")
	builder.WriteString("longest_streak=")
	builder.WriteString(fmt.Sprintf("%v", _m.LongestStreak))
	builder.WriteString(", ")
	builder.WriteString("last_completed_date=")
	builder.WriteString(_m.LastCompletedDate)
	builder.WriteByte(')')
	return builder.String()
}

// HabitStreaks is a parsable slice of HabitStreak.
type HabitStreaks []*HabitStreak
