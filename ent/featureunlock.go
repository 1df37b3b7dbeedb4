// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Stoick643/elara/ent/featureunlock"
	"github.com/Stoick643/elara/ent/user"
)

// FeatureUnlock is the model entity for the FeatureUnlock schema.
type FeatureUnlock struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// FeatureID holds the value of the "feature_id" field.
	FeatureID string `json:"feature_id,omitempty"`
	// monotonic: once true, never false
	Unlocked bool `json:"unlocked,omitempty"`
	// UnlockedAt holds the value of the "unlocked_at" field.
	UnlockedAt time.Time `json:"unlocked_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FeatureUnlockQuery when eager-loading is set.
	Edges        FeatureUnlockEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FeatureUnlockEdges holds the relations/edges for other nodes in the graph.
type FeatureUnlockEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FeatureUnlockEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FeatureUnlock) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case featureunlock.FieldUnlocked:
			values[i] = new(sql.NullBool)
		case featureunlock.FieldID, featureunlock.FieldUserID, featureunlock.FieldFeatureID:
			values[i] = new(sql.NullString)
		case featureunlock.FieldCreatedAt, featureunlock.FieldUnlockedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FeatureUnlock fields.
func (_m *FeatureUnlock) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case featureunlock.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case featureunlock.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case featureunlock.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case featureunlock.FieldFeatureID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field feature_id", values[i])
			} else if value.Valid {
				_m.FeatureID = value.String
			}
		case featureunlock.FieldUnlocked:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field unlocked", values[i])
			} else if value.Valid {
				_m.Unlocked = value.Bool
			}
		case featureunlock.FieldUnlockedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field unlocked_at", values[i])
			} else if value.Valid {
				_m.UnlockedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FeatureUnlock.
// This includes values selected through modifiers, order, etc.
func (_m *FeatureUnlock) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the FeatureUnlock entity.
func (_m *FeatureUnlock) QueryUser() *UserQuery {
	return NewFeatureUnlockClient(_m.config).QueryUser(_m)
}

// Update returns a builder for updating this FeatureUnlock.
// Note that you need to call FeatureUnlock.Unwrap() before calling this method if this FeatureUnlock
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FeatureUnlock) Update() *FeatureUnlockUpdateOne {
	return NewFeatureUnlockClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FeatureUnlock entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FeatureUnlock) Unwrap() *FeatureUnlock {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FeatureUnlock is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FeatureUnlock) String() string {
	var builder strings.Builder
	builder.WriteString("FeatureUnlock(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("feature_id=")
	builder.WriteString(_m.FeatureID)
	builder.WriteString(", ")
	builder.WriteString("unlocked=")
	builder.WriteString(fmt.Sprintf("%v", _m.Unlocked))
	builder.WriteString(", ")
	builder.WriteString("unlocked_at=")
	builder.WriteString(_m.UnlockedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// FeatureUnlocks is a parsable slice of FeatureUnlock.
type FeatureUnlocks []*FeatureUnlock
