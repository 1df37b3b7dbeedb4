// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Stoick643/elara/ent/user"
)

// User is the model entity for the User schema.
type User struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Username holds the value of the "username" field.
	Username string `json:"username,omitempty"`
	// IANA zone name, the unit of all local-date arithmetic
	Timezone string `json:"timezone,omitempty"`
	// ProMode holds the value of the "pro_mode" field.
	ProMode bool `json:"pro_mode,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the UserQuery when eager-loading is set.
	Edges        UserEdges `json:"edges"`
	selectValues sql.SelectValues
}

// UserEdges holds the relations/edges for other nodes in the graph.
type UserEdges struct {
	// Events holds the value of the events edge.
	Events []*ActivityEvent `json:"events,omitempty"`
	// Habits holds the value of the habits edge.
	Habits []*Habit `json:"habits,omitempty"`
	// FeatureUnlocks holds the value of the feature_unlocks edge.
	FeatureUnlocks []*FeatureUnlock `json:"feature_unlocks,omitempty"`
	// Insights holds the value of the insights edge.
	Insights []*Insight `json:"insights,omitempty"`
	// Awards holds the value of the awards edge.
	Awards []*UserAchievement `json:"awards,omitempty"`
	// Notifications holds the value of the notifications edge.
	Notifications []*Notification `json:"notifications,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [6]bool
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) EventsOrErr() ([]*ActivityEvent, error) {
	if e.loadedTypes[0] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// HabitsOrErr returns the Habits value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) HabitsOrErr() ([]*Habit, error) {
	if e.loadedTypes[1] {
		return e.Habits, nil
	}
	return nil, &NotLoadedError{edge: "habits"}
}

// FeatureUnlocksOrErr returns the FeatureUnlocks value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) FeatureUnlocksOrErr() ([]*FeatureUnlock, error) {
	if e.loadedTypes[2] {
		return e.FeatureUnlocks, nil
	}
	return nil, &NotLoadedError{edge: "feature_unlocks"}
}

// InsightsOrErr returns the Insights value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) InsightsOrErr() ([]*Insight, error) {
	if e.loadedTypes[3] {
		return e.Insights, nil
	}
	return nil, &NotLoadedError{edge: "insights"}
}

// AwardsOrErr returns the Awards value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) AwardsOrErr() ([]*UserAchievement, error) {
	if e.loadedTypes[4] {
		return e.Awards, nil
	}
	return nil, &NotLoadedError{edge: "awards"}
}

// NotificationsOrErr returns the Notifications value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) NotificationsOrErr() ([]*Notification, error) {
	if e.loadedTypes[5] {
		return e.Notifications, nil
	}
	return nil, &NotLoadedError{edge: "notifications"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*User) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case user.FieldProMode:
			values[i] = new(sql.NullBool)
		case user.FieldID, user.FieldUsername, user.FieldTimezone:
			values[i] = new(sql.NullString)
		case user.FieldCreatedAt, user.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the User fields.
func (_m *User) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case user.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case user.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case user.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case user.FieldUsername:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field username", values[i])
			} else if value.Valid {
				_m.Username = value.String
			}
		case user.FieldTimezone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field timezone", values[i])
			} else if value.Valid {
				_m.Timezone = value.String
			}
		case user.FieldProMode:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field pro_mode", values[i])
			} else if value.Valid {
				_m.ProMode = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the User.
// This includes values selected through modifiers, order, etc.
func (_m *User) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryEvents queries the "events" edge of the User entity.
func (_m *User) QueryEvents() *ActivityEventQuery {
	return NewUserClient(_m.config).QueryEvents(_m)
}

// QueryHabits queries the "habits" edge of the User entity.
func (_m *User) QueryHabits() *HabitQuery {
	return NewUserClient(_m.config).QueryHabits(_m)
}

// QueryFeatureUnlocks queries the "feature_unlocks" edge of the User entity.
func (_m *User) QueryFeatureUnlocks() *FeatureUnlockQuery {
	return NewUserClient(_m.config).QueryFeatureUnlocks(_m)
}

// QueryInsights queries the "insights" edge of the User entity.
func (_m *User) QueryInsights() *InsightQuery {
	return NewUserClient(_m.config).QueryInsights(_m)
}

// QueryAwards queries the "awards" edge of the User entity.
func (_m *User) QueryAwards() *UserAchievementQuery {
	return NewUserClient(_m.config).QueryAwards(_m)
}

// QueryNotifications queries the "notifications" edge of the User entity.
func (_m *User) QueryNotifications() *NotificationQuery {
	return NewUserClient(_m.config).QueryNotifications(_m)
}

// Update returns a builder for updating this User.
// Note that you need to call User.Unwrap() before calling this method if this User
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *User) Update() *UserUpdateOne {
	return NewUserClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the User entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *User) Unwrap() *User {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: User is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *User) String() string {
	var builder strings.Builder
	builder.WriteString("User(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("username=")
	builder.WriteString(_m.Username)
	builder.WriteString(", ")
	builder.WriteString("timezone=")
	builder.WriteString(_m.Timezone)
	builder.WriteString(", ")
	builder.WriteString("pro_mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProMode))
	builder.WriteByte(')')
	return builder.String()
}

// Users is a parsable slice of User.
type Users []*User
