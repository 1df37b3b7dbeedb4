// Code generated by ent, DO NOT EDIT.

package habitstreak

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the habitstreak type in the database.
	Label = "habit_streak"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldHabitID holds the string denoting the habit_id field in the database.
	FieldHabitID = "habit_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldCurrentStreak holds the string denoting the current_streak field in the database.
	FieldCurrentStreak = "current_streak"
	// FieldLongestStreak holds the string denoting the longest_streak field in the database.
	FieldLongestStreak = "longest_streak"
	// FieldLastCompletedDate holds the string denoting the last_completed_date field in the database.
	FieldLastCompletedDate = "last_completed_date"
	// EdgeHabit holds the string denoting the habit edge name in mutations.
	EdgeHabit = "habit"
	// Table holds the table name of the habitstreak in the database.
	Table = "habit_streaks"
	// HabitTable is the table that holds the habit relation/edge.
	HabitTable = "habit_streaks"
	// HabitInverseTable is the table name for the Habit entity.
	// It exists in this package in order to avoid circular dependency with the "habit" package.
	HabitInverseTable = "habits"
	// HabitColumn is the table column denoting the habit relation/edge.
	HabitColumn = "habit_id"
)

// Columns holds all SQL columns for habitstreak fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldHabitID,
	FieldUserID,
	FieldCurrentStreak,
	FieldLongestStreak,
	FieldLastCompletedDate,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// HabitIDValidator is a validator for the "habit_id" field. It is called by the builders before save.
	HabitIDValidator func(string) error
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// DefaultCurrentStreak holds the default value on creation for the "current_streak" field.
	DefaultCurrentStreak int
	// CurrentStreakValidator is a validator for the "current_streak" field. It is called by the builders before save.
	CurrentStreakValidator func(int) error
	// DefaultLongestStreak holds the default value on creation for the "longest_streak" field.
	DefaultLongestStreak int
	// LongestStreakValidator is a validator for the "longest_streak" field. It is called by the builders before save.
	LongestStreakValidator func(int) error
	// DefaultLastCompletedDate holds the default value on creation for the "last_completed_date" field.
	DefaultLastCompletedDate string
)

// OrderOption defines the ordering options for the HabitStreak queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByHabitID orders the results by the habit_id field.
func ByHabitID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHabitID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByCurrentStreak orders the results by the current_streak field.
func ByCurrentStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentStreak, opts...).ToFunc()
}

// ByLongestStreak orders the results by the longest_streak field.
func ByLongestStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLongestStreak, opts...).ToFunc()
}

// ByLastCompletedDate orders the results by the last_completed_date field.
func ByLastCompletedDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastCompletedDate, opts...).ToFunc()
}

// ByHabitField orders the results by habit field.
func ByHabitField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newHabitStep(), sql.OrderByField(field, opts...))
	}
}
func newHabitStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(HabitInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, HabitTable, HabitColumn),
	)
}
