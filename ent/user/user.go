// Code generated by ent, DO NOT EDIT.

package user

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the user type in the database.
	Label = "user"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldUsername holds the string denoting the username field in the database.
	FieldUsername = "username"
	// FieldTimezone holds the string denoting the timezone field in the database.
	FieldTimezone = "timezone"
	// FieldProMode holds the string denoting the pro_mode field in the database.
	FieldProMode = "pro_mode"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// EdgeHabits holds the string denoting the habits edge name in mutations.
	EdgeHabits = "habits"
	// EdgeFeatureUnlocks holds the string denoting the feature_unlocks edge name in mutations.
	EdgeFeatureUnlocks = "feature_unlocks"
	// EdgeInsights holds the string denoting the insights edge name in mutations.
	EdgeInsights = "insights"
	// EdgeAwards holds the string denoting the awards edge name in mutations.
	EdgeAwards = "awards"
	// EdgeNotifications holds the string denoting the notifications edge name in mutations.
	EdgeNotifications = "notifications"
	// Table holds the table name of the user in the database.
	Table = "users"
	// EventsTable is the table that holds the events relation/edge.
	EventsTable = "activity_events"
	// EventsInverseTable is the table name for the ActivityEvent entity.
	// It exists in this package in order to avoid circular dependency with the "activityevent" package.
	EventsInverseTable = "activity_events"
	// EventsColumn is the table column denoting the events relation/edge.
	EventsColumn = "user_id"
	// HabitsTable is the table that holds the habits relation/edge.
	HabitsTable = "habits"
	// HabitsInverseTable is the table name for the Habit entity.
	// It exists in this package in order to avoid circular dependency with the "habit" package.
	HabitsInverseTable = "habits"
	// HabitsColumn is the table column denoting the habits relation/edge.
	HabitsColumn = "user_id"
	// FeatureUnlocksTable is the table that holds the feature_unlocks relation/edge.
	FeatureUnlocksTable = "feature_unlocks"
	// FeatureUnlocksInverseTable is the table name for the FeatureUnlock entity.
	// It exists in this package in order to avoid circular dependency with the "featureunlock" package.
	FeatureUnlocksInverseTable = "feature_unlocks"
	// FeatureUnlocksColumn is the table column denoting the feature_unlocks relation/edge.
	FeatureUnlocksColumn = "user_id"
	// InsightsTable is the table that holds the insights relation/edge.
	InsightsTable = "insights"
	// InsightsInverseTable is the table name for the Insight entity.
	// It exists in this package in order to avoid circular dependency with the "insight" package.
	InsightsInverseTable = "insights"
	// InsightsColumn is the table column denoting the insights relation/edge.
	InsightsColumn = "user_id"
	// AwardsTable is the table that holds the awards relation/edge.
	AwardsTable = "user_achievements"
	// AwardsInverseTable is the table name for the UserAchievement entity.
	// It exists in this package in order to avoid circular dependency with the "userachievement" package.
	AwardsInverseTable = "user_achievements"
	// AwardsColumn is the table column denoting the awards relation/edge.
	AwardsColumn = "user_id"
	// NotificationsTable is the table that holds the notifications relation/edge.
	NotificationsTable = "notifications"
	// NotificationsInverseTable is the table name for the Notification entity.
	// It exists in this package in order to avoid circular dependency with the "notification" package.
	NotificationsInverseTable = "notifications"
	// NotificationsColumn is the table column denoting the notifications relation/edge.
	NotificationsColumn = "user_id"
)

// Columns holds all SQL columns for user fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldUsername,
	FieldTimezone,
	FieldProMode,
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
	// UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	UsernameValidator func(string) error
	// DefaultTimezone holds the default value on creation for the "timezone" field.
	DefaultTimezone string
	// DefaultProMode holds the default value on creation for the "pro_mode" field.
	DefaultProMode bool
)

// OrderOption defines the ordering options for the User queries.
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

// ByUsername orders the results by the username field.
func ByUsername(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsername, opts...).ToFunc()
}

// ByTimezone orders the results by the timezone field.
func ByTimezone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimezone, opts...).ToFunc()
}

// ByProMode orders the results by the pro_mode field.
func ByProMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProMode, opts...).ToFunc()
}

// ByEventsCount orders the results by events count.
func ByEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventsStep(), opts...)
	}
}

// ByEvents orders the results by events terms.
func ByEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByHabitsCount orders the results by habits count.
func ByHabitsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newHabitsStep(), opts...)
	}
}

// ByHabits orders the results by habits terms.
func ByHabits(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newHabitsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByFeatureUnlocksCount orders the results by feature_unlocks count.
func ByFeatureUnlocksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newFeatureUnlocksStep(), opts...)
	}
}

// ByFeatureUnlocks orders the results by feature_unlocks terms.
func ByFeatureUnlocks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFeatureUnlocksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByInsightsCount orders the results by insights count.
func ByInsightsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newInsightsStep(), opts...)
	}
}

// ByInsights orders the results by insights terms.
func ByInsights(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newInsightsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAwardsCount orders the results by awards count.
func ByAwardsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAwardsStep(), opts...)
	}
}

// ByAwards orders the results by awards terms.
func ByAwards(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAwardsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByNotificationsCount orders the results by notifications count.
func ByNotificationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newNotificationsStep(), opts...)
	}
}

// ByNotifications orders the results by notifications terms.
func ByNotifications(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newNotificationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
	)
}
func newHabitsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(HabitsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, HabitsTable, HabitsColumn),
	)
}
func newFeatureUnlocksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FeatureUnlocksInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, FeatureUnlocksTable, FeatureUnlocksColumn),
	)
}
func newInsightsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(InsightsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, InsightsTable, InsightsColumn),
	)
}
func newAwardsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AwardsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AwardsTable, AwardsColumn),
	)
}
func newNotificationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(NotificationsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, NotificationsTable, NotificationsColumn),
	)
}
