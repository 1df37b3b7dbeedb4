// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Achievement is the predicate function for achievement builders.
type Achievement func(*sql.Selector)

// ActivityEvent is the predicate function for activityevent builders.
type ActivityEvent func(*sql.Selector)

// FeatureUnlock is the predicate function for featureunlock builders.
type FeatureUnlock func(*sql.Selector)

// Habit is the predicate function for habit builders.
type Habit func(*sql.Selector)

// HabitStreak is the predicate function for habitstreak builders.
type HabitStreak func(*sql.Selector)

// Insight is the predicate function for insight builders.
type Insight func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// UserAchievement is the predicate function for userachievement builders.
type UserAchievement func(*sql.Selector)
