// Code generated by ent, DO NOT EDIT.

package habitstreak

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Stoick643/elara/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldEQ(FieldUpdatedAt, v))
}

// HabitID applies equality check predicate on the "habit_id" field. It's identical to HabitIDEQ.
func HabitID(v string) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldEQ(FieldHabitID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldEQ(FieldUserID, v))
}

// CurrentStreak applies equality check predicate on the "current_streak" field. It's identical to CurrentStreakEQ.
func CurrentStreak(v int) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldEQ(FieldCurrentStreak, v))
}

// LongestStreak applies equality check predicate on the "longest_streak" field. It's identical to LongestStreakEQ.
func LongestStreak(v int) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldEQ(FieldLongestStreak, v))
}

// LastCompletedDate applies equality check predicate on the "last_completed_date" field. It's identical to LastCompletedDateEQ.
func LastCompletedDate(v string) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldEQ(FieldLastCompletedDate, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldLTE(FieldUpdatedAt, v))
}

// HabitIDEQ applies the EQ predicate on the "habit_id" field.
func HabitIDEQ(v string) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldEQ(FieldHabitID, v))
}

// HabitIDNEQ applies the NEQ predicate on the "habit_id" field.
func HabitIDNEQ(v string) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldNEQ(FieldHabitID, v))
}

// HabitIDIn applies the In predicate on the "habit_id" field.
func HabitIDIn(vs ...string) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldIn(FieldHabitID, vs...))
}

// HabitIDNotIn applies the NotIn predicate on the "habit_id" field.
func HabitIDNotIn(vs ...string) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldNotIn(FieldHabitID, vs...))
}

// HabitIDGT applies the GT predicate on the "habit_id" field.
func HabitIDGT(v string) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldGT(FieldHabitID, v))
}

// HabitIDGTE applies the GTE predicate on the "habit_id" field.
func HabitIDGTE(v string) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldGTE(FieldHabitID, v))
}

// HabitIDLT applies the LT predicate on the "habit_id" field.
func HabitIDLT(v string) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldLT(FieldHabitID, v))
}

// HabitIDLTE applies the LTE predicate on the "habit_id" field.
func HabitIDLTE(v string) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldLTE(FieldHabitID, v))
}

// HabitIDContains applies the Contains predicate on the "habit_id" field.
func HabitIDContains(v string) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldContains(FieldHabitID, v))
}

// HabitIDHasPrefix applies the HasPrefix predicate on the "habit_id" field.
func HabitIDHasPrefix(v string) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldHasPrefix(FieldHabitID, v))
}

// HabitIDHasSuffix applies the HasSuffix predicate on the "habit_id" field.
func HabitIDHasSuffix(v string) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldHasSuffix(FieldHabitID, v))
}

// HabitIDEqualFold applies the EqualFold predicate on the "habit_id" field.
func HabitIDEqualFold(v string) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldEqualFold(FieldHabitID, v))
}

// HabitIDContainsFold applies the ContainsFold predicate on the "habit_id" field.
func HabitIDContainsFold(v string) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldContainsFold(FieldHabitID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldContainsFold(FieldUserID, v))
}

// CurrentStreakEQ applies the EQ predicate on the "current_streak" field.
func CurrentStreakEQ(v int) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldEQ(FieldCurrentStreak, v))
}

// CurrentStreakNEQ applies the NEQ predicate on the "current_streak" field.
func CurrentStreakNEQ(v int) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldNEQ(FieldCurrentStreak, v))
}

// CurrentStreakIn applies the In predicate on the "current_streak" field.
func CurrentStreakIn(vs ...int) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldIn(FieldCurrentStreak, vs...))
}

// CurrentStreakNotIn applies the NotIn predicate on the "current_streak" field.
func CurrentStreakNotIn(vs ...int) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldNotIn(FieldCurrentStreak, vs...))
}

// CurrentStreakGT applies the GT predicate on the "current_streak" field.
func CurrentStreakGT(v int) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldGT(FieldCurrentStreak, v))
}

// CurrentStreakGTE applies the GTE predicate on the "current_streak" field.
func CurrentStreakGTE(v int) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldGTE(FieldCurrentStreak, v))
}

// CurrentStreakLT applies the LT predicate on the "current_streak" field.
func CurrentStreakLT(v int) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldLT(FieldCurrentStreak, v))
}

// CurrentStreakLTE applies the LTE predicate on the "current_streak" field.
func CurrentStreakLTE(v int) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldLTE(FieldCurrentStreak, v))
}

// LongestStreakEQ applies the EQ predicate on the "longest_streak" field.
func LongestStreakEQ(v int) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldEQ(FieldLongestStreak, v))
}

// LongestStreakNEQ applies the NEQ predicate on the "longest_streak" field.
func LongestStreakNEQ(v int) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldNEQ(FieldLongestStreak, v))
}

// LongestStreakIn applies the In predicate on the "longest_streak" field.
func LongestStreakIn(vs ...int) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldIn(FieldLongestStreak, vs...))
}

// LongestStreakNotIn applies the NotIn predicate on the "longest_streak" field.
func LongestStreakNotIn(vs ...int) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldNotIn(FieldLongestStreak, vs...))
}

// LongestStreakGT applies the GT predicate on the "longest_streak" field.
func LongestStreakGT(v int) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldGT(FieldLongestStreak, v))
}

// LongestStreakGTE applies the GTE predicate on the "longest_streak" field.
func LongestStreakGTE(v int) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldGTE(FieldLongestStreak, v))
}

// LongestStreakLT applies the LT predicate on the "longest_streak" field.
func LongestStreakLT(v int) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldLT(FieldLongestStreak, v))
}

// LongestStreakLTE applies the LTE predicate on the "longest_streak" field.
func LongestStreakLTE(v int) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldLTE(FieldLongestStreak, v))
}

// LastCompletedDateEQ applies the EQ predicate on the "last_completed_date" field.
func LastCompletedDateEQ(v string) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldEQ(FieldLastCompletedDate, v))
}

// LastCompletedDateNEQ applies the NEQ predicate on the "last_completed_date" field.
func LastCompletedDateNEQ(v string) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldNEQ(FieldLastCompletedDate, v))
}

// LastCompletedDateIn applies the In predicate on the "last_completed_date" field.
func LastCompletedDateIn(vs ...string) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldIn(FieldLastCompletedDate, vs...))
}

// LastCompletedDateNotIn applies the NotIn predicate on the "last_completed_date" field.
func LastCompletedDateNotIn(vs ...string) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldNotIn(FieldLastCompletedDate, vs...))
}

// LastCompletedDateGT applies the GT predicate on the "last_completed_date" field.
func LastCompletedDateGT(v string) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldGT(FieldLastCompletedDate, v))
}

// LastCompletedDateGTE applies the GTE predicate on the "last_completed_date" field.
func LastCompletedDateGTE(v string) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldGTE(FieldLastCompletedDate, v))
}

// LastCompletedDateLT applies the LT predicate on the "last_completed_date" field.
func LastCompletedDateLT(v string) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldLT(FieldLastCompletedDate, v))
}

// LastCompletedDateLTE applies the LTE predicate on the "last_completed_date" field.
func LastCompletedDateLTE(v string) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldLTE(FieldLastCompletedDate, v))
}

// LastCompletedDateContains applies the Contains predicate on the "last_completed_date" field.
func LastCompletedDateContains(v string) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldContains(FieldLastCompletedDate, v))
}

// LastCompletedDateHasPrefix applies the HasPrefix predicate on the "last_completed_date" field.
func LastCompletedDateHasPrefix(v string) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldHasPrefix(FieldLastCompletedDate, v))
}

// LastCompletedDateHasSuffix applies the HasSuffix predicate on the "last_completed_date" field.
func LastCompletedDateHasSuffix(v string) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldHasSuffix(FieldLastCompletedDate, v))
}

// LastCompletedDateEqualFold applies the EqualFold predicate on the "last_completed_date" field.
func LastCompletedDateEqualFold(v string) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldEqualFold(FieldLastCompletedDate, v))
}

// LastCompletedDateContainsFold applies the ContainsFold predicate on the "last_completed_date" field.
func LastCompletedDateContainsFold(v string) predicate.HabitStreak {
	return predicate.HabitStreak(sql.FieldContainsFold(FieldLastCompletedDate, v))
}

// HasHabit applies the HasEdge predicate on the "habit" edge.
func HasHabit() predicate.HabitStreak {
	return predicate.HabitStreak(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, HabitTable, HabitColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasHabitWith applies the HasEdge predicate on the "habit" edge with a given conditions (other predicates).
func HasHabitWith(preds ...predicate.Habit) predicate.HabitStreak {
	return predicate.HabitStreak(func(s *sql.Selector) {
		step := newHabitStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.HabitStreak) predicate.HabitStreak {
	return predicate.HabitStreak(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.HabitStreak) predicate.HabitStreak {
	return predicate.HabitStreak(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.HabitStreak) predicate.HabitStreak {
	return predicate.HabitStreak(sql.NotPredicates(p))
}
