// Code generated by ent, DO NOT EDIT.

package habit

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Stoick643/elara/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Habit {
	return predicate.Habit(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Habit {
	return predicate.Habit(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Habit {
	return predicate.Habit(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Habit {
	return predicate.Habit(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Habit {
	return predicate.Habit(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Habit {
	return predicate.Habit(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Habit {
	return predicate.Habit(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Habit {
	return predicate.Habit(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Habit {
	return predicate.Habit(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Habit {
	return predicate.Habit(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Habit {
	return predicate.Habit(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Habit {
	return predicate.Habit(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Habit {
	return predicate.Habit(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Habit {
	return predicate.Habit(sql.FieldEQ(FieldUserID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Habit {
	return predicate.Habit(sql.FieldEQ(FieldName, v))
}

// Cue applies equality check predicate on the "cue" field. It's identical to CueEQ.
func Cue(v string) predicate.Habit {
	return predicate.Habit(sql.FieldEQ(FieldCue, v))
}

// Routine applies equality check predicate on the "routine" field. It's identical to RoutineEQ.
func Routine(v string) predicate.Habit {
	return predicate.Habit(sql.FieldEQ(FieldRoutine, v))
}

// Reward applies equality check predicate on the "reward" field. It's identical to RewardEQ.
func Reward(v string) predicate.Habit {
	return predicate.Habit(sql.FieldEQ(FieldReward, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.Habit {
	return predicate.Habit(sql.FieldEQ(FieldActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Habit {
	return predicate.Habit(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Habit {
	return predicate.Habit(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Habit {
	return predicate.Habit(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Habit {
	return predicate.Habit(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Habit {
	return predicate.Habit(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Habit {
	return predicate.Habit(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Habit {
	return predicate.Habit(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Habit {
	return predicate.Habit(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Habit {
	return predicate.Habit(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Habit {
	return predicate.Habit(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Habit {
	return predicate.Habit(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Habit {
	return predicate.Habit(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Habit {
	return predicate.Habit(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Habit {
	return predicate.Habit(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Habit {
	return predicate.Habit(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Habit {
	return predicate.Habit(sql.FieldLTE(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Habit {
	return predicate.Habit(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Habit {
	return predicate.Habit(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Habit {
	return predicate.Habit(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Habit {
	return predicate.Habit(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Habit {
	return predicate.Habit(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Habit {
	return predicate.Habit(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Habit {
	return predicate.Habit(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Habit {
	return predicate.Habit(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Habit {
	return predicate.Habit(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Habit {
	return predicate.Habit(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Habit {
	return predicate.Habit(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Habit {
	return predicate.Habit(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Habit {
	return predicate.Habit(sql.FieldContainsFold(FieldUserID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Habit {
	return predicate.Habit(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Habit {
	return predicate.Habit(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Habit {
	return predicate.Habit(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Habit {
	return predicate.Habit(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Habit {
	return predicate.Habit(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Habit {
	return predicate.Habit(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Habit {
	return predicate.Habit(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Habit {
	return predicate.Habit(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Habit {
	return predicate.Habit(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Habit {
	return predicate.Habit(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Habit {
	return predicate.Habit(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Habit {
	return predicate.Habit(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Habit {
	return predicate.Habit(sql.FieldContainsFold(FieldName, v))
}

// CueEQ applies the EQ predicate on the "cue" field.
func CueEQ(v string) predicate.Habit {
	return predicate.Habit(sql.FieldEQ(FieldCue, v))
}

// CueNEQ applies the NEQ predicate on the "cue" field.
func CueNEQ(v string) predicate.Habit {
	return predicate.Habit(sql.FieldNEQ(FieldCue, v))
}

// CueIn applies the In predicate on the "cue" field.
func CueIn(vs ...string) predicate.Habit {
	return predicate.Habit(sql.FieldIn(FieldCue, vs...))
}

// CueNotIn applies the NotIn predicate on the "cue" field.
func CueNotIn(vs ...string) predicate.Habit {
	return predicate.Habit(sql.FieldNotIn(FieldCue, vs...))
}

// CueGT applies the GT predicate on the "cue" field.
func CueGT(v string) predicate.Habit {
	return predicate.Habit(sql.FieldGT(FieldCue, v))
}

// CueGTE applies the GTE predicate on the "cue" field.
func CueGTE(v string) predicate.Habit {
	return predicate.Habit(sql.FieldGTE(FieldCue, v))
}

// CueLT applies the LT predicate on the "cue" field.
func CueLT(v string) predicate.Habit {
	return predicate.Habit(sql.FieldLT(FieldCue, v))
}

// CueLTE applies the LTE predicate on the "cue" field.
func CueLTE(v string) predicate.Habit {
	return predicate.Habit(sql.FieldLTE(FieldCue, v))
}

// CueContains applies the Contains predicate on the "cue" field.
func CueContains(v string) predicate.Habit {
	return predicate.Habit(sql.FieldContains(FieldCue, v))
}

// CueHasPrefix applies the HasPrefix predicate on the "cue" field.
func CueHasPrefix(v string) predicate.Habit {
	return predicate.Habit(sql.FieldHasPrefix(FieldCue, v))
}

// CueHasSuffix applies the HasSuffix predicate on the "cue" field.
func CueHasSuffix(v string) predicate.Habit {
	return predicate.Habit(sql.FieldHasSuffix(FieldCue, v))
}

// CueEqualFold applies the EqualFold predicate on the "cue" field.
func CueEqualFold(v string) predicate.Habit {
	return predicate.Habit(sql.FieldEqualFold(FieldCue, v))
}

// CueContainsFold applies the ContainsFold predicate on the "cue" field.
func CueContainsFold(v string) predicate.Habit {
	return predicate.Habit(sql.FieldContainsFold(FieldCue, v))
}

// RoutineEQ applies the EQ predicate on the "routine" field.
func RoutineEQ(v string) predicate.Habit {
	return predicate.Habit(sql.FieldEQ(FieldRoutine, v))
}

// RoutineNEQ applies the NEQ predicate on the "routine" field.
func RoutineNEQ(v string) predicate.Habit {
	return predicate.Habit(sql.FieldNEQ(FieldRoutine, v))
}

// RoutineIn applies the In predicate on the "routine" field.
func RoutineIn(vs ...string) predicate.Habit {
	return predicate.Habit(sql.FieldIn(FieldRoutine, vs...))
}

// RoutineNotIn applies the NotIn predicate on the "routine" field.
func RoutineNotIn(vs ...string) predicate.Habit {
	return predicate.Habit(sql.FieldNotIn(FieldRoutine, vs...))
}

// RoutineGT applies the GT predicate on the "routine" field.
func RoutineGT(v string) predicate.Habit {
	return predicate.Habit(sql.FieldGT(FieldRoutine, v))
}

// RoutineGTE applies the GTE predicate on the "routine" field.
func RoutineGTE(v string) predicate.Habit {
	return predicate.Habit(sql.FieldGTE(FieldRoutine, v))
}

// RoutineLT applies the LT predicate on the "routine" field.
func RoutineLT(v string) predicate.Habit {
	return predicate.Habit(sql.FieldLT(FieldRoutine, v))
}

// RoutineLTE applies the LTE predicate on the "routine" field.
func RoutineLTE(v string) predicate.Habit {
	return predicate.Habit(sql.FieldLTE(FieldRoutine, v))
}

// RoutineContains applies the Contains predicate on the "routine" field.
func RoutineContains(v string) predicate.Habit {
	return predicate.Habit(sql.FieldContains(FieldRoutine, v))
}

// RoutineHasPrefix applies the HasPrefix predicate on the "routine" field.
func RoutineHasPrefix(v string) predicate.Habit {
	return predicate.Habit(sql.FieldHasPrefix(FieldRoutine, v))
}

// RoutineHasSuffix applies the HasSuffix predicate on the "routine" field.
func RoutineHasSuffix(v string) predicate.Habit {
	return predicate.Habit(sql.FieldHasSuffix(FieldRoutine, v))
}

// RoutineEqualFold applies the EqualFold predicate on the "routine" field.
func RoutineEqualFold(v string) predicate.Habit {
	return predicate.Habit(sql.FieldEqualFold(FieldRoutine, v))
}

// RoutineContainsFold applies the ContainsFold predicate on the "routine" field.
func RoutineContainsFold(v string) predicate.Habit {
	return predicate.Habit(sql.FieldContainsFold(FieldRoutine, v))
}

// RewardEQ applies the EQ predicate on the "reward" field.
func RewardEQ(v string) predicate.Habit {
	return predicate.Habit(sql.FieldEQ(FieldReward, v))
}

// RewardNEQ applies the NEQ predicate on the "reward" field.
func RewardNEQ(v string) predicate.Habit {
	return predicate.Habit(sql.FieldNEQ(FieldReward, v))
}

// RewardIn applies the In predicate on the "reward" field.
func RewardIn(vs ...string) predicate.Habit {
	return predicate.Habit(sql.FieldIn(FieldReward, vs...))
}

// RewardNotIn applies the NotIn predicate on the "reward" field.
func RewardNotIn(vs ...string) predicate.Habit {
	return predicate.Habit(sql.FieldNotIn(FieldReward, vs...))
}

// RewardGT applies the GT predicate on the "reward" field.
func RewardGT(v string) predicate.Habit {
	return predicate.Habit(sql.FieldGT(FieldReward, v))
}

// RewardGTE applies the GTE predicate on the "reward" field.
func RewardGTE(v string) predicate.Habit {
	return predicate.Habit(sql.FieldGTE(FieldReward, v))
}

// RewardLT applies the LT predicate on the "reward" field.
func RewardLT(v string) predicate.Habit {
	return predicate.Habit(sql.FieldLT(FieldReward, v))
}

// RewardLTE applies the LTE predicate on the "reward" field.
func RewardLTE(v string) predicate.Habit {
	return predicate.Habit(sql.FieldLTE(FieldReward, v))
}

// RewardContains applies the Contains predicate on the "reward" field.
func RewardContains(v string) predicate.Habit {
	return predicate.Habit(sql.FieldContains(FieldReward, v))
}

// RewardHasPrefix applies the HasPrefix predicate on the "reward" field.
func RewardHasPrefix(v string) predicate.Habit {
	return predicate.Habit(sql.FieldHasPrefix(FieldReward, v))
}

// RewardHasSuffix applies the HasSuffix predicate on the "reward" field.
func RewardHasSuffix(v string) predicate.Habit {
	return predicate.Habit(sql.FieldHasSuffix(FieldReward, v))
}

// RewardEqualFold applies the EqualFold predicate on the "reward" field.
func RewardEqualFold(v string) predicate.Habit {
	return predicate.Habit(sql.FieldEqualFold(FieldReward, v))
}

// RewardContainsFold applies the ContainsFold predicate on the "reward" field.
func RewardContainsFold(v string) predicate.Habit {
	return predicate.Habit(sql.FieldContainsFold(FieldReward, v))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.Habit {
	return predicate.Habit(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.Habit {
	return predicate.Habit(sql.FieldNEQ(FieldActive, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.Habit {
	return predicate.Habit(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.Habit {
	return predicate.Habit(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasStreak applies the HasEdge predicate on the "streak" edge.
func HasStreak() predicate.Habit {
	return predicate.Habit(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, StreakTable, StreakColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStreakWith applies the HasEdge predicate on the "streak" edge with a given conditions (other predicates).
func HasStreakWith(preds ...predicate.HabitStreak) predicate.Habit {
	return predicate.Habit(func(s *sql.Selector) {
		step := newStreakStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Habit) predicate.Habit {
	return predicate.Habit(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Habit) predicate.Habit {
	return predicate.Habit(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Habit) predicate.Habit {
	return predicate.Habit(sql.NotPredicates(p))
}
