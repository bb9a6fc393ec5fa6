// Code generated by ent, DO NOT EDIT.

package transitionevent

import (
	"mathventure/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEQ(FieldSessionID, v))
}

// FromLevel applies equality check predicate on the "from_level" field. It's identical to FromLevelEQ.
func FromLevel(v int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEQ(FieldFromLevel, v))
}

// ToLevel applies equality check predicate on the "to_level" field. It's identical to ToLevelEQ.
func ToLevel(v int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEQ(FieldToLevel, v))
}

// Decision applies equality check predicate on the "decision" field. It's identical to DecisionEQ.
func Decision(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEQ(FieldDecision, v))
}

// PerformanceScore applies equality check predicate on the "performance_score" field. It's identical to PerformanceScoreEQ.
func PerformanceScore(v float64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEQ(FieldPerformanceScore, v))
}

// RecentAccuracy applies equality check predicate on the "recent_accuracy" field. It's identical to RecentAccuracyEQ.
func RecentAccuracy(v float64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEQ(FieldRecentAccuracy, v))
}

// RecentAvgTimeSecs applies equality check predicate on the "recent_avg_time_secs" field. It's identical to RecentAvgTimeSecsEQ.
func RecentAvgTimeSecs(v float64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEQ(FieldRecentAvgTimeSecs, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEQ(FieldReason, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// FromLevelEQ applies the EQ predicate on the "from_level" field.
func FromLevelEQ(v int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEQ(FieldFromLevel, v))
}

// FromLevelNEQ applies the NEQ predicate on the "from_level" field.
func FromLevelNEQ(v int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldNEQ(FieldFromLevel, v))
}

// FromLevelIn applies the In predicate on the "from_level" field.
func FromLevelIn(vs ...int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldIn(FieldFromLevel, vs...))
}

// FromLevelNotIn applies the NotIn predicate on the "from_level" field.
func FromLevelNotIn(vs ...int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldNotIn(FieldFromLevel, vs...))
}

// FromLevelGT applies the GT predicate on the "from_level" field.
func FromLevelGT(v int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldGT(FieldFromLevel, v))
}

// FromLevelGTE applies the GTE predicate on the "from_level" field.
func FromLevelGTE(v int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldGTE(FieldFromLevel, v))
}

// FromLevelLT applies the LT predicate on the "from_level" field.
func FromLevelLT(v int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldLT(FieldFromLevel, v))
}

// FromLevelLTE applies the LTE predicate on the "from_level" field.
func FromLevelLTE(v int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldLTE(FieldFromLevel, v))
}

// ToLevelEQ applies the EQ predicate on the "to_level" field.
func ToLevelEQ(v int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEQ(FieldToLevel, v))
}

// ToLevelNEQ applies the NEQ predicate on the "to_level" field.
func ToLevelNEQ(v int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldNEQ(FieldToLevel, v))
}

// ToLevelIn applies the In predicate on the "to_level" field.
func ToLevelIn(vs ...int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldIn(FieldToLevel, vs...))
}

// ToLevelNotIn applies the NotIn predicate on the "to_level" field.
func ToLevelNotIn(vs ...int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldNotIn(FieldToLevel, vs...))
}

// ToLevelGT applies the GT predicate on the "to_level" field.
func ToLevelGT(v int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldGT(FieldToLevel, v))
}

// ToLevelGTE applies the GTE predicate on the "to_level" field.
func ToLevelGTE(v int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldGTE(FieldToLevel, v))
}

// ToLevelLT applies the LT predicate on the "to_level" field.
func ToLevelLT(v int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldLT(FieldToLevel, v))
}

// ToLevelLTE applies the LTE predicate on the "to_level" field.
func ToLevelLTE(v int) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldLTE(FieldToLevel, v))
}

// DecisionEQ applies the EQ predicate on the "decision" field.
func DecisionEQ(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEQ(FieldDecision, v))
}

// DecisionNEQ applies the NEQ predicate on the "decision" field.
func DecisionNEQ(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldNEQ(FieldDecision, v))
}

// DecisionIn applies the In predicate on the "decision" field.
func DecisionIn(vs ...string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldIn(FieldDecision, vs...))
}

// DecisionNotIn applies the NotIn predicate on the "decision" field.
func DecisionNotIn(vs ...string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldNotIn(FieldDecision, vs...))
}

// DecisionGT applies the GT predicate on the "decision" field.
func DecisionGT(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldGT(FieldDecision, v))
}

// DecisionGTE applies the GTE predicate on the "decision" field.
func DecisionGTE(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldGTE(FieldDecision, v))
}

// DecisionLT applies the LT predicate on the "decision" field.
func DecisionLT(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldLT(FieldDecision, v))
}

// DecisionLTE applies the LTE predicate on the "decision" field.
func DecisionLTE(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldLTE(FieldDecision, v))
}

// DecisionContains applies the Contains predicate on the "decision" field.
func DecisionContains(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldContains(FieldDecision, v))
}

// DecisionHasPrefix applies the HasPrefix predicate on the "decision" field.
func DecisionHasPrefix(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldHasPrefix(FieldDecision, v))
}

// DecisionHasSuffix applies the HasSuffix predicate on the "decision" field.
func DecisionHasSuffix(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldHasSuffix(FieldDecision, v))
}

// DecisionEqualFold applies the EqualFold predicate on the "decision" field.
func DecisionEqualFold(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEqualFold(FieldDecision, v))
}

// DecisionContainsFold applies the ContainsFold predicate on the "decision" field.
func DecisionContainsFold(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldContainsFold(FieldDecision, v))
}

// PerformanceScoreEQ applies the EQ predicate on the "performance_score" field.
func PerformanceScoreEQ(v float64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEQ(FieldPerformanceScore, v))
}

// PerformanceScoreNEQ applies the NEQ predicate on the "performance_score" field.
func PerformanceScoreNEQ(v float64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldNEQ(FieldPerformanceScore, v))
}

// PerformanceScoreIn applies the In predicate on the "performance_score" field.
func PerformanceScoreIn(vs ...float64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldIn(FieldPerformanceScore, vs...))
}

// PerformanceScoreNotIn applies the NotIn predicate on the "performance_score" field.
func PerformanceScoreNotIn(vs ...float64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldNotIn(FieldPerformanceScore, vs...))
}

// PerformanceScoreGT applies the GT predicate on the "performance_score" field.
func PerformanceScoreGT(v float64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldGT(FieldPerformanceScore, v))
}

// PerformanceScoreGTE applies the GTE predicate on the "performance_score" field.
func PerformanceScoreGTE(v float64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldGTE(FieldPerformanceScore, v))
}

// PerformanceScoreLT applies the LT predicate on the "performance_score" field.
func PerformanceScoreLT(v float64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldLT(FieldPerformanceScore, v))
}

// PerformanceScoreLTE applies the LTE predicate on the "performance_score" field.
func PerformanceScoreLTE(v float64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldLTE(FieldPerformanceScore, v))
}

// RecentAccuracyEQ applies the EQ predicate on the "recent_accuracy" field.
func RecentAccuracyEQ(v float64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEQ(FieldRecentAccuracy, v))
}

// RecentAccuracyNEQ applies the NEQ predicate on the "recent_accuracy" field.
func RecentAccuracyNEQ(v float64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldNEQ(FieldRecentAccuracy, v))
}

// RecentAccuracyIn applies the In predicate on the "recent_accuracy" field.
func RecentAccuracyIn(vs ...float64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldIn(FieldRecentAccuracy, vs...))
}

// RecentAccuracyNotIn applies the NotIn predicate on the "recent_accuracy" field.
func RecentAccuracyNotIn(vs ...float64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldNotIn(FieldRecentAccuracy, vs...))
}

// RecentAccuracyGT applies the GT predicate on the "recent_accuracy" field.
func RecentAccuracyGT(v float64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldGT(FieldRecentAccuracy, v))
}

// RecentAccuracyGTE applies the GTE predicate on the "recent_accuracy" field.
func RecentAccuracyGTE(v float64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldGTE(FieldRecentAccuracy, v))
}

// RecentAccuracyLT applies the LT predicate on the "recent_accuracy" field.
func RecentAccuracyLT(v float64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldLT(FieldRecentAccuracy, v))
}

// RecentAccuracyLTE applies the LTE predicate on the "recent_accuracy" field.
func RecentAccuracyLTE(v float64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldLTE(FieldRecentAccuracy, v))
}

// RecentAvgTimeSecsEQ applies the EQ predicate on the "recent_avg_time_secs" field.
func RecentAvgTimeSecsEQ(v float64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEQ(FieldRecentAvgTimeSecs, v))
}

// RecentAvgTimeSecsNEQ applies the NEQ predicate on the "recent_avg_time_secs" field.
func RecentAvgTimeSecsNEQ(v float64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldNEQ(FieldRecentAvgTimeSecs, v))
}

// RecentAvgTimeSecsIn applies the In predicate on the "recent_avg_time_secs" field.
func RecentAvgTimeSecsIn(vs ...float64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldIn(FieldRecentAvgTimeSecs, vs...))
}

// RecentAvgTimeSecsNotIn applies the NotIn predicate on the "recent_avg_time_secs" field.
func RecentAvgTimeSecsNotIn(vs ...float64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldNotIn(FieldRecentAvgTimeSecs, vs...))
}

// RecentAvgTimeSecsGT applies the GT predicate on the "recent_avg_time_secs" field.
func RecentAvgTimeSecsGT(v float64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldGT(FieldRecentAvgTimeSecs, v))
}

// RecentAvgTimeSecsGTE applies the GTE predicate on the "recent_avg_time_secs" field.
func RecentAvgTimeSecsGTE(v float64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldGTE(FieldRecentAvgTimeSecs, v))
}

// RecentAvgTimeSecsLT applies the LT predicate on the "recent_avg_time_secs" field.
func RecentAvgTimeSecsLT(v float64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldLT(FieldRecentAvgTimeSecs, v))
}

// RecentAvgTimeSecsLTE applies the LTE predicate on the "recent_avg_time_secs" field.
func RecentAvgTimeSecsLTE(v float64) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldLTE(FieldRecentAvgTimeSecs, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.FieldContainsFold(FieldReason, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TransitionEvent) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TransitionEvent) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TransitionEvent) predicate.TransitionEvent {
	return predicate.TransitionEvent(sql.NotPredicates(p))
}
