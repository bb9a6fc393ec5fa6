// Code generated by ent, DO NOT EDIT.

package ent

import (
	"mathventure/ent/attemptevent"
	"mathventure/ent/schema"
	"mathventure/ent/sessionevent"
	"mathventure/ent/transitionevent"
	"time"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescSessionID is the schema descriptor for session_id field.
	attempteventDescSessionID := attempteventFields[0].Descriptor()
	// attemptevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	attemptevent.SessionIDValidator = attempteventDescSessionID.Validators[0].(func(string) error)
	// attempteventDescQuestion is the schema descriptor for question field.
	attempteventDescQuestion := attempteventFields[1].Descriptor()
	// attemptevent.QuestionValidator is a validator for the "question" field. It is called by the builders before save.
	attemptevent.QuestionValidator = attempteventDescQuestion.Validators[0].(func(string) error)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescPlayer is the schema descriptor for player field.
	sessioneventDescPlayer := sessioneventFields[2].Descriptor()
	// sessionevent.DefaultPlayer holds the default value on creation for the player field.
	sessionevent.DefaultPlayer = sessioneventDescPlayer.Default.(string)
	// sessioneventDescFinalLevel is the schema descriptor for final_level field.
	sessioneventDescFinalLevel := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultFinalLevel holds the default value on creation for the final_level field.
	sessionevent.DefaultFinalLevel = sessioneventDescFinalLevel.Default.(int)
	// sessioneventDescPuzzlesServed is the schema descriptor for puzzles_served field.
	sessioneventDescPuzzlesServed := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultPuzzlesServed holds the default value on creation for the puzzles_served field.
	sessionevent.DefaultPuzzlesServed = sessioneventDescPuzzlesServed.Default.(int)
	// sessioneventDescCorrectAnswers is the schema descriptor for correct_answers field.
	sessioneventDescCorrectAnswers := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	sessionevent.DefaultCorrectAnswers = sessioneventDescCorrectAnswers.Default.(int)
	// sessioneventDescBestStreak is the schema descriptor for best_streak field.
	sessioneventDescBestStreak := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultBestStreak holds the default value on creation for the best_streak field.
	sessionevent.DefaultBestStreak = sessioneventDescBestStreak.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[8].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	transitioneventMixin := schema.TransitionEvent{}.Mixin()
	transitioneventMixinFields0 := transitioneventMixin[0].Fields()
	_ = transitioneventMixinFields0
	transitioneventFields := schema.TransitionEvent{}.Fields()
	_ = transitioneventFields
	// transitioneventDescTimestamp is the schema descriptor for timestamp field.
	transitioneventDescTimestamp := transitioneventMixinFields0[1].Descriptor()
	// transitionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	transitionevent.DefaultTimestamp = transitioneventDescTimestamp.Default.(func() time.Time)
	// transitioneventDescSessionID is the schema descriptor for session_id field.
	transitioneventDescSessionID := transitioneventFields[0].Descriptor()
	// transitionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	transitionevent.SessionIDValidator = transitioneventDescSessionID.Validators[0].(func(string) error)
	// transitioneventDescDecision is the schema descriptor for decision field.
	transitioneventDescDecision := transitioneventFields[3].Descriptor()
	// transitionevent.DecisionValidator is a validator for the "decision" field. It is called by the builders before save.
	transitionevent.DecisionValidator = transitioneventDescDecision.Validators[0].(func(string) error)
	// transitioneventDescReason is the schema descriptor for reason field.
	transitioneventDescReason := transitioneventFields[7].Descriptor()
	// transitionevent.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	transitionevent.ReasonValidator = transitioneventDescReason.Validators[0].(func(string) error)
}
