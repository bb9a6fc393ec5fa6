package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TransitionEvent records one difficulty decision made mid-session.
type TransitionEvent struct {
	ent.Schema
}

func (TransitionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (TransitionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.Int("from_level").
			Comment("Difficulty before the decision"),
		field.Int("to_level").
			Comment("Difficulty after the decision"),
		field.String("decision").
			NotEmpty().
			Comment("INCREASE, DECREASE, or MAINTAIN"),
		field.Float("performance_score").
			Comment("Blended accuracy and speed score in [0, 1]"),
		field.Float("recent_accuracy").
			Comment("Accuracy over the recent window"),
		field.Float("recent_avg_time_secs").
			Comment("Average answer time over the recent window"),
		field.String("reason").
			NotEmpty().
			Comment("Human-readable explanation shown to the player"),
	}
}

func (TransitionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("decision"),
	}
}
