package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records a single answered puzzle within a session.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("question").
			NotEmpty().
			Comment("The puzzle shown, e.g. 7 × 8"),
		field.Int("correct_answer").
			Comment("The expected result"),
		field.Int("user_answer").
			Comment("What the player entered"),
		field.Bool("correct").
			Comment("Whether the answer matched"),
		field.Int("time_ms").
			Comment("Milliseconds to answer"),
		field.Int("difficulty").
			Comment("Difficulty the puzzle was dealt at, 1 through 4"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("difficulty"),
		index.Fields("correct"),
	}
}
