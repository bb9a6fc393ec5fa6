package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records session lifecycle events (start/end).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.String("player").
			Default("").
			Comment("Display name entered at setup"),
		field.Int("starting_level").
			Comment("Difficulty the session opened at"),
		field.Int("final_level").
			Default(0).
			Comment("Difficulty when the session ended (on end only)"),
		field.Int("puzzles_served").
			Default(0).
			Comment("Total puzzles answered (on end only)"),
		field.Int("correct_answers").
			Default(0).
			Comment("Total correct (on end only)"),
		field.Int("best_streak").
			Default(0).
			Comment("Longest run of correct answers (on end only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Wall-clock duration in seconds (on end only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
