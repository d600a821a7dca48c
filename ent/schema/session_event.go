package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records assessment session lifecycle changes
// (started, completed, aborted) with the final estimate on terminal
// events.
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
			Comment("Assessment session UUID"),
		field.String("action").
			NotEmpty().
			Comment("started, completed, or aborted"),
		field.Int("items_served").
			Default(0).
			Comment("Observations recorded when the event fired"),
		field.Int("correct_count").
			Default(0).
			Comment("Correct responses when the event fired"),
		field.Float("theta").
			Default(0).
			Comment("Ability estimate when the event fired"),
		field.Float("standard_error").
			Default(0).
			Comment("Standard error of the estimate"),
		field.String("level").
			Default("").
			Comment("Proficiency bucket on terminal events"),
		field.String("stop_reason").
			Default("").
			Comment("max_items, precision, pool_exhausted, or aborted"),
		field.Int("duration_secs").
			Default(0).
			Comment("Session length on terminal events"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
