package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ResponseEvent records a single scored response within an assessment
// session, including the estimate it produced. The per-response
// theta/SE trail is what powers the history charts.
type ResponseEvent struct {
	ent.Schema
}

func (ResponseEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ResponseEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Assessment session UUID"),
		field.String("item_id").
			NotEmpty().
			Comment("Administered item"),
		field.Bool("correct").
			Comment("Scored response"),
		field.Int("latency_ms").
			Default(0).
			Comment("Milliseconds to answer; informational only"),
		field.Float("difficulty").
			Comment("Item b parameter at administration time"),
		field.Float("discrimination").
			Comment("Item a parameter at administration time"),
		field.Float("theta_after").
			Comment("Ability estimate after this response"),
		field.Float("se_after").
			Comment("Standard error after this response"),
	}
}

func (ResponseEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("item_id"),
		index.Fields("correct"),
	}
}
