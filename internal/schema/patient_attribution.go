package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// PatientAttribution records that a user created a patient during a given
// login session. A creator may edit a patient only while the session that
// created it is still the active one.
type PatientAttribution struct {
	ent.Schema
}

func (PatientAttribution) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (PatientAttribution) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Comment("FK → users.id (creator)"),

		field.String("session_id").
			NotEmpty().
			MaxLen(36).
			Immutable().
			Comment("Session id active when the patient was created"),

		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patients.id"),
	}
}

func (PatientAttribution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "session_id", "patient_id").Unique(),
		index.Fields("user_id", "session_id"),
		index.Fields("patient_id"),
	}
}

func (PatientAttribution) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("attributions").
			Unique().
			Required().
			Field("user_id"),
		edge.From("patient", Patient.Type).
			Ref("attributions").
			Unique().
			Required().
			Field("patient_id"),
	}
}
