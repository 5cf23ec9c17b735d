package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// PatientAccessGrant gives a viewer-type user access to one patient record.
// Grants only widen visibility; can_edit is recorded by the admin console
// but edit decisions go through the creator-session rule.
type PatientAccessGrant struct {
	ent.Schema
}

func (PatientAccessGrant) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (PatientAccessGrant) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Comment("FK → users.id (grantee)"),

		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patients.id"),

		field.UUID("granted_by", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → users.id (admin who granted)"),

		field.Bool("can_view").
			Default(true),

		field.Bool("can_edit").
			Default(false),
	}
}

func (PatientAccessGrant) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "patient_id").Unique(),
		index.Fields("user_id"),
		index.Fields("patient_id"),
	}
}

func (PatientAccessGrant) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("access_grants").
			Unique().
			Required().
			Field("user_id"),
		edge.From("patient", Patient.Type).
			Ref("access_grants").
			Unique().
			Required().
			Field("patient_id"),
	}
}
