package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Patient is a dialysis patient record.
type Patient struct {
	ent.Schema
}

func (Patient) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Patient) Fields() []ent.Field {
	return []ent.Field{
		field.String("full_name").
			NotEmpty().
			MaxLen(255),

		// CIN, AES-256-GCM encrypted at rest; the hash allows exact look-up
		// without decrypting.
		field.String("national_id").
			Optional().
			Nillable().
			Sensitive(),

		field.String("national_id_hash").
			Optional().
			Nillable().
			MaxLen(64),

		field.String("insurance_no").
			Optional().
			Nillable().
			MaxLen(50).
			Comment("CNSS insurance number"),

		field.Time("birth_date").
			Optional().
			Nillable(),

		field.Enum("sex").
			Values("M", "F").
			Optional().
			Nillable(),

		field.Enum("blood_group").
			NamedValues(
				"APos", "A+",
				"ANeg", "A-",
				"BPos", "B+",
				"BNeg", "B-",
				"ABPos", "AB+",
				"ABNeg", "AB-",
				"OPos", "O+",
				"ONeg", "O-",
			).
			Optional().
			Nillable(),

		field.String("phone").
			Optional().
			Nillable().
			MaxLen(20),

		field.String("emergency_phone").
			Optional().
			Nillable().
			MaxLen(20),

		field.Text("address").
			Optional().
			Nillable(),

		field.String("profession").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("marital_status").
			Optional().
			Nillable().
			MaxLen(50),

		field.Enum("type").
			Values("permanent", "vacationer", "transferred", "deceased", "transplanted").
			Default("permanent"),

		field.UUID("created_by", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("FK → users.id (creating account)"),
	}
}

func (Patient) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("creator", User.Type).
			Ref("created_patients").
			Unique().
			Field("created_by"),
		edge.To("access_grants", PatientAccessGrant.Type),
		edge.To("attributions", PatientAttribution.Type),
	}
}

func (Patient) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("type"),
		index.Fields("full_name"),
		index.Fields("created_by"),
	}
}
