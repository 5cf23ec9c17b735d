package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User is a staff account of the treatment center. Authentication is by
// username and password; the role is the coarse authority level.
type User struct {
	ent.Schema
}

func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("username").
			Unique().
			NotEmpty().
			MaxLen(100),

		field.String("password_hash").
			NotEmpty().
			Sensitive(),

		field.String("email").
			Optional().
			Nillable().
			Unique().
			MaxLen(255).
			Comment("Used for account lifecycle notifications when present"),

		field.Enum("role").
			Values("admin", "user").
			Default("user"),

		field.Enum("status").
			Values("ACTIVE", "SUSPENDED").
			Default("ACTIVE"),

		// audit
		field.Time("last_login_at").
			Optional().
			Nillable(),

		field.Int("failed_login_attempts").
			Default(0).
			NonNegative(),

		field.Time("locked_until").
			Optional().
			Nillable().
			Comment("Account locked until this time after repeated login failures"),

		field.Time("last_failed_login_at").
			Optional().
			Nillable(),
	}
}

func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("username"),
	}
}

func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("permission_profile", PermissionProfile.Type).
			Unique(),
		edge.To("access_grants", PatientAccessGrant.Type),
		edge.To("attributions", PatientAttribution.Type),
		edge.To("created_patients", Patient.Type),
	}
}
