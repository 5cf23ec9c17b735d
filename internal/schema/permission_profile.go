package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// PermissionProfile is the coarse capability profile of a non-admin user.
// At most one row per user; an absent row means a viewer with no blanket
// visibility. The permission_type selects which flag is meaningful:
// viewers use can_view_all_patients, creators use can_create_new_patients.
type PermissionProfile struct {
	ent.Schema
}

func (PermissionProfile) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (PermissionProfile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Unique().
			Comment("FK → users.id"),

		field.Enum("permission_type").
			Values("viewer", "creator").
			Default("viewer"),

		field.Bool("can_view_all_patients").
			Default(false),

		field.Bool("can_create_new_patients").
			Default(false),
	}
}

func (PermissionProfile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id").Unique(),
	}
}

func (PermissionProfile) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("permission_profile").
			Unique().
			Required().
			Field("user_id"),
	}
}
