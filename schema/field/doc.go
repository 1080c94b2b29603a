// Package field declares the closed type-tag system and the field
// specifications filterql models are built from.
//
// A model is an ordered list of specs, one per filterable attribute:
//
//	specs := []field.Spec{
//	    field.ID("id"),
//	    field.Int("age"),
//	    field.String("email"),
//	    field.Bool("verified"),
//	    field.DateTime("created_at"),
//	    field.Enum("status").Values("pending", "active", "archived"),
//	}
//
// # Type Tags
//
// Every spec carries exactly one tag out of a closed set:
//
//	id, integer, float, string, boolean, date, datetime, uuid, json, enum
//
// The tag decides three things downstream:
//
//   - how raw filter values are coerced before predicates are built,
//   - which comparison operators the generated filter input exposes
//     (booleans lose the ordering operators, json fields are dropped),
//   - which GraphQL type the schema generator emits for the field.
//
// # Name Conventions
//
// Spec names are snake_case and double as column names for predicates.
// Underscores are significant: the filter-key parser strips only the
// trailing operator suffix, so "first_name" round-trips through keys
// like "first_name_eq" untouched.
package field
