// Package mixin provides reusable field groups for model definitions.
//
// A mixin is a function returning fresh field specs, so definitions
// splice shared attributes into their own list without aliasing:
//
//	type Order struct{ filterql.Schema }
//
//	func (Order) Name() string { return "order" }
//
//	func (Order) Fields() []field.Spec {
//	    return slices.Concat(
//	        mixin.UUIDPrimary(),
//	        []field.Spec{
//	            field.Float("total"),
//	            field.Enum("status").Values("open", "paid"),
//	        },
//	        mixin.Timestamps(),
//	    )
//	}
//
// Project-specific groups are plain functions in the same shape:
//
//	func Audit() []field.Spec {
//	    return []field.Spec{
//	        field.String("created_by"),
//	        field.String("updated_by"),
//	    }
//	}
package mixin

import (
	"github.com/syssam/filterql/schema/field"
)

// CreateTime adds a created_at datetime field.
func CreateTime() []field.Spec {
	return []field.Spec{
		field.DateTime("created_at"),
	}
}

// UpdateTime adds an updated_at datetime field.
func UpdateTime() []field.Spec {
	return []field.Spec{
		field.DateTime("updated_at"),
	}
}

// Timestamps combines CreateTime and UpdateTime. This is the common
// group for tracking model lifecycles.
func Timestamps() []field.Spec {
	return append(CreateTime(), UpdateTime()...)
}

// UUIDPrimary adds a uuid id field.
func UUIDPrimary() []field.Spec {
	return []field.Spec{
		field.UUID("id"),
	}
}

// SoftDelete adds a deleted_at datetime field. Rows carry a deletion
// timestamp instead of disappearing, so filters like deleted_at_nil
// select the live ones.
func SoftDelete() []field.Spec {
	return []field.Spec{
		field.DateTime("deleted_at"),
	}
}

// TenantID adds a tenant_id string field for multi-tenant models.
func TenantID() []field.Spec {
	return []field.Spec{
		field.String("tenant_id"),
	}
}
