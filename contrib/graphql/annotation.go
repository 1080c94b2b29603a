package graphql

import (
	filterql "github.com/syssam/filterql"
)

// AnnotationName is the name under which filterql annotations travel.
const AnnotationName = "filterql"

// Annotation overrides how one field appears on the gqlgen-facing
// schema. Overrides never change the generated Go packages or the
// runtime filter semantics; they trim and rename the schema served to
// clients.
//
// Can be used with functional constructors or struct literals:
//
//	// Functional style
//	graphql.Skip()
//	graphql.Ops(filterql.OpEQ, filterql.OpIn)
//
//	// Struct literal style
//	graphql.Annotation{Alias: "externalId"}
type Annotation struct {
	// Skip removes the field from the fields type and every one of its
	// filter input entries.
	Skip bool

	// Ops restricts the filter input to a subset of the field's
	// operators. Zero with HasOps set removes every entry.
	Ops filterql.OpSet

	// HasOps tracks whether Ops was explicitly set.
	HasOps bool

	// Alias renames the field on the fields type. Filter input keys are
	// runtime contract and keep the declared name.
	Alias string
}

// Name returns the annotation name.
func (a Annotation) Name() string {
	return AnnotationName
}

// Merge combines two annotations: skip flags accumulate, operator sets
// and aliases use the last explicit value.
func (a Annotation) Merge(other Annotation) Annotation {
	if other.Skip {
		a.Skip = true
	}
	if other.HasOps {
		a.Ops = other.Ops
		a.HasOps = true
	}
	if other.Alias != "" {
		a.Alias = other.Alias
	}
	return a
}

// MergeAnnotations combines multiple annotations into one.
func MergeAnnotations(annotations ...Annotation) Annotation {
	var result Annotation
	for _, a := range annotations {
		result = result.Merge(a)
	}
	return result
}

// Skip returns an annotation removing the field from the schema.
//
// Example:
//
//	graphql.Skip()
func Skip() Annotation {
	return Annotation{Skip: true}
}

// Ops returns an annotation restricting the field's filter input
// entries to the given operators.
//
// Example:
//
//	graphql.Ops(filterql.OpEQ, filterql.OpNEQ, filterql.OpIn)
func Ops(ops ...filterql.Op) Annotation {
	var set filterql.OpSet
	for _, op := range ops {
		set |= op.Bit()
	}
	return Annotation{Ops: set, HasOps: true}
}

// Alias returns an annotation renaming the field on the fields type.
//
// Example:
//
//	graphql.Alias("externalId")
func Alias(name string) Annotation {
	return Annotation{Alias: name}
}
