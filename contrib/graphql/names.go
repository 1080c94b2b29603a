package graphql

import (
	"github.com/syssam/filterql/compiler/gen"
)

// SchemaNames reports the GraphQL type names generated for a model
// base name. Use it to address generated definitions from schema hooks
// or resolver code.
//
//	n := graphql.SchemaNames("order_item")
//	// n.Fields == "OrderItemFields"
//	// n.Results == "OrderItemResults"
//	// n.Filter == "OrderItemFilter"
//	// n.List == "orderItems"
func SchemaNames(base string) gen.Names {
	return gen.NamesOf(base)
}
