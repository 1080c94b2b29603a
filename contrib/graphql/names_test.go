package graphql_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syssam/filterql/contrib/graphql"
)

func TestSchemaNames(t *testing.T) {
	n := graphql.SchemaNames("order_item")
	assert.Equal(t, "OrderItem", n.Type)
	assert.Equal(t, "OrderItemFields", n.Fields)
	assert.Equal(t, "OrderItemResults", n.Results)
	assert.Equal(t, "OrderItemFilter", n.Filter)
	assert.Equal(t, "orderItems", n.List)
}
