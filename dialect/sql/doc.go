// Package sql provides SQL query building primitives and a thin driver
// around database/sql.
//
// The package renders statements for PostgreSQL, MySQL and SQLite with
// the right identifier quoting and placeholder style per dialect, and
// backs the filter runtime: translated filter maps compile into the
// predicates defined here.
//
// # Builder Types
//
// The package provides specialized builders for different SQL operations:
//
//   - Builder: low-level SQL string builder with identifier quoting
//   - Selector: SELECT query builder with joins, predicates, and pagination
//   - InsertBuilder: INSERT statement builder with RETURNING support
//   - UpdateBuilder: UPDATE statement builder with SET and WHERE clauses
//   - DeleteBuilder: DELETE statement builder with WHERE predicates
//
// # Dialect Support
//
// SQL generation adapts to the configured dialect:
//
//	import "github.com/syssam/filterql/dialect"
//
//	// PostgreSQL: "status" = $1
//	sql.Dialect(dialect.Postgres).
//	    Select("id", "name").
//	    From(sql.Table("products")).
//	    Where(sql.EQ("status", "active"))
//
//	// MySQL and SQLite: `status` = ?
//	sql.Dialect(dialect.MySQL).Select("id").From(sql.Table("products"))
//
// # Predicates
//
// Predicates are lazily rendered and composable:
//
//	// Equality
//	sql.EQ("name", "mug")            // name = 'mug'
//	sql.NEQ("status", "archived")    // status <> 'archived'
//
//	// Comparison
//	sql.GT("stock", 0)               // stock > 0
//	sql.LTE("price", 100.0)          // price <= 100.0
//
//	// String matching
//	sql.Contains("name", "mug")      // name LIKE '%mug%'
//	sql.HasPrefix("sku", "CAT-")     // sku LIKE 'CAT-%'
//
//	// NULL checks
//	sql.IsNull("discontinued_at")    // discontinued_at IS NULL
//	sql.NotNull("published_at")      // published_at IS NOT NULL
//
//	// Membership
//	sql.In("status", "active", "pending")  // status IN ('active', 'pending')
//	sql.In("status")                       // FALSE (empty list matches nothing)
//
//	// Composition
//	sql.And(sql.EQ("status", "active"), sql.Or(sql.GT("stock", 0), sql.EQ("backorder", true)))
//
// # Joins
//
// Join operations are supported through the selector:
//
//	products := sql.Table("products").As("p")
//	reviews := sql.Table("reviews").As("r")
//	sql.Select("p.id", "p.name", "r.rating").
//	    From(products).
//	    Join(reviews).On(products.C("id"), reviews.C("product_id")).
//	    Where(sql.GT("r.rating", 3))
//
// # Execution
//
// Open wraps database/sql and executes built statements:
//
//	drv, err := sql.Open(dialect.Postgres, dsn)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	query, args := sel.Query()
//	rows := &sql.Rows{}
//	if err := drv.Query(ctx, query, args, rows); err != nil {
//	    log.Fatal(err)
//	}
//	defer rows.Close()
//
// Drivers can be wrapped for observability, see NewStatsDriver and
// NewDebugDriver.
package sql
