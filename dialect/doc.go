// Package dialect defines the database abstraction used by filterql:
// the dialect name constants and the Driver, Tx and ExecQuerier
// interfaces implemented by dialect/sql.
//
// # Supported Dialects
//
// Each supported flavor is identified by a constant string:
//
//	dialect.Postgres = "postgres"
//	dialect.MySQL    = "mysql"
//	dialect.SQLite   = "sqlite"
//
// # Usage
//
// Opening a database connection:
//
//	import (
//	    "github.com/syssam/filterql/dialect"
//	    "github.com/syssam/filterql/dialect/sql"
//	)
//
//	drv, err := sql.Open(dialect.Postgres, "postgres://...")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer drv.Close()
//
// # Sub-packages
//
//   - dialect/sql: query builders, predicates and the driver implementation
//   - dialect/sql/schema: table introspection into field specs
package dialect
