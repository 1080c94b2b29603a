// Package graphql integrates filterql code generation with gqlgen.
//
// The filterql generator emits SDL and Go packages on its own; this
// package wires that output into a gqlgen project. It provides:
//   - Scalar implementations for the emitted Date, DateTime, UUID and
//     JSON scalars.
//   - Per-field Annotation overrides (skip, operator subset, alias)
//     applied to the gqlgen-facing schema.
//   - GQLGenConfig for reading and updating gqlgen.yml with the scalar
//     bindings and schema path.
//   - Extension, orchestrating generate, annotate and bind as one step.
//
// # Usage
//
// Add the extension to your generate.go:
//
//	//go:build ignore
//
//	package main
//
//	import (
//	    "context"
//	    "log"
//
//	    "github.com/syssam/filterql/compiler/gen"
//	    "github.com/syssam/filterql/contrib/graphql"
//	)
//
//	func main() {
//	    ex, err := graphql.NewExtension(
//	        graphql.WithManifest("./models.yaml"),
//	        graphql.WithSchemaPath("./gen/graphql/schema.graphql"),
//	        graphql.WithConfigPath("./gqlgen.yml"),
//	        graphql.WithGeneratorOptions(
//	            gen.WithTarget("./gen"),
//	            gen.WithPackage("example.com/app/gen"),
//	        ),
//	    )
//	    if err != nil {
//	        log.Fatalf("creating graphql extension: %v", err)
//	    }
//	    if err := ex.Generate(context.Background()); err != nil {
//	        log.Fatalf("running filterql codegen: %v", err)
//	    }
//	}
//
// # Annotations
//
// Annotations trim or rename fields on the gqlgen-facing schema without
// touching the generated Go packages:
//
//	ex, err := graphql.NewExtension(
//	    graphql.WithModels(userType),
//	    graphql.WithAnnotations("user", map[string]graphql.Annotation{
//	        "password_hash": graphql.Skip(),
//	        "email":         graphql.Ops(filterql.OpEQ, filterql.OpIn),
//	        "uid":           graphql.Alias("externalId"),
//	    }),
//	)
//
// Skipped fields stay queryable through the runtime API; the annotation
// only removes them from the schema served to clients.
package graphql
