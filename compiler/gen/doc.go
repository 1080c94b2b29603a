// Package gen emits the schema artifacts of compiled filter models: a
// GraphQL document per model (custom fields type, results wrapper and
// filter input) plus a Go package per model with column constants, the
// spec table and typed predicate helpers.
//
// # Pipeline
//
// Generation follows this flow:
//
//	[]field.Spec (hand-written, loaded from models.yaml, or inspected)
//	        ↓
//	   Type (compiled model + naming)
//	        ↓
//	   Generator (SDL via gqlparser, Go via jennifer)
//	        ↓
//	   Writer (goimports formatting, metrics)
//
// # Call Styles
//
// As an explicit generation pass the package writes files:
//
//	t := gen.MustType("user", []field.Spec{
//		field.ID("id"),
//		field.Int("age"),
//		field.String("email"),
//	})
//	g, err := gen.New([]*gen.Type{t},
//		gen.WithTarget("./internal/gen"),
//		gen.WithPackage("github.com/org/app/internal/gen"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := g.Generate(ctx); err != nil {
//		log.Fatal(err)
//	}
//
// As a runtime schema builder it produces SDL in-process, typically once
// at startup, without touching the filesystem:
//
//	g, _ := gen.New([]*gen.Type{t})
//	sdl := g.SDL()
//
// # Error Handling
//
// The package uses structured error types:
//
//   - ConfigError: option validation errors
//   - SchemaError: model definition errors
//   - GenerationError: artifact build or write errors
//
// Each pairs with a sentinel, so callers can branch with errors.Is or
// the IsConfigError/IsSchemaError/IsGenerationError helpers.
//
// # Generated Output
//
// Generate produces the following structure under the target directory:
//
//	{target}/
//	├── predicate/
//	│   └── predicate.go    // predicate type per model
//	├── graphql/
//	│   ├── common.graphql  // shared scalars, PageInfo, PageInput
//	│   └── {model}.graphql // fields type, results wrapper, filter input
//	└── {model}/
//	    └── {model}.go      // column constants, Fields(), typed predicates
//
// Regeneration skips models whose digest matches the previous run's
// snapshot; see Cache.
package gen
