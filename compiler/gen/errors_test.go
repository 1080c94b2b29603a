package gen_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syssam/filterql/compiler/gen"
)

func TestConfigError(t *testing.T) {
	t.Parallel()

	t.Run("WithValue", func(t *testing.T) {
		t.Parallel()
		err := gen.NewConfigError("Workers", 0, "worker count must be positive")
		assert.Equal(t, `filterql: config error for "Workers" (value: 0): worker count must be positive`, err.Error())

		// Sentinel error
		assert.ErrorIs(t, err, gen.ErrMissingConfig)
		assert.True(t, gen.IsConfigError(err))
	})

	t.Run("WithoutValue", func(t *testing.T) {
		t.Parallel()
		err := gen.NewConfigError("Target", nil, "target directory cannot be empty")
		assert.Equal(t, `filterql: config error for "Target": target directory cannot be empty`, err.Error())
	})

	t.Run("Wrapped", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("loading options: %w", gen.NewConfigError("Cache", nil, "cache cannot be nil"))
		assert.True(t, gen.IsConfigError(err))
		assert.ErrorIs(t, err, gen.ErrMissingConfig)
	})
}

func TestSchemaError(t *testing.T) {
	t.Parallel()

	t.Run("Full", func(t *testing.T) {
		t.Parallel()
		cause := errors.New(`field "status": enum field declared without values`)
		err := gen.NewSchemaError("user", "status", "invalid field spec", cause)
		assert.Equal(t, `filterql: schema error on model user field status: invalid field spec: field "status": enum field declared without values`, err.Error())

		// Wrapped error
		assert.ErrorIs(t, err, cause)
		// Sentinel error
		assert.ErrorIs(t, err, gen.ErrInvalidSchema)
		assert.True(t, gen.IsSchemaError(err))
	})

	t.Run("ModelOnly", func(t *testing.T) {
		t.Parallel()
		err := gen.NewSchemaError("user", "", "model declares no fields", nil)
		assert.Equal(t, "filterql: schema error on model user: model declares no fields", err.Error())
	})

	t.Run("Empty", func(t *testing.T) {
		t.Parallel()
		err := gen.NewSchemaError("", "", "no models to generate", nil)
		assert.Equal(t, "filterql: schema error: no models to generate", err.Error())
	})
}

func TestGenerationError(t *testing.T) {
	t.Parallel()

	cause := errors.New("disk full")
	err := gen.NewGenerationError("model", "user/user.go", "write file", cause)
	assert.Equal(t, "filterql: generation error in phase model (file: user/user.go): write file: disk full", err.Error())

	// Wrapped error
	assert.ErrorIs(t, err, cause)
	// Sentinel error
	assert.ErrorIs(t, err, gen.ErrGenerationFailed)
	assert.True(t, gen.IsGenerationError(err))

	t.Run("PhaseOnly", func(t *testing.T) {
		t.Parallel()
		err := gen.NewGenerationError("snapshot", "", "store snapshot", nil)
		assert.Equal(t, "filterql: generation error in phase snapshot: store snapshot", err.Error())
	})
}

func TestErrorClassesAreDistinct(t *testing.T) {
	t.Parallel()
	cfgErr := gen.NewConfigError("Target", nil, "missing")
	schemaErr := gen.NewSchemaError("user", "", "bad", nil)
	genErr := gen.NewGenerationError("model", "", "failed", nil)

	assert.False(t, gen.IsSchemaError(cfgErr))
	assert.False(t, gen.IsGenerationError(cfgErr))
	assert.False(t, gen.IsConfigError(schemaErr))
	assert.False(t, gen.IsGenerationError(schemaErr))
	assert.False(t, gen.IsConfigError(genErr))
	assert.False(t, gen.IsSchemaError(genErr))

	// Non-matching error
	assert.False(t, gen.IsConfigError(errors.New("plain")))
	assert.False(t, gen.IsConfigError(nil))
}
