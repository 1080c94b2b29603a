package gen_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/filterql/compiler/gen"
	"github.com/syssam/filterql/schema/field"
)

func generateTypes() []*gen.Type {
	return []*gen.Type{
		gen.MustType("user", userSpecs()),
		gen.MustType("order_item", []field.Spec{
			field.ID("id"),
			field.Int("quantity"),
			field.Float("unit_price"),
		}),
	}
}

func readFile(t *testing.T, dir string, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	return string(data)
}

func TestGenerate(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	g, err := gen.New(generateTypes(),
		gen.WithTarget(dir),
		gen.WithPackage("example.com/app/gen"),
	)
	require.NoError(t, err)
	require.NoError(t, g.Generate(context.Background()))

	pred := readFile(t, dir, filepath.Join("predicate", "predicate.go"))
	assert.Contains(t, pred, "package predicate")
	assert.Contains(t, pred, "type User func(*sql.Selector)")
	assert.Contains(t, pred, "type OrderItem func(*sql.Selector)")

	common := readFile(t, dir, filepath.Join("graphql", "common.graphql"))
	assert.Contains(t, common, "scalar UUID")
	assert.Contains(t, common, "type PageInfo")

	user := readFile(t, dir, filepath.Join("user", "user.go"))
	assert.Contains(t, user, "package user")
	assert.Contains(t, user, "var Model = filterql.MustModel(Label, Fields())")

	userSDL := readFile(t, dir, filepath.Join("graphql", "user.graphql"))
	assert.Contains(t, userSDL, "input UserFilter")

	item := readFile(t, dir, filepath.Join("orderitem", "orderitem.go"))
	assert.Contains(t, item, "package orderitem")
	assert.Contains(t, item, `FieldUnitPrice = "unit_price"`)

	// Predicate file, common schema, and one Go file plus one SDL file
	// per model.
	m := g.Metrics()
	assert.Equal(t, 6, m.FilesWritten)
	assert.Zero(t, m.ModelsSkipped)
	assert.Positive(t, m.TotalBytes)

	_, err = os.Stat(filepath.Join(dir, ".filterql.snapshot"))
	require.NoError(t, err)
}

func TestGenerateSkipsUnchanged(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	g, err := gen.New(generateTypes(),
		gen.WithTarget(dir),
		gen.WithPackage("example.com/app/gen"),
	)
	require.NoError(t, err)

	require.NoError(t, g.Generate(context.Background()))
	require.NoError(t, g.Generate(context.Background()))

	// The shared artifacts are rewritten every pass, the models are not.
	m := g.Metrics()
	assert.Equal(t, 2, m.FilesWritten)
	assert.Equal(t, 2, m.ModelsSkipped)
}

func TestGenerateRegeneratesDeletedOutput(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	g, err := gen.New(generateTypes(),
		gen.WithTarget(dir),
		gen.WithPackage("example.com/app/gen"),
	)
	require.NoError(t, err)
	require.NoError(t, g.Generate(context.Background()))

	target := filepath.Join(dir, "user", "user.go")
	require.NoError(t, os.Remove(target))

	require.NoError(t, g.Generate(context.Background()))

	_, err = os.Stat(target)
	require.NoError(t, err)

	m := g.Metrics()
	assert.Equal(t, 1, m.ModelsSkipped)
	assert.Equal(t, 4, m.FilesWritten)
}

func TestGenerateSharedCache(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	cache := gen.MemoryCache()

	first, err := gen.New(generateTypes(),
		gen.WithTarget(dir),
		gen.WithPackage("example.com/app/gen"),
		gen.WithCache(cache),
	)
	require.NoError(t, err)
	require.NoError(t, first.Generate(context.Background()))

	// A fresh generator over the same models and cache skips them all.
	second, err := gen.New(generateTypes(),
		gen.WithTarget(dir),
		gen.WithPackage("example.com/app/gen"),
		gen.WithCache(cache),
	)
	require.NoError(t, err)
	require.NoError(t, second.Generate(context.Background()))
	assert.Equal(t, 2, second.Metrics().ModelsSkipped)

	// Changing a model's fields invalidates its digest.
	changed, err := gen.New(
		[]*gen.Type{gen.MustType("user", append(userSpecs(), field.String("nickname")))},
		gen.WithTarget(dir),
		gen.WithPackage("example.com/app/gen"),
		gen.WithCache(cache),
	)
	require.NoError(t, err)
	require.NoError(t, changed.Generate(context.Background()))
	assert.Zero(t, changed.Metrics().ModelsSkipped)

	user := readFile(t, dir, filepath.Join("user", "user.go"))
	assert.Contains(t, user, `FieldNickname = "nickname"`)
}

func TestNewErrors(t *testing.T) {
	t.Parallel()

	t.Run("NoTypes", func(t *testing.T) {
		t.Parallel()
		_, err := gen.New(nil)
		require.Error(t, err)
		assert.True(t, gen.IsSchemaError(err))
		assert.Contains(t, err.Error(), "no models to generate")
	})

	t.Run("NilType", func(t *testing.T) {
		t.Parallel()
		_, err := gen.New([]*gen.Type{nil})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "nil model type")
	})

	t.Run("Duplicate", func(t *testing.T) {
		t.Parallel()
		_, err := gen.New([]*gen.Type{
			gen.MustType("user", userSpecs()),
			gen.MustType("user", userSpecs()),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "model declared more than once")
	})

	t.Run("BadOption", func(t *testing.T) {
		t.Parallel()
		_, err := gen.New(generateTypes(), gen.WithWorkers(0))
		require.Error(t, err)
		assert.True(t, gen.IsConfigError(err))
	})
}

func TestGenerateConfigErrors(t *testing.T) {
	t.Parallel()

	t.Run("MissingTarget", func(t *testing.T) {
		t.Parallel()
		g, err := gen.New(generateTypes(), gen.WithPackage("example.com/app/gen"))
		require.NoError(t, err)
		err = g.Generate(context.Background())
		require.Error(t, err)
		assert.True(t, gen.IsConfigError(err))
		assert.Contains(t, err.Error(), "target directory required")
	})

	t.Run("MissingPackage", func(t *testing.T) {
		t.Parallel()
		g, err := gen.New(generateTypes(), gen.WithTarget(t.TempDir()))
		require.NoError(t, err)
		err = g.Generate(context.Background())
		require.Error(t, err)
		assert.True(t, gen.IsConfigError(err))
		assert.Contains(t, err.Error(), "package import path required")
	})
}

func TestGenerateCanceled(t *testing.T) {
	t.Parallel()
	g, err := gen.New(generateTypes(),
		gen.WithTarget(t.TempDir()),
		gen.WithPackage("example.com/app/gen"),
	)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = g.Generate(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerateSingleWorker(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	g, err := gen.New(generateTypes(),
		gen.WithTarget(dir),
		gen.WithPackage("example.com/app/gen"),
		gen.WithWorkers(1),
	)
	require.NoError(t, err)
	require.NoError(t, g.Generate(context.Background()))
	assert.Equal(t, 6, g.Metrics().FilesWritten)
}
