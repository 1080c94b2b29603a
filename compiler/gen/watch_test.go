package gen_test

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/filterql/compiler/gen"
)

func TestWatch(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	var runs atomic.Int64
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- gen.Watch(ctx, dir, 20*time.Millisecond, func(context.Context) error {
			runs.Add(1)
			return nil
		})
	}()

	// Give the watcher time to register before touching the directory.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "models.yaml"), []byte("models: []\n"), 0o644))

	require.Eventually(t, func() bool {
		return runs.Load() >= 1
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestWatchDebounce(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	var runs atomic.Int64
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- gen.Watch(ctx, dir, 150*time.Millisecond, func(context.Context) error {
			runs.Add(1)
			return nil
		})
	}()

	time.Sleep(100 * time.Millisecond)
	// A burst of writes inside the window collapses into one run.
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "models.yaml"), []byte("models: []\n"), 0o644))
		time.Sleep(10 * time.Millisecond)
	}

	require.Eventually(t, func() bool {
		return runs.Load() >= 1
	}, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, int64(1), runs.Load())

	cancel()
	<-done
}

func TestWatchRegenerationFailureKeepsWatching(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	var runs atomic.Int64
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- gen.Watch(ctx, dir, 20*time.Millisecond, func(context.Context) error {
			runs.Add(1)
			return assert.AnError
		})
	}()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte("a"), 0o644))
	require.Eventually(t, func() bool {
		return runs.Load() >= 1
	}, 5*time.Second, 10*time.Millisecond)

	// A failed regeneration must not tear the watch down.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yaml"), []byte("b"), 0o644))
	require.Eventually(t, func() bool {
		return runs.Load() >= 2
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	err := <-done
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWatchArgumentErrors(t *testing.T) {
	t.Parallel()

	t.Run("NilFn", func(t *testing.T) {
		t.Parallel()
		err := gen.Watch(context.Background(), t.TempDir(), 0, nil)
		require.Error(t, err)
		assert.True(t, gen.IsConfigError(err))
	})

	t.Run("MissingDir", func(t *testing.T) {
		t.Parallel()
		missing := filepath.Join(t.TempDir(), "does-not-exist")
		err := gen.Watch(context.Background(), missing, 0, func(context.Context) error { return nil })
		require.Error(t, err)
		assert.True(t, gen.IsGenerationError(err))
	})
}
