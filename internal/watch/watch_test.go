package watch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tokensmith/internal/document"
	"github.com/alexisbeaulieu97/tokensmith/internal/export"
	"github.com/alexisbeaulieu97/tokensmith/internal/strategy"
	"github.com/alexisbeaulieu97/tokensmith/internal/tokens"
)

const waitTimeout = 5 * time.Second

func writeGraph(t *testing.T, path string, g tokens.Graph) {
	t.Helper()
	require.NoError(t, document.Save(path, g))
}

func waitFor(t *testing.T, ch <-chan tokens.Graph) tokens.Graph {
	t.Helper()
	select {
	case g := <-ch:
		return g
	case <-time.After(waitTimeout):
		t.Fatal("timeout waiting for handler")
		return tokens.Graph{}
	}
}

func startWatch(t *testing.T, path string) (<-chan tokens.Graph, func() error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	seen := make(chan tokens.Graph, 8)
	done := make(chan error, 1)

	go func() {
		done <- Watch(ctx, Options{Path: path, Debounce: 20 * time.Millisecond}, func(_ context.Context, g tokens.Graph) error {
			seen <- g
			return nil
		})
	}()

	stop := func() error {
		cancel()
		select {
		case err := <-done:
			return err
		case <-time.After(waitTimeout):
			t.Fatal("watch did not stop")
			return nil
		}
	}
	t.Cleanup(func() { cancel() })
	return seen, stop
}

func TestWatchRunsOnStartAndOnChange(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tokens.json")
	writeGraph(t, path, tokens.Default())

	seen, stop := startWatch(t, path)
	require.Equal(t, tokens.Default(), waitFor(t, seen))

	updated := tokens.Default()
	updated.Colors.Primary = "#1D4ED8"
	writeGraph(t, path, updated)

	require.Eventually(t, func() bool {
		select {
		case g := <-seen:
			return g.Colors.Primary == "#1D4ED8"
		default:
			return false
		}
	}, waitTimeout, 10*time.Millisecond)

	require.NoError(t, stop())
}

func TestWatchSkipsInvalidDocuments(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tokens.yaml")
	writeGraph(t, path, tokens.Default())

	seen, stop := startWatch(t, path)
	waitFor(t, seen)

	require.NoError(t, os.WriteFile(path, []byte("colors: [broken"), 0o644))
	time.Sleep(200 * time.Millisecond)
	require.Empty(t, seen)

	updated := tokens.Default()
	updated.Typography.BaseSize = 18
	writeGraph(t, path, updated)
	require.Eventually(t, func() bool {
		select {
		case g := <-seen:
			return g.Typography.BaseSize == 18
		default:
			return false
		}
	}, waitTimeout, 10*time.Millisecond)

	require.NoError(t, stop())
}

func TestWatchRejectsMissingAndDirectoryPaths(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	noop := func(context.Context, tokens.Graph) error { return nil }

	err := Watch(context.Background(), Options{Path: filepath.Join(dir, "missing.json")}, noop)
	require.Error(t, err)

	err = Watch(context.Background(), Options{Path: dir}, noop)
	require.ErrorIs(t, err, ErrNotRegularFile)
}

func TestExportToWritesOutput(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "dist", "tokens.css")
	h := ExportTo(export.FormatCSS, out, strategy.NewBlueprint(strategy.DefaultContext()), nil)

	require.NoError(t, h(context.Background(), tokens.Default()))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), ":root {"))
}
