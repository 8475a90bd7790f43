package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tokensmith/internal/config"
	"github.com/alexisbeaulieu97/tokensmith/internal/darkmode"
	"github.com/alexisbeaulieu97/tokensmith/internal/document"
	"github.com/alexisbeaulieu97/tokensmith/internal/suggest"
	"github.com/alexisbeaulieu97/tokensmith/internal/tokens"
	tserrors "github.com/alexisbeaulieu97/tokensmith/pkg/errors"
)

// executeCommand runs the root command with a config path that does not
// exist, so every run starts from the default configuration.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return executeCommandContext(t, context.Background(), args...)
}

func executeCommandContext(t *testing.T, ctx context.Context, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetIn(strings.NewReader(""))

	full := append([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}, args...)
	root.SetArgs(full)

	err := root.ExecuteContext(ctx)
	return stdout.String(), stderr.String(), err
}

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion := version
	originalCommit := commit
	originalDate := date
	t.Cleanup(func() {
		version = originalVersion
		commit = originalCommit
		date = originalDate
	})

	version = "1.2.3"
	commit = "abcdef1"
	date = "2026-10-03"

	stdout, _, err := executeCommand(t, "version")
	require.NoError(t, err)
	require.Contains(t, stdout, "tokensmith 1.2.3")
	require.Contains(t, stdout, "abcdef1")
	require.Contains(t, stdout, "2026-10-03")
}

func TestInitWritesDefaultsAndRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.yaml")

	stdout, _, err := executeCommand(t, "init", path)
	require.NoError(t, err)
	require.Contains(t, stdout, "Wrote "+path)

	g, err := document.Load(path)
	require.NoError(t, err)
	require.Equal(t, tokens.Default(), g)

	_, _, err = executeCommand(t, "init", path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Pass --force")

	_, _, err = executeCommand(t, "init", path, "--force", "--sync-dark")
	require.NoError(t, err)
}

func TestInitRejectsUnknownExtension(t *testing.T) {
	_, _, err := executeCommand(t, "init", filepath.Join(t.TempDir(), "tokens.toml"))
	require.Error(t, err)
	var serialErr *tserrors.SerializationError
	require.True(t, errors.As(err, &serialErr))
}

func TestAuditDefaultTokens(t *testing.T) {
	stdout, _, err := executeCommand(t, "audit")
	require.NoError(t, err)
	require.Contains(t, stdout, "White on primary")
	require.Contains(t, stdout, "75/100")
	require.NotContains(t, stdout, "Light theme")

	stdout, _, err = executeCommand(t, "audit", "--preview")
	require.NoError(t, err)
	require.Contains(t, stdout, "Light theme")
	require.Contains(t, stdout, "Get started")
}

func TestAuditJSONAndMinScore(t *testing.T) {
	stdout, _, err := executeCommand(t, "audit", "--json")
	require.NoError(t, err)

	var out auditOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	require.Equal(t, 75, out.Score)
	require.Equal(t, 3, out.Passing)

	_, _, err = executeCommand(t, "audit", "--min-score", "100")
	require.Error(t, err)
	require.Contains(t, err.Error(), "score 75 is below 100")
}

func TestAuditReportsFieldOfBadDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"colors": {"primary": "#3B82F6"}}`), 0o644))

	_, _, err := executeCommand(t, "audit", path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Failed to load tokens")
	require.Contains(t, err.Error(), "Field: ")
}

func TestDarkColorAndFile(t *testing.T) {
	stdout, _, err := executeCommand(t, "dark", "--color", "#FFFFFF", "--role", "text")
	require.NoError(t, err)
	require.Regexp(t, `^#[0-9A-F]{6}\n$`, stdout)

	_, _, err = executeCommand(t, "dark", "--color", "#FFFFFF", "--role", "accent")
	require.Error(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "tokens.json")
	require.NoError(t, document.Save(path, tokens.Default()))

	out := filepath.Join(dir, "dark.json")
	stdout, _, err = executeCommand(t, "dark", path, "--out", out)
	require.NoError(t, err)
	require.Contains(t, stdout, "canvas")

	g, err := document.Load(out)
	require.NoError(t, err)
	wantCanvas, err := darkmode.CounterpartHex(tokens.Default().Colors.Light.Canvas, darkmode.Background)
	require.NoError(t, err)
	require.Equal(t, wantCanvas, g.Colors.Dark.Canvas)
	require.Equal(t, tokens.Default().Colors.Light, g.Colors.Light)

	_, _, err = executeCommand(t, "dark")
	require.Error(t, err)
}

func TestScaleCommand(t *testing.T) {
	stdout, _, err := executeCommand(t, "scale")
	require.NoError(t, err)
	require.Contains(t, stdout, "Major Third")
	require.Contains(t, stdout, "49px")

	stdout, _, err = executeCommand(t, "scale", "--base", "16", "--ratio", "golden-ratio", "--json")
	require.NoError(t, err)
	var out struct {
		Ratio float64 `json:"ratio"`
		Px    []int   `json:"px"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	require.InDelta(t, 1.618, out.Ratio, 1e-9)
	require.Len(t, out.Px, 6)
	require.Equal(t, 16, out.Px[0])

	_, _, err = executeCommand(t, "scale", "--ratio", "0.9")
	require.Error(t, err)
	_, _, err = executeCommand(t, "scale", "--ratio", "tiny")
	require.Error(t, err)
}

func TestResolveCommand(t *testing.T) {
	stdout, _, err := executeCommand(t, "resolve", "--business", "portfolio", "--vibe", "friendly", "--goal", "awareness")
	require.NoError(t, err)
	require.Contains(t, stdout, "Visual Showcase")
	require.Contains(t, stdout, "/work")

	_, _, err = executeCommand(t, "resolve", "--business", "bakery")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Field: businessType")
}

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()

	stdout, _, err := executeCommand(t, "export", "--format", "css")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(stdout, ":root {"))

	out := filepath.Join(dir, "tailwind.config.js")
	_, _, err = executeCommand(t, "export", "--format", "tailwind", "--out", out)
	require.NoError(t, err)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(data), "module.exports")

	stdout, _, err = executeCommand(t, "export", "--format", "brief", "--include-page", "blog", "--exclude-page", "docs")
	require.NoError(t, err)
	require.Contains(t, stdout, "/blog (Blog)")
	require.NotContains(t, stdout, "/docs (Documentation)")

	_, _, err = executeCommand(t, "export", "--format", "tailwind", "--out", out, "--check")
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(out, []byte("module.exports = {}\n"), 0o644))
	stdout, _, err = executeCommand(t, "export", "--format", "tailwind", "--out", out, "--check")
	require.Error(t, err)
	require.Contains(t, err.Error(), "export is stale")
	require.Contains(t, stdout, "-module.exports = {}")

	_, _, err = executeCommand(t, "export", "--format", "pdf")
	require.Error(t, err)

	_, _, err = executeCommand(t, "export", "--format", "brief", "--include-page", "nope")
	require.Error(t, err)
}

func TestSitemapNonInteractiveWritesBrief(t *testing.T) {
	brief := filepath.Join(t.TempDir(), "brief.md")

	stdout, _, err := executeCommand(t, "sitemap", "--business", "service", "--exclude-page", "reviews", "--brief", brief)
	require.NoError(t, err)
	require.Contains(t, stdout, "/book")

	data, err := os.ReadFile(brief)
	require.NoError(t, err)
	require.Contains(t, string(data), "# Project Blueprint: SERVICE")
	require.NotContains(t, string(data), "/reviews")
}

type fakeSuggester struct {
	suggestion suggest.Suggestion
}

func (f fakeSuggester) Suggest(context.Context, string, tokens.Graph) (suggest.Suggestion, error) {
	return f.suggestion, nil
}

func TestSuggestMergesValidFields(t *testing.T) {
	original := newSuggester
	t.Cleanup(func() { newSuggester = original })

	parsed, err := suggest.ParseResponse(`{"tokens": {"colors": {"primary": "#1d4ed8", "accent": "nope"}}, "rationale": "Darker primary."}`)
	require.NoError(t, err)
	newSuggester = func(config.SuggestConfig) (suggest.Suggester, error) {
		return fakeSuggester{suggestion: parsed}, nil
	}

	path := filepath.Join(t.TempDir(), "tokens.json")
	require.NoError(t, document.Save(path, tokens.Default()))

	stdout, _, err := executeCommand(t, "suggest", "--tokens", path, "--write", "--diff", "make", "it", "darker")
	require.NoError(t, err)
	require.Contains(t, stdout, "Darker primary.")
	require.Contains(t, stdout, "applied  colors.primary")
	require.Contains(t, stdout, "rejected colors.accent")
	require.Contains(t, stdout, "+++ suggested")
	require.Contains(t, stdout, `+    "primary": "#1D4ED8",`)

	g, err := document.Load(path)
	require.NoError(t, err)
	require.Equal(t, "#1D4ED8", g.Colors.Primary)
	require.Equal(t, tokens.Default().Colors.Accent, g.Colors.Accent)
}

func TestSuggestWithoutAPIKey(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")

	_, _, err := executeCommand(t, "suggest", "anything")
	require.Error(t, err)
	require.Contains(t, err.Error(), "ANTHROPIC_API_KEY")
}

func TestWatchExportsUntilCancelled(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tokens.json")
	require.NoError(t, document.Save(path, tokens.Default()))
	out := filepath.Join(dir, "tokens.css")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, _, err := executeCommandContext(t, ctx, "watch", path, "--format", "css", "--out", out)
		done <- err
	}()

	require.Eventually(t, func() bool {
		_, err := os.Stat(out)
		return err == nil
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestDefaultOutput(t *testing.T) {
	t.Parallel()

	require.Equal(t, "tokens.css", defaultOutput("dir/tokens.json", "css"))
	require.Equal(t, "tokens.config.js", defaultOutput("tokens.yaml", "config"))
	require.Equal(t, "tokens.out.json", defaultOutput("tokens.json", "json"))
}
