package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnifiedIdenticalIsEmpty(t *testing.T) {
	t.Parallel()

	doc := []byte("{\n  \"primary\": \"#3B82F6\"\n}\n")
	assert.Empty(t, Unified(doc, doc, "before", "after"))
}

func TestUnifiedMarksChangedLines(t *testing.T) {
	t.Parallel()

	before := []byte(":root {\n  --color-primary: #3B82F6;\n  --color-accent: #F59E0B;\n}\n")
	after := []byte(":root {\n  --color-primary: #1D4ED8;\n  --color-accent: #F59E0B;\n}\n")

	out := Unified(before, after, "tokens.css", "tokens.css (new)")
	require.True(t, strings.HasPrefix(out, "--- tokens.css\n+++ tokens.css (new)\n@@ -1,4 +1,4 @@\n"))
	assert.Contains(t, out, "-  --color-primary: #3B82F6;\n")
	assert.Contains(t, out, "+  --color-primary: #1D4ED8;\n")
	assert.Contains(t, out, "   --color-accent: #F59E0B;\n")
}

func TestUnifiedTruncatesLongDiffs(t *testing.T) {
	t.Parallel()

	var before, after strings.Builder
	for i := 0; i < maxDiffLines; i++ {
		before.WriteString("a\n")
		after.WriteString("b\n")
	}

	out := Unified([]byte(before.String()), []byte(after.String()), "a", "b")
	assert.True(t, strings.HasSuffix(out, truncateMessage+"\n"))
	assert.LessOrEqual(t, strings.Count(out, "\n"), maxDiffLines+1)
}

func TestChanged(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		before      string
		after       string
		wantAdded   int
		wantRemoved int
	}{
		{name: "same", before: "a\nb\n", after: "a\nb\n"},
		{name: "replace", before: "a\nb\n", after: "a\nc\n", wantAdded: 1, wantRemoved: 1},
		{name: "append", before: "a\n", after: "a\nb\nc\n", wantAdded: 2},
		{name: "from empty", before: "", after: "a\n", wantAdded: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			added, removed := Changed([]byte(tt.before), []byte(tt.after))
			assert.Equal(t, tt.wantAdded, added)
			assert.Equal(t, tt.wantRemoved, removed)
		})
	}
}
