package fonts

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tokensmith/internal/tokens"
)

func TestCatalogResolve(t *testing.T) {
	t.Parallel()

	c := NewCatalog()

	status := c.Resolve("  playfair display ")
	require.True(t, status.Available)
	require.Equal(t, "Playfair Display", status.Family)
	require.Equal(t, Serif, status.Category)

	status = c.Resolve("Comic Sans MS")
	require.False(t, status.Available)
	require.Equal(t, "Comic Sans MS", status.Family)
}

func TestCatalogFamiliesSorted(t *testing.T) {
	t.Parallel()

	c := NewCatalog(Font{Family: "Zilla Slab", Category: Serif}, Font{Family: "Archivo", Category: SansSerif})
	require.Equal(t, []string{"Archivo", "Zilla Slab"}, c.Families())
}

func TestCheckWarnsOnlyForUnknownFonts(t *testing.T) {
	t.Parallel()

	g := tokens.Default()
	require.Empty(t, Check(NewCatalog(), g))

	g.Typography.BodyFont = "Papyrus"
	warnings := Check(NewCatalog(), g)
	require.Len(t, warnings, 1)
	require.Equal(t, "typography.bodyFont", warnings[0].Path)
	require.Contains(t, warnings[0].String(), `"Papyrus"`)
}

func TestStylesheetURL(t *testing.T) {
	t.Parallel()

	u := StylesheetURL("Inter", "Playfair Display", "inter", "")
	require.Equal(t,
		"https://fonts.googleapis.com/css2?family=Inter:wght@300;400;500;600;700;800&family=Playfair+Display:wght@300;400;500;600;700;800&display=swap",
		u)
}
