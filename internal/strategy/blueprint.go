package strategy

// Blueprint bundles a context with its resolved template and the current
// page selection.
type Blueprint struct {
	Context  Context          `json:"context"`
	Template Template         `json:"template"`
	Pages    []PageDefinition `json:"pages"`
}

// NewBlueprint resolves ctx into a blueprint with the default sitemap.
func NewBlueprint(ctx Context) Blueprint {
	template, pages := Resolve(ctx)
	return Blueprint{Context: ctx, Template: template, Pages: pages}
}

// WithPages returns a copy of b using pages as the selection. Required pages
// are forced back to selected.
func (b Blueprint) WithPages(pages []PageDefinition) Blueprint {
	out := clonePages(pages)
	for i := range out {
		if out[i].Required {
			out[i].Selected = true
		}
	}
	b.Template = b.Template.clone()
	b.Pages = out
	return b
}

// Toggle flips one optional page and returns the updated blueprint.
func (b Blueprint) Toggle(id string) Blueprint {
	b.Template = b.Template.clone()
	b.Pages = TogglePage(b.Pages, id)
	return b
}

// Selected returns the pages that will be built.
func (b Blueprint) Selected() []PageDefinition {
	return SelectedPages(b.Pages)
}

// Recommendation returns the headline text for the blueprint's template.
func (b Blueprint) Recommendation() Recommendation {
	return RecommendationFor(b.Template.ID)
}
