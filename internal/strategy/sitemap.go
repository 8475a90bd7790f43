package strategy

// PageDefinition is one page of the recommended sitemap. Required pages are
// always selected.
type PageDefinition struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Required bool   `json:"required"`
	Selected bool   `json:"selected"`
	Reason   string `json:"reason"`
}

func homePage() PageDefinition {
	return PageDefinition{ID: "home", Name: "Home", Slug: "/", Required: true, Selected: true, Reason: "Primary landing & conversion point"}
}

func contactPage() PageDefinition {
	return PageDefinition{ID: "contact", Name: "Contact", Slug: "/contact", Required: false, Selected: true, Reason: "Direct communication channel"}
}

// DefaultSitemap returns a fresh copy of the recommended pages for b.
func DefaultSitemap(b BusinessType) []PageDefinition {
	switch b {
	case BusinessSaaS:
		return []PageDefinition{
			homePage(),
			{ID: "features", Name: "Features", Slug: "/features", Required: true, Selected: true, Reason: "Explain product capabilities"},
			{ID: "pricing", Name: "Pricing", Slug: "/pricing", Required: true, Selected: true, Reason: "Primary conversion driver"},
			{ID: "docs", Name: "Documentation", Slug: "/docs", Required: false, Selected: true, Reason: "Support & Technical SEO"},
			{ID: "blog", Name: "Blog", Slug: "/blog", Required: false, Selected: false, Reason: "Content marketing & SEO"},
			{ID: "login", Name: "Login", Slug: "/login", Required: true, Selected: true, Reason: "Application entry"},
		}
	case BusinessEcommerce:
		return []PageDefinition{
			homePage(),
			{ID: "shop", Name: "Shop All", Slug: "/shop", Required: true, Selected: true, Reason: "Full product catalog"},
			{ID: "collections", Name: "Collections", Slug: "/collections", Required: false, Selected: true, Reason: "Curated product groupings"},
			{ID: "about", Name: "Our Story", Slug: "/about", Required: false, Selected: true, Reason: "Brand affinity & trust"},
			{ID: "faq", Name: "FAQ / Shipping", Slug: "/faq", Required: true, Selected: true, Reason: "Reduce purchase anxiety"},
			{ID: "cart", Name: "Cart", Slug: "/cart", Required: true, Selected: true, Reason: "Checkout flow"},
		}
	case BusinessService:
		return []PageDefinition{
			homePage(),
			{ID: "services", Name: "Services", Slug: "/services", Required: true, Selected: true, Reason: "What you offer"},
			{ID: "about", Name: "About Us", Slug: "/about", Required: true, Selected: true, Reason: "Builds face-to-face trust"},
			{ID: "reviews", Name: "Testimonials", Slug: "/reviews", Required: false, Selected: true, Reason: "Social proof"},
			{ID: "booking", Name: "Book Now", Slug: "/book", Required: true, Selected: true, Reason: "Primary call-to-action"},
			contactPage(),
		}
	case BusinessPortfolio:
		return []PageDefinition{
			homePage(),
			{ID: "work", Name: "Selected Work", Slug: "/work", Required: true, Selected: true, Reason: "The core product"},
			{ID: "about", Name: "About Me", Slug: "/about", Required: true, Selected: true, Reason: "Personality & Experience"},
			contactPage(),
		}
	default:
		return []PageDefinition{homePage(), contactPage()}
	}
}

// TogglePage flips Selected on the optional page with id and returns a new
// slice. Required pages and unknown IDs leave the result equal to pages.
func TogglePage(pages []PageDefinition, id string) []PageDefinition {
	out := clonePages(pages)
	for i := range out {
		if out[i].ID == id && !out[i].Required {
			out[i].Selected = !out[i].Selected
		}
	}
	return out
}

// SetSelected sets Selected on the optional page with id and returns a new
// slice. Required pages stay selected.
func SetSelected(pages []PageDefinition, id string, selected bool) []PageDefinition {
	out := clonePages(pages)
	for i := range out {
		if out[i].ID == id && !out[i].Required {
			out[i].Selected = selected
		}
	}
	return out
}

// SelectedPages returns the selected pages in sitemap order.
func SelectedPages(pages []PageDefinition) []PageDefinition {
	var out []PageDefinition
	for _, p := range pages {
		if p.Selected || p.Required {
			out = append(out, p)
		}
	}
	return out
}

// FindPage returns the page with id.
func FindPage(pages []PageDefinition, id string) (PageDefinition, bool) {
	for _, p := range pages {
		if p.ID == id {
			return p, true
		}
	}
	return PageDefinition{}, false
}

func clonePages(pages []PageDefinition) []PageDefinition {
	if pages == nil {
		return nil
	}
	return append([]PageDefinition(nil), pages...)
}
