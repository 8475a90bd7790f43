package strategy

import "fmt"

// HeroStyle is the layout of the hero section.
type HeroStyle string

const (
	HeroSplit   HeroStyle = "split"
	HeroCenter  HeroStyle = "center"
	HeroMinimal HeroStyle = "minimal"
)

// Template IDs.
const (
	TemplateStoryBrand  = "storybrand"
	TemplatePAS         = "pas"
	TemplateLuxury      = "luxury"
	TemplateShowcase    = "showcase"
	TemplateCatalog     = "catalog"
	TemplateFeatureTour = "feature-tour"
)

// Template is a named page-layout formula.
type Template struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Description    string       `json:"description"`
	Sections       []SectionTag `json:"sections"`
	HeroStyle      HeroStyle    `json:"heroStyle"`
	SpacingDensity string       `json:"spacingDensity"`
	ContainerWidth int          `json:"containerWidth"`
}

var templates = map[string]Template{
	TemplateStoryBrand: {
		ID:             TemplateStoryBrand,
		Name:           "StoryBrand",
		Description:    "Guide the visitor from problem to plan to success",
		Sections:       []SectionTag{SectionHero, SectionProblem, SectionSolution, SectionSocialProof, SectionPricing, SectionCTA},
		HeroStyle:      HeroSplit,
		SpacingDensity: "comfortable",
		ContainerWidth: 1200,
	},
	TemplatePAS: {
		ID:             TemplatePAS,
		Name:           "Problem-Agitate-Solve",
		Description:    "Lead with the pain, sharpen it, then resolve it",
		Sections:       []SectionTag{SectionHero, SectionProblem, SectionSolution, SectionSocialProof, SectionCTA},
		HeroStyle:      HeroSplit,
		SpacingDensity: "comfortable",
		ContainerWidth: 1200,
	},
	TemplateLuxury: {
		ID:             TemplateLuxury,
		Name:           "Luxury",
		Description:    "Imagery first with generous negative space",
		Sections:       []SectionTag{SectionHero, SectionGallery, SectionProduct, SectionSocialProof, SectionCTA},
		HeroStyle:      HeroCenter,
		SpacingDensity: "spacious",
		ContainerWidth: 1600,
	},
	TemplateShowcase: {
		ID:             TemplateShowcase,
		Name:           "Showcase",
		Description:    "Let the work carry the page",
		Sections:       []SectionTag{SectionHero, SectionGallery, SectionSolution, SectionCTA},
		HeroStyle:      HeroMinimal,
		SpacingDensity: "spacious",
		ContainerWidth: 1400,
	},
	TemplateCatalog: {
		ID:             TemplateCatalog,
		Name:           "Catalog",
		Description:    "Dense product browsing with purchase reassurance",
		Sections:       []SectionTag{SectionHero, SectionProduct, SectionGallery, SectionSocialProof, SectionFAQ, SectionCTA},
		HeroStyle:      HeroSplit,
		SpacingDensity: "compact",
		ContainerWidth: 1400,
	},
	TemplateFeatureTour: {
		ID:             TemplateFeatureTour,
		Name:           "Feature Tour",
		Description:    "Walk through capabilities before the ask",
		Sections:       []SectionTag{SectionHero, SectionFeatures, SectionSolution, SectionSocialProof, SectionPricing, SectionCTA},
		HeroStyle:      HeroCenter,
		SpacingDensity: "comfortable",
		ContainerWidth: 1280,
	},
}

// TemplateIDs lists every template ID in a fixed order.
func TemplateIDs() []string {
	return []string{TemplateStoryBrand, TemplatePAS, TemplateLuxury, TemplateShowcase, TemplateCatalog, TemplateFeatureTour}
}

// LookupTemplate returns a copy of the template with id.
func LookupTemplate(id string) (Template, bool) {
	t, ok := templates[id]
	if !ok {
		return Template{}, false
	}
	return t.clone(), true
}

func mustTemplate(id string) Template {
	t, ok := LookupTemplate(id)
	if !ok {
		panic(fmt.Sprintf("strategy: template %q not registered", id))
	}
	return t
}

func (t Template) clone() Template {
	t.Sections = append([]SectionTag(nil), t.Sections...)
	return t
}

// Resolve picks the template for ctx and returns it with the recommended
// sitemap. It is total: business types outside the known set use the
// fallback rules, so every context yields a template.
func Resolve(ctx Context) (Template, []PageDefinition) {
	return mustTemplate(selectTemplate(ctx)), DefaultSitemap(ctx.BusinessType)
}

// selectTemplate applies the per-business rules in priority order.
func selectTemplate(ctx Context) string {
	vibe, goal := ctx.BrandVibe, ctx.ConversionGoal

	switch ctx.BusinessType {
	case BusinessSaaS:
		switch {
		case goal == GoalLead:
			return TemplatePAS
		case vibe == VibeInnovative:
			return TemplateFeatureTour
		default:
			return TemplateStoryBrand
		}
	case BusinessEcommerce:
		if vibe == VibeLuxury || goal == GoalAwareness {
			return TemplateLuxury
		}
		return TemplateCatalog
	case BusinessService:
		switch {
		case vibe == VibeLuxury:
			return TemplateLuxury
		case goal == GoalAwareness:
			return TemplateStoryBrand
		default:
			return TemplatePAS
		}
	case BusinessPortfolio:
		switch {
		case vibe == VibeLuxury:
			return TemplateLuxury
		case goal == GoalLead:
			return TemplatePAS
		default:
			return TemplateShowcase
		}
	default:
		switch {
		case vibe == VibeLuxury:
			return TemplateLuxury
		case goal == GoalLead:
			return TemplatePAS
		default:
			return TemplateStoryBrand
		}
	}
}

// Recommendation is the headline and rationale shown next to a template.
type Recommendation struct {
	Title     string `json:"title"`
	Rationale string `json:"rationale"`
}

var recommendations = map[string]Recommendation{
	TemplateLuxury: {
		Title:     "The Vogue Protocol",
		Rationale: "Luxury demands negative space to increase perceived value. Focus purely on visual desire.",
	},
	TemplatePAS: {
		Title:     "P.A.S. Formula",
		Rationale: "Problem, Agitation, Solution. This structure builds trust by showing you understand the visitor's pain.",
	},
	TemplateShowcase: {
		Title:     "Visual Showcase",
		Rationale: "Let the work speak. Minimal text, maximum impact.",
	},
	TemplateCatalog: {
		Title:     "The Catalog Grid",
		Rationale: "Shoppers want to browse. Put products first and answer purchase questions before they are asked.",
	},
	TemplateFeatureTour: {
		Title:     "The Feature Tour",
		Rationale: "Innovative products sell on capability. Show what it does before asking for anything.",
	},
}

var storyBrandRecommendation = Recommendation{
	Title:     "The StoryBrand Framework",
	Rationale: "A classic hero's journey: a character (the visitor) has a problem, meets a guide (you), who gives them a plan.",
}

// RecommendationFor returns the recommendation for templateID. Unknown IDs
// get the StoryBrand text.
func RecommendationFor(templateID string) Recommendation {
	if r, ok := recommendations[templateID]; ok {
		return r
	}
	return storyBrandRecommendation
}
