package strategy

import (
	"fmt"
	"strings"
)

// SectionTag names one homepage section.
type SectionTag int

const (
	SectionHero SectionTag = iota
	SectionProblem
	SectionSolution
	SectionFeatures
	SectionSocialProof
	SectionPricing
	SectionGallery
	SectionProduct
	SectionFAQ
	SectionCTA

	sectionCount
)

// Renderer is the wireframe block a section is drawn with. Several tags can
// share one renderer.
type Renderer string

const (
	RendererHero        Renderer = "hero"
	RendererNarrative   Renderer = "narrative"
	RendererGrid        Renderer = "grid"
	RendererTestimonial Renderer = "testimonial"
	RendererPricing     Renderer = "pricing"
	RendererAccordion   Renderer = "accordion"
	RendererBanner      Renderer = "banner"
)

// SectionSpec describes how a section is presented.
type SectionSpec struct {
	Tag       SectionTag `json:"tag"`
	Title     string     `json:"title"`
	Renderer  Renderer   `json:"renderer"`
	Wireframe string     `json:"wireframe"`
}

var sectionTable = [...]SectionSpec{
	SectionHero:        {Tag: SectionHero, Title: "Hero", Renderer: RendererHero, Wireframe: "Headline, supporting line and primary call to action above the fold"},
	SectionProblem:     {Tag: SectionProblem, Title: "Problem", Renderer: RendererNarrative, Wireframe: "Name the visitor's pain in their own words"},
	SectionSolution:    {Tag: SectionSolution, Title: "Solution", Renderer: RendererNarrative, Wireframe: "Show how the offer removes the pain, with one supporting visual"},
	SectionFeatures:    {Tag: SectionFeatures, Title: "Features", Renderer: RendererGrid, Wireframe: "Three to six capability cards with icon, title and one line each"},
	SectionSocialProof: {Tag: SectionSocialProof, Title: "Social Proof", Renderer: RendererTestimonial, Wireframe: "Testimonials or client logos"},
	SectionPricing:     {Tag: SectionPricing, Title: "Pricing", Renderer: RendererPricing, Wireframe: "Plan cards with the recommended tier highlighted"},
	SectionGallery:     {Tag: SectionGallery, Title: "Gallery", Renderer: RendererGrid, Wireframe: "Large imagery in an even grid, minimal captions"},
	SectionProduct:     {Tag: SectionProduct, Title: "Product", Renderer: RendererGrid, Wireframe: "Product cards with image, name and price"},
	SectionFAQ:         {Tag: SectionFAQ, Title: "FAQ", Renderer: RendererAccordion, Wireframe: "Collapsible questions covering shipping, returns and payment"},
	SectionCTA:         {Tag: SectionCTA, Title: "Call to Action", Renderer: RendererBanner, Wireframe: "Full-width closing banner repeating the primary action"},
}

// The table must have exactly one entry per tag.
var (
	_ [int(sectionCount) - len(sectionTable)]struct{}
	_ [len(sectionTable) - int(sectionCount)]struct{}
)

var sectionNames = [...]string{
	SectionHero:        "hero",
	SectionProblem:     "problem",
	SectionSolution:    "solution",
	SectionFeatures:    "features",
	SectionSocialProof: "social-proof",
	SectionPricing:     "pricing",
	SectionGallery:     "gallery",
	SectionProduct:     "product",
	SectionFAQ:         "faq",
	SectionCTA:         "cta",
}

var (
	_ [int(sectionCount) - len(sectionNames)]struct{}
	_ [len(sectionNames) - int(sectionCount)]struct{}
)

// SectionTags returns every tag in declaration order.
func SectionTags() []SectionTag {
	tags := make([]SectionTag, 0, sectionCount)
	for t := SectionTag(0); t < sectionCount; t++ {
		tags = append(tags, t)
	}
	return tags
}

// Valid reports whether t is a declared tag.
func (t SectionTag) Valid() bool {
	return t >= 0 && t < sectionCount
}

func (t SectionTag) String() string {
	if !t.Valid() {
		return fmt.Sprintf("section(%d)", int(t))
	}
	return sectionNames[t]
}

// MarshalText encodes the tag by name.
func (t SectionTag) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid section tag %d", int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText decodes a tag name.
func (t *SectionTag) UnmarshalText(text []byte) error {
	tag, err := ParseSectionTag(string(text))
	if err != nil {
		return err
	}
	*t = tag
	return nil
}

// ParseSectionTag looks up a tag by name.
func ParseSectionTag(s string) (SectionTag, error) {
	name := normalize(s)
	for i, n := range sectionNames {
		if n == name {
			return SectionTag(i), nil
		}
	}
	return 0, fmt.Errorf("unknown section %q", s)
}

// Describe returns the presentation spec for t.
func Describe(t SectionTag) (SectionSpec, bool) {
	if !t.Valid() {
		return SectionSpec{}, false
	}
	return sectionTable[t], true
}

// Label renders t in upper case for briefs, e.g. "SOCIAL-PROOF".
func (t SectionTag) Label() string {
	return strings.ToUpper(t.String())
}
