// Package strategy maps a business context to a page-layout template and a
// recommended sitemap.
package strategy

import (
	"strings"

	tserrors "github.com/alexisbeaulieu97/tokensmith/pkg/errors"
)

// BusinessType is the kind of business the site is for. Values outside the
// known set resolve through the fallback rules.
type BusinessType string

const (
	BusinessSaaS      BusinessType = "saas"
	BusinessEcommerce BusinessType = "ecommerce"
	BusinessService   BusinessType = "service"
	BusinessPortfolio BusinessType = "portfolio"
)

// BrandVibe is the emotional register of the brand.
type BrandVibe string

const (
	VibeInnovative  BrandVibe = "innovative"
	VibeTrustworthy BrandVibe = "trustworthy"
	VibeLuxury      BrandVibe = "luxury"
	VibeFriendly    BrandVibe = "friendly"
)

// ConversionGoal is the primary action the site optimises for.
type ConversionGoal string

const (
	GoalLead      ConversionGoal = "lead"
	GoalPurchase  ConversionGoal = "purchase"
	GoalAwareness ConversionGoal = "awareness"
)

// BusinessTypes lists the known business types.
func BusinessTypes() []BusinessType {
	return []BusinessType{BusinessSaaS, BusinessEcommerce, BusinessService, BusinessPortfolio}
}

// BrandVibes lists the known brand vibes.
func BrandVibes() []BrandVibe {
	return []BrandVibe{VibeInnovative, VibeTrustworthy, VibeLuxury, VibeFriendly}
}

// ConversionGoals lists the known conversion goals.
func ConversionGoals() []ConversionGoal {
	return []ConversionGoal{GoalLead, GoalPurchase, GoalAwareness}
}

// Known reports whether b is one of BusinessTypes.
func (b BusinessType) Known() bool {
	for _, v := range BusinessTypes() {
		if b == v {
			return true
		}
	}
	return false
}

// Known reports whether v is one of BrandVibes.
func (v BrandVibe) Known() bool {
	for _, known := range BrandVibes() {
		if v == known {
			return true
		}
	}
	return false
}

// Known reports whether g is one of ConversionGoals.
func (g ConversionGoal) Known() bool {
	for _, known := range ConversionGoals() {
		if g == known {
			return true
		}
	}
	return false
}

// ParseBusinessType normalises s and checks it against the known set.
func ParseBusinessType(s string) (BusinessType, error) {
	b := BusinessType(normalize(s))
	if !b.Known() {
		return b, tserrors.NewResolutionError("businessType", s)
	}
	return b, nil
}

// ParseBrandVibe normalises s and checks it against the known set.
func ParseBrandVibe(s string) (BrandVibe, error) {
	v := BrandVibe(normalize(s))
	if !v.Known() {
		return v, tserrors.NewResolutionError("brandVibe", s)
	}
	return v, nil
}

// ParseConversionGoal normalises s and checks it against the known set.
func ParseConversionGoal(s string) (ConversionGoal, error) {
	g := ConversionGoal(normalize(s))
	if !g.Known() {
		return g, tserrors.NewResolutionError("conversionGoal", s)
	}
	return g, nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Context is the business-context triple a template is resolved from.
type Context struct {
	BusinessType   BusinessType   `json:"businessType" yaml:"business_type"`
	BrandVibe      BrandVibe      `json:"brandVibe" yaml:"brand_vibe"`
	ConversionGoal ConversionGoal `json:"conversionGoal" yaml:"conversion_goal"`
}

// DefaultContext is the context used when none is supplied.
func DefaultContext() Context {
	return Context{BusinessType: BusinessSaaS, BrandVibe: VibeInnovative, ConversionGoal: GoalLead}
}

// Validate reports the first field outside its known set. Resolve does not
// need a valid context; this is for callers that want to reject typos.
func (c Context) Validate() error {
	switch {
	case !c.BusinessType.Known():
		return tserrors.NewResolutionError("businessType", string(c.BusinessType))
	case !c.BrandVibe.Known():
		return tserrors.NewResolutionError("brandVibe", string(c.BrandVibe))
	case !c.ConversionGoal.Known():
		return tserrors.NewResolutionError("conversionGoal", string(c.ConversionGoal))
	}
	return nil
}

// ParseContext parses the three fields strictly.
func ParseContext(businessType, brandVibe, conversionGoal string) (Context, error) {
	b, err := ParseBusinessType(businessType)
	if err != nil {
		return Context{}, err
	}
	v, err := ParseBrandVibe(brandVibe)
	if err != nil {
		return Context{}, err
	}
	g, err := ParseConversionGoal(conversionGoal)
	if err != nil {
		return Context{}, err
	}
	return Context{BusinessType: b, BrandVibe: v, ConversionGoal: g}, nil
}
