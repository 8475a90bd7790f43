// Package tokens defines the design token graph: the aggregate root every
// derivation and export consumes. Graph is a value type with no slices, maps
// or pointers, so a copy never aliases the caller's data; every update in
// this package returns a new Graph.
package tokens

// Graph is the full set of primitive design tokens.
type Graph struct {
	Colors      Colors      `json:"colors" yaml:"colors"`
	Interactive Interactive `json:"interactive" yaml:"interactive"`
	Typography  Typography  `json:"typography" yaml:"typography"`
	Spacing     Spacing     `json:"spacing" yaml:"spacing"`
	Shape       Shape       `json:"shape" yaml:"shape"`
	Buttons     Buttons     `json:"buttons" yaml:"buttons"`
	Inputs      Inputs      `json:"inputs" yaml:"inputs"`
	Motion      Motion      `json:"motion" yaml:"motion"`
}

// Colors holds the brand palette and the light/dark canvas+text pairs.
type Colors struct {
	Primary   string      `json:"primary" yaml:"primary" validate:"hexcolor6"`
	Secondary string      `json:"secondary" yaml:"secondary" validate:"hexcolor6"`
	Accent    string      `json:"accent" yaml:"accent" validate:"hexcolor6"`
	Success   string      `json:"success" yaml:"success" validate:"hexcolor6"`
	Error     string      `json:"error" yaml:"error" validate:"hexcolor6"`
	Light     ThemeColors `json:"light" yaml:"light"`
	Dark      ThemeColors `json:"dark" yaml:"dark"`
}

// ThemeColors is one theme's canvas/text pair.
type ThemeColors struct {
	Canvas string `json:"canvas" yaml:"canvas" validate:"hexcolor6"`
	Text   string `json:"text" yaml:"text" validate:"hexcolor6"`
}

// Interactive holds state colors derived from the primary brand color.
type Interactive struct {
	PrimaryHover string `json:"primaryHover" yaml:"primaryHover" validate:"hexcolor6"`
	PrimaryFocus string `json:"primaryFocus" yaml:"primaryFocus" validate:"hexcolor6"`
}

// Typography holds fonts and the inputs of the type scale.
type Typography struct {
	HeadingFont       string  `json:"headingFont" yaml:"headingFont" validate:"required,max=64"`
	BodyFont          string  `json:"bodyFont" yaml:"bodyFont" validate:"required,max=64"`
	BaseSize          float64 `json:"baseSize" yaml:"baseSize" validate:"gt=0,lte=96"`
	ScaleRatio        float64 `json:"scaleRatio" yaml:"scaleRatio" validate:"gt=1,lte=3"`
	LineHeightHeading float64 `json:"lineHeightHeading" yaml:"lineHeightHeading" validate:"gt=0,lte=4"`
	LineHeightBody    float64 `json:"lineHeightBody" yaml:"lineHeightBody" validate:"gt=0,lte=4"`
	LetterSpacing     float64 `json:"letterSpacing" yaml:"letterSpacing" validate:"gte=-0.5,lte=1"`
	TextTransform     string  `json:"textTransform" yaml:"textTransform" validate:"oneof=none uppercase lowercase capitalize"`
	TextDecoration    string  `json:"textDecoration" yaml:"textDecoration" validate:"oneof=none underline line-through"`
}

// Spacing holds the base rhythm unit and the page-layout density tokens.
type Spacing struct {
	BaseUnit       int    `json:"baseUnit" yaml:"baseUnit" validate:"gt=0,lte=64"`
	SectionSpacing string `json:"sectionSpacing" yaml:"sectionSpacing" validate:"oneof=compact comfortable spacious"`
	ContainerWidth int    `json:"containerWidth" yaml:"containerWidth" validate:"gte=320,lte=2560"`
}

// Shape holds corner radius and elevation.
type Shape struct {
	BorderRadius int    `json:"borderRadius" yaml:"borderRadius" validate:"gte=0,lte=100"`
	LinkCorners  bool   `json:"linkCorners" yaml:"linkCorners"`
	Shadow       Shadow `json:"shadow" yaml:"shadow"`
}

// Shadow is a box-shadow offset and blur in pixels.
type Shadow struct {
	X    int `json:"x" yaml:"x" validate:"gte=-100,lte=100"`
	Y    int `json:"y" yaml:"y" validate:"gte=-100,lte=100"`
	Blur int `json:"blur" yaml:"blur" validate:"gte=0,lte=200"`
}

// Buttons holds button architecture tokens.
type Buttons struct {
	Radius        int     `json:"radius" yaml:"radius" validate:"gte=0,lte=100"`
	BorderWidth   int     `json:"borderWidth" yaml:"borderWidth" validate:"gte=0,lte=16"`
	BorderStyle   string  `json:"borderStyle" yaml:"borderStyle" validate:"oneof=solid dashed dotted"`
	TextTransform string  `json:"textTransform" yaml:"textTransform" validate:"oneof=none uppercase lowercase capitalize"`
	FontWeight    int     `json:"fontWeight" yaml:"fontWeight" validate:"oneof=400 500 600 700"`
	HoverScale    float64 `json:"hoverScale" yaml:"hoverScale" validate:"gte=1,lte=1.5"`
	ApplyShadow   bool    `json:"applyShadow" yaml:"applyShadow"`
}

// Inputs holds form-field tokens.
type Inputs struct {
	Radius         int    `json:"radius" yaml:"radius" validate:"gte=0,lte=100"`
	BorderWidth    int    `json:"borderWidth" yaml:"borderWidth" validate:"gte=0,lte=16"`
	BaseBg         string `json:"baseBg" yaml:"baseBg" validate:"hexcolor6"`
	BorderColor    string `json:"borderColor" yaml:"borderColor" validate:"hexcolor6"`
	FocusRingWidth int    `json:"focusRingWidth" yaml:"focusRingWidth" validate:"gte=0,lte=16"`
}

// Motion holds transition timing.
type Motion struct {
	Duration int    `json:"duration" yaml:"duration" validate:"gte=0,lte=10000"`
	Easing   string `json:"easing" yaml:"easing" validate:"easing"`
}

// Sections lists the required top-level keys of a serialized graph.
var Sections = []string{"colors", "interactive", "typography", "spacing", "shape", "buttons", "inputs", "motion"}

// Default returns the starter design system.
func Default() Graph {
	return Graph{
		Colors: Colors{
			Primary:   "#3B82F6",
			Secondary: "#8B5CF6",
			Accent:    "#F59E0B",
			Success:   "#10B981",
			Error:     "#EF4444",
			Light:     ThemeColors{Canvas: "#FFFFFF", Text: "#111827"},
			Dark:      ThemeColors{Canvas: "#0F172A", Text: "#F8FAFC"},
		},
		Interactive: Interactive{
			PrimaryHover: "#2563EB",
			PrimaryFocus: "#1D4ED8",
		},
		Typography: Typography{
			HeadingFont:       "Inter",
			BodyFont:          "Inter",
			BaseSize:          16,
			ScaleRatio:        1.25,
			LineHeightHeading: 1.2,
			LineHeightBody:    1.5,
			LetterSpacing:     0,
			TextTransform:     "none",
			TextDecoration:    "none",
		},
		Spacing: Spacing{
			BaseUnit:       8,
			SectionSpacing: "comfortable",
			ContainerWidth: 1200,
		},
		Shape: Shape{
			BorderRadius: 8,
			LinkCorners:  true,
			Shadow:       Shadow{X: 0, Y: 4, Blur: 6},
		},
		Buttons: Buttons{
			Radius:        8,
			BorderWidth:   2,
			BorderStyle:   "solid",
			TextTransform: "none",
			FontWeight:    600,
			HoverScale:    1.05,
			ApplyShadow:   true,
		},
		Inputs: Inputs{
			Radius:         8,
			BorderWidth:    1,
			BaseBg:         "#FFFFFF",
			BorderColor:    "#D1D5DB",
			FocusRingWidth: 3,
		},
		Motion: Motion{
			Duration: 200,
			Easing:   "ease-in-out",
		},
	}
}

// SectionGap is the vertical gap between homepage sections in pixels: the
// base unit times 4, 8 or 16 for compact, comfortable and spacious.
func (s Spacing) SectionGap() int {
	switch s.SectionSpacing {
	case "compact":
		return s.BaseUnit * 4
	case "spacious":
		return s.BaseUnit * 16
	default:
		return s.BaseUnit * 8
	}
}
