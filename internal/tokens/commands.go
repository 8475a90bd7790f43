package tokens

import (
	"strings"

	tserrors "github.com/alexisbeaulieu97/tokensmith/pkg/errors"
)

// Command is a pure update: it receives a copy of the graph and returns the
// updated copy or a field-level error.
type Command func(Graph) (Graph, error)

// Apply runs cmds in order. If any command fails, the original graph is
// returned unchanged together with the error.
func Apply(g Graph, cmds ...Command) (Graph, error) {
	next := g
	for _, cmd := range cmds {
		updated, err := cmd(next)
		if err != nil {
			return g, err
		}
		next = updated
	}
	return next, nil
}

// Set writes value at path. The value is converted to the leaf's type,
// colors are normalised, and the result must pass validation for that path.
// Setting shape.borderRadius while shape.linkCorners is on also moves the
// button and input radii.
func Set(path string, value any) Command {
	return func(g Graph) (Graph, error) {
		next := g
		if err := set(&next, path, value); err != nil {
			return g, err
		}

		if path == "shape.borderRadius" && next.Shape.LinkCorners {
			next.Buttons.Radius = next.Shape.BorderRadius
			next.Inputs.Radius = next.Shape.BorderRadius
		}

		if err := validatePath(next, path); err != nil {
			return g, err
		}
		return next, nil
	}
}

// SetColor assigns a color leaf such as "colors.primary" or "inputs.baseBg".
func SetColor(path, hex string) Command {
	return func(g Graph) (Graph, error) {
		if kind, ok := KindOf(path); ok && kind != KindColor {
			return g, tserrors.NewValidationError(path, "not a color token", nil)
		}
		return Set(path, hex)(g)
	}
}

// SetTypeScale replaces the base size and ratio together.
func SetTypeScale(baseSize, ratio float64) Command {
	return func(g Graph) (Graph, error) {
		return Apply(g, Set("typography.baseSize", baseSize), Set("typography.scaleRatio", ratio))
	}
}

// SetFonts replaces the heading and body font families.
func SetFonts(heading, body string) Command {
	return func(g Graph) (Graph, error) {
		return Apply(g, Set("typography.headingFont", heading), Set("typography.bodyFont", body))
	}
}

// SetLayout writes the page-layout density and container width, typically
// taken from a resolved template.
func SetLayout(sectionSpacing string, containerWidth int) Command {
	return func(g Graph) (Graph, error) {
		return Apply(g, Set("spacing.sectionSpacing", sectionSpacing), Set("spacing.containerWidth", containerWidth))
	}
}

// validatePath reports the validation failures at or beneath path.
func validatePath(g Graph, path string) error {
	err := Validate(g)
	if err == nil {
		return nil
	}

	fe, ok := err.(tserrors.FieldErrors)
	if !ok {
		return err
	}

	var scoped tserrors.FieldErrors
	for _, failure := range fe {
		if failure.Field == path || strings.HasPrefix(failure.Field, path+".") {
			scoped = append(scoped, failure)
		}
	}
	return scoped.Err()
}
