package tokens

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strings"
	"sync"

	"github.com/alexisbeaulieu97/tokensmith/internal/colormath"
	tserrors "github.com/alexisbeaulieu97/tokensmith/pkg/errors"
)

// Kind classifies a leaf token for conversion and rendering.
type Kind int

const (
	KindText Kind = iota
	KindColor
	KindNumber
	KindInteger
	KindBool
)

// Leaf is one primitive token addressed by its dotted JSON path
// (e.g. "colors.light.canvas").
type Leaf struct {
	Path  string
	Kind  Kind
	Value any
}

// Segments splits the dotted path.
func (l Leaf) Segments() []string {
	return strings.Split(l.Path, ".")
}

type leafSpec struct {
	path  string
	kind  Kind
	index []int
}

var (
	leafOnce  sync.Once
	leafSpecs []leafSpec
	leafIndex map[string]leafSpec
)

func specs() []leafSpec {
	leafOnce.Do(func() {
		leafSpecs = collectLeaves(reflect.TypeOf(Graph{}), nil, "")
		leafIndex = make(map[string]leafSpec, len(leafSpecs))
		for _, spec := range leafSpecs {
			leafIndex[spec.path] = spec
		}
	})
	return leafSpecs
}

func collectLeaves(t reflect.Type, index []int, prefix string) []leafSpec {
	var out []leafSpec
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		path := name
		if prefix != "" {
			path = prefix + "." + name
		}
		fieldIndex := append(append([]int(nil), index...), i)

		if field.Type.Kind() == reflect.Struct {
			out = append(out, collectLeaves(field.Type, fieldIndex, path)...)
			continue
		}

		out = append(out, leafSpec{path: path, kind: kindOf(field), index: fieldIndex})
	}
	return out
}

func kindOf(field reflect.StructField) Kind {
	switch field.Type.Kind() {
	case reflect.Bool:
		return KindBool
	case reflect.Int:
		return KindInteger
	case reflect.Float64:
		return KindNumber
	}
	if strings.Contains(field.Tag.Get("validate"), "hexcolor6") {
		return KindColor
	}
	return KindText
}

// Paths returns every leaf path in declaration order.
func Paths() []string {
	all := specs()
	paths := make([]string, 0, len(all))
	for _, spec := range all {
		paths = append(paths, spec.path)
	}
	return paths
}

// ColorPaths returns the paths of every color leaf in declaration order.
func ColorPaths() []string {
	var paths []string
	for _, spec := range specs() {
		if spec.kind == KindColor {
			paths = append(paths, spec.path)
		}
	}
	return paths
}

// Leaves flattens g into its primitive tokens in declaration order. The
// order is stable, so anything keyed on it is deterministic.
func Leaves(g Graph) []Leaf {
	root := reflect.ValueOf(g)
	all := specs()
	leaves := make([]Leaf, 0, len(all))
	for _, spec := range all {
		leaves = append(leaves, Leaf{Path: spec.path, Kind: spec.kind, Value: root.FieldByIndex(spec.index).Interface()})
	}
	return leaves
}

// Get returns the value at path.
func Get(g Graph, path string) (any, bool) {
	specs()
	spec, ok := leafIndex[path]
	if !ok {
		return nil, false
	}
	return reflect.ValueOf(g).FieldByIndex(spec.index).Interface(), true
}

// KindOf reports the kind of the leaf at path.
func KindOf(path string) (Kind, bool) {
	specs()
	spec, ok := leafIndex[path]
	return spec.kind, ok
}

// set converts value to the leaf's type and writes it into g. It checks type
// compatibility only; range checks belong to Validate.
func set(g *Graph, path string, value any) error {
	specs()
	spec, ok := leafIndex[path]
	if !ok {
		return tserrors.NewValidationError(path, "unknown token path", nil)
	}

	target := reflect.ValueOf(g).Elem().FieldByIndex(spec.index)

	switch spec.kind {
	case KindColor:
		s, ok := value.(string)
		if !ok {
			return typeMismatch(path, "a hex color string", value)
		}
		normalized, err := colormath.Normalize(s)
		if err != nil {
			return tserrors.NewValidationError(path, fmt.Sprintf("%q is not a hex color", s), err)
		}
		target.SetString(normalized)
	case KindText:
		s, ok := value.(string)
		if !ok {
			return typeMismatch(path, "a string", value)
		}
		target.SetString(s)
	case KindBool:
		b, ok := value.(bool)
		if !ok {
			return typeMismatch(path, "a boolean", value)
		}
		target.SetBool(b)
	case KindNumber:
		f, ok := toFloat(value)
		if !ok {
			return typeMismatch(path, "a number", value)
		}
		target.SetFloat(f)
	case KindInteger:
		f, ok := toFloat(value)
		if !ok || f != math.Trunc(f) {
			return typeMismatch(path, "an integer", value)
		}
		target.SetInt(int64(f))
	}

	return nil
}

func typeMismatch(path, want string, got any) error {
	return tserrors.NewValidationError(path, fmt.Sprintf("expected %s, got %T", want, got), nil)
}

func toFloat(value any) (float64, bool) {
	var f float64
	switch v := value.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case int32:
		f = float64(v)
	case uint64:
		f = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
