package tokens

import (
	"sort"
	"strings"

	tserrors "github.com/alexisbeaulieu97/tokensmith/pkg/errors"
)

// Fragment is a partial graph in nested-document form, as produced by
// decoding a JSON or YAML object: {"colors": {"primary": "#112233"}}.
type Fragment map[string]any

// Flatten returns the fragment's leaves keyed by dotted path. Nested maps
// are walked; any other value is treated as a leaf.
func (f Fragment) Flatten() map[string]any {
	out := make(map[string]any)
	flattenInto(out, "", map[string]any(f))
	return out
}

func flattenInto(out map[string]any, prefix string, node map[string]any) {
	for key, value := range node {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		switch child := value.(type) {
		case map[string]any:
			flattenInto(out, path, child)
		case Fragment:
			flattenInto(out, path, map[string]any(child))
		default:
			out[path] = value
		}
	}
}

// MergeResult reports which fragment paths were applied and which were
// rejected.
type MergeResult struct {
	Graph    Graph
	Applied  []string
	Rejected tserrors.FieldErrors
}

// Merge applies every leaf of fragment onto base independently. A leaf that
// would break an invariant (bad hex, ratio <= 1, unknown path, wrong type) is
// rejected on its own; the remaining leaves still apply. Shape leaves go
// first so linked corners never overwrite a radius the fragment sets itself;
// the rest follow in path order.
func Merge(base Graph, fragment Fragment) MergeResult {
	flat := fragment.Flatten()
	paths := make([]string, 0, len(flat))
	for path := range flat {
		paths = append(paths, path)
	}
	sort.Slice(paths, func(i, j int) bool {
		si, sj := strings.HasPrefix(paths[i], "shape."), strings.HasPrefix(paths[j], "shape.")
		if si != sj {
			return si
		}
		return paths[i] < paths[j]
	})

	result := MergeResult{Graph: base}
	for _, path := range paths {
		updated, err := Set(path, flat[path])(result.Graph)
		if err != nil {
			result.Rejected.Append(path, err)
			continue
		}
		result.Graph = updated
		result.Applied = append(result.Applied, path)
	}
	return result
}
