package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/alexisbeaulieu97/tokensmith/internal/tokens"
	tserrors "github.com/alexisbeaulieu97/tokensmith/pkg/errors"
)

// ToJSON encodes a valid graph as indented JSON.
func ToJSON(g tokens.Graph) ([]byte, error) {
	if err := tokens.Validate(g); err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return nil, tserrors.NewSerializationError(string(FormatJSON), err)
	}
	return append(data, '\n'), nil
}

// FromJSON decodes a graph document. Every top-level section and every leaf
// must be present and valid; hex colors are normalised on the way in.
// Fields the graph does not know are ignored.
func FromJSON(data []byte) (tokens.Graph, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return tokens.Graph{}, tserrors.NewImportError("json", "", "malformed JSON", err)
	}
	if doc == nil {
		return tokens.Graph{}, tserrors.NewImportError("json", "", "document must be an object", nil)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return tokens.Graph{}, tserrors.NewImportError("json", "", "unexpected content after the document", err)
	}

	return FromDocument("json", doc)
}

// FromDocument builds a graph from an already-decoded nested document, as
// produced by a JSON or YAML decoder. source names the format in errors.
func FromDocument(source string, doc map[string]any) (tokens.Graph, error) {
	for _, section := range tokens.Sections {
		value, ok := doc[section]
		if !ok {
			return tokens.Graph{}, tserrors.NewImportError(source, section, "missing required section", nil)
		}
		if _, ok := asMap(value); !ok {
			return tokens.Graph{}, tserrors.NewImportError(source, section, fmt.Sprintf("section must be an object, got %T", value), nil)
		}
	}

	flat := tokens.Fragment(normalizeMaps(doc)).Flatten()

	var g tokens.Graph
	var fe tserrors.FieldErrors
	for _, path := range tokens.Paths() {
		value, ok := flat[path]
		if !ok {
			fe.Add(path, "missing", nil)
			continue
		}
		next, err := tokens.Apply(g, tokens.Set(path, value))
		if err != nil {
			fe.Append(path, err)
			continue
		}
		g = next
	}

	if err := fe.Err(); err != nil {
		return tokens.Graph{}, tserrors.NewImportError(source, fe[0].Field, "", err)
	}
	if err := tokens.Validate(g); err != nil {
		return tokens.Graph{}, tserrors.NewImportError(source, "", "", err)
	}
	return g, nil
}

// normalizeMaps rewrites map[any]any nodes (older YAML decoders) into
// map[string]any so Flatten can walk them.
func normalizeMaps(node map[string]any) map[string]any {
	out := make(map[string]any, len(node))
	for k, v := range node {
		if m, ok := asMap(v); ok {
			out[k] = normalizeMaps(m)
			continue
		}
		out[k] = v
	}
	return out
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	}
	return nil, false
}
