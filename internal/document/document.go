// Package document loads and saves a single token graph file. The encoding is
// chosen from the file extension: .json, or .yaml/.yml.
package document

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/tokensmith/internal/export"
	"github.com/alexisbeaulieu97/tokensmith/internal/tokens"
	tserrors "github.com/alexisbeaulieu97/tokensmith/pkg/errors"
)

// Encoding is a document file encoding.
type Encoding string

const (
	EncodingJSON Encoding = "json"
	EncodingYAML Encoding = "yaml"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// EncodingFor picks the encoding from path's extension.
func EncodingFor(path string) (Encoding, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return EncodingJSON, nil
	case ".yaml", ".yml":
		return EncodingYAML, nil
	default:
		return "", tserrors.NewSerializationError(filepath.Ext(path), fmt.Errorf("unsupported document extension for %s", path))
	}
}

// Load reads and validates the graph stored at path.
func Load(path string) (tokens.Graph, error) {
	enc, err := EncodingFor(path)
	if err != nil {
		return tokens.Graph{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return tokens.Graph{}, tserrors.NewParseError(path, 0, err)
	}

	return Decode(path, enc, data)
}

// Decode parses data in enc. name is used in error messages.
func Decode(name string, enc Encoding, data []byte) (tokens.Graph, error) {
	switch enc {
	case EncodingJSON:
		g, err := export.FromJSON(data)
		if err != nil {
			return tokens.Graph{}, withSource(err, name)
		}
		return g, nil
	case EncodingYAML:
		var doc map[string]any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return tokens.Graph{}, tserrors.NewParseError(name, extractLine(err), err)
		}
		if doc == nil {
			return tokens.Graph{}, tserrors.NewImportError(name, "", "document is empty", nil)
		}
		return export.FromDocument(name, doc)
	default:
		return tokens.Graph{}, tserrors.NewSerializationError(string(enc), nil)
	}
}

// Encode serialises g in enc.
func Encode(g tokens.Graph, enc Encoding) ([]byte, error) {
	switch enc {
	case EncodingJSON:
		return export.ToJSON(g)
	case EncodingYAML:
		if err := tokens.Validate(g); err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		encoder := yaml.NewEncoder(&buf)
		encoder.SetIndent(2)
		if err := encoder.Encode(g); err != nil {
			return nil, tserrors.NewSerializationError(string(enc), err)
		}
		if err := encoder.Close(); err != nil {
			return nil, tserrors.NewSerializationError(string(enc), err)
		}
		return buf.Bytes(), nil
	default:
		return nil, tserrors.NewSerializationError(string(enc), nil)
	}
}

// Save writes g to path atomically: it writes a temporary file in the same
// directory and renames it into place.
func Save(path string, g tokens.Graph) error {
	enc, err := EncodingFor(path)
	if err != nil {
		return err
	}
	data, err := Encode(g, enc)
	if err != nil {
		return err
	}
	return WriteFile(path, data)
}

// WriteFile atomically replaces path with data, creating parent directories.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", path, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write %s: %w", tmpPath, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to set mode on %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to close %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

func withSource(err error, source string) error {
	if importErr, ok := err.(*tserrors.ImportError); ok {
		copied := *importErr
		copied.Source = source
		return &copied
	}
	return err
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}
