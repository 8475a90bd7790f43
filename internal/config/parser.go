// Package config loads the tokensmith.yaml application configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	tserrors "github.com/alexisbeaulieu97/tokensmith/pkg/errors"
)

// EnvPath names the environment variable that overrides the config path.
const EnvPath = "TOKENSMITH_CONFIG"

// DefaultPath is used when neither a flag nor EnvPath supplies a path.
const DefaultPath = "tokensmith.yaml"

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ResolvePath picks the config path: an explicit flag value wins, then
// TOKENSMITH_CONFIG, then DefaultPath.
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(EnvPath); env != "" {
		return env
	}
	return DefaultPath
}

// Load reads path on top of Default. A missing file is not an error; the
// defaults are returned as is.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &cfg, nil
		}
		return nil, tserrors.NewParseError(path, 0, err)
	}

	return parse(path, data, cfg)
}

// ParseConfig decodes data as if it were read from path.
func ParseConfig(path string, data []byte) (*Config, error) {
	return parse(path, data, Default())
}

func parse(path string, data []byte, cfg Config) (*Config, error) {
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, tserrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
