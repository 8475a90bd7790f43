package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tokensmith/internal/strategy"
	tserrors "github.com/alexisbeaulieu97/tokensmith/pkg/errors"
)

func TestDefaultConfigIsValid(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, ValidateConfig(&cfg))
	require.NoError(t, cfg.Strategy.Context().Validate())
}

func TestParseConfig(t *testing.T) {
	t.Parallel()

	validYAML := `log:
  level: debug
  human: true
export:
  default_format: tailwind
  output_dir: dist
strategy:
  business_type: ecommerce
  brand_vibe: luxury
suggest:
  timeout: 30s
  max_tokens: 1024
watch:
  debounce: 250ms
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:     "valid configuration overlays defaults",
			contents: validYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, "debug", cfg.Log.Level)
				require.True(t, cfg.Log.Human)
				require.Equal(t, "tailwind", cfg.Export.DefaultFormat)
				require.Equal(t, "dist", cfg.Export.OutputDir)
				require.Equal(t, strategy.Context{
					BusinessType:   strategy.BusinessEcommerce,
					BrandVibe:      strategy.VibeLuxury,
					ConversionGoal: strategy.GoalLead,
				}, cfg.Strategy.Context())
				require.Equal(t, 30*time.Second, cfg.Suggest.Timeout)
				require.Equal(t, 1024, cfg.Suggest.MaxTokens)
				require.Equal(t, "ANTHROPIC_API_KEY", cfg.Suggest.APIKeyEnv)
				require.Equal(t, 250*time.Millisecond, cfg.Watch.Debounce)
				require.Equal(t, "127.0.0.1:8080", cfg.Server.Addr)
			},
		},
		{
			name:     "malformed yaml reports line",
			contents: "log:\n  level: debug\n human: [\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var parseErr *tserrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, "tokensmith.yaml", parseErr.Path)
				require.Greater(t, parseErr.Line, 0)
			},
		},
		{
			name:     "invalid fields are reported by yaml path",
			contents: "log:\n  level: loud\nexport:\n  default_format: scss\nstrategy:\n  brand_vibe: edgy\nsuggest:\n  api_key_env: my-key\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var fe tserrors.FieldErrors
				require.ErrorAs(t, err, &fe)
				require.ElementsMatch(t, []string{
					"log.level",
					"export.default_format",
					"strategy.brand_vibe",
					"suggest.api_key_env",
				}, fe.Fields())
			},
		},
		{
			name:     "durations are range checked",
			contents: "watch:\n  debounce: 1ms\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var fe tserrors.FieldErrors
				require.ErrorAs(t, err, &fe)
				require.Equal(t, []string{"watch.debounce"}, fe.Fields())
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := ParseConfig("tokensmith.yaml", []byte(tc.contents))
			tc.assert(t, cfg, err)
		})
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), *cfg)
}

func TestLoadReadsFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tokensmith.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  addr: 0.0.0.0:9000\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0:9000", cfg.Server.Addr)
	require.Equal(t, "css", cfg.Export.DefaultFormat)
}

func TestResolvePath(t *testing.T) {
	t.Setenv(EnvPath, "/etc/tokensmith.yaml")

	require.Equal(t, "flag.yaml", ResolvePath("flag.yaml"))
	require.Equal(t, "/etc/tokensmith.yaml", ResolvePath(""))

	t.Setenv(EnvPath, "")
	require.Equal(t, DefaultPath, ResolvePath(""))
}

func TestGetValidatorIsSingleton(t *testing.T) {
	t.Parallel()

	require.Same(t, validatorInstance(), validatorInstance())
}
