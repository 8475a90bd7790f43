package suggest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tokensmith/internal/tokens"
	tserrors "github.com/alexisbeaulieu97/tokensmith/pkg/errors"
)

func TestParseResponseEnvelope(t *testing.T) {
	t.Parallel()

	text := "Here you go:\n```json\n{\"tokens\": {\"colors\": {\"primary\": \"#1d4ed8\"}}, \"rationale\": \" Darker blue passes AA. \"}\n```"
	s, err := ParseResponse(text)
	require.NoError(t, err)
	require.Equal(t, "Darker blue passes AA.", s.Rationale)
	require.Equal(t, map[string]any{"colors.primary": "#1d4ed8"}, s.Fragment.Flatten())
}

func TestParseResponseBareObject(t *testing.T) {
	t.Parallel()

	s, err := ParseResponse(`{"typography": {"baseSize": 18}}`)
	require.NoError(t, err)
	require.Empty(t, s.Rationale)
	require.Equal(t, map[string]any{"typography.baseSize": 18.0}, s.Fragment.Flatten())
}

func TestParseResponseErrors(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"no json here", `{"tokens": [1, 2]}`, `{"colors": {"primary": }`} {
		_, err := ParseResponse(text)
		var importErr *tserrors.ImportError
		require.ErrorAs(t, err, &importErr, text)
	}
}

func TestApplyRejectsBadFieldsIndividually(t *testing.T) {
	t.Parallel()

	s, err := ParseResponse(`{"tokens": {"colors": {"primary": "#1D4ED8", "accent": "orange"}, "typography": {"scaleRatio": 0.5}}}`)
	require.NoError(t, err)

	result := Apply(tokens.Default(), s)
	require.Equal(t, "#1D4ED8", result.Graph.Colors.Primary)
	require.Equal(t, tokens.Default().Colors.Accent, result.Graph.Colors.Accent)
	require.Equal(t, []string{"colors.primary"}, result.Applied)
	require.ElementsMatch(t, []string{"colors.accent", "typography.scaleRatio"}, result.Rejected.Fields())
}

func TestBuildMessagesEmbedsCurrentTokens(t *testing.T) {
	t.Parallel()

	system, user, err := BuildMessages("  make it warmer ", tokens.Default())
	require.NoError(t, err)
	require.Contains(t, system, "4.5:1")
	require.Contains(t, user, "Request: make it warmer\n")
	require.Contains(t, user, `"primary": "#3B82F6"`)
}

func TestAnthropicSuggesterCallsMessagesAPI(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var path, apiKey string
	var captured struct {
		Model     string `json:"model"`
		MaxTokens int    `json:"max_tokens"`
		System    []struct {
			Text string `json:"text"`
		} `json:"system"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		path = r.URL.Path
		apiKey = r.Header.Get("X-Api-Key")
		_ = json.Unmarshal(body, &captured)
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"id": "msg_01",
			"type": "message",
			"role": "assistant",
			"model": "claude-test",
			"content": [{"type": "text", "text": "{\"tokens\": {\"colors\": {\"accent\": \"#ea580c\"}}, \"rationale\": \"Warmer accent.\"}"}],
			"stop_reason": "end_turn",
			"stop_sequence": null,
			"usage": {"input_tokens": 10, "output_tokens": 20}
		}`)
	}))
	t.Cleanup(srv.Close)

	s, err := NewAnthropicSuggester(Options{APIKey: "test-key", Model: "claude-test", MaxTokens: 512, BaseURL: srv.URL + "/"})
	require.NoError(t, err)

	suggestion, err := s.Suggest(context.Background(), "warmer accent", tokens.Default())
	require.NoError(t, err)
	require.Equal(t, "Warmer accent.", suggestion.Rationale)

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, "/v1/messages", path)
	require.Equal(t, "test-key", apiKey)
	require.Equal(t, "claude-test", captured.Model)
	require.Equal(t, 512, captured.MaxTokens)
	require.Len(t, captured.System, 1)

	merged := Apply(tokens.Default(), suggestion)
	require.Equal(t, "#EA580C", merged.Graph.Colors.Accent)
}

func TestAnthropicSuggesterSurfacesAPIErrors(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"type": "error", "error": {"type": "invalid_request_error", "message": "bad model"}}`)
	}))
	t.Cleanup(srv.Close)

	s, err := NewAnthropicSuggester(Options{APIKey: "test-key", BaseURL: srv.URL + "/", MaxRetries: 1})
	require.NoError(t, err)

	_, err = s.Suggest(context.Background(), "anything", tokens.Default())
	require.Error(t, err)
	require.Contains(t, err.Error(), "anthropic suggest")
}

func TestNewAnthropicSuggesterRequiresKey(t *testing.T) {
	t.Parallel()

	_, err := NewAnthropicSuggester(Options{})
	require.Error(t, err)
}

func TestSuggestRejectsEmptyPrompt(t *testing.T) {
	t.Parallel()

	s, err := NewAnthropicSuggester(Options{APIKey: "k"})
	require.NoError(t, err)

	_, err = s.Suggest(context.Background(), "   ", tokens.Default())
	require.Error(t, err)
}
