// Package suggest asks a generative model for token edits and turns the
// answer into a fragment that is merged field by field, so a bad value in
// the response never corrupts the graph.
package suggest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/tokensmith/internal/tokens"
	tserrors "github.com/alexisbeaulieu97/tokensmith/pkg/errors"
)

// Suggestion is a parsed model answer.
type Suggestion struct {
	Fragment  tokens.Fragment `json:"tokens"`
	Rationale string          `json:"rationale"`
}

// Suggester produces token edits for a free-form request.
type Suggester interface {
	Suggest(ctx context.Context, prompt string, current tokens.Graph) (Suggestion, error)
}

// Apply merges s onto current. Rejected fields are reported in the result.
func Apply(current tokens.Graph, s Suggestion) tokens.MergeResult {
	return tokens.Merge(current, s.Fragment)
}

const systemPrompt = `You are a senior UI engineer who treats WCAG 2.1 AA as a hard requirement.
You edit design tokens. Rules:
1. Colors are #RRGGBB hex strings.
2. colors.light.text must reach 4.5:1 contrast against colors.light.canvas.
3. colors.dark.text must reach 4.5:1 contrast against colors.dark.canvas.
4. typography.scaleRatio is greater than 1; typography.baseSize is in pixels.
5. Only include the tokens you change, nested exactly like the current document.
Answer with a single JSON object {"tokens": {...}, "rationale": "..."} and nothing else.`

// BuildMessages returns the system prompt and the user message for a request.
func BuildMessages(prompt string, current tokens.Graph) (string, string, error) {
	doc, err := json.MarshalIndent(current, "", "  ")
	if err != nil {
		return "", "", tserrors.NewSerializationError("json", err)
	}
	user := fmt.Sprintf("Request: %s\n\nCurrent tokens:\n%s", strings.TrimSpace(prompt), doc)
	return systemPrompt, user, nil
}

// ParseResponse extracts a Suggestion from model text. Markdown code fences
// and prose around the JSON object are ignored. A bare token object without
// the {"tokens": ...} envelope is accepted too.
func ParseResponse(text string) (Suggestion, error) {
	raw := extractObject(text)
	if raw == "" {
		return Suggestion{}, tserrors.NewImportError("suggestion", "", "response contains no JSON object", nil)
	}

	var envelope map[string]any
	if err := json.Unmarshal([]byte(raw), &envelope); err != nil {
		return Suggestion{}, tserrors.NewImportError("suggestion", "", "malformed JSON", err)
	}

	inner, hasTokens := envelope["tokens"]
	if !hasTokens {
		return Suggestion{Fragment: tokens.Fragment(envelope)}, nil
	}

	fragment, ok := inner.(map[string]any)
	if !ok {
		return Suggestion{}, tserrors.NewImportError("suggestion", "tokens", fmt.Sprintf("expected an object, got %T", inner), nil)
	}

	rationale, _ := envelope["rationale"].(string)
	return Suggestion{Fragment: tokens.Fragment(fragment), Rationale: strings.TrimSpace(rationale)}, nil
}

func extractObject(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return ""
	}
	return text[start : end+1]
}
