package suggest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/alexisbeaulieu97/tokensmith/internal/tokens"
)

// DefaultModel is used when Options.Model is empty.
const DefaultModel = "claude-sonnet-4-5-20250929"

// Options configures an AnthropicSuggester.
type Options struct {
	APIKey    string
	Model     string
	MaxTokens int
	BaseURL   string
	// Timeout bounds one Suggest call. Zero means no extra deadline.
	Timeout time.Duration
	// MaxRetries overrides the client's retry count when positive.
	MaxRetries int
}

// AnthropicSuggester implements Suggester with the Anthropic Messages API.
type AnthropicSuggester struct {
	client    *anthropic.Client
	model     string
	maxTokens int
	timeout   time.Duration
}

// NewAnthropicSuggester validates opts and builds the client.
func NewAnthropicSuggester(opts Options) (*AnthropicSuggester, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, errors.New("anthropic API key is not set")
	}
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = 2048
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(opts.APIKey),
	}
	if opts.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(opts.BaseURL))
	}
	if opts.MaxRetries > 0 {
		reqOpts = append(reqOpts, option.WithMaxRetries(opts.MaxRetries))
	}

	client := anthropic.NewClient(reqOpts...)

	return &AnthropicSuggester{
		client:    &client,
		model:     opts.Model,
		maxTokens: opts.MaxTokens,
		timeout:   opts.Timeout,
	}, nil
}

// Suggest implements Suggester.
func (s *AnthropicSuggester) Suggest(ctx context.Context, prompt string, current tokens.Graph) (Suggestion, error) {
	if strings.TrimSpace(prompt) == "" {
		return Suggestion{}, errors.New("prompt is empty")
	}

	system, user, err := BuildMessages(prompt, current)
	if err != nil {
		return Suggestion{}, err
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	msg, err := s.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(s.model),
		MaxTokens: int64(s.maxTokens),
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(user)),
		},
	})
	if err != nil {
		return Suggestion{}, fmt.Errorf("anthropic suggest: %w", err)
	}

	var text strings.Builder
	for _, block := range msg.Content {
		switch b := block.AsAny().(type) {
		case anthropic.TextBlock:
			text.WriteString(b.Text)
		}
	}

	return ParseResponse(text.String())
}
