package llm

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Gateway is the text-completion capability the analyzer and content
// generators depend on.
type Gateway interface {
	Complete(ctx context.Context, system, prompt string, maxTokens int, temperature float64) (text string, err error)
}

// NullGateway stands in when no API key is configured. Every call fails
// immediately, which routes callers onto their deterministic fallbacks.
type NullGateway struct{}

// Complete always fails.
func (NullGateway) Complete(_ context.Context, _, _ string, _ int, _ float64) (text string, err error) {
	err = errors.New("claude client not configured")
	return text, err
}

// NewGateway returns a Claude-backed gateway, or the null gateway when the
// API key is empty.
func NewGateway(apiKey, model string) (gw Gateway) {
	if apiKey == "" {
		logrus.Warn("no Anthropic API key configured, all content will come from fallbacks")
		gw = NullGateway{}
		return gw
	}

	gw = NewClient(apiKey, model)
	return gw
}
