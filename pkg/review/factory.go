package review

import (
	"context"
	"fmt"
)

// NewProvider builds a reviewer for the configured provider name.
func NewProvider(ctx context.Context, providerName, apiKey, modelName string) (Provider, error) {
	switch providerName {
	case "gemini":
		return NewGeminiReviewer(ctx, apiKey, modelName)
	case "openai":
		return NewOpenAIReviewer(apiKey, modelName), nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", providerName)
	}
}
