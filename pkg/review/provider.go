package review

import (
	"context"

	"github.com/user/sitelog-check/pkg/engine"
)

// Result is the raw outcome of one review call, before sanitization.
// Meta entries may override report provenance fields (source, status, error);
// the enabled flag is never provider-controlled.
type Result struct {
	Findings []engine.Finding  `json:"findings"`
	Meta     map[string]string `json:"meta,omitempty"`
}

// Provider reviews a document together with its rule-based report and
// returns supplementary findings.
type Provider interface {
	Name() string
	Review(ctx context.Context, docType, text string, report *engine.Report) (*Result, error)
}

// ProviderFunc adapts a plain function to the Provider interface.
type ProviderFunc func(ctx context.Context, docType, text string, report *engine.Report) (*Result, error)

func (f ProviderFunc) Name() string { return "callable_provider" }

func (f ProviderFunc) Review(ctx context.Context, docType, text string, report *engine.Report) (*Result, error) {
	return f(ctx, docType, text, report)
}
