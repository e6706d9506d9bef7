package review

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/felixgeelhaar/fortify/retry"
	"github.com/felixgeelhaar/fortify/timeout"

	"github.com/user/sitelog-check/pkg/engine"
	"github.com/user/sitelog-check/pkg/logging"
)

const (
	defaultTimeoutMS = 6000

	StatusDisabled = "disabled"
	StatusSkipped  = "skipped"
	StatusOK       = "ok"
	StatusFallback = "fallback"
)

// Augment runs the optional AI review pass and attaches its outcome to the
// report. It never returns an error and never panics outward: any provider
// failure degrades to an empty ai_findings list with status "fallback", so
// the rule-based report always survives intact.
//
// Gating: enabled via AI_REVIEW_ENABLED (or the enabled argument), timeout
// via AI_REVIEW_TIMEOUT_MS with the configured timeoutMS as its base value
// (pass 0 for the built-in default). AI findings are kept separate from the
// report's findings and summary.
func Augment(ctx context.Context, provider Provider, docType, text string, report *engine.Report, enabled *bool, timeoutMS int) {
	on := EnvFlag("AI_REVIEW_ENABLED", false)
	if enabled != nil {
		on = *enabled
	}
	if timeoutMS <= 0 {
		timeoutMS = defaultTimeoutMS
	}
	timeoutMS = envInt("AI_REVIEW_TIMEOUT_MS", timeoutMS)

	meta := &engine.ReviewMeta{
		Enabled:   on,
		Source:    "none",
		Status:    StatusDisabled,
		TimeoutMS: timeoutMS,
	}
	report.AIFindings = []engine.Finding{}
	report.AIMeta = meta

	if !on {
		return
	}
	if provider == nil {
		meta.Status = StatusSkipped
		meta.Error = "provider_missing"
		return
	}
	if strings.TrimSpace(text) == "" {
		meta.Status = StatusSkipped
		meta.Error = "empty_input"
		return
	}

	result, err := callProvider(ctx, provider, docType, text, report, timeoutMS)
	if err != nil {
		logging.Debugf("review provider %s failed: %v", provider.Name(), err)
		meta.Status = StatusFallback
		meta.Error = err.Error()
		return
	}

	meta.Source = provider.Name()
	meta.Status = StatusOK
	if result != nil {
		report.AIFindings = SanitizeFindings(result.Findings)
		applyMetaOverrides(meta, result.Meta)
	}
}

// callProvider wraps the provider call with an overall timeout and a short
// retry, and converts provider panics into plain errors.
func callProvider(ctx context.Context, provider Provider, docType, text string, report *engine.Report, timeoutMS int) (*Result, error) {
	dur := time.Duration(timeoutMS) * time.Millisecond

	t := timeout.New[*Result](timeout.Config{DefaultTimeout: dur})
	r := retry.New[*Result](retry.Config{
		MaxAttempts:   2,
		InitialDelay:  200 * time.Millisecond,
		BackoffPolicy: retry.BackoffExponential,
	})

	return t.Execute(ctx, dur, func(ctx context.Context) (*Result, error) {
		return r.Do(ctx, func(ctx context.Context) (result *Result, err error) {
			defer func() {
				if rec := recover(); rec != nil {
					result = nil
					err = fmt.Errorf("provider panic: %v", rec)
				}
			}()
			return provider.Review(ctx, docType, text, report)
		})
	})
}

// SanitizeFindings normalizes provider output into well-formed findings:
// category defaults to semantic_ai, severity is normalized with a medium
// fallback and the title is never empty.
func SanitizeFindings(raw []engine.Finding) []engine.Finding {
	out := make([]engine.Finding, 0, len(raw))
	for _, f := range raw {
		category := strings.TrimSpace(f.Category)
		if category == "" {
			category = engine.CategorySemanticAI
		}
		title := strings.TrimSpace(f.Title)
		if title == "" {
			title = "AI提示"
		}
		out = append(out, engine.Finding{
			Category:   category,
			Severity:   engine.NormalizeSeverity(f.Severity, engine.SeverityMedium),
			Title:      title,
			Quote:      strings.TrimSpace(f.Quote),
			Reason:     strings.TrimSpace(f.Reason),
			Suggestion: strings.TrimSpace(f.Suggestion),
		})
	}
	return out
}

func applyMetaOverrides(meta *engine.ReviewMeta, overrides map[string]string) {
	for k, v := range overrides {
		switch k {
		case "source":
			meta.Source = v
		case "status":
			meta.Status = v
		case "error":
			meta.Error = v
		}
	}
}

// EnvFlag reads a boolean environment toggle; 1/true/yes/on count as set.
func EnvFlag(name string, def bool) bool {
	raw := strings.ToLower(strings.TrimSpace(os.Getenv(name)))
	if raw == "" {
		return def
	}
	switch raw {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

func envInt(name string, def int) int {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
