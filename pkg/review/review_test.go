package review

import (
	"context"
	"errors"
	"testing"

	"github.com/user/sitelog-check/pkg/engine"
)

func boolPtr(b bool) *bool { return &b }

func TestAugmentDisabled(t *testing.T) {
	report := &engine.Report{}
	Augment(context.Background(), nil, "日志", "text", report, boolPtr(false), 0)

	if report.AIMeta == nil {
		t.Fatal("ai_meta must always be attached")
	}
	if report.AIMeta.Status != StatusDisabled || report.AIMeta.Enabled {
		t.Errorf("unexpected meta: %+v", report.AIMeta)
	}
	if len(report.AIFindings) != 0 {
		t.Errorf("disabled review must not produce findings")
	}
	if report.AIMeta.TimeoutMS != defaultTimeoutMS {
		t.Errorf("default timeout expected, got %d", report.AIMeta.TimeoutMS)
	}
}

func TestAugmentProviderMissing(t *testing.T) {
	report := &engine.Report{}
	Augment(context.Background(), nil, "日志", "text", report, boolPtr(true), 0)

	if report.AIMeta.Status != StatusSkipped || report.AIMeta.Error != "provider_missing" {
		t.Errorf("unexpected meta: %+v", report.AIMeta)
	}
}

func TestAugmentEmptyInputSkipped(t *testing.T) {
	called := false
	provider := ProviderFunc(func(ctx context.Context, docType, text string, report *engine.Report) (*Result, error) {
		called = true
		return &Result{}, nil
	})

	report := &engine.Report{}
	Augment(context.Background(), provider, "日志", "   ", report, boolPtr(true), 0)

	if called {
		t.Error("provider must not be invoked for empty input")
	}
	if report.AIMeta.Status != StatusSkipped || report.AIMeta.Error != "empty_input" {
		t.Errorf("unexpected meta: %+v", report.AIMeta)
	}
}

func TestAugmentOK(t *testing.T) {
	provider := ProviderFunc(func(ctx context.Context, docType, text string, report *engine.Report) (*Result, error) {
		return &Result{Findings: []engine.Finding{
			{Severity: "高", Quote: " 片段 "},
		}}, nil
	})

	report := &engine.Report{}
	Augment(context.Background(), provider, "日志", "text", report, boolPtr(true), 0)

	if report.AIMeta.Status != StatusOK || report.AIMeta.Source != "callable_provider" {
		t.Fatalf("unexpected meta: %+v", report.AIMeta)
	}
	if len(report.AIFindings) != 1 {
		t.Fatalf("expected 1 AI finding, got %d", len(report.AIFindings))
	}
	f := report.AIFindings[0]
	if f.Category != engine.CategorySemanticAI || f.Severity != engine.SeverityHigh {
		t.Errorf("finding not sanitized: %+v", f)
	}
	if f.Title != "AI提示" || f.Quote != "片段" {
		t.Errorf("defaults/trimming not applied: %+v", f)
	}
}

func TestAugmentMetaOverrides(t *testing.T) {
	provider := ProviderFunc(func(ctx context.Context, docType, text string, report *engine.Report) (*Result, error) {
		return &Result{Meta: map[string]string{"source": "unit", "enabled": "false"}}, nil
	})

	report := &engine.Report{}
	Augment(context.Background(), provider, "日志", "text", report, boolPtr(true), 0)

	if report.AIMeta.Source != "unit" {
		t.Errorf("meta source override not applied: %+v", report.AIMeta)
	}
	if !report.AIMeta.Enabled {
		t.Errorf("enabled flag must not be provider-controlled: %+v", report.AIMeta)
	}
}

func TestAugmentFallbackOnError(t *testing.T) {
	provider := ProviderFunc(func(ctx context.Context, docType, text string, report *engine.Report) (*Result, error) {
		return nil, errors.New("upstream unavailable")
	})

	report := &engine.Report{}
	Augment(context.Background(), provider, "日志", "text", report, boolPtr(true), 0)

	if report.AIMeta.Status != StatusFallback || report.AIMeta.Error == "" {
		t.Errorf("unexpected meta: %+v", report.AIMeta)
	}
	if len(report.AIFindings) != 0 {
		t.Errorf("failed review must not leave partial findings")
	}
}

func TestAugmentFallbackOnPanic(t *testing.T) {
	provider := ProviderFunc(func(ctx context.Context, docType, text string, report *engine.Report) (*Result, error) {
		panic("boom")
	})

	report := &engine.Report{}
	Augment(context.Background(), provider, "日志", "text", report, boolPtr(true), 0)

	if report.AIMeta.Status != StatusFallback {
		t.Errorf("panic must degrade to fallback: %+v", report.AIMeta)
	}
}

func TestAugmentTimeoutFromEnv(t *testing.T) {
	t.Setenv("AI_REVIEW_TIMEOUT_MS", "2500")
	report := &engine.Report{}
	Augment(context.Background(), nil, "日志", "text", report, boolPtr(false), 0)
	if report.AIMeta.TimeoutMS != 2500 {
		t.Errorf("timeout override not applied: %d", report.AIMeta.TimeoutMS)
	}
}

func TestAugmentTimeoutFromConfig(t *testing.T) {
	t.Setenv("AI_REVIEW_TIMEOUT_MS", "")
	report := &engine.Report{}
	Augment(context.Background(), nil, "日志", "text", report, boolPtr(false), 2500)
	if report.AIMeta.TimeoutMS != 2500 {
		t.Errorf("configured timeout should be the base value, got %d", report.AIMeta.TimeoutMS)
	}
}

func TestAugmentTimeoutEnvWinsOverConfig(t *testing.T) {
	t.Setenv("AI_REVIEW_TIMEOUT_MS", "1200")
	report := &engine.Report{}
	Augment(context.Background(), nil, "日志", "text", report, boolPtr(false), 9000)
	if report.AIMeta.TimeoutMS != 1200 {
		t.Errorf("env timeout should win over the configured one, got %d", report.AIMeta.TimeoutMS)
	}
}

func TestEnvFlag(t *testing.T) {
	t.Setenv("AI_REVIEW_ENABLED", "on")
	if !EnvFlag("AI_REVIEW_ENABLED", false) {
		t.Error("'on' should enable the flag")
	}
	t.Setenv("AI_REVIEW_ENABLED", "0")
	if EnvFlag("AI_REVIEW_ENABLED", true) {
		t.Error("'0' should disable the flag")
	}
}

func TestParsePayloadShapes(t *testing.T) {
	array := `[{"title":"提示","severity":"low"}]`
	res, err := ParsePayload(array)
	if err != nil || len(res.Findings) != 1 {
		t.Fatalf("bare array: res=%+v err=%v", res, err)
	}

	object := `{"findings":[{"title":"提示"}],"meta":{"source":"unit"}}`
	res, err = ParsePayload(object)
	if err != nil || len(res.Findings) != 1 || res.Meta["source"] != "unit" {
		t.Fatalf("object payload: res=%+v err=%v", res, err)
	}

	fenced := "```json\n[{\"title\":\"提示\"}]\n```"
	res, err = ParsePayload(fenced)
	if err != nil || len(res.Findings) != 1 {
		t.Fatalf("fenced payload: res=%+v err=%v", res, err)
	}

	if _, err := ParsePayload("not json"); err == nil {
		t.Error("garbage payload must error")
	}
	if _, err := ParsePayload(""); err == nil {
		t.Error("empty payload must error")
	}
}
