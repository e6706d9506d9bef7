package engine

import (
	"fmt"
	"strings"
	"testing"
)

func TestMakeCopyReadySuggestions(t *testing.T) {
	findings := []Finding{
		{Suggestion: "短句"}, // too short to stand alone
		{Suggestion: "建议补充：养护开始时间、责任人、频次。"},
		{Suggestion: "建议补充：养护开始时间、责任人、频次。"}, // duplicate
	}
	got := makeCopyReadySuggestions(findings)
	if got[0] != "建议补充：养护开始时间、责任人、频次。" {
		t.Errorf("unexpected first suggestion: %q", got[0])
	}
	// one kept suggestion + the four stock closers
	if len(got) != 5 {
		t.Errorf("expected 5 suggestions, got %d: %v", len(got), got)
	}
}

func TestMakeCopyReadySuggestionsCap(t *testing.T) {
	var findings []Finding
	for i := 0; i < 15; i++ {
		findings = append(findings, Finding{Suggestion: fmt.Sprintf("建议补充第%02d项整改内容。", i)})
	}
	got := makeCopyReadySuggestions(findings)
	if len(got) != maxCopyReadySuggestions {
		t.Errorf("suggestions should be capped at %d, got %d", maxCopyReadySuggestions, len(got))
	}
}

func TestMakeFullTextRewrite(t *testing.T) {
	findings := []Finding{
		{Title: "缺少：施工部位", Category: CategoryMissingItems},
		{Title: "问题闭环不完整", Category: CategoryClosureIssues},
	}
	got := makeFullTextRewrite("日志", "今日现场巡视", findings)
	if !strings.HasPrefix(got, "今日现场巡视。\n") {
		t.Errorf("base text should gain closing punctuation: %q", got)
	}
	if !strings.Contains(got, "施工部位：请补充明确位置") {
		t.Errorf("missing site template not appended: %q", got)
	}
	if !strings.Contains(got, "整改闭环：已要求施工单位整改") {
		t.Errorf("closure template not appended: %q", got)
	}
}

func TestMakeFullTextRewriteFallback(t *testing.T) {
	got := makeFullTextRewrite("日志", "今日现场巡视。", nil)
	if !strings.Contains(got, "补充记录：现场检查总体受控") {
		t.Errorf("fallback line expected: %q", got)
	}
	if strings.Contains(got, "。。") {
		t.Errorf("punctuation must not double up: %q", got)
	}
}

func TestMakeFullTextRewriteEmpty(t *testing.T) {
	if got := makeFullTextRewrite("日志", "  ", nil); got != "" {
		t.Errorf("empty text must yield empty rewrite, got %q", got)
	}
}
