package engine

import (
	"testing"

	"github.com/user/sitelog-check/pkg/rules"
)

func TestForbiddenPhrases(t *testing.T) {
	table := []rules.ForbiddenRule{{
		Phrase:      "安全隐患",
		Severity:    "high",
		SafeReplace: "已发现并处置的具体问题",
	}}

	findings := CheckForbiddenPhrases("日志", "现场存在安全隐患，已要求整改。", table)
	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(findings))
	}
	f := findings[0]
	if f.Title != "风险用词：安全隐患" || f.Category != CategoryRiskyPhrases {
		t.Errorf("unexpected finding: %+v", f)
	}
	if f.Reason == "" {
		t.Error("default risk reason should be filled in")
	}
}

func TestForbiddenPhrasesNegatedMentionSuppressed(t *testing.T) {
	table := []rules.ForbiddenRule{{Phrase: "安全隐患", Severity: "high"}}
	findings := CheckForbiddenPhrases("日志", "现场未见安全隐患。", table)
	if len(findings) != 0 {
		t.Errorf("negated mention must be suppressed, got %d findings", len(findings))
	}
}

func TestForbiddenPhrasesAbsolutes(t *testing.T) {
	table := []rules.ForbiddenRule{{Phrase: "绝对安全", Severity: "中"}}
	findings := CheckForbiddenPhrases("巡视", "该部位绝对安全。", table)
	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(findings))
	}
	if findings[0].Severity != SeverityMedium {
		t.Errorf("Chinese severity label should normalize, got %q", findings[0].Severity)
	}
}
