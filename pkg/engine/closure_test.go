package engine

import (
	"strings"
	"testing"

	"github.com/user/sitelog-check/pkg/rules"
)

func closureRule() rules.ClosureRule {
	return rules.ClosureRule{
		IssueWords:  "渗漏/裂缝",
		ActionWords: "整改/返工",
		VerifyWords: "复查/复检",
		Severity:    "high",
	}
}

func TestClosureMissingBothComponents(t *testing.T) {
	findings := CheckClosure("日志", "底板发现渗漏。", []rules.ClosureRule{closureRule()})
	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(findings))
	}
	f := findings[0]
	if f.Title != "问题闭环不完整" {
		t.Errorf("unexpected title: %q", f.Title)
	}
	if !strings.Contains(f.Reason, "处理措施") || !strings.Contains(f.Reason, "复查/结果") {
		t.Errorf("reason should name both missing components: %q", f.Reason)
	}
}

func TestClosureCompleteLoopPasses(t *testing.T) {
	text := "底板发现渗漏，已要求整改，当日复查，整改完成。"
	if got := CheckClosure("日志", text, []rules.ClosureRule{closureRule()}); len(got) != 0 {
		t.Errorf("complete loop should pass, got %d findings", len(got))
	}
}

func TestClosureNegatedIssueIgnored(t *testing.T) {
	if got := CheckClosure("日志", "检查中未见渗漏。", []rules.ClosureRule{closureRule()}); len(got) != 0 {
		t.Errorf("negated issue must not open a loop, got %d findings", len(got))
	}
}

func TestClosureSignatureDedupe(t *testing.T) {
	table := []rules.ClosureRule{
		closureRule(),
		{IssueWords: "蜂窝/麻面", ActionWords: "修补", VerifyWords: "复查", Severity: "medium"},
	}
	// Both rules miss the same components; one finding per signature.
	findings := CheckClosure("日志", "发现渗漏，梁底有蜂窝。", table)
	if len(findings) != 1 {
		t.Errorf("identical missing-component signatures should collapse, got %d", len(findings))
	}
}
