package engine

import (
	"testing"

	"github.com/user/sitelog-check/pkg/rules"
)

func TestLogicConflicts(t *testing.T) {
	table := []rules.LogicRule{{
		TriggerA: "降雨/大雨",
		TriggerB: "正常施工",
		Severity: "low",
	}}

	findings := CheckLogicConflicts("日志", "今日降雨，各作业面正常施工。", table)
	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(findings))
	}
	f := findings[0]
	if f.Title != "可能存在逻辑矛盾/缺项" || f.Category != CategoryLogicWarnings {
		t.Errorf("unexpected finding: %+v", f)
	}
	if f.Quote != "降雨 & 正常施工" {
		t.Errorf("unexpected quote: %q", f.Quote)
	}

	if got := CheckLogicConflicts("日志", "今日降雨，停止室外作业。", table); len(got) != 0 {
		t.Errorf("single trigger must not fire, got %d findings", len(got))
	}
}
