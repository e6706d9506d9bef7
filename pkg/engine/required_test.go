package engine

import (
	"strings"
	"testing"

	"github.com/user/sitelog-check/pkg/rules"
)

func contentRule() rules.RequiredRule {
	return rules.RequiredRule{
		DocType:     "日志",
		Field:       "施工内容",
		KeywordsAny: "施工/浇筑/摊铺/绑扎",
		Severity:    "high",
		Hint:        "缺少具体施工内容描述",
	}
}

func siteRule() rules.RequiredRule {
	return rules.RequiredRule{
		DocType:     "日志",
		Field:       "施工部位",
		KeywordsAny: "部位/轴线/K",
		Severity:    "medium",
	}
}

func TestRequiredFieldsConstructionContent(t *testing.T) {
	table := []rules.RequiredRule{contentRule()}

	// Generic wording alone is not a content description.
	findings := CheckRequiredFields("日志", "今日施工，一切受控。", table)
	if len(findings) != 1 {
		t.Fatalf("expected 1 finding for generic wording, got %d", len(findings))
	}
	f := findings[0]
	if f.Title != "缺少：施工内容" {
		t.Errorf("unexpected title: %q", f.Title)
	}
	if f.Category != CategoryMissingItems || f.Severity != SeverityHigh {
		t.Errorf("unexpected category/severity: %s/%s", f.Category, f.Severity)
	}
	if !strings.HasPrefix(f.Suggestion, "建议补充：") {
		t.Errorf("suggestion not rewritten: %q", f.Suggestion)
	}

	// A strong process word satisfies the detector.
	if got := CheckRequiredFields("日志", "今日对梁板进行混凝土浇筑。", table); len(got) != 0 {
		t.Errorf("strong process word should satisfy the field, got %d findings", len(got))
	}
}

func TestRequiredFieldsSiteLocation(t *testing.T) {
	table := []rules.RequiredRule{siteRule()}

	if got := CheckRequiredFields("日志", "今日浇筑混凝土。", table); len(got) != 1 {
		t.Fatalf("expected missing-site finding, got %d", len(got))
	}

	satisfied := []string{
		"3#楼二层浇筑",
		"A-3轴钢筋绑扎",
		"桩号K3+200段摊铺",
		"5号墩立柱施工",
	}
	for _, text := range satisfied {
		if got := CheckRequiredFields("日志", text, table); len(got) != 0 {
			t.Errorf("text %q should satisfy site location, got %d findings", text, len(got))
		}
	}
}

func TestRequiredFieldsDocTypeScope(t *testing.T) {
	table := []rules.RequiredRule{contentRule()}
	if got := CheckRequiredFields("巡视", "今日巡视。", table); len(got) != 0 {
		t.Errorf("rule scoped to 日志 must not fire for 巡视, got %d findings", len(got))
	}
}
