package engine

import (
	"fmt"
	"strings"

	"github.com/user/sitelog-check/pkg/rules"
)

// CheckLogicConflicts warns when two independent keyword sets are both
// present. Co-occurrence itself is the signal, so no negation handling is
// applied here.
func CheckLogicConflicts(docType, text string, table []rules.LogicRule) []Finding {
	var findings []Finding
	t := NormalizeText(text)

	for _, row := range table {
		if !rules.InScope(row.DocType, docType) {
			continue
		}
		a := rules.SplitKeywords(row.TriggerA)
		b := rules.SplitKeywords(row.TriggerB)
		if len(a) == 0 || len(b) == 0 {
			continue
		}
		if !anyContains(t, a) || !anyContains(t, b) {
			continue
		}

		suggestion := strings.TrimSpace(row.Hint)
		if suggestion == "" {
			suggestion = "请核对描述是否一致，必要时补充措施或原因说明。"
		}
		findings = append(findings, Finding{
			Category:   CategoryLogicWarnings,
			Severity:   NormalizeSeverity(row.Severity, SeverityLow),
			Title:      "可能存在逻辑矛盾/缺项",
			Quote:      fmt.Sprintf("%s & %s", a[0], b[0]),
			Reason:     "文本同时命中两个触发条件，建议核对是否需补充说明。",
			Suggestion: suggestion,
		})
	}
	return findings
}
