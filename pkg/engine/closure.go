package engine

import (
	"strings"

	"github.com/user/sitelog-check/pkg/rules"
)

// CheckClosure verifies the issue → action → verification pattern: an issue
// keyword hit (itself negation-checked) without a matching action keyword or
// verification keyword yields a closure_issues finding naming what is
// missing. Identical missing-component signatures are reported once.
func CheckClosure(docType, text string, table []rules.ClosureRule) []Finding {
	var findings []Finding
	t := NormalizeText(text)
	seenSignatures := make(map[string]struct{})

	for _, row := range table {
		if !rules.InScope(row.DocType, docType) {
			continue
		}
		issueWords := rules.SplitKeywords(row.IssueWords)
		actionWords := rules.SplitKeywords(row.ActionWords)
		verifyWords := rules.SplitKeywords(row.VerifyWords)
		if len(issueWords) == 0 {
			continue
		}

		severity := NormalizeSeverity(row.Severity, SeverityHigh)
		hint := strings.TrimSpace(row.Hint)

		issueHit := false
		for _, w := range issueWords {
			if strings.Contains(t, w) && !isNegatedMention(t, w) {
				issueHit = true
				break
			}
		}
		if !issueHit {
			continue
		}

		actionHit := anyContains(t, actionWords)
		verifyHit := anyContains(t, verifyWords)
		if actionHit && verifyHit {
			continue
		}

		var missing []string
		if !actionHit {
			missing = append(missing, "处理措施")
		}
		if !verifyHit {
			missing = append(missing, "复查/结果")
		}
		sig := strings.Join(missing, "+")
		if _, ok := seenSignatures[sig]; ok {
			continue
		}
		seenSignatures[sig] = struct{}{}

		suggestion := hint
		if suggestion == "" {
			suggestion = "建议补充：已要求/已督促...；已复查，整改完成...（形成闭环）"
		}
		findings = append(findings, Finding{
			Category:   CategoryClosureIssues,
			Severity:   severity,
			Title:      "问题闭环不完整",
			Quote:      strings.Join(headKeywords(issueWords, 3), " / "),
			Reason:     "检测到问题描述，但未完整体现：" + sig,
			Suggestion: suggestion,
		})
	}
	return findings
}
