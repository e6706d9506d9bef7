package engine

import (
	"strings"

	"github.com/user/sitelog-check/pkg/rules"
)

// CheckForbiddenPhrases flags configured risky phrases found in the text.
// Phrases that only occur in a negated context (未见/无/未发现 + phrase) are
// suppressed entirely, not downgraded.
func CheckForbiddenPhrases(docType, text string, table []rules.ForbiddenRule) []Finding {
	var findings []Finding
	t := NormalizeText(text)

	for _, row := range table {
		phrase := strings.TrimSpace(row.Phrase)
		if phrase == "" {
			continue
		}
		if !rules.InScope(row.DocType, docType) {
			continue
		}
		if !strings.Contains(t, phrase) {
			continue
		}
		if isNegatedMention(t, phrase) {
			continue
		}

		reason := strings.TrimSpace(row.RiskReason)
		if reason == "" {
			reason = "该表述可能过于绝对或指责性较强，存在合规风险。"
		}
		findings = append(findings, Finding{
			Category:   CategoryRiskyPhrases,
			Severity:   NormalizeSeverity(row.Severity, SeverityMedium),
			Title:      "风险用词：" + phrase,
			Quote:      phrase,
			Reason:     reason,
			Suggestion: strings.TrimSpace(row.SafeReplace),
		})
	}
	return findings
}
