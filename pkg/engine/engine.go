package engine

import (
	"sort"

	"github.com/user/sitelog-check/pkg/rules"
)

// RunChecks evaluates one document against the rule catalogue and produces a
// complete report. Evaluators run in a fixed order; the report is then
// aggregated deterministically, so the same inputs always yield the same
// output.
//
// The AI fields are initialized empty; see pkg/review for the optional
// augmentation pass.
func RunChecks(docType, text string, catalogue *rules.Catalogue) *Report {
	report := &Report{
		DocType:              docType,
		Findings:             []Finding{},
		CopyReadySuggestions: []string{},
		AIFindings:           []Finding{},
	}
	if NormalizeText(text) == "" {
		return report
	}

	var findings []Finding
	findings = append(findings, CheckRequiredFields(docType, text, catalogue.Required)...)
	findings = append(findings, CheckConditionalRequired(docType, text, catalogue.Conditional)...)
	findings = append(findings, CheckForbiddenPhrases(docType, text, catalogue.Forbidden)...)
	findings = append(findings, CheckClosure(docType, text, catalogue.Closure)...)
	findings = append(findings, CheckLogicConflicts(docType, text, catalogue.Logic)...)
	findings = append(findings, CheckSemanticPatterns(docType, text)...)

	for i := range findings {
		findings[i].Severity = NormalizeSeverity(findings[i].Severity, SeverityMedium)
	}
	sort.SliceStable(findings, func(i, j int) bool {
		ri, rj := SeverityRank(findings[i].Severity), SeverityRank(findings[j].Severity)
		if ri != rj {
			return ri > rj
		}
		return findings[i].Category < findings[j].Category
	})

	for _, f := range findings {
		switch f.Severity {
		case SeverityHigh:
			report.Summary.High++
		case SeverityMedium:
			report.Summary.Medium++
		case SeverityLow:
			report.Summary.Low++
		}
	}
	report.Summary.Total = len(findings)
	if findings == nil {
		findings = []Finding{}
	}
	report.Findings = findings
	report.CopyReadySuggestions = makeCopyReadySuggestions(findings)
	report.FullTextRewrite = makeFullTextRewrite(docType, text, findings)
	return report
}
