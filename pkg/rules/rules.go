// Package rules holds the typed rule tables the evaluators consume. Rule
// rows are read-only configuration: the engine never mutates them, and one
// loaded Catalogue may be shared across concurrent evaluations.
package rules

import (
	"regexp"
	"strings"
)

// RequiredRule declares a field that must be present in the document.
type RequiredRule struct {
	DocType     string `yaml:"doc_type"`
	Field       string `yaml:"field"`
	KeywordsAny string `yaml:"keywords_any"`
	Severity    string `yaml:"severity"`
	Hint        string `yaml:"hint"`
}

// ConditionalRule fires when a trigger keyword is present but none of the
// required companion keywords are. RuleCode selects specialized logic
// (personnel_count, safety_personnel).
type ConditionalRule struct {
	DocType     string `yaml:"doc_type"`
	TriggerAny  string `yaml:"trigger_any"`
	RequiredAny string `yaml:"required_any"`
	Severity    string `yaml:"severity"`
	Hint        string `yaml:"hint"`
	RuleCode    string `yaml:"rule_code"`
}

// ForbiddenRule flags a risky phrase unless it occurs in a negated context.
type ForbiddenRule struct {
	DocType     string `yaml:"doc_type"`
	Phrase      string `yaml:"phrase"`
	Severity    string `yaml:"severity"`
	RiskReason  string `yaml:"risk_reason"`
	SafeReplace string `yaml:"safe_replace"`
}

// ClosureRule describes an issue → action → verification triple.
type ClosureRule struct {
	DocType     string `yaml:"doc_type"`
	IssueWords  string `yaml:"issue_words"`
	ActionWords string `yaml:"action_words"`
	VerifyWords string `yaml:"verify_words"`
	Severity    string `yaml:"severity"`
	Hint        string `yaml:"hint"`
}

// LogicRule warns when two independent keyword sets co-occur.
type LogicRule struct {
	DocType  string `yaml:"doc_type"`
	TriggerA string `yaml:"trigger_a"`
	TriggerB string `yaml:"trigger_b"`
	Severity string `yaml:"severity"`
	Hint     string `yaml:"hint"`
}

// Catalogue groups the five rule tables of one rule set.
type Catalogue struct {
	Required     []RequiredRule    `yaml:"required_fields"`
	Conditional  []ConditionalRule `yaml:"conditional_required"`
	Forbidden    []ForbiddenRule   `yaml:"forbidden_phrases"`
	Closure      []ClosureRule     `yaml:"closure_rules"`
	Logic        []LogicRule       `yaml:"logic_conflicts"`
}

var keywordSplitRe = regexp.MustCompile(`[/,，、\s]+`)

// SplitKeywords splits a slash/comma/whitespace-delimited keyword cell into
// its non-empty parts.
func SplitKeywords(cell string) []string {
	s := strings.TrimSpace(cell)
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range keywordSplitRe.Split(s, -1) {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// InScope reports whether a rule row's doc-type scope covers docType.
// Empty scope and "all"/"全部" apply to every document type; everything else
// is compared case-sensitively.
func InScope(ruleDocType, docType string) bool {
	v := strings.TrimSpace(ruleDocType)
	if v == "" {
		return true
	}
	if strings.ToLower(v) == "all" || v == "全部" {
		return true
	}
	return v == strings.TrimSpace(docType)
}

// normalize performs the light cleanup applied once at load time: trimmed
// cells and lowercased rule codes. Rule semantics stay with the catalogue
// author.
func (c *Catalogue) normalize() {
	for i := range c.Conditional {
		r := &c.Conditional[i]
		r.DocType = strings.TrimSpace(r.DocType)
		r.TriggerAny = strings.TrimSpace(r.TriggerAny)
		r.RequiredAny = strings.TrimSpace(r.RequiredAny)
		r.Severity = strings.TrimSpace(r.Severity)
		r.Hint = strings.TrimSpace(r.Hint)
		r.RuleCode = strings.ToLower(strings.TrimSpace(r.RuleCode))
	}
}
