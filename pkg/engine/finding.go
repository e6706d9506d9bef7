package engine

import "strings"

// Finding categories. The identifiers are a stable contract consumed by
// report rendering and export.
const (
	CategoryMissingItems  = "missing_items"
	CategoryRiskyPhrases  = "risky_phrases"
	CategoryClosureIssues = "closure_issues"
	CategoryLogicWarnings = "logic_warnings"
	CategorySemanticAI    = "semantic_ai"
)

// Severity levels, normalized form.
const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
	SeverityLow    = "low"
)

// sevOrder ranks severities for sorting; Chinese and English labels share
// one ordinal scale.
var sevOrder = map[string]int{
	"high":   3,
	"medium": 2,
	"low":    1,
	"高":      3,
	"中":      2,
	"低":      1,
}

var sevAliases = map[string]string{
	"high":   "high",
	"medium": "medium",
	"low":    "low",
	"高":      "high",
	"中":      "medium",
	"低":      "low",
}

// Finding represents one reported issue. It is a value type: no identity
// beyond its fields, immutable once produced.
type Finding struct {
	Category   string `json:"category"`
	Severity   string `json:"severity"`
	Title      string `json:"title"`
	Quote      string `json:"quote"`
	Reason     string `json:"reason"`
	Suggestion string `json:"suggestion"`
}

// NormalizeSeverity maps any known severity label (either language, any
// case) to its normalized form. Unknown or empty values fall back to def.
func NormalizeSeverity(sev, def string) string {
	raw := strings.TrimSpace(sev)
	if raw == "" {
		return def
	}
	if v, ok := sevAliases[strings.ToLower(raw)]; ok {
		return v
	}
	if v, ok := sevAliases[raw]; ok {
		return v
	}
	return def
}

// SeverityRank returns the ordinal of a severity label, 0 for unknown.
func SeverityRank(sev string) int {
	return sevOrder[NormalizeSeverity(sev, "")]
}
