package engine

import "strings"

// Summary tallies findings by normalized severity.
type Summary struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
	Total  int `json:"total"`
}

// ReviewMeta records provenance of the optional AI review pass. It is always
// present in a report so consumers can tell "disabled" from "failed".
type ReviewMeta struct {
	Enabled   bool   `json:"enabled"`
	Source    string `json:"source"`
	Status    string `json:"status"`
	TimeoutMS int    `json:"timeout_ms"`
	Error     string `json:"error"`
}

// Report is the full evaluation result for one document.
type Report struct {
	DocType              string      `json:"doc_type"`
	Summary              Summary     `json:"summary"`
	Findings             []Finding   `json:"findings"`
	CopyReadySuggestions []string    `json:"copy_ready_suggestions"`
	FullTextRewrite      string      `json:"full_text_rewrite"`
	AIFindings           []Finding   `json:"ai_findings"`
	AIMeta               *ReviewMeta `json:"ai_meta,omitempty"`
}

var defaultSuggestions = []string{
	"已提示施工单位加强现场管理，并要求按规范落实整改。",
	"已对整改情况进行复查，整改措施落实到位。",
	"关键工序已实施旁站监理，过程受控。",
	"已督促完善安全防护及警示标志，确保施工安全。",
}

const maxCopyReadySuggestions = 12

// makeCopyReadySuggestions collects finding suggestions long enough to stand
// alone (6+ runes), deduplicates them in order, backfills with the stock
// closing sentences and caps the list.
func makeCopyReadySuggestions(findings []Finding) []string {
	out := make([]string, 0, len(findings))
	seen := make(map[string]struct{})
	for _, f := range findings {
		sug := strings.TrimSpace(f.Suggestion)
		if sug == "" || len([]rune(sug)) < 6 {
			continue
		}
		if _, ok := seen[sug]; ok {
			continue
		}
		seen[sug] = struct{}{}
		out = append(out, sug)
	}
	for _, d := range defaultSuggestions {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	if len(out) > maxCopyReadySuggestions {
		out = out[:maxCopyReadySuggestions]
	}
	return out
}

// makeFullTextRewrite keeps the original text and appends whole sentences
// fixing the structural gaps the findings point at, so the result can replace
// the log entry directly instead of being a pile of fragments.
func makeFullTextRewrite(docType, text string, findings []Finding) string {
	base := NormalizeText(text)
	if base == "" {
		return ""
	}

	var hasMissingSite, hasPersonnelMissing, hasClosureIssue bool
	for _, f := range findings {
		if strings.Contains(f.Title, "缺少：施工部位") {
			hasMissingSite = true
		}
		if strings.Contains(f.Title, "条件必填缺失") && anyContains(f.Quote, []string{"施工", "作业", "浇筑"}) {
			hasPersonnelMissing = true
		}
		if f.Category == CategoryClosureIssues {
			hasClosureIssue = true
		}
	}

	var lines []string
	if hasMissingSite {
		lines = append(lines, "施工部位：请补充明确位置（如：X区X轴线/X楼层X作业面/桩号KX+XXX段）。")
	}
	if hasPersonnelMissing {
		lines = append(lines, "现场人员：管理人员X名（监理X名、施工管理X名），作业人员X名。")
	}
	if hasClosureIssue {
		lines = append(lines, "整改闭环：已要求施工单位整改，并于X时复查，整改完成，满足要求。")
	}
	if len(lines) == 0 {
		lines = append(lines, "补充记录：现场检查总体受控，后续将持续跟踪并复查关键工序落实情况。")
	}

	suffix := strings.Join(lines, "\n")
	if strings.HasSuffix(base, "。") || strings.HasSuffix(base, "！") || strings.HasSuffix(base, "？") {
		return base + "\n" + suffix
	}
	return base + "。\n" + suffix
}
