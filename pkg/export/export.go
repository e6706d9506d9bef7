package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/user/sitelog-check/pkg/engine"
)

// Category display order and labels for the console report.
var categoryOrder = []string{
	engine.CategoryMissingItems,
	engine.CategoryRiskyPhrases,
	engine.CategoryClosureIssues,
	engine.CategoryLogicWarnings,
	engine.CategorySemanticAI,
}

var categoryLabels = map[string]string{
	engine.CategoryMissingItems:  "必填项缺失",
	engine.CategoryRiskyPhrases:  "风险用词",
	engine.CategoryClosureIssues: "闭环问题",
	engine.CategoryLogicWarnings: "逻辑/一致性提醒",
	engine.CategorySemanticAI:    "AI 补充提示",
}

var severityBadges = map[string]string{
	engine.SeverityHigh:   "高",
	engine.SeverityMedium: "中",
	engine.SeverityLow:    "低",
}

// WriteJSON emits the full report as indented JSON.
func WriteJSON(w io.Writer, report *engine.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(report)
}

// WriteConsole renders the report as a grouped, human-readable text report.
func WriteConsole(w io.Writer, report *engine.Report) error {
	fmt.Fprintf(w, "文档类型：%s\n", report.DocType)
	fmt.Fprintf(w, "校验完成：共 %d 条提示（高 %d｜中 %d｜低 %d）\n",
		report.Summary.Total, report.Summary.High, report.Summary.Medium, report.Summary.Low)

	for _, category := range categoryOrder {
		var group []engine.Finding
		for _, f := range report.Findings {
			if f.Category == category {
				group = append(group, f)
			}
		}
		if len(group) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n== %s（%d）==\n", categoryLabels[category], len(group))
		for _, f := range group {
			writeFinding(w, f)
		}
	}

	if len(report.CopyReadySuggestions) > 0 {
		fmt.Fprintf(w, "\n== 可直接抄写的建议 ==\n")
		for i, s := range report.CopyReadySuggestions {
			fmt.Fprintf(w, "%d. %s\n", i+1, s)
		}
	}

	if report.FullTextRewrite != "" {
		fmt.Fprintf(w, "\n== 完善后的记录草案 ==\n%s\n", report.FullTextRewrite)
	}

	if report.AIMeta != nil && report.AIMeta.Enabled {
		fmt.Fprintf(w, "\n== AI 复核（%s｜%s）==\n", report.AIMeta.Source, report.AIMeta.Status)
		if report.AIMeta.Error != "" {
			fmt.Fprintf(w, "错误：%s\n", report.AIMeta.Error)
		}
		for _, f := range report.AIFindings {
			writeFinding(w, f)
		}
	}
	return nil
}

func writeFinding(w io.Writer, f engine.Finding) {
	badge := severityBadges[f.Severity]
	if badge == "" {
		badge = f.Severity
	}
	fmt.Fprintf(w, "[%s] %s\n", badge, f.Title)
	if f.Quote != "" {
		fmt.Fprintf(w, "    片段：%s\n", f.Quote)
	}
	if f.Reason != "" {
		fmt.Fprintf(w, "    说明：%s\n", f.Reason)
	}
	if f.Suggestion != "" {
		fmt.Fprintf(w, "    建议：%s\n", f.Suggestion)
	}
}
