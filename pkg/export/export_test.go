package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/user/sitelog-check/pkg/engine"
)

func sampleReport() *engine.Report {
	return &engine.Report{
		DocType: "日志",
		Summary: engine.Summary{High: 1, Medium: 1, Total: 2},
		Findings: []engine.Finding{
			{Category: engine.CategoryMissingItems, Severity: engine.SeverityHigh, Title: "缺少：施工部位", Reason: "未检测到部位描述。"},
			{Category: engine.CategoryRiskyPhrases, Severity: engine.SeverityMedium, Title: "风险用词：绝对安全", Quote: "绝对安全"},
		},
		CopyReadySuggestions: []string{"已提示施工单位加强现场管理，并要求按规范落实整改。"},
		FullTextRewrite:      "今日现场巡视。\n补充记录：现场检查总体受控。",
		AIFindings:           []engine.Finding{},
	}
}

func TestWriteConsole(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteConsole(&buf, sampleReport()); err != nil {
		t.Fatalf("WriteConsole: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"校验完成：共 2 条提示（高 1｜中 1｜低 0）",
		"必填项缺失",
		"风险用词",
		"[高] 缺少：施工部位",
		"[中] 风险用词：绝对安全",
		"可直接抄写的建议",
		"完善后的记录草案",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("console output missing %q:\n%s", want, out)
		}
	}
	// AI section only renders when the pass was enabled.
	if strings.Contains(out, "AI 复核") {
		t.Errorf("AI section should be absent without ai_meta:\n%s", out)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleReport()); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	for _, key := range []string{"doc_type", "summary", "findings", "copy_ready_suggestions", "full_text_rewrite", "ai_findings"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("JSON output missing key %q", key)
		}
	}
	if _, ok := decoded["ai_meta"]; ok {
		t.Errorf("ai_meta should be omitted when review did not run")
	}
}
