package engine

import "testing"

func findByTitle(findings []Finding, title string) *Finding {
	for i := range findings {
		if findings[i].Title == title {
			return &findings[i]
		}
	}
	return nil
}

func TestSemanticBadWeatherHighRiskWork(t *testing.T) {
	findings := CheckSemanticPatterns("日志", "今日大雨，现场吊装作业继续施工。")
	f := findByTitle(findings, "恶劣天气施工风险")
	if f == nil {
		t.Fatal("expected 恶劣天气施工风险 finding")
	}
	if f.Severity != SeverityHigh || f.Category != CategoryLogicWarnings {
		t.Errorf("unexpected severity/category: %s/%s", f.Severity, f.Category)
	}
}

func TestSemanticCuringPlanMissing(t *testing.T) {
	findings := CheckSemanticPatterns("日志", "今日3#楼顶板浇筑混凝土30m³。")
	if findByTitle(findings, "养护方案缺失") == nil {
		t.Fatal("expected 养护方案缺失 finding")
	}

	cured := CheckSemanticPatterns("日志", "今日3#楼顶板浇筑混凝土30m³，浇筑后覆盖洒水养护。")
	if findByTitle(cured, "养护方案缺失") != nil {
		t.Error("curing wording should satisfy the check")
	}
}

func TestSemanticVerbalFixWithoutRecheck(t *testing.T) {
	findings := CheckSemanticPatterns("日志", "发现钢筋间距偏大，已口头要求整改。")
	if findByTitle(findings, "口头整改未形成闭环") == nil {
		t.Fatal("expected 口头整改未形成闭环 finding")
	}

	closed := CheckSemanticPatterns("日志", "发现钢筋间距偏大，已口头要求整改，当日复查整改完成。")
	if findByTitle(closed, "口头整改未形成闭环") != nil {
		t.Error("recheck wording should close the loop")
	}
}

func TestSemanticSafetyBriefingMissing(t *testing.T) {
	findings := CheckSemanticPatterns("巡视", "巡视外架搭设作业。")
	if findByTitle(findings, "安全技术交底缺失") == nil {
		t.Fatal("expected 安全技术交底缺失 finding")
	}

	briefed := CheckSemanticPatterns("巡视", "巡视外架搭设作业，已核对安全技术交底记录。")
	if findByTitle(briefed, "安全技术交底缺失") != nil {
		t.Error("briefing record should satisfy the check")
	}
}

func TestSemanticCleanTextNoFindings(t *testing.T) {
	if got := CheckSemanticPatterns("日志", "今日天气晴。"); len(got) != 0 {
		t.Errorf("clean text should yield no findings, got %d: %+v", len(got), got)
	}
	if got := CheckSemanticPatterns("日志", ""); got != nil {
		t.Errorf("empty text should yield nil, got %+v", got)
	}
}
