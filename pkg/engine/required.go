package engine

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/user/sitelog-check/pkg/rules"
)

// Vocabulary for the construction-content multi-signal detector. Generic
// words alone never count as a filled-in content field.
var (
	strongProcessWords = []string{
		"浇筑", "绑扎", "焊接", "切割", "摊铺", "压实", "开挖", "回填", "吊装",
		"张拉", "压浆", "送检", "取样", "验槽", "成孔", "灌注", "安装", "铺设", "调试",
	}
	genericProcessWords = []string{"施工", "作业", "检测", "检查", "维护", "整改"}

	// action word followed by an object word within a bounded window.
	actionObjectRe = regexp.MustCompile(
		`(进行|开展|实施|完成|组织|安排|采用|已)?` +
			`(浇筑|绑扎|焊接|切割|摊铺|压实|开挖|回填|吊装|张拉|压浆|安装|铺设|调试)` +
			`.{0,8}` +
			`(钢筋|混凝土|模板|沥青|管道|支座|梁板|路基|路面|桩|沟槽|试块|试件)`)
)

// Structural location patterns for the site-location detector: building,
// floor, axis, pier, chainage and side/zone vocabulary.
var siteLocationRes = []*regexp.Regexp{
	regexp.MustCompile(`\d+#楼`),
	regexp.MustCompile(`[一二三四五六七八九十\d]+层`),
	regexp.MustCompile(`[A-Z]-?\d+轴`),
	regexp.MustCompile(`[A-Z]?\d+\+\d+`),
	regexp.MustCompile(`K\d+\+\d+`),
	regexp.MustCompile(`\d+\s*(号|#)\s*(墩|台|楼|孔|桩|井|段|塔|梁)`),
	regexp.MustCompile(`[A-Za-z]?\d+\s*(墩|台|楼|孔|桩|井|段|塔|梁)`),
	regexp.MustCompile(`(墩|台)\s*\d+`),
	regexp.MustCompile(`\d+\s*-\s*\d+\s*轴`),
	regexp.MustCompile(`(左|右|中)幅`),
	regexp.MustCompile(`(上游|下游|内侧|外侧)`),
	regexp.MustCompile(`(东侧|西侧|南侧|北侧)`),
	regexp.MustCompile(`(标段|区段|工点|作业面|施工段|部位)`),
	regexp.MustCompile(`(桥台|桥墩|涵洞|隧道|基坑|沟槽|梁板|顶板|底板)`),
}

var chainageRe = regexp.MustCompile(`K\d+\+\d+`)

// CheckRequiredFields emits a missing_items finding for every applicable
// required-field rule whose keywords (or specialized detector) do not match.
func CheckRequiredFields(docType, text string, table []rules.RequiredRule) []Finding {
	var findings []Finding
	t := NormalizeText(text)

	for _, row := range table {
		if !rules.InScope(row.DocType, docType) {
			continue
		}

		field := strings.TrimSpace(row.Field)
		severity := NormalizeSeverity(row.Severity, SeverityMedium)
		hint := strings.TrimSpace(row.Hint)
		suggestion := requiredSuggestion(hint)

		keys := rules.SplitKeywords(row.KeywordsAny)
		if len(keys) == 0 {
			continue
		}

		hit := anyContains(t, keys)
		switch field {
		case "施工内容":
			hit = isConstructionContentHit(t, keys)
		case "施工部位":
			hit = isSiteLocationHit(t, keys)
		}
		if hit {
			continue
		}

		reason := hint
		if reason == "" {
			reason = fmt.Sprintf("未检测到与“%s”相关的关键词。", field)
		}
		findings = append(findings, Finding{
			Category:   CategoryMissingItems,
			Severity:   severity,
			Title:      "缺少：" + field,
			Reason:     reason,
			Suggestion: suggestion,
		})
	}
	return findings
}

// requiredSuggestion rewrites a rule hint into a copy-ready actionable
// sentence starting with an advisory prefix.
func requiredSuggestion(hint string) string {
	s := hint
	if strings.HasPrefix(s, "缺少") {
		return "建议补充：" + strings.TrimSpace(strings.Replace(s, "缺少", "", 1))
	}
	if s != "" && !strings.HasPrefix(s, "建议") && !strings.HasPrefix(s, "请") {
		return "建议补充：" + s
	}
	return s
}

// isConstructionContentHit applies loose multi-signal detection for the
// construction-content field so that generic words alone do not count as
// present, while natural process descriptions are not flagged.
func isConstructionContentHit(t string, keys []string) bool {
	// Signal 1: a strong process word appears.
	if anyContains(t, strongProcessWords) {
		return true
	}
	// Signal 2: action word + object word within the window.
	if actionObjectRe.MatchString(t) {
		return true
	}
	// Signal 3: at least two distinct non-generic configured keywords.
	distinct := make(map[string]struct{})
	for _, k := range keys {
		if k == "" || !strings.Contains(t, k) {
			continue
		}
		if containsString(genericProcessWords, k) {
			continue
		}
		distinct[k] = struct{}{}
	}
	return len(distinct) >= 2
}

// isSiteLocationHit accepts structural location expressions or a literal
// multi-character keyword. Single-character keywords only count inside a
// chainage expression (e.g. K0+800) so a bare letter never matches.
func isSiteLocationHit(t string, keys []string) bool {
	for _, re := range siteLocationRes {
		if re.MatchString(t) {
			return true
		}
	}
	for _, k := range keys {
		if k == "" {
			continue
		}
		if len([]rune(k)) == 1 {
			if strings.EqualFold(k, "K") && chainageRe.MatchString(t) {
				return true
			}
			continue
		}
		if strings.Contains(t, k) {
			return true
		}
	}
	return false
}

func anyContains(t string, words []string) bool {
	for _, w := range words {
		if w != "" && strings.Contains(t, w) {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
