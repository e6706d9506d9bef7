package engine

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/user/sitelog-check/pkg/rules"
)

// Pruning thresholds for the conditional-requirement evaluator. The values
// are tuned noise-reduction constants carried over as-is.
const concreteFindingCap = 2

var equipmentWords = map[string]struct{}{
	"摊铺机": {}, "运输车": {}, "压路机": {}, "振动压路机": {}, "夯实机": {},
	"平板夯": {}, "吊车": {}, "起重机": {}, "泵车": {}, "罐车": {}, "振捣器": {},
	"挖机": {}, "装载机": {}, "自卸车": {},
}

var materialWords = map[string]struct{}{
	"混凝土": {}, "坍落度": {}, "试件": {}, "配合比": {}, "强度": {}, "钢筋": {},
	"HRB": {}, "直径": {}, "接头": {}, "焊条": {}, "套筒": {}, "沥青": {},
	"混合料": {}, "油石比": {}, "级配": {}, "水泥": {}, "含水量": {}, "管材": {},
	"砂石": {}, "垫层": {}, "回填料": {}, "卷材": {}, "涂料": {}, "厚度": {},
	"搭接": {}, "合格证": {}, "复试": {},
}

var execContextWords = []string{
	"正在", "进行", "开展", "实施", "作业", "浇筑", "摊铺", "压实", "开挖",
	"吊装", "泵送", "回填", "碾压", "完成",
}

// planning-only wording must not trigger equipment requirements.
var planContextWords = []string{"计划", "拟", "将于", "明日", "明天", "后续"}

var qualityContextWords = []string{
	"材料", "合格证", "复试", "试验", "检测", "取样", "送检", "配合比", "坍落度",
	"强度", "油石比", "级配", "含水量", "HRB", "直径", "套筒", "焊条", "卷材",
	"涂料", "厚度", "搭接",
}

var personnelTriggerWords = []string{
	"作业", "浇筑", "摊铺", "开挖", "吊装", "张拉", "压实", "焊接", "切割",
}

var (
	mgmtRoleRe  = regexp.MustCompile(`(现场管理人员|管理人员|管理岗|监理人员)`)
	workerRe    = regexp.MustCompile(`(工人|作业人员|施工人员)`)
	headcountRe = regexp.MustCompile(`([0-9]+|[一二三四五六七八九十百]+)\s*(名|人)`)
	safetyRe    = regexp.MustCompile(`(安全员|专职安全员|安全管理人员)`)
)

type pendingConditional struct {
	finding  Finding
	trigger  string
	required string
	ruleCode string
}

// CheckConditionalRequired evaluates trigger/requirement pairs with context
// gates, then prunes: concrete-pour findings capped, findings prioritized by
// requirement category, one finding per (rule code, requirement) signature.
func CheckConditionalRequired(docType, text string, table []rules.ConditionalRule) []Finding {
	t := NormalizeText(text)
	var pending []pendingConditional

	for _, row := range table {
		if !rules.InScope(row.DocType, docType) {
			continue
		}
		triggerAny := rules.SplitKeywords(row.TriggerAny)
		requiredAny := rules.SplitKeywords(row.RequiredAny)
		if len(triggerAny) == 0 || len(requiredAny) == 0 {
			continue
		}

		severity := NormalizeSeverity(row.Severity, SeverityMedium)
		hint := strings.TrimSpace(row.Hint)
		ruleCode := row.RuleCode

		trigHit := anyContains(t, triggerAny)
		// personnel_count uses a stricter trigger so that wording like
		// 施工单位 does not fire the rule by itself.
		if ruleCode == "personnel_count" {
			trigHit = hasExecutionTrigger(t)
		}
		// Equipment requirements only apply when work is actually underway,
		// not in planning language.
		if requiresEquipment(requiredAny) && !isExecutionContext(t) {
			trigHit = false
		}
		// Material requirements additionally need execution or quality
		// context (inspection / certification vocabulary).
		if requiresMaterial(requiredAny) {
			if !isExecutionContext(t) && !anyContains(t, qualityContextWords) {
				trigHit = false
			}
		}
		if !trigHit {
			continue
		}

		reqHit := anyContains(t, requiredAny)
		switch ruleCode {
		case "personnel_count":
			// Satisfied only by management wording + worker wording + a
			// numeric headcount, all three at once.
			reqHit = mgmtRoleRe.MatchString(t) && workerRe.MatchString(t) && headcountRe.MatchString(t)
		case "safety_personnel":
			reqHit = safetyRe.MatchString(t)
		}
		if reqHit {
			continue
		}

		suggestion := hint
		if suggestion == "" {
			suggestion = "建议补充：" + strings.Join(requiredAny, "/")
		}
		pending = append(pending, pendingConditional{
			finding: Finding{
				Category:   CategoryMissingItems,
				Severity:   severity,
				Title:      "条件必填缺失",
				Quote:      "触发：" + strings.Join(headKeywords(triggerAny, 3), "/"),
				Reason:     fmt.Sprintf("检测到触发关键词，但未检测到要求项：%s", strings.Join(headKeywords(requiredAny, 3), "/")),
				Suggestion: suggestion,
			},
			trigger:  strings.Join(triggerAny, "/"),
			required: strings.Join(requiredAny, "/"),
			ruleCode: ruleCode,
		})
	}

	return pruneConditional(pending)
}

// pruneConditional caps concrete-pour findings, orders the rest by
// requirement priority and deduplicates rule families.
func pruneConditional(pending []pendingConditional) []Finding {
	if len(pending) == 0 {
		return nil
	}

	var concrete, others []pendingConditional
	for _, item := range pending {
		if isConcreteRelated(item.trigger) {
			concrete = append(concrete, item)
		} else {
			others = append(others, item)
		}
	}

	if len(concrete) > 0 {
		sortConditional(concrete)
		if len(concrete) > concreteFindingCap {
			concrete = concrete[:concreteFindingCap]
		}
	}

	merged := append(others, concrete...)
	sortConditional(merged)

	var findings []Finding
	seen := make(map[[2]string]struct{})
	for _, item := range merged {
		sig := [2]string{item.ruleCode, item.required}
		if _, ok := seen[sig]; ok {
			continue
		}
		seen[sig] = struct{}{}
		findings = append(findings, item.finding)
	}
	return findings
}

func sortConditional(items []pendingConditional) {
	sort.SliceStable(items, func(i, j int) bool {
		pi, pj := requirementPriority(items[i].required), requirementPriority(items[j].required)
		if pi != pj {
			return pi < pj
		}
		return items[i].finding.Quote < items[j].finding.Quote
	})
}

func isConcreteRelated(trigger string) bool {
	return anyContains(trigger, []string{"混凝土", "浇筑", "砼", "泵送"})
}

// requirementPriority keeps quality-closure items first and pushes equipment
// hints last to reduce same-family noise.
func requirementPriority(required string) int {
	switch {
	case anyContains(required, []string{"试件", "取样", "送检"}):
		return 0
	case anyContains(required, []string{"旁站", "全过程监督", "见证"}):
		return 1
	case anyContains(required, []string{"管理人员", "工人", "作业人员"}):
		return 2
	default:
		return 3
	}
}

func requiresEquipment(requiredKeys []string) bool {
	for _, k := range requiredKeys {
		if _, ok := equipmentWords[k]; ok {
			return true
		}
	}
	return false
}

func requiresMaterial(requiredKeys []string) bool {
	for _, k := range requiredKeys {
		if _, ok := materialWords[k]; ok {
			return true
		}
	}
	return false
}

func isExecutionContext(t string) bool {
	if anyContains(t, execContextWords) {
		return true
	}
	// Generic construction wording counts only without planning markers.
	return strings.Contains(t, "施工") && !anyContains(t, planContextWords)
}

// hasExecutionTrigger matches the explicit action verbs, plus 施工 except
// when it only appears as part of 施工单位 (RE2 has no lookahead, so the
// exclusion is an explicit scan).
func hasExecutionTrigger(t string) bool {
	if anyContains(t, personnelTriggerWords) {
		return true
	}
	for rest := t; ; {
		idx := strings.Index(rest, "施工")
		if idx < 0 {
			return false
		}
		after := rest[idx+len("施工"):]
		if !strings.HasPrefix(after, "单位") {
			return true
		}
		rest = after
	}
}

func headKeywords(keys []string, n int) []string {
	if len(keys) <= n {
		return keys
	}
	return keys[:n]
}
