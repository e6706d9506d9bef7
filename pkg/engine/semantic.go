package engine

import "regexp"

// The semantic heuristic catalogue: a fixed, non-configurable set of
// composite pattern checks covering domain risk scenarios that keyword rule
// rows cannot express. Each check is a pure function over the normalized
// text and is registered in semanticChecks in evaluation order.

type semanticCheck func(t string) []Finding

var semCache = newPatternCache()

// rx returns a cached compiled pattern. The expressions are static, so this
// amounts to compile-on-first-use.
func rx(expr string) *regexp.Regexp {
	return semCache.get(expr)
}

func one(category, severity, title, quote, reason, suggestion string) []Finding {
	return []Finding{{
		Category:   category,
		Severity:   severity,
		Title:      title,
		Quote:      quote,
		Reason:     reason,
		Suggestion: suggestion,
	}}
}

// CheckSemanticPatterns runs every registered semantic check against the
// normalized text. At most one finding is kept per title (title-level
// deduplication, applied only within this evaluator).
func CheckSemanticPatterns(docType, text string) []Finding {
	t := NormalizeText(text)
	if t == "" {
		return nil
	}

	var findings []Finding
	seenTitles := make(map[string]struct{})
	for _, check := range semanticChecks {
		for _, f := range check(t) {
			if _, ok := seenTitles[f.Title]; ok {
				continue
			}
			seenTitles[f.Title] = struct{}{}
			findings = append(findings, f)
		}
	}
	return findings
}

var semanticChecks = []semanticCheck{
	// Hazardous weather + high-risk work still underway.
	func(t string) []Finding {
		if rx(`(大雨|暴雨|雷雨|大风|强风|雨中)`).MatchString(t) &&
			rx(`(吊装|起重|高空|高处|临边|张拉)`).MatchString(t) &&
			rx(`(继续作业|继续施工|同意继续|正常施工)`).MatchString(t) {
			return one(CategoryLogicWarnings, SeverityHigh, "恶劣天气施工风险",
				"恶劣天气/高风险作业/继续施工",
				"检测到恶劣天气下仍继续高风险作业，存在较大安全风险。",
				"建议补充：停工或风险评估结论、专项审批及现场防护措施。")
		}
		return nil
	},
	// Verbal-only remediation without a re-inspection record.
	func(t string) []Finding {
		if rx(`(口头要求整改|已口头要求整改|口头整改)`).MatchString(t) &&
			!rx(`(复查|复检|整改完成|闭环)`).MatchString(t) {
			return one(CategoryClosureIssues, SeverityMedium, "口头整改未形成闭环",
				"口头整改",
				"文本仅体现口头整改，未见复查结果或闭环证据。",
				"建议补充：整改责任人、整改时限、复查时间和复查结论。")
		}
		return nil
	},
	// Record authored by contractor staff instead of supervision staff.
	func(t string) []Finding {
		if rx(`记录人[:：].{0,12}施工员`).MatchString(t) {
			return one(CategoryLogicWarnings, SeverityMedium, "监理记录主体疑似不规范",
				"记录人：施工员",
				"日志记录主体出现施工员，可能与监理日志责任边界不一致。",
				"建议补充：监理人员签名及旁站/巡视记录，明确责任主体。")
		}
		return nil
	},
	// Positive conclusion directly beside problem language.
	func(t string) []Finding {
		if rx(`(发现|存在|偏大|缺失|不完整|隐患|漏浆|塌方|起泡|渗漏)`).MatchString(t) &&
			rx(`(质量合格|符合设计要求|基本受控|同意继续|可投入使用)`).MatchString(t) {
			return one(CategoryLogicWarnings, SeverityMedium, "结论与问题描述可能不一致",
				"发现问题 + 合格/继续结论",
				"文本同时出现问题描述与直接放行结论，建议核对是否已完成整改与复查。",
				"建议补充：问题整改措施、复查记录及放行依据。")
		}
		return nil
	},
	// Boilerplate phrasing without quantification or a site/step.
	func(t string) []Finding {
		cliche := rx(`(整体正常|质量良好|进度满足计划|安全生产形势稳定|继续施工)`).MatchString(t)
		hasNumber := rx(`[0-9一二三四五六七八九十]+`).MatchString(t)
		hasSiteOrStep := rx(`(施工部位|浇筑|摊铺|开挖|张拉|吊装|压实|安装|桩号|轴线|楼层|墩|台)`).MatchString(t)
		if cliche && (!hasNumber || !hasSiteOrStep) {
			return one(CategoryMissingItems, SeverityLow, "记录内容偏模板化",
				"整体正常/继续施工",
				"描述偏概括，缺少可追溯的部位、工序或量化数据。",
				"建议补充：施工部位、具体工序、检测数据及处理结果。")
		}
		return nil
	},
	// Acceptance / sign-off evidence reported missing.
	func(t string) []Finding {
		if rx(`(未见|未记录|未体现|未说明|无).{0,10}(验收|签认|签字|报验|隐检|隐蔽验收)`).MatchString(t) {
			return one(CategoryMissingItems, SeverityMedium, "验收签认信息缺失",
				"验收/签认/报验",
				"检测到验收签认相关信息缺失，无法形成放行依据。",
				"建议补充：验收程序、签认人员、报验记录及结论。")
		}
		return nil
	},
	// Inspection / monitoring data reported missing.
	func(t string) []Finding {
		if rx(`(未见|未记录|未说明|无).{0,12}(检测|监测|试验|抽检|数据|压实度|坍落度|温度|压降|方量)`).MatchString(t) {
			return one(CategoryMissingItems, SeverityMedium, "检测监测数据缺失",
				"检测/监测/试验数据",
				"检测到关键检测监测数据缺失，质量判断依据不足。",
				"建议补充：检测点位、实测数值、判定标准和结论。")
		}
		return nil
	},
	// Hazard event without shutdown or escalated handling.
	func(t string) []Finding {
		direct := rx(`(塌方|失稳|裂缝|开裂|隐患|大雨|大风|基坑|积水).{0,24}(继续施工|继续作业|同意继续|未停工|未暂停|仍继续)`).MatchString(t)
		weak := rx(`(基坑|积水|开裂|支护)`).MatchString(t) && rx(`(注意排水|雨停后处理)`).MatchString(t)
		if direct || weak {
			return one(CategoryLogicWarnings, SeverityHigh, "风险处置升级不足",
				"隐患/继续施工",
				"检测到风险事件后仍继续施工，未体现停工或升级处置。",
				"建议补充：停工指令、会商结论、加固措施与复工条件。")
		}
		return nil
	},
	// Open-flame work without approval / fire controls.
	func(t string) []Finding {
		if rx(`(焊接|切割|动火).{0,24}(未见|无|未记录|未提供).{0,10}(审批|灭火器|防火毯|隔离|监护|消防)`).MatchString(t) {
			return one(CategoryMissingItems, SeverityHigh, "动火安全措施缺失",
				"动火审批/消防隔离",
				"检测到动火作业，但未体现审批及消防隔离监护措施。",
				"建议补充：动火审批单、灭火器配置、隔离措施和现场监护记录。")
		}
		return nil
	},
	// Material traceability records missing.
	func(t string) []Finding {
		if rx(`(未见|未记录|未提供|无).{0,10}(批次|台账|编号|复试|合格证|追溯)`).MatchString(t) {
			return one(CategoryMissingItems, SeverityMedium, "材料追溯资料缺失",
				"批次/台账/复试",
				"检测到材料追溯相关资料缺失，质量可追溯性不足。",
				"建议补充：批次编号、台账、复试报告及对应关系。")
		}
		return nil
	},
	// Instrument calibration validity missing.
	func(t string) []Finding {
		if rx(`(压力表|油表|千斤顶|量具|仪器).{0,16}(未校验|未核验|无.{0,6}(校验|证书|有效期))`).MatchString(t) {
			return one(CategoryMissingItems, SeverityMedium, "设备量具校验信息缺失",
				"校验/有效期",
				"检测到关键设备或量具缺少校验有效期信息。",
				"建议补充：校验证书编号、有效期和使用确认记录。")
		}
		return nil
	},
	// Confined-space controls missing.
	func(t string) []Finding {
		if rx(`(井内|有限空间|接收井).{0,24}(未见|未记录|无).{0,10}(气体检测|通风|监护|应急)`).MatchString(t) {
			return one(CategoryMissingItems, SeverityHigh, "有限空间作业控制缺失",
				"气体检测/通风/监护",
				"检测到有限空间作业控制措施缺失，存在较高安全风险。",
				"建议补充：气体检测、通风、监护安排和应急预案执行记录。")
		}
		return nil
	},
	// Traffic-diversion acceptance evidence missing.
	func(t string) []Finding {
		if rx(`(导改|围挡|临时通行|警示灯|反光).{0,24}(未见|未记录|无|缺失).{0,10}(验收|照片|留证|影像|引导)`).MatchString(t) {
			return one(CategoryMissingItems, SeverityMedium, "导改验收留证缺失",
				"导改/留证",
				"检测到导改通行措施缺少验收留证信息。",
				"建议补充：导改验收记录、影像编号和现场引导措施。")
		}
		return nil
	},
	// Surface defect handled superficially, no recheck loop.
	func(t string) []Finding {
		if rx(`(漏浆|离析|起泡|翘边|蜂窝|麻面)`).MatchString(t) &&
			rx(`(简单封堵|简单处理|回补找平|后期再调)`).MatchString(t) &&
			!rx(`(复查|复检|返工|整改完成|闭环)`).MatchString(t) {
			return one(CategoryClosureIssues, SeverityMedium, "缺陷处置闭环不足",
				"漏浆/离析/简单处理",
				"检测到质量缺陷仅简单处置，未体现复检复查闭环。",
				"建议补充：返工或修补措施、复检结果和闭环记录。")
		}
		return nil
	},
	// Curing measures without time / owner / frequency.
	func(t string) []Finding {
		if rx(`(养护|保湿|洒水|覆盖|自然养护)`).MatchString(t) {
			lacksCore := !rx(`(开始时间|责任人|频次|每日|每班|巡查)`).MatchString(t)
			weakMode := rx(`(自然养护|未覆盖|未.*洒水|未写措施)`).MatchString(t)
			if weakMode || lacksCore {
				return one(CategoryMissingItems, SeverityMedium, "养护措施记录不完整",
					"养护/洒水/覆盖",
					"检测到养护描述缺少时间、责任人或巡查频次等关键信息。",
					"建议补充：养护开始时间、责任人、频次及巡查记录。")
			}
		}
		return nil
	},
	// Asphalt paving in rain without adjustment measures.
	func(t string) []Finding {
		if rx(`(雨天|雨中|小雨|中雨|大雨)`).MatchString(t) && rx(`(沥青|摊铺|碾压)`).MatchString(t) &&
			!rx(`(停工|暂停|改期|覆盖|排水|调整工序|监理通知)`).MatchString(t) {
			return one(CategoryLogicWarnings, SeverityHigh, "雨天摊铺管控不足",
				"雨天/沥青摊铺",
				"检测到雨天沥青施工但未体现停工或调整控制措施。",
				"建议补充：停工或调整工序依据、现场防雨排水和监理指令留痕。")
		}
		return nil
	},
	// Scaffolding structural risk or acceptance paperwork missing.
	func(t string) []Finding {
		if rx(`(支架|脚手架)`).MatchString(t) {
			structRisk := rx(`(垫板|剪刀撑|连墙件).{0,8}(未|不连续|偏大|不足)`).MatchString(t)
			lacksAccept := rx(`(未见|无|未提供).{0,10}(验收|验收表|签字|签认|计算书|专项方案)`).MatchString(t)
			if structRisk || lacksAccept {
				return one(CategoryMissingItems, SeverityHigh, "支架验收与构造控制不足",
					"支架/验收/构造",
					"检测到支架构造风险或验收资料缺失，放行依据不足。",
					"建议补充：专项方案、计算书、验收签字及整改复查记录。")
			}
		}
		return nil
	},
	// Key-location checks without measured values.
	func(t string) []Finding {
		if rx(`(抽查|检查|间距|偏差|部位|关键部位)`).MatchString(t) &&
			rx(`(未记录|未写|未体现|无).{0,12}(点位|实测|数值|偏差范围|结论)`).MatchString(t) {
			return one(CategoryMissingItems, SeverityMedium, "关键部位实测量化不足",
				"点位/实测/偏差",
				"检测到关键部位检查描述，但缺少点位和实测量化数据。",
				"建议补充：抽查点位、实测数值、偏差判定和结论。")
		}
		return nil
	},
	// Pour released on a promise to fix later.
	func(t string) []Finding {
		if rx(`(浇筑前|准备浇筑|拟浇筑|浇筑)`).MatchString(t) && rx(`(承诺|后续补齐|整改)`).MatchString(t) &&
			!rx(`(未整改不得浇筑|停工指令|复验签认|旁站要求)`).MatchString(t) {
			return one(CategoryLogicWarnings, SeverityMedium, "浇筑前放行控制不足",
				"浇筑前/整改承诺",
				"检测到问题仅口头承诺整改，未体现浇筑前复验放行控制。",
				"建议补充：未整改不得浇筑、复验签认和旁站要求。")
		}
		return nil
	},
	// Shrinkage / crack defects without a disposal record.
	func(t string) []Finding {
		if rx(`(干缩|裂缝|掉角|起泡|翘边)`).MatchString(t) &&
			!rx(`(封闭养护|修补方案|返工|复查结论|通知单)`).MatchString(t) {
			return one(CategoryClosureIssues, SeverityMedium, "缺陷处置记录不明确",
				"干缩/裂缝/缺陷",
				"检测到缺陷迹象，但未体现处置方案与复查结论。",
				"建议补充：处置措施、复查结果及质量问题通知记录。")
		}
		return nil
	},
	// Grout leak patched with mortar only.
	func(t string) []Finding {
		if rx(`(漏浆)`).MatchString(t) && rx(`(砂浆抹补|抹补)`).MatchString(t) &&
			!rx(`(拆模后检查|凿除|复检|复查|闭环)`).MatchString(t) {
			return one(CategoryClosureIssues, SeverityMedium, "漏浆处置与复查不足",
				"漏浆/砂浆抹补",
				"检测到漏浆仅抹补，未体现实体检查与复查闭环。",
				"建议补充：拆模后实体检查、必要凿除修补及复查结论。")
		}
		return nil
	},
	// Falsework verification documents missing.
	func(t string) []Finding {
		if rx(`(支架|预压)`).MatchString(t) &&
			rx(`(未提供|未见|无).{0,14}(计算书|预压方案|沉降观测|布点|验收表)`).MatchString(t) {
			return one(CategoryMissingItems, SeverityHigh, "支架资料核验缺失",
				"计算书/预压方案/沉降观测",
				"检测到支架关键核验资料缺失，无法支撑放行。",
				"建议补充：计算书、预压方案、沉降观测布点和验收签认记录。")
		}
		return nil
	},
	// Spot-check descriptions remain qualitative.
	func(t string) []Finding {
		if rx(`(抽查|间距|偏差|加密区)`).MatchString(t) {
			lacksPoints := rx(`(未记录|未写|无).{0,12}(点位|实测|数值|偏差范围)`).MatchString(t)
			hasUnits := rx(`([0-9]+|一|二|三|四|五|六|七|八|九|十).{0,3}(mm|cm|m|处|点)`).MatchString(t)
			if lacksPoints || !hasUnits {
				return one(CategoryMissingItems, SeverityMedium, "关键部位量化数据不足",
					"抽查/间距/偏差",
					"检测到关键部位检查缺少点位或实测量化数据。",
					"建议补充：抽查点位、实测数值、偏差范围与判定结论。")
			}
		}
		return nil
	},
	// Height-work hazard handled verbally, work continued.
	func(t string) []Finding {
		if rx(`(高处|临边|未系安全带|无防护网)`).MatchString(t) &&
			rx(`(口头提醒|短暂停止|随后又继续|继续)`).MatchString(t) &&
			!rx(`(停工|复工手续|整改完成)`).MatchString(t) {
			return one(CategoryLogicWarnings, SeverityHigh, "高处隐患停工闭环不足",
				"高处隐患/继续施工",
				"检测到高处隐患后仅口头处置且继续施工，未形成停复工闭环。",
				"建议补充：停工指令、整改验收、复工手续与复查结论。")
		}
		return nil
	},
	// Damp / caked material still planned for use.
	func(t string) []Finding {
		if rx(`(受潮|结块|破损|标识不清)`).MatchString(t) && rx(`(先用掉|继续使用|允许使用)`).MatchString(t) {
			return one(CategoryLogicWarnings, SeverityHigh, "不合格材料处置不当",
				"受潮结块/继续使用",
				"检测到疑似不合格材料仍计划继续使用，存在质量风险。",
				"建议补充：隔离标识、复检或退场处理及复查记录。")
		}
		return nil
	},
	// Diversion passage occupied but traffic released anyway.
	func(t string) []Finding {
		if rx(`(导改|围挡|通道)`).MatchString(t) && rx(`(占用|被占)`).MatchString(t) &&
			rx(`(同意临时通行|继续通行|允许通行)`).MatchString(t) &&
			!rx(`(清理|绕行|整改完成|复查)`).MatchString(t) {
			return one(CategoryLogicWarnings, SeverityMedium, "导改通道占用放行不当",
				"通道占用/同意通行",
				"检测到通道占用情况下仍放行，未体现先整改后通行控制。",
				"建议补充：立即清理、绕行引导、复查确认后通行。")
		}
		return nil
	},
	// Subgrade anomaly (springy soil) without rework.
	func(t string) []Finding {
		if rx(`(弹簧土|边坡)`).MatchString(t) && rx(`(继续填筑|继续施工)`).MatchString(t) &&
			!rx(`(返工|复压|停工|复查)`).MatchString(t) {
			return one(CategoryLogicWarnings, SeverityMedium, "路基风险处置不充分",
				"弹簧土/继续填筑",
				"检测到路基异常后继续施工，未体现返工复压或复查控制。",
				"建议补充：返工处理、复压与复查记录后再放行。")
		}
		return nil
	},
	// Pressure-test gauges without calibration evidence.
	func(t string) []Finding {
		if rx(`(试压|压力表|油表)`).MatchString(t) &&
			rx(`(未见|未提供|无).{0,8}(校验|校验证明|有效期)`).MatchString(t) {
			return one(CategoryMissingItems, SeverityMedium, "试压量具校验依据缺失",
				"试压表/校验",
				"检测到试压量具未见校验有效期证明，结论依据不足。",
				"建议补充：校验证书、有效期和更换复测记录。")
		}
		return nil
	},
	// Prestress tensioning parameters / calibration missing.
	func(t string) []Finding {
		if !rx(`(预应力|张拉)`).MatchString(t) {
			return nil
		}
		var out []Finding
		if rx(`(未记录|未填写|仅填写|未写|不完整|缺失).{0,12}(伸长量|回缩量|持荷|顺序|分级|张拉力)`).MatchString(t) {
			out = append(out, one(CategoryMissingItems, SeverityMedium, "预应力张拉关键数据缺失",
				"张拉/伸长量/持荷",
				"检测到预应力张拉记录缺少关键参数，无法完整判定质量。",
				"建议补充：张拉力、伸长量、回缩量、持荷时间及顺序记录。")...)
		}
		if rx(`(千斤顶|油表).{0,16}(未校验|未核验|无.{0,6}校验|校验.{0,6}未提供)`).MatchString(t) {
			out = append(out, one(CategoryMissingItems, SeverityMedium, "张拉设备校验信息缺失",
				"千斤顶/油表校验",
				"检测到张拉设备或量具校验依据缺失。",
				"建议补充：千斤顶/油表校验证书及有效期。")...)
		}
		return out
	},
	// Hoisting in strong wind without wind monitoring / stop rule.
	func(t string) []Finding {
		if rx(`(吊装|起重)`).MatchString(t) && rx(`(大风|阵风)`).MatchString(t) &&
			!rx(`(风速|测风|停吊|暂停|限制作业)`).MatchString(t) {
			return one(CategoryLogicWarnings, SeverityHigh, "大风吊装管控不足",
				"大风/吊装",
				"检测到大风条件吊装，未体现测风与停吊控制。",
				"建议补充：风速记录、停吊阈值及现场执行措施。")
		}
		return nil
	},
	// Hoisting cordon / signalling irregularities.
	func(t string) []Finding {
		if rx(`(吊装|起重|警戒线|指挥)`).MatchString(t) && rx(`(未封闭|混乱|不到位|不规范)`).MatchString(t) {
			return one(CategoryMissingItems, SeverityHigh, "吊装警戒指挥措施不足",
				"警戒/指挥",
				"检测到吊装警戒或指挥措施不规范，存在安全风险。",
				"建议补充：封控范围、统一指挥和现场安全指令记录。")
		}
		return nil
	},
	// Special equipment used before acceptance.
	func(t string) []Finding {
		if rx(`(塔吊|加节|特种设备)`).MatchString(t) &&
			rx(`(即投入|直接投入|未验收即使用|未提供第三方检测)`).MatchString(t) {
			return one(CategoryLogicWarnings, SeverityHigh, "特种设备未验收即使用",
				"加节/验收/检测",
				"检测到特种设备加节后未完成验收检测即投入使用。",
				"建议补充：验收记录、第三方检测报告和使用批准手续。")
		}
		return nil
	},
	// Masonry in rain or mortar quality issues.
	func(t string) []Finding {
		if rx(`(砌筑|砂浆)`).MatchString(t) && rx(`(小雨|雨天|未搭棚|较稀|不饱满)`).MatchString(t) {
			return one(CategoryMissingItems, SeverityMedium, "砌筑施工条件与质量控制不足",
				"雨天砌筑/砂浆质量",
				"检测到雨天砌筑或砂浆质量异常，未体现有效防护与处置。",
				"建议补充：防雨措施、砂浆质量控制、返工复查与强度验证。")
		}
		return nil
	},
	// Water supply commissioning without test reports.
	func(t string) []Finding {
		if !rx(`(给水|消毒|冲洗|接通用户管网|投入使用)`).MatchString(t) {
			return nil
		}
		var out []Finding
		if rx(`(未提供|未见|无).{0,10}(水质检测|检测报告)`).MatchString(t) {
			out = append(out, one(CategoryMissingItems, SeverityHigh, "给水投用前检测流程缺失",
				"水质检测/投用",
				"检测到给水投用前缺少水质检测报告，存在公共安全风险。",
				"建议补充：检测报告、复验结论及投用审批记录。")...)
		}
		if rx(`(投加量|接触时间|排放去向)`).MatchString(t) && rx(`(未记录|缺失|未写|无)`).MatchString(t) {
			out = append(out, one(CategoryMissingItems, SeverityMedium, "给水消毒过程记录缺失",
				"投加量/接触时间",
				"检测到给水消毒关键过程记录缺失，过程不可追溯。",
				"建议补充：投加量、接触时间、排放去向及复核记录。")...)
		}
		return out
	},
	// Grouting process parameters missing.
	func(t string) []Finding {
		if rx(`(注浆|压浆)`).MatchString(t) &&
			rx(`(仅写|未记录|未填写|缺失).{0,12}(配比|压力|用量|流动度|保压|回浆)`).MatchString(t) {
			return one(CategoryMissingItems, SeverityMedium, "注压浆关键参数记录不足",
				"注浆/压浆参数",
				"检测到注压浆关键工艺参数缺失，质量可追溯性不足。",
				"建议补充：配比、压力、用量、流动度、保压与回浆记录。")
		}
		return nil
	},
	// Faulty equipment kept running.
	func(t string) []Finding {
		if rx(`(漏油|设备异常|指针回零不灵|带病作业)`).MatchString(t) && rx(`(继续|完成|抓紧)`).MatchString(t) {
			return one(CategoryLogicWarnings, SeverityMedium, "设备异常处置不充分",
				"漏油/异常/继续作业",
				"检测到设备异常后仍继续作业，未体现停机处置与复检。",
				"建议补充：停机检修、污染处置、复检和恢复条件。")
		}
		return nil
	},
	// Temporary-power hazards without closed-loop handling.
	func(t string) []Finding {
		if rx(`(配电箱|漏保|电缆|积水|临电)`).MatchString(t) && rx(`(未上锁|未试跳|拖地|积水)`).MatchString(t) {
			return one(CategoryMissingItems, SeverityHigh, "临电安全隐患处置不足",
				"配电箱/漏保/电缆",
				"检测到临电高风险隐患，未体现停用整改与复查闭环。",
				"建议补充：停用措施、整改时限、复查结论和影像留证。")
		}
		return nil
	},
	// Resumption after shutdown without the approval flow.
	func(t string) []Finding {
		if rx(`(停工|整改停工)`).MatchString(t) && rx(`(自行恢复|擅自复工|正常施工)`).MatchString(t) &&
			!rx(`(复工报审|复查记录|复工批准|复工条件)`).MatchString(t) {
			return one(CategoryLogicWarnings, SeverityHigh, "停复工程序执行不足",
				"停工/擅自复工",
				"检测到停工后复工程序缺失，流程合规风险较高。",
				"建议补充：复工报审、复查记录和批准手续。")
		}
		return nil
	},
	// Supervision opinion pushes schedule while risk is open.
	func(t string) []Finding {
		if rx(`(加快进度|抓紧完成|尽快浇筑|继续施工)`).MatchString(t) &&
			rx(`(隐患|风险|缺失|未|异常|不足)`).MatchString(t) {
			return one(CategoryLogicWarnings, SeverityMedium, "监理意见导向不当",
				"风险未控/加快进度",
				"检测到风险未闭环情况下仍强调抢进度，导向存在偏差。",
				"建议补充：风险控制优先、整改闭环后放行。")
		}
		return nil
	},
	// Acceptance unsigned by supervision, already in use.
	func(t string) []Finding {
		if rx(`(验收表|验收).{0,14}(监理未签|未签)`).MatchString(t) && rx(`(已开始|已投入|已开展)`).MatchString(t) {
			return one(CategoryLogicWarnings, SeverityHigh, "验收程序不完整",
				"监理未签/已投入使用",
				"检测到验收程序未闭合即投入使用，存在流程风险。",
				"建议补充：联合验收签字、整改复查和复工条件。")
		}
		return nil
	},
	// Formwork stripped without strength evidence.
	func(t string) []Finding {
		if rx(`(拆模|模板拆除)`).MatchString(t) &&
			rx(`(未提供|无|缺).{0,10}(强度报告|同条件试块|试块强度)`).MatchString(t) {
			return one(CategoryLogicWarnings, SeverityHigh, "未达强度拆模风险",
				"拆模/强度报告缺失",
				"检测到拆模缺少强度依据，存在结构质量风险。",
				"建议补充：同条件强度报告，未达条件不得拆模。")
		}
		return nil
	},
	// Special-equipment paperwork traceability missing.
	func(t string) []Finding {
		if rx(`(塔吊|加节|安装单位)`).MatchString(t) &&
			rx(`(缺|未提供|无).{0,14}(资质|证书|检测报告|编号)`).MatchString(t) {
			return one(CategoryMissingItems, SeverityMedium, "特种设备资料追溯缺失",
				"资质/证书/检测编号",
				"检测到特种设备关键资料缺失，追溯性不足。",
				"建议补充：安装单位资质、人员证书、检测报告编号。")
		}
		return nil
	},
	// Elevation deviation deferred to a later trade.
	func(t string) []Finding {
		if rx(`(标高).{0,8}(偏低|偏高|偏差)`).MatchString(t) && rx(`(后期|铺面时).{0,6}(再抬|再调)`).MatchString(t) {
			return one(CategoryLogicWarnings, SeverityMedium, "标高偏差处置不当",
				"标高偏差/后续再调",
				"检测到标高偏差未即时整改，拟以后续工序替代处理。",
				"建议补充：立即调整并复测确认后进入下一工序。")
		}
		return nil
	},
	// Weld inspection items missing.
	func(t string) []Finding {
		if rx(`(焊接|焊缝)`).MatchString(t) &&
			rx(`(未做|未见|未记录|无).{0,12}(探伤|外观尺寸|复测|检验)`).MatchString(t) {
			return one(CategoryMissingItems, SeverityMedium, "焊接检验项目缺失",
				"探伤/外观尺寸复测",
				"检测到焊接质量检验项目缺失，验收依据不足。",
				"建议补充：外观尺寸检查、必要探伤及检验报告。")
		}
		return nil
	},
	// Grouting record says only "filled".
	func(t string) []Finding {
		if rx(`(注浆|压浆)`).MatchString(t) && rx(`(仅写|仅记|只写).{0,8}(注满|完成)`).MatchString(t) {
			return one(CategoryMissingItems, SeverityMedium, "注浆质量记录不可追溯",
				"仅写注满",
				"检测到注浆记录过于笼统，缺少可追溯工艺参数。",
				"建议补充：配比、压力、用量、回浆与旁站记录。")
		}
		return nil
	},
	// Objection dismissed as harmless without engineering review.
	func(t string) []Finding {
		if rx(`(影响不大|按经验做|不影响使用)`).MatchString(t) &&
			rx(`(监理意见|合格|满足使用要求|基本合格)`).MatchString(t) &&
			!rx(`(技术核定|设计确认|变更|会商|复核结论)`).MatchString(t) {
			return one(CategoryLogicWarnings, SeverityMedium, "异议处理程序缺失",
				"影响不大/直接放行",
				"检测到施工异议仅口头说明即放行，未体现技术核定或设计确认流程。",
				"建议补充：技术核定、设计确认、会商纪要和复核结论。")
		}
		return nil
	},
	// Equipment fault, work pushed on.
	func(t string) []Finding {
		if rx(`(漏油|带病作业|压力表.*不灵|故障)`).MatchString(t) &&
			rx(`(继续碾压|继续施工|继续作业|抓紧完成)`).MatchString(t) {
			return one(CategoryLogicWarnings, SeverityHigh, "设备带病作业风险",
				"漏油/故障/继续作业",
				"检测到设备异常后未停机处置，持续施工存在质量与安全风险。",
				"建议补充：停机检修、污染清理、复检合格与恢复条件。")
		}
		return nil
	},
	// Temporary power exposed to rain.
	func(t string) []Finding {
		if rx(`(雨天|小雨|降雨)`).MatchString(t) && rx(`(电缆|配电箱|漏保)`).MatchString(t) &&
			rx(`(拖地|积水|未上锁|未试跳)`).MatchString(t) {
			return one(CategoryMissingItems, SeverityHigh, "雨天临电防护不足",
				"雨天/电缆拖地/积水",
				"检测到雨天临电设施存在拖地积水等高风险隐患，未体现架空或防水处置。",
				"建议补充：电缆架空或穿管、防水隔离、停用整改与复查记录。")
		}
		return nil
	},
	// Work resumed unilaterally after a shutdown order.
	func(t string) []Finding {
		if rx(`(停工|整改停工)`).MatchString(t) &&
			rx(`(擅自复工|自行恢复|恢复开挖|正常施工)`).MatchString(t) &&
			!rx(`(复工报审|复工批准|复工签认|复查合格|书面批准)`).MatchString(t) {
			return one(CategoryLogicWarnings, SeverityHigh, "复工程序缺失",
				"停工/擅自复工",
				"检测到停工后未履行复工报审与批准流程即恢复施工。",
				"建议补充：复工报审、复查签认、书面批准及抄送记录。")
		}
		return nil
	},
	// Release despite incomplete rectification.
	func(t string) []Finding {
		if rx(`(围挡缺口|整改未完成|条件未满足|仍存在)`).MatchString(t) &&
			rx(`(正常施工|同意|继续施工|放行)`).MatchString(t) {
			return one(CategoryLogicWarnings, SeverityHigh, "整改未完成仍放行",
				"整改未完成/继续施工",
				"检测到整改条件未满足即放行，存在程序与安全风险。",
				"建议补充：继续停工整改、复查结论和复工条件。")
		}
		return nil
	},
	// Supervision conclusion contradicts open risk.
	func(t string) []Finding {
		if rx(`(监理意见|结论)`).MatchString(t) &&
			rx(`(正常施工|同意继续|可以投入使用|满足使用要求)`).MatchString(t) &&
			rx(`(擅自复工|未验收|隐患|缺口|未整改|高风险)`).MatchString(t) {
			return one(CategoryLogicWarnings, SeverityHigh, "监理结论不合规",
				"风险未控/同意继续",
				"检测到关键风险未消除情况下仍给出放行结论，监理意见与控制要求不一致。",
				"建议补充：停工整改指令、复查签认与书面放行依据。")
		}
		return nil
	},
	// Generic whole-site phrasing without step or measured data.
	func(t string) []Finding {
		if rx(`(全线施工段|综合施工|整体正常|继续施工)`).MatchString(t) {
			lacksStep := !rx(`(浇筑|摊铺|开挖|张拉|吊装|压实|安装|绑扎|试压|验收|检测)`).MatchString(t)
			lacksData := !rx(`(?i)[0-9]+(\.[0-9]+)?\s*(m³|m2|m|mm|cm|℃|吨|MPa|%|组|根|台|遍)`).MatchString(t)
			if lacksStep || lacksData {
				return one(CategoryMissingItems, SeverityLow, "模板化记录缺少部位工序与数据",
					"全线/综合/整体正常",
					"检测到记录使用泛化表述，缺少具体施工工序与量化数据支撑。",
					"建议补充：具体施工部位、工序动作、实测数据与处理结果。")
			}
		}
		return nil
	},
	// Shutdown scenario without the management flow around it.
	func(t string) []Finding {
		if rx(`(停工|未组织施工|正常停工)`).MatchString(t) &&
			!rx(`(停复工审批|复工报审|巡查记录|安全巡查|复工条件|书面批准)`).MatchString(t) {
			return one(CategoryLogicWarnings, SeverityMedium, "停工管理流程缺失",
				"停工/审批/巡查",
				"检测到停工场景但未体现停复工审批、巡查记录或复工条件。",
				"建议补充：停工原因依据、审批记录、安全巡查与复工条件。")
		}
		return nil
	},
	// Paving defects deferred instead of reworked.
	func(t string) []Finding {
		if rx(`(铺设|铺装|人行道|透水砖)`).MatchString(t) &&
			rx(`(高低差|不顺直|后期再调|后续再调)`).MatchString(t) {
			return one(CategoryClosureIssues, SeverityMedium, "铺装质量缺陷未闭环",
				"高低差/后期再调",
				"检测到铺装质量缺陷未当场整改，拟后续处理，闭环不足。",
				"建议补充：当场返工调整、复测数据和复查结论。")
		}
		return nil
	},
	// Landscaping steps / curing controls missing.
	func(t string) []Finding {
		if rx(`(乔木|草皮|绿化)`).MatchString(t) &&
			rx(`(未浇透|定根水|未滚压|接缝较大|未见排水层|后续统一养护)`).MatchString(t) {
			return one(CategoryMissingItems, SeverityMedium, "绿化工序与养护控制不足",
				"定根水/滚压/排水层",
				"检测到绿化关键工序或养护措施缺失，成活质量风险较高。",
				"建议补充：定根水、滚压补缝、排水层和养护计划执行记录。")
		}
		return nil
	},
	// Shotcrete / anchoring conditions substandard.
	func(t string) []Finding {
		if rx(`(喷锚|锚杆|喷浆)`).MatchString(t) &&
			rx(`(潮湿|未拧紧|外露长度不一致|未记录长度|未记录间距)`).MatchString(t) {
			return one(CategoryMissingItems, SeverityHigh, "喷锚施工条件与锚固控制不足",
				"潮湿基层/锚固未紧",
				"检测到喷锚作业条件或锚固质量控制不足，存在结构风险。",
				"建议补充：施工条件确认、扭矩复查、实测参数与试验记录。")
		}
		return nil
	},
	// Waterproofing substrate conditions unrecorded.
	func(t string) []Finding {
		if rx(`(防水|涂膜|喷涂)`).MatchString(t) && rx(`(基层|含水率|清理记录)`).MatchString(t) &&
			rx(`(未记录|缺失|未见|未写)`).MatchString(t) {
			return one(CategoryMissingItems, SeverityMedium, "防水基层条件记录缺失",
				"基层/含水率/清理记录",
				"检测到防水施工前基层条件记录缺失，质量可追溯性不足。",
				"建议补充：基层清理、含水率、温度与复核记录。")
		}
		return nil
	},
	// Water supply released to users without testing.
	func(t string) []Finding {
		if rx(`(给水|水质检测)`).MatchString(t) &&
			rx(`(未提供|无|未见).{0,10}(水质检测|检测报告)`).MatchString(t) &&
			rx(`(可以投入使用|接通用户管网|允许投入使用)`).MatchString(t) {
			return one(CategoryLogicWarnings, SeverityHigh, "给水投用放行不当",
				"未检先用/投入使用",
				"检测到水质检测缺失情况下仍放行投用，公共安全风险较高。",
				"建议补充：暂停投用、补齐检测报告并复验合格后放行。")
		}
		return nil
	},
	// Standing water without drainage action.
	func(t string) []Finding {
		if rx(`(积水|局部积水|明显积水)`).MatchString(t) &&
			!rx(`(排水|抽排|清理|处置完成|复查)`).MatchString(t) {
			return one(CategoryLogicWarnings, SeverityMedium, "积水处置不足",
				"积水/未处置记录",
				"检测到现场存在积水，但未体现有效处置或复查结论。",
				"建议补充：排水措施、完成时点和复查结果。")
		}
		return nil
	},
	// Tensioning without process data or re-measurement.
	func(t string) []Finding {
		if !rx(`(张拉|初张拉|预应力)`).MatchString(t) {
			return nil
		}
		var out []Finding
		if !rx(`(张拉力|伸长量|回缩量|持荷|记录表|实测)`).MatchString(t) {
			out = append(out, one(CategoryMissingItems, SeverityMedium, "张拉关键数据缺失",
				"张拉/数据缺失",
				"检测到张拉作业但缺少关键过程数据，质量判定依据不足。",
				"建议补充：张拉力、伸长量、回缩量、持荷及记录表。")...)
		}
		if rx(`(记录不完整|数据缺失|仅填写)`).MatchString(t) && !rx(`(第三方检测|复测|复核)`).MatchString(t) {
			out = append(out, one(CategoryMissingItems, SeverityMedium, "张拉复测与第三方检测缺失",
				"张拉记录不完整",
				"检测到张拉记录不完整，未体现复测或第三方检测。",
				"建议补充：复测记录、第三方检测或见证资料。")...)
		}
		return out
	},
	// Approximate quantities without verification basis.
	func(t string) []Finding {
		if rx(`(面积约|深度约|方量约|约[0-9]+)`).MatchString(t) &&
			!rx(`(复核|复测|测量依据|检测数据|点位)`).MatchString(t) {
			return one(CategoryMissingItems, SeverityLow, "量化数据依据不足",
				"约数值/缺复核",
				"检测到量化数据仅为约值，未体现测量复核或检测依据。",
				"建议补充：测量方法、复核点位、实测数据与判定标准。")
		}
		return nil
	},
	// Diversion signage problems without closure.
	func(t string) []Finding {
		if rx(`(交通疏导|导改|警示标志)`).MatchString(t) && rx(`(不合理|不到位|缺失)`).MatchString(t) &&
			!rx(`(整改完成|复查|调整后|闭环)`).MatchString(t) {
			return one(CategoryClosureIssues, SeverityMedium, "交通导改措施记录不完整",
				"导改/警示标志问题",
				"检测到导改或警示标志问题，但未体现整改复查闭环。",
				"建议补充：整改措施、复查结论与留证信息。")
		}
		return nil
	},
	// Bearing replacement described with implausible process.
	func(t string) []Finding {
		if rx(`(支座更换|支座施工)`).MatchString(t) && rx(`(重新浇筑.*支座|混凝土支座)`).MatchString(t) {
			return one(CategoryLogicWarnings, SeverityMedium, "支座施工工艺描述异常",
				"支座/浇筑描述",
				"检测到支座施工描述与常规工艺表达存在偏差，需进一步核验。",
				"建议补充：工艺步骤、设计依据与关键质量控制记录。")
		}
		return nil
	},
	// Rebar deviation waved through.
	func(t string) []Finding {
		if rx(`(钢筋).{0,14}(偏大|偏差|问题)`).MatchString(t) && rx(`(未再调整|不影响使用)`).MatchString(t) {
			return one(CategoryLogicWarnings, SeverityHigh, "钢筋问题未整改",
				"钢筋偏差/未调整",
				"检测到钢筋偏差后未整改即放行，存在质量风险。",
				"建议补充：整改措施、复测结果和放行签认依据。")
		}
		return nil
	},
	// Concrete work without any curing plan.
	func(t string) []Finding {
		if rx(`(混凝土|浇筑|初凝)`).MatchString(t) && !rx(`(养护|洒水|覆盖|保湿|封闭养护)`).MatchString(t) {
			return one(CategoryMissingItems, SeverityMedium, "养护方案缺失",
				"混凝土作业/无养护说明",
				"检测到混凝土施工记录未体现养护方式和计划。",
				"建议补充：养护措施、起止时间、责任人和巡查频次。")
		}
		return nil
	},
	// High-risk scenes without a safety briefing record.
	func(t string) []Finding {
		if rx(`(脚手架|高处作业|搭设)`).MatchString(t) && !rx(`(安全技术交底|交底记录|交底签字)`).MatchString(t) {
			return one(CategoryMissingItems, SeverityMedium, "安全技术交底缺失",
				"脚手架/高处/交底",
				"检测到高风险作业场景，未体现安全技术交底记录。",
				"建议补充：交底内容、交底对象、签字和时间记录。")
		}
		return nil
	},
}
