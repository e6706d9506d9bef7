package rules

import (
	"strings"
	"testing"
)

func TestSplitKeywords(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"试件/取样，送检 见证", []string{"试件", "取样", "送检", "见证"}},
		{"  单词  ", []string{"单词"}},
		{"", nil},
		{" 、/ ", nil},
	}
	for _, c := range cases {
		got := SplitKeywords(c.in)
		if len(got) != len(c.want) {
			t.Errorf("SplitKeywords(%q) = %v, want %v", c.in, got, c.want)
			continue
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Errorf("SplitKeywords(%q)[%d] = %q, want %q", c.in, i, got[i], c.want[i])
			}
		}
	}
}

func TestInScope(t *testing.T) {
	cases := []struct {
		rule string
		doc  string
		want bool
	}{
		{"", "日志", true},
		{"all", "巡视", true},
		{"ALL", "巡视", true},
		{"全部", "日志", true},
		{"日志", "日志", true},
		{"日志", "巡视", false},
		{" 巡视 ", "巡视", true},
	}
	for _, c := range cases {
		if got := InScope(c.rule, c.doc); got != c.want {
			t.Errorf("InScope(%q, %q) = %v, want %v", c.rule, c.doc, got, c.want)
		}
	}
}

func TestLoadDefault(t *testing.T) {
	catalogue, err := LoadDefault()
	if err != nil {
		t.Fatalf("embedded catalogue must load: %v", err)
	}
	if len(catalogue.Required) == 0 || len(catalogue.Conditional) == 0 ||
		len(catalogue.Forbidden) == 0 || len(catalogue.Closure) == 0 ||
		len(catalogue.Logic) == 0 {
		t.Errorf("embedded catalogue has empty tables: %+v", catalogue)
	}
}

func TestParseMissingTable(t *testing.T) {
	_, err := Parse([]byte("required_fields: []\n"))
	if err == nil {
		t.Fatal("catalogue without all five tables must be rejected")
	}
	if !strings.Contains(err.Error(), "missing table") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseNormalizesRuleCodes(t *testing.T) {
	data := []byte(`
required_fields: []
conditional_required:
  - trigger_any: "吊装"
    required_any: "安全员"
    rule_code: " Safety_Personnel "
forbidden_phrases: []
closure_rules: []
logic_conflicts: []
`)
	catalogue, err := Parse(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := catalogue.Conditional[0].RuleCode; got != "safety_personnel" {
		t.Errorf("rule code not normalized: %q", got)
	}
}

func TestParseInvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("\t:::not yaml")); err == nil {
		t.Fatal("invalid YAML must be rejected")
	}
}
