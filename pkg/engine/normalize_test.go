package engine

import "testing"

func TestNormalizeText(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  今日巡视\r\n现场正常  ", "今日巡视\n现场正常"},
		{"a\rb", "a\nb"},
		{"多个\t 空格   合并", "多个 空格 合并"},
		{"", ""},
	}
	for _, c := range cases {
		if got := NormalizeText(c.in); got != c.want {
			t.Errorf("NormalizeText(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeTextIdempotent(t *testing.T) {
	in := "  今日巡视\r\n发现\t问题  "
	once := NormalizeText(in)
	twice := NormalizeText(once)
	if once != twice {
		t.Errorf("normalization not idempotent: %q vs %q", once, twice)
	}
}

func TestIsNegatedMention(t *testing.T) {
	cases := []struct {
		text   string
		phrase string
		want   bool
	}{
		{"现场未见安全隐患", "安全隐患", true},
		{"巡视中无明显安全隐患", "安全隐患", true},
		{"安全隐患未发现", "安全隐患", true},
		{"现场存在安全隐患", "安全隐患", false},
		// negation separated by sentence punctuation does not count
		{"未见异常。安全隐患已整改", "安全隐患", false},
	}
	for _, c := range cases {
		if got := isNegatedMention(c.text, c.phrase); got != c.want {
			t.Errorf("isNegatedMention(%q, %q) = %v, want %v", c.text, c.phrase, got, c.want)
		}
	}
}
