package engine

import (
	"regexp"
	"strings"
	"sync"
)

var horizontalSpaceRe = regexp.MustCompile(`[ \t]+`)

// NormalizeText trims the text, converts all line-ending styles to "\n" and
// collapses runs of horizontal whitespace to a single space. Idempotent:
// normalizing already-normalized text is a no-op.
func NormalizeText(text string) string {
	t := strings.TrimSpace(text)
	t = strings.ReplaceAll(t, "\r\n", "\n")
	t = strings.ReplaceAll(t, "\r", "\n")
	return horizontalSpaceRe.ReplaceAllString(t, " ")
}

var negWindowCache = newPatternCache()

// isNegatedMention reports whether phrase appears in a negated context, e.g.
// 未见安全隐患 / 无隐患 / 隐患未发现. The negation marker must sit within a
// short window around the phrase that does not cross sentence punctuation.
func isNegatedMention(text, phrase string) bool {
	t := NormalizeText(text)
	p := strings.TrimSpace(phrase)
	if p == "" {
		return false
	}
	escaped := regexp.QuoteMeta(p)
	before := negWindowCache.get(`(未见|未发现|未查见|无|没有|未出现)[^。；;\n]{0,8}` + escaped)
	after := negWindowCache.get(escaped + `[^。；;\n]{0,8}(未见|未发现|无|没有)`)
	return before.MatchString(t) || after.MatchString(t)
}

// patternCache memoizes compiled negation-window patterns so repeated scans
// of the same phrase set do not recompile on every evaluation. Safe for
// concurrent evaluations.
type patternCache struct {
	mu       sync.RWMutex
	compiled map[string]*regexp.Regexp
}

func newPatternCache() *patternCache {
	return &patternCache{compiled: make(map[string]*regexp.Regexp)}
}

func (c *patternCache) get(expr string) *regexp.Regexp {
	c.mu.RLock()
	re, ok := c.compiled[expr]
	c.mu.RUnlock()
	if ok {
		return re
	}
	re = regexp.MustCompile(expr)
	c.mu.Lock()
	c.compiled[expr] = re
	c.mu.Unlock()
	return re
}
