package review

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/user/sitelog-check/pkg/engine"
)

// ParsePayload decodes a model response into a Result. Accepted shapes are a
// bare JSON array of findings or an object with "findings" and optional
// "meta", either of them possibly wrapped in a markdown code fence.
func ParsePayload(raw string) (*Result, error) {
	s := strings.TrimSpace(stripCodeFence(raw))
	if s == "" {
		return nil, fmt.Errorf("empty review payload")
	}

	if strings.HasPrefix(s, "[") {
		var findings []engine.Finding
		if err := json.Unmarshal([]byte(s), &findings); err != nil {
			return nil, fmt.Errorf("parse review payload: %w", err)
		}
		return &Result{Findings: findings}, nil
	}

	var result Result
	if err := json.Unmarshal([]byte(s), &result); err != nil {
		return nil, fmt.Errorf("parse review payload: %w", err)
	}
	return &result, nil
}

func stripCodeFence(s string) string {
	t := strings.TrimSpace(s)
	if !strings.HasPrefix(t, "```") {
		return t
	}
	if idx := strings.Index(t, "\n"); idx >= 0 {
		t = t[idx+1:]
	} else {
		return strings.TrimPrefix(t, "```")
	}
	t = strings.TrimSpace(t)
	t = strings.TrimSuffix(t, "```")
	return strings.TrimSpace(t)
}
