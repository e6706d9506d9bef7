package review

import (
	"encoding/json"
	"fmt"

	_ "embed"

	"github.com/user/sitelog-check/pkg/engine"
)

//go:embed prompts/review_prompt.md
var reviewPrompt string

// buildReviewPrompt renders the review instruction with the document and the
// rule-based report the model should avoid duplicating.
func buildReviewPrompt(docType, text string, report *engine.Report) string {
	ruleReport, err := json.Marshal(struct {
		Summary  engine.Summary   `json:"summary"`
		Findings []engine.Finding `json:"findings"`
	}{report.Summary, report.Findings})
	if err != nil {
		ruleReport = []byte("{}")
	}
	return fmt.Sprintf(reviewPrompt, docType, text, ruleReport)
}
