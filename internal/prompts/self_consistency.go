package prompts

import (
	"fmt"
	"strings"
)

// TemplateGeneralConsistency is the template name reported for
// self-consistency sampling.
const TemplateGeneralConsistency = "GENERAL_CONSISTENCY"

const generalConsistencyTemplate = `Please answer this question carefully and accurately.

Question: %s

Think through this step by step and provide your best answer. Be clear and specific in your response.`

// GeneralConsistency renders the sampling prompt used for every
// self-consistency sample.
func GeneralConsistency(question string) string {
	return fmt.Sprintf(generalConsistencyTemplate, question)
}

// ConsistencyAnalysis renders the follow-up prompt asking the model to
// compare the sampled responses and identify the most consistent answer.
func ConsistencyAnalysis(question string, responses []string) string {
	var sb strings.Builder
	for i, resp := range responses {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "Response %d: %s", i+1, resp)
	}

	return fmt.Sprintf(`Question: %s

I have these %d different responses:

%s

Please analyze these responses for consistency:
1. What are the common themes or answers?
2. What are the main differences?
3. Which response seems most accurate and complete?
4. What is the most consistent answer across all responses?

Consistency analysis:`, question, len(responses), sb.String())
}
