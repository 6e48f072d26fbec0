package prompts

import (
	"fmt"
	"strings"
)

// ApproachNames are the fixed reasoning approaches explored by the
// tree-of-thought technique, in exploration order. The effective approach
// count is capped at this list's length.
var ApproachNames = []string{
	"Direct Analytical Method",
	"Creative Innovation Method",
	"Systematic Process Method",
}

// SelectionCriteria are the dimensions on which the evaluation call is asked
// to compare explored approaches.
var SelectionCriteria = []string{
	"effectiveness",
	"feasibility",
	"completeness",
	"innovation",
}

// approachSolutionPreview limits how much of each candidate solution is
// repeated into the evaluation prompt.
const approachSolutionPreview = 200

// ApproachSummary is one explored approach as presented to the evaluation
// prompt.
type ApproachSummary struct {
	Number   int
	Name     string
	Solution string
}

// ApproachExploration renders the exploration prompt for one named approach.
// Approach numbers are 1-based.
func ApproachExploration(problem string, number int, name string) string {
	return fmt.Sprintf(`Problem: %s

I'll use approach %d: %s

Let me work through this step by step:
1. First, I'll analyze the problem from this perspective
2. Then I'll develop a solution strategy
3. Finally, I'll evaluate the effectiveness

Working through approach %d:`, problem, number, name, number)
}

// ApproachEvaluation renders the evaluation prompt asking the model to pick
// the best of the explored approaches.
func ApproachEvaluation(problem string, approaches []ApproachSummary) string {
	var sb strings.Builder
	for i, a := range approaches {
		if i > 0 {
			sb.WriteString("\n")
		}
		solution := a.Solution
		if len(solution) > approachSolutionPreview {
			solution = solution[:approachSolutionPreview]
		}
		fmt.Fprintf(&sb, "Approach %d: %s\nSolution: %s...", a.Number, a.Name, solution)
	}

	return fmt.Sprintf(`Problem: %s

I have explored these different approaches:

%s

Please evaluate these approaches and select the best one based on:
1. Effectiveness in solving the problem
2. Feasibility of implementation
3. Completeness of the solution
4. Innovation and creativity

Best approach selection:`, problem, sb.String())
}
