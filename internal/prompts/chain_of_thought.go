package prompts

import "fmt"

// Template names reported in technique response metadata.
const (
	TemplateMathProblemSolving = "MATH_PROBLEM_SOLVING"
	TemplateLogicalReasoning   = "LOGICAL_REASONING"
	TemplateComplexAnalysis    = "COMPLEX_ANALYSIS"
)

const mathProblemSolvingTemplate = `Let's solve this step by step.

Problem: %s

Step-by-step solution:
1. First, let me understand what we know and what we need to find
2. I'll identify the appropriate method or formula to use
3. Then I'll work through the calculations step by step
4. Finally, I'll check if the answer makes sense

Let me work through this:`

const logicalReasoningTemplate = `Let's approach this logical problem step by step.

Problem: %s

Step-by-step logical reasoning:
1. First, I'll identify all the given information and constraints
2. Then I'll analyze the relationships between different elements
3. I'll apply logical rules and deduction step by step
4. Finally, I'll verify that my conclusion follows logically

Let me reason through this:`

const complexAnalysisTemplate = `Let's analyze this complex problem systematically.

Problem: %s

Step-by-step analysis:
1. First, I'll break down the problem into smaller components
2. I'll examine each component and its relationships
3. I'll consider different perspectives and approaches
4. I'll synthesize the information to reach a conclusion
5. Finally, I'll evaluate the strength of my analysis

Let me work through this analysis:`

// MathProblemSolving renders the step-by-step math reasoning prompt.
func MathProblemSolving(problem string) string {
	return fmt.Sprintf(mathProblemSolvingTemplate, problem)
}

// LogicalReasoning renders the step-by-step logical reasoning prompt.
func LogicalReasoning(problem string) string {
	return fmt.Sprintf(logicalReasoningTemplate, problem)
}

// ComplexAnalysis renders the systematic analysis prompt.
func ComplexAnalysis(problem string) string {
	return fmt.Sprintf(complexAnalysisTemplate, problem)
}
