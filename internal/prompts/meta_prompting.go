package prompts

import "fmt"

// Template names reported in technique response metadata.
const (
	TemplatePromptOptimization = "PROMPT_OPTIMIZATION"
	TemplateTaskAnalysis       = "TASK_ANALYSIS"
)

const promptOptimizationTemplate = `I need to create an effective prompt for the following task: %s

Current prompt: "%s"

Please analyze this prompt and suggest improvements to make it more effective. Consider:
1. Clarity and specificity of instructions
2. Context and background information needed
3. Examples that would help
4. Output format requirements
5. Potential edge cases or ambiguities

Provide an improved version of the prompt that would generate better results.`

const taskAnalysisTemplate = `I need to understand this task better to create an effective prompt for it.

Task: %s

Please analyze this task and tell me:
1. What are the key requirements?
2. What information does the AI need to complete this task well?
3. What are potential challenges or ambiguities?
4. What examples would be most helpful?
5. What output format would be most useful?

Based on this analysis, suggest the best prompting approach.`

// PromptOptimization renders the meta-prompt asking for an improved version
// of an existing prompt.
func PromptOptimization(task, currentPrompt string) string {
	return fmt.Sprintf(promptOptimizationTemplate, task, currentPrompt)
}

// TaskAnalysis renders the meta-prompt asking how a task should be prompted.
func TaskAnalysis(task string) string {
	return fmt.Sprintf(taskAnalysisTemplate, task)
}
