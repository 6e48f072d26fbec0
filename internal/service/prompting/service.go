package prompting

import (
	"context"
)

// Technique display names used in response payloads.
const (
	TechniqueFewShot         = "Few-shot Learning"
	TechniqueChainOfThought  = "Chain-of-Thought"
	TechniqueTreeOfThought   = "Tree-of-Thought"
	TechniqueSelfConsistency = "Self-Consistency"
	TechniqueMetaPrompting   = "Meta-Prompting"
)

// TechniqueResult is the outcome of one technique invocation, shaped the way
// the API serializes it inside the response envelope.
type TechniqueResult struct {
	Technique      string         `json:"technique"`
	Task           string         `json:"task"`
	Input          any            `json:"input"`
	Output         any            `json:"output"`
	ProcessingTime float64        `json:"processing_time"`
	Model          string         `json:"model"`
	AdditionalInfo map[string]any `json:"additional_info,omitempty"`
}

// OptimizeInput is the input echo for prompt optimization results.
type OptimizeInput struct {
	Task          string `json:"task"`
	CurrentPrompt string `json:"current_prompt"`
}

// Approach is one explored tree-of-thought reasoning path.
type Approach struct {
	ApproachNumber int    `json:"approach_number"`
	ApproachName   string `json:"approach_name"`
	Solution       string `json:"solution"`
}

// BestApproach is the evaluation call's selection among explored approaches.
type BestApproach struct {
	Evaluation        string   `json:"evaluation"`
	SelectionCriteria []string `json:"selection_criteria"`
}

// TreeOfThoughtOutput is the structured output of a tree-of-thought
// exploration.
type TreeOfThoughtOutput struct {
	ExploredApproaches []Approach   `json:"explored_approaches"`
	BestApproach       BestApproach `json:"best_approach"`
	TotalApproaches    int          `json:"total_approaches"`
}

// ConsistencyAnalysis is the structured result of the self-consistency
// analysis call.
type ConsistencyAnalysis struct {
	Analysis             string `json:"analysis"`
	ResponseCount        int    `json:"response_count"`
	MostConsistentAnswer string `json:"most_consistent_answer"`
}

// SelfConsistencyOutput is the structured output of a self-consistency
// validation.
type SelfConsistencyOutput struct {
	AllResponses        []string            `json:"all_responses"`
	ConsistencyAnalysis ConsistencyAnalysis `json:"consistency_analysis"`
	FinalAnswer         string              `json:"final_answer"`
	NumSamples          int                 `json:"num_samples"`
}

// ModelInfo describes the configured model for info endpoints.
type ModelInfo struct {
	ModelName             string  `json:"model_name"`
	DefaultTemperature    float64 `json:"default_temperature"`
	DefaultThinkingBudget int     `json:"default_thinking_budget"`
	APIKeyConfigured      bool    `json:"api_key_configured"`
}

// ServiceInfo describes the prompting service for info endpoints.
type ServiceInfo struct {
	Service    string    `json:"service"`
	Techniques []string  `json:"techniques"`
	ModelInfo  ModelInfo `json:"model_info"`
}

// Service orchestrates the prompt-template techniques over a bounded
// generator. Each method assembles the technique's fixed prompt, issues the
// required generation calls, and reshapes the replies into a TechniqueResult.
type Service interface {
	FewShotSentiment(ctx context.Context, text string) (*TechniqueResult, error)
	FewShotMath(ctx context.Context, problem string) (*TechniqueResult, error)
	FewShotNER(ctx context.Context, text string) (*TechniqueResult, error)
	FewShotClassification(ctx context.Context, text string) (*TechniqueResult, error)

	ChainOfThoughtMath(ctx context.Context, problem string) (*TechniqueResult, error)
	ChainOfThoughtLogic(ctx context.Context, problem string) (*TechniqueResult, error)
	ChainOfThoughtAnalysis(ctx context.Context, problem string) (*TechniqueResult, error)

	// TreeOfThoughtExplore fans out over up to maxApproaches named
	// reasoning approaches concurrently, then issues one evaluation call
	// selecting the best.
	TreeOfThoughtExplore(ctx context.Context, problem string, maxApproaches int) (*TechniqueResult, error)

	// SelfConsistencyValidate samples numSamples answers concurrently,
	// then issues one analysis call extracting the most consistent answer.
	SelfConsistencyValidate(ctx context.Context, question string, numSamples int) (*TechniqueResult, error)

	MetaPromptOptimize(ctx context.Context, task, currentPrompt string) (*TechniqueResult, error)
	MetaTaskAnalyze(ctx context.Context, task string) (*TechniqueResult, error)

	// Info describes the service and its configured model.
	Info() ServiceInfo
}
