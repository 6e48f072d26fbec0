package api

// Request payloads for the technique endpoints. Length bounds are part of
// the API contract and differ per task.

// SentimentRequest is the payload for POST /few-shot/sentiment.
type SentimentRequest struct {
	Text string `json:"text" validate:"required,min=1,max=5000"`
}

// FewShotMathRequest is the payload for POST /few-shot/math.
type FewShotMathRequest struct {
	Problem string `json:"problem" validate:"required,min=5,max=2000"`
}

// NERRequest is the payload for POST /few-shot/ner.
type NERRequest struct {
	Text string `json:"text" validate:"required,min=1,max=3000"`
}

// ClassificationRequest is the payload for POST /few-shot/classification.
type ClassificationRequest struct {
	Text string `json:"text" validate:"required,min=1,max=2000"`
}

// CoTMathRequest is the payload for POST /chain-of-thought/math.
type CoTMathRequest struct {
	Problem string `json:"problem" validate:"required,min=5,max=2000"`
}

// CoTLogicRequest is the payload for POST /chain-of-thought/logic.
type CoTLogicRequest struct {
	Problem string `json:"problem" validate:"required,min=10,max=2000"`
}

// CoTAnalysisRequest is the payload for POST /chain-of-thought/analysis.
type CoTAnalysisRequest struct {
	Problem string `json:"problem" validate:"required,min=10,max=3000"`
}

// TreeOfThoughtRequest is the payload for POST /tree-of-thought/explore.
// MaxApproaches is optional; zero means the default.
type TreeOfThoughtRequest struct {
	Problem       string `json:"problem"        validate:"required,min=10,max=2000"`
	MaxApproaches int    `json:"max_approaches" validate:"omitempty,gte=1,lte=5"`
}

// SelfConsistencyRequest is the payload for POST /self-consistency/validate.
// NumSamples is optional; zero means the default.
type SelfConsistencyRequest struct {
	Question   string `json:"question"    validate:"required,min=5,max=1000"`
	NumSamples int    `json:"num_samples" validate:"omitempty,gte=2,lte=5"`
}

// OptimizeRequest is the payload for POST /meta-prompting/optimize.
type OptimizeRequest struct {
	Task          string `json:"task"           validate:"required,min=5,max=500"`
	CurrentPrompt string `json:"current_prompt" validate:"required,min=10,max=2000"`
}

// AnalyzeRequest is the payload for POST /meta-prompting/analyze.
type AnalyzeRequest struct {
	Task string `json:"task" validate:"required,min=5,max=1000"`
}

// EndpointInfo documents one endpoint in a technique info payload.
type EndpointInfo struct {
	Method         string         `json:"method"`
	Description    string         `json:"description"`
	RequiredFields []string       `json:"required_fields"`
	Example        map[string]any `json:"example"`
}

// TechniqueInfo is the payload of the per-technique GET info endpoints.
type TechniqueInfo struct {
	Technique   string                  `json:"technique"`
	Description string                  `json:"description"`
	Endpoints   map[string]EndpointInfo `json:"endpoints"`
}
