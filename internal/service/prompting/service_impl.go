package prompting

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/phrazzld/prompting-api/internal/config"
	"github.com/phrazzld/prompting-api/internal/generation"
	"github.com/phrazzld/prompting-api/internal/prompts"
	"golang.org/x/sync/errgroup"
)

// Per-task sampling temperatures. These are part of the technique contract:
// deterministic tasks run cold, exploratory tasks run warm.
const (
	tempSentiment      = 0.3
	tempFewShotMath    = 0.2
	tempNER            = 0.2
	tempClassification = 0.3
	tempChainOfThought = 0.3
	tempExploration    = 0.6
	tempEvaluation     = 0.3
	tempSampling       = 0.7
	tempAnalysis       = 0.2
	tempOptimization   = 0.4
	tempTaskAnalysis   = 0.3
)

// Per-task thinking budgets reported and requested for reasoning-heavy tasks.
const (
	budgetCoTMath     = 10000
	budgetCoTLogic    = 12000
	budgetCoTAnalysis = 15000
	budgetTreeExplore = 8000
	budgetConsistency = 5000
	budgetOptimize    = 8000
	budgetAnalyze     = 6000
)

// DefaultNumSamples is used when a self-consistency request omits num_samples.
const DefaultNumSamples = 3

// DefaultMaxApproaches is used when a tree-of-thought request omits
// max_approaches.
const DefaultMaxApproaches = 3

// service is the production Service implementation.
type service struct {
	generator generation.Generator
	logger    *slog.Logger
	cfg       config.LLMConfig
}

// NewService creates the prompting service over the given generator.
func NewService(generator generation.Generator, logger *slog.Logger, cfg config.LLMConfig) (Service, error) {
	if generator == nil {
		return nil, errors.New("generator cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &service{
		generator: generator,
		logger:    logger,
		cfg:       cfg,
	}, nil
}

// generate issues one call at the given temperature, optionally pinning a
// thinking budget. A nil budget leaves the provider default in place.
func (s *service) generate(ctx context.Context, prompt string, temperature float64, budget *int) (string, error) {
	result, err := s.generator.Generate(ctx, generation.Request{
		Prompt:         prompt,
		Temperature:    &temperature,
		ThinkingBudget: budget,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(result.Text), nil
}

// singleCall runs the standard one-prompt technique flow shared by few-shot,
// chain-of-thought, and meta-prompting tasks.
func (s *service) singleCall(
	ctx context.Context,
	technique, task string,
	input any,
	prompt string,
	temperature float64,
	budget *int,
	info map[string]any,
) (*TechniqueResult, error) {
	start := time.Now()

	output, err := s.generate(ctx, prompt, temperature, budget)
	if err != nil {
		s.logger.ErrorContext(ctx, "technique call failed",
			"technique", technique,
			"task", task,
			"error", err)
		return nil, fmt.Errorf("%s failed: %w", task, err)
	}

	return &TechniqueResult{
		Technique:      technique,
		Task:           task,
		Input:          input,
		Output:         output,
		ProcessingTime: roundSeconds(time.Since(start)),
		Model:          s.generator.ModelName(),
		AdditionalInfo: info,
	}, nil
}

// ==================== FEW-SHOT LEARNING ====================

func (s *service) FewShotSentiment(ctx context.Context, text string) (*TechniqueResult, error) {
	return s.singleCall(ctx, TechniqueFewShot, "sentiment_analysis", text,
		prompts.SentimentClassification(text), tempSentiment, nil,
		map[string]any{"prompt_template": prompts.TemplateSentimentClassification})
}

func (s *service) FewShotMath(ctx context.Context, problem string) (*TechniqueResult, error) {
	return s.singleCall(ctx, TechniqueFewShot, "math_solving", problem,
		prompts.MathWordProblems(problem), tempFewShotMath, nil,
		map[string]any{"prompt_template": prompts.TemplateMathWordProblems})
}

func (s *service) FewShotNER(ctx context.Context, text string) (*TechniqueResult, error) {
	return s.singleCall(ctx, TechniqueFewShot, "named_entity_recognition", text,
		prompts.NamedEntityRecognition(text), tempNER, nil,
		map[string]any{"prompt_template": prompts.TemplateNamedEntityRecognition})
}

func (s *service) FewShotClassification(ctx context.Context, text string) (*TechniqueResult, error) {
	return s.singleCall(ctx, TechniqueFewShot, "text_classification", text,
		prompts.TextClassification(text), tempClassification, nil,
		map[string]any{"prompt_template": prompts.TemplateTextClassification})
}

// ==================== CHAIN-OF-THOUGHT ====================

func (s *service) ChainOfThoughtMath(ctx context.Context, problem string) (*TechniqueResult, error) {
	budget := budgetCoTMath
	return s.singleCall(ctx, TechniqueChainOfThought, "math_reasoning", problem,
		prompts.MathProblemSolving(problem), tempChainOfThought, &budget,
		map[string]any{
			"prompt_template": prompts.TemplateMathProblemSolving,
			"thinking_budget": budget,
		})
}

func (s *service) ChainOfThoughtLogic(ctx context.Context, problem string) (*TechniqueResult, error) {
	budget := budgetCoTLogic
	return s.singleCall(ctx, TechniqueChainOfThought, "logical_reasoning", problem,
		prompts.LogicalReasoning(problem), tempChainOfThought, &budget,
		map[string]any{
			"prompt_template": prompts.TemplateLogicalReasoning,
			"thinking_budget": budget,
		})
}

func (s *service) ChainOfThoughtAnalysis(ctx context.Context, problem string) (*TechniqueResult, error) {
	budget := budgetCoTAnalysis
	return s.singleCall(ctx, TechniqueChainOfThought, "complex_analysis", problem,
		prompts.ComplexAnalysis(problem), tempChainOfThought, &budget,
		map[string]any{
			"prompt_template": prompts.TemplateComplexAnalysis,
			"thinking_budget": budget,
		})
}

// ==================== TREE-OF-THOUGHT ====================

func (s *service) TreeOfThoughtExplore(
	ctx context.Context,
	problem string,
	maxApproaches int,
) (*TechniqueResult, error) {
	start := time.Now()

	if maxApproaches <= 0 {
		maxApproaches = DefaultMaxApproaches
	}
	count := maxApproaches
	if count > len(prompts.ApproachNames) {
		count = len(prompts.ApproachNames)
	}

	// Explore the named approaches concurrently; each exploration is an
	// independent generation call.
	approaches := make([]Approach, count)
	g, groupCtx := errgroup.WithContext(ctx)
	budget := budgetTreeExplore
	for i := 0; i < count; i++ {
		g.Go(func() error {
			number := i + 1
			name := prompts.ApproachNames[i]
			solution, err := s.generate(
				groupCtx,
				prompts.ApproachExploration(problem, number, name),
				tempExploration,
				&budget,
			)
			if err != nil {
				return fmt.Errorf("approach %d (%s): %w", number, name, err)
			}
			approaches[i] = Approach{
				ApproachNumber: number,
				ApproachName:   name,
				Solution:       solution,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.ErrorContext(ctx, "tree-of-thought exploration failed", "error", err)
		return nil, fmt.Errorf("tree-of-thought exploration failed: %w", err)
	}

	best, err := s.selectBestApproach(ctx, problem, approaches)
	if err != nil {
		s.logger.ErrorContext(ctx, "tree-of-thought evaluation failed", "error", err)
		return nil, fmt.Errorf("tree-of-thought exploration failed: %w", err)
	}

	return &TechniqueResult{
		Technique: TechniqueTreeOfThought,
		Task:      "multi_approach_exploration",
		Input:     problem,
		Output: TreeOfThoughtOutput{
			ExploredApproaches: approaches,
			BestApproach:       *best,
			TotalApproaches:    len(approaches),
		},
		ProcessingTime: roundSeconds(time.Since(start)),
		Model:          s.generator.ModelName(),
		AdditionalInfo: map[string]any{
			"max_approaches":  maxApproaches,
			"thinking_budget": budgetTreeExplore,
		},
	}, nil
}

// selectBestApproach issues the follow-up evaluation call over the explored
// approaches.
func (s *service) selectBestApproach(
	ctx context.Context,
	problem string,
	approaches []Approach,
) (*BestApproach, error) {
	summaries := make([]prompts.ApproachSummary, len(approaches))
	for i, a := range approaches {
		summaries[i] = prompts.ApproachSummary{
			Number:   a.ApproachNumber,
			Name:     a.ApproachName,
			Solution: a.Solution,
		}
	}

	evaluation, err := s.generate(ctx, prompts.ApproachEvaluation(problem, summaries), tempEvaluation, nil)
	if err != nil {
		return nil, err
	}

	return &BestApproach{
		Evaluation:        evaluation,
		SelectionCriteria: prompts.SelectionCriteria,
	}, nil
}

// ==================== SELF-CONSISTENCY ====================

func (s *service) SelfConsistencyValidate(
	ctx context.Context,
	question string,
	numSamples int,
) (*TechniqueResult, error) {
	start := time.Now()

	if numSamples <= 0 {
		numSamples = DefaultNumSamples
	}

	// Draw all samples from the same prompt concurrently at a warm
	// temperature so they can legitimately disagree.
	prompt := prompts.GeneralConsistency(question)
	budget := budgetConsistency
	responses := make([]string, numSamples)
	g, groupCtx := errgroup.WithContext(ctx)
	for i := 0; i < numSamples; i++ {
		g.Go(func() error {
			sample, err := s.generate(groupCtx, prompt, tempSampling, &budget)
			if err != nil {
				return fmt.Errorf("sample %d: %w", i+1, err)
			}
			responses[i] = sample
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.ErrorContext(ctx, "self-consistency sampling failed", "error", err)
		return nil, fmt.Errorf("self-consistency validation failed: %w", err)
	}

	analysis, err := s.analyzeConsistency(ctx, question, responses)
	if err != nil {
		s.logger.ErrorContext(ctx, "consistency analysis failed", "error", err)
		return nil, fmt.Errorf("self-consistency validation failed: %w", err)
	}

	return &TechniqueResult{
		Technique: TechniqueSelfConsistency,
		Task:      "consistency_validation",
		Input:     question,
		Output: SelfConsistencyOutput{
			AllResponses:        responses,
			ConsistencyAnalysis: *analysis,
			FinalAnswer:         analysis.MostConsistentAnswer,
			NumSamples:          numSamples,
		},
		ProcessingTime: roundSeconds(time.Since(start)),
		Model:          s.generator.ModelName(),
		AdditionalInfo: map[string]any{
			"num_samples":     numSamples,
			"thinking_budget": budgetConsistency,
		},
	}, nil
}

// analyzeConsistency issues the cold analysis call over the drawn samples.
func (s *service) analyzeConsistency(
	ctx context.Context,
	question string,
	responses []string,
) (*ConsistencyAnalysis, error) {
	analysis, err := s.generate(ctx, prompts.ConsistencyAnalysis(question, responses), tempAnalysis, nil)
	if err != nil {
		return nil, err
	}

	return &ConsistencyAnalysis{
		Analysis:             analysis,
		ResponseCount:        len(responses),
		MostConsistentAnswer: extractMostConsistentAnswer(analysis),
	}, nil
}

// extractMostConsistentAnswer pulls the final answer out of the analysis
// text: the first line naming the most consistent or reliable answer, else
// the last line of substance, else a fixed fallback.
func extractMostConsistentAnswer(analysis string) string {
	lines := strings.Split(analysis, "\n")
	for _, line := range lines {
		lower := strings.ToLower(line)
		if strings.Contains(lower, "most consistent") || strings.Contains(lower, "most reliable") {
			return strings.TrimSpace(line)
		}
	}

	var lastMeaningful string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) > 10 {
			lastMeaningful = trimmed
		}
	}
	if lastMeaningful != "" {
		return lastMeaningful
	}
	return "Analysis inconclusive"
}

// ==================== META-PROMPTING ====================

func (s *service) MetaPromptOptimize(ctx context.Context, task, currentPrompt string) (*TechniqueResult, error) {
	budget := budgetOptimize
	return s.singleCall(ctx, TechniqueMetaPrompting, "prompt_optimization",
		OptimizeInput{Task: task, CurrentPrompt: currentPrompt},
		prompts.PromptOptimization(task, currentPrompt), tempOptimization, &budget,
		map[string]any{
			"prompt_template": prompts.TemplatePromptOptimization,
			"thinking_budget": budget,
		})
}

func (s *service) MetaTaskAnalyze(ctx context.Context, task string) (*TechniqueResult, error) {
	budget := budgetAnalyze
	return s.singleCall(ctx, TechniqueMetaPrompting, "task_analysis", task,
		prompts.TaskAnalysis(task), tempTaskAnalysis, &budget,
		map[string]any{
			"prompt_template": prompts.TemplateTaskAnalysis,
			"thinking_budget": budget,
		})
}

// ==================== SERVICE INFO ====================

func (s *service) Info() ServiceInfo {
	return ServiceInfo{
		Service: "Advanced Prompting Service",
		Techniques: []string{
			TechniqueFewShot,
			TechniqueChainOfThought,
			TechniqueTreeOfThought,
			TechniqueSelfConsistency,
			TechniqueMetaPrompting,
		},
		ModelInfo: ModelInfo{
			ModelName:             s.generator.ModelName(),
			DefaultTemperature:    s.cfg.DefaultTemperature,
			DefaultThinkingBudget: s.cfg.DefaultThinkingBudget,
			APIKeyConfigured:      s.cfg.GeminiAPIKey != "",
		},
	}
}

// roundSeconds converts a duration to seconds rounded to the millisecond.
func roundSeconds(d time.Duration) float64 {
	return math.Round(d.Seconds()*1000) / 1000
}
