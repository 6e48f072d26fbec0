package api

import (
	"context"

	"github.com/phrazzld/prompting-api/internal/service/prompting"
)

// mockService implements prompting.Service for handler tests. Every technique
// method records its arguments and returns the configured result and error.
type mockService struct {
	result *prompting.TechniqueResult
	err    error
	info   prompting.ServiceInfo

	lastMethod string
	lastArgs   []any
}

func (m *mockService) record(method string, args ...any) (*prompting.TechniqueResult, error) {
	m.lastMethod = method
	m.lastArgs = args
	return m.result, m.err
}

func (m *mockService) FewShotSentiment(_ context.Context, text string) (*prompting.TechniqueResult, error) {
	return m.record("FewShotSentiment", text)
}

func (m *mockService) FewShotMath(_ context.Context, problem string) (*prompting.TechniqueResult, error) {
	return m.record("FewShotMath", problem)
}

func (m *mockService) FewShotNER(_ context.Context, text string) (*prompting.TechniqueResult, error) {
	return m.record("FewShotNER", text)
}

func (m *mockService) FewShotClassification(_ context.Context, text string) (*prompting.TechniqueResult, error) {
	return m.record("FewShotClassification", text)
}

func (m *mockService) ChainOfThoughtMath(_ context.Context, problem string) (*prompting.TechniqueResult, error) {
	return m.record("ChainOfThoughtMath", problem)
}

func (m *mockService) ChainOfThoughtLogic(_ context.Context, problem string) (*prompting.TechniqueResult, error) {
	return m.record("ChainOfThoughtLogic", problem)
}

func (m *mockService) ChainOfThoughtAnalysis(_ context.Context, problem string) (*prompting.TechniqueResult, error) {
	return m.record("ChainOfThoughtAnalysis", problem)
}

func (m *mockService) TreeOfThoughtExplore(
	_ context.Context,
	problem string,
	maxApproaches int,
) (*prompting.TechniqueResult, error) {
	return m.record("TreeOfThoughtExplore", problem, maxApproaches)
}

func (m *mockService) SelfConsistencyValidate(
	_ context.Context,
	question string,
	numSamples int,
) (*prompting.TechniqueResult, error) {
	return m.record("SelfConsistencyValidate", question, numSamples)
}

func (m *mockService) MetaPromptOptimize(_ context.Context, task, currentPrompt string) (*prompting.TechniqueResult, error) {
	return m.record("MetaPromptOptimize", task, currentPrompt)
}

func (m *mockService) MetaTaskAnalyze(_ context.Context, task string) (*prompting.TechniqueResult, error) {
	return m.record("MetaTaskAnalyze", task)
}

func (m *mockService) Info() prompting.ServiceInfo {
	return m.info
}

var _ prompting.Service = (*mockService)(nil)
