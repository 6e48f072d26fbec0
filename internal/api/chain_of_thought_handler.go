package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/prompting-api/internal/api/shared"
	"github.com/phrazzld/prompting-api/internal/service/prompting"
)

// ChainOfThoughtHandler handles the chain-of-thought reasoning endpoints.
type ChainOfThoughtHandler struct {
	service   prompting.Service
	validator *validator.Validate
}

// NewChainOfThoughtHandler creates a new ChainOfThoughtHandler.
func NewChainOfThoughtHandler(service prompting.Service) *ChainOfThoughtHandler {
	return &ChainOfThoughtHandler{
		service:   service,
		validator: validator.New(),
	}
}

// Math handles POST /api/v1/chain-of-thought/math requests.
func (h *ChainOfThoughtHandler) Math(w http.ResponseWriter, r *http.Request) {
	var req CoTMathRequest
	handleTechnique(w, r, h.validator, &req, "MATH_REASONING_FAILED",
		func() (*prompting.TechniqueResult, error) {
			return h.service.ChainOfThoughtMath(r.Context(), req.Problem)
		})
}

// Logic handles POST /api/v1/chain-of-thought/logic requests.
func (h *ChainOfThoughtHandler) Logic(w http.ResponseWriter, r *http.Request) {
	var req CoTLogicRequest
	handleTechnique(w, r, h.validator, &req, "LOGICAL_REASONING_FAILED",
		func() (*prompting.TechniqueResult, error) {
			return h.service.ChainOfThoughtLogic(r.Context(), req.Problem)
		})
}

// Analysis handles POST /api/v1/chain-of-thought/analysis requests.
func (h *ChainOfThoughtHandler) Analysis(w http.ResponseWriter, r *http.Request) {
	var req CoTAnalysisRequest
	handleTechnique(w, r, h.validator, &req, "COMPLEX_ANALYSIS_FAILED",
		func() (*prompting.TechniqueResult, error) {
			return h.service.ChainOfThoughtAnalysis(r.Context(), req.Problem)
		})
}

// Info handles GET /api/v1/chain-of-thought/info requests.
func (h *ChainOfThoughtHandler) Info(w http.ResponseWriter, r *http.Request) {
	info := TechniqueInfo{
		Technique:   prompting.TechniqueChainOfThought,
		Description: "Step-by-step reasoning for complex problem solving",
		Endpoints: map[string]EndpointInfo{
			"math": {
				Method:         http.MethodPost,
				Description:    "Solve math problems with step-by-step reasoning",
				RequiredFields: []string{"problem"},
				Example: map[string]any{
					"problem": "A train travels 120 miles in 2 hours. What is its average speed?",
				},
			},
			"logic": {
				Method:         http.MethodPost,
				Description:    "Work through logical problems with explicit deduction",
				RequiredFields: []string{"problem"},
				Example: map[string]any{
					"problem": "All cats are mammals. Whiskers is a cat. What can we conclude?",
				},
			},
			"analysis": {
				Method:         http.MethodPost,
				Description:    "Analyze complex problems systematically",
				RequiredFields: []string{"problem"},
				Example: map[string]any{
					"problem": "What factors should a city consider when planning public transit?",
				},
			},
		},
	}

	shared.RespondWithData(w, r, http.StatusOK, info, "")
}
