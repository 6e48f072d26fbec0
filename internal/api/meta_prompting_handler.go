package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/prompting-api/internal/api/shared"
	"github.com/phrazzld/prompting-api/internal/service/prompting"
)

// MetaPromptingHandler handles the meta-prompting endpoints.
type MetaPromptingHandler struct {
	service   prompting.Service
	validator *validator.Validate
}

// NewMetaPromptingHandler creates a new MetaPromptingHandler.
func NewMetaPromptingHandler(service prompting.Service) *MetaPromptingHandler {
	return &MetaPromptingHandler{
		service:   service,
		validator: validator.New(),
	}
}

// Optimize handles POST /api/v1/meta-prompting/optimize requests.
func (h *MetaPromptingHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	var req OptimizeRequest
	handleTechnique(w, r, h.validator, &req, "PROMPT_OPTIMIZATION_FAILED",
		func() (*prompting.TechniqueResult, error) {
			return h.service.MetaPromptOptimize(r.Context(), req.Task, req.CurrentPrompt)
		})
}

// Analyze handles POST /api/v1/meta-prompting/analyze requests.
func (h *MetaPromptingHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	handleTechnique(w, r, h.validator, &req, "TASK_ANALYSIS_FAILED",
		func() (*prompting.TechniqueResult, error) {
			return h.service.MetaTaskAnalyze(r.Context(), req.Task)
		})
}

// Info handles GET /api/v1/meta-prompting/info requests.
func (h *MetaPromptingHandler) Info(w http.ResponseWriter, r *http.Request) {
	info := TechniqueInfo{
		Technique:   prompting.TechniqueMetaPrompting,
		Description: "Use the model to analyze tasks and improve prompts",
		Endpoints: map[string]EndpointInfo{
			"optimize": {
				Method:         http.MethodPost,
				Description:    "Optimize an existing prompt for a task",
				RequiredFields: []string{"task", "current_prompt"},
				Example: map[string]any{
					"task":           "Summarize scientific papers",
					"current_prompt": "Summarize this paper in plain language.",
				},
			},
			"analyze": {
				Method:         http.MethodPost,
				Description:    "Analyze a task to determine the best prompting approach",
				RequiredFields: []string{"task"},
				Example: map[string]any{
					"task": "Generate product descriptions for an online store",
				},
			},
		},
	}

	shared.RespondWithData(w, r, http.StatusOK, info, "")
}
