package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/prompting-api/internal/api/shared"
	"github.com/phrazzld/prompting-api/internal/service/prompting"
)

// SelfConsistencyHandler handles the self-consistency validation endpoints.
type SelfConsistencyHandler struct {
	service   prompting.Service
	validator *validator.Validate
}

// NewSelfConsistencyHandler creates a new SelfConsistencyHandler.
func NewSelfConsistencyHandler(service prompting.Service) *SelfConsistencyHandler {
	return &SelfConsistencyHandler{
		service:   service,
		validator: validator.New(),
	}
}

// Validate handles POST /api/v1/self-consistency/validate requests.
func (h *SelfConsistencyHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req SelfConsistencyRequest
	handleTechnique(w, r, h.validator, &req, "SELF_CONSISTENCY_FAILED",
		func() (*prompting.TechniqueResult, error) {
			return h.service.SelfConsistencyValidate(r.Context(), req.Question, req.NumSamples)
		})
}

// Info handles GET /api/v1/self-consistency/info requests.
func (h *SelfConsistencyHandler) Info(w http.ResponseWriter, r *http.Request) {
	info := TechniqueInfo{
		Technique:   prompting.TechniqueSelfConsistency,
		Description: "Sample multiple answers and extract the most consistent one",
		Endpoints: map[string]EndpointInfo{
			"validate": {
				Method:         http.MethodPost,
				Description:    "Answer a question with consistency validation across samples",
				RequiredFields: []string{"question"},
				Example: map[string]any{
					"question":    "What is the capital of Australia?",
					"num_samples": 3,
				},
			},
		},
	}

	shared.RespondWithData(w, r, http.StatusOK, info, "")
}
