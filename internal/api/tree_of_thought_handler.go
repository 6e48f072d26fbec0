package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/prompting-api/internal/api/shared"
	"github.com/phrazzld/prompting-api/internal/service/prompting"
)

// TreeOfThoughtHandler handles the tree-of-thought exploration endpoints.
type TreeOfThoughtHandler struct {
	service   prompting.Service
	validator *validator.Validate
}

// NewTreeOfThoughtHandler creates a new TreeOfThoughtHandler.
func NewTreeOfThoughtHandler(service prompting.Service) *TreeOfThoughtHandler {
	return &TreeOfThoughtHandler{
		service:   service,
		validator: validator.New(),
	}
}

// Explore handles POST /api/v1/tree-of-thought/explore requests.
func (h *TreeOfThoughtHandler) Explore(w http.ResponseWriter, r *http.Request) {
	var req TreeOfThoughtRequest
	handleTechnique(w, r, h.validator, &req, "TREE_OF_THOUGHT_FAILED",
		func() (*prompting.TechniqueResult, error) {
			return h.service.TreeOfThoughtExplore(r.Context(), req.Problem, req.MaxApproaches)
		})
}

// Info handles GET /api/v1/tree-of-thought/info requests.
func (h *TreeOfThoughtHandler) Info(w http.ResponseWriter, r *http.Request) {
	info := TechniqueInfo{
		Technique:   prompting.TechniqueTreeOfThought,
		Description: "Explore multiple reasoning paths and select the best one",
		Endpoints: map[string]EndpointInfo{
			"explore": {
				Method:         http.MethodPost,
				Description:    "Explore multiple solution approaches and pick the best",
				RequiredFields: []string{"problem"},
				Example: map[string]any{
					"problem":        "How can a small business increase customer retention?",
					"max_approaches": 3,
				},
			},
		},
	}

	shared.RespondWithData(w, r, http.StatusOK, info, "")
}
