package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/prompting-api/internal/api/shared"
	"github.com/phrazzld/prompting-api/internal/service/prompting"
)

// FewShotHandler handles the few-shot learning endpoints.
type FewShotHandler struct {
	service   prompting.Service
	validator *validator.Validate
}

// NewFewShotHandler creates a new FewShotHandler.
func NewFewShotHandler(service prompting.Service) *FewShotHandler {
	return &FewShotHandler{
		service:   service,
		validator: validator.New(),
	}
}

// Sentiment handles POST /api/v1/few-shot/sentiment requests.
func (h *FewShotHandler) Sentiment(w http.ResponseWriter, r *http.Request) {
	var req SentimentRequest
	handleTechnique(w, r, h.validator, &req, "SENTIMENT_ANALYSIS_FAILED",
		func() (*prompting.TechniqueResult, error) {
			return h.service.FewShotSentiment(r.Context(), req.Text)
		})
}

// Math handles POST /api/v1/few-shot/math requests.
func (h *FewShotHandler) Math(w http.ResponseWriter, r *http.Request) {
	var req FewShotMathRequest
	handleTechnique(w, r, h.validator, &req, "MATH_SOLVING_FAILED",
		func() (*prompting.TechniqueResult, error) {
			return h.service.FewShotMath(r.Context(), req.Problem)
		})
}

// NER handles POST /api/v1/few-shot/ner requests.
func (h *FewShotHandler) NER(w http.ResponseWriter, r *http.Request) {
	var req NERRequest
	handleTechnique(w, r, h.validator, &req, "NER_FAILED",
		func() (*prompting.TechniqueResult, error) {
			return h.service.FewShotNER(r.Context(), req.Text)
		})
}

// Classification handles POST /api/v1/few-shot/classification requests.
func (h *FewShotHandler) Classification(w http.ResponseWriter, r *http.Request) {
	var req ClassificationRequest
	handleTechnique(w, r, h.validator, &req, "TEXT_CLASSIFICATION_FAILED",
		func() (*prompting.TechniqueResult, error) {
			return h.service.FewShotClassification(r.Context(), req.Text)
		})
}

// Info handles GET /api/v1/few-shot/info requests.
func (h *FewShotHandler) Info(w http.ResponseWriter, r *http.Request) {
	info := TechniqueInfo{
		Technique:   prompting.TechniqueFewShot,
		Description: "Learn from minimal examples to perform new tasks",
		Endpoints: map[string]EndpointInfo{
			"sentiment": {
				Method:         http.MethodPost,
				Description:    "Analyze sentiment of text",
				RequiredFields: []string{"text"},
				Example:        map[string]any{"text": "This product is amazing!"},
			},
			"math": {
				Method:         http.MethodPost,
				Description:    "Solve math word problems",
				RequiredFields: []string{"problem"},
				Example: map[string]any{
					"problem": "If John has 15 apples and gives away 7, how many does he have left?",
				},
			},
			"ner": {
				Method:         http.MethodPost,
				Description:    "Extract named entities from text",
				RequiredFields: []string{"text"},
				Example: map[string]any{
					"text": "Apple Inc. was founded by Steve Jobs in California.",
				},
			},
			"classification": {
				Method:         http.MethodPost,
				Description:    "Classify text into categories",
				RequiredFields: []string{"text"},
				Example:        map[string]any{"text": "How do I reset my password?"},
			},
		},
	}

	shared.RespondWithData(w, r, http.StatusOK, info, "")
}
