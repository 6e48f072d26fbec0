package api

import (
	"net/http"
	"time"

	"github.com/phrazzld/prompting-api/internal/api/shared"
	"github.com/phrazzld/prompting-api/internal/generation"
	"github.com/phrazzld/prompting-api/internal/service/prompting"
)

// Version is the API version reported by the system endpoints.
const Version = "1.0.0"

// baseURL is the versioned prefix under which technique endpoints live.
const baseURL = "/api/v1"

// SystemHandler handles the root, health, and info endpoints.
type SystemHandler struct {
	service   prompting.Service
	generator generation.Generator
}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler(service prompting.Service, generator generation.Generator) *SystemHandler {
	return &SystemHandler{
		service:   service,
		generator: generator,
	}
}

// HealthData is the payload of the health endpoint.
type HealthData struct {
	Status    string              `json:"status"`
	Timestamp string              `json:"timestamp"`
	Version   string              `json:"version"`
	Services  map[string]bool     `json:"services"`
	ModelInfo prompting.ModelInfo `json:"model_info"`
}

// Health handles GET /api/health requests. It issues a live connection test
// against the upstream API: healthy responds 200, a reachable-but-failing
// upstream responds 503 with a degraded status.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	status := h.generator.HealthCheck(r.Context())

	overall := "healthy"
	if !status.OK {
		overall = "degraded"
	}

	data := HealthData{
		Status:    overall,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   Version,
		Services: map[string]bool{
			"http_server":       true,
			"gemini_api":        status.OK,
			"prompting_service": true,
		},
		ModelInfo: h.service.Info().ModelInfo,
	}

	statusCode := http.StatusOK
	if overall != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}

	shared.RespondWithData(w, r, statusCode, data, "")
}

// InfoData is the payload of the API info endpoint.
type InfoData struct {
	APIName     string                `json:"api_name"`
	Version     string                `json:"version"`
	Description string                `json:"description"`
	SwaggerUI   string                `json:"swagger_ui"`
	Endpoints   map[string][]string   `json:"endpoints"`
	ServiceInfo prompting.ServiceInfo `json:"service_info"`
}

// Info handles GET /api/info requests.
func (h *SystemHandler) Info(w http.ResponseWriter, r *http.Request) {
	data := InfoData{
		APIName:     "Advanced Prompting System",
		Version:     Version,
		Description: "REST API for advanced prompting techniques",
		SwaggerUI:   "/docs/",
		Endpoints: map[string][]string{
			"few_shot": {
				baseURL + "/few-shot/sentiment",
				baseURL + "/few-shot/math",
				baseURL + "/few-shot/ner",
				baseURL + "/few-shot/classification",
			},
			"chain_of_thought": {
				baseURL + "/chain-of-thought/math",
				baseURL + "/chain-of-thought/logic",
				baseURL + "/chain-of-thought/analysis",
			},
			"tree_of_thought": {
				baseURL + "/tree-of-thought/explore",
			},
			"self_consistency": {
				baseURL + "/self-consistency/validate",
			},
			"meta_prompting": {
				baseURL + "/meta-prompting/optimize",
				baseURL + "/meta-prompting/analyze",
			},
		},
		ServiceInfo: h.service.Info(),
	}

	shared.RespondWithData(w, r, http.StatusOK, data, "")
}

// WelcomeData is the payload of the root endpoint.
type WelcomeData struct {
	Message     string            `json:"message"`
	Version     string            `json:"version"`
	SwaggerUI   string            `json:"swagger_ui"`
	HealthCheck string            `json:"health_check"`
	APIInfo     string            `json:"api_info"`
	BaseURL     string            `json:"base_url"`
	QuickLinks  map[string]string `json:"quick_links"`
}

// Root handles GET / requests.
func (h *SystemHandler) Root(w http.ResponseWriter, r *http.Request) {
	data := WelcomeData{
		Message:     "Welcome to the Advanced Prompting System API",
		Version:     Version,
		SwaggerUI:   "/docs/",
		HealthCheck: "/api/health",
		APIInfo:     "/api/info",
		BaseURL:     baseURL,
		QuickLinks: map[string]string{
			"documentation":         "/docs/",
			"api_information":       "/api/info",
			"health_check":          "/api/health",
			"few_shot_sentiment":    baseURL + "/few-shot/sentiment",
			"chain_of_thought_math": baseURL + "/chain-of-thought/math",
			"tree_of_thought":       baseURL + "/tree-of-thought/explore",
			"self_consistency":      baseURL + "/self-consistency/validate",
			"meta_prompt_optimizer": baseURL + "/meta-prompting/optimize",
		},
	}

	shared.RespondWithData(w, r, http.StatusOK, data, "")
}

// NotFound is the router's fallback for unknown paths.
func NotFound(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusNotFound,
		CodeNotFound, "Endpoint not found", nil)
}

// MethodNotAllowed is the router's fallback for unsupported methods.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusMethodNotAllowed,
		CodeMethodNotAllowed, "Method not allowed for this endpoint", nil)
}
