package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/phrazzld/prompting-api/docs"
	"github.com/phrazzld/prompting-api/internal/api"
	apiMiddleware "github.com/phrazzld/prompting-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. It accepts the application dependencies to create handlers
// and register routes.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(apiMiddleware.RateLimit(app.config.Server.RateLimitPerMinute))

	// Create API handlers using the application's services
	systemHandler := api.NewSystemHandler(app.promptingService, app.generator)
	fewShotHandler := api.NewFewShotHandler(app.promptingService)
	cotHandler := api.NewChainOfThoughtHandler(app.promptingService)
	totHandler := api.NewTreeOfThoughtHandler(app.promptingService)
	scHandler := api.NewSelfConsistencyHandler(app.promptingService)
	metaHandler := api.NewMetaPromptingHandler(app.promptingService)

	r.NotFound(api.NotFound)
	r.MethodNotAllowed(api.MethodNotAllowed)

	// System endpoints
	r.Get("/", systemHandler.Root)
	r.Get("/api/health", systemHandler.Health)
	r.Get("/api/info", systemHandler.Info)

	// Interactive API documentation
	r.Get("/docs/*", httpSwagger.Handler())

	// Technique endpoints
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/few-shot", func(r chi.Router) {
			r.Post("/sentiment", fewShotHandler.Sentiment)
			r.Post("/math", fewShotHandler.Math)
			r.Post("/ner", fewShotHandler.NER)
			r.Post("/classification", fewShotHandler.Classification)
			r.Get("/info", fewShotHandler.Info)
		})

		r.Route("/chain-of-thought", func(r chi.Router) {
			r.Post("/math", cotHandler.Math)
			r.Post("/logic", cotHandler.Logic)
			r.Post("/analysis", cotHandler.Analysis)
			r.Get("/info", cotHandler.Info)
		})

		r.Route("/tree-of-thought", func(r chi.Router) {
			r.Post("/explore", totHandler.Explore)
			r.Get("/info", totHandler.Info)
		})

		r.Route("/self-consistency", func(r chi.Router) {
			r.Post("/validate", scHandler.Validate)
			r.Get("/info", scHandler.Info)
		})

		r.Route("/meta-prompting", func(r chi.Router) {
			r.Post("/optimize", metaHandler.Optimize)
			r.Post("/analyze", metaHandler.Analyze)
			r.Get("/info", metaHandler.Info)
		})
	})

	return r
}
