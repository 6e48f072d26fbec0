// Package docs holds the generated OpenAPI definition served at /docs/.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "API welcome page with quick links",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.Envelope"}}
                }
            }
        },
        "/api/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check including a live model connection test",
                "responses": {
                    "200": {"description": "Healthy", "schema": {"$ref": "#/definitions/api.Envelope"}},
                    "503": {"description": "Degraded", "schema": {"$ref": "#/definitions/api.Envelope"}}
                }
            }
        },
        "/api/info": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "API metadata and endpoint catalog",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.Envelope"}}
                }
            }
        },
        "/api/v1/few-shot/sentiment": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["few-shot"],
                "summary": "Classify sentiment using few-shot examples",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.SentimentRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.Envelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/api.Envelope"}},
                    "500": {"description": "Generation failed", "schema": {"$ref": "#/definitions/api.Envelope"}}
                }
            }
        },
        "/api/v1/few-shot/math": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["few-shot"],
                "summary": "Solve a math word problem using few-shot examples",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.FewShotMathRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.Envelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/api.Envelope"}},
                    "500": {"description": "Generation failed", "schema": {"$ref": "#/definitions/api.Envelope"}}
                }
            }
        },
        "/api/v1/few-shot/ner": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["few-shot"],
                "summary": "Extract named entities using few-shot examples",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.NERRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.Envelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/api.Envelope"}},
                    "500": {"description": "Generation failed", "schema": {"$ref": "#/definitions/api.Envelope"}}
                }
            }
        },
        "/api/v1/few-shot/classification": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["few-shot"],
                "summary": "Classify text into categories using few-shot examples",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.ClassificationRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.Envelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/api.Envelope"}},
                    "500": {"description": "Generation failed", "schema": {"$ref": "#/definitions/api.Envelope"}}
                }
            }
        },
        "/api/v1/few-shot/info": {
            "get": {
                "produces": ["application/json"],
                "tags": ["few-shot"],
                "summary": "Describe the few-shot learning endpoints",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.Envelope"}}
                }
            }
        },
        "/api/v1/chain-of-thought/math": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["chain-of-thought"],
                "summary": "Solve a math problem with step-by-step reasoning",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.CoTMathRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.Envelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/api.Envelope"}},
                    "500": {"description": "Generation failed", "schema": {"$ref": "#/definitions/api.Envelope"}}
                }
            }
        },
        "/api/v1/chain-of-thought/logic": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["chain-of-thought"],
                "summary": "Work through a logic puzzle with explicit reasoning",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.CoTLogicRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.Envelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/api.Envelope"}},
                    "500": {"description": "Generation failed", "schema": {"$ref": "#/definitions/api.Envelope"}}
                }
            }
        },
        "/api/v1/chain-of-thought/analysis": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["chain-of-thought"],
                "summary": "Analyze a complex question with structured reasoning",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.CoTAnalysisRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.Envelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/api.Envelope"}},
                    "500": {"description": "Generation failed", "schema": {"$ref": "#/definitions/api.Envelope"}}
                }
            }
        },
        "/api/v1/chain-of-thought/info": {
            "get": {
                "produces": ["application/json"],
                "tags": ["chain-of-thought"],
                "summary": "Describe the chain-of-thought endpoints",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.Envelope"}}
                }
            }
        },
        "/api/v1/tree-of-thought/explore": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["tree-of-thought"],
                "summary": "Explore multiple solution approaches and pick the best",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.TreeOfThoughtRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.Envelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/api.Envelope"}},
                    "500": {"description": "Generation failed", "schema": {"$ref": "#/definitions/api.Envelope"}}
                }
            }
        },
        "/api/v1/tree-of-thought/info": {
            "get": {
                "produces": ["application/json"],
                "tags": ["tree-of-thought"],
                "summary": "Describe the tree-of-thought endpoints",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.Envelope"}}
                }
            }
        },
        "/api/v1/self-consistency/validate": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["self-consistency"],
                "summary": "Sample multiple answers and extract the most consistent one",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.SelfConsistencyRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.Envelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/api.Envelope"}},
                    "500": {"description": "Generation failed", "schema": {"$ref": "#/definitions/api.Envelope"}}
                }
            }
        },
        "/api/v1/self-consistency/info": {
            "get": {
                "produces": ["application/json"],
                "tags": ["self-consistency"],
                "summary": "Describe the self-consistency endpoints",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.Envelope"}}
                }
            }
        },
        "/api/v1/meta-prompting/optimize": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["meta-prompting"],
                "summary": "Optimize an existing prompt for a given task",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.OptimizeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.Envelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/api.Envelope"}},
                    "500": {"description": "Generation failed", "schema": {"$ref": "#/definitions/api.Envelope"}}
                }
            }
        },
        "/api/v1/meta-prompting/analyze": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["meta-prompting"],
                "summary": "Analyze a task and recommend a prompting strategy",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.AnalyzeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.Envelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/api.Envelope"}},
                    "500": {"description": "Generation failed", "schema": {"$ref": "#/definitions/api.Envelope"}}
                }
            }
        },
        "/api/v1/meta-prompting/info": {
            "get": {
                "produces": ["application/json"],
                "tags": ["meta-prompting"],
                "summary": "Describe the meta-prompting endpoints",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.Envelope"}}
                }
            }
        }
    },
    "definitions": {
        "api.Envelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {},
                "message": {"type": "string"},
                "error": {
                    "type": "object",
                    "properties": {
                        "code": {"type": "string"},
                        "message": {"type": "string"},
                        "details": {},
                        "trace_id": {"type": "string"}
                    }
                },
                "timestamp": {"type": "string"}
            }
        },
        "api.SentimentRequest": {
            "type": "object",
            "required": ["text"],
            "properties": {
                "text": {"type": "string", "minLength": 1, "maxLength": 5000}
            }
        },
        "api.FewShotMathRequest": {
            "type": "object",
            "required": ["problem"],
            "properties": {
                "problem": {"type": "string", "minLength": 5, "maxLength": 2000}
            }
        },
        "api.NERRequest": {
            "type": "object",
            "required": ["text"],
            "properties": {
                "text": {"type": "string", "minLength": 1, "maxLength": 3000}
            }
        },
        "api.ClassificationRequest": {
            "type": "object",
            "required": ["text"],
            "properties": {
                "text": {"type": "string", "minLength": 1, "maxLength": 2000}
            }
        },
        "api.CoTMathRequest": {
            "type": "object",
            "required": ["problem"],
            "properties": {
                "problem": {"type": "string", "minLength": 5, "maxLength": 2000}
            }
        },
        "api.CoTLogicRequest": {
            "type": "object",
            "required": ["problem"],
            "properties": {
                "problem": {"type": "string", "minLength": 10, "maxLength": 2000}
            }
        },
        "api.CoTAnalysisRequest": {
            "type": "object",
            "required": ["problem"],
            "properties": {
                "problem": {"type": "string", "minLength": 10, "maxLength": 3000}
            }
        },
        "api.TreeOfThoughtRequest": {
            "type": "object",
            "required": ["problem"],
            "properties": {
                "problem": {"type": "string", "minLength": 10, "maxLength": 2000},
                "max_approaches": {"type": "integer", "minimum": 1, "maximum": 5}
            }
        },
        "api.SelfConsistencyRequest": {
            "type": "object",
            "required": ["question"],
            "properties": {
                "question": {"type": "string", "minLength": 5, "maxLength": 1000},
                "num_samples": {"type": "integer", "minimum": 2, "maximum": 5}
            }
        },
        "api.OptimizeRequest": {
            "type": "object",
            "required": ["task", "current_prompt"],
            "properties": {
                "task": {"type": "string", "minLength": 5, "maxLength": 500},
                "current_prompt": {"type": "string", "minLength": 10, "maxLength": 2000}
            }
        },
        "api.AnalyzeRequest": {
            "type": "object",
            "required": ["task"],
            "properties": {
                "task": {"type": "string", "minLength": 5, "maxLength": 1000}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Advanced Prompting System API",
	Description:      "REST API exposing few-shot, chain-of-thought, tree-of-thought, self-consistency, and meta-prompting techniques backed by the Gemini API.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
