// Package docs holds the OpenAPI document served under /swagger, in the
// layout swag produces from the handler annotations.
package docs

//go:generate swag init -d .. -g cmd/api/main.go -o .

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
                "description": "Service name, version and the main endpoints",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Service Info",
                "responses": {
                    "200": {"description": "Service information", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Check if the API process is healthy",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {
                    "200": {"description": "API is healthy", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/ready": {
            "get": {
                "description": "Check if the API and its dependencies are ready to serve traffic",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {
                    "200": {"description": "API is ready", "schema": {"type": "object", "additionalProperties": true}},
                    "503": {"description": "A dependency is unavailable", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/live": {
            "get": {
                "description": "Check if the API is alive",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {
                    "200": {"description": "API is alive", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/metrics": {
            "get": {
                "description": "Prometheus exposition of service, inference and HTTP metrics",
                "produces": ["text/plain"],
                "tags": ["Health"],
                "summary": "Metrics",
                "responses": {
                    "200": {"description": "Prometheus text format"}
                }
            }
        },
        "/api/v1/analyze-text": {
            "post": {
                "description": "Classifies the emotion of a text and derives sentiment, linguistic features, a wellness score and a crisis assessment.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Analysis"],
                "summary": "Analyze text",
                "parameters": [
                    {"description": "Text to analyze", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.analyzeReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.analyzeResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "502": {"description": "Model inference failed", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "503": {"description": "Model not available", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/batch-analyze": {
            "post": {
                "description": "Analyzes up to 50 texts. Blank items are skipped; results keep input order.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Analysis"],
                "summary": "Analyze several texts",
                "parameters": [
                    {"description": "Texts to analyze", "name": "body", "in": "body", "required": true, "schema": {"type": "array", "items": {"type": "string"}}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.batchResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "502": {"description": "Model inference failed", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "503": {"description": "Model not available", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/health": {
            "get": {
                "description": "Reports whether at least one classifier backend is healthy.",
                "produces": ["application/json"],
                "tags": ["Analysis"],
                "summary": "Model health",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.healthResp"}}
                }
            }
        },
        "/api/v1/model-info": {
            "get": {
                "description": "Model type, name, labels, max token length and configured backends.",
                "produces": ["application/json"],
                "tags": ["Analysis"],
                "summary": "Model information",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.modelInfoResp"}},
                    "503": {"description": "Model not available", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        }
    },
    "definitions": {
        "http.analyzeReq": {
            "type": "object",
            "required": ["text"],
            "properties": {
                "text": {"type": "string"},
                "user_id": {"type": "string", "maxLength": 255}
            }
        },
        "http.emotionResp": {
            "type": "object",
            "properties": {
                "primary": {"type": "string"},
                "confidence": {"type": "number"},
                "all_probabilities": {"type": "object", "additionalProperties": {"type": "number"}}
            }
        },
        "http.crisisResp": {
            "type": "object",
            "properties": {
                "detected": {"type": "boolean"},
                "severity": {"type": "string"},
                "indicators": {"type": "array", "items": {"type": "string"}},
                "support_message": {"type": "string"}
            }
        },
        "sentiment.Scores": {
            "type": "object",
            "properties": {
                "compound": {"type": "number"},
                "positive": {"type": "number"},
                "negative": {"type": "number"},
                "neutral": {"type": "number"}
            }
        },
        "linguistics.Features": {
            "type": "object",
            "properties": {
                "first_person_pronouns": {"type": "integer"},
                "negative_words": {"type": "integer"},
                "absolute_words": {"type": "integer"},
                "lexical_diversity": {"type": "number"},
                "avg_sentence_length": {"type": "number"},
                "total_words": {"type": "integer"},
                "language": {"type": "string"}
            }
        },
        "http.analyzeResp": {
            "type": "object",
            "properties": {
                "emotion": {"$ref": "#/definitions/http.emotionResp"},
                "sentiment": {"$ref": "#/definitions/sentiment.Scores"},
                "linguistic_features": {"$ref": "#/definitions/linguistics.Features"},
                "wellness_score": {"type": "number"},
                "interpretation": {"type": "string"},
                "crisis": {"$ref": "#/definitions/http.crisisResp"},
                "input_length": {"type": "integer"},
                "user_id": {"type": "string"},
                "timestamp": {"type": "string"},
                "provider": {"type": "string"},
                "model": {"type": "string"},
                "cached": {"type": "boolean"},
                "processing_time": {"type": "number"}
            }
        },
        "http.batchResp": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "skipped": {"type": "integer"},
                "results": {"type": "array", "items": {"$ref": "#/definitions/http.analyzeResp"}},
                "processing_time": {"type": "number"}
            }
        },
        "http.backendResp": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "model": {"type": "string"}
            }
        },
        "http.healthResp": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "service": {"type": "string"},
                "version": {"type": "string"},
                "model_loaded": {"type": "boolean"},
                "backends": {"type": "array", "items": {"$ref": "#/definitions/http.backendResp"}},
                "error": {"type": "string"}
            }
        },
        "http.modelInfoResp": {
            "type": "object",
            "properties": {
                "model_type": {"type": "string"},
                "model_name": {"type": "string"},
                "emotions": {"type": "array", "items": {"type": "string"}},
                "num_emotions": {"type": "integer"},
                "max_length": {"type": "integer"},
                "backends": {"type": "array", "items": {"$ref": "#/definitions/http.backendResp"}}
            }
        },
        "response.Resp": {
            "type": "object",
            "properties": {
                "error_code": {"type": "integer"},
                "message": {"type": "string"},
                "data": {},
                "errors": {}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8000",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "MindCare Text Analysis API",
	Description:      "Emotion classification, sentiment, wellness scoring and crisis detection for free text.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
