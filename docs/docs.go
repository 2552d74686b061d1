// Package docs registers the Swagger document served at /swagger.
// Keep it in step with the handler annotations when routes change.
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
        "/health": {
            "get": {
                "description": "Check if the AI service is running",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.HealthResponse"}}
                }
            }
        },
        "/api/v1/analysis/call-summary": {
            "post": {
                "description": "Generate a structured summary of a call transcript (facts, practice area, urgency, lead score, emergency flag, contact data)",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["analysis"],
                "summary": "Summarize a call",
                "parameters": [
                    {"description": "Call summary request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.CallSummaryRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.CallSummaryResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/api/v1/analysis/lead-score": {
            "post": {
                "description": "Estimate how promising an inquiry is, on a 0-100 scale, with the factors behind the score",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["analysis"],
                "summary": "Score a lead",
                "parameters": [
                    {"description": "Lead score request", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.LeadScoreRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.LeadScoreResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/api/v1/analysis/emergency-detect": {
            "post": {
                "description": "Flag text describing violence or immediate danger using keyword matching. Set diagnostics=true to list matched keywords.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["analysis"],
                "summary": "Detect an emergency",
                "parameters": [
                    {"description": "Text to classify", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.EmergencyDetectRequest"}},
                    {"type": "boolean", "description": "Include matched keywords", "name": "diagnostics", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "matched_keywords only with diagnostics=true", "schema": {"$ref": "#/definitions/models.EmergencyDiagnosticsResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/api/v1/rag/query": {
            "post": {
                "description": "Answer a question from the firm's knowledge base and list the passages used",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["rag"],
                "summary": "Query the knowledge base",
                "parameters": [
                    {"description": "RAG query", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.RAGQueryRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.RAGQueryResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "models.APIResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {"$ref": "#/definitions/models.ErrorInfo"},
                "metadata": {"$ref": "#/definitions/models.Metadata"},
                "success": {"type": "boolean"}
            }
        },
        "models.CallSummaryRequest": {
            "type": "object",
            "required": ["call_id", "tenant_id", "transcript"],
            "properties": {
                "call_id": {"type": "string"},
                "practice_area": {"type": "string"},
                "tenant_id": {"type": "string"},
                "transcript": {"type": "string"}
            }
        },
        "models.CallSummaryResponse": {
            "type": "object",
            "properties": {
                "emergency_type": {"type": "string"},
                "extracted_data": {"type": "object", "additionalProperties": {}},
                "is_emergency": {"type": "boolean"},
                "key_facts": {"type": "array", "items": {"type": "string"}},
                "lead_score": {"type": "integer"},
                "practice_area": {"type": "string"},
                "summary": {"type": "string"},
                "urgency_level": {"description": "LOW, NORMAL, HIGH, CRITICAL", "type": "string"}
            }
        },
        "models.EmergencyDetectRequest": {
            "type": "object",
            "required": ["text"],
            "properties": {
                "text": {"type": "string"}
            }
        },
        "models.EmergencyDetectResponse": {
            "type": "object",
            "properties": {
                "confidence": {"type": "number"},
                "emergency_type": {"type": "string"},
                "is_emergency": {"type": "boolean"}
            }
        },
        "models.EmergencyDiagnosticsResponse": {
            "type": "object",
            "properties": {
                "confidence": {"type": "number"},
                "emergency_type": {"type": "string"},
                "is_emergency": {"type": "boolean"},
                "matched_keywords": {"type": "array", "items": {"type": "string"}}
            }
        },
        "models.ErrorInfo": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "details": {},
                "message": {"type": "string"}
            }
        },
        "models.HealthResponse": {
            "type": "object",
            "properties": {
                "service": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "models.LeadScoreRequest": {
            "type": "object",
            "required": ["tenant_id", "transcript"],
            "properties": {
                "practice_area": {"type": "string"},
                "tenant_id": {"type": "string"},
                "transcript": {"type": "string"}
            }
        },
        "models.LeadScoreResponse": {
            "type": "object",
            "properties": {
                "factors": {"type": "array", "items": {"type": "string"}},
                "score": {"type": "integer"}
            }
        },
        "models.Metadata": {
            "type": "object",
            "properties": {
                "request_id": {"type": "string"},
                "timestamp": {"type": "string"}
            }
        },
        "models.RAGQueryRequest": {
            "type": "object",
            "required": ["query", "tenant_id"],
            "properties": {
                "max_results": {"type": "integer"},
                "query": {"type": "string"},
                "tenant_id": {"type": "string"}
            }
        },
        "models.RAGQueryResponse": {
            "type": "object",
            "properties": {
                "answer": {"type": "string"},
                "sources": {"type": "array", "items": {"$ref": "#/definitions/models.RAGSource"}}
            }
        },
        "models.RAGSource": {
            "type": "object",
            "properties": {
                "document_id": {"type": "string"},
                "score": {"type": "number"},
                "title": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Service IA API",
	Description:      "Call analysis, emergency detection and knowledge base answers for law firm call centers",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
