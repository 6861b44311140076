// Package docs holds the Swagger document served at /swagger. It is written
// by hand to match the swag annotations on the task handlers; keep both in
// step when a route or payload changes.
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
        "/api/v1/tasks/languages": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "List supported languages",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.languagesResp"}}
                }
            }
        },
        "/api/v1/tasks/parse": {
            "post": {
                "description": "Extracts title, priority, status, dates, recurrence, estimate and markers from one line of text.\nUser status/priority configs replace the language's built-in keywords.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Parse a task line",
                "parameters": [
                    {"description": "Task line", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.parseReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.parseResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "413": {"description": "Input too long", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/tasks/suggest": {
            "get": {
                "description": "Returns built-in priority and status keywords of the language that start with the prefix.",
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Complete a vocabulary word",
                "parameters": [
                    {"type": "string", "description": "Partial word", "name": "prefix", "in": "query", "required": true},
                    {"type": "string", "description": "Language code (default from config)", "name": "language", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.suggestResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Check if the API is healthy",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {
                    "200": {"description": "API is healthy", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/live": {
            "get": {
                "description": "Check if the API is alive",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {
                    "200": {"description": "API is alive", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/ready": {
            "get": {
                "description": "Check if the API is ready to serve traffic",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {
                    "200": {"description": "API is ready", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        }
    },
    "definitions": {
        "http.languageResp": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "http.languagesResp": {
            "type": "object",
            "properties": {
                "languages": {"type": "array", "items": {"$ref": "#/definitions/http.languageResp"}}
            }
        },
        "http.matchResp": {
            "type": "object",
            "properties": {
                "kind": {"type": "string"},
                "text": {"type": "string"}
            }
        },
        "http.parseReq": {
            "type": "object",
            "required": ["text"],
            "properties": {
                "auto_suggest_enabled": {"type": "boolean"},
                "language": {"type": "string"},
                "priority_configs": {"type": "array", "items": {"$ref": "#/definitions/model.PriorityConfig"}},
                "status_configs": {"type": "array", "items": {"$ref": "#/definitions/model.StatusConfig"}},
                "text": {"type": "string"}
            }
        },
        "http.parseResp": {
            "type": "object",
            "properties": {
                "cached": {"type": "boolean"},
                "language": {"type": "string"},
                "task": {"$ref": "#/definitions/http.taskResp"}
            }
        },
        "http.suggestResp": {
            "type": "object",
            "properties": {
                "suggestions": {"type": "array", "items": {"type": "string"}}
            }
        },
        "http.taskResp": {
            "type": "object",
            "properties": {
                "contexts": {"type": "array", "items": {"type": "string"}},
                "due_date": {"type": "string", "example": "2024-03-15"},
                "estimate_minutes": {"type": "integer"},
                "is_completed": {"type": "boolean"},
                "matches": {"type": "array", "items": {"$ref": "#/definitions/http.matchResp"}},
                "priority": {"type": "string"},
                "projects": {"type": "array", "items": {"type": "string"}},
                "recurrence_rule": {"type": "string", "example": "FREQ=WEEKLY;INTERVAL=2"},
                "scheduled_date": {"type": "string", "example": "2024-03-14"},
                "status": {"type": "string"},
                "suggestions": {"type": "array", "items": {"type": "string"}},
                "tags": {"type": "array", "items": {"type": "string"}},
                "title": {"type": "string"}
            }
        },
        "model.PriorityConfig": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "label": {"type": "string"},
                "value": {"type": "string"},
                "weight": {"type": "integer"}
            }
        },
        "model.StatusConfig": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "is_completed": {"type": "boolean"},
                "label": {"type": "string"},
                "value": {"type": "string"}
            }
        },
        "response.Resp": {
            "type": "object",
            "properties": {
                "data": {},
                "error_code": {"type": "integer"},
                "errors": {},
                "message": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Task Parser API",
	Description:      "Turns one free-text line into a structured task in 13 languages.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
