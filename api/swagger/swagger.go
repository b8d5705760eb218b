package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Calendar Optimizer API",
        "description": "Priority-driven schedule optimization for calendar events",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Events", "description": "Calendar event management"},
        {"name": "Scheduling", "description": "Optimization, conflicts and free slots"},
        {"name": "Export", "description": "Schedule downloads"},
        {"name": "Chat", "description": "Natural-language event suggestions"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "A backing service is unreachable"}
                }
            }
        },
        "/api/v1/events": {
            "get": {
                "tags": ["Events"],
                "summary": "List events",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Events"],
                "summary": "Create event",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateEventRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/events/{id}": {
            "delete": {
                "tags": ["Events"],
                "summary": "Delete event",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/events/clear": {
            "post": {
                "tags": ["Events"],
                "summary": "Remove all events",
                "responses": {
                    "204": {"description": "Cleared"}
                }
            }
        },
        "/api/v1/optimize": {
            "post": {
                "tags": ["Scheduling"],
                "summary": "Run a scheduling pass",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/conflicts": {
            "get": {
                "tags": ["Scheduling"],
                "summary": "List pairwise conflicts",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/slots": {
            "get": {
                "tags": ["Scheduling"],
                "summary": "List free start times for a duration",
                "parameters": [
                    {"name": "duration", "in": "query", "required": true, "type": "integer"},
                    {"name": "earliestStart", "in": "query", "type": "string", "format": "date-time"},
                    {"name": "latestStart", "in": "query", "type": "string", "format": "date-time"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/schedule/summary": {
            "get": {
                "tags": ["Scheduling"],
                "summary": "Human-readable schedule overview",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/schedule/export": {
            "get": {
                "tags": ["Export"],
                "summary": "Download the schedule",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "Document bytes"},
                    "400": {"description": "Unsupported format", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/chat": {
            "post": {
                "tags": ["Chat"],
                "summary": "Suggest an event from a natural-language message",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ChatRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "CreateEventRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "duration": {"type": "integer", "description": "Minutes"},
                "priority": {"type": "integer", "description": "1 (highest) to 3"},
                "type": {"type": "string", "enum": ["flexible", "fixed", "mandatory"]},
                "description": {"type": "string"},
                "location": {"type": "string"},
                "dayOfWeek": {"type": "integer", "description": "0 = Sunday through 6 = Saturday"},
                "fixedTime": {"type": "string", "description": "Wall-clock time such as 09:00 or 2:30 PM"},
                "earliestStart": {"type": "string", "format": "date-time"},
                "latestStart": {"type": "string", "format": "date-time"}
            },
            "required": ["title", "duration"]
        },
        "ChatRequest": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            },
            "required": ["message"]
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
