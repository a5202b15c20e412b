// Package docs holds the swagger document served at /swagger/*any.
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
        "/api/v1/chat": {
            "post": {
                "description": "Route a message to the best specialist and return its reply",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Chat"],
                "summary": "Chat",
                "parameters": [
                    {
                        "description": "Chat request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/chatReq"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/chatResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorResp"}},
                    "429": {"description": "Too Many Requests"},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errorResp"}}
                }
            }
        },
        "/api/v1/agents": {
            "get": {
                "description": "List the specialists the router can dispatch to",
                "produces": ["application/json"],
                "tags": ["Agents"],
                "summary": "List agents",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/conversations/recent": {
            "get": {
                "description": "Summaries of a user's most recent sessions",
                "produces": ["application/json"],
                "tags": ["Conversations"],
                "summary": "Recent chats",
                "parameters": [
                    {"type": "string", "description": "User ID", "name": "userId", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/api/v1/conversations/{sessionId}": {
            "get": {
                "description": "Full transcript of a session owned by the user",
                "produces": ["application/json"],
                "tags": ["Conversations"],
                "summary": "Transcript",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "sessionId", "in": "path", "required": true},
                    {"type": "string", "description": "User ID", "name": "userId", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"}
                }
            },
            "delete": {
                "description": "Delete a session owned by the user",
                "produces": ["application/json"],
                "tags": ["Conversations"],
                "summary": "Delete session",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "sessionId", "in": "path", "required": true},
                    {"type": "string", "description": "User ID", "name": "userId", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Report service health and the specialists it can route to",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/live": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "definitions": {
        "chatReq": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "userId": {"type": "string"},
                "sessionId": {"type": "string"},
                "agentType": {"type": "string"}
            }
        },
        "chatResp": {
            "type": "object",
            "properties": {
                "response": {"type": "string"},
                "agent": {"type": "string"},
                "sessionId": {"type": "string"},
                "timestamp": {"type": "string"},
                "source": {"type": "string"},
                "routingReason": {"type": "string"}
            }
        },
        "errorResp": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
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
	Title:            "Specialist Router API",
	Description:      "Routes chat messages to health, appointment, community, document and knowledge specialists.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
