// Package docs registers the OpenAPI document served at /docs/*.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Login",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Invalid email or password"},
                    "403": {"description": "Account is deactivated"}
                }
            }
        },
        "/api/auth/me": {
            "get": {
                "tags": ["auth"],
                "summary": "Current user",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/api/content/{type}": {
            "get": {
                "tags": ["content"],
                "summary": "List content documents",
                "produces": ["application/json"],
                "parameters": [
                    {"name": "type", "in": "path", "required": true, "type": "string"},
                    {"name": "all", "in": "query", "type": "boolean", "description": "Include inactive documents (admin only)"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["content"],
                "summary": "Create a content document",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"name": "type", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Validation error"},
                    "401": {"description": "Unauthorized"},
                    "403": {"description": "Admin access required"}
                }
            },
            "put": {
                "tags": ["content"],
                "summary": "Update a content document",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"name": "type", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            },
            "delete": {
                "tags": ["content"],
                "summary": "Delete a content document",
                "produces": ["application/json"],
                "parameters": [
                    {"name": "type", "in": "path", "required": true, "type": "string"},
                    {"name": "id", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/api/audit-logs": {
            "get": {
                "tags": ["audit"],
                "summary": "List audit log entries",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Admin access required"}}
            }
        },
        "/api/upload": {
            "post": {
                "tags": ["upload"],
                "summary": "Upload a file",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/api/health": {
            "get": {
                "tags": ["health"],
                "summary": "Liveness check",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Mediation Portal API",
	Description:      "Content and admin API for the mediation services website",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
