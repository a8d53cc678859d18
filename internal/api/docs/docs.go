// Package docs registers the console server's OpenAPI document with swag.
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
        "/console/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Log in as super-admin",
                "parameters": [
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.sessionResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/api.errorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/console/logout": {
            "post": {
                "tags": ["session"],
                "summary": "Log out",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/console/session": {
            "get": {
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Current session",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.sessionResponse"}}}
            }
        },
        "/console/dashboard": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Dashboard statistics",
                "responses": {
                    "200": {"description": "OK"},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/console/tenants": {
            "get": {"tags": ["tenants"], "summary": "Tenants screen", "responses": {"200": {"description": "OK"}}},
            "post": {
                "tags": ["tenants"],
                "summary": "Create tenant",
                "parameters": [
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/domain.CreateTenantInput"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/console/tenants/search": {
            "put": {"tags": ["tenants"], "summary": "Type into the tenant search box", "responses": {"202": {"description": "Accepted"}}}
        },
        "/console/tenants/table": {
            "post": {"tags": ["tenants"], "summary": "Page or sort the tenant table", "responses": {"200": {"description": "OK"}}}
        },
        "/console/tenants/{id}": {
            "patch": {
                "tags": ["tenants"],
                "summary": "Rename tenant",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            },
            "delete": {
                "tags": ["tenants"],
                "summary": "Delete tenant",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/console/tenants/{id}/status": {
            "patch": {
                "tags": ["tenants"],
                "summary": "Set tenant status",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/console/users": {
            "get": {"tags": ["users"], "summary": "Users screen", "responses": {"200": {"description": "OK"}}},
            "post": {
                "tags": ["users"],
                "summary": "Create user",
                "parameters": [
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/domain.CreateUserInput"}}
                ],
                "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}
            }
        },
        "/console/users/all": {
            "get": {"tags": ["users"], "summary": "All users", "responses": {"200": {"description": "OK"}}}
        },
        "/console/users/search": {
            "put": {"tags": ["users"], "summary": "Type into the user search box", "responses": {"202": {"description": "Accepted"}}}
        },
        "/console/users/table": {
            "post": {"tags": ["users"], "summary": "Page or sort the user table", "responses": {"200": {"description": "OK"}}}
        },
        "/console/users/{id}": {
            "patch": {
                "tags": ["users"],
                "summary": "Update user",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/console/recipes/import": {
            "post": {
                "consumes": ["multipart/form-data", "application/json"],
                "produces": ["application/json"],
                "tags": ["recipes"],
                "summary": "Batch import recipes",
                "parameters": [
                    {"type": "file", "name": "file", "in": "formData"},
                    {"type": "string", "name": "tenantIds", "in": "formData"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.ImportReport"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.errorResponse"}}
                }
            }
        },
        "/console/recipes/imports": {
            "get": {
                "produces": ["application/json"],
                "tags": ["recipes"],
                "summary": "Import history",
                "parameters": [{"type": "integer", "default": 20, "name": "limit", "in": "query"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.ImportReport"}}}
                }
            }
        }
    },
    "definitions": {
        "api.errorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "details": {"type": "array", "items": {"type": "string"}}
            }
        },
        "handler.loginRequest": {
            "type": "object",
            "required": ["phone", "password"],
            "properties": {
                "phone": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "handler.sessionResponse": {
            "type": "object",
            "properties": {
                "authenticated": {"type": "boolean"},
                "expiresAt": {"type": "string"},
                "user": {"$ref": "#/definitions/domain.CurrentUser"}
            }
        },
        "domain.CurrentUser": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "identifier": {"type": "string"},
                "name": {"type": "string"},
                "role": {"type": "string"}
            }
        },
        "domain.CreateTenantInput": {
            "type": "object",
            "required": ["name", "ownerId"],
            "properties": {
                "name": {"type": "string"},
                "ownerId": {"type": "string"}
            }
        },
        "domain.CreateUserInput": {
            "type": "object",
            "required": ["name", "phone", "password"],
            "properties": {
                "name": {"type": "string"},
                "phone": {"type": "string"},
                "password": {"type": "string", "minLength": 6}
            }
        },
        "domain.ImportReport": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "recipeCount": {"type": "integer"},
                "totalImported": {"type": "integer"},
                "totalSkipped": {"type": "integer"},
                "skippedLog": {"type": "array", "items": {"type": "string"}},
                "startedAt": {"type": "string"},
                "finishedAt": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Bakery Super-Admin Console API",
	Description:      "Session, tenant, user and recipe import endpoints behind the super-admin console.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
