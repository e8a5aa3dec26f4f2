// Animerec - Content-Based Anime Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

// Package docs registers the OpenAPI document served at /swagger/doc.json.
//
// Regenerate from the handler annotations with:
//
//	swag init -g cmd/server/docs.go -o docs --parseInternal
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "GitHub Repository",
            "url": "https://github.com/tomtom215/animerec/issues"
        },
        "license": {
            "name": "AGPL-3.0-or-later",
            "url": "https://www.gnu.org/licenses/agpl-3.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health/live": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Core"],
                "summary": "Kubernetes liveness probe",
                "responses": {
                    "200": {"description": "Service is alive", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/health/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Core"],
                "summary": "Kubernetes readiness probe",
                "responses": {
                    "200": {"description": "Service is ready", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "503": {"description": "Service is not ready", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/stats/performance": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Core"],
                "summary": "Recent request latency per endpoint",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/recommendations/similar": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Recommendations"],
                "summary": "Recommend items similar to a named item",
                "parameters": [
                    {"description": "Query", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.SimilarRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "400": {"description": "Invalid JSON, validation error or invalid filter", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "404": {"description": "Item not found", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "500": {"description": "Internal error", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/recommendations/similar/{name}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Recommendations"],
                "summary": "Recommend items similar to a named item (path form)",
                "parameters": [
                    {"type": "string", "description": "Exact item name", "name": "name", "in": "path", "required": true},
                    {"type": "integer", "default": 5, "description": "Maximum results", "name": "top_n", "in": "query"},
                    {"type": "string", "description": "CEL filter expression", "name": "filter", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/recommendations/genre": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Recommendations"],
                "summary": "Recommend items for free genre text",
                "parameters": [
                    {"description": "Query", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.GenreRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/items": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Catalog"],
                "summary": "Suggest item names by prefix",
                "parameters": [
                    {"type": "string", "description": "Name prefix", "name": "prefix", "in": "query"},
                    {"type": "integer", "default": 10, "description": "Maximum suggestions (max 100)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/items/{name}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Catalog"],
                "summary": "Fetch one catalog item",
                "parameters": [
                    {"type": "string", "description": "Exact item name", "name": "name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/index/status": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Catalog"],
                "summary": "Similarity index statistics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "models.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "ITEM_NOT_FOUND"},
                "message": {"type": "string"},
                "details": {"type": "object", "additionalProperties": true}
            }
        },
        "models.APIResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "success"},
                "data": {},
                "error": {"$ref": "#/definitions/models.APIError"},
                "metadata": {"$ref": "#/definitions/models.Metadata"}
            }
        },
        "models.Metadata": {
            "type": "object",
            "properties": {
                "timestamp": {"type": "string"},
                "query_time_ms": {"type": "integer"},
                "request_id": {"type": "string"}
            }
        },
        "models.SimilarRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string", "maxLength": 512, "example": "Naruto"},
                "top_n": {"type": "integer", "minimum": 1, "example": 5},
                "filter": {"type": "string", "maxLength": 1024, "example": "item.rating >= 8.0"}
            }
        },
        "models.GenreRequest": {
            "type": "object",
            "required": ["genre"],
            "properties": {
                "genre": {"type": "string", "maxLength": 1024, "example": "Action, Sci-Fi"},
                "top_n": {"type": "integer", "minimum": 1, "example": 5},
                "filter": {"type": "string", "maxLength": 1024}
            }
        },
        "models.Recommendation": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "genre": {"type": "string"},
                "rating": {"type": "number"},
                "score": {"type": "number"}
            }
        },
        "models.RecommendationList": {
            "type": "object",
            "properties": {
                "query": {"type": "string"},
                "mode": {"type": "string", "example": "similar"},
                "top_n": {"type": "integer"},
                "filter": {"type": "string"},
                "count": {"type": "integer"},
                "results": {"type": "array", "items": {"$ref": "#/definitions/models.Recommendation"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8000",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "Animerec API",
	Description:      "Content-based anime recommendations. Items are ranked by cosine similarity of tf-idf vectors built from their genre lists.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
