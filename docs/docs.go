// Package docs registers the OpenAPI document of the villa API with swag.
// Regenerate with: swag init -g cmd/api/main.go
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
        "/api/VillaApi": {
            "get": {
                "produces": ["application/json"],
                "tags": ["VillaApi"],
                "summary": "List villas",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/envelope.Response"}}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["VillaApi"],
                "summary": "Create a villa",
                "parameters": [{"description": "Villa", "name": "villa", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.VillaCreateDTO"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/envelope.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/envelope.Response"}}
                }
            }
        },
        "/api/VillaApi/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["VillaApi"],
                "summary": "Get a villa",
                "parameters": [{"type": "integer", "description": "Villa ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/envelope.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/envelope.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/envelope.Response"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["VillaApi"],
                "summary": "Replace a villa",
                "parameters": [
                    {"type": "integer", "description": "Villa ID", "name": "id", "in": "path", "required": true},
                    {"description": "Villa", "name": "villa", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.VillaUpdateDTO"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/envelope.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/envelope.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/envelope.Response"}}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "tags": ["VillaApi"],
                "summary": "Patch a villa with an RFC 6902 document",
                "parameters": [
                    {"type": "integer", "description": "Villa ID", "name": "id", "in": "path", "required": true},
                    {"description": "JSON Patch", "name": "patch", "in": "body", "required": true, "schema": {"type": "string"}}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/envelope.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/envelope.Response"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["VillaApi"],
                "summary": "Delete a villa",
                "parameters": [{"type": "integer", "description": "Villa ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/envelope.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/envelope.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/envelope.Response"}}
                }
            }
        },
        "/api/VillaApi/{id}/image": {
            "get": {
                "tags": ["VillaApi"],
                "summary": "Redirect to a time-limited download link for the villa image",
                "parameters": [{"type": "integer", "description": "Villa ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "307": {"description": "Temporary Redirect"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/envelope.Response"}}
                }
            },
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["VillaApi"],
                "summary": "Upload the villa image (multipart/form-data, field name: file)",
                "parameters": [
                    {"type": "integer", "description": "Villa ID", "name": "id", "in": "path", "required": true},
                    {"type": "file", "description": "Image", "name": "file", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/envelope.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/envelope.Response"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/envelope.Response"}}
                }
            }
        },
        "/api/VillaNumberApi": {
            "get": {
                "produces": ["application/json"],
                "tags": ["VillaNumberApi"],
                "summary": "List villa numbers with their villas",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/envelope.Response"}}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["VillaNumberApi"],
                "summary": "Create a villa number",
                "parameters": [{"description": "Villa number", "name": "villaNumber", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.VillaNumberCreateDTO"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/envelope.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/envelope.Response"}}
                }
            }
        },
        "/api/VillaNumberApi/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["VillaNumberApi"],
                "summary": "Get a villa number",
                "parameters": [{"type": "integer", "description": "Villa number", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/envelope.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/envelope.Response"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["VillaNumberApi"],
                "summary": "Replace a villa number",
                "parameters": [
                    {"type": "integer", "description": "Villa number", "name": "id", "in": "path", "required": true},
                    {"description": "Villa number", "name": "villaNumber", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.VillaNumberUpdateDTO"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/envelope.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/envelope.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/envelope.Response"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["VillaNumberApi"],
                "summary": "Delete a villa number",
                "parameters": [{"type": "integer", "description": "Villa number", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/envelope.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/envelope.Response"}}
                }
            }
        }
    },
    "definitions": {
        "envelope.Response": {
            "type": "object",
            "properties": {
                "statusCode": {"type": "integer"},
                "isSuccess": {"type": "boolean"},
                "errorMessages": {"type": "array", "items": {"type": "string"}},
                "result": {}
            }
        },
        "model.VillaCreateDTO": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string", "maxLength": 30},
                "details": {"type": "string"},
                "rate": {"type": "number", "minimum": 0},
                "sqft": {"type": "integer", "minimum": 0},
                "occupancy": {"type": "integer", "minimum": 0},
                "imageUrl": {"type": "string"},
                "amenity": {"type": "string"}
            }
        },
        "model.VillaUpdateDTO": {
            "type": "object",
            "required": ["id", "name"],
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string", "maxLength": 30},
                "details": {"type": "string"},
                "rate": {"type": "number", "minimum": 0},
                "sqft": {"type": "integer", "minimum": 0},
                "occupancy": {"type": "integer", "minimum": 0},
                "imageUrl": {"type": "string"},
                "amenity": {"type": "string"}
            }
        },
        "model.VillaNumberCreateDTO": {
            "type": "object",
            "required": ["villaNo", "villaID"],
            "properties": {
                "villaNo": {"type": "integer"},
                "villaID": {"type": "integer"},
                "specialDetails": {"type": "string"}
            }
        },
        "model.VillaNumberUpdateDTO": {
            "type": "object",
            "required": ["villaNo", "villaID"],
            "properties": {
                "villaNo": {"type": "integer"},
                "villaID": {"type": "integer"},
                "specialDetails": {"type": "string"}
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
	Title:            "Magic Villa API",
	Description:      "Villas and villa numbers behind a uniform response envelope.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
