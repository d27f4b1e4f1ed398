// Package docs is generated by swaggo/swag. Regenerate with
// swag init -g cmd/tag/main.go
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
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Service Unavailable"}
                }
            }
        },
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log in",
                "parameters": [
                    {"description": "Credentials", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"},
                    "403": {"description": "Forbidden"},
                    "429": {"description": "Too Many Requests"}
                }
            }
        },
        "/auth/me": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Current user",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/interventions": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["interventions"],
                "summary": "List live interventions",
                "parameters": [
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"},
                    {"type": "string", "name": "search", "in": "query"},
                    {"type": "string", "description": "en_attente, repondu or termine", "name": "status", "in": "query"},
                    {"type": "string", "name": "commune", "in": "query"},
                    {"type": "string", "name": "theme", "in": "query"},
                    {"type": "string", "name": "dateDebut", "in": "query"},
                    {"type": "string", "name": "dateFin", "in": "query"},
                    {"type": "string", "name": "dateQuestionDebut", "in": "query"},
                    {"type": "string", "name": "dateQuestionFin", "in": "query"},
                    {"type": "string", "name": "sort", "in": "query"},
                    {"type": "string", "name": "order", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"Bearer": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["interventions"],
                "summary": "Create an intervention",
                "parameters": [
                    {"description": "Intervention", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/intervention.CreateInterventionRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"},
                    "403": {"description": "Forbidden"}
                }
            }
        },
        "/interventions/archives": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["interventions"],
                "summary": "List archived interventions",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/interventions/{id}": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["interventions"],
                "summary": "Get an intervention",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/interventions/{id}/reponse": {
            "put": {
                "security": [{"Bearer": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["interventions"],
                "summary": "Answer an intervention",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"description": "Answer", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/intervention.AnswerInterventionRequest"}}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/interventions/{id}/satisfaction": {
            "put": {
                "security": [{"Bearer": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["interventions"],
                "summary": "Rate an answered intervention",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"description": "Rating", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/intervention.RateInterventionRequest"}}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/interventions/{id}/pieces-jointes": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["attachments"],
                "summary": "List attachments",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"Bearer": []}],
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["attachments"],
                "summary": "Upload attachments",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"type": "file", "name": "files", "in": "formData", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "413": {"description": "Payload Too Large"}
                }
            }
        },
        "/pieces-jointes/{id}/download": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/octet-stream"],
                "tags": ["attachments"],
                "summary": "Download an attachment",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/pieces-jointes/{id}": {
            "delete": {
                "security": [{"Bearer": []}],
                "tags": ["attachments"],
                "summary": "Delete an attachment",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/users": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "List users",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"Bearer": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Create a user",
                "responses": {
                    "201": {"description": "Created"},
                    "409": {"description": "Conflict"}
                }
            }
        },
        "/users/{id}/actif": {
            "patch": {
                "security": [{"Bearer": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Enable or disable a user",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/communes": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["communes"],
                "summary": "List communes",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"Bearer": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["communes"],
                "summary": "Create a commune",
                "responses": {
                    "201": {"description": "Created"},
                    "409": {"description": "Conflict"}
                }
            }
        },
        "/communes/{id}/actif": {
            "patch": {
                "security": [{"Bearer": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["communes"],
                "summary": "Enable or disable a commune",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/themes": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["themes"],
                "summary": "List themes",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"Bearer": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["themes"],
                "summary": "Create a theme",
                "responses": {
                    "201": {"description": "Created"},
                    "409": {"description": "Conflict"}
                }
            }
        },
        "/themes/{id}/actif": {
            "patch": {
                "security": [{"Bearer": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["themes"],
                "summary": "Enable or disable a theme",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/archives": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["archives"],
                "summary": "List archive records",
                "parameters": [{"type": "string", "name": "table", "in": "query"}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/archives/{table}/{id}/status": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["archives"],
                "summary": "Archive status of an entity",
                "parameters": [
                    {"type": "string", "name": "table", "in": "path", "required": true},
                    {"type": "integer", "name": "id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/archives/{table}/{id}": {
            "post": {
                "security": [{"Bearer": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["archives"],
                "summary": "Archive an entity",
                "parameters": [
                    {"type": "string", "name": "table", "in": "path", "required": true},
                    {"type": "integer", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "409": {"description": "Conflict"}
                }
            }
        },
        "/archives/{table}/{id}/restore": {
            "post": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["archives"],
                "summary": "Restore an archived entity",
                "parameters": [
                    {"type": "string", "name": "table", "in": "path", "required": true},
                    {"type": "integer", "name": "id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "definitions": {
        "handlers.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "intervention.CreateInterventionRequest": {
            "type": "object",
            "required": ["titre", "description", "theme_id"],
            "properties": {
                "titre": {"type": "string", "maxLength": 255},
                "description": {"type": "string"},
                "urgent": {"type": "boolean"},
                "theme_id": {"type": "integer"}
            }
        },
        "intervention.AnswerInterventionRequest": {
            "type": "object",
            "required": ["reponse"],
            "properties": {
                "reponse": {"type": "string"},
                "notes": {"type": "string"}
            }
        },
        "intervention.RateInterventionRequest": {
            "type": "object",
            "required": ["satisfaction"],
            "properties": {
                "satisfaction": {"type": "integer", "minimum": 1, "maximum": 5}
            }
        }
    },
    "securityDefinitions": {
        "Bearer": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "TAG API",
	Description:      "Case management for municipal legal questions.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
