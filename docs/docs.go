// Package docs holds the Swagger document served under /api-docs.
//
//	@title			Job Board API
//	@version		1.0.0
//	@description	Job postings and user accounts.
//	@BasePath		/
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
    "consumes": ["application/json"],
    "produces": ["application/json"],
    "paths": {
        "/api/jobs": {
            "get": {
                "tags": ["jobs"],
                "summary": "List job postings",
                "operationId": "listJobs",
                "responses": {
                    "200": {
                        "description": "Postings, newest first",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/JobResponse"}}
                    },
                    "500": {"description": "Internal error", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "post": {
                "tags": ["jobs"],
                "summary": "Create a job posting",
                "operationId": "createJob",
                "parameters": [
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/JobRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/JobResponse"}},
                    "400": {"description": "Invalid posting", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/api/jobs/{jobId}": {
            "get": {
                "tags": ["jobs"],
                "summary": "Get a job posting",
                "operationId": "getJob",
                "parameters": [
                    {"in": "path", "name": "jobId", "required": true, "type": "string", "format": "uuid"}
                ],
                "responses": {
                    "200": {"description": "Posting", "schema": {"$ref": "#/definitions/JobResponse"}},
                    "400": {"description": "Malformed id", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "404": {"description": "No such posting", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "put": {
                "tags": ["jobs"],
                "summary": "Replace a job posting",
                "operationId": "updateJob",
                "parameters": [
                    {"in": "path", "name": "jobId", "required": true, "type": "string", "format": "uuid"},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/JobRequest"}}
                ],
                "responses": {
                    "200": {"description": "Updated", "schema": {"$ref": "#/definitions/JobResponse"}},
                    "400": {"description": "Invalid posting", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "404": {"description": "No such posting", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["jobs"],
                "summary": "Delete a job posting",
                "operationId": "deleteJob",
                "parameters": [
                    {"in": "path", "name": "jobId", "required": true, "type": "string", "format": "uuid"}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"description": "No such posting", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/api/users/signup": {
            "post": {
                "tags": ["users"],
                "summary": "Register an account",
                "operationId": "signup",
                "parameters": [
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/SignupRequest"}}
                ],
                "responses": {
                    "201": {"description": "Registered", "schema": {"$ref": "#/definitions/AuthResponse"}},
                    "400": {"description": "Invalid account data", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "409": {"description": "Username taken", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/api/users/login": {
            "post": {
                "tags": ["users"],
                "summary": "Log in",
                "operationId": "login",
                "parameters": [
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "Logged in", "schema": {"$ref": "#/definitions/AuthResponse"}},
                    "400": {"description": "Missing credentials", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "401": {"description": "Wrong username or password", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "Company": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string"},
                "contactEmail": {"type": "string"},
                "contactPhone": {"type": "string"}
            }
        },
        "JobRequest": {
            "type": "object",
            "required": ["title", "type", "company"],
            "properties": {
                "title": {"type": "string"},
                "type": {"type": "string", "enum": ["Full-Time", "Part-Time", "Remote", "Internship", "Contract"]},
                "description": {"type": "string"},
                "company": {"$ref": "#/definitions/Company"},
                "location": {"type": "string"},
                "salary": {"type": "integer", "minimum": 0},
                "applicationDeadline": {"type": "string", "format": "date-time"}
            }
        },
        "JobResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "format": "uuid"},
                "title": {"type": "string"},
                "type": {"type": "string"},
                "description": {"type": "string"},
                "company": {"$ref": "#/definitions/Company"},
                "location": {"type": "string"},
                "salary": {"type": "integer"},
                "status": {"type": "string", "enum": ["open", "closed"]},
                "postedDate": {"type": "string", "format": "date-time"},
                "applicationDeadline": {"type": "string", "format": "date-time"}
            }
        },
        "SignupRequest": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {
                "username": {"type": "string", "maxLength": 64},
                "password": {"type": "string", "maxLength": 72},
                "name": {"type": "string"},
                "phoneNumber": {"type": "string"},
                "gender": {"type": "string"},
                "dateOfBirth": {"type": "string", "format": "date"},
                "membershipStatus": {"type": "string"},
                "address": {"type": "string"}
            }
        },
        "LoginRequest": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "AuthResponse": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "token": {"type": "string"}
            }
        },
        "ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Job Board API",
	Description:      "Job postings and user accounts.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
