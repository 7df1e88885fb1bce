// Package docs registers the OpenAPI description served at /api/swagger.
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
        "/users": {
            "post": {"tags": ["users"], "summary": "Register user", "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/service.RegisterInput"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/TokenResponse"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}}}
        },
        "/auth": {
            "get": {"tags": ["auth"], "summary": "Current user", "security": [{"ApiKeyAuth": []}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.User"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}}},
            "post": {"tags": ["auth"], "summary": "Authenticate user", "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/service.LoginInput"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/TokenResponse"}}, "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}}}
        },
        "/profile": {
            "get": {"tags": ["profile"], "summary": "List profiles", "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Profile"}}}}},
            "post": {"tags": ["profile"], "summary": "Create profile", "security": [{"ApiKeyAuth": []}], "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/service.ProfileInput"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Profile"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}}},
            "put": {"tags": ["profile"], "summary": "Update profile", "security": [{"ApiKeyAuth": []}], "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/service.ProfileInput"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Profile"}}}},
            "delete": {"tags": ["profile"], "summary": "Delete profile, posts and user", "security": [{"ApiKeyAuth": []}], "responses": {"200": {"description": "OK"}}}
        },
        "/profile/me": {
            "get": {"tags": ["profile"], "summary": "Caller's profile", "security": [{"ApiKeyAuth": []}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Profile"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}}}
        },
        "/profile/user/{user_id}": {
            "get": {"tags": ["profile"], "summary": "Profile by user id", "parameters": [{"in": "path", "name": "user_id", "type": "integer", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Profile"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}}}
        },
        "/profile/experience": {
            "put": {"tags": ["profile"], "summary": "Add experience", "security": [{"ApiKeyAuth": []}], "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/service.ExperienceInput"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Profile"}}}}
        },
        "/profile/experience/{exp_id}": {
            "put": {"tags": ["profile"], "summary": "Edit experience", "security": [{"ApiKeyAuth": []}], "parameters": [{"in": "path", "name": "exp_id", "type": "string", "required": true}, {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/service.ExperienceInput"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Profile"}}}},
            "delete": {"tags": ["profile"], "summary": "Remove experience", "security": [{"ApiKeyAuth": []}], "parameters": [{"in": "path", "name": "exp_id", "type": "string", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Profile"}}}}
        },
        "/profile/education": {
            "put": {"tags": ["profile"], "summary": "Add education", "security": [{"ApiKeyAuth": []}], "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/service.EducationInput"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Profile"}}}}
        },
        "/profile/education/{edu_id}": {
            "put": {"tags": ["profile"], "summary": "Edit education", "security": [{"ApiKeyAuth": []}], "parameters": [{"in": "path", "name": "edu_id", "type": "string", "required": true}, {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/service.EducationInput"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Profile"}}}},
            "delete": {"tags": ["profile"], "summary": "Remove education", "security": [{"ApiKeyAuth": []}], "parameters": [{"in": "path", "name": "edu_id", "type": "string", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Profile"}}}}
        },
        "/profile/github/{username}": {
            "get": {"tags": ["profile"], "summary": "Latest GitHub repositories", "parameters": [{"in": "path", "name": "username", "type": "string", "required": true}], "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"type": "object"}}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}}}
        },
        "/posts": {
            "get": {"tags": ["posts"], "summary": "List posts", "security": [{"ApiKeyAuth": []}], "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Post"}}}}},
            "post": {"tags": ["posts"], "summary": "Create post", "security": [{"ApiKeyAuth": []}], "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/service.PostInput"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Post"}}}}
        },
        "/posts/{id}": {
            "get": {"tags": ["posts"], "summary": "Post by id", "security": [{"ApiKeyAuth": []}], "parameters": [{"in": "path", "name": "id", "type": "integer", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Post"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}}},
            "put": {"tags": ["posts"], "summary": "Edit post text", "security": [{"ApiKeyAuth": []}], "parameters": [{"in": "path", "name": "id", "type": "integer", "required": true}, {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/service.PostInput"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Post"}}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}}},
            "delete": {"tags": ["posts"], "summary": "Delete post", "security": [{"ApiKeyAuth": []}], "parameters": [{"in": "path", "name": "id", "type": "integer", "required": true}], "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}}}
        },
        "/posts/{id}/like": {
            "put": {"tags": ["posts"], "summary": "Like post", "security": [{"ApiKeyAuth": []}], "parameters": [{"in": "path", "name": "id", "type": "integer", "required": true}], "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Like"}}}}}
        },
        "/posts/{id}/unlike": {
            "put": {"tags": ["posts"], "summary": "Unlike post", "security": [{"ApiKeyAuth": []}], "parameters": [{"in": "path", "name": "id", "type": "integer", "required": true}], "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Like"}}}}}
        },
        "/posts/{id}/comment": {
            "post": {"tags": ["posts"], "summary": "Comment on post", "security": [{"ApiKeyAuth": []}], "parameters": [{"in": "path", "name": "id", "type": "integer", "required": true}, {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/service.CommentInput"}}], "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Comment"}}}}}
        },
        "/posts/{id}/comment/{comment_id}": {
            "put": {"tags": ["posts"], "summary": "Edit comment", "security": [{"ApiKeyAuth": []}], "parameters": [{"in": "path", "name": "id", "type": "integer", "required": true}, {"in": "path", "name": "comment_id", "type": "string", "required": true}, {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/service.CommentInput"}}], "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Comment"}}}}},
            "delete": {"tags": ["posts"], "summary": "Remove comment", "security": [{"ApiKeyAuth": []}], "parameters": [{"in": "path", "name": "id", "type": "integer", "required": true}, {"in": "path", "name": "comment_id", "type": "string", "required": true}], "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Comment"}}}}}
        }
    },
    "definitions": {
        "TokenResponse": {"type": "object", "properties": {"token": {"type": "string"}}},
        "models.FieldError": {"type": "object", "properties": {"msg": {"type": "string"}, "param": {"type": "string"}}},
        "models.ErrorResponse": {"type": "object", "properties": {"code": {"type": "string"}, "msg": {"type": "string"}, "errors": {"type": "array", "items": {"$ref": "#/definitions/models.FieldError"}}}},
        "models.User": {"type": "object", "properties": {"_id": {"type": "integer"}, "name": {"type": "string"}, "email": {"type": "string"}, "avatar": {"type": "string"}, "date": {"type": "string"}}},
        "models.UserSummary": {"type": "object", "properties": {"_id": {"type": "integer"}, "name": {"type": "string"}, "avatar": {"type": "string"}}},
        "models.Social": {"type": "object", "properties": {"youtube": {"type": "string"}, "twitter": {"type": "string"}, "facebook": {"type": "string"}, "linkedin": {"type": "string"}, "instagram": {"type": "string"}}},
        "models.Experience": {"type": "object", "properties": {"_id": {"type": "string"}, "title": {"type": "string"}, "company": {"type": "string"}, "location": {"type": "string"}, "from": {"type": "string"}, "to": {"type": "string"}, "current": {"type": "boolean"}, "description": {"type": "string"}}},
        "models.Education": {"type": "object", "properties": {"_id": {"type": "string"}, "school": {"type": "string"}, "degree": {"type": "string"}, "fieldofstudy": {"type": "string"}, "from": {"type": "string"}, "to": {"type": "string"}, "current": {"type": "boolean"}, "description": {"type": "string"}}},
        "models.Profile": {"type": "object", "properties": {"_id": {"type": "integer"}, "user": {"$ref": "#/definitions/models.UserSummary"}, "company": {"type": "string"}, "website": {"type": "string"}, "location": {"type": "string"}, "status": {"type": "string"}, "skills": {"type": "array", "items": {"type": "string"}}, "bio": {"type": "string"}, "githubusername": {"type": "string"}, "social": {"$ref": "#/definitions/models.Social"}, "experience": {"type": "array", "items": {"$ref": "#/definitions/models.Experience"}}, "education": {"type": "array", "items": {"$ref": "#/definitions/models.Education"}}, "date": {"type": "string"}}},
        "models.Like": {"type": "object", "properties": {"_id": {"type": "string"}, "user": {"type": "integer"}}},
        "models.Comment": {"type": "object", "properties": {"_id": {"type": "string"}, "user": {"type": "integer"}, "text": {"type": "string"}, "name": {"type": "string"}, "avatar": {"type": "string"}, "date": {"type": "string"}}},
        "models.Post": {"type": "object", "properties": {"_id": {"type": "integer"}, "user": {"type": "integer"}, "text": {"type": "string"}, "name": {"type": "string"}, "avatar": {"type": "string"}, "likes": {"type": "array", "items": {"$ref": "#/definitions/models.Like"}}, "comments": {"type": "array", "items": {"$ref": "#/definitions/models.Comment"}}, "date": {"type": "string"}}},
        "service.RegisterInput": {"type": "object", "required": ["name", "email", "password"], "properties": {"name": {"type": "string"}, "email": {"type": "string"}, "password": {"type": "string"}}},
        "service.LoginInput": {"type": "object", "required": ["email", "password"], "properties": {"email": {"type": "string"}, "password": {"type": "string"}}},
        "service.ProfileInput": {"type": "object", "required": ["status", "skills"], "properties": {"company": {"type": "string"}, "website": {"type": "string"}, "location": {"type": "string"}, "status": {"type": "string"}, "skills": {"type": "string", "description": "comma separated, or an array of strings"}, "bio": {"type": "string"}, "githubusername": {"type": "string"}, "youtube": {"type": "string"}, "twitter": {"type": "string"}, "facebook": {"type": "string"}, "linkedin": {"type": "string"}, "instagram": {"type": "string"}}},
        "service.ExperienceInput": {"type": "object", "required": ["title", "company", "from"], "properties": {"title": {"type": "string"}, "company": {"type": "string"}, "location": {"type": "string"}, "from": {"type": "string"}, "to": {"type": "string"}, "current": {"type": "boolean"}, "description": {"type": "string"}}},
        "service.EducationInput": {"type": "object", "required": ["school", "degree", "fieldofstudy", "from"], "properties": {"school": {"type": "string"}, "degree": {"type": "string"}, "fieldofstudy": {"type": "string"}, "from": {"type": "string"}, "to": {"type": "string"}, "current": {"type": "boolean"}, "description": {"type": "string"}}},
        "service.PostInput": {"type": "object", "required": ["text"], "properties": {"text": {"type": "string"}}},
        "service.CommentInput": {"type": "object", "required": ["text"], "properties": {"text": {"type": "string"}}}
    },
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "x-auth-token", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "DevConnector API",
	Description:      "Developer profiles, posts, likes and comments.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
