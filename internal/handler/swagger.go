package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers the OpenAPI description of the API.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(r gin.IRouter) {
	r.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	r.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>Arquivos Maverick API</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "Gangue da Maverick API", "version": "v1.0.0" },
  "components": {
    "schemas": {
      "Member": { "type": "object", "properties": {
        "id": {"type":"string"}, "name": {"type":"string"}, "nickname": {"type":"string"},
        "classification": {"type":"string"}, "description": {"type":"string"},
        "characteristics": {"type":"array","items":{"type":"string"}},
        "current_status": {"type":"string"}, "role": {"type":"string"},
        "photo_url": {"type":"string","nullable":true}, "created_at": {"type":"string","format":"date-time"} } },
      "MemberCreate": { "type": "object",
        "required": ["name","nickname","classification","description","characteristics","current_status","role"],
        "properties": {
        "name": {"type":"string"}, "nickname": {"type":"string"}, "classification": {"type":"string"},
        "description": {"type":"string"}, "characteristics": {"type":"array","items":{"type":"string"}},
        "current_status": {"type":"string"}, "role": {"type":"string"}, "photo_url": {"type":"string","nullable":true} } },
      "MemberUpdate": { "type": "object", "properties": {
        "name": {"type":"string"}, "nickname": {"type":"string"}, "classification": {"type":"string"},
        "description": {"type":"string"}, "characteristics": {"type":"array","items":{"type":"string"}},
        "current_status": {"type":"string"}, "role": {"type":"string"}, "photo_url": {"type":"string"} } },
      "Comment": { "type": "object", "properties": {
        "id": {"type":"string"}, "member_id": {"type":"string"}, "author_name": {"type":"string"},
        "text": {"type":"string"}, "timestamp": {"type":"string","format":"date-time"} } },
      "CommentCreate": { "type": "object", "required": ["member_id","author_name","text"], "properties": {
        "member_id": {"type":"string"}, "author_name": {"type":"string"}, "text": {"type":"string"} } },
      "Quote": { "type": "object", "properties": {
        "id": {"type":"string"}, "member_id": {"type":"string","nullable":true}, "text": {"type":"string"},
        "context": {"type":"string","nullable":true}, "created_at": {"type":"string","format":"date-time"} } },
      "QuoteCreate": { "type": "object", "required": ["text"], "properties": {
        "member_id": {"type":"string","nullable":true}, "text": {"type":"string"}, "context": {"type":"string","nullable":true} } },
      "Photo": { "type": "object", "properties": {
        "id": {"type":"string"}, "url": {"type":"string"}, "caption": {"type":"string","nullable":true},
        "member_ids": {"type":"array","items":{"type":"string"}}, "timestamp": {"type":"string","format":"date-time"} } },
      "PhotoCreate": { "type": "object", "required": ["url"], "properties": {
        "url": {"type":"string"}, "caption": {"type":"string","nullable":true},
        "member_ids": {"type":"array","items":{"type":"string"}} } },
      "Message": { "type": "object", "properties": { "message": {"type":"string"} } }
    }
  },
  "paths": {
    "/api/": { "get": { "summary": "Service banner", "responses": { "200": { "description": "banner" } } } },
    "/api/members": {
      "get": { "summary": "List members (max 1000)", "responses": { "200": { "description": "members" } } },
      "post": { "summary": "Create member", "requestBody": { "content": { "application/json": { "schema": {"$ref":"#/components/schemas/MemberCreate"} } } },
        "responses": { "200": { "description": "created member" }, "422": { "description": "validation error" } } }
    },
    "/api/members/{id}": {
      "get": { "summary": "Get member", "responses": { "200": { "description": "member" }, "404": { "description": "Member not found" } } },
      "put": { "summary": "Partially update member", "requestBody": { "content": { "application/json": { "schema": {"$ref":"#/components/schemas/MemberUpdate"} } } },
        "responses": { "200": { "description": "updated member" }, "400": { "description": "No fields to update" }, "404": { "description": "Member not found" } } },
      "delete": { "summary": "Delete member", "responses": { "200": { "description": "Member deleted successfully" }, "404": { "description": "Member not found" } } }
    },
    "/api/comments": {
      "post": { "summary": "Create comment", "requestBody": { "content": { "application/json": { "schema": {"$ref":"#/components/schemas/CommentCreate"} } } },
        "responses": { "200": { "description": "created comment" }, "422": { "description": "validation error" } } }
    },
    "/api/comments/{member_id}": { "get": { "summary": "List a member's comments, newest first", "responses": { "200": { "description": "comments" } } } },
    "/api/quotes": {
      "get": { "summary": "List quotes, newest first", "responses": { "200": { "description": "quotes" } } },
      "post": { "summary": "Create quote", "requestBody": { "content": { "application/json": { "schema": {"$ref":"#/components/schemas/QuoteCreate"} } } },
        "responses": { "200": { "description": "created quote" }, "422": { "description": "validation error" } } }
    },
    "/api/quotes/{id}": { "delete": { "summary": "Delete quote", "responses": { "200": { "description": "Quote deleted successfully" }, "404": { "description": "Quote not found" } } } },
    "/api/photos": {
      "get": { "summary": "List photos, newest first", "responses": { "200": { "description": "photos" } } },
      "post": { "summary": "Create photo", "requestBody": { "content": { "application/json": { "schema": {"$ref":"#/components/schemas/PhotoCreate"} } } },
        "responses": { "200": { "description": "created photo" }, "422": { "description": "validation error" } } }
    },
    "/api/photos/{id}": { "delete": { "summary": "Delete photo", "responses": { "200": { "description": "Photo deleted successfully" }, "404": { "description": "Photo not found" } } } },
    "/api/uploads": { "post": { "summary": "Upload a photo file (when object storage is configured)", "responses": { "200": { "description": "url of the stored file" }, "400": { "description": "missing file" }, "413": { "description": "file too large" } } } },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
