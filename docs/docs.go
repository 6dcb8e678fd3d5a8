// Package docs registra la spec OpenAPI que sirve /swagger/*.
// Mantenida a mano (el layout de rutas es chico y estable); el formato
// es el mismo que genera swag init.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/redpandas": {
            "get": {
                "produces": ["application/json"],
                "tags": ["redpandas"],
                "summary": "Grilla de individuos",
                "parameters": [
                    {"type": "string", "name": "q", "in": "query", "description": "Búsqueda libre"},
                    {"type": "integer", "name": "page", "in": "query", "description": "Página (zero-based)"},
                    {"type": "integer", "name": "size", "in": "query", "description": "Tamaño de página (default 12)"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/redpandas/{name}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["redpandas"],
                "summary": "Detalle de un individuo",
                "parameters": [
                    {"type": "string", "name": "name", "in": "path", "required": true},
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "size", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/pandas/{filename}": {
            "get": {
                "tags": ["assets"],
                "summary": "Redirect a la foto en el bucket",
                "parameters": [
                    {"type": "string", "name": "filename", "in": "path", "required": true}
                ],
                "responses": {"302": {"description": "Found"}}
            }
        },
        "/posts": {
            "get": {
                "produces": ["application/json"],
                "tags": ["posts"],
                "summary": "Listar posts del diario",
                "parameters": [
                    {"type": "string", "name": "pandaName", "in": "query", "description": "Filtro por nombre exacto"},
                    {"type": "string", "name": "q", "in": "query", "description": "Búsqueda por substring"},
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "size", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["posts"],
                "summary": "Crear post del diario",
                "parameters": [
                    {"type": "string", "name": "panda_name", "in": "formData", "required": true},
                    {"type": "string", "name": "comment", "in": "formData", "required": true},
                    {"type": "file", "name": "image", "in": "formData", "required": true}
                ],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/posts/new": {
            "get": {
                "produces": ["application/json"],
                "tags": ["posts"],
                "summary": "Datos para el form de nuevo post",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/health": {
            "get": {
                "tags": ["ops"],
                "summary": "Health check",
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
	Title:            "redpanda-site API",
	Description:      "Catálogo de レッサーパンダ del parque + diario de visitantes.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
