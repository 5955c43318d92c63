// Package docs registers the swagger specification served at /swagger.
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
        "/api/sheets": {
            "get": {"tags": ["sheets"], "summary": "List sheets", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["sheets"], "summary": "Create sheet (becomes active)", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/api/sheets/{id}": {
            "put": {"tags": ["sheets"], "summary": "Rename sheet", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["sheets"], "summary": "Delete sheet (last sheet refused)", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}
        },
        "/api/sheets/{id}/activate": {
            "put": {"tags": ["sheets"], "summary": "Activate sheet", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/api/sheets/{id}/entries": {
            "get": {"tags": ["sheets"], "summary": "Chronological ledger view with running balances", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/api/sheets/{id}/summary": {
            "get": {"tags": ["sheets"], "summary": "Sheet totals", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/api/sheets/{id}/export": {
            "get": {"tags": ["impexp"], "summary": "Export sheet as CSV", "produces": ["text/csv"], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/api/sheets/{id}/import": {
            "post": {"tags": ["impexp"], "summary": "Import CSV (overwrite or append)", "consumes": ["multipart/form-data"], "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}, {"name": "mode", "in": "query", "required": true, "type": "string"}, {"name": "file", "in": "formData", "required": true, "type": "file"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}
        },
        "/api/entries": {
            "post": {"tags": ["entries"], "summary": "Add entry to the active sheet", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/api/entries/{id}": {
            "put": {"tags": ["entries"], "summary": "Edit entry", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["entries"], "summary": "Delete entry (undoable)", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/api/entries/undo": {
            "post": {"tags": ["entries"], "summary": "Restore last deleted entry", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/api/schedules": {
            "get": {"tags": ["schedules"], "summary": "List events", "parameters": [{"name": "date", "in": "query", "type": "string"}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["schedules"], "summary": "Create event (validated)", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/api/schedules/defaults": {
            "get": {"tags": ["schedules"], "summary": "Derived default times for a date", "parameters": [{"name": "date", "in": "query", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/api/schedules/{id}": {
            "put": {"tags": ["schedules"], "summary": "Edit event (start change resets end)", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["schedules"], "summary": "Delete event (undoable)", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/api/schedules/date/{date}": {
            "put": {"tags": ["schedules"], "summary": "Confirm a date's events as a batch", "parameters": [{"name": "date", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}},
            "delete": {"tags": ["schedules"], "summary": "Delete a date's events (undoable)", "parameters": [{"name": "date", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/api/schedules/undo": {
            "post": {"tags": ["schedules"], "summary": "Restore last schedule deletion", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/api/members": {
            "get": {"tags": ["members"], "summary": "List members", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["members"], "summary": "Create member", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/api/members/{id}": {
            "put": {"tags": ["members"], "summary": "Update member", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["members"], "summary": "Delete member", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/api/notes": {
            "get": {"tags": ["notes"], "summary": "List notes", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["notes"], "summary": "Create note", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/api/notes/{id}": {
            "put": {"tags": ["notes"], "summary": "Update note", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["notes"], "summary": "Delete note", "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/api/settings": {
            "get": {"tags": ["settings"], "summary": "Get workspace titles", "responses": {"200": {"description": "OK"}}},
            "put": {"tags": ["settings"], "summary": "Update workspace titles", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/api/upload": {
            "post": {"tags": ["glue"], "summary": "Upload file", "consumes": ["multipart/form-data"], "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/api/shorten": {
            "post": {"tags": ["glue"], "summary": "Shorten URL", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/s/{code}": {
            "get": {"tags": ["glue"], "summary": "Resolve short link", "parameters": [{"name": "code", "in": "path", "required": true, "type": "string"}], "responses": {"302": {"description": "Found"}, "404": {"description": "Not Found"}}}
        },
        "/api/sms": {
            "post": {"tags": ["glue"], "summary": "Relay SMS to the configured gateway", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "502": {"description": "Bad Gateway"}, "503": {"description": "Service Unavailable"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Workdesk API",
	Description:      "Workspace backend: ledger sheets, schedules, member roster, notes.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
