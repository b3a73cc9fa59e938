// Package docs holds the Swagger 2.0 document served under /swagger. It is maintained by hand in the
// layout swaggo/swag emits, so keep it in step with the handler annotations when routes change.
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
        "/health": {"get": {"tags": ["health"], "summary": "Readiness probe", "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}}},
        "/api/v1/leads": {
            "get": {"tags": ["leads"], "summary": "List leads", "produces": ["application/json"], "parameters": [
                {"type": "string", "name": "search", "in": "query"},
                {"type": "string", "name": "status", "in": "query"},
                {"type": "string", "name": "category", "in": "query"},
                {"type": "string", "name": "addedBy", "in": "query"},
                {"type": "string", "name": "sort", "in": "query"},
                {"type": "string", "name": "order", "in": "query"},
                {"type": "integer", "name": "limit", "in": "query"},
                {"type": "integer", "name": "offset", "in": "query"}
            ], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["leads"], "summary": "Create a lead", "consumes": ["application/json"], "produces": ["application/json"], "parameters": [{"name": "lead", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.Lead"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/model.Lead"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorPayload"}}}}
        },
        "/api/v1/leads/daily": {"get": {"tags": ["leads"], "summary": "Leads added per day and sales rep", "parameters": [{"type": "integer", "name": "days", "in": "query"}, {"type": "string", "name": "rep", "in": "query"}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/leads/fresh": {"get": {"tags": ["leads"], "summary": "Leads whose website was first seen on the given day", "parameters": [{"type": "string", "name": "date", "in": "query"}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/leads/{id}": {
            "get": {"tags": ["leads"], "summary": "Get a lead", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Lead"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}}}},
            "patch": {"tags": ["leads"], "summary": "Update lead fields", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}, {"name": "changes", "in": "body", "required": true, "schema": {"type": "object"}}], "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["leads"], "summary": "Delete a lead", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}}}
        },
        "/api/v1/deals": {
            "get": {"tags": ["deals"], "summary": "List deals", "parameters": [{"type": "string", "name": "stage", "in": "query"}, {"type": "string", "name": "salesRepId", "in": "query"}, {"type": "string", "name": "leadId", "in": "query"}, {"type": "integer", "name": "limit", "in": "query"}, {"type": "integer", "name": "offset", "in": "query"}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["deals"], "summary": "Create a deal", "consumes": ["application/json"], "produces": ["application/json"], "parameters": [{"name": "deal", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.Deal"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/model.Deal"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}}}}
        },
        "/api/v1/deals/pipeline": {"get": {"tags": ["deals"], "summary": "Deal count and value per pipeline stage", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Pipeline"}}}}},
        "/api/v1/deals/{id}": {
            "get": {"tags": ["deals"], "summary": "Get a deal", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Deal"}}}},
            "patch": {"tags": ["deals"], "summary": "Update deal fields", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["deals"], "summary": "Delete a deal", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}}}
        },
        "/api/v1/deals/{id}/stage": {"patch": {"tags": ["deals"], "summary": "Move a deal to another pipeline stage", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/contacts": {
            "get": {"tags": ["contacts"], "summary": "List contacts", "parameters": [{"type": "string", "name": "search", "in": "query"}, {"type": "string", "name": "leadId", "in": "query"}, {"type": "integer", "name": "limit", "in": "query"}, {"type": "integer", "name": "offset", "in": "query"}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["contacts"], "summary": "Create a contact", "parameters": [{"name": "contact", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.Contact"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/model.Contact"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}}}}
        },
        "/api/v1/contacts/{id}": {
            "get": {"tags": ["contacts"], "summary": "Get a contact", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Contact"}}}},
            "patch": {"tags": ["contacts"], "summary": "Update contact fields", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["contacts"], "summary": "Delete a contact", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}}}
        },
        "/api/v1/sales-reps": {
            "get": {"tags": ["sales-reps"], "summary": "List sales reps", "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.SalesRep"}}}}},
            "post": {"tags": ["sales-reps"], "summary": "Create a sales rep", "parameters": [{"name": "rep", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.SalesRep"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/model.SalesRep"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}}}}
        },
        "/api/v1/sales-reps/leaderboard": {"get": {"tags": ["sales-reps"], "summary": "Top sales reps by a metric", "parameters": [{"type": "string", "name": "metric", "in": "query"}, {"type": "integer", "name": "limit", "in": "query"}], "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.LeaderboardEntry"}}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}}}}},
        "/api/v1/sales-reps/{id}": {
            "get": {"tags": ["sales-reps"], "summary": "Get a sales rep", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "patch": {"tags": ["sales-reps"], "summary": "Update sales rep fields", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["sales-reps"], "summary": "Delete a sales rep", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}}}
        },
        "/api/v1/team": {
            "get": {"tags": ["team"], "summary": "List team members", "parameters": [{"type": "string", "name": "role", "in": "query"}, {"type": "string", "name": "status", "in": "query"}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["team"], "summary": "Invite a team member", "responses": {"201": {"description": "Created"}}}
        },
        "/api/v1/team/stats": {"get": {"tags": ["team"], "summary": "Member counts by role and status", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/team/{id}": {
            "get": {"tags": ["team"], "summary": "Get a team member", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "patch": {"tags": ["team"], "summary": "Update team member fields", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["team"], "summary": "Remove a team member", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}}}
        },
        "/api/v1/team/{id}/activate": {"post": {"tags": ["team"], "summary": "Activate a team member", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/team/{id}/deactivate": {"post": {"tags": ["team"], "summary": "Deactivate a team member", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/website-activity": {
            "get": {"tags": ["website-activity"], "summary": "Activity records of one website, oldest first", "parameters": [{"type": "string", "name": "url", "in": "query", "required": true}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["website-activity"], "summary": "Record that a website was added", "responses": {"201": {"description": "Created"}}}
        },
        "/api/v1/website-activity/check": {"get": {"tags": ["website-activity"], "summary": "Whether a website was first seen on the given day", "parameters": [{"type": "string", "name": "url", "in": "query", "required": true}, {"type": "string", "name": "date", "in": "query"}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/website-activity/fresh": {"get": {"tags": ["website-activity"], "summary": "Websites first seen on the given day", "parameters": [{"type": "string", "name": "date", "in": "query"}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/analytics/overview": {"get": {"tags": ["analytics"], "summary": "Headline CRM numbers", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/analytics/leads/status": {"get": {"tags": ["analytics"], "summary": "Lead counts per status", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/analytics/leads/category": {"get": {"tags": ["analytics"], "summary": "Lead counts per category", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/analytics/leads/trend": {"get": {"tags": ["analytics"], "summary": "Leads created per day, oldest first", "parameters": [{"type": "integer", "name": "days", "in": "query"}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/reports": {
            "get": {"tags": ["reports"], "summary": "List archived reports, newest first", "parameters": [{"type": "string", "name": "kind", "in": "query"}, {"type": "integer", "name": "limit", "in": "query"}, {"type": "integer", "name": "offset", "in": "query"}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["reports"], "summary": "Render a report to CSV and archive it", "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/model.Report"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}}}}
        },
        "/api/v1/reports/{id}": {
            "get": {"tags": ["reports"], "summary": "Get report metadata", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Report"}}}},
            "delete": {"tags": ["reports"], "summary": "Delete a report and its CSV", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}}}
        },
        "/api/v1/reports/{id}/download": {"get": {"tags": ["reports"], "summary": "Download the report CSV", "produces": ["text/csv"], "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/reports/{id}/url": {"get": {"tags": ["reports"], "summary": "Presigned download URL for a report", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}}
    },
    "definitions": {
        "handler.errorEnvelope": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "handler.errorPayload": {
            "type": "object",
            "properties": {
                "request_id": {"type": "string"},
                "error": {"$ref": "#/definitions/handler.errorEnvelope"}
            }
        },
        "model.Contact": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "company": {"type": "string"},
                "position": {"type": "string"},
                "leadId": {"type": "string"},
                "notes": {"type": "string"},
                "tags": {"type": "array", "items": {"type": "string"}},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "model.Deal": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "leadId": {"type": "string"},
                "leadName": {"type": "string"},
                "value": {"type": "number"},
                "stage": {"type": "string"},
                "salesRepId": {"type": "string"},
                "salesRepName": {"type": "string"},
                "edition": {"type": "string"},
                "startMonth": {"type": "integer"},
                "endMonth": {"type": "integer"},
                "expectedCloseDate": {"type": "string", "format": "date"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "model.LeaderboardEntry": {
            "type": "object",
            "properties": {
                "rank": {"type": "integer"},
                "salesRepId": {"type": "string"},
                "name": {"type": "string"},
                "score": {"type": "number"},
                "leadsContacted": {"type": "integer"},
                "meetingsBooked": {"type": "integer"},
                "dealsClosed": {"type": "integer"},
                "totalRevenue": {"type": "number"},
                "conversionRate": {"type": "number"},
                "targetProgress": {"type": "number"}
            }
        },
        "model.Lead": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "websiteUrl": {"type": "string"},
                "teamSize": {"type": "string"},
                "arr": {"type": "number"},
                "category": {"type": "string"},
                "linkedinUrl": {"type": "string"},
                "status": {"type": "string"},
                "fundingType": {"type": "string"},
                "edition": {"type": "string"},
                "followUpDate": {"type": "string", "format": "date"},
                "addedBy": {"type": "string"},
                "addedByName": {"type": "string"},
                "notes": {"type": "string"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "model.Pipeline": {
            "type": "object",
            "properties": {
                "stages": {"type": "array", "items": {"$ref": "#/definitions/model.StageSummary"}},
                "totalDeals": {"type": "integer"},
                "totalValue": {"type": "number"},
                "openValue": {"type": "number"},
                "wonValue": {"type": "number"},
                "winRate": {"type": "number"}
            }
        },
        "model.Report": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "kind": {"type": "string"},
                "title": {"type": "string"},
                "storage_path": {"type": "string"},
                "size": {"type": "integer"},
                "content_type": {"type": "string"},
                "row_count": {"type": "integer"},
                "created_at": {"type": "string"}
            }
        },
        "model.SalesRep": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "leadsContacted": {"type": "integer"},
                "meetingsBooked": {"type": "integer"},
                "dealsClosed": {"type": "integer"},
                "totalRevenue": {"type": "number"},
                "target": {"type": "number"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "model.StageSummary": {
            "type": "object",
            "properties": {
                "stage": {"type": "string"},
                "count": {"type": "integer"},
                "value": {"type": "number"}
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
	Title:            "CRM API",
	Description:      "Leads, deals, contacts, sales reps, team members and reports over a hosted record store.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
