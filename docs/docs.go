// Package docs holds the Swagger 2.0 description served by the Swagger UI.
// It mirrors the swag annotations on the HTTP server handlers.
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
        "/": {
            "post": {
                "description": "Fulfills one agent turn. Always answers 200; failures are reported in fulfillmentText.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["webhook"],
                "summary": "Fulfill an NLU webhook call",
                "parameters": [
                    {
                        "description": "Agent request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/servers.WebhookRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/servers.WebhookResponse"}
                    }
                }
            }
        },
        "/api/v1/orders/{orderId}/status": {
            "get": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Get the tracking status of an order",
                "parameters": [
                    {
                        "type": "integer",
                        "format": "int64",
                        "description": "Order id",
                        "name": "orderId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/servers.OrderStatus"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/servers.Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/servers.Error"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/servers.Error"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "string"}}
                }
            }
        }
    },
    "definitions": {
        "servers.Error": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "message": {"type": "string"}
            }
        },
        "servers.Intent": {
            "type": "object",
            "properties": {
                "displayName": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "servers.OrderStatus": {
            "type": "object",
            "properties": {
                "orderId": {"type": "integer"},
                "status": {"type": "string"}
            }
        },
        "servers.OutputContext": {
            "type": "object",
            "properties": {
                "lifespanCount": {"type": "integer"},
                "name": {"type": "string"},
                "parameters": {"type": "object"}
            }
        },
        "servers.QueryResult": {
            "type": "object",
            "properties": {
                "intent": {"$ref": "#/definitions/servers.Intent"},
                "outputContexts": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/servers.OutputContext"}
                },
                "parameters": {"type": "object"},
                "queryText": {"type": "string"}
            }
        },
        "servers.WebhookRequest": {
            "type": "object",
            "properties": {
                "queryResult": {"$ref": "#/definitions/servers.QueryResult"},
                "responseId": {"type": "string"},
                "session": {"type": "string"}
            }
        },
        "servers.WebhookResponse": {
            "type": "object",
            "properties": {
                "fulfillmentText": {"type": "string"}
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
	Title:            "Order bot fulfillment API",
	Description:      "Webhook fulfillment for the food-ordering agent and order status lookup.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
