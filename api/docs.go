// Package api holds the Swagger documentation served at /docs.
//
// Regenerate with "go generate" in the repository root.
package api

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "description": "Entrypoint for the API, listing all endpoints",
                "tags": ["General"],
                "summary": "API root",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/healthz": {
            "get": {
                "description": "Returns the application health and, if not healthy, an error",
                "tags": ["General"],
                "summary": "Get health",
                "responses": {"204": {"description": "No Content"}, "500": {"description": "Internal Server Error"}}
            }
        },
        "/v1/transactions": {
            "get": {
                "description": "Returns transactions, optionally filtered by type, category, time range and search text",
                "tags": ["Transactions"],
                "summary": "Get transactions",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            },
            "post": {
                "description": "Records an income or expense",
                "tags": ["Transactions"],
                "summary": "Create transaction",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/v1/transfers": {
            "post": {
                "description": "Moves money between cash and digital balances",
                "tags": ["Transfers"],
                "summary": "Create transfer",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/v1/debts": {
            "get": {
                "description": "Returns all debts",
                "tags": ["Debts"],
                "summary": "Get debts",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "description": "Records a debt",
                "tags": ["Debts"],
                "summary": "Create debt",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/v1/budget-targets": {
            "get": {
                "description": "Returns all budget targets",
                "tags": ["Budget Targets"],
                "summary": "Get budget targets",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "description": "Creates a spending limit for a category",
                "tags": ["Budget Targets"],
                "summary": "Create budget target",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/v1/balances": {
            "get": {
                "description": "Returns the cash, digital and total balances",
                "tags": ["Reports"],
                "summary": "Get balances",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/v1/summaries/{kind}": {
            "get": {
                "description": "Returns the daily, weekly, monthly or yearly summary containing the reference date",
                "tags": ["Reports"],
                "summary": "Get summary",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/v1/budget-status": {
            "get": {
                "description": "Evaluates all budget targets for the period containing the reference date",
                "tags": ["Reports"],
                "summary": "Get budget status",
                "responses": {"200": {"description": "OK"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
