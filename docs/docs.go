// Package docs registers the OpenAPI document served at /swagger/*any.
// Regenerate with: swag init -g cmd/api/main.go -o docs
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
		"/companies": {
			"get": {
				"description": "Returns every company as {code, name}.",
				"produces": [
					"application/json"
				],
				"tags": [
					"Companies"
				],
				"summary": "List companies",
				"operationId": "listCompanies",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handlers.ListCompaniesResponse"
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			},
			"post": {
				"description": "Inserts the company exactly as submitted and echoes it back.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Companies"
				],
				"summary": "Create a company",
				"operationId": "createCompany",
				"parameters": [
					{
						"type": "string",
						"description": "Replay-safe key (<=200 chars)",
						"name": "Idempotency-Key",
						"in": "header"
					},
					{
						"description": "Company",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.CreateCompanyRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/handlers.CompanyResponse"
						}
					},
					"400": {
						"description": "Body missing",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"413": {
						"description": "Body too large",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/companies/{code}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Companies"
				],
				"summary": "Get a company",
				"operationId": "getCompany",
				"parameters": [
					{
						"type": "string",
						"example": "apple",
						"description": "Company code",
						"name": "code",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handlers.CompanyResponse"
						}
					},
					"404": {
						"description": "Company not found",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			},
			"put": {
				"description": "Replaces name and description. Absent fields are written as null.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Companies"
				],
				"summary": "Update a company",
				"operationId": "updateCompany",
				"parameters": [
					{
						"type": "string",
						"example": "apple",
						"description": "Company code",
						"name": "code",
						"in": "path",
						"required": true
					},
					{
						"description": "New values",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.UpdateCompanyRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handlers.CompanyResponse"
						}
					},
					"400": {
						"description": "Body missing",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"413": {
						"description": "Body too large",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"404": {
						"description": "Company not found",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			},
			"delete": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Companies"
				],
				"summary": "Delete a company",
				"operationId": "deleteCompany",
				"parameters": [
					{
						"type": "string",
						"example": "apple",
						"description": "Company code",
						"name": "code",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handlers.StatusResponse"
						}
					},
					"404": {
						"description": "Company not found",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal error (e.g. company still has invoices)",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/invoices": {
			"get": {
				"description": "Returns every invoice as {id, comp_code}.",
				"produces": [
					"application/json"
				],
				"tags": [
					"Invoices"
				],
				"summary": "List invoices",
				"operationId": "listInvoices",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handlers.ListInvoicesResponse"
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			},
			"post": {
				"description": "Inserts an unpaid invoice for comp_code.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Invoices"
				],
				"summary": "Create an invoice",
				"operationId": "createInvoice",
				"parameters": [
					{
						"type": "string",
						"description": "Replay-safe key (<=200 chars)",
						"name": "Idempotency-Key",
						"in": "header"
					},
					{
						"description": "Invoice",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.CreateInvoiceRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/handlers.InvoiceResponse"
						}
					},
					"400": {
						"description": "Body missing",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"413": {
						"description": "Body too large",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal error (e.g. unknown company)",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		},
		"/invoices/{id}": {
			"get": {
				"description": "Returns the invoice with its company embedded (null when the company no longer exists).",
				"produces": [
					"application/json"
				],
				"tags": [
					"Invoices"
				],
				"summary": "Get an invoice",
				"operationId": "getInvoice",
				"parameters": [
					{
						"type": "integer",
						"example": 1,
						"description": "Invoice ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handlers.InvoiceDetailResponse"
						}
					},
					"404": {
						"description": "Invoice not found",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			},
			"put": {
				"description": "Changes amt only; paid state is never touched.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Invoices"
				],
				"summary": "Update an invoice amount",
				"operationId": "updateInvoice",
				"parameters": [
					{
						"type": "integer",
						"example": 1,
						"description": "Invoice ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "New amount",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/handlers.UpdateInvoiceRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handlers.InvoiceResponse"
						}
					},
					"400": {
						"description": "Body missing",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"413": {
						"description": "Body too large",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"404": {
						"description": "Invoice not found",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			},
			"delete": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Invoices"
				],
				"summary": "Delete an invoice",
				"operationId": "deleteInvoice",
				"parameters": [
					{
						"type": "integer",
						"example": 1,
						"description": "Invoice ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handlers.StatusResponse"
						}
					},
					"404": {
						"description": "Invoice not found",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal error",
						"schema": {
							"$ref": "#/definitions/handlers.ErrorResponse"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"handlers.CreateCompanyRequest": {
			"type": "object",
			"properties": {
				"code": {
					"type": "string",
					"example": "apple"
				},
				"name": {
					"type": "string",
					"example": "Apple Computer"
				},
				"description": {
					"type": "string",
					"example": "Maker of OSX."
				}
			}
		},
		"handlers.UpdateCompanyRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string",
					"example": "Apple Inc"
				},
				"description": {
					"type": "string",
					"example": "Maker of iPhones."
				}
			}
		},
		"handlers.CreateInvoiceRequest": {
			"type": "object",
			"properties": {
				"comp_code": {
					"type": "string",
					"example": "apple"
				},
				"amt": {
					"type": "string",
					"example": "350.00"
				}
			}
		},
		"handlers.UpdateInvoiceRequest": {
			"type": "object",
			"properties": {
				"amt": {
					"type": "string",
					"example": "450.00"
				}
			}
		},
		"handlers.CompanySummary": {
			"type": "object",
			"properties": {
				"code": {
					"type": "string",
					"example": "apple"
				},
				"name": {
					"type": "string",
					"example": "Apple Computer"
				}
			}
		},
		"handlers.Company": {
			"type": "object",
			"properties": {
				"code": {
					"type": "string",
					"example": "apple"
				},
				"name": {
					"type": "string",
					"example": "Apple Computer"
				},
				"description": {
					"type": "string",
					"example": "Maker of OSX."
				}
			}
		},
		"handlers.InvoiceSummary": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer",
					"example": 1
				},
				"comp_code": {
					"type": "string",
					"example": "apple"
				}
			}
		},
		"handlers.Invoice": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer",
					"example": 1
				},
				"comp_code": {
					"type": "string",
					"example": "apple"
				},
				"amt": {
					"type": "string",
					"example": "350.00"
				},
				"paid": {
					"type": "boolean",
					"example": false
				},
				"add_date": {
					"type": "string"
				},
				"paid_date": {
					"type": "string"
				}
			}
		},
		"handlers.InvoiceDetail": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer",
					"example": 1
				},
				"comp_code": {
					"type": "string",
					"example": "apple"
				},
				"amt": {
					"type": "string",
					"example": "350.00"
				},
				"paid": {
					"type": "boolean",
					"example": false
				},
				"add_date": {
					"type": "string"
				},
				"paid_date": {
					"type": "string"
				},
				"company": {
					"$ref": "#/definitions/handlers.Company"
				}
			}
		},
		"handlers.ListCompaniesResponse": {
			"type": "object",
			"properties": {
				"companies": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/handlers.CompanySummary"
					}
				}
			}
		},
		"handlers.CompanyResponse": {
			"type": "object",
			"properties": {
				"company": {
					"$ref": "#/definitions/handlers.Company"
				}
			}
		},
		"handlers.ListInvoicesResponse": {
			"type": "object",
			"properties": {
				"invoices": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/handlers.InvoiceSummary"
					}
				}
			}
		},
		"handlers.InvoiceResponse": {
			"type": "object",
			"properties": {
				"invoice": {
					"$ref": "#/definitions/handlers.Invoice"
				}
			}
		},
		"handlers.InvoiceDetailResponse": {
			"type": "object",
			"properties": {
				"invoice": {
					"$ref": "#/definitions/handlers.InvoiceDetail"
				}
			}
		},
		"handlers.ErrorBody": {
			"type": "object",
			"properties": {
				"status": {
					"type": "integer",
					"example": 404
				},
				"code": {
					"type": "string",
					"example": "not_found"
				},
				"message": {
					"type": "string",
					"example": "company not found"
				},
				"request_id": {
					"type": "string",
					"example": "123e4567-e89b-12d3-a456-426614174000"
				}
			}
		},
		"handlers.ErrorResponse": {
			"type": "object",
			"properties": {
				"error": {
					"$ref": "#/definitions/handlers.ErrorBody"
				}
			}
		},
		"handlers.StatusResponse": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string",
					"example": "deleted"
				}
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
	Title:            "BizTime API",
	Description:      "CRUD over companies and their invoices.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
