// Package swagger registers the OpenAPI document served under /swagger/.
// Paths and definitions mirror the swag annotations on the handlers.
package swagger

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
		"/api/listings/search": {
			"post": {
				"description": "Expands each term into case variants, searches the catalog and joins suppliers, sites and delivery locations within the acting user's business units",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"listings"
				],
				"summary": "Search product listings",
				"parameters": [
					{
						"description": "Search terms",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/SearchListingsRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.Listing"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/ErrorResponse"
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"$ref": "#/definitions/ErrorResponse"
						}
					},
					"502": {
						"description": "Bad Gateway",
						"schema": {
							"$ref": "#/definitions/ErrorResponse"
						}
					}
				}
			}
		},
		"/api/suppliers/{supplierPartyId}": {
			"get": {
				"description": "Returns the supplier's record, addresses, reachable contacts and the sites in the acting user's business units, optionally narrowed to one business unit",
				"produces": [
					"application/json"
				],
				"tags": [
					"suppliers"
				],
				"summary": "Get supplier",
				"parameters": [
					{
						"type": "integer",
						"description": "Supplier party id",
						"name": "supplierPartyId",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"description": "Procurement business unit id",
						"name": "bu_id",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.SupplierDetail"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/ErrorResponse"
						}
					},
					"502": {
						"description": "Bad Gateway",
						"schema": {
							"$ref": "#/definitions/ErrorResponse"
						}
					}
				}
			}
		},
		"/api/suppliers/{supplierPartyId}/ratings": {
			"get": {
				"description": "Returns the rating count, the average rounded to two decimals and the most recent ratings",
				"produces": [
					"application/json"
				],
				"tags": [
					"ratings"
				],
				"summary": "Supplier ratings",
				"parameters": [
					{
						"type": "integer",
						"description": "Supplier party id",
						"name": "supplierPartyId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.RatingSummary"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/ErrorResponse"
						}
					}
				}
			},
			"post": {
				"description": "Records one rating per user and supplier",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"ratings"
				],
				"summary": "Rate supplier",
				"parameters": [
					{
						"type": "integer",
						"description": "Supplier party id",
						"name": "supplierPartyId",
						"in": "path",
						"required": true
					},
					{
						"description": "Rating",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/CreateRatingRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/CreateRatingResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/ErrorResponse"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/ErrorResponse"
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"$ref": "#/definitions/ErrorResponse"
						}
					}
				}
			}
		},
		"/api/requisitions": {
			"post": {
				"description": "Creates the requisition header, then its line. A rejected line leaves the header in place and is reported as partial_failure",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"requisitions"
				],
				"summary": "Submit requisition",
				"parameters": [
					{
						"type": "string",
						"description": "Client submission key",
						"name": "Idempotency-Key",
						"in": "header"
					},
					{
						"description": "Requisition",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/CreateRequisitionRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/RequisitionResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/ErrorResponse"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/ErrorResponse"
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"$ref": "#/definitions/ErrorResponse"
						}
					},
					"502": {
						"description": "Bad Gateway",
						"schema": {
							"$ref": "#/definitions/PartialFailureResponse"
						}
					}
				}
			}
		},
		"/api/requisitions/orphaned": {
			"get": {
				"description": "Lists headers left without a line, newest first",
				"produces": [
					"application/json"
				],
				"tags": [
					"requisitions"
				],
				"summary": "Orphaned requisitions",
				"parameters": [
					{
						"type": "integer",
						"description": "Page size (max 100)",
						"name": "limit",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Offset",
						"name": "offset",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/OrphanedRequisitionsResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/ErrorResponse"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"ErrorResponse": {
			"type": "object",
			"properties": {
				"error": {
					"type": "string",
					"example": "supplier not found: party id 300000047507499"
				}
			}
		},
		"SearchListingsRequest": {
			"type": "object",
			"required": [
				"product_query_terms"
			],
			"properties": {
				"product_query_terms": {
					"type": "array",
					"items": {
						"type": "string"
					},
					"example": [
						"brake pad"
					]
				},
				"limit": {
					"type": "integer",
					"maximum": 100,
					"minimum": 1,
					"example": 10
				}
			}
		},
		"CreateRatingRequest": {
			"type": "object",
			"required": [
				"score"
			],
			"properties": {
				"score": {
					"type": "integer",
					"maximum": 5,
					"minimum": 1,
					"example": 4
				},
				"comment": {
					"type": "string",
					"maxLength": 1000,
					"example": "Delivered on time"
				}
			}
		},
		"CreateRatingResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string",
					"example": "123e4567-e89b-12d3-a456-426614174000"
				},
				"supplier_party_id": {
					"type": "integer",
					"example": 300000047507499
				},
				"score": {
					"type": "integer",
					"example": 4
				},
				"comment": {
					"type": "string",
					"example": "Delivered on time"
				},
				"rated_by": {
					"type": "integer",
					"example": 300000047340498
				},
				"created_at": {
					"type": "string",
					"example": "2026-10-17T10:30:00Z"
				}
			}
		},
		"CreateRequisitionRequest": {
			"type": "object",
			"required": [
				"item_id",
				"quantity",
				"business_unit_id",
				"destination_organization_id",
				"deliver_to_location_id"
			],
			"properties": {
				"item_id": {
					"type": "integer",
					"example": 300000047520511
				},
				"quantity": {
					"type": "number",
					"example": 5
				},
				"business_unit_id": {
					"type": "integer",
					"example": 300000046987012
				},
				"destination_organization_id": {
					"type": "integer",
					"example": 300000047274444
				},
				"deliver_to_location_id": {
					"type": "integer",
					"example": 300000047274425
				},
				"requested_delivery_date": {
					"type": "string",
					"example": "2026-10-24"
				}
			}
		},
		"RequisitionResponse": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string",
					"example": "created"
				},
				"requisition_header_id": {
					"type": "integer",
					"example": 300000320128467
				},
				"requisition": {
					"type": "string",
					"example": "REQ-1042"
				},
				"line": {
					"$ref": "#/definitions/models.RequisitionLine"
				}
			}
		},
		"PartialFailureResponse": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string",
					"example": "partial_failure"
				},
				"error": {
					"type": "string",
					"example": "requisition header created but line creation failed"
				},
				"requisition_header_id": {
					"type": "integer",
					"example": 300000320128467
				},
				"backend_status": {
					"type": "integer",
					"example": 400
				},
				"detail": {}
			}
		},
		"OrphanedRequisitionsResponse": {
			"type": "object",
			"properties": {
				"items": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.OrphanedRequisition"
					}
				},
				"total": {
					"type": "integer",
					"example": 3
				},
				"limit": {
					"type": "integer",
					"example": 50
				},
				"offset": {
					"type": "integer",
					"example": 0
				}
			}
		},
		"models.RequisitionLine": {
			"type": "object",
			"properties": {
				"RequisitionLineId": {
					"type": "integer"
				},
				"LineNumber": {
					"type": "integer"
				},
				"ItemId": {
					"type": "integer"
				},
				"Quantity": {
					"type": "number"
				},
				"UOM": {
					"type": "string"
				},
				"DestinationOrganizationId": {
					"type": "integer"
				},
				"DeliverToLocationId": {
					"type": "integer"
				},
				"RequestedDeliveryDate": {
					"type": "string"
				}
			}
		},
		"models.OrphanedRequisition": {
			"type": "object",
			"properties": {
				"event_id": {
					"type": "string"
				},
				"requisition_header_id": {
					"type": "integer"
				},
				"item_id": {
					"type": "integer"
				},
				"quantity": {
					"type": "number"
				},
				"business_unit_id": {
					"type": "integer"
				},
				"preparer_id": {
					"type": "integer"
				},
				"failure_status": {
					"type": "integer"
				},
				"failure_detail": {},
				"occurred_at": {
					"type": "string"
				},
				"recorded_at": {
					"type": "string"
				}
			}
		},
		"models.Listing": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string",
					"enum": [
						"ok",
						"no_results",
						"no_inventory_match"
					]
				},
				"terms": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"queries": {
					"type": "integer"
				},
				"items_matched": {
					"type": "integer"
				},
				"products": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.GroupedProduct"
					}
				}
			}
		},
		"models.GroupedProduct": {
			"type": "object",
			"properties": {
				"item_name": {
					"type": "string"
				},
				"item_id": {
					"type": "integer"
				},
				"description": {
					"type": "string"
				},
				"primary_uom": {
					"type": "string"
				},
				"item_class": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"purchasable": {
					"type": "boolean"
				},
				"organizations": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.ProductOrganization"
					}
				}
			}
		},
		"models.ProductOrganization": {
			"type": "object",
			"properties": {
				"organization_code": {
					"type": "string"
				},
				"organization_name": {
					"type": "string"
				},
				"procurement_bu_id": {
					"type": "integer"
				},
				"procurement_bu_name": {
					"type": "string"
				},
				"destination_organization_id": {
					"type": "integer"
				},
				"list_price": {
					"type": "number"
				},
				"suppliers": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.ProductSupplier"
					}
				}
			}
		},
		"models.ProductSupplier": {
			"type": "object",
			"properties": {
				"supplier_name": {
					"type": "string"
				},
				"supplier_party_id": {
					"type": "integer"
				},
				"sites": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.ProductSite"
					}
				}
			}
		},
		"models.ProductSite": {
			"type": "object",
			"properties": {
				"site_name": {
					"type": "string"
				},
				"business_unit": {
					"type": "string"
				},
				"site_purpose": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"delivery_locations": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.DeliveryLocation"
					}
				}
			}
		},
		"models.DeliveryLocation": {
			"type": "object",
			"properties": {
				"organization_id": {
					"type": "integer"
				},
				"organization_name": {
					"type": "string"
				},
				"deliver_to_location_id": {
					"type": "integer"
				}
			}
		},
		"models.SupplierDetail": {
			"type": "object",
			"properties": {
				"supplier_party_id": {
					"type": "integer"
				},
				"supplier_id": {
					"type": "integer"
				},
				"name": {
					"type": "string"
				},
				"supplier_number": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"business_relationship": {
					"type": "string"
				},
				"duns_number": {
					"type": "string"
				},
				"year_established": {
					"type": "integer"
				},
				"country": {
					"type": "string"
				},
				"annual_revenue": {
					"type": "number"
				},
				"filtered_by_business_unit": {
					"type": "integer"
				},
				"addresses": {
					"type": "array",
					"items": {
						"type": "object",
						"properties": {
							"name": {
								"type": "string"
							},
							"lines": {
								"type": "array",
								"items": {
									"type": "string"
								}
							}
						}
					}
				},
				"contacts": {
					"type": "array",
					"items": {
						"type": "object",
						"properties": {
							"name": {
								"type": "string"
							},
							"job_title": {
								"type": "string"
							},
							"email": {
								"type": "string"
							},
							"phone": {
								"type": "string"
							}
						}
					}
				},
				"sites": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.DetailSite"
					}
				}
			}
		},
		"models.DetailSite": {
			"type": "object",
			"properties": {
				"site_name": {
					"type": "string"
				},
				"business_unit": {
					"type": "string"
				},
				"business_unit_id": {
					"type": "integer"
				},
				"purposes": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"status": {
					"type": "string"
				},
				"destination_organizations": {
					"type": "array",
					"items": {
						"type": "object",
						"properties": {
							"organization_id": {
								"type": "integer"
							},
							"organization_name": {
								"type": "string"
							},
							"organization_code": {
								"type": "string"
							},
							"deliver_to_location_id": {
								"type": "integer"
							}
						}
					}
				}
			}
		},
		"models.RatingSummary": {
			"type": "object",
			"properties": {
				"supplier_party_id": {
					"type": "integer"
				},
				"count": {
					"type": "integer"
				},
				"average": {
					"type": "number"
				},
				"recent": {
					"type": "array",
					"items": {
						"type": "object",
						"properties": {
							"score": {
								"type": "integer"
							},
							"comment": {
								"type": "string"
							},
							"rated_by": {
								"type": "integer"
							},
							"created_at": {
								"type": "string"
							}
						}
					}
				}
			}
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Fusion Procurement API",
	Description:      "Product listings, supplier profiles and purchase requisitions over an Oracle Fusion backend.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
