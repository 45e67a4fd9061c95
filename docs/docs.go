// Package docs holds the OpenAPI description served under /swagger.
// Regenerate with `swag init -g cmd/main.go` after changing handler annotations.
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
		"/health": {
			"get": {
				"tags": [
					"system"
				],
				"summary": "Health check",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/auth/sign-up": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Register a knowledge-base administrator",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/tjbuilding.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/tjbuilding.Response"
						}
					}
				},
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				]
			}
		},
		"/auth/sign-in": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Sign in and receive a bearer token",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/tjbuilding.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/tjbuilding.Response"
						}
					}
				},
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				]
			}
		},
		"/api/assistant/ask": {
			"post": {
				"tags": [
					"assistant"
				],
				"summary": "Ask the assistant",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/tjbuilding.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/tjbuilding.Response"
						}
					}
				},
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				]
			}
		},
		"/api/assistant/suggestions": {
			"get": {
				"tags": [
					"assistant"
				],
				"summary": "Suggested questions",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/tjbuilding.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/tjbuilding.Response"
						}
					}
				}
			}
		},
		"/api/assistant/knowledge": {
			"get": {
				"tags": [
					"assistant"
				],
				"summary": "List knowledge entries",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/tjbuilding.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/tjbuilding.Response"
						}
					}
				}
			},
			"post": {
				"tags": [
					"assistant"
				],
				"summary": "Add a knowledge entry",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/tjbuilding.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/tjbuilding.Response"
						}
					}
				},
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/assistant/knowledge/{id}": {
			"put": {
				"tags": [
					"assistant"
				],
				"summary": "Update a knowledge entry",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/tjbuilding.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/tjbuilding.Response"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"tags": [
					"assistant"
				],
				"summary": "Delete a knowledge entry",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/tjbuilding.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/tjbuilding.Response"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/statistics/floor": {
			"get": {
				"tags": [
					"statistics"
				],
				"summary": "Per-room statistics of a floor",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/tjbuilding.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/tjbuilding.Response"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "floor",
						"in": "query",
						"required": true
					},
					{
						"type": "integer",
						"name": "days",
						"in": "query",
						"required": false
					}
				]
			}
		},
		"/api/statistics/room": {
			"get": {
				"tags": [
					"statistics"
				],
				"summary": "Hour totals of one room",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/tjbuilding.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/tjbuilding.Response"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "room",
						"in": "query",
						"required": true
					},
					{
						"type": "integer",
						"name": "days",
						"in": "query",
						"required": false
					}
				]
			}
		},
		"/api/statistics/floors": {
			"get": {
				"tags": [
					"statistics"
				],
				"summary": "Floors with recorded rooms",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/tjbuilding.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/tjbuilding.Response"
						}
					}
				}
			}
		},
		"/api/statistics/rooms": {
			"get": {
				"tags": [
					"statistics"
				],
				"summary": "Rooms of a floor",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/tjbuilding.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/tjbuilding.Response"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "floor",
						"in": "query",
						"required": true
					}
				]
			}
		},
		"/api/v1/sessions": {
			"post": {
				"tags": [
					"floorplan"
				],
				"summary": "Open a floor-plan session",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/tjbuilding.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/tjbuilding.Response"
						}
					}
				},
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				]
			}
		},
		"/api/v1/sessions/{id}": {
			"delete": {
				"tags": [
					"floorplan"
				],
				"summary": "Close a floor-plan session",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/tjbuilding.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/tjbuilding.Response"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/api/v1/sessions/{id}/floor": {
			"get": {
				"tags": [
					"floorplan"
				],
				"summary": "Floor aggregate of a session",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/tjbuilding.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/tjbuilding.Response"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/api/v1/sessions/{id}/rooms/{room}": {
			"get": {
				"tags": [
					"floorplan"
				],
				"summary": "Room details of a session",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/tjbuilding.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/tjbuilding.Response"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"name": "room",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/api/v1/sessions/{id}/devices/{device}/state": {
			"put": {
				"tags": [
					"floorplan"
				],
				"summary": "Switch a device on or off",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/tjbuilding.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/tjbuilding.Response"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"name": "device",
						"in": "path",
						"required": true
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				]
			}
		},
		"/api/v1/status/rooms/{room}": {
			"get": {
				"tags": [
					"status"
				],
				"summary": "Occupancy timeline of a room",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/tjbuilding.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/tjbuilding.Response"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "room",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"name": "days",
						"in": "query",
						"required": false
					}
				]
			}
		},
		"/api/v1/status/floors/{floor}": {
			"get": {
				"tags": [
					"status"
				],
				"summary": "Merged occupancy timeline of a floor",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/tjbuilding.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/tjbuilding.Response"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "floor",
						"in": "path",
						"required": true
					},
					{
						"type": "integer",
						"name": "days",
						"in": "query",
						"required": false
					}
				]
			}
		},
		"/api/v1/floors/{floor}/report": {
			"get": {
				"tags": [
					"reports"
				],
				"summary": "Download a floor report",
				"produces": [
					"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
					"application/pdf"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/tjbuilding.Response"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/tjbuilding.Response"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "floor",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"name": "kind",
						"in": "query",
						"required": false
					},
					{
						"type": "string",
						"name": "format",
						"in": "query",
						"required": false
					}
				]
			}
		}
	},
	"definitions": {
		"tjbuilding.Response": {
			"type": "object",
			"properties": {
				"success": {
					"type": "boolean"
				},
				"data": {},
				"error": {
					"type": "string"
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "TJ Building Energy API",
	Description:      "Synthetic telemetry, occupancy and statistics for the building-energy dashboard.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
