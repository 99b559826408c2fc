// Package docs registers the OpenAPI document served at /swagger/.
// It is maintained by hand alongside the handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "termsOfService": "http://swagger.io/terms/",
        "contact": {
            "name": "API Support",
            "url": "http://www.swagger.io/support",
            "email": "support@swagger.io"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/itinerary": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["itinerary"],
                "summary": "Get the itinerary with derived state and a projected view",
                "parameters": [
                    {"type": "string", "description": "Case-insensitive name or location match", "name": "search", "in": "query"},
                    {"type": "string", "description": "all | attraction | restaurant | accommodation | transport", "name": "type", "in": "query"},
                    {"type": "array", "items": {"type": "string"}, "collectionFormat": "csv", "description": "Dates to include (YYYY-MM-DD), repeat or comma separate", "name": "date", "in": "query"},
                    {"type": "string", "description": "date | name | budget", "name": "sort", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ItineraryResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["itinerary"],
                "summary": "Replace the whole destination list",
                "parameters": [
                    {"description": "Destinations in canonical order", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ReplaceItineraryRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ItineraryResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ValidationErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/v1/itinerary/destinations": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["itinerary"],
                "summary": "Add a destination",
                "parameters": [
                    {"description": "Destination payload", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.DestinationRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.ItineraryResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ValidationErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/v1/itinerary/destinations/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "description": "Travel mode is kept; change it with the travel-mode endpoint.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["itinerary"],
                "summary": "Edit a destination's content",
                "parameters": [
                    {"type": "string", "description": "Destination ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/itinerary.Patch"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ItineraryResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ValidationErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "description": "Deleting an unknown id succeeds with dirty=false.",
                "produces": ["application/json"],
                "tags": ["itinerary"],
                "summary": "Delete a destination",
                "parameters": [
                    {"type": "string", "description": "Destination ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ItineraryResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/v1/itinerary/destinations/{id}/travel-mode": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["itinerary"],
                "summary": "Change how a destination is reached from the previous one",
                "parameters": [
                    {"type": "string", "description": "Destination ID", "name": "id", "in": "path", "required": true},
                    {"description": "DRIVING | WALKING | TRANSIT | NONE", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.TravelModeRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ItineraryResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ValidationErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/v1/itinerary/reorder": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Indexes refer to the view described by search/type/dates/sort when any is set, otherwise to the canonical list. A null \"to\" is a no-op.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["itinerary"],
                "summary": "Move a destination",
                "parameters": [
                    {"description": "Reorder payload", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ReorderRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ItineraryResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ValidationErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/v1/itinerary/routes": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Failed legs are reported as warnings. Routes computed for an itinerary that changed meanwhile are dropped.",
                "produces": ["application/json"],
                "tags": ["itinerary"],
                "summary": "Resolve the route of every leg",
                "parameters": [
                    {"type": "string", "description": "canonical (default) | view", "name": "scope", "in": "query"},
                    {"type": "string", "description": "View search term", "name": "search", "in": "query"},
                    {"type": "string", "description": "View type filter", "name": "type", "in": "query"},
                    {"type": "array", "items": {"type": "string"}, "collectionFormat": "csv", "description": "View dates", "name": "date", "in": "query"},
                    {"type": "string", "description": "View sort", "name": "sort", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.RoutesResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.BudgetSummary": {
            "type": "object",
            "properties": {
                "by_date": {"type": "object", "additionalProperties": {"type": "number"}},
                "converted": {"type": "number"},
                "currency": {"type": "string"},
                "display_currency": {"type": "string"},
                "exchange_rate": {"type": "number"},
                "total": {"type": "number"}
            }
        },
        "dto.DestinationRequest": {
            "type": "object",
            "properties": {
                "budget": {"type": "number"},
                "date": {"type": "string"},
                "description": {"type": "string"},
                "lat": {"type": "number"},
                "lng": {"type": "number"},
                "location": {"type": "string"},
                "name": {"type": "string"},
                "notes": {"type": "string"},
                "phoneNumber": {"type": "string"},
                "photos": {"type": "array", "items": {"type": "string"}},
                "placeId": {"type": "string"},
                "rating": {"type": "number"},
                "time": {"type": "string"},
                "travelMode": {"type": "string"},
                "type": {"type": "string"},
                "websiteUrl": {"type": "string"}
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "dto.ItineraryResponse": {
            "type": "object",
            "properties": {
                "budget": {"$ref": "#/definitions/dto.BudgetSummary"},
                "days": {"type": "array", "items": {"$ref": "#/definitions/itinerary.DayGroup"}},
                "derived": {"$ref": "#/definitions/itinerary.Derived"},
                "destination": {"$ref": "#/definitions/models.Destination"},
                "destinations": {"type": "array", "items": {"$ref": "#/definitions/models.Destination"}},
                "dirty": {"type": "boolean"},
                "updated_at": {"type": "string"},
                "user_id": {"type": "string"},
                "version": {"type": "integer"},
                "view": {"$ref": "#/definitions/dto.ViewResponse"}
            }
        },
        "dto.ReorderRequest": {
            "type": "object",
            "properties": {
                "dates": {"type": "array", "items": {"type": "string"}},
                "from": {"type": "integer"},
                "search": {"type": "string"},
                "sort": {"type": "string"},
                "to": {"type": "integer"},
                "type": {"type": "string"}
            }
        },
        "dto.ReplaceItineraryRequest": {
            "type": "object",
            "properties": {
                "destinations": {"type": "array", "items": {"$ref": "#/definitions/models.Destination"}}
            }
        },
        "dto.RoutesResponse": {
            "type": "object",
            "properties": {
                "routes": {"type": "array", "items": {"$ref": "#/definitions/routing.LegRoute"}},
                "scope": {"type": "string"},
                "version": {"type": "integer"},
                "warnings": {"type": "array", "items": {"$ref": "#/definitions/routing.Warning"}}
            }
        },
        "dto.TravelModeRequest": {
            "type": "object",
            "properties": {
                "travelMode": {"type": "string"}
            }
        },
        "dto.ValidationErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "fields": {"type": "object", "additionalProperties": {"type": "string"}},
                "message": {"type": "string"}
            }
        },
        "dto.ViewResponse": {
            "type": "object",
            "properties": {
                "dates": {"type": "array", "items": {"type": "string"}},
                "derived": {"$ref": "#/definitions/itinerary.Derived"},
                "destinations": {"type": "array", "items": {"$ref": "#/definitions/models.Destination"}},
                "search": {"type": "string"},
                "sort": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "itinerary.DayGroup": {
            "type": "object",
            "properties": {
                "budget": {"type": "number"},
                "date": {"type": "string"},
                "destinations": {"type": "array", "items": {"$ref": "#/definitions/models.Destination"}},
                "sequence_numbers": {"type": "array", "items": {"type": "integer"}}
            }
        },
        "itinerary.Derived": {
            "type": "object",
            "properties": {
                "dates": {"type": "array", "items": {"type": "string"}},
                "legs": {"type": "array", "items": {"$ref": "#/definitions/itinerary.RouteLeg"}},
                "segments": {"type": "array", "items": {"$ref": "#/definitions/itinerary.Segment"}},
                "sequence_numbers": {"type": "array", "items": {"type": "integer"}},
                "total_budget": {"type": "number"}
            }
        },
        "itinerary.Patch": {
            "type": "object",
            "properties": {
                "budget": {"type": "number"},
                "date": {"type": "string"},
                "description": {"type": "string"},
                "lat": {"type": "number"},
                "lng": {"type": "number"},
                "location": {"type": "string"},
                "name": {"type": "string"},
                "notes": {"type": "string"},
                "phoneNumber": {"type": "string"},
                "photos": {"type": "array", "items": {"type": "string"}},
                "placeId": {"type": "string"},
                "rating": {"type": "number"},
                "time": {"type": "string"},
                "type": {"type": "string"},
                "websiteUrl": {"type": "string"}
            }
        },
        "itinerary.RouteLeg": {
            "type": "object",
            "properties": {
                "destination_index": {"type": "integer"},
                "origin_index": {"type": "integer"},
                "travel_mode": {"type": "string"}
            }
        },
        "itinerary.Segment": {
            "type": "object",
            "properties": {
                "end": {"type": "integer"},
                "start": {"type": "integer"}
            }
        },
        "models.Destination": {
            "type": "object",
            "properties": {
                "budget": {"type": "number"},
                "date": {"type": "string"},
                "description": {"type": "string"},
                "id": {"type": "string"},
                "lat": {"type": "number"},
                "lng": {"type": "number"},
                "location": {"type": "string"},
                "name": {"type": "string"},
                "notes": {"type": "string"},
                "phoneNumber": {"type": "string"},
                "photos": {"type": "array", "items": {"type": "string"}},
                "placeId": {"type": "string"},
                "rating": {"type": "number"},
                "time": {"type": "string"},
                "travelMode": {"type": "string"},
                "type": {"type": "string"},
                "websiteUrl": {"type": "string"}
            }
        },
        "routing.LatLng": {
            "type": "object",
            "properties": {
                "lat": {"type": "number"},
                "lng": {"type": "number"}
            }
        },
        "routing.LegRoute": {
            "type": "object",
            "properties": {
                "eta": {"type": "string"},
                "key": {"type": "string"},
                "label_at": {"$ref": "#/definitions/routing.LatLng"},
                "leg": {"$ref": "#/definitions/itinerary.RouteLeg"},
                "route": {"$ref": "#/definitions/routing.Route"}
            }
        },
        "routing.Route": {
            "type": "object",
            "properties": {
                "distance_meters": {"type": "integer"},
                "duration_seconds": {"type": "integer"},
                "path": {"type": "array", "items": {"$ref": "#/definitions/routing.LatLng"}}
            }
        },
        "routing.Warning": {
            "type": "object",
            "properties": {
                "key": {"type": "string"},
                "leg": {"$ref": "#/definitions/itinerary.RouteLeg"},
                "message": {"type": "string"}
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
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Itinerary Backend API",
	Description:      "Itinerary sequencing, route segmentation and view projection API",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
