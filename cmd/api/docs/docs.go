// Package docs holds the OpenAPI document served at /swagger. Regenerate
// with: swag init -g cmd/api/main.go -o cmd/api/docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
	"schemes": {{ marshal .Schemes }},
	"swagger": "2.0",
	"info": {
		"description": "{{escape .Description}}",
		"title": "{{.Title}}",
		"contact": {
			"name": "API Support",
			"email": "support@ecoscan.app"
		},
		"license": {
			"name": "MIT"
		},
		"version": "{{.Version}}"
	},
	"host": "{{.Host}}",
	"basePath": "{{.BasePath}}",
	"paths": {
		"/ai/analyses/{productId}": {
			"get": {
				"summary": "Product sustainability analysis",
				"tags": [
					"Assistant"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "productId",
						"in": "path",
						"required": true,
						"description": "Product ID",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"404": {
						"description": "Not Found"
					}
				}
			}
		},
		"/ai/suggestions": {
			"get": {
				"summary": "Assistant recommendation tables",
				"description": "Material options, dimension presets and sustainability features",
				"tags": [
					"Assistant"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/analytics": {
			"get": {
				"summary": "Analytics",
				"description": "Charts and stat cards for a period (founder only)",
				"tags": [
					"Dashboard"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "X-Session-ID",
						"in": "header",
						"required": true,
						"description": "Session ID",
						"type": "string"
					},
					{
						"name": "period",
						"in": "query",
						"required": false,
						"description": "7d, 30d, 90d or 1y",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					}
				}
			}
		},
		"/assistant/messages": {
			"get": {
				"summary": "Chat transcript",
				"description": "The session's conversation with the assistant, starting with its greeting",
				"tags": [
					"Assistant"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "X-Session-ID",
						"in": "header",
						"required": true,
						"description": "Session ID",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			},
			"post": {
				"summary": "Send a chat message",
				"description": "Append the message and the assistant's answer to the transcript. Blank messages are rejected and nothing is recorded.",
				"tags": [
					"Assistant"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "X-Session-ID",
						"in": "header",
						"required": true,
						"description": "Session ID",
						"type": "string"
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "Message",
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created"
					},
					"400": {
						"description": "Bad Request"
					}
				}
			}
		},
		"/assistant/respond": {
			"post": {
				"summary": "Assistant reply",
				"description": "Stateless keyword reply with an optional product suggestion",
				"tags": [
					"Assistant"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "Message",
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					}
				}
			}
		},
		"/auth/login": {
			"post": {
				"summary": "Log in",
				"description": "Sign in with the given role, or the session's current role, or client",
				"tags": [
					"Auth"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "X-Session-ID",
						"in": "header",
						"required": true,
						"description": "Session ID",
						"type": "string"
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "Login details",
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					}
				}
			}
		},
		"/auth/logout": {
			"post": {
				"summary": "Log out",
				"description": "Clear the sign-in flag and role and return to the landing page",
				"tags": [
					"Auth"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "X-Session-ID",
						"in": "header",
						"required": true,
						"description": "Session ID",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/auth/signup": {
			"post": {
				"summary": "Sign up",
				"description": "Choose a role and sign in; returns the role's landing page",
				"tags": [
					"Auth"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "X-Session-ID",
						"in": "header",
						"required": true,
						"description": "Session ID",
						"type": "string"
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "Signup details",
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					}
				}
			}
		},
		"/catalog": {
			"get": {
				"summary": "Client catalog",
				"description": "Published products matching the search text",
				"tags": [
					"Catalog"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "query",
						"in": "query",
						"required": false,
						"description": "Search in name and description",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/conversations": {
			"get": {
				"summary": "List AI conversations",
				"tags": [
					"Assistant"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "status",
						"in": "query",
						"required": false,
						"description": "active, completed or archived",
						"type": "string"
					},
					{
						"name": "limit",
						"in": "query",
						"required": false,
						"description": "Maximum number of conversations",
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					}
				}
			}
		},
		"/conversations/{id}": {
			"get": {
				"summary": "Get AI conversation",
				"tags": [
					"Assistant"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Conversation ID",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"404": {
						"description": "Not Found"
					}
				}
			}
		},
		"/dashboard/founder": {
			"get": {
				"summary": "Founder dashboard",
				"description": "Catalog stats, eco-score distribution, recent products and conversations (founder only)",
				"tags": [
					"Dashboard"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "X-Session-ID",
						"in": "header",
						"required": true,
						"description": "Session ID",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"403": {
						"description": "Forbidden"
					}
				}
			}
		},
		"/health": {
			"get": {
				"summary": "Service health check",
				"description": "Check if API is alive",
				"tags": [
					"Health"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/navigation/menu": {
			"get": {
				"summary": "Sidebar menu",
				"description": "Menu links for the session's role",
				"tags": [
					"Navigation"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "X-Session-ID",
						"in": "header",
						"required": true,
						"description": "Session ID",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/pricing": {
			"get": {
				"summary": "Pricing plans",
				"tags": [
					"Dashboard"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/products": {
			"get": {
				"summary": "List products",
				"description": "List catalog products with filtering",
				"tags": [
					"Products"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "query",
						"in": "query",
						"required": false,
						"description": "Search in name and description",
						"type": "string"
					},
					{
						"name": "eco_score",
						"in": "query",
						"required": false,
						"description": "Eco-score grade A-E or all",
						"type": "string"
					},
					{
						"name": "published_only",
						"in": "query",
						"required": false,
						"description": "Only published products",
						"type": "boolean"
					},
					{
						"name": "material",
						"in": "query",
						"required": false,
						"description": "Search in material names",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					}
				}
			}
		},
		"/products/export.csv": {
			"get": {
				"summary": "Export catalog",
				"description": "Download every product as CSV (founder only)",
				"tags": [
					"Export"
				],
				"produces": [
					"text/csv"
				],
				"parameters": [
					{
						"name": "X-Session-ID",
						"in": "header",
						"required": true,
						"description": "Session ID",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/products/{id}": {
			"get": {
				"summary": "Get product by ID",
				"tags": [
					"Products"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Product ID",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"404": {
						"description": "Not Found"
					}
				}
			}
		},
		"/products/{id}/export": {
			"get": {
				"summary": "Export product specification",
				"description": "Download the specification sheet as PDF or Excel (founder only)",
				"tags": [
					"Export"
				],
				"produces": [
					"application/pdf",
					"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
				],
				"parameters": [
					{
						"name": "X-Session-ID",
						"in": "header",
						"required": true,
						"description": "Session ID",
						"type": "string"
					},
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Product ID",
						"type": "string"
					},
					{
						"name": "format",
						"in": "query",
						"required": false,
						"description": "pdf or excel",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"404": {
						"description": "Not Found"
					}
				}
			}
		},
		"/products/{id}/publish": {
			"patch": {
				"summary": "Publish or unpublish a product",
				"description": "Flip a product between draft and published (founder only)",
				"tags": [
					"Products"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "X-Session-ID",
						"in": "header",
						"required": true,
						"description": "Session ID",
						"type": "string"
					},
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Product ID",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"403": {
						"description": "Forbidden"
					},
					"404": {
						"description": "Not Found"
					}
				}
			}
		},
		"/products/{id}/qr": {
			"get": {
				"summary": "Product QR code",
				"description": "PNG QR code encoding the product's scan code",
				"tags": [
					"Products"
				],
				"produces": [
					"image/png"
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Product ID",
						"type": "string"
					},
					{
						"name": "size",
						"in": "query",
						"required": false,
						"description": "Image size in pixels",
						"type": "integer"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"404": {
						"description": "Not Found"
					}
				}
			}
		},
		"/products/{id}/similar": {
			"get": {
				"summary": "Similar products",
				"description": "Alternatives to a product, never the product itself",
				"tags": [
					"Products"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Product ID",
						"type": "string"
					},
					{
						"name": "query",
						"in": "query",
						"required": false,
						"description": "Search in name and description",
						"type": "string"
					},
					{
						"name": "eco_score",
						"in": "query",
						"required": false,
						"description": "Eco-score grade A-E or all",
						"type": "string"
					},
					{
						"name": "published_only",
						"in": "query",
						"required": false,
						"description": "Only published products",
						"type": "boolean"
					},
					{
						"name": "material",
						"in": "query",
						"required": false,
						"description": "Search in material names",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"404": {
						"description": "Not Found"
					}
				}
			}
		},
		"/profile/client": {
			"get": {
				"summary": "Client profile",
				"description": "Eco-impact stats, scan history, saved products and achievements",
				"tags": [
					"Dashboard"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "X-Session-ID",
						"in": "header",
						"required": true,
						"description": "Session ID",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/recycling-points": {
			"get": {
				"summary": "List recycling points",
				"description": "Filter by type and accepted material; with lat and lng the points come nearest first with their distance in km",
				"tags": [
					"Recycling"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "type",
						"in": "query",
						"required": false,
						"description": "recycling or buyback",
						"type": "string"
					},
					{
						"name": "material",
						"in": "query",
						"required": false,
						"description": "Accepted material",
						"type": "string"
					},
					{
						"name": "lat",
						"in": "query",
						"required": false,
						"description": "Latitude",
						"type": "number"
					},
					{
						"name": "lng",
						"in": "query",
						"required": false,
						"description": "Longitude",
						"type": "number"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					}
				}
			}
		},
		"/recycling-points/{id}": {
			"get": {
				"summary": "Get recycling point by ID",
				"tags": [
					"Recycling"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "id",
						"in": "path",
						"required": true,
						"description": "Recycling point ID",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"404": {
						"description": "Not Found"
					}
				}
			}
		},
		"/scanner/scan": {
			"post": {
				"summary": "Scan a product",
				"description": "Resolve a scan code or product ID. An empty code scans the demo product.",
				"tags": [
					"Scanner"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "X-Session-ID",
						"in": "header",
						"required": true,
						"description": "Session ID",
						"type": "string"
					},
					{
						"name": "body",
						"in": "body",
						"required": false,
						"description": "Scanned code",
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"404": {
						"description": "Not Found"
					}
				}
			}
		},
		"/sessions": {
			"post": {
				"summary": "Start a session",
				"description": "Create a UI session on the landing page with the first catalog product selected",
				"tags": [
					"Sessions"
				],
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created"
					}
				}
			}
		},
		"/sessions/current": {
			"get": {
				"summary": "Get the current session",
				"tags": [
					"Sessions"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "X-Session-ID",
						"in": "header",
						"required": true,
						"description": "Session ID",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "Unauthorized"
					}
				}
			},
			"delete": {
				"summary": "End the session",
				"description": "Drop the session with its transcript, wizard draft and scan history",
				"tags": [
					"Sessions"
				],
				"parameters": [
					{
						"name": "X-Session-ID",
						"in": "header",
						"required": true,
						"description": "Session ID",
						"type": "string"
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					}
				}
			}
		},
		"/sessions/current/locale": {
			"put": {
				"summary": "Change language",
				"description": "Set the locale to en, fr or ar; ar switches the layout to rtl",
				"tags": [
					"Sessions"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "X-Session-ID",
						"in": "header",
						"required": true,
						"description": "Session ID",
						"type": "string"
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "Locale",
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					}
				}
			}
		},
		"/sessions/current/navigate": {
			"post": {
				"summary": "Navigate to a page",
				"description": "Move the session to a page. Unknown pages fall back to the landing page. A product_id of an existing product becomes the selected product and counts a view.",
				"tags": [
					"Sessions"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "X-Session-ID",
						"in": "header",
						"required": true,
						"description": "Session ID",
						"type": "string"
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "Target page",
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/sessions/current/role": {
			"put": {
				"summary": "Change role",
				"description": "Set the role to founder, client or empty without signing in",
				"tags": [
					"Sessions"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "X-Session-ID",
						"in": "header",
						"required": true,
						"description": "Session ID",
						"type": "string"
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "Role",
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					}
				}
			}
		},
		"/sessions/current/theme": {
			"patch": {
				"summary": "Toggle light/dark theme",
				"tags": [
					"Sessions"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "X-Session-ID",
						"in": "header",
						"required": true,
						"description": "Session ID",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/store": {
			"get": {
				"summary": "Store management",
				"description": "The founder's products split into published and drafts (founder only)",
				"tags": [
					"Catalog"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "X-Session-ID",
						"in": "header",
						"required": true,
						"description": "Session ID",
						"type": "string"
					},
					{
						"name": "query",
						"in": "query",
						"required": false,
						"description": "Search in name and description",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/wizard": {
			"get": {
				"summary": "Product creator draft",
				"tags": [
					"Wizard"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "X-Session-ID",
						"in": "header",
						"required": true,
						"description": "Session ID",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			},
			"delete": {
				"summary": "Discard the draft",
				"tags": [
					"Wizard"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "X-Session-ID",
						"in": "header",
						"required": true,
						"description": "Session ID",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/wizard/apply-suggestion": {
			"post": {
				"summary": "Apply an assistant suggestion",
				"description": "Copy the suggested capacity and dimensions into the draft; zero values are ignored",
				"tags": [
					"Wizard"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "X-Session-ID",
						"in": "header",
						"required": true,
						"description": "Session ID",
						"type": "string"
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "Suggestion",
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/wizard/back": {
			"post": {
				"summary": "Previous wizard step",
				"tags": [
					"Wizard"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "X-Session-ID",
						"in": "header",
						"required": true,
						"description": "Session ID",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"409": {
						"description": "Conflict"
					}
				}
			}
		},
		"/wizard/form": {
			"put": {
				"summary": "Edit the draft",
				"description": "Partial update of the product form; omitted fields are kept",
				"tags": [
					"Wizard"
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "X-Session-ID",
						"in": "header",
						"required": true,
						"description": "Session ID",
						"type": "string"
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"description": "Form fields",
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					}
				}
			}
		},
		"/wizard/materials": {
			"get": {
				"summary": "Material recommendations",
				"description": "Material options matching the draft's material",
				"tags": [
					"Wizard"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "X-Session-ID",
						"in": "header",
						"required": true,
						"description": "Session ID",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/wizard/next": {
			"post": {
				"summary": "Next wizard step",
				"description": "Advance one step. On the publish step the draft is saved as a draft product.",
				"tags": [
					"Wizard"
				],
				"produces": [
					"application/json"
				],
				"parameters": [
					{
						"name": "X-Session-ID",
						"in": "header",
						"required": true,
						"description": "Session ID",
						"type": "string"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"201": {
						"description": "Created"
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
	Schemes:          []string{},
	Title:            "EcoScan API",
	Description:      "Sustainable product catalog, scanner, recycling locator and product creator",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
