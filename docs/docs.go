// Package docs registers the swagger spec served under /swagger/.
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
        "/wallet/address": {
            "get": {
                "description": "Derives the wallet address of an uncompressed public key",
                "produces": ["application/json"],
                "tags": ["wallet"],
                "summary": "Derive address",
                "parameters": [
                    {"type": "string", "description": "65-byte uncompressed public key, hex", "name": "publicKey", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.AddressResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/wallet/decrypt": {
            "post": {
                "description": "Opens a bundle with its password (scrypt) or key (fernet)",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["wallet"],
                "summary": "Decrypt exported wallet",
                "parameters": [
                    {"description": "Bundle and secret", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.DecryptRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.DecryptResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/model.ErrorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/wallet/export": {
            "post": {
                "description": "Encrypts the key summary of a private key. In fernet mode the random key is returned once in \"key\".",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["wallet"],
                "summary": "Export wallet",
                "parameters": [
                    {"description": "Private key and password", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.ExportRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.ExportResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/wallet/generate": {
            "post": {
                "description": "Generates a secp256k1 keypair, its address and a QR code of the address",
                "produces": ["application/json"],
                "tags": ["wallet"],
                "summary": "Generate new wallet",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.GenerateResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/wallet/qr": {
            "get": {
                "description": "Renders the given address as a PNG QR code",
                "produces": ["image/png"],
                "tags": ["wallet"],
                "summary": "Address QR code",
                "parameters": [
                    {"type": "string", "description": "Wallet address", "name": "address", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "model.AddressResponse": {
            "type": "object",
            "properties": {"address": {"type": "string"}}
        },
        "model.DecryptRequest": {
            "type": "object",
            "properties": {
                "bundle": {"$ref": "#/definitions/model.ExportBundle"},
                "key": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "model.DecryptResponse": {
            "type": "object",
            "properties": {"plaintext": {"type": "string"}}
        },
        "model.ErrorResponse": {
            "type": "object",
            "properties": {"code": {"type": "string"}, "error": {"type": "string"}}
        },
        "model.ExportBundle": {
            "type": "object",
            "properties": {
                "QR": {"type": "string"},
                "address": {"type": "string"},
                "cipherText": {"type": "string"},
                "createdAt": {"type": "string"},
                "id": {"type": "string"},
                "mode": {"type": "string", "enum": ["scrypt", "fernet"]},
                "nonce": {"type": "string"},
                "salt": {"type": "string"},
                "scrypt_N": {"type": "integer"},
                "scrypt_p": {"type": "integer"},
                "scrypt_r": {"type": "integer"},
                "version": {"type": "integer"}
            }
        },
        "model.ExportRequest": {
            "type": "object",
            "required": ["password", "privateKey"],
            "properties": {"password": {"type": "string"}, "privateKey": {"type": "string"}}
        },
        "model.ExportResponse": {
            "type": "object",
            "properties": {
                "bundle": {"$ref": "#/definitions/model.ExportBundle"},
                "key": {"type": "string"}
            }
        },
        "model.GenerateResponse": {
            "type": "object",
            "properties": {
                "QR": {"type": "string"},
                "address": {"type": "string"},
                "createdAt": {"type": "string"},
                "privateKey": {"type": "string"},
                "publicKey": {"type": "string"}
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
	Title:            "secp-wallet API",
	Description:      "Local secp256k1 wallet generator: keys, addresses, QR codes and encrypted exports.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
