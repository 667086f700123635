// Package api holds the OpenAPI document of the brokerage HTTP API. The HTTP
// adapter validates requests against it and serves it through Swagger UI.
package api

import _ "embed"

//go:embed openapi.yaml
var OpenAPI []byte
