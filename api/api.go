// Package api embeds the OpenAPI document of the HTTP interface.
package api

import (
	_ "embed"
)

// OpenAPI is the raw api/openapi.yml document.
//
//go:embed openapi.yml
var OpenAPI []byte
