// Package web holds the embedded static assets served by the API.
package web

import _ "embed"

// Index is the landing page served at the root route.
//
//go:embed index.html
var Index []byte
