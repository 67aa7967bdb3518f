// Package public holds the static files served by the API.
package public

import _ "embed"

//go:embed index.html
var IndexHTML []byte
