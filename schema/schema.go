// Package schema embeds the JSON Schema the merged configuration is
// validated against.
package schema

import _ "embed"

//go:embed ripit.schema.json
var Bytes []byte
