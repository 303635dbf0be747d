package config

import _ "embed"

// Schema holds the CUE definition every configuration file is unified with.
// Files are checked against its #Config definition.
//
//go:embed schema.cue
var Schema []byte

// schemaDefinition is the path of the definition inside Schema.
const schemaDefinition = "#Config"
