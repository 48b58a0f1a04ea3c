// internal/api/schemas.go
package api

import "idea-service/internal/common/validation"

const generateRequestSchema = `{
  "type": "object",
  "properties": {
    "prompt":   { "type": ["string", "null"] },
    "category": { "type": ["string", "null"] },
    "context": {
      "type": ["object", "null"],
      "properties": {
        "region":   { "type": ["string", "null"] },
        "industry": { "type": ["string", "null"] }
      }
    }
  }
}`

// Validate accepts any field map; unknown and oddly typed fields are coerced by the scorer.
const validateRequestSchema = `{
  "type": "object"
}`

var (
	generateValidator = validation.MustCompile("generate-request", generateRequestSchema)
	validateValidator = validation.MustCompile("validate-request", validateRequestSchema)
)
